// Package scheduler runs the background maintenance jobs: completing due
// scheduled orders, moving aged terminal orders to the cold store, and
// closing idle sessions.
//
// Every pass takes a Postgres advisory lock first, so with multiple
// replicas exactly one runs a given job at a time. Losing the lock is not
// an error; another replica is already on it.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/archive"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// Advisory lock keys, one fixed arbitrary constant per job.
const (
	lockKeyCompleter int64 = 774022101
	lockKeyArchiver  int64 = 774022102
	lockKeyReaper    int64 = 774022103
)

// changedByScheduler marks status history rows written by background jobs.
const changedByScheduler = "scheduler"

// Scheduler owns the background job loops.
type Scheduler struct {
	config   *config.SchedulerConfig
	db       *sql.DB
	orders   *services.OrderService
	sessions *services.SessionService
	archiver *archive.Archiver

	cron   *cron.Cron
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a scheduler. archiver may be nil when no cold store is
// configured; the archive job is then disabled.
func New(
	cfg *config.SchedulerConfig,
	db *sql.DB,
	orders *services.OrderService,
	sessions *services.SessionService,
	archiver *archive.Archiver,
) *Scheduler {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}
	return &Scheduler{
		config:   cfg,
		db:       db,
		orders:   orders,
		sessions: sessions,
		archiver: archiver,
		cron:     cron.New(),
	}
}

// Start launches the job loops: an immediate catch-up pass, then the
// completer and reaper tickers plus the archive cron entry.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cancel != nil {
		return nil
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	if s.archiver != nil {
		_, err := s.cron.AddFunc(s.config.ArchiveCron, func() { s.runArchiver(ctx) })
		if err != nil {
			s.cancel()
			s.cancel = nil
			return fmt.Errorf("invalid archive cron %q: %w", s.config.ArchiveCron, err)
		}
		s.cron.Start()
	} else {
		slog.Info("Scheduler: archive job disabled, no cold store configured")
	}

	go s.run(ctx)

	slog.Info("Scheduler started",
		"completer_interval", s.config.CompleterInterval,
		"archive_cron", s.config.ArchiveCron,
		"session_reaper_interval", s.config.SessionReaperInterval)
	return nil
}

// Stop signals the loops to exit and waits for in-flight passes to finish.
// No new batch starts after Stop is called.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()
	<-s.done
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.runCompleter(ctx)
	s.runReaper(ctx)

	completer := time.NewTicker(s.config.CompleterInterval)
	defer completer.Stop()
	reaper := time.NewTicker(s.config.SessionReaperInterval)
	defer reaper.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-completer.C:
			s.runCompleter(ctx)
		case <-reaper.C:
			s.runReaper(ctx)
		}
	}
}

func (s *Scheduler) runCompleter(ctx context.Context) {
	s.withLock(ctx, lockKeyCompleter, "completer", s.completeDueOrders)
}

func (s *Scheduler) runArchiver(ctx context.Context) {
	s.withLock(ctx, lockKeyArchiver, "archiver", s.archiveAgedOrders)
}

func (s *Scheduler) runReaper(ctx context.Context) {
	s.withLock(ctx, lockKeyReaper, "session reaper", s.closeIdleSessions)
}

// withLock runs job only when this replica wins the advisory lock. The lock
// lives on a dedicated connection; the job itself works through the pool.
func (s *Scheduler) withLock(ctx context.Context, key int64, name string, job func(context.Context)) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		slog.Error("Scheduler: acquiring lock connection failed", "job", name, "error", err)
		return
	}
	defer conn.Close()

	var locked bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&locked); err != nil {
		slog.Error("Scheduler: advisory lock query failed", "job", name, "error", err)
		return
	}
	if !locked {
		slog.Debug("Scheduler: pass already running on another replica", "job", name)
		return
	}
	// Unlock on a fresh context: the pass may have been ended by shutdown,
	// and the lock must not ride the pooled connection back.
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.ExecContext(unlockCtx, "SELECT pg_advisory_unlock($1)", key); err != nil {
			slog.Warn("Scheduler: advisory unlock failed", "job", name, "error", err)
		}
	}()

	job(ctx)
}

// completeDueOrders moves accepted scheduled requests whose time has come to
// completed. Each order completes in its own transaction; one failure does
// not block the rest of the batch.
func (s *Scheduler) completeDueOrders(ctx context.Context) {
	due, err := s.orders.DueScheduled(ctx, time.Now().UTC(), s.config.CompleterBatchSize)
	if err != nil {
		slog.Error("Scheduler: querying due scheduled orders failed", "error", err)
		return
	}

	completed := 0
	for _, o := range due {
		_, err := s.orders.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{
			Status:      order.StatusCompleted,
			ChangedBy:   changedByScheduler,
			SystemActor: true,
		})
		if err != nil {
			slog.Error("Scheduler: completing scheduled order failed", "order_id", o.ID, "error", err)
			continue
		}
		completed++
	}
	if completed > 0 {
		slog.Info("Scheduler: completed due scheduled orders", "count", completed)
	}
}

// archiveAgedOrders moves terminal orders older than the configured age to
// the cold store.
func (s *Scheduler) archiveAgedOrders(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-time.Duration(s.config.ArchiveOrderAgeHours) * time.Hour)
	aged, err := s.orders.ListArchivable(ctx, cutoff, s.config.ArchiveBatchSize)
	if err != nil {
		slog.Error("Scheduler: querying archivable orders failed", "error", err)
		return
	}

	moved := 0
	for _, o := range aged {
		if err := s.archiver.Archive(ctx, o.ID); err != nil {
			slog.Error("Scheduler: archiving order failed", "order_id", o.ID, "error", err)
			continue
		}
		moved++
	}
	if moved > 0 {
		slog.Info("Scheduler: archived orders to cold store", "count", moved)
	}
}

// closeIdleSessions closes sessions with no activity past the idle window.
func (s *Scheduler) closeIdleSessions(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-time.Duration(s.config.SessionIdleMinutes) * time.Minute)
	count, err := s.sessions.CloseIdle(ctx, cutoff, 0)
	if err != nil {
		slog.Error("Scheduler: closing idle sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Scheduler: closed idle sessions", "count", count)
	}
}

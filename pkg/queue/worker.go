package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/predicate"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/engine"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// deliverTimeout bounds reply delivery and the outbound log write. It runs
// on a fresh context so a shutdown cancel cannot strand a finished turn's
// reply.
const deliverTimeout = 30 * time.Second

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes inbound jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	runner   TurnRunner
	sender   ReplySender
	sessions *services.SessionService
	pool     JobRegistry
	wake     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, runner TurnRunner, sender ReplySender, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runner:       runner,
		sender:       sender,
		sessions:     services.NewSessionService(client),
		pool:         pool,
		wake:         make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.signalStop()
	w.wg.Wait()
}

// signalStop asks the worker to exit after its current job. Split from Stop
// so the pool can signal every worker before waiting on any of them.
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// wait blocks until the worker goroutine has exited.
func (w *Worker) wait() {
	w.wg.Wait()
}

// Wake nudges the worker out of its poll sleep. Non-blocking; a worker that
// is already claiming will see the new job on its next pass anyway.
func (w *Worker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration, a wake nudge, or stop.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-w.wake:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and runs its turn.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check. Best-effort: racy with concurrent workers but
	// bounded by WorkerCount and smoothed by poll jitter.
	active, err := w.client.InboundJob.Query().
		Where(inboundjob.StatusEQ(inboundjob.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count processing jobs: %w", err)
	}
	if active >= w.config.MaxConcurrentTurns {
		return ErrAtCapacity
	}

	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "session_id", job.SessionID, "worker_id", w.id)
	log.Info("Job claimed", "attempt", job.Attempts)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()

	// Register for shutdown hard-cancel.
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, job.ID)

	turnReq, err := w.loadTurnRequest(jobCtx, job)
	var result *engine.TurnResult
	runErr := err
	if runErr == nil {
		result, runErr = w.runner.RunTurn(jobCtx, turnReq)
	}
	if runErr == nil && result == nil {
		runErr = fmt.Errorf("turn runner returned no result")
	}
	cancelHeartbeat()

	// Terminal updates use a fresh context; jobCtx may be cancelled by now.
	switch {
	case runErr != nil:
		w.releaseJob(context.Background(), job, runErr)
		log.Warn("Turn failed", "attempt", job.Attempts, "error", runErr)
	case result.Skipped:
		if err := w.completeJob(context.Background(), job); err != nil {
			log.Error("Failed to mark job completed", "error", err)
			return err
		}
		log.Info("Turn skipped", "reason", result.SkipReason)
	default:
		if err := w.deliverReply(job, turnReq, result); err != nil {
			w.failJob(context.Background(), job, err)
			log.Error("Reply delivery failed", "error", err)
		} else {
			if err := w.completeJob(context.Background(), job); err != nil {
				log.Error("Failed to mark job completed", "error", err)
				return err
			}
			log.Info("Turn complete",
				"turn_id", result.TurnID,
				"iterations", result.Iterations,
				"duration", result.Duration)
		}
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// sessionHeadOnly restricts claims to the head of each session's line: a job
// is claimable only when no sibling job in the same session is processing or
// queued ahead of it. The predicate also covers requeued jobs, whose original
// created_at puts them back at the front.
func sessionHeadOnly() predicate.InboundJob {
	return func(s *sql.Selector) {
		sib := sql.Table(inboundjob.Table).As("sib")
		s.Where(sql.NotExists(
			sql.Select(sib.C(inboundjob.FieldID)).
				From(sib).
				Where(sql.And(
					sql.ColumnsEQ(sib.C(inboundjob.FieldSessionID), s.C(inboundjob.FieldSessionID)),
					sql.ColumnsNEQ(sib.C(inboundjob.FieldID), s.C(inboundjob.FieldID)),
					sql.Or(
						sql.EQ(sib.C(inboundjob.FieldStatus), string(inboundjob.StatusProcessing)),
						sql.And(
							sql.EQ(sib.C(inboundjob.FieldStatus), string(inboundjob.StatusPending)),
							sql.Or(
								sql.ColumnsLT(sib.C(inboundjob.FieldCreatedAt), s.C(inboundjob.FieldCreatedAt)),
								sql.And(
									sql.ColumnsEQ(sib.C(inboundjob.FieldCreatedAt), s.C(inboundjob.FieldCreatedAt)),
									sql.ColumnsLT(sib.C(inboundjob.FieldID), s.C(inboundjob.FieldID)),
								),
							),
						),
					),
				)),
		))
	}
}

// claimNextJob atomically claims the next pending job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.InboundJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Order by created_at for FIFO processing across sessions; sessionHeadOnly
	// enforces FIFO within a session.
	job, err := tx.InboundJob.Query().
		Where(
			inboundjob.StatusEQ(inboundjob.StatusPending),
			sessionHeadOnly(),
		).
		Order(ent.Asc(inboundjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending jobs: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(inboundjob.StatusProcessing).
		SetClaimedBy(w.podID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// loadTurnRequest resolves the job's message, session, and tenant.
func (w *Worker) loadTurnRequest(ctx context.Context, job *ent.InboundJob) (*engine.TurnRequest, error) {
	msg, err := w.client.ChatMessage.Get(ctx, job.MessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message %s: %w", job.MessageID, err)
	}
	session, err := w.client.ChatSession.Get(ctx, job.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", job.SessionID, err)
	}
	business, err := w.client.User.Get(ctx, job.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", job.BusinessID, err)
	}
	return &engine.TurnRequest{
		Business: business,
		Session:  session,
		Text:     msg.Content,
	}, nil
}

// deliverReply sends the reply on the customer's channel and records it on
// the thread. A failure here is terminal for the job: the turn's side
// effects are already committed, and re-running it could place an order
// twice.
func (w *Worker) deliverReply(job *ent.InboundJob, req *engine.TurnRequest, result *engine.TurnResult) error {
	if result.Reply == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	sent, err := w.sender.SendText(ctx, job.BusinessID,
		botintegration.Platform(req.Session.Platform), req.Session.CustomerID, result.Reply)
	if err != nil {
		return fmt.Errorf("turn succeeded but delivery failed: %w", err)
	}

	if _, err := w.sessions.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:         job.SessionID,
		SenderType:        chatmessage.SenderTypeBot,
		Content:           result.Reply,
		ProviderMessageID: sent.ProviderMessageID,
	}); err != nil {
		// The reply reached the customer; a missing log row is the lesser harm.
		slog.Error("Failed to record outbound message", "job_id", job.ID, "error", err)
	}
	return nil
}

// completeJob marks the job done and sheds any error note left by an
// earlier failed attempt.
func (w *Worker) completeJob(ctx context.Context, job *ent.InboundJob) error {
	return w.client.InboundJob.UpdateOneID(job.ID).
		SetStatus(inboundjob.StatusCompleted).
		ClearError().
		Exec(ctx)
}

// releaseJob returns a failed job to the queue for another attempt, or marks
// it failed once its attempts are spent. Attempts were already counted at
// claim time.
func (w *Worker) releaseJob(ctx context.Context, job *ent.InboundJob, cause error) {
	if job.Attempts >= w.config.MaxAttempts {
		w.failJob(ctx, job, fmt.Errorf("giving up after %d attempts: %w", job.Attempts, cause))
		return
	}
	err := w.client.InboundJob.UpdateOneID(job.ID).
		SetStatus(inboundjob.StatusPending).
		SetError(cause.Error()).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to requeue job", "job_id", job.ID, "error", err)
	}
}

// failJob marks the job permanently failed.
func (w *Worker) failJob(ctx context.Context, job *ent.InboundJob, cause error) {
	err := w.client.InboundJob.UpdateOneID(job.ID).
		SetStatus(inboundjob.StatusFailed).
		SetError(cause.Error()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to mark job failed", "job_id", job.ID, "error", err)
	}
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.InboundJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

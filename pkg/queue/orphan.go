package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/pkg/config"
)

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRecovered int
}

// runOrphanScan periodically scans for orphaned jobs.
// All pods run this independently — the per-job update is conditional on the
// job still being stale, so two pods cannot both requeue the same job.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds processing jobs with stale heartbeats and returns
// them to the queue. A job that has burned through its attempts is marked
// failed instead.
func (p *WorkerPool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.InboundJob.Query().
		Where(
			inboundjob.StatusEQ(inboundjob.StatusProcessing),
			inboundjob.LastHeartbeatAtNotNil(),
			inboundjob.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		n, err := p.requeueOrphanedJob(ctx, job, threshold)
		if err != nil {
			slog.Error("Failed to requeue orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered += n
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedJob returns one orphaned job to pending, or marks it failed
// when its attempts are spent. The update re-checks the stale-heartbeat
// condition so a job re-claimed between scan and update is left alone.
// Returns the number of rows changed (0 or 1).
func (p *WorkerPool) requeueOrphanedJob(ctx context.Context, job *ent.InboundJob, threshold time.Time) (int, error) {
	pod := "unknown"
	if job.ClaimedBy != nil {
		pod = *job.ClaimedBy
	}
	beat := "unknown"
	if job.LastHeartbeatAt != nil {
		beat = job.LastHeartbeatAt.Format(time.RFC3339)
	}

	if job.Attempts >= p.config.MaxAttempts {
		n, err := p.client.InboundJob.Update().
			Where(
				inboundjob.IDEQ(job.ID),
				inboundjob.StatusEQ(inboundjob.StatusProcessing),
				inboundjob.LastHeartbeatAtLT(threshold),
			).
			SetStatus(inboundjob.StatusFailed).
			SetError(fmt.Sprintf("orphaned on attempt %d: no heartbeat from pod %s since %s", job.Attempts, pod, beat)).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to mark orphan failed: %w", err)
		}
		if n > 0 {
			slog.Warn("Orphaned job out of attempts, marked failed",
				"job_id", job.ID, "old_pod", pod, "last_heartbeat", beat)
		}
		return n, nil
	}

	n, err := p.client.InboundJob.Update().
		Where(
			inboundjob.IDEQ(job.ID),
			inboundjob.StatusEQ(inboundjob.StatusProcessing),
			inboundjob.LastHeartbeatAtLT(threshold),
		).
		SetStatus(inboundjob.StatusPending).
		SetError(fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", pod, beat)).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphan: %w", err)
	}
	if n > 0 {
		slog.Warn("Orphaned job requeued", "job_id", job.ID, "old_pod", pod, "last_heartbeat", beat)
	}
	return n, nil
}

// RequeueStartupOrphans returns this pod's processing jobs to the queue.
// Called once during startup, before the pool begins claiming: any job still
// claimed by this pod is a leftover from a previous crash of the same
// replica.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.InboundJob.Query().
		Where(
			inboundjob.StatusEQ(inboundjob.StatusProcessing),
			inboundjob.ClaimedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if job.Attempts >= cfg.MaxAttempts {
			err = job.Update().
				SetStatus(inboundjob.StatusFailed).
				SetError(fmt.Sprintf("orphaned on attempt %d: pod %s restarted mid-turn", job.Attempts, podID)).
				Exec(ctx)
		} else {
			err = job.Update().
				SetStatus(inboundjob.StatusPending).
				SetError(fmt.Sprintf("orphaned: pod %s restarted mid-turn", podID)).
				ClearClaimedBy().
				ClearClaimedAt().
				ClearLastHeartbeatAt().
				Exec(ctx)
		}
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID, "attempts", job.Attempts)
	}

	return nil
}

package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/pkg/events"
)

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Register a job
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Cancel should succeed for a registered job
	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for an unknown job
	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Should find it
	assert.True(t, pool.CancelJob("job-1"))

	// Unregister
	pool.UnregisterJob("job-1")

	// Should not find it anymore
	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolGetActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveJobIDs()
	assert.Empty(t, ids)

	// Register jobs
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-a", cancel1)
	pool.RegisterJob("job-b", cancel2)

	ids = pool.getActiveJobIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "job-a")
	assert.Contains(t, ids, "job-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		config:     testQueueConfig(),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestPoolWakeFansOutToWorkers(t *testing.T) {
	cfg := testQueueConfig()
	w1 := NewWorker("w1", "pod-1", nil, cfg, nil, nil, nil)
	w2 := NewWorker("w2", "pod-1", nil, cfg, nil, nil, nil)
	pool := &WorkerPool{
		config:  cfg,
		workers: []*Worker{w1, w2},
	}

	pool.Wake()

	for _, w := range []*Worker{w1, w2} {
		select {
		case <-w.wake:
		default:
			t.Fatalf("worker %s did not receive a wake nudge", w.id)
		}
	}
}

func TestPoolHandleNotificationFiltersChannel(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("w1", "pod-1", nil, cfg, nil, nil, nil)
	pool := &WorkerPool{
		config:  cfg,
		workers: []*Worker{w},
	}

	pool.HandleNotification(events.InboundJobsChannel, []byte("job-1"))
	select {
	case <-w.wake:
	default:
		t.Fatal("inbound jobs notification should wake workers")
	}

	pool.HandleNotification("some_other_channel", nil)
	select {
	case <-w.wake:
		t.Fatal("foreign channel must not wake workers")
	default:
	}
}

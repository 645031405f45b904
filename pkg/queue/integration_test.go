package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/engine"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/outbound"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentTurns:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		MaxAttempts:             3,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// seedConversation creates a business and an open WhatsApp session for the
// given customer.
func seedConversation(ctx context.Context, t *testing.T, client *ent.Client, customerID string) (*ent.User, *ent.ChatSession) {
	t.Helper()
	business, err := services.NewUserService(client).CreateUser(ctx, models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     "Queue Test Kitchen",
		Timezone: "UTC",
	})
	require.NoError(t, err)
	session, err := services.NewSessionService(client).GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: customerID,
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)
	return business, session
}

// enqueueMessage persists a customer message on the session and inserts its
// pending job, the way the webhook intake path does.
func enqueueMessage(ctx context.Context, t *testing.T, client *ent.Client, session *ent.ChatSession, text string) *ent.InboundJob {
	t.Helper()
	msg, err := services.NewSessionService(client).AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:  session.ID,
		SenderType: chatmessage.SenderTypeCustomer,
		Content:    text,
	})
	require.NoError(t, err)
	job, err := client.InboundJob.Create().
		SetID(uuid.New().String()).
		SetBusinessID(session.BusinessID).
		SetSessionID(session.ID).
		SetMessageID(msg.ID).
		SetStatus(inboundjob.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return job
}

// createJob inserts a bare pending job row. Claim and orphan tests exercise
// the queue table alone and do not need the backing message or session rows.
func createJob(ctx context.Context, t *testing.T, client *ent.Client, sessionID string, createdAt time.Time) *ent.InboundJob {
	t.Helper()
	job, err := client.InboundJob.Create().
		SetID(uuid.New().String()).
		SetBusinessID("biz-test").
		SetSessionID(sessionID).
		SetMessageID(uuid.New().String()).
		SetStatus(inboundjob.StatusPending).
		SetCreatedAt(createdAt).
		Save(ctx)
	require.NoError(t, err)
	return job
}

// stubRunner is a TurnRunner with canned behavior.
type stubRunner struct {
	turns    atomic.Int64
	inFlight atomic.Int64

	mu    sync.Mutex
	texts []string

	reply            string
	skipReason       string
	err              error
	releaseCh        chan struct{} // optional: blocks turns until closed
	blockUntilCancel bool          // optional: blocks until ctx is cancelled
}

func (r *stubRunner) RunTurn(ctx context.Context, req *engine.TurnRequest) (*engine.TurnResult, error) {
	r.turns.Add(1)
	r.inFlight.Add(1)
	defer r.inFlight.Add(-1)

	r.mu.Lock()
	r.texts = append(r.texts, req.Text)
	r.mu.Unlock()

	if r.blockUntilCancel {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.releaseCh != nil {
		select {
		case <-r.releaseCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.skipReason != "" {
		return &engine.TurnResult{TurnID: uuid.New().String(), Skipped: true, SkipReason: r.skipReason}, nil
	}
	reply := r.reply
	if reply == "" {
		reply = "Anything else?"
	}
	return &engine.TurnResult{TurnID: uuid.New().String(), Reply: reply, Iterations: 1}, nil
}

func (r *stubRunner) seenTexts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

// sentText is one recorded stubSender delivery.
type sentText struct {
	businessID string
	platform   botintegration.Platform
	to         string
	text       string
}

// stubSender is a ReplySender that records deliveries.
type stubSender struct {
	mu   sync.Mutex
	sent []sentText
	err  error
}

func (s *stubSender) SendText(_ context.Context, businessID string, platform botintegration.Platform, to, text string) (*outbound.SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, sentText{businessID: businessID, platform: platform, to: to, text: text})
	return &outbound.SendResult{ProviderMessageID: fmt.Sprintf("wamid.%d", len(s.sent)), Attempts: 1}, nil
}

func (s *stubSender) deliveries() []sentText {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentText(nil), s.sent...)
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a
// pending job.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	job := createJob(ctx, t, client, uuid.New().String(), time.Now())

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending job")
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, inboundjob.StatusProcessing, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod", *claimed.ClaimedBy)
	require.NotNil(t, claimed.ClaimedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more pending jobs should be available")
}

// TestClaimIsFIFOPerSession tests that jobs in one session are claimed
// strictly in arrival order, one at a time.
func TestClaimIsFIFOPerSession(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sessionID := uuid.New().String()
	base := time.Now().Add(-time.Minute)
	first := createJob(ctx, t, client, sessionID, base)
	second := createJob(ctx, t, client, sessionID, base.Add(time.Second))
	third := createJob(ctx, t, client, sessionID, base.Add(2*time.Second))

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)

	// While the head job is processing, its session is off the menu.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	require.NoError(t, client.InboundJob.UpdateOneID(first.ID).
		SetStatus(inboundjob.StatusCompleted).Exec(ctx))

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	require.NoError(t, client.InboundJob.UpdateOneID(second.ID).
		SetStatus(inboundjob.StatusCompleted).Exec(ctx))

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, third.ID, claimed.ID)
}

// TestRequeuedJobGoesBackToHeadOfLine tests that a requeued job keeps its
// original position: its created_at puts it ahead of newer pending jobs.
func TestRequeuedJobGoesBackToHeadOfLine(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sessionID := uuid.New().String()
	base := time.Now().Add(-time.Minute)
	older := createJob(ctx, t, client, sessionID, base)
	createJob(ctx, t, client, sessionID, base.Add(time.Second))

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.Equal(t, older.ID, claimed.ID)

	// Simulate a failed attempt being returned to the queue.
	w.releaseJob(ctx, claimed, errors.New("transient failure"))

	reclaimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, reclaimed.ID, "requeued job should be claimed before newer jobs")
	assert.Equal(t, 2, reclaimed.Attempts)
}

// TestBusySessionDoesNotBlockOthers tests that a session mid-turn does not
// starve jobs from other sessions.
func TestBusySessionDoesNotBlockOthers(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	busySession := uuid.New().String()
	createJob(ctx, t, client, busySession, base)
	createJob(ctx, t, client, busySession, base.Add(time.Second))
	otherJob := createJob(ctx, t, client, uuid.New().String(), base.Add(2*time.Second))

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, busySession, claimed.SessionID)

	// The busy session's second job is held back; the other session's job is
	// still claimable.
	claimed2, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, otherJob.ID, claimed2.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

// TestConcurrentClaimsDistinctJobs tests that concurrent workers claim
// different jobs.
func TestConcurrentClaimsDistinctJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createJob(ctx, t, client, uuid.New().String(), time.Now())
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			job, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, job.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 jobs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestPoolProcessesJobEndToEnd tests the full path: claim, turn, delivery,
// outbound log, terminal status.
func TestPoolProcessesJobEndToEnd(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	business, session := seedConversation(ctx, t, client, "+15550100")

	runner := &stubRunner{reply: "Your order is in! Anything else?"}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := enqueueMessage(ctx, t, client, session, "Two falafel wraps please")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for job to complete",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusCompleted
		})

	updated, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusCompleted, updated.Status)
	assert.Equal(t, 1, updated.Attempts)
	assert.Nil(t, updated.Error)

	// The turn saw the customer's text
	assert.Equal(t, []string{"Two falafel wraps please"}, runner.seenTexts())

	// The reply went out on the customer's channel
	deliveries := sender.deliveries()
	require.Len(t, deliveries, 1)
	assert.Equal(t, business.ID, deliveries[0].businessID)
	assert.Equal(t, botintegration.PlatformWhatsapp, deliveries[0].platform)
	assert.Equal(t, "+15550100", deliveries[0].to)
	assert.Equal(t, "Your order is in! Anything else?", deliveries[0].text)

	// And was recorded on the thread with the provider's message id
	botMsgs, err := client.ChatMessage.Query().
		Where(
			chatmessage.SessionIDEQ(session.ID),
			chatmessage.SenderTypeEQ(chatmessage.SenderTypeBot),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, botMsgs, 1)
	assert.Equal(t, "Your order is in! Anything else?", botMsgs[0].Content)
	require.NotNil(t, botMsgs[0].ProviderMessageID)
	assert.Equal(t, "wamid.1", *botMsgs[0].ProviderMessageID)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "test-pod", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)
}

// TestSkippedTurnSendsNothing tests that a skipped turn completes the job
// without any outbound traffic.
func TestSkippedTurnSendsNothing(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550200")

	runner := &stubRunner{skipReason: "session is handed over to a human"}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := enqueueMessage(ctx, t, client, session, "are you still there?")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for job to complete",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusCompleted
		})

	assert.Empty(t, sender.deliveries(), "skipped turn must not send anything")

	botCount, err := client.ChatMessage.Query().
		Where(
			chatmessage.SessionIDEQ(session.ID),
			chatmessage.SenderTypeEQ(chatmessage.SenderTypeBot),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, botCount, "skipped turn must not append a bot message")
}

// TestFailedTurnRequeuesThenFails tests that a failing turn is retried until
// MaxAttempts and then parked as failed.
func TestFailedTurnRequeuesThenFails(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550300")

	runner := &stubRunner{err: errors.New("model melted")}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.MaxAttempts = 2

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := enqueueMessage(ctx, t, client, session, "hello?")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for job to fail permanently",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusFailed
		})

	updated, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Attempts)
	require.NotNil(t, updated.Error)
	assert.Contains(t, *updated.Error, "giving up after 2 attempts")
	assert.Contains(t, *updated.Error, "model melted")
	assert.Equal(t, int64(2), runner.turns.Load())
	assert.Empty(t, sender.deliveries())
}

// TestDeliveryFailureIsTerminal tests that a send failure does not requeue
// the job: the turn's side effects are already committed.
func TestDeliveryFailureIsTerminal(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550400")

	runner := &stubRunner{reply: "Order placed."}
	sender := &stubSender{err: errors.New("whatsapp returned 500")}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := enqueueMessage(ctx, t, client, session, "one lentil soup")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for job to fail",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusFailed
		})

	updated, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Attempts, "delivery failure must not trigger a retry")
	require.NotNil(t, updated.Error)
	assert.Contains(t, *updated.Error, "delivery failed")
	assert.Equal(t, int64(1), runner.turns.Load(), "the turn must not re-run")
}

// TestOrphanScanRequeuesStaleJobs tests that processing jobs with stale
// heartbeats are returned to the queue, or failed once out of attempts.
func TestOrphanScanRequeuesStaleJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	staleBeat := time.Now().Add(-10 * time.Minute)

	makeOrphan := func(attempts int) *ent.InboundJob {
		job, err := client.InboundJob.Create().
			SetID(uuid.New().String()).
			SetBusinessID("biz-test").
			SetSessionID(uuid.New().String()).
			SetMessageID(uuid.New().String()).
			SetStatus(inboundjob.StatusProcessing).
			SetAttempts(attempts).
			SetClaimedBy("crashed-pod").
			SetClaimedAt(staleBeat).
			SetLastHeartbeatAt(staleBeat).
			Save(ctx)
		require.NoError(t, err)
		return job
	}

	retryable := makeOrphan(1)
	spent := makeOrphan(3)

	cfg := intTestQueueConfig()
	pool := &WorkerPool{
		podID:  "scanner-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.requeueOrphans(ctx))

	requeued, err := client.InboundJob.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusPending, requeued.Status)
	assert.Equal(t, 1, requeued.Attempts, "requeue must not consume an attempt")
	assert.Nil(t, requeued.ClaimedBy)
	assert.Nil(t, requeued.ClaimedAt)
	assert.Nil(t, requeued.LastHeartbeatAt)
	require.NotNil(t, requeued.Error)
	assert.Contains(t, *requeued.Error, "orphaned")
	assert.Contains(t, *requeued.Error, "crashed-pod")

	dead, err := client.InboundJob.Get(ctx, spent.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusFailed, dead.Status)
	require.NotNil(t, dead.Error)
	assert.Contains(t, *dead.Error, "orphaned on attempt 3")

	pool.orphans.mu.Lock()
	assert.Equal(t, 2, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanScanLeavesFreshJobsAlone tests that a healthy heartbeat keeps a
// processing job off the orphan scan.
func TestOrphanScanLeavesFreshJobsAlone(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	job, err := client.InboundJob.Create().
		SetID(uuid.New().String()).
		SetBusinessID("biz-test").
		SetSessionID(uuid.New().String()).
		SetMessageID(uuid.New().String()).
		SetStatus(inboundjob.StatusProcessing).
		SetAttempts(1).
		SetClaimedBy("live-pod").
		SetClaimedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:  "scanner-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.requeueOrphans(ctx))

	fresh, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusProcessing, fresh.Status)
	require.NotNil(t, fresh.ClaimedBy)
	assert.Equal(t, "live-pod", *fresh.ClaimedBy)
}

// TestStartupOrphanRequeue tests the one-time startup sweep over this pod's
// leftover claims.
func TestStartupOrphanRequeue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "restart-pod"
	claimTime := time.Now().Add(-time.Minute)

	makeClaimed := func(pod string, attempts int) *ent.InboundJob {
		job, err := client.InboundJob.Create().
			SetID(uuid.New().String()).
			SetBusinessID("biz-test").
			SetSessionID(uuid.New().String()).
			SetMessageID(uuid.New().String()).
			SetStatus(inboundjob.StatusProcessing).
			SetAttempts(attempts).
			SetClaimedBy(pod).
			SetClaimedAt(claimTime).
			SetLastHeartbeatAt(claimTime).
			Save(ctx)
		require.NoError(t, err)
		return job
	}

	mine := makeClaimed(podID, 1)
	spent := makeClaimed(podID, 3)
	other := makeClaimed("other-pod", 1)

	cfg := intTestQueueConfig()
	require.NoError(t, RequeueStartupOrphans(ctx, client, cfg, podID))

	requeued, err := client.InboundJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusPending, requeued.Status)
	assert.Nil(t, requeued.ClaimedBy)
	require.NotNil(t, requeued.Error)
	assert.Contains(t, *requeued.Error, "restarted mid-turn")

	dead, err := client.InboundJob.Get(ctx, spent.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusFailed, dead.Status)

	untouched, err := client.InboundJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusProcessing, untouched.Status, "other pod's job should be untouched")
}

// TestHeartbeatKeepsJobFresh tests that heartbeats advance last_heartbeat_at
// while a turn is running.
func TestHeartbeatKeepsJobFresh(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550500")

	releaseCh := make(chan struct{})
	runner := &stubRunner{releaseCh: releaseCh}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := enqueueMessage(ctx, t, client, session, "still deciding")

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusProcessing && j.LastHeartbeatAt != nil
		})

	j1, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, j1.LastHeartbeatAt)
	initialBeat := *j1.LastHeartbeatAt

	// Wait for at least one heartbeat tick
	time.Sleep(250 * time.Millisecond)

	j2, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, inboundjob.StatusProcessing, j2.Status, "job should still be processing")
	require.NotNil(t, j2.LastHeartbeatAt)
	assert.True(t, j2.LastHeartbeatAt.After(initialBeat), "last_heartbeat_at should be advanced by the heartbeat")

	close(releaseCh)
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for job to complete",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusCompleted
		})
}

// TestCapacityLimitHoldsTurns tests that the global concurrent turn limit is
// enforced.
func TestCapacityLimitHoldsTurns(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sessions := make([]*ent.ChatSession, 0, 5)
	for i := 0; i < 5; i++ {
		_, session := seedConversation(ctx, t, client, fmt.Sprintf("+1555060%d", i))
		sessions = append(sessions, session)
	}
	for i, session := range sessions {
		enqueueMessage(ctx, t, client, session, fmt.Sprintf("message %d", i))
	}

	// Use WorkerCount == MaxConcurrentTurns: the capacity check is
	// best-effort, so extra workers could momentarily overshoot.
	releaseCh := make(chan struct{})
	runner := &stubRunner{releaseCh: releaseCh}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentTurns = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // keep the scan out of this test

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for turns to reach the concurrency limit",
		func() bool { return runner.inFlight.Load() == 2 })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(2), runner.inFlight.Load(), "in-flight turns must hold at the limit")

	dbProcessing, err := client.InboundJob.Query().
		Where(inboundjob.StatusEQ(inboundjob.StatusProcessing)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dbProcessing, "DB should show exactly the limit processing")

	close(releaseCh)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for all turns to run",
		func() bool { return runner.turns.Load() >= 5 })

	pool.Stop()

	completed, err := client.InboundJob.Query().
		Where(inboundjob.StatusEQ(inboundjob.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completed, "all 5 jobs should complete")
}

// TestWakeSkipsPollDelay tests that a NOTIFY-style nudge makes workers claim
// a fresh job without waiting out the poll interval.
func TestWakeSkipsPollDelay(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550700")

	runner := &stubRunner{reply: "On it."}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = time.Hour // only a wake can get the job picked up
	cfg.PollIntervalJitter = 0

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Let the first (empty) poll pass and the worker settle into its sleep.
	time.Sleep(500 * time.Millisecond)

	job := enqueueMessage(ctx, t, client, session, "wake up please")
	pool.HandleNotification(events.InboundJobsChannel, []byte(job.ID))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for the woken worker to process the job",
		func() bool {
			j, err := client.InboundJob.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == inboundjob.StatusCompleted
		})
}

// TestStopCancelsStragglersAfterTimeout tests the shutdown path: turns still
// running when the graceful window closes are cancelled and their jobs
// requeued.
func TestStopCancelsStragglersAfterTimeout(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, session := seedConversation(ctx, t, client, "+15550800")

	runner := &stubRunner{blockUntilCancel: true}
	sender := &stubSender{}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.GracefulShutdownTimeout = 200 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, cfg, runner, sender)
	require.NoError(t, pool.Start(ctx))

	job := enqueueMessage(ctx, t, client, session, "this one hangs")

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for the turn to start",
		func() bool { return runner.inFlight.Load() == 1 })

	start := time.Now()
	pool.Stop()
	assert.Less(t, time.Since(start), 5*time.Second, "Stop must not wait out the hung turn")

	updated, err := client.InboundJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, inboundjob.StatusPending, updated.Status, "cancelled turn should requeue its job")
	assert.Equal(t, 1, updated.Attempts)
	require.NotNil(t, updated.Error)
	assert.Contains(t, *updated.Error, "context canceled")
	assert.Equal(t, int64(1), runner.turns.Load())
}

// TestPoolHealthBeforeStart tests health reporting for a pool that has not
// claimed anything yet.
func TestPoolHealthBeforeStart(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	createJob(ctx, t, client, uuid.New().String(), time.Now())
	createJob(ctx, t, client, uuid.New().String(), time.Now())

	pool := NewWorkerPool("idle-pod", client, intTestQueueConfig(), nil, nil)

	health := pool.Health()
	assert.False(t, health.IsHealthy, "a pool with no workers is not healthy")
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, 0, health.TotalWorkers)
	assert.Equal(t, 0, health.ActiveJobs)
}

package config

import "time"

// QueueConfig contains inbound job queue and worker pool configuration.
// These values control how inbound message jobs are polled, claimed, and
// processed across replicas.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes inbound jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTurns is the global limit of turns being processed across
	// ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTurns int `yaml:"max_concurrent_turns"`

	// PollInterval is the base interval for checking pending jobs. Workers
	// are also woken early by a NOTIFY from the webhook path.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at on
	// its claimed job.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active turns to
	// complete during shutdown. Should exceed the engine turn timeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a processing job can go without a
	// heartbeat before it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxAttempts is how many times an orphaned or failed job is requeued
	// before being marked failed permanently.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTurns:      25,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       10 * time.Second,
		GracefulShutdownTimeout: 45 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
		MaxAttempts:             3,
	}
}

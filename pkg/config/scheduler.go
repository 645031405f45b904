package config

import "time"

// SchedulerConfig controls the background maintenance jobs: the scheduled
// order completer, the cold-store archiver, and the idle session reaper.
type SchedulerConfig struct {
	// CompleterInterval is how often due scheduled orders are completed.
	CompleterInterval time.Duration `yaml:"completer_interval"`

	// CompleterBatchSize caps how many due orders one completer pass handles.
	CompleterBatchSize int `yaml:"completer_batch_size"`

	// ArchiveCron is the archiver schedule in standard 5-field cron syntax.
	// Overridable via ARCHIVE_JOB_CRON.
	ArchiveCron string `yaml:"archive_cron"`

	// ArchiveOrderAgeHours is the minimum age of a terminal order before it
	// is moved to the cold store. Overridable via ARCHIVE_ORDER_AGE_HOURS.
	ArchiveOrderAgeHours int `yaml:"archive_order_age_hours"`

	// ArchiveBatchSize caps how many orders one archiver pass moves.
	ArchiveBatchSize int `yaml:"archive_batch_size"`

	// SessionIdleMinutes is how long a session may sit without activity
	// before the reaper closes it. Overridable via SESSION_IDLE_MINUTES.
	SessionIdleMinutes int `yaml:"session_idle_minutes"`

	// SessionReaperInterval is how often idle sessions are scanned.
	SessionReaperInterval time.Duration `yaml:"session_reaper_interval"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		CompleterInterval:     1 * time.Minute,
		CompleterBatchSize:    100,
		ArchiveCron:           "0 2 * * *",
		ArchiveOrderAgeHours:  24,
		ArchiveBatchSize:      100,
		SessionIdleMinutes:    1440,
		SessionReaperInterval: 10 * time.Minute,
	}
}

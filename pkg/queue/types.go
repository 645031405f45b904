// Package queue claims and processes inbound message jobs.
//
// Webhooks persist the customer message, insert an InboundJob row, and fire
// a NOTIFY; the worker pool here claims jobs with SELECT ... FOR UPDATE
// SKIP LOCKED, runs one engine turn per job, and delivers the reply back on
// the channel the message arrived on. Claims are FIFO per session: a session
// with a processing job, or with an older pending job, is skipped so one
// conversation never runs two turns at once.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/engine"
	"github.com/vendrahq/vendra/pkg/outbound"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent turn limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TurnRunner runs one conversational turn for an inbound message.
// Satisfied by *engine.Engine.
type TurnRunner interface {
	RunTurn(ctx context.Context, req *engine.TurnRequest) (*engine.TurnResult, error)
}

// ReplySender delivers a reply on the customer's channel.
// Satisfied by *outbound.Dispatcher.
type ReplySender interface {
	SendText(ctx context.Context, businessID string, platform botintegration.Platform, to, text string) (*outbound.SendResult, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

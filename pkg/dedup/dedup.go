// Package dedup suppresses duplicate webhook deliveries. Channels redeliver
// on slow acks, so every inbound message is checked against a short-lived
// key before a job is enqueued.
package dedup

import (
	"context"
	"fmt"
	"time"
)

// DefaultWindow is how long a provider message id is remembered.
const DefaultWindow = 10 * time.Minute

// Deduper marks a key and reports whether it was already marked inside the
// window. Mark and check are one atomic step.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
}

// InboundKey builds the dedup key for one webhook delivery.
func InboundKey(platform, providerMessageID string) string {
	return fmt.Sprintf("inbound:%s:%s", platform, providerMessageID)
}

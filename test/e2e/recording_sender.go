package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/outbound"
)

// Delivery is one message a RecordingSender accepted.
type Delivery struct {
	To   string
	Text string
	At   time.Time
}

// RecordingSender satisfies outbound.Sender and records deliveries instead
// of calling a provider. FailNext makes the next sends fail with a transient
// error for retry and failure-path tests.
type RecordingSender struct {
	platform botintegration.Platform

	mu         sync.Mutex
	deliveries []Delivery
	failNext   int
}

func NewRecordingSender(platform botintegration.Platform) *RecordingSender {
	return &RecordingSender{platform: platform}
}

func (s *RecordingSender) Platform() botintegration.Platform { return s.platform }

func (s *RecordingSender) SendMessage(_ context.Context, _ outbound.Credentials, to, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext > 0 {
		s.failNext--
		return "", &outbound.APIError{Platform: string(s.platform), Status: 503, Body: "scripted outage"}
	}
	s.deliveries = append(s.deliveries, Delivery{To: to, Text: text, At: time.Now()})
	return fmt.Sprintf("rec-%s-%d", s.platform, len(s.deliveries)), nil
}

func (s *RecordingSender) SendImage(ctx context.Context, _ outbound.Credentials, to string, p outbound.Payload) (string, error) {
	return s.SendMessage(ctx, outbound.Credentials{}, to, p.Text)
}

// FailNext makes the next n SendMessage calls return a retryable error.
func (s *RecordingSender) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// Deliveries returns a snapshot of everything sent so far.
func (s *RecordingSender) Deliveries() []Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Delivery, len(s.deliveries))
	copy(out, s.deliveries)
	return out
}

// Count returns how many messages were delivered.
func (s *RecordingSender) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deliveries)
}

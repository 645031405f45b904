package dedup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDeduper_FirstDeliveryPasses(t *testing.T) {
	d := NewMemoryDeduper(time.Minute)
	ctx := context.Background()

	seen, err := d.Seen(ctx, InboundKey("whatsapp", "wamid.1"))
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = d.Seen(ctx, InboundKey("whatsapp", "wamid.1"))
	require.NoError(t, err)
	assert.True(t, seen)

	// Same provider id on another platform is a different delivery.
	seen, err = d.Seen(ctx, InboundKey("telegram", "wamid.1"))
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMemoryDeduper_WindowExpires(t *testing.T) {
	d := NewMemoryDeduper(20 * time.Millisecond)
	ctx := context.Background()

	seen, err := d.Seen(ctx, "inbound:whatsapp:wamid.2")
	require.NoError(t, err)
	assert.False(t, seen)

	time.Sleep(30 * time.Millisecond)

	seen, err = d.Seen(ctx, "inbound:whatsapp:wamid.2")
	require.NoError(t, err)
	assert.False(t, seen, "expired key should be accepted again")
}

func TestMemoryDeduper_ConcurrentMarksAdmitExactlyOne(t *testing.T) {
	d := NewMemoryDeduper(time.Minute)
	ctx := context.Background()

	const goroutines = 16
	var wg sync.WaitGroup
	admitted := make(chan struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen, err := d.Seen(ctx, "inbound:whatsapp:wamid.3")
			if err == nil && !seen {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestMemoryDeduper_SweepDropsExpiredKeys(t *testing.T) {
	d := NewMemoryDeduper(time.Nanosecond)
	ctx := context.Background()

	for i := 0; i < sweepEvery+1; i++ {
		_, err := d.Seen(ctx, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Less(t, len(d.expiry), sweepEvery)
}

func TestInboundKey(t *testing.T) {
	assert.Equal(t, "inbound:whatsapp:wamid.abc", InboundKey("whatsapp", "wamid.abc"))
}

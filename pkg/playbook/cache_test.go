package playbook

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("https://example.com/playbook.md", "# House Style")

	content, ok := cache.Get("https://example.com/playbook.md")
	assert.True(t, ok)
	assert.Equal(t, "# House Style", content)
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	content, ok := cache.Get("https://example.com/nonexistent.md")
	assert.False(t, ok)
	assert.Equal(t, "", content)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)

	cache.Set("https://example.com/playbook.md", "content")

	// Present immediately
	content, ok := cache.Get("https://example.com/playbook.md")
	assert.True(t, ok)
	assert.Equal(t, "content", content)

	time.Sleep(60 * time.Millisecond)

	// Expired
	content, ok = cache.Get("https://example.com/playbook.md")
	assert.False(t, ok)
	assert.Equal(t, "", content)
}

func TestCache_Overwrite(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("https://example.com/playbook.md", "old content")
	cache.Set("https://example.com/playbook.md", "new content")

	content, ok := cache.Get("https://example.com/playbook.md")
	assert.True(t, ok)
	assert.Equal(t, "new content", content)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Set("https://example.com/playbook.md", "content")
		}()
		go func() {
			defer wg.Done()
			cache.Get("https://example.com/playbook.md")
		}()
	}
	wg.Wait()

	content, ok := cache.Get("https://example.com/playbook.md")
	assert.True(t, ok)
	assert.Equal(t, "content", content)
}

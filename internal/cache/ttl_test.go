package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := New[string](time.Minute)
	c.now = func() time.Time { return clock }

	t.Run("MissOnEmpty", func(t *testing.T) {
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("HitWithinTTL", func(t *testing.T) {
		c.Set("a", "hello")
		clock = clock.Add(30 * time.Second)
		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("MissAfterTTL", func(t *testing.T) {
		clock = clock.Add(2 * time.Minute)
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("SetRefreshesExpiry", func(t *testing.T) {
		c.Set("b", "one")
		clock = clock.Add(45 * time.Second)
		c.Set("b", "two")
		clock = clock.Add(45 * time.Second)
		v, ok := c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, "two", v)
	})

	t.Run("InvalidateDropsOnlyNamedKeys", func(t *testing.T) {
		c.Set("x", "1")
		c.Set("y", "2")
		c.Set("z", "3")
		c.Invalidate("x", "y")
		_, ok := c.Get("x")
		assert.False(t, ok)
		_, ok = c.Get("y")
		assert.False(t, ok)
		v, ok := c.Get("z")
		assert.True(t, ok)
		assert.Equal(t, "3", v)
	})
}

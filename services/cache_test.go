package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("key", []byte("value"))

	got, exists := c.Get("key")
	assert.True(t, exists)
	assert.Equal(t, []byte("value"), got)
}

func TestGetMissingKey(t *testing.T) {
	c := NewCache(time.Minute)

	_, exists := c.Get("absent")
	assert.False(t, exists)
}

func TestPerKeyTTLExpiry(t *testing.T) {
	c := NewCache(time.Minute)

	c.SetWithTTL("short", []byte("value"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	_, exists := c.Get("short")
	assert.False(t, exists)
}

func TestDeletePrefix(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("login_rate_limit:1.2.3.4", []byte("a"))
	c.Set("login_rate_limit:5.6.7.8", []byte("b"))
	c.Set("other:key", []byte("c"))

	c.DeletePrefix("login_rate_limit:")

	_, exists := c.Get("login_rate_limit:1.2.3.4")
	assert.False(t, exists)
	_, exists = c.Get("other:key")
	assert.True(t, exists)
}

func TestCleanupDropsExpiredOnly(t *testing.T) {
	c := NewCache(time.Minute)

	c.SetWithTTL("expired", []byte("a"), time.Nanosecond)
	c.Set("live", []byte("b"))
	time.Sleep(5 * time.Millisecond)

	c.Cleanup()

	_, exists := c.Get("expired")
	assert.False(t, exists)
	_, exists = c.Get("live")
	assert.True(t, exists)
}

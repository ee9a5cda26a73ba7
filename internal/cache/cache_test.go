package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("k", "v")
	got, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", got)
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	_, found := c.Get("nope")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("k", 1)
	c.Delete("k")
	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("suggestion:teh", 1)
	c.Set("suggestion:kopi", 2)
	c.Set("other:key", 3)

	c.DeleteByPrefix("suggestion:")

	assert.Equal(t, 1, c.Size())
	_, found := c.Get("other:key")
	assert.True(t, found)
}

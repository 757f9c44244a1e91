package ratecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectWithEmptyURLReturnsNil(t *testing.T) {
	c := Connect("")
	assert.Nil(t, c)
}

func TestConnectWithInvalidURLReturnsNil(t *testing.T) {
	c := Connect("not-a-valid-redis-url")
	assert.Nil(t, c)
}

func TestConnectWithUnreachableHostReturnsNil(t *testing.T) {
	c := Connect("redis://127.0.0.1:1/0")
	assert.Nil(t, c)
}

func TestNilCacheGetIsSafeCacheMiss(t *testing.T) {
	var c *Cache
	var dest string
	hit, err := c.Get(context.Background(), "key", &dest)
	assert.False(t, hit)
	assert.NoError(t, err)
}

func TestNilCacheSetIsSafeNoop(t *testing.T) {
	var c *Cache
	err := c.Set(context.Background(), "key", "value", time.Minute)
	assert.NoError(t, err)
}

func TestNilCacheCloseIsSafeNoop(t *testing.T) {
	var c *Cache
	assert.NoError(t, c.Close())
}

func TestPercentileInitKeyIsDeterministicPerHash(t *testing.T) {
	a := PercentileInitKey(12345)
	b := PercentileInitKey(12345)
	c := PercentileInitKey(54321)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := GetCache()
	c.Set("cache-test-key", "value", time.Minute)
	assert.Equal(t, "value", c.Get("cache-test-key"))

	c.Delete("cache-test-key")
	assert.Nil(t, c.Get("cache-test-key"))
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Set("cache-expiry-key", "value", -time.Second)
	assert.Nil(t, c.Get("cache-expiry-key"))
}

func TestCacheMiss(t *testing.T) {
	assert.Nil(t, GetCache().Get("never-set"))
}

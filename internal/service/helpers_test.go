package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/cache"
)

// newTestCache returns a cache backed by an in-process redis.
func newTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return cache.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func floatPtr(f float64) *float64 {
	return &f
}

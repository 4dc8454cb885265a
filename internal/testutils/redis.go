// Package testutils provides shared helpers and fixtures for tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// CreateTestRedisClient starts an in-process redis and returns a client
// against it. Both are torn down with the test.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// CreateTestRedisWithServer is CreateTestRedisClient but also hands back
// the server, for tests that manipulate time or inspect keys directly
func CreateTestRedisWithServer(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return mr, client
}

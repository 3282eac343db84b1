// Package redisstore keeps structure templates in Redis so a fleet of
// generators can share one template set.
package redisstore

import (
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so tests can substitute an in-memory
// server.
type Client interface {
	redis.UniversalClient
}

// NewClient creates a client for a single Redis instance. Redis connects
// lazily, so an unreachable endpoint surfaces on first use.
func NewClient(endpoint string) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redisstore: endpoint is required")
	}
	return redis.NewClient(&redis.Options{Addr: endpoint}), nil
}

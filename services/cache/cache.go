package cache

import (
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is not cached
var ErrMiss = errors.New("cache: miss")

// CacheService represents a generic cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// PageKey is the cache key of a subject's raw catalog page
func PageKey(subject string) string {
	return "catalog:page:" + subject
}

// ContentTypeKey is the cache key of the Content-Type header served with
// a subject's catalog page
func ContentTypeKey(subject string) string {
	return "catalog:ctype:" + subject
}

package internal

import (
	"sjsage522/courseadvisor/services/cache"
	"sjsage522/courseadvisor/services/publisher"
)

// Dependencies holds the optional services an extraction run uses.
// Either field may be nil when the service is not configured.
type Dependencies struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup closes every service that holds a connection
func (d *Dependencies) Cleanup() {
	if d.Publisher != nil {
		d.Publisher.Close()
	}
}

package publisher

// Publisher represents a service for publishing extracted catalog entries
type Publisher interface {
	// Publish publishes a message under a field key (the subject code)
	Publish(key string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}

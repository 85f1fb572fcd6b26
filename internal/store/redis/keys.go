package redis

const (
	// DefaultPrefix namespaces every launchpad key
	DefaultPrefix = "launchpad:"
)

// BlobKey returns the Redis key for a persisted collection
func BlobKey(prefix, key string) string {
	return prefix + key
}

// Package storage abstracts the durable local key-value store the client
// keeps its session state in (the browser localStorage equivalent).
package storage

// Storage is a small durable key-value store. Implementations must make
// multi-key Delete effectively atomic so paired keys are cleared together.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Delete removes all given keys in one operation; missing keys are not
	// an error.
	Delete(keys ...string) error
}

package storage

// Provider is the keyed local store: a key -> JSON document mapping used as
// the sole durable home for the completion ledger, custom tasks, and the
// program/project lists.
//
// Get, Set, and Remove never fail loudly. Serialization or medium failures
// are logged and treated as a no-op (Set/Remove) or a miss (Get). Get reports
// false for missing or corrupt values and never yields partially-parsed data.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get unmarshals the value stored under key into v and reports whether a
	// usable value was found.
	Get(key string, v any) bool
	Set(key string, v any)
	Remove(key string)

	// Utils
	GetConfigPath() string
}

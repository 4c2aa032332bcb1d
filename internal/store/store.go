// Package store provides the durable key-value storage backing client
// state across process restarts.
package store

// Keys owned by the session manager and the preferences component. No
// other component reads or writes these entries directly.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// Store is a minimal key-value capability so the backing medium can be
// swapped without touching its consumers. Get reports ok=false for an
// absent key; absence is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

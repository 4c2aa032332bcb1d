package auth

// User is the identity record returned by the auth service and persisted
// alongside the bearer token. IDs are treated as opaque strings even when
// the service emits numbers.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

package auth

// Session captures the currently authenticated identity, or its absence.
type Session struct {
	User  User
	Token string
}

// Authenticated reports whether both halves of the session are present.
// A token without a user record (or the reverse) never counts.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User.ID != ""
}

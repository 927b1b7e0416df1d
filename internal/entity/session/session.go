package session

import "time"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

// Expired reports whether the access token is no longer valid at t.
func (s *Session) Expired(t time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && !t.Before(s.ExpiresAt)
}

// UserOf returns the user of s or nil.
func UserOf(s *Session) *User {
	if s == nil {
		return nil
	}
	return s.User
}

type Event string

const (
	InitialSession Event = "INITIAL_SESSION"
	SignedIn       Event = "SIGNED_IN"
	SignedOut      Event = "SIGNED_OUT"
	TokenRefreshed Event = "TOKEN_REFRESHED"
	UserUpdated    Event = "USER_UPDATED"
)

// Listener receives auth state changes.
type Listener func(event Event, s *Session)

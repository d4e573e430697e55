package domain

import "time"

// SessionLease tracks the usage of a backend session for idle reaping
type SessionLease struct {
	CreatedAt time.Time     // When the session was established
	LastUsed  time.Time     // Last time an operation acquired the session
	timeout   time.Duration // Configurable idle timeout
}

// NewSessionLease creates a lease for a session established at now
func NewSessionLease(now time.Time, timeout time.Duration) *SessionLease {
	return &SessionLease{
		CreatedAt: now,
		LastUsed:  now,
		timeout:   timeout,
	}
}

// Touch records a use of the session
func (l *SessionLease) Touch(now time.Time) {
	l.LastUsed = now
}

// IdleFor returns how long the session has not been used
func (l *SessionLease) IdleFor(now time.Time) time.Duration {
	return now.Sub(l.LastUsed)
}

// IsIdle checks if the time since the last use exceeds the idle timeout
func (l *SessionLease) IsIdle(now time.Time) bool {
	return l.IdleFor(now) > l.timeout
}

// Timeout returns the configured idle timeout
func (l *SessionLease) Timeout() time.Duration {
	return l.timeout
}

// SessionStatus struct - health snapshot of one binding's session
type SessionStatus struct {
	Binding  string     `json:"binding"`
	Open     bool       `json:"open"`
	LastUsed *time.Time `json:"last_used,omitempty"`
}

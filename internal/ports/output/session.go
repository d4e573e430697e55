package output

import "context"

// Session interface - Output port
// An authenticated connection to the backend repository. It is owned by
// exactly one session manager and released with Close.
type Session interface {
	// Close releases the connection. Requests issued afterwards fail with
	// domain.ErrSessionClosed.
	Close() error
}

// Connector interface - Output port
// Establishes sessions of one backend binding.
type Connector[S Session] interface {
	// Connect authenticates against the backend and returns a live session.
	// Returns an error wrapping domain.ErrConnection when the backend cannot
	// be reached or refuses the credentials.
	Connect(ctx context.Context) (S, error)
}

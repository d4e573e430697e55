package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Default session lifecycle values
const (
	DefaultIdleTimeout   = 30 * time.Second
	DefaultCheckInterval = 5 * time.Second
)

// SessionManager owns at most one live backend session, creates it on first
// use and closes it once it has been idle longer than the idle timeout.
type SessionManager[S output.Session] struct {
	name          string
	connector     output.Connector[S]
	idleTimeout   time.Duration
	checkInterval time.Duration
	now           func() time.Time

	// mu guards get-or-create + touch against the watchdog's idle check + close
	mu      sync.Mutex
	session S
	lease   *domain.SessionLease
	stop    context.CancelFunc
}

// NewSessionManager creates a manager for one backend binding.
// Non-positive durations fall back to DefaultIdleTimeout and DefaultCheckInterval.
func NewSessionManager[S output.Session](name string, connector output.Connector[S], idleTimeout, checkInterval time.Duration) *SessionManager[S] {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if checkInterval <= 0 {
		checkInterval = DefaultCheckInterval
	}
	return &SessionManager[S]{
		name:          name,
		connector:     connector,
		idleTimeout:   idleTimeout,
		checkInterval: checkInterval,
		now:           time.Now,
	}
}

// Acquire returns the live session, connecting first if there is none.
// Every call refreshes the last-used timestamp. A new session starts its own
// watchdog. Connection failures are returned as is, wrapped in
// domain.ErrConnection; nothing is retried.
func (m *SessionManager[S]) Acquire(ctx context.Context) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.lease != nil {
		m.lease.Touch(now)
		return m.session, nil
	}

	session, err := m.connector.Connect(ctx)
	if err != nil {
		var zero S
		if errors.Is(err, domain.ErrConnection) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %s: %w", domain.ErrConnection, m.name, err)
	}

	m.session = session
	m.lease = domain.NewSessionLease(now, m.idleTimeout)

	watchCtx, stop := context.WithCancel(context.Background())
	m.stop = stop
	go m.watch(watchCtx)

	logrus.Infof("%s session established, idle timeout: %v", m.name, m.idleTimeout)

	return session, nil
}

// Shutdown closes the live session, if any, and stops its watchdog.
// It is safe to call repeatedly or before any session was created.
func (m *SessionManager[S]) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lease == nil {
		return
	}
	m.closeLocked()
	logrus.Infof("%s session shut down", m.name)
}

// IsOpen reports whether a session is currently held.
func (m *SessionManager[S]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lease != nil
}

// LastUsed returns the last-used timestamp of the live session, or the zero
// time when there is none.
func (m *SessionManager[S]) LastUsed() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lease == nil {
		return time.Time{}
	}
	return m.lease.LastUsed
}

// watch polls the lease until the session is reaped or the watchdog is
// cancelled by Shutdown.
func (m *SessionManager[S]) watch(ctx context.Context) {
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.reapIfIdle(ctx) {
				return
			}
		}
	}
}

// reapIfIdle closes the session when it has been idle past the timeout.
// It returns true once the watchdog has nothing left to watch.
func (m *SessionManager[S]) reapIfIdle(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	// the session this watchdog belongs to is already gone
	if ctx.Err() != nil || m.lease == nil {
		return true
	}

	now := m.now()
	if !m.lease.IsIdle(now) {
		return false
	}

	logrus.Infof("%s session idle for %v, closing", m.name, m.lease.IdleFor(now))
	m.closeLocked()
	return true
}

func (m *SessionManager[S]) closeLocked() {
	if m.stop != nil {
		m.stop()
	}
	if err := m.session.Close(); err != nil {
		logrus.Warnf("%s session close failed: %v", m.name, err)
	}

	var zero S
	m.session = zero
	m.lease = nil
	m.stop = nil
}

package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIdleTimeout   = time.Minute
	testCheckInterval = 5 * time.Millisecond
)

// newTestManager builds a manager whose connector hands out a fresh mock
// session per Connect and whose clock only moves when advanced.
func newTestManager(t *testing.T) (*SessionManager[output.AutomationSession], *MockConnector[output.AutomationSession], *fakeClock, *[]*MockAutomationSession) {
	t.Helper()

	var (
		mu       sync.Mutex
		sessions []*MockAutomationSession
	)
	connector := &MockConnector[output.AutomationSession]{
		ConnectFunc: func(ctx context.Context) (output.AutomationSession, error) {
			session := &MockAutomationSession{}
			mu.Lock()
			sessions = append(sessions, session)
			mu.Unlock()
			return session, nil
		},
	}

	clock := newFakeClock()
	manager := NewSessionManager[output.AutomationSession]("automation", connector, testIdleTimeout, testCheckInterval)
	manager.now = clock.Now
	t.Cleanup(manager.Shutdown)

	return manager, connector, clock, &sessions
}

func TestNewSessionManagerDefaults(t *testing.T) {
	manager := NewSessionManager[output.AutomationSession]("automation", &MockConnector[output.AutomationSession]{}, 0, -time.Second)

	assert.Equal(t, DefaultIdleTimeout, manager.idleTimeout)
	assert.Equal(t, DefaultCheckInterval, manager.checkInterval)
	assert.False(t, manager.IsOpen())
	assert.True(t, manager.LastUsed().IsZero())
}

// TestAcquireReusesSession tests that repeated acquires share one connection
func TestAcquireReusesSession(t *testing.T) {
	manager, connector, clock, _ := newTestManager(t)
	ctx := context.Background()

	first, err := manager.Acquire(ctx)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	second, err := manager.Acquire(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, connector.Connects())
	assert.True(t, manager.IsOpen())
	assert.Equal(t, clock.Now(), manager.LastUsed())
}

// TestIdleSessionIsReaped tests that the watchdog closes an idle session exactly once
// and that the next acquire connects again
func TestIdleSessionIsReaped(t *testing.T) {
	manager, connector, clock, sessions := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Acquire(ctx)
	require.NoError(t, err)

	clock.Advance(testIdleTimeout + time.Second)
	require.Eventually(t, func() bool { return !manager.IsOpen() }, time.Second, testCheckInterval)

	// give a stale watchdog the chance to close twice
	time.Sleep(10 * testCheckInterval)
	assert.Equal(t, 1, (*sessions)[0].Closes())

	second, err := manager.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, connector.Connects())
	assert.NotSame(t, (*sessions)[0], second.(*MockAutomationSession))
	assert.True(t, manager.IsOpen())
}

// TestActiveSessionIsKept tests that a session used within the timeout survives the watchdog
func TestActiveSessionIsKept(t *testing.T) {
	manager, _, clock, sessions := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Acquire(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		clock.Advance(testIdleTimeout / 2)
		_, err := manager.Acquire(ctx)
		require.NoError(t, err)
		time.Sleep(4 * testCheckInterval)
	}

	assert.True(t, manager.IsOpen())
	assert.Zero(t, (*sessions)[0].Closes())
}

// TestSessionIdleExactlyTimeoutIsKept tests that only an idle time beyond the
// timeout closes the session. A reversed comparison closes a fresh session on
// the first tick and keeps an idle one forever.
func TestSessionIdleExactlyTimeoutIsKept(t *testing.T) {
	manager, _, clock, sessions := newTestManager(t)

	_, err := manager.Acquire(context.Background())
	require.NoError(t, err)

	time.Sleep(10 * testCheckInterval)
	assert.True(t, manager.IsOpen(), "fresh session must not be reaped")

	clock.Advance(testIdleTimeout)
	time.Sleep(10 * testCheckInterval)
	assert.True(t, manager.IsOpen(), "session idle for exactly the timeout must not be reaped")

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return !manager.IsOpen() }, time.Second, testCheckInterval)
	assert.Equal(t, 1, (*sessions)[0].Closes())
}

// TestConcurrentAcquireConnectsOnce tests that racing callers share the first session
func TestConcurrentAcquireConnectsOnce(t *testing.T) {
	manager, connector, _, _ := newTestManager(t)
	release := make(chan struct{})
	inner := connector.ConnectFunc
	connector.ConnectFunc = func(ctx context.Context) (output.AutomationSession, error) {
		<-release
		return inner(ctx)
	}

	const callers = 16
	results := make([]output.AutomationSession, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, err := manager.Acquire(context.Background())
			assert.NoError(t, err)
			results[i] = session
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, connector.Connects())
	for _, session := range results {
		assert.Same(t, results[0], session)
	}
}

// TestShutdownIsIdempotent tests shutdown before, after and twice after a session
func TestShutdownIsIdempotent(t *testing.T) {
	manager, _, _, sessions := newTestManager(t)

	manager.Shutdown()

	_, err := manager.Acquire(context.Background())
	require.NoError(t, err)

	manager.Shutdown()
	manager.Shutdown()

	assert.False(t, manager.IsOpen())
	assert.True(t, manager.LastUsed().IsZero())
	assert.Equal(t, 1, (*sessions)[0].Closes())
}

// TestAcquireConnectFailure tests that connect errors are surfaced as connection errors
func TestAcquireConnectFailure(t *testing.T) {
	tests := []struct {
		name       string
		connectErr error
	}{
		{
			name:       "plain error is wrapped",
			connectErr: errors.New("dial tcp: connection refused"),
		},
		{
			name:       "connection error is kept",
			connectErr: domain.ErrConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := &MockConnector[output.AutomationSession]{
				ConnectFunc: func(ctx context.Context) (output.AutomationSession, error) {
					return nil, tt.connectErr
				},
			}
			manager := NewSessionManager[output.AutomationSession]("automation", connector, testIdleTimeout, testCheckInterval)

			session, err := manager.Acquire(context.Background())

			assert.Nil(t, session)
			assert.ErrorIs(t, err, domain.ErrConnection)
			assert.ErrorIs(t, err, tt.connectErr)
			assert.False(t, manager.IsOpen())

			_, err = manager.Acquire(context.Background())
			assert.Error(t, err)
			assert.Equal(t, 2, connector.Connects(), "failed connects must not be cached")
		})
	}
}

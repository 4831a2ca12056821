package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink_AbsentByDefault(t *testing.T) {
	sink := NewSink()

	_, ok := sink.Current()
	assert.False(t, ok)
}

func TestMemorySink_EstablishThenCurrent(t *testing.T) {
	sink := NewSink()
	sink.Establish(Identity{UserID: 1, Username: "alice"})

	identity, ok := sink.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestMemorySink_ClearDestroysSession(t *testing.T) {
	sink := NewSink()
	sink.Establish(Identity{UserID: 1, Username: "alice"})

	sink.Clear()

	_, ok := sink.Current()
	assert.False(t, ok)
}

// Clearing an absent session is a no-op, not an error.
func TestMemorySink_ClearIsIdempotent(t *testing.T) {
	sink := NewSink()

	sink.Clear()
	sink.Clear()

	_, ok := sink.Current()
	assert.False(t, ok)
}

// A second Establish replaces the bound identity.
func TestMemorySink_EstablishReplacesIdentity(t *testing.T) {
	sink := NewSink()
	sink.Establish(Identity{UserID: 1, Username: "alice"})
	sink.Establish(Identity{UserID: 2, Username: "bob"})

	identity, ok := sink.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), identity.UserID)
	assert.Equal(t, "bob", identity.Username)
}

func TestRegistry_OpenMintsDistinctTokens(t *testing.T) {
	registry := NewRegistry()

	first, _ := registry.Open()
	second, _ := registry.Open()

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

// Open alone does not create a session; only Establish does.
func TestRegistry_OpenWithoutEstablishLeavesNoTrace(t *testing.T) {
	registry := NewRegistry()

	_, sink := registry.Open()

	_, ok := sink.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_HandleSeesEstablishedSession(t *testing.T) {
	registry := NewRegistry()
	token, sink := registry.Open()

	sink.Establish(Identity{UserID: 7, Username: "alice"})

	identity, ok := registry.Handle(token).Current()
	require.True(t, ok)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_ClearRemovesEntry(t *testing.T) {
	registry := NewRegistry()
	token, sink := registry.Open()
	sink.Establish(Identity{UserID: 7, Username: "alice"})

	registry.Handle(token).Clear()

	_, ok := registry.Handle(token).Current()
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_UnknownTokenBehavesAsAbsent(t *testing.T) {
	registry := NewRegistry()

	sink := registry.Handle("no-such-token")

	_, ok := sink.Current()
	assert.False(t, ok)
	sink.Clear() // must not panic
}

// Sessions of unrelated callers never interfere.
func TestRegistry_SessionsAreIsolated(t *testing.T) {
	registry := NewRegistry()

	aliceToken, aliceSink := registry.Open()
	bobToken, bobSink := registry.Open()
	aliceSink.Establish(Identity{UserID: 1, Username: "alice"})
	bobSink.Establish(Identity{UserID: 2, Username: "bob"})

	registry.Handle(aliceToken).Clear()

	_, ok := registry.Handle(aliceToken).Current()
	assert.False(t, ok)

	identity, ok := registry.Handle(bobToken).Current()
	require.True(t, ok)
	assert.Equal(t, "bob", identity.Username)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			token, sink := registry.Open()
			sink.Establish(Identity{UserID: int64(n), Username: "user"})
			if _, ok := registry.Handle(token).Current(); !ok {
				t.Errorf("session %d not visible after establish", n)
			}
			registry.Handle(token).Clear()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, registry.Len())
}

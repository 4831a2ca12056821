// Package session holds the authenticated-caller state of the application.
//
// A Sink is the narrow contract the authentication service needs: establish
// an identity after a successful login, report the current identity, and
// destroy the session on logout. Sinks are scoped per caller — they are
// threaded through each request rather than stored in process-wide mutable
// state, so concurrent callers never observe each other's sessions.
//
// The Registry is the server-side session table backing the HTTP transport.
// It maps opaque session tokens to identities and hands out token-bound
// Sinks. The registry is safe for concurrent use.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Identity is the authenticated identity bound to a live session.
type Identity struct {
	// UserID is the numeric identity assigned by the account store.
	UserID int64

	// Username is the login name the identity authenticated with.
	Username string
}

// Sink abstracts wherever session state is persisted: an in-memory value,
// a server-side session table, a cookie-backed store.
//
// Invariant: a session exists if and only if the most recent Establish has
// not been followed by Clear. Clear is idempotent — clearing an absent
// session is a no-op, not an error.
type Sink interface {
	// Establish binds identity to the session, replacing any identity
	// established earlier.
	Establish(identity Identity)

	// Clear destroys the session entirely. Safe to call when no session
	// exists.
	Clear()

	// Current returns the identity bound to the session, and whether a
	// session exists at all.
	Current() (Identity, bool)
}

// memorySink is a Sink holding its state in a plain in-process value.
// It is the per-caller session used by tests and by callers that do not
// go through the HTTP transport.
type memorySink struct {
	identity Identity
	active   bool
}

// NewSink returns an empty in-memory Sink. The returned Sink is scoped to
// one caller and is not safe for concurrent use; callers that share a sink
// across goroutines should use a Registry-bound sink instead.
func NewSink() Sink {
	return &memorySink{}
}

func (s *memorySink) Establish(identity Identity) {
	s.identity = identity
	s.active = true
}

func (s *memorySink) Clear() {
	s.identity = Identity{}
	s.active = false
}

func (s *memorySink) Current() (Identity, bool) {
	return s.identity, s.active
}

// Registry is a concurrent server-side session table. Each live session is
// keyed by an opaque token minted at login time; the token travels to the
// client inside a signed JWT and comes back on subsequent requests.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

// NewRegistry constructs an empty session Registry safe for concurrent use
// across simultaneous login, logout, and lookup calls.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Identity),
	}
}

// Open mints a fresh session token and returns it together with a Sink
// bound to that token. The session does not exist until Establish is
// called on the returned sink, so an abandoned login attempt leaves no
// trace in the registry.
func (r *Registry) Open() (string, Sink) {
	token := uuid.NewString()
	return token, r.Handle(token)
}

// Handle returns a Sink bound to the given session token. The sink reads
// and mutates the registry entry for that token; a token with no entry
// behaves as an absent session.
func (r *Registry) Handle(token string) Sink {
	return &registrySink{registry: r, token: token}
}

// Len reports the number of live sessions. Intended for diagnostics and
// tests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) establish(token string, identity Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = identity
}

func (r *Registry) clear(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

func (r *Registry) current(token string) (Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.sessions[token]
	return identity, ok
}

// registrySink is the token-bound Sink view over a Registry.
type registrySink struct {
	registry *Registry
	token    string
}

func (s *registrySink) Establish(identity Identity) {
	s.registry.establish(s.token, identity)
}

func (s *registrySink) Clear() {
	s.registry.clear(s.token)
}

func (s *registrySink) Current() (Identity, bool) {
	return s.registry.current(s.token)
}

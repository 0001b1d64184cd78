package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrBusy            = errors.New("submission already in progress")
)

// Session is one applicant's wizard, addressed by an opaque id. All
// mutation goes through the session so the busy flag and the state stay
// consistent.
type Session struct {
	ID string

	mu         sync.Mutex
	state      *State
	submitting bool
	lastActive time.Time
}

// Snapshot returns a copy of the current state together with the busy flag.
func (s *Session) Snapshot() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state, s.submitting
}

// Mutate runs fn against the wizard state under the session lock.
// Mutation is rejected while a submission is running: both navigation
// buttons are disabled during Submitting.
func (s *Session) Mutate(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrBusy
	}
	s.lastActive = time.Now()
	return fn(s.state)
}

// BeginSubmit flips the session into the Submitting state. Returns
// ErrBusy when a submission is already running.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrBusy
	}
	s.submitting = true
	s.lastActive = time.Now()
	return nil
}

// EndSubmit returns the session to Idle. When reset is true the wizard
// goes back to step 1 with empty defaults (successful submission);
// otherwise the form data is preserved so the applicant can retry.
func (s *Session) EndSubmit(reset bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.lastActive = time.Now()
	if reset {
		s.state.Reset()
	}
}

// Store keeps wizard sessions in memory. Nothing is written to disk or
// the database mid-flow; an expired or lost session loses all progress.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a new wizard session at step 1.
func (st *Store) Create() *Session {
	session := &Session{
		ID:         uuid.NewString(),
		state:      NewState(),
		lastActive: time.Now(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

// Get returns the session or ErrSessionNotFound. An expired session is
// treated as missing and removed on access.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	expired := time.Since(session.lastActive) > st.ttl
	session.mu.Unlock()

	if expired {
		st.Delete(id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
// Sessions in the middle of a submission are skipped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.sessions {
		session.mu.Lock()
		expired := !session.submitting && time.Since(session.lastActive) > st.ttl
		session.mu.Unlock()

		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

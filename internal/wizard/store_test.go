package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	session := store.Create()
	require.NotEmpty(t, session.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	state, submitting := got.Snapshot()
	assert.Equal(t, 1, state.CurrentStep)
	assert.False(t, submitting)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreExpiredSessionIsGone(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	session := store.Create()

	time.Sleep(30 * time.Millisecond)

	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len(), "expired session should be removed on access")
}

func TestStoreSweep(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	stale := store.Create()
	busy := store.Create()
	require.NoError(t, busy.BeginSubmit())

	time.Sleep(30 * time.Millisecond)
	fresh := store.Create()

	removed := store.Sweep()
	assert.Equal(t, 1, removed)

	// The stale idle session is gone; the submitting one is spared.
	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestSessionMutateRejectedWhileSubmitting(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create()

	require.NoError(t, session.BeginSubmit())

	err := session.Mutate(func(s *State) error {
		s.Advance()
		return nil
	})
	assert.ErrorIs(t, err, ErrBusy)

	// A second submit is rejected too.
	assert.ErrorIs(t, session.BeginSubmit(), ErrBusy)

	state, submitting := session.Snapshot()
	assert.True(t, submitting)
	assert.Equal(t, 1, state.CurrentStep, "rejected mutation must not run")
}

func TestSessionEndSubmitResetOnSuccess(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create()

	require.NoError(t, session.Mutate(func(s *State) error {
		s.Data.FullName = "Aigerim S"
		s.CurrentStep = StepSubmission
		return nil
	}))

	require.NoError(t, session.BeginSubmit())
	session.EndSubmit(true)

	state, submitting := session.Snapshot()
	assert.False(t, submitting)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Empty(t, state.Data.FullName)
}

func TestSessionEndSubmitKeepsDataOnFailure(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create()

	require.NoError(t, session.Mutate(func(s *State) error {
		s.Data.FullName = "Aigerim S"
		s.CurrentStep = StepSubmission
		return nil
	}))

	require.NoError(t, session.BeginSubmit())
	session.EndSubmit(false)

	// The applicant can fix the problem and retry with everything intact.
	state, submitting := session.Snapshot()
	assert.False(t, submitting)
	assert.Equal(t, StepSubmission, state.CurrentStep)
	assert.Equal(t, "Aigerim S", state.Data.FullName)

	require.NoError(t, session.BeginSubmit())
}

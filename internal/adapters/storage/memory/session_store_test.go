package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursier/coursier-agent/internal/adapters/storage/memory"
	"github.com/coursier/coursier-agent/internal/domain"
)

func TestGetMissingSession(t *testing.T) {
	store := memory.NewSessionStore()

	_, err := store.Get(domain.UserID(1))
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPutGetRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()
	sess := domain.NewSession(domain.UserID(1), time.Now())
	sess.Goal = "выучить Go"

	require.NoError(t, store.Put(sess))

	got, err := store.Get(sess.UserID)
	require.NoError(t, err)
	assert.Equal(t, *sess, *got)
}

// TestCopiesAreIsolated: mutating a session after Put, or the one returned
// by Get, must not leak into the store.
func TestCopiesAreIsolated(t *testing.T) {
	store := memory.NewSessionStore()
	sess := domain.NewSession(domain.UserID(1), time.Now())
	require.NoError(t, store.Put(sess))

	sess.Goal = "mutated after put"

	got, err := store.Get(sess.UserID)
	require.NoError(t, err)
	assert.Empty(t, got.Goal)

	got.Level = "mutated after get"

	again, err := store.Get(sess.UserID)
	require.NoError(t, err)
	assert.Empty(t, again.Level)
}

func TestPutReplaces(t *testing.T) {
	store := memory.NewSessionStore()
	userID := domain.UserID(5)

	first := domain.NewSession(userID, time.Now())
	require.NoError(t, store.Put(first))

	second := domain.NewSession(userID, time.Now())
	second.Stage = domain.StageGoal
	require.NoError(t, store.Put(second))

	got, err := store.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, domain.StageGoal, got.Stage)
}

func TestDelete(t *testing.T) {
	store := memory.NewSessionStore()
	sess := domain.NewSession(domain.UserID(3), time.Now())
	require.NoError(t, store.Put(sess))

	require.NoError(t, store.Delete(sess.UserID))

	_, err := store.Get(sess.UserID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting a missing session is not an error.
	assert.NoError(t, store.Delete(domain.UserID(99)))
}

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamdh/gradeview/config"
	"github.com/lamdh/gradeview/internal/model"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.Dir = dir
	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store
}

func teacherUser() model.User {
	return model.User{
		ID:    "t1",
		Name:  "John Teacher",
		Email: "teacher@example.com",
		Role:  model.RoleTeacher,
	}
}

func TestEstablishThenHydrateInNewProcess(t *testing.T) {
	dir := t.TempDir()

	first := newTestStore(t, dir)
	require.False(t, first.Authenticated())
	require.NoError(t, first.Establish(teacherUser(), "token-abc"))
	require.True(t, first.Authenticated())

	// A new store over the same directory stands in for a restart.
	second := newTestStore(t, dir)
	assert.True(t, second.Authenticated())
	assert.Equal(t, "token-abc", second.Token())
	user, found := second.User()
	require.True(t, found)
	assert.Equal(t, teacherUser(), user)
}

func TestClearWipesPersistedState(t *testing.T) {
	dir := t.TempDir()

	first := newTestStore(t, dir)
	require.NoError(t, first.Establish(teacherUser(), "token-abc"))
	first.Clear()
	assert.False(t, first.Authenticated())
	assert.Empty(t, first.Token())

	second := newTestStore(t, dir)
	assert.False(t, second.Authenticated())
	_, found := second.User()
	assert.False(t, found)
}

func TestHydrateDiscardsCorruptIdentity(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("token-abc"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, identityFile), []byte("{not json"), 0o600))

	store := newTestStore(t, dir)
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())

	// Both entries are gone, not just the broken one.
	_, err := os.Stat(filepath.Join(dir, tokenFile))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, identityFile))
	assert.True(t, os.IsNotExist(err))
}

func TestHydrateDiscardsPartialPair(t *testing.T) {
	dir := t.TempDir()
	// Token without identity.
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("token-abc"), 0o600))

	store := newTestStore(t, dir)
	assert.False(t, store.Authenticated())

	// Identity without token.
	dir2 := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir2, identityFile), []byte(`{"id":"t1","name":"John","email":"t@example.com","role":"teacher"}`), 0o600))

	store2 := newTestStore(t, dir2)
	assert.False(t, store2.Authenticated())
}

func TestHydrateDiscardsUnknownRole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("token-abc"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, identityFile), []byte(`{"id":"x1","name":"X","email":"x@example.com","role":"admin"}`), 0o600))

	store := newTestStore(t, dir)
	assert.False(t, store.Authenticated())
}

func TestReLoginReplacesIdentityWholesale(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)
	require.NoError(t, store.Establish(teacherUser(), "token-abc"))

	student := model.User{ID: "s1", Name: "Jane Student", Email: "student@example.com", Role: model.RoleStudent}
	require.NoError(t, store.Establish(student, "token-def"))

	user, found := store.User()
	require.True(t, found)
	assert.Equal(t, student, user)
	assert.Equal(t, "token-def", store.Token())
}

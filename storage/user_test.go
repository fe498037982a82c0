package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFindUser(t *testing.T) {
	store, err := NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	created, err := store.Create("Asha", "Asha@Example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", created.Email)

	found, err := store.FindByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateEmailRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewFileUserStore(path)
	require.NoError(t, err)

	_, err = store.Create("Asha", "asha@example.com", "hash")
	require.NoError(t, err)

	_, err = store.Create("Other", "ASHA@example.com", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// No second record was written.
	reopened, err := NewFileUserStore(path)
	require.NoError(t, err)
	found, err := reopened.FindByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", found.Name)
}

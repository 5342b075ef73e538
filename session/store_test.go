package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.yaml"))
}

func TestStore_EmptyReads(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.Profile())
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	admin := &adopcion.Admin{ID: 7, Nombre: "Ana", Email: "ana@refugio.org", Rol: adopcion.RolAdmin}

	require.NoError(t, store.Save("tok-123", admin))

	assert.Equal(t, "tok-123", store.Token())
	got := store.Profile()
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, adopcion.RolAdmin, got.Rol)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("old", &adopcion.Admin{Nombre: "Ana"}))
	require.NoError(t, store.Save("new", &adopcion.Admin{Nombre: "Marta"}))

	assert.Equal(t, "new", store.Token())
	assert.Equal(t, "Marta", store.Profile().Nombre)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok", &adopcion.Admin{Nombre: "Ana"}))

	require.NoError(t, store.Clear())

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.Profile())
}

func TestStore_ClearEmptyIsNoError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
}

func TestStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok", nil))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_CorruptFileMeansNoSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not yaml: ["), 0o600))

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.Profile())
}

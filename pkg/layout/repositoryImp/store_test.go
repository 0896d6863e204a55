package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasture/database"
	"pasture/entities"
	"pasture/pkg/layout/repository"
)

func exerciseStore(t *testing.T, s repository.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "potrerosMapLayout")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.Set(ctx, "potrerosMapLayout", []byte(`{"v":1}`)))
	require.NoError(t, s.Set(ctx, "potrerosMapLayout", []byte(`{"v":2}`)))

	b, err := s.Get(ctx, "potrerosMapLayout")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(b))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	exerciseStore(t, s)

	b, _ := s.Get(context.Background(), "potrerosMapLayout")
	b[0] = 'X'
	again, _ := s.Get(context.Background(), "potrerosMapLayout")
	assert.Equal(t, byte('{'), again[0], "callers get a copy")
}

func TestSQLiteStoreUpsertsPerOwner(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "layouts.db"), false)
	require.NoError(t, err)

	ana := NewSQLite(db, "ana")
	exerciseStore(t, ana)

	bob := NewSQLite(db, "bob")
	_, err = bob.Get(context.Background(), "potrerosMapLayout")
	assert.ErrorIs(t, err, repository.ErrNotFound, "owners do not share layouts")

	var n int64
	require.NoError(t, db.Model(&entities.MapLayout{}).Count(&n).Error)
	assert.EqualValues(t, 1, n, "second save updates the row")
}

func TestGdataStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s, err := NewGdata("pasture-map-test")
	if err != nil {
		t.Skipf("gdata unavailable here: %v", err)
	}
	exerciseStore(t, NewScoped(s, "test"))
}

func TestScopedStoreIsolation(t *testing.T) {
	base := NewMemory()
	a, b := NewScoped(base, "a"), NewScoped(base, "b")
	require.NoError(t, a.Set(context.Background(), "k", []byte("1")))

	_, err := b.Get(context.Background(), "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	got, err := base.Get(context.Background(), "a.k")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
}

func TestFactory(t *testing.T) {
	mem, err := NewFactory("memory", "", nil)
	require.NoError(t, err)
	a, _ := mem("ana")
	b, _ := mem("ana")
	require.NoError(t, a.Set(context.Background(), "k", []byte("1")))
	_, err = b.Get(context.Background(), "k")
	assert.ErrorIs(t, err, repository.ErrNotFound, "memory stores are not shared")

	_, err = NewFactory("sqlite", "", nil)
	assert.Error(t, err)
	_, err = NewFactory("redis", "", nil)
	assert.Error(t, err)

	db, err := database.OpenSQLite(":memory:", false)
	require.NoError(t, err)
	lite, err := NewFactory("sqlite", "", db)
	require.NoError(t, err)
	s, err := lite("ana")
	require.NoError(t, err)
	exerciseStore(t, s)
}

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

func TestLoadMissingIsNewGame(t *testing.T) {
	ps := NewProgressStore(NewMemoryKV(), nil)
	p := ps.Load(context.Background())
	assert.True(t, p.Equal(engine.NewProgress()))
}

func TestLoadMalformedIsNewGame(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"garbage":          "{not json",
		"day out of range": `{"character":null,"completedDays":[1,30],"currentDay":2}`,
		"bad frontier":     `{"character":null,"completedDays":[],"currentDay":99}`,
		"bad character":    `{"character":{"id":"grinch"},"completedDays":[],"currentDay":1}`,
		"wrong types":      `{"completedDays":"1,2"}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := NewMemoryKV()
			require.NoError(t, kv.Put(ctx, SaveKey, []byte(raw)))
			p := NewProgressStore(kv, nil).Load(ctx)
			assert.True(t, p.Equal(engine.NewProgress()))
		})
	}
}

func TestLoadSavedRecordFormat(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	raw := `{"character":{"id":"parssa","displayName":"Parssicle","avatarRef":"char_parssa.png"},"completedDays":[3,1,2,2],"currentDay":4}`
	require.NoError(t, kv.Put(ctx, SaveKey, []byte(raw)))
	p := NewProgressStore(kv, nil).Load(ctx)
	require.NotNil(t, p.Character)
	assert.Equal(t, engine.CharacterParssa, p.Character.ID)
	assert.Equal(t, []int{1, 2, 3}, p.CompletedDays)
	assert.Equal(t, 4, p.CurrentDay)
}

func TestSaveRoundTripAndReset(t *testing.T) {
	ctx := context.Background()
	ps := NewProgressStore(NewMemoryKV(), nil)
	p, err := engine.NewProgress().SelectCharacter(engine.Character{ID: engine.CharacterLinus, DisplayName: "Linuël"})
	require.NoError(t, err)
	p, err = p.MarkCompleted(1)
	require.NoError(t, err)

	require.NoError(t, ps.Save(ctx, p))
	assert.True(t, p.Equal(ps.Load(ctx)))

	require.NoError(t, ps.Reset(ctx))
	assert.False(t, ps.Load(ctx).HasCharacter())
}

func TestEmptyRecordEncodesEmptyList(t *testing.T) {
	b, err := encode(engine.Progress{CurrentDay: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"character":null,"completedDays":[],"currentDay":1}`, string(b))
}

type brokenKV struct{ MemoryKV }

func (*brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("io error")
}

func TestLoadReadErrorIsNewGame(t *testing.T) {
	p := NewProgressStore(&brokenKV{}, nil).Load(context.Background())
	assert.Equal(t, engine.FirstDay, p.CurrentDay)
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "save.db")
	kv, err := Open(ctx, Options{Backend: BackendSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	_, ok, err := kv.Get(ctx, SaveKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, SaveKey, []byte(`{"a":1}`)))
	require.NoError(t, kv.Put(ctx, SaveKey, []byte(`{"a":2}`)))
	v, ok, err := kv.Get(ctx, SaveKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":2}`, string(v))

	require.NoError(t, kv.Delete(ctx, SaveKey))
	_, ok, err = kv.Get(ctx, SaveKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.db")
	require.NoError(t, migrateUp(ctx, BackendSQLite, path))
	require.NoError(t, migrateUp(ctx, BackendSQLite, path))
}

func TestUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "redis"})
	assert.Error(t, err)
	_, err = NewMigrator(BackendMemory, "x")
	assert.Error(t, err)
}

func TestMigratorForResolvesSQLitePath(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "save.db")
	mig, err := MigratorFor(Options{Backend: BackendSQLite, Path: path})
	require.NoError(t, err)
	require.NoError(t, mig.Up(ctx))
	assert.FileExists(t, path)
	assert.NoError(t, mig.Down(ctx))

	_, err = MigratorFor(Options{Backend: BackendMemory})
	assert.Error(t, err)
}

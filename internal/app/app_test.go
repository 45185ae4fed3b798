package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/board"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/storage"
)

// memoryAdapter is an in-memory storage.Adapter with injectable failures
type memoryAdapter struct {
	snap    models.Snapshot
	loadErr error
	saveErr error
	saves   int
	closed  bool
}

func (m *memoryAdapter) Load(context.Context) (models.Snapshot, error) {
	if m.loadErr != nil {
		return models.NewSnapshot(), m.loadErr
	}
	if m.snap == nil {
		return models.NewSnapshot(), nil
	}
	return m.snap.Clone(), nil
}

func (m *memoryAdapter) Save(_ context.Context, snap models.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snap = snap.Clone()
	return nil
}

func (m *memoryAdapter) Close() error {
	m.closed = true
	return nil
}

// preservingAdapter also implements storage.Preserver
type preservingAdapter struct {
	memoryAdapter
	preserved int
}

func (p *preservingAdapter) Preserve(context.Context) (string, error) {
	p.preserved++
	return "tasks.json.bak", nil
}

func TestApp_LoadPopulatesBoard(t *testing.T) {
	adapter := &memoryAdapter{snap: models.Snapshot{models.DoNow: {"write report"}}}
	a := New(adapter)

	require.NoError(t, a.Load(context.Background()))

	assert.Equal(t, []string{"write report"}, a.Board().Tasks(models.DoNow))
}

func TestApp_LoadFailureFallsBackToEmpty(t *testing.T) {
	adapter := &memoryAdapter{loadErr: models.ErrCorruptData}
	a := New(adapter)
	require.NoError(t, a.Board().Add(models.Added, "stale"))

	err := a.Load(context.Background())

	assert.ErrorIs(t, err, models.ErrCorruptData)
	assert.Equal(t, models.NewSnapshot(), a.Snapshot())
}

func TestApp_ApplyWithoutAutosave(t *testing.T) {
	adapter := &memoryAdapter{}
	a := New(adapter)
	ctx := context.Background()

	require.NoError(t, a.Apply(ctx, board.AddTask{Category: models.Added, Text: "buy milk"}))

	assert.Equal(t, 0, adapter.saves)
	require.NoError(t, a.Save(ctx))
	assert.Equal(t, 1, adapter.saves)
	assert.Equal(t, []string{"buy milk"}, adapter.snap[models.Added])
}

func TestApp_ApplyWithAutosave(t *testing.T) {
	adapter := &memoryAdapter{}
	a := New(adapter, WithAutosave(true))
	ctx := context.Background()

	require.NoError(t, a.Apply(ctx, board.AddTask{Category: models.Added, Text: "buy milk"}))
	require.NoError(t, a.Apply(ctx, board.MoveTask{From: models.Added, Index: 0, To: models.Done}))

	assert.Equal(t, 2, adapter.saves)
	assert.Equal(t, []string{"buy milk"}, adapter.snap[models.Done])
}

func TestApp_RejectedCommandIsNotSaved(t *testing.T) {
	adapter := &memoryAdapter{}
	a := New(adapter, WithAutosave(true))

	err := a.Apply(context.Background(), board.AddTask{Category: models.Added, Text: "  "})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, 0, adapter.saves)
}

func TestApp_SaveFailureKeepsBoard(t *testing.T) {
	adapter := &memoryAdapter{saveErr: errors.Join(models.ErrIOFailure, errors.New("permission denied"))}
	a := New(adapter, WithAutosave(true))

	err := a.Apply(context.Background(), board.AddTask{Category: models.Added, Text: "buy milk"})

	assert.ErrorIs(t, err, models.ErrIOFailure)
	assert.Equal(t, 1, a.Board().Len(models.Added))
}

func TestApp_RoundTripThroughJSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	first := New(storage.NewJSONFile(path))
	require.NoError(t, first.Load(ctx))
	require.NoError(t, first.Apply(ctx, board.AddTask{Category: models.Added, Text: "a"}))
	require.NoError(t, first.Apply(ctx, board.AddTask{Category: models.Added, Text: "b"}))
	require.NoError(t, first.Apply(ctx, board.MoveTask{From: models.Added, Index: 1, To: models.Sometime}))
	require.NoError(t, first.Save(ctx))

	second := New(storage.NewJSONFile(path))
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestApp_Close(t *testing.T) {
	adapter := &memoryAdapter{}
	require.NoError(t, New(adapter).Close())
	assert.True(t, adapter.closed)
}

func TestApp_SaveAfterFailedLoadRefusesWithoutPreserver(t *testing.T) {
	adapter := &memoryAdapter{loadErr: models.ErrIOFailure}
	a := New(adapter)
	ctx := context.Background()
	require.Error(t, a.Load(ctx))
	assert.True(t, a.LoadFailed())
	assert.False(t, a.Dirty())

	require.NoError(t, a.Board().Add(models.Added, "new"))
	err := a.Save(ctx)

	assert.ErrorIs(t, err, models.ErrIOFailure)
	assert.Equal(t, 0, adapter.saves)
}

func TestApp_SaveAfterFailedLoadPreservesFirst(t *testing.T) {
	adapter := &preservingAdapter{memoryAdapter: memoryAdapter{loadErr: models.ErrCorruptData}}
	a := New(adapter, WithAutosave(true))
	ctx := context.Background()
	require.Error(t, a.Load(ctx))

	require.NoError(t, a.Apply(ctx, board.AddTask{Category: models.Added, Text: "fresh"}))
	require.NoError(t, a.Save(ctx))

	assert.Equal(t, 1, adapter.preserved)
	assert.Equal(t, 2, adapter.saves)
	assert.Equal(t, "tasks.json.bak", a.Backup())
	assert.False(t, a.LoadFailed())
	assert.False(t, a.Dirty())
}

func TestApp_DirtyTracksUnsavedChanges(t *testing.T) {
	a := New(&memoryAdapter{})
	ctx := context.Background()
	require.NoError(t, a.Load(ctx))
	assert.False(t, a.Dirty())

	require.NoError(t, a.Apply(ctx, board.AddTask{Category: models.Added, Text: "x"}))
	assert.True(t, a.Dirty())

	require.NoError(t, a.Save(ctx))
	assert.False(t, a.Dirty())
}

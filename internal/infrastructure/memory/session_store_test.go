package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/memory"
)

func newState() *appinventory.BarState {
	return appinventory.NewBarState(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
}

func TestSessionStore_CrearYObtener(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()

	st := newState()
	require.NoError(t, s.Create(ctx, "s1", st))
	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, st, got)
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_IDRepetidoEsConflicto(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "s1", newState()))
	assert.ErrorIs(t, s.Create(ctx, "s1", newState()), domain.ErrConflict)
}

func TestSessionStore_SesionInexistente(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Update(ctx, "nope", func(cur *appinventory.BarState) (*appinventory.BarState, error) { return cur, nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "nope"), domain.ErrSessionNotFound)
}

func TestSessionStore_UpdateConErrorNoGuarda(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()
	orig := newState()
	require.NoError(t, s.Create(ctx, "s1", orig))

	boom := errors.New("boom")
	_, err := s.Update(ctx, "s1", func(cur *appinventory.BarState) (*appinventory.BarState, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, orig, got)
}

func TestSessionStore_UpdatesConcurrentesSeSerializan(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "s1", newState()))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "s1", func(cur *appinventory.BarState) (*appinventory.BarState, error) {
				next := *cur
				next.Recipes = append(append([]entity.RecipeLine{}, cur.Recipes...), entity.RecipeLine{DrinkName: "Mojito"})
				return &next, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Recipes, n)
}

func TestSessionStore_Delete(t *testing.T) {
	s := memory.NewSessionStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "s1", newState()))

	require.NoError(t, s.Delete(ctx, "s1"))
	_, err := s.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStore_ContextoCancelado(t *testing.T) {
	s := memory.NewSessionStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Create(ctx, "s1", newState()), context.Canceled)
}

package game

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_UpsertAndGet(t *testing.T) {
	registry := NewRegistry()

	player := ActivePlayer{
		ID:       "p1",
		Username: "alice",
		Score:    10,
		Mode:     ModeWalls,
		Snake:    []Position{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:     &Position{X: 5, Y: 5},
		Status:   StatusPlaying,
	}
	registry.Upsert(player)

	got, ok := registry.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 10.0, got.Score)
	assert.Equal(t, StatusPlaying, got.Status)
}

func TestRegistry_GetMissing(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Get("nobody")
	assert.False(t, ok)
}

func TestRegistry_LastWriterWins(t *testing.T) {
	registry := NewRegistry()

	registry.Upsert(ActivePlayer{ID: "p1", Score: 10, Status: StatusPlaying})
	registry.Upsert(ActivePlayer{ID: "p1", Score: 50, Status: StatusGameOver})

	got, ok := registry.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 50.0, got.Score)
	assert.Equal(t, StatusGameOver, got.Status)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_SnapshotsDoNotAliasStoredState(t *testing.T) {
	registry := NewRegistry()

	snake := []Position{{X: 1, Y: 1}}
	food := Position{X: 3, Y: 3}
	registry.Upsert(ActivePlayer{ID: "p1", Snake: snake, Food: &food})

	// Mutating the caller's slice after the write must not leak in.
	snake[0].X = 99
	food.X = 99

	got, _ := registry.Get("p1")
	assert.Equal(t, 1.0, got.Snake[0].X)
	assert.Equal(t, 3.0, got.Food.X)

	// Mutating a returned snapshot must not leak back.
	got.Snake[0].Y = 42
	got.Food.Y = 42

	again, _ := registry.Get("p1")
	assert.Equal(t, 1.0, again.Snake[0].Y)
	assert.Equal(t, 3.0, again.Food.Y)
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewRegistry()

	registry.Upsert(ActivePlayer{ID: "p1"})
	registry.Remove("p1")

	_, ok := registry.Get("p1")
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry()

	for i := 0; i < 5; i++ {
		registry.Upsert(ActivePlayer{ID: fmt.Sprintf("p%d", i), Username: fmt.Sprintf("user%d", i)})
	}

	all := registry.List()
	assert.Len(t, all, 5)

	seen := map[string]bool{}
	for _, p := range all {
		seen[p.ID] = true
	}
	assert.Len(t, seen, 5)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("p%d", n)
			for j := 0; j < 100; j++ {
				registry.Upsert(ActivePlayer{
					ID:    id,
					Score: float64(j),
					Snake: []Position{{X: float64(j), Y: float64(j)}},
				})
				registry.Get(id)
				registry.List()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, registry.Len())
	for _, p := range registry.List() {
		// Every snapshot is a fully applied write, never a torn one.
		assert.Equal(t, p.Score, p.Snake[0].X)
	}
}

func TestRegistry_SweepEvictsOnlyStaleEntries(t *testing.T) {
	registry := NewRegistry()

	registry.Upsert(ActivePlayer{ID: "stale"})
	time.Sleep(20 * time.Millisecond)
	registry.Upsert(ActivePlayer{ID: "fresh"})

	evicted := registry.Sweep(10 * time.Millisecond)
	assert.Equal(t, 1, evicted)

	_, ok := registry.Get("stale")
	assert.False(t, ok)
	_, ok = registry.Get("fresh")
	assert.True(t, ok)
}

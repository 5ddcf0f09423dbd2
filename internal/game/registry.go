package game

import (
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 16

// Registry tracks the players currently in a live match. It is sharded
// by player id so writers on different players never contend on the
// same lock, and every value crossing its boundary is copied, so a
// reader can never observe a half-applied update.
type Registry struct {
	shards [shardCount]registryShard
}

type registryShard struct {
	mu      sync.RWMutex
	players map[string]*registryEntry
}

type registryEntry struct {
	player    ActivePlayer
	updatedAt time.Time
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i].players = make(map[string]*registryEntry)
	}
	return r
}

func (r *Registry) shard(playerId string) *registryShard {
	h := fnv.New32a()
	h.Write([]byte(playerId))
	return &r.shards[h.Sum32()%shardCount]
}

// Upsert replaces the whole entry for the player, last writer wins.
func (r *Registry) Upsert(player ActivePlayer) {
	s := r.shard(player.ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[player.ID] = &registryEntry{
		player:    clonePlayer(player),
		updatedAt: time.Now(),
	}
}

func (r *Registry) Get(playerId string) (ActivePlayer, bool) {
	s := r.shard(playerId)
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.players[playerId]
	if !ok {
		return ActivePlayer{}, false
	}
	return clonePlayer(entry.player), true
}

// List returns a snapshot of every tracked player. Each shard is
// snapshotted under its own read lock; entries across shards may
// reflect slightly different instants, which is fine because there are
// no cross-player guarantees.
func (r *Registry) List() []ActivePlayer {
	all := make([]ActivePlayer, 0)
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		for _, entry := range s.players {
			all = append(all, clonePlayer(entry.player))
		}
		s.mu.RUnlock()
	}
	return all
}

func (r *Registry) Remove(playerId string) {
	s := r.shard(playerId)
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.players, playerId)
}

// Sweep evicts entries that have not been updated within maxAge and
// returns how many were dropped. It backstops clients that disappear
// without closing their connection.
func (r *Registry) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	evicted := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.Lock()
		for id, entry := range s.players {
			if entry.updatedAt.Before(cutoff) {
				delete(s.players, id)
				evicted++
			}
		}
		s.mu.Unlock()
	}
	return evicted
}

func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		n += len(s.players)
		s.mu.RUnlock()
	}
	return n
}

func clonePlayer(p ActivePlayer) ActivePlayer {
	if p.Snake != nil {
		p.Snake = append([]Position(nil), p.Snake...)
	}
	if p.Food != nil {
		food := *p.Food
		p.Food = &food
	}
	return p
}

package games

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps games in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	games []Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make([]Game, 0),
	}
}

func (s *MemoryStore) Insert(_ context.Context, g *Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := g.Clone()
	stored.ID = uuid.New().String()
	s.games = append(s.games, stored)
	return stored.ID, nil
}

func (s *MemoryStore) All(_ context.Context) ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]Game, 0, len(s.games))
	for _, g := range s.games {
		list = append(list, g.Clone())
	}
	return list, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

// NewMemoryGameRepository keeps snapshots in process memory. It is used when redis is disabled.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, slot string, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[slot] = *game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, slot string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[slot]
	if !ok {
		return nil, apperror.ErrSnapshotNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, slot string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[slot]; !ok {
		return apperror.ErrSnapshotNotFound
	}

	delete(that.games, slot)

	return nil
}

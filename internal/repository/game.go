package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// GameRepository keeps the latest state of the round played in a slot.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, slot string, game *entity.Game) error
	GetByID(ctx context.Context, slot string) (*entity.Game, error)
	DeleteByID(ctx context.Context, slot string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(slot string) string {
	return "game:" + slot
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, slot string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(slot), gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, slot string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by slot: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, slot string) error {
	deleted, err := that.client.Del(ctx, gameKey(slot)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by slot: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSnapshotNotFound
	}

	return nil
}

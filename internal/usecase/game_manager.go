package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, slot string, game *entity.Game) error
	GetByID(ctx context.Context, slot string) (*entity.Game, error)
	DeleteByID(ctx context.Context, slot string) error
}

type announcer interface {
	Win(player entity.Mark)
	Tie()
	Restarting()
}

type Settings struct {
	RestartKey string
	Slot       string
}

// GameManager applies window events to the round, one event at a time.
// HandleEvent and Resume must be called from a single goroutine; Game may be called from any.
type GameManager struct {
	logger     *slog.Logger
	controller *tictactoe.GameController
	board      layout.Layout
	gameRepo   gameRepo
	announcer  announcer
	settings   Settings

	current atomic.Pointer[entity.Game]
}

func NewGameManager(
	logger *slog.Logger,
	controller *tictactoe.GameController,
	board layout.Layout,
	gameRepo gameRepo,
	announcer announcer,
	settings Settings,
) *GameManager {
	manager := &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,
		board:      board,
		gameRepo:   gameRepo,
		announcer:  announcer,
		settings:   settings,
	}

	manager.publish()

	return manager
}

// Game returns the state of the round after the last handled event.
func (that *GameManager) Game() entity.Game {
	return *that.current.Load()
}

// Resume loads the round saved in the configured slot, if there is one.
func (that *GameManager) Resume(ctx context.Context) error {
	log := that.logger.With("method", "Resume")

	saved, err := that.gameRepo.GetByID(ctx, that.settings.Slot)
	if errors.Is(err, apperror.ErrSnapshotNotFound) {
		log.Debug("no saved round", "slot", that.settings.Slot)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get saved round: %w", err)
	}

	if err = that.controller.Resume(*saved); err != nil {
		log.Warn("saved round discarded", "error", err)

		if err = that.gameRepo.DeleteByID(ctx, that.settings.Slot); err != nil {
			log.Error("failed to delete saved round", "slot", that.settings.Slot, "error", err)
		}

		return nil
	}

	that.publish()
	log.Info("round resumed", "game_id", saved.ID, "moves", saved.Moves)

	return nil
}

// HandleEvent applies a single event. Rejected input is ignored; only a quit request is returned as an error.
func (that *GameManager) HandleEvent(ctx context.Context, event entity.Event) error {
	switch event.Kind {
	case entity.EventQuit:
		return apperror.ErrQuit
	case entity.EventPointerDown:
		that.handleClick(ctx, event.X, event.Y)
	case entity.EventKeyDown:
		that.handleKey(ctx, event.Key)
	}

	return nil
}

func (that *GameManager) handleClick(ctx context.Context, x, y int) {
	log := that.logger.With("method", "handleClick")

	row, col, ok := that.board.PixelToCell(x, y)
	if !ok {
		log.Debug("click outside the board", "x", x, "y", y)
		return
	}

	if err := that.controller.AttemptMove(row, col); err != nil {
		log.Debug("move ignored", "row", row, "col", col, "error", err)
		return
	}

	that.publish()
	that.save(ctx)

	game := that.Game()
	log.Debug("move accepted", "game_id", game.ID, "row", row, "col", col, "phase", game.Phase)

	switch {
	case game.IsWon():
		log.Info("round won", "game_id", game.ID, "winner", game.Winner, "line", game.Line.String())
		that.announcer.Win(game.Winner)
	case game.IsTied():
		log.Info("round tied", "game_id", game.ID)
		that.announcer.Tie()
	}
}

func (that *GameManager) handleKey(ctx context.Context, key string) {
	log := that.logger.With("method", "handleKey")

	if err := that.restart(ctx, key); err != nil {
		log.Debug("key ignored", "key", key, "error", err)
	}
}

// restart starts a new round when the finished round is closed with the restart key.
// Any key on a finished round is announced; nothing happens while the round is in progress.
func (that *GameManager) restart(ctx context.Context, key string) error {
	if !that.controller.IsTerminal() {
		return apperror.ErrGameIsNotOver
	}

	that.announcer.Restarting()

	if !strings.EqualFold(key, that.settings.RestartKey) {
		return nil
	}

	that.controller.Restart()
	that.publish()
	that.save(ctx)

	that.logger.Info("round restarted", "method", "restart", "game_id", that.Game().ID)

	return nil
}

func (that *GameManager) publish() {
	game := that.controller.Game()
	that.current.Store(&game)
}

func (that *GameManager) save(ctx context.Context) {
	game := that.Game()

	if err := that.gameRepo.CreateOrUpdate(ctx, that.settings.Slot, &game); err != nil {
		that.logger.Error("failed to save round", "method", "save", "game_id", game.ID, "error", err)
	}
}

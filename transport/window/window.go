// Package window runs the game in an ebiten window. Update turns input into
// events for the game manager and Draw paints the current round.
package window

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

type uGame interface {
	HandleEvent(ctx context.Context, event entity.Event) error
	Game() entity.Game
}

type Window struct {
	ctx     context.Context //nolint: containedctx // ebiten calls Update without a context
	logger  *slog.Logger
	uGame   uGame
	board   layout.Layout
	painter painter
	title   string

	keys []ebiten.Key
}

func New(logger *slog.Logger, uGame uGame, board layout.Layout, title string) *Window {
	return &Window{
		logger:  logger.With("component", "window"),
		uGame:   uGame,
		board:   board,
		painter: painter{board: board},
		title:   title,
	}
}

// Run opens the window and blocks until it is closed or ctx is done.
func (that *Window) Run(ctx context.Context) error {
	that.ctx = ctx

	ebiten.SetWindowSize(that.board.Width, that.board.Height)
	ebiten.SetWindowTitle(that.title)
	ebiten.SetWindowClosingHandled(true)

	that.logger.Info("window opened", "width", that.board.Width, "height", that.board.Height)

	if err := ebiten.RunGame(that); err != nil {
		return fmt.Errorf("window stopped: %w", err)
	}

	that.logger.Info("window closed")

	return nil
}

// Update is called by ebiten once per tick.
func (that *Window) Update() error {
	if that.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, event := range that.pollEvents() {
		if err := that.uGame.HandleEvent(that.ctx, event); err != nil {
			if errors.Is(err, apperror.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	return nil
}

func (that *Window) Draw(screen *ebiten.Image) {
	game := that.uGame.Game()
	that.painter.paint(screen, &game)
}

func (that *Window) Layout(_, _ int) (int, int) {
	return that.board.Width, that.board.Height
}

// pollEvents collects the input that arrived since the previous tick.
func (that *Window) pollEvents() []entity.Event {
	var events []entity.Event

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, entity.PointerDownEvent(x, y))
	}

	that.keys = inpututil.AppendJustPressedKeys(that.keys[:0])
	for _, key := range that.keys {
		events = append(events, entity.KeyDownEvent(key.String()))
	}

	if ebiten.IsWindowBeingClosed() {
		events = append(events, entity.QuitEvent())
	}

	return events
}

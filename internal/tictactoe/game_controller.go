package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// GameController owns one round and applies moves to it.
// It is not safe for concurrent use.
type GameController struct {
	game  *entity.Game
	newID func() string
}

func NewGameController(newID func() string) *GameController {
	return &GameController{
		game:  entity.NewGame(newID()),
		newID: newID,
	}
}

// AttemptMove places the current turn's mark at (row, col).
// A rejected move leaves the board and the turn untouched.
func (that *GameController) AttemptMove(row, col int) error {
	if err := that.validateMove(row, col); err != nil {
		return fmt.Errorf("move rejected: %w", err)
	}

	player := that.game.Turn
	that.game.Board.Mark(row, col, player)
	that.game.Moves++

	that.updateGameStatus(player)

	return nil
}

// Restart clears the board and hands the first move to X, whatever the phase.
func (that *GameController) Restart() {
	that.game = entity.NewGame(that.newID())
}

// Game returns a copy of the current round.
func (that *GameController) Game() entity.Game {
	return *that.game
}

func (that *GameController) IsTerminal() bool {
	return that.game.IsTerminal()
}

// Resume replaces the current round with a previously saved one.
func (that *GameController) Resume(game entity.Game) error {
	if err := validateSnapshot(&game); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	that.game = &game

	return nil
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(row, col int) error {
	if that.game.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if !that.game.Board.IsAvailable(row, col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move by player.
func (that *GameController) updateGameStatus(player entity.Mark) {
	if line := CheckWin(&that.game.Board, player); line.IsWin() {
		that.game.Phase = entity.PhaseWon
		that.game.Winner = player
		that.game.Line = line
		return
	}

	if IsTie(&that.game.Board) {
		that.game.Phase = entity.PhaseTied
		return
	}

	that.game.Turn = player.Opponent()
}

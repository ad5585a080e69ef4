package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var (
	errUnknownMark   = errors.New("unknown mark on board")
	errMarkCount     = errors.New("mark counts do not alternate")
	errStateMismatch = errors.New("state does not match board")
)

// validateSnapshot checks that a stored round could have been reached by legal play.
func validateSnapshot(game *entity.Game) error {
	if err := game.ValidatePhase(); err != nil {
		return err
	}

	xCount, oCount := 0, 0
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			switch game.Board[row][col] {
			case entity.X:
				xCount++
			case entity.O:
				oCount++
			case entity.Empty:
			default:
				return fmt.Errorf("%w: %q at (%d, %d)", errUnknownMark, game.Board[row][col], row, col)
			}
		}
	}

	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: x=%d o=%d", errMarkCount, xCount, oCount)
	}

	if game.Moves != xCount+oCount {
		return fmt.Errorf("%w: moves=%d, marks=%d", errStateMismatch, game.Moves, xCount+oCount)
	}

	if CheckWin(&game.Board, lastMover(xCount, oCount).Opponent()).IsWin() {
		return fmt.Errorf("%w: play continued after a win", errStateMismatch)
	}

	expected := deriveState(&game.Board, xCount, oCount)
	if expected.Phase != game.Phase || expected.Winner != game.Winner ||
		expected.Line != game.Line || expected.Turn != game.Turn {
		return fmt.Errorf("%w: expected %s turn=%s winner=%q line=%s",
			errStateMismatch, expected.Phase, expected.Turn, expected.Winner, expected.Line)
	}

	return nil
}

// deriveState rebuilds the phase fields the controller would hold for board.
func deriveState(board *entity.Board, xCount, oCount int) entity.Game {
	mover := lastMover(xCount, oCount)

	if xCount+oCount > 0 {
		if line := CheckWin(board, mover); line.IsWin() {
			return entity.Game{Phase: entity.PhaseWon, Winner: mover, Line: line, Turn: mover}
		}

		if board.IsFull() {
			return entity.Game{Phase: entity.PhaseTied, Turn: mover}
		}
	}

	return entity.Game{Phase: entity.PhaseInProgress, Turn: mover.Opponent()}
}

func lastMover(xCount, oCount int) entity.Mark {
	if xCount == oCount {
		return entity.O
	}
	return entity.X
}

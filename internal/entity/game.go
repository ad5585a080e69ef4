package entity

import (
	"errors"
	"fmt"
)

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseTied       Phase = "tied"
)

const (
	LineNone     LineKind = ""
	LineRow      LineKind = "row"
	LineColumn   LineKind = "column"
	LineDiagonal LineKind = "diagonal"
)

// Diagonal indexes for a LineDiagonal win.
const (
	DiagonalMain = 0
	DiagonalAnti = 1
)

var ErrUnknownPhase = errors.New("unknown game phase")

type Phase string

type LineKind string

// WinLine describes which line completed a win. The zero value means no win.
type WinLine struct {
	Kind  LineKind `json:"kind,omitempty"`
	Index int      `json:"index"`
}

var NoWin = WinLine{}

func RowWin(row int) WinLine {
	return WinLine{Kind: LineRow, Index: row}
}

func ColumnWin(col int) WinLine {
	return WinLine{Kind: LineColumn, Index: col}
}

func DiagonalWin(which int) WinLine {
	return WinLine{Kind: LineDiagonal, Index: which}
}

func (that WinLine) IsWin() bool {
	return that.Kind != LineNone
}

func (that WinLine) String() string {
	switch that.Kind {
	case LineNone:
		return "none"
	case LineDiagonal:
		if that.Index == DiagonalAnti {
			return "diagonal(anti)"
		}
		return "diagonal(main)"
	default:
		return fmt.Sprintf("%s(%d)", that.Kind, that.Index)
	}
}

// Game is the state of one round.
type Game struct {
	ID     string  `json:"id"`
	Board  Board   `json:"board"`
	Turn   Mark    `json:"turn"`
	Phase  Phase   `json:"phase"`
	Winner Mark    `json:"winner,omitempty"`
	Line   WinLine `json:"line"`
	Moves  int     `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		Turn:  X,
		Phase: PhaseInProgress,
	}
}

func (that Game) IsInProgress() bool {
	return that.Phase == PhaseInProgress
}

func (that Game) IsWon() bool {
	return that.Phase == PhaseWon
}

func (that Game) IsTied() bool {
	return that.Phase == PhaseTied
}

// IsTerminal reports whether the round is over and only a restart is accepted.
func (that Game) IsTerminal() bool {
	return that.IsWon() || that.IsTied()
}

func (that Game) ValidatePhase() error {
	switch that.Phase {
	case PhaseInProgress, PhaseWon, PhaseTied:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhase, that.Phase)
	}
}

package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotOver    = errors.New("game is not over")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidSnapshot  = errors.New("invalid game snapshot")
	ErrSnapshotNotFound = errors.New("game snapshot not found")
	ErrQuit             = errors.New("quit requested")
)

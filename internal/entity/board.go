package entity

// Mark is the content of a board cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 3

// Board is the 3x3 grid indexed by (row, col).
type Board [BoardSize][BoardSize]Mark

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == X {
		return O
	}
	return X
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Mark puts player into an empty cell. The caller checks IsAvailable first.
func (that *Board) Mark(row, col int, player Mark) {
	that[row][col] = player
}

func (that Board) Cell(row, col int) Mark {
	return that[row][col]
}

func (that Board) IsAvailable(row, col int) bool {
	return that[row][col] == Empty
}

func (that Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

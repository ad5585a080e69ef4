package tictactoe

import "github.com/rocketscienceinc/tictactoe-local/internal/entity"

// CheckWin reports the first line fully held by player.
// Rows are scanned before columns, columns before the main diagonal,
// and the main diagonal before the anti-diagonal.
func CheckWin(board *entity.Board, player entity.Mark) entity.WinLine {
	for row := range entity.BoardSize {
		if lineHeld(player, board[row][0], board[row][1], board[row][2]) {
			return entity.RowWin(row)
		}
	}

	for col := range entity.BoardSize {
		if lineHeld(player, board[0][col], board[1][col], board[2][col]) {
			return entity.ColumnWin(col)
		}
	}

	if lineHeld(player, board[0][0], board[1][1], board[2][2]) {
		return entity.DiagonalWin(entity.DiagonalMain)
	}

	if lineHeld(player, board[0][2], board[1][1], board[2][0]) {
		return entity.DiagonalWin(entity.DiagonalAnti)
	}

	return entity.NoWin
}

// IsTie reports a full board on which neither player has a line.
func IsTie(board *entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	return !CheckWin(board, entity.X).IsWin() && !CheckWin(board, entity.O).IsWin()
}

func lineHeld(player, a, b, c entity.Mark) bool {
	return player.IsPlayer() && a == player && b == player && c == player
}

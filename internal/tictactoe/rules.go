package tictactoe

import "github.com/rocketscienceinc/nineboard-agent/internal/entity"

// WinCombos - the eight lines of a board, in 1..9 cell numbering.
var WinCombos = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// IsWinning - reports whether mark holds all three cells of any line.
// An Empty mark never wins.
func IsWinning(board *entity.Board, mark entity.Cell) bool {
	if !mark.IsMark() {
		return false
	}

	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Winner - returns the mark holding a completed line on board, or Empty.
func Winner(board *entity.Board) entity.Cell {
	switch {
	case IsWinning(board, entity.Agent):
		return entity.Agent
	case IsWinning(board, entity.Opponent):
		return entity.Opponent
	default:
		return entity.Empty
	}
}

// WinningCells - empty cells where mark would complete a line, in increasing order.
func WinningCells(board *entity.Board, mark entity.Cell) []int {
	var cells []int
	for cell := entity.FirstIndex; cell <= entity.LastIndex; cell++ {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = mark
		wins := IsWinning(board, mark)
		board[cell] = entity.Empty

		if wins {
			cells = append(cells, cell)
		}
	}

	return cells
}

// LegalCells - empty cells of the active board. A full target board has no legal
// move; the game ends in a draw under the referee rules.
func LegalCells(state *entity.BoardSet) []int {
	board, err := state.ActiveBoard()
	if err != nil {
		return nil
	}

	return board.EmptyCells()
}

// GameWinner - the side whose last move completed a line, or Empty.
// Only the board the last move landed on can have changed.
func GameWinner(state *entity.BoardSet) entity.Cell {
	last := state.Last
	if !entity.ValidIndex(last.Board) || !last.Mark.IsMark() {
		return entity.Empty
	}

	if IsWinning(&state.Boards[last.Board], last.Mark) {
		return last.Mark
	}

	return entity.Empty
}

package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
)

// Cell - state of a single square.
type Cell int8

const (
	Empty Cell = iota
	Agent
	Opponent
)

const (
	FirstIndex = 1
	LastIndex  = 9
)

// Other - returns the mark of the other side. Empty stays Empty.
func (that Cell) Other() Cell {
	switch that {
	case Agent:
		return Opponent
	case Opponent:
		return Agent
	default:
		return Empty
	}
}

// IsMark - reports whether the cell holds a side's mark.
func (that Cell) IsMark() bool {
	return that == Agent || that == Opponent
}

func (that Cell) String() string {
	switch that {
	case Agent:
		return "A"
	case Opponent:
		return "O"
	default:
		return "."
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "A":
		*that = Agent
	case "O":
		*that = Opponent
	case ".", "":
		*that = Empty
	default:
		return fmt.Errorf("unknown cell %q", text)
	}

	return nil
}

// ValidIndex - reports whether i addresses a board or a cell (1..9).
func ValidIndex(i int) bool {
	return i >= FirstIndex && i <= LastIndex
}

// Board - a 3x3 board addressed 1..9. Index 0 is unused so that a cell index
// also names the board the next move goes to.
type Board [10]Cell

// EmptyCells - returns the empty cell indices in increasing order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, LastIndex)
	for i := FirstIndex; i <= LastIndex; i++ {
		if that[i] == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for i := FirstIndex; i <= LastIndex; i++ {
		if that[i] == Empty {
			return false
		}
	}

	return true
}

func (that *Board) String() string {
	var sb strings.Builder
	for i := FirstIndex; i <= LastIndex; i++ {
		sb.WriteString(that[i].String())
		if i%3 == 0 {
			if i != LastIndex {
				sb.WriteByte('\n')
			}
			continue
		}
		sb.WriteByte(' ')
	}

	return sb.String()
}

// Move - a mark placed on a cell of a board.
type Move struct {
	Board int  `json:"board"`
	Cell  int  `json:"cell"`
	Mark  Cell `json:"mark"`
}

// BoardSet - the nine boards plus the pointer to the board the next move must target.
// Boards[0] is unused.
type BoardSet struct {
	Boards [10]Board `json:"boards"`
	Active int       `json:"active"`
	Last   Move      `json:"last"`
}

func NewBoardSet() *BoardSet {
	return &BoardSet{}
}

// Place - writes mark into boards[board][cell] and makes cell the active board.
func (that *BoardSet) Place(board, cell int, mark Cell) error {
	if !ValidIndex(board) || !ValidIndex(cell) {
		return fmt.Errorf("%w: board %d cell %d", apperror.ErrInvalidIndex, board, cell)
	}

	if !mark.IsMark() {
		return apperror.ErrInvalidMark
	}

	if that.Boards[board][cell] != Empty {
		return fmt.Errorf("%w: board %d cell %d", apperror.ErrCellOccupied, board, cell)
	}

	that.Apply(board, cell, mark)

	return nil
}

// Apply - places mark without validation. The caller guarantees the cell is empty and in range.
func (that *BoardSet) Apply(board, cell int, mark Cell) {
	that.Boards[board][cell] = mark
	that.Last = Move{Board: board, Cell: cell, Mark: mark}
	that.Active = cell
}

// Undo - clears the last placed move and restores prev as the last move.
// The undone move was played on the board that was active before it.
func (that *BoardSet) Undo(prev Move) {
	that.Active = that.Last.Board
	that.Boards[that.Last.Board][that.Last.Cell] = Empty
	that.Last = prev
}

// Clone - returns an independent deep copy. Boards are arrays, so copying the struct copies every cell.
func (that *BoardSet) Clone() *BoardSet {
	clone := *that
	return &clone
}

// ActiveBoard - returns the board the next move must target.
func (that *BoardSet) ActiveBoard() (*Board, error) {
	if !ValidIndex(that.Active) {
		return nil, apperror.ErrNoActiveBoard
	}

	return &that.Boards[that.Active], nil
}

// Occupied - number of non-empty cells over all boards.
func (that *BoardSet) Occupied() int {
	count := 0
	for b := FirstIndex; b <= LastIndex; b++ {
		for c := FirstIndex; c <= LastIndex; c++ {
			if that.Boards[b][c] != Empty {
				count++
			}
		}
	}

	return count
}

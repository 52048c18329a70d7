package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
)

const (
	// WinScore - sentinel for a forced win found at depth 0. A win found at depth d scores WinScore-d.
	WinScore  = 1_000_000
	DrawScore = 0

	// Infinity - bound used for the initial search window. Never produced as a score.
	Infinity = WinScore + 1

	// MaxHeuristic - no heuristic value may reach this magnitude.
	MaxHeuristic = 10_000

	tempoBonus = 250
)

const (
	HeuristicLines = "lines"
	HeuristicFlat  = "flat"
)

// lineWeights - score of an open line indexed by the number of own marks on it.
var lineWeights = [4]int{0, 1, 10, 100}

// Heuristic - scores a non-terminal position from the perspective of mark.
// Higher is better for mark; results stay within (-MaxHeuristic, MaxHeuristic).
type Heuristic func(state *entity.BoardSet, mark entity.Cell) int

// EvaluateBoard - positional score of one board for mark: open lines weighted by how
// many of mark's pieces they hold, minus the same for the other side, with a small
// center and corner preference. EvaluateBoard(b, m) == -EvaluateBoard(b, m.Other()).
func EvaluateBoard(board *entity.Board, mark entity.Cell) int {
	other := mark.Other()
	score := 0

	for _, combo := range WinCombos {
		mine, theirs := 0, 0
		for _, cell := range combo {
			switch board[cell] {
			case mark:
				mine++
			case other:
				theirs++
			}
		}

		switch {
		case mine > 0 && theirs > 0:
		case theirs == 0:
			score += lineWeights[mine]
		default:
			score -= lineWeights[theirs]
		}
	}

	score += 3 * ownership(board[5], mark)
	for _, corner := range [4]int{1, 3, 7, 9} {
		score += ownership(board[corner], mark)
	}

	return score
}

func ownership(cell, mark entity.Cell) int {
	switch cell {
	case mark:
		return 1
	case mark.Other():
		return -1
	default:
		return 0
	}
}

// LineHeuristic - sums EvaluateBoard over the nine boards and adds a tempo bonus when
// mark, being the side to move, can complete a line on the active board.
func LineHeuristic(state *entity.BoardSet, mark entity.Cell) int {
	score := 0
	for b := entity.FirstIndex; b <= entity.LastIndex; b++ {
		score += EvaluateBoard(&state.Boards[b], mark)
	}

	if board, err := state.ActiveBoard(); err == nil && len(WinningCells(board, mark)) > 0 {
		score += tempoBonus
	}

	return score
}

// FlatHeuristic - scores every position the same, leaving only forced wins and losses to the search.
func FlatHeuristic(*entity.BoardSet, entity.Cell) int {
	return 0
}

func HeuristicByName(name string) (Heuristic, error) {
	switch name {
	case HeuristicLines, "":
		return LineHeuristic, nil
	case HeuristicFlat:
		return FlatHeuristic, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

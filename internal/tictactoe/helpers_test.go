package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
)

// fill - writes marks straight into a board, bypassing the active pointer.
func fill(set *entity.BoardSet, board int, agent, opponent []int) {
	for _, cell := range agent {
		set.Boards[board][cell] = entity.Agent
	}
	for _, cell := range opponent {
		set.Boards[board][cell] = entity.Opponent
	}
}

// mirror - the same position with the two sides swapped.
func mirror(set *entity.BoardSet) *entity.BoardSet {
	m := set.Clone()
	for b := entity.FirstIndex; b <= entity.LastIndex; b++ {
		for c := entity.FirstIndex; c <= entity.LastIndex; c++ {
			m.Boards[b][c] = m.Boards[b][c].Other()
		}
	}
	m.Last.Mark = m.Last.Mark.Other()

	return m
}

// randomPosition - plays random legal moves from a random opening and stops before any line is completed.
func randomPosition(rng *rand.Rand, plies int) *entity.BoardSet {
	set := entity.NewBoardSet()
	set.Active = 1 + rng.Intn(entity.LastIndex)
	mark := entity.Agent

	for i := 0; i < plies; i++ {
		cells := LegalCells(set)
		if len(cells) == 0 {
			break
		}

		prev := set.Last
		set.Apply(set.Active, cells[rng.Intn(len(cells))], mark)
		if GameWinner(set) != entity.Empty {
			set.Undo(prev)
			break
		}
		mark = mark.Other()
	}

	return set
}

// sideToMove - the side that did not make the last move.
func sideToMove(set *entity.BoardSet) int {
	if set.Last.Mark == entity.Agent {
		return -1
	}
	return 1
}

// plainNegamax - negamax without pruning, used as the reference for alpha-beta.
func plainNegamax(set *entity.BoardSet, depth, maxDepth, sign int, heuristic Heuristic) int {
	mark := markFor(sign)
	if GameWinner(set) == mark.Other() {
		return -(WinScore - depth)
	}
	if depth >= maxDepth {
		return heuristic(set, mark)
	}

	cells := LegalCells(set)
	if len(cells) == 0 {
		return DrawScore
	}

	board := set.Active
	prev := set.Last
	best := -Infinity
	for _, cell := range cells {
		set.Apply(board, cell, mark)
		score := -plainNegamax(set, depth+1, maxDepth, -sign, heuristic)
		set.Undo(prev)
		if score > best {
			best = score
		}
	}

	return best
}

type recordingObserver struct {
	nodes      int
	candidates []int
}

func (that *recordingObserver) OnNode(int, entity.Move, *entity.Board) { that.nodes++ }
func (that *recordingObserver) OnCandidate(cell, _ int)              { that.candidates = append(that.candidates, cell) }

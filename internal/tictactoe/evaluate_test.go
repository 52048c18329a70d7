package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBoard(t *testing.T) {
	t.Run("Empty board is neutral", func(t *testing.T) {
		var board entity.Board

		assert.Equal(t, 0, EvaluateBoard(&board, entity.Agent))
	})

	t.Run("Scores are antisymmetric", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			var board entity.Board
			for c := entity.FirstIndex; c <= entity.LastIndex; c++ {
				board[c] = entity.Cell(rng.Intn(3))
			}

			assert.Equal(t, -EvaluateBoard(&board, entity.Opponent), EvaluateBoard(&board, entity.Agent))
		}
	})

	t.Run("Center beats corner beats edge", func(t *testing.T) {
		var center, corner, edge entity.Board
		center[5] = entity.Agent
		corner[1] = entity.Agent
		edge[2] = entity.Agent

		assert.Greater(t, EvaluateBoard(&center, entity.Agent), EvaluateBoard(&corner, entity.Agent))
		assert.Greater(t, EvaluateBoard(&corner, entity.Agent), EvaluateBoard(&edge, entity.Agent))
	})

	t.Run("Open two is worth more than a blocked one", func(t *testing.T) {
		var open, blocked entity.Board
		open[1], open[2] = entity.Agent, entity.Agent
		blocked[1], blocked[2], blocked[3] = entity.Agent, entity.Agent, entity.Opponent

		assert.Greater(t, EvaluateBoard(&open, entity.Agent), EvaluateBoard(&blocked, entity.Agent))
	})
}

func TestLineHeuristic(t *testing.T) {
	t.Run("Bounded below the win sentinel", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 200; i++ {
			set := randomPosition(rng, rng.Intn(60))

			for _, mark := range []entity.Cell{entity.Agent, entity.Opponent} {
				score := LineHeuristic(set, mark)
				assert.Less(t, score, MaxHeuristic)
				assert.Greater(t, score, -MaxHeuristic)
			}
		}
		assert.Less(t, MaxHeuristic, WinScore-MaxDepthLimit)
	})

	t.Run("Tempo bonus for an immediate win on the active board", func(t *testing.T) {
		// Given: two sets that differ only in which board is active
		set := entity.NewBoardSet()
		fill(set, 3, []int{1, 2}, nil)
		set.Active = 3
		other := set.Clone()
		other.Active = 4

		// Then: the side that can complete a line right now scores higher
		assert.Equal(t, tempoBonus, LineHeuristic(set, entity.Agent)-LineHeuristic(other, entity.Agent))
		assert.Equal(t, LineHeuristic(set, entity.Opponent), LineHeuristic(other, entity.Opponent))
	})
}

func TestHeuristicByName(t *testing.T) {
	for _, name := range []string{HeuristicLines, HeuristicFlat, ""} {
		h, err := HeuristicByName(name)
		require.NoError(t, err)
		assert.NotNil(t, h)
	}

	_, err := HeuristicByName("deep")
	require.Error(t, err)
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSet_Place(t *testing.T) {
	t.Run("Active board follows the placed cell for every prior pointer", func(t *testing.T) {
		for prior := FirstIndex; prior <= LastIndex; prior++ {
			for cell := FirstIndex; cell <= LastIndex; cell++ {
				// Given: a board set whose active pointer is prior
				set := NewBoardSet()
				set.Active = prior

				// When: a mark is placed on the active board
				err := set.Place(prior, cell, Opponent)

				// Then: the active pointer names the placed cell
				require.NoError(t, err)
				assert.Equal(t, cell, set.Active)
				assert.Equal(t, Opponent, set.Boards[prior][cell])
				assert.Equal(t, Move{Board: prior, Cell: cell, Mark: Opponent}, set.Last)
			}
		}
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with a mark on cell 5
		set := NewBoardSet()
		require.NoError(t, set.Place(1, 5, Agent))
		before := *set

		// When: the opponent tries the same cell
		err := set.Place(1, 5, Opponent)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, *set)
	})

	t.Run("Error on index out of range", func(t *testing.T) {
		set := NewBoardSet()

		for _, idx := range [][2]int{{0, 1}, {1, 0}, {10, 1}, {1, 10}, {-1, 3}} {
			err := set.Place(idx[0], idx[1], Agent)
			require.ErrorIs(t, err, apperror.ErrInvalidIndex)
		}

		assert.Equal(t, 0, set.Occupied())
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		set := NewBoardSet()

		err := set.Place(1, 1, Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoardSet_Undo(t *testing.T) {
	// Given: two moves played
	set := NewBoardSet()
	require.NoError(t, set.Place(3, 7, Opponent))
	prev := set.Last
	require.NoError(t, set.Place(7, 2, Agent))

	// When: the last one is undone
	set.Undo(prev)

	// Then: the board and the pointer are back to the state after the first move
	assert.Equal(t, Empty, set.Boards[7][2])
	assert.Equal(t, 7, set.Active)
	assert.Equal(t, prev, set.Last)
	assert.Equal(t, 1, set.Occupied())
}

func TestBoardSet_Clone(t *testing.T) {
	// Given: a board set with some moves
	original := NewBoardSet()
	require.NoError(t, original.Place(5, 1, Opponent))
	require.NoError(t, original.Place(1, 9, Agent))

	// When: it is cloned and the clone is mutated
	clone := original.Clone()
	require.Equal(t, original, clone)
	require.NoError(t, clone.Place(9, 9, Opponent))

	// Then: the original is unaffected
	assert.Equal(t, Empty, original.Boards[9][9])
	assert.Equal(t, 9, original.Active)
	assert.Equal(t, 2, original.Occupied())
	assert.Equal(t, 3, clone.Occupied())
}

func TestBoardSet_ActiveBoard(t *testing.T) {
	t.Run("Returns ErrNoActiveBoard before the first move", func(t *testing.T) {
		_, err := NewBoardSet().ActiveBoard()

		require.ErrorIs(t, err, apperror.ErrNoActiveBoard)
	})

	t.Run("Returns the board named by the last cell", func(t *testing.T) {
		set := NewBoardSet()
		require.NoError(t, set.Place(2, 4, Agent))

		board, err := set.ActiveBoard()

		require.NoError(t, err)
		assert.Same(t, &set.Boards[4], board)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	var board Board
	board[2] = Agent
	board[5] = Opponent
	board[9] = Agent

	assert.Equal(t, []int{1, 3, 4, 6, 7, 8}, board.EmptyCells())
	assert.False(t, board.IsFull())

	for i := FirstIndex; i <= LastIndex; i++ {
		board[i] = Agent
	}

	assert.Empty(t, board.EmptyCells())
	assert.True(t, board.IsFull())
}

func TestBoard_String(t *testing.T) {
	var board Board
	board[1] = Agent
	board[5] = Opponent

	assert.Equal(t, "A . .\n. O .\n. . .", board.String())
}

func TestBoardSet_JSON(t *testing.T) {
	set := NewBoardSet()
	require.NoError(t, set.Place(4, 6, Opponent))

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last":{"board":4,"cell":6,"mark":"O"}`)

	var decoded BoardSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *set, decoded)
}

func TestCell_Other(t *testing.T) {
	assert.Equal(t, Opponent, Agent.Other())
	assert.Equal(t, Agent, Opponent.Other())
	assert.Equal(t, Empty, Empty.Other())
}

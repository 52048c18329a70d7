package tictactoe

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearcher(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s := NewSearcher()

		assert.Equal(t, DefaultMaxDepth, s.MaxDepth())
	})

	t.Run("Out of range options are ignored", func(t *testing.T) {
		s := NewSearcher(WithMaxDepth(0), WithMaxDepth(MaxDepthLimit+1), WithHeuristic(nil), WithObserver(nil))

		assert.Equal(t, DefaultMaxDepth, s.MaxDepth())
		assert.NotNil(t, s.heuristic)
		assert.NotNil(t, s.observer)
	})
}

func TestSearcher_FindBestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Completes a line when one move away", func(t *testing.T) {
		// Given: board 5 active, agent holds 7 and 8, opponent holds 1 and 2
		set := entity.NewBoardSet()
		fill(set, 5, []int{7, 8}, []int{1, 2})
		set.Active = 5

		for _, depth := range []int{1, 2, 4} {
			// When: the best move is searched
			result, err := NewSearcher(WithMaxDepth(depth)).FindBestMove(ctx, set)

			// Then: cell 9 wins at once
			require.NoError(t, err)
			assert.Equal(t, 9, result.Cell)
			assert.Equal(t, WinScore, result.Score)
		}
	})

	t.Run("Does not send the opponent to a board it can win", func(t *testing.T) {
		// Given: board 1 active with cells 2 and 3 free; the opponent threatens board 2 at cell 3
		// and cannot send the agent back to board 1 from board 3
		set := entity.NewBoardSet()
		fill(set, 1, []int{4, 7, 9}, []int{1, 5, 6, 8})
		fill(set, 2, nil, []int{1, 2})
		fill(set, 3, []int{1}, nil)
		set.Active = 1

		for _, depth := range []int{2, 4} {
			// When: the best move is searched
			result, err := NewSearcher(WithMaxDepth(depth)).FindBestMove(ctx, set)

			// Then: cell 3 is chosen, although cell 2 comes first
			require.NoError(t, err)
			assert.Equal(t, 3, result.Cell)
			assert.Greater(t, result.Score, -MaxHeuristic)
		}
	})

	t.Run("Returns a legal cell on an empty board at depth 1", func(t *testing.T) {
		set := entity.NewBoardSet()
		set.Active = 5

		result, err := NewSearcher(WithMaxDepth(1)).FindBestMove(ctx, set)

		require.NoError(t, err)
		assert.True(t, entity.ValidIndex(result.Cell))
		assert.Equal(t, 0, set.Occupied(), "caller state must not change")
	})

	t.Run("ErrNoLegalMove on a full board without winner", func(t *testing.T) {
		set := entity.NewBoardSet()
		fill(set, 5, []int{1, 3, 4, 8, 9}, []int{2, 5, 6, 7})
		set.Active = 5

		_, err := NewSearcher().FindBestMove(ctx, set)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("ErrNoActiveBoard before the first move", func(t *testing.T) {
		_, err := NewSearcher().FindBestMove(ctx, entity.NewBoardSet())

		require.ErrorIs(t, err, apperror.ErrNoActiveBoard)
	})

	t.Run("Matches an unpruned search", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 40; i++ {
			set := randomPosition(rng, 4+rng.Intn(30))
			if sideToMove(set) != 1 || len(LegalCells(set)) == 0 || GameWinner(set) != entity.Empty {
				continue
			}

			// Given: the reference first-max choice without pruning
			wantCell, wantScore := 0, -Infinity
			for _, cell := range LegalCells(set) {
				child := set.Clone()
				child.Apply(set.Active, cell, entity.Agent)
				score := -plainNegamax(child, 0, 3, -1, LineHeuristic)
				if score > wantScore {
					wantCell, wantScore = cell, score
				}
			}

			// When: the pruned search runs
			result, err := NewSearcher(WithMaxDepth(3)).FindBestMove(ctx, set)

			// Then: both pick the same cell with the same score
			require.NoError(t, err)
			assert.Equal(t, wantCell, result.Cell)
			assert.Equal(t, wantScore, result.Score)
		}
	})

	t.Run("Node budget cuts the search and keeps a move", func(t *testing.T) {
		set := entity.NewBoardSet()
		set.Active = 5

		result, err := NewSearcher(WithMaxDepth(6), WithNodeBudget(10)).FindBestMove(ctx, set)

		require.NoError(t, err)
		assert.True(t, result.Cutoff)
		assert.Equal(t, 1, result.Cell)
	})

	t.Run("Expired context returns the first candidate", func(t *testing.T) {
		set := entity.NewBoardSet()
		set.Active = 5
		expired, cancel := context.WithCancel(ctx)
		cancel()

		result, err := NewSearcher(WithMaxDepth(2), WithTimeBudget(time.Minute)).FindBestMove(expired, set)

		require.NoError(t, err)
		assert.True(t, result.Cutoff)
		assert.Equal(t, 1, result.Cell)
	})

	t.Run("Observer sees every root candidate", func(t *testing.T) {
		set := entity.NewBoardSet()
		fill(set, 8, []int{1}, []int{5})
		set.Active = 8
		observer := &recordingObserver{}

		_, err := NewSearcher(WithMaxDepth(1), WithObserver(observer)).FindBestMove(ctx, set)

		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4, 6, 7, 8, 9}, observer.candidates)
		assert.Greater(t, observer.nodes, len(observer.candidates))
	})
}

func TestSearcher_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Full board is a draw", func(t *testing.T) {
		set := entity.NewBoardSet()
		fill(set, 5, []int{1, 3, 4, 8, 9}, []int{2, 5, 6, 7})
		set.Active = 5

		assert.Equal(t, DrawScore, NewSearcher().Search(ctx, set, 0, -Infinity, Infinity, 1))
		assert.Equal(t, DrawScore, NewSearcher().Search(ctx, set, 0, -Infinity, Infinity, -1))
	})

	t.Run("Win sentinel shrinks with depth", func(t *testing.T) {
		// Given: the agent has just completed a line on board 4
		set := entity.NewBoardSet()
		fill(set, 4, []int{1, 2}, nil)
		set.Active = 4
		require.NoError(t, set.Place(4, 3, entity.Agent))

		// Then: the opponent to move has lost, by less the deeper it happens
		s := NewSearcher()
		assert.Equal(t, -WinScore, s.Search(ctx, set, 0, -Infinity, Infinity, -1))
		assert.Equal(t, -(WinScore - 3), s.Search(ctx, set, 3, -Infinity, Infinity, -1))
	})

	t.Run("Mirrored position with mirrored sign scores the same", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		s := NewSearcher(WithMaxDepth(3))
		for i := 0; i < 30; i++ {
			set := randomPosition(rng, rng.Intn(25))
			sign := sideToMove(set)

			got := s.Search(ctx, set, 0, -Infinity, Infinity, sign)
			mirrored := s.Search(ctx, mirror(set), 0, -Infinity, Infinity, -sign)

			assert.Equal(t, got, mirrored)
		}
	})

	t.Run("Full window equals unpruned negamax", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		s := NewSearcher(WithMaxDepth(3))
		for i := 0; i < 30; i++ {
			set := randomPosition(rng, rng.Intn(25))
			sign := sideToMove(set)

			want := plainNegamax(set.Clone(), 0, 3, sign, LineHeuristic)

			assert.Equal(t, want, s.Search(ctx, set, 0, -Infinity, Infinity, sign))
		}
	})

	t.Run("Caller state is untouched", func(t *testing.T) {
		set := randomPosition(rand.New(rand.NewSource(9)), 10)
		before := set.Clone()

		NewSearcher(WithMaxDepth(3)).Search(ctx, set, 0, -Infinity, Infinity, sideToMove(set))

		assert.Equal(t, before, set)
	})
}

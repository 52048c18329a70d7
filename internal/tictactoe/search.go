package tictactoe

import (
	"context"
	"time"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
)

const (
	DefaultMaxDepth = 4
	MaxDepthLimit   = 64

	// ctxCheckInterval - nodes between two checks of the context deadline.
	ctxCheckInterval = 64
)

type Option func(s *Searcher)

// Searcher - fixed-depth negamax with alpha-beta pruning over the nine-board game.
type Searcher struct {
	maxDepth   int
	heuristic  Heuristic
	timeBudget time.Duration
	nodeBudget int64
	observer   Observer
}

// Result - outcome of one top-level move search.
type Result struct {
	Cell   int   `json:"cell"`
	Score  int   `json:"score"`
	Nodes  int64 `json:"nodes"`
	Cutoff bool  `json:"cutoff"`
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 && depth <= MaxDepthLimit {
			s.maxDepth = depth
		}
	}
}

func WithHeuristic(heuristic Heuristic) Option {
	return func(s *Searcher) {
		if heuristic != nil {
			s.heuristic = heuristic
		}
	}
}

// WithTimeBudget - wall-clock limit for one FindBestMove call.
func WithTimeBudget(budget time.Duration) Option {
	return func(s *Searcher) {
		if budget > 0 {
			s.timeBudget = budget
		}
	}
}

// WithNodeBudget - limit on nodes visited by one FindBestMove call.
func WithNodeBudget(nodes int64) Option {
	return func(s *Searcher) {
		if nodes > 0 {
			s.nodeBudget = nodes
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(s *Searcher) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{
		maxDepth:  DefaultMaxDepth,
		heuristic: LineHeuristic,
		observer:  nopObserver{},
	}
	for _, option := range options {
		option(s)
	}

	return s
}

func (that *Searcher) MaxDepth() int {
	return that.maxDepth
}

// Search - negamax value of state from the perspective of the side named by sign
// (+1 agent, -1 opponent), who is to move on state.Active. The caller's state is not modified.
func (that *Searcher) Search(ctx context.Context, state *entity.BoardSet, depth, alpha, beta, sign int) int {
	r := that.newRun(ctx)
	return r.negamax(state.Clone(), depth, alpha, beta, sign)
}

// FindBestMove - scores every empty cell of the active board for the agent and returns the
// first cell with the greatest score. Ties keep the lowest cell index.
func (that *Searcher) FindBestMove(ctx context.Context, state *entity.BoardSet) (Result, error) {
	cells := LegalCells(state)
	if len(cells) == 0 {
		if _, err := state.ActiveBoard(); err != nil {
			return Result{}, err
		}
		return Result{}, apperror.ErrNoLegalMove
	}

	if that.timeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.timeBudget)
		defer cancel()
	}

	r := that.newRun(ctx)
	work := state.Clone()
	board := work.Active
	prev := work.Last

	best := Result{Score: -Infinity}
	for _, cell := range cells {
		if best.Cell != 0 && r.check(true) {
			break
		}

		work.Apply(board, cell, entity.Agent)
		that.observer.OnNode(0, work.Last, &work.Boards[board])

		// The window opens at the best score so far: a later cell that only ties fails low and is not taken.
		score := -r.negamax(work, 0, -Infinity, -best.Score, -1)
		work.Undo(prev)

		that.observer.OnCandidate(cell, score)

		if score > best.Score {
			best.Score = score
			best.Cell = cell
		}
	}

	best.Nodes = r.nodes
	best.Cutoff = r.exhausted

	return best, nil
}

// run - per-call search state.
type run struct {
	*Searcher
	ctx       context.Context
	nodes     int64
	exhausted bool
}

func (that *Searcher) newRun(ctx context.Context) *run {
	return &run{Searcher: that, ctx: ctx}
}

// spent - reports whether the node or time budget is used up, looking at the deadline
// only every ctxCheckInterval nodes.
func (that *run) spent() bool {
	return that.check(that.nodes%ctxCheckInterval == 0)
}

// check - once exhausted, a run stays exhausted.
func (that *run) check(deadline bool) bool {
	if that.exhausted {
		return true
	}

	if that.nodeBudget > 0 && that.nodes >= that.nodeBudget {
		that.exhausted = true
	} else if deadline && that.ctx.Err() != nil {
		that.exhausted = true
	}

	return that.exhausted
}

func markFor(sign int) entity.Cell {
	if sign > 0 {
		return entity.Agent
	}
	return entity.Opponent
}

func (that *run) negamax(state *entity.BoardSet, depth, alpha, beta, sign int) int {
	that.nodes++
	mark := markFor(sign)

	// The previous mover completed a line: a loss for the side to move, worse the sooner it happens.
	if GameWinner(state) == mark.Other() {
		return -(WinScore - depth)
	}

	if depth >= that.maxDepth || that.spent() {
		return that.heuristic(state, mark)
	}

	cells := LegalCells(state)
	if len(cells) == 0 {
		return DrawScore
	}

	board := state.Active
	prev := state.Last
	best := -Infinity

	for _, cell := range cells {
		state.Apply(board, cell, mark)
		that.observer.OnNode(depth+1, state.Last, &state.Boards[board])

		score := -that.negamax(state, depth+1, -beta, -alpha, -sign)
		state.Undo(prev)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

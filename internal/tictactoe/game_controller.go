package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
)

type Status int

const (
	StatusIdle Status = iota
	StatusComputing
	StatusEnded
)

func (that Status) String() string {
	switch that {
	case StatusIdle:
		return "idle"
	case StatusComputing:
		return "computing"
	case StatusEnded:
		return "ended"
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

// GameController - owns the authoritative board set of one game.
// Idle -> (opponent move) -> Computing -> (Play) -> Idle ... -> Ended.
type GameController struct {
	state    *entity.BoardSet
	searcher *Searcher
	status   Status
}

func NewGameController(searcher *Searcher) *GameController {
	return &GameController{
		state:    entity.NewBoardSet(),
		searcher: searcher,
		status:   StatusIdle,
	}
}

// Place - commits a move observed from the referee. An opponent move puts the controller in Computing.
func (that *GameController) Place(board, cell int, mark entity.Cell) error {
	if that.status == StatusEnded {
		return apperror.ErrGameEnded
	}

	if err := that.state.Place(board, cell, mark); err != nil {
		return fmt.Errorf("failed place: %w", err)
	}

	if mark == entity.Opponent {
		that.status = StatusComputing
	}

	return nil
}

// Play - searches the active board, commits the agent's best cell and returns it.
func (that *GameController) Play(ctx context.Context) (Result, error) {
	if that.status == StatusEnded {
		return Result{}, apperror.ErrGameEnded
	}

	result, err := that.searcher.FindBestMove(ctx, that.state)
	if err != nil {
		return Result{}, fmt.Errorf("failed find best move: %w", err)
	}

	if err = that.state.Place(that.state.Active, result.Cell, entity.Agent); err != nil {
		return Result{}, fmt.Errorf("failed commit move: %w", err)
	}

	that.status = StatusIdle

	return result, nil
}

// End - no further moves are accepted.
func (that *GameController) End() {
	that.status = StatusEnded
}

func (that *GameController) Status() Status {
	return that.status
}

// Active - the board the next move must target, 0 before the first move.
func (that *GameController) Active() int {
	return that.state.Active
}

// Snapshot - a copy of the current board set.
func (that *GameController) Snapshot() *entity.BoardSet {
	return that.state.Clone()
}

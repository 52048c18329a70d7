package tictactoe

import (
	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
)

// Observer - receives search events. Implementations must not mutate the board.
type Observer interface {
	OnNode(depth int, move entity.Move, board *entity.Board)
	OnCandidate(cell, score int)
}

type nopObserver struct{}

func (nopObserver) OnNode(int, entity.Move, *entity.Board) {}
func (nopObserver) OnCandidate(int, int)                   {}

type logObserver struct {
	logger zerolog.Logger
}

// NewLogObserver - dumps every expanded node at trace level and every root candidate at debug level.
func NewLogObserver(logger zerolog.Logger) Observer {
	return &logObserver{logger: logger.With().Str("component", "search").Logger()}
}

func (that *logObserver) OnNode(depth int, move entity.Move, board *entity.Board) {
	if that.logger.GetLevel() > zerolog.TraceLevel {
		return
	}

	that.logger.Trace().
		Int("depth", depth).
		Int("board", move.Board).
		Int("cell", move.Cell).
		Stringer("mark", move.Mark).
		Msg("\n" + board.String())
}

func (that *logObserver) OnCandidate(cell, score int) {
	that.logger.Debug().Int("cell", cell).Int("score", score).Msg("candidate scored")
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
	"github.com/rocketscienceinc/nineboard-agent/internal/tictactoe"
)

var (
	ErrUnknownSide    = errors.New("unknown side")
	ErrGameInProgress = errors.New("game is in progress")
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type controller interface {
	Place(board, cell int, mark entity.Cell) error
	Play(ctx context.Context) (tictactoe.Result, error)
	End()
	Status() tictactoe.Status
	Active() int
	Snapshot() *entity.BoardSet
}

// Snapshot - a read-only view of the game in progress.
type Snapshot struct {
	GameID string           `json:"game_id"`
	Side   string           `json:"side,omitempty"`
	Status string           `json:"status"`
	Board  *entity.BoardSet `json:"board"`
}

// GameManager - applies referee events to the current game and archives finished games.
type GameManager struct {
	logger   zerolog.Logger
	gameRepo gameRepo

	newController func() controller
	now           func() time.Time
	newID         func() string

	mu         sync.RWMutex
	controller controller
	record     *entity.GameRecord
}

func NewGameManager(logger zerolog.Logger, gameRepo gameRepo, searcher *tictactoe.Searcher) *GameManager {
	return &GameManager{
		logger:   logger.With().Str("component", "game_manager").Logger(),
		gameRepo: gameRepo,

		newController: func() controller { return tictactoe.NewGameController(searcher) },
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// NewGame - starts a new game, dropping an unfinished one.
func (that *GameManager) NewGame(_ context.Context) string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.startLocked()
}

func (that *GameManager) startLocked() string {
	if that.record != nil && that.record.IsOngoing() {
		that.logger.Warn().Str("game_id", that.record.ID).Int("moves", len(that.record.Moves)).Msg("unfinished game dropped")
	}

	that.controller = that.newController()
	that.record = entity.NewGameRecord(that.newID(), that.now())

	that.logger.Info().Str("game_id", that.record.ID).Msg("game started")

	return that.record.ID
}

// ensureLocked - a move may arrive without init; it opens a game implicitly.
func (that *GameManager) ensureLocked() {
	if that.controller == nil || that.record.IsFinished() {
		that.startLocked()
	}
}

// SetSide - records whether the agent plays x (first) or o (second).
func (that *GameManager) SetSide(side string) error {
	if side != entity.SideX && side != entity.SideO {
		return fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.ensureLocked()
	that.record.Side = side

	return nil
}

// SecondMove - the opponent opened at (board, cell); the agent answers.
func (that *GameManager) SecondMove(ctx context.Context, board, cell int) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.ensureLocked()

	if err := that.placeLocked(board, cell, entity.Opponent); err != nil {
		return 0, err
	}

	return that.playLocked(ctx)
}

// ThirdMove - the agent's random opening at (board, first) was answered at (first, second).
func (that *GameManager) ThirdMove(ctx context.Context, board, first, second int) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.ensureLocked()

	// both moves must be legal before either is committed
	trial := that.controller.Snapshot()
	if err := trial.Place(board, first, entity.Agent); err != nil {
		return 0, fmt.Errorf("failed place %s at board %d cell %d: %w", entity.Agent, board, first, err)
	}

	if err := trial.Place(first, second, entity.Opponent); err != nil {
		return 0, fmt.Errorf("failed place %s at board %d cell %d: %w", entity.Opponent, first, second, err)
	}

	if err := that.placeLocked(board, first, entity.Agent); err != nil {
		return 0, err
	}

	if err := that.placeLocked(first, second, entity.Opponent); err != nil {
		return 0, err
	}

	return that.playLocked(ctx)
}

// NextMove - the opponent played cell on the active board; the agent answers.
func (that *GameManager) NextMove(ctx context.Context, cell int) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.placeActiveLocked(cell); err != nil {
		return 0, err
	}

	return that.playLocked(ctx)
}

// LastMove - the opponent's final move. No answer is expected.
func (that *GameManager) LastMove(_ context.Context, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.placeActiveLocked(cell)
}

// Finish - ends the game with result and archives it.
func (that *GameManager) Finish(ctx context.Context, result string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.record == nil {
		return apperror.ErrGameNotFound
	}

	if that.record.IsFinished() {
		return apperror.ErrGameEnded
	}

	that.controller.End()
	that.record.Finish(result, that.now())

	log := that.logger.With().Str("game_id", that.record.ID).Logger()
	log.Info().Str("result", result).Int("moves", len(that.record.Moves)).Msg("game finished")

	if err := that.gameRepo.CreateOrUpdate(ctx, that.record); err != nil {
		log.Error().Err(err).Msg("failed to archive game")
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

// Snapshot - the current game, or false when none was started.
func (that *GameManager) Snapshot() (Snapshot, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.controller == nil {
		return Snapshot{}, false
	}

	return Snapshot{
		GameID: that.record.ID,
		Side:   that.record.Side,
		Status: that.controller.Status().String(),
		Board:  that.controller.Snapshot(),
	}, true
}

// GetGame - the record of the current game or an archived one.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.GameRecord, error) {
	that.mu.RLock()
	if that.record != nil && that.record.ID == id {
		record := *that.record
		record.Moves = append([]entity.Move(nil), that.record.Moves...)
		that.mu.RUnlock()

		return &record, nil
	}
	that.mu.RUnlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// DeleteGame - removes an archived game. The game in progress cannot be deleted.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.RLock()
	current := that.record != nil && that.record.ID == id && that.record.IsOngoing()
	that.mu.RUnlock()

	if current {
		return ErrGameInProgress
	}

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete game by id: %w", err)
	}

	that.logger.Info().Str("game_id", id).Msg("archived game deleted")

	return nil
}

func (that *GameManager) placeActiveLocked(cell int) error {
	if that.controller == nil {
		return apperror.ErrNoActiveBoard
	}

	return that.placeLocked(that.controller.Active(), cell, entity.Opponent)
}

func (that *GameManager) placeLocked(board, cell int, mark entity.Cell) error {
	if err := that.controller.Place(board, cell, mark); err != nil {
		return fmt.Errorf("failed place %s at board %d cell %d: %w", mark, board, cell, err)
	}

	that.record.AddMove(entity.Move{Board: board, Cell: cell, Mark: mark})

	return nil
}

func (that *GameManager) playLocked(ctx context.Context) (int, error) {
	board := that.controller.Active()
	started := that.now()

	result, err := that.controller.Play(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed play: %w", err)
	}

	that.record.AddMove(entity.Move{Board: board, Cell: result.Cell, Mark: entity.Agent})

	that.logger.Info().
		Str("game_id", that.record.ID).
		Int("board", board).
		Int("cell", result.Cell).
		Int("score", result.Score).
		Int64("nodes", result.Nodes).
		Bool("cutoff", result.Cutoff).
		Dur("elapsed", that.now().Sub(started)).
		Msg("agent moved")

	return result.Cell, nil
}

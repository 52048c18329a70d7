package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidIndex  = fmt.Errorf("%w: index out of range", ErrIllegalMove)
	ErrCellOccupied  = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrInvalidMark   = fmt.Errorf("%w: mark must be agent or opponent", ErrIllegalMove)
	ErrNoLegalMove   = errors.New("no legal move on the active board")
	ErrNoActiveBoard = errors.New("active board is not set")
	ErrGameEnded     = errors.New("game is already finished")
	ErrGameNotFound  = errors.New("game not found")

	ErrUnknownCommand   = errors.New("unknown referee command")
	ErrMalformedCommand = errors.New("malformed referee command")
)

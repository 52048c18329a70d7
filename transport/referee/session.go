package referee

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
)

const dialTimeout = 5 * time.Second

var errSessionEnd = errors.New("session end")

type gameManager interface {
	NewGame(ctx context.Context) string
	SetSide(side string) error
	SecondMove(ctx context.Context, board, cell int) (int, error)
	ThirdMove(ctx context.Context, board, first, second int) (int, error)
	NextMove(ctx context.Context, cell int) (int, error)
	LastMove(ctx context.Context, cell int) error
	Finish(ctx context.Context, result string) error
}

type handlerFunc func(ctx context.Context, command *Command, writer *bufio.Writer) error

// Session - plays games for one referee connection.
type Session struct {
	logger  zerolog.Logger
	manager gameManager

	handlers map[string]handlerFunc
}

func NewSession(logger zerolog.Logger, manager gameManager) *Session {
	session := &Session{
		logger:  logger.With().Str("component", "referee").Logger(),
		manager: manager,

		handlers: make(map[string]handlerFunc),
	}

	session.handlers[cmdInit] = session.handleInit
	session.handlers[cmdStart] = session.handleStart
	session.handlers[cmdSecondMove] = session.handleSecondMove
	session.handlers[cmdThirdMove] = session.handleThirdMove
	session.handlers[cmdNextMove] = session.handleNextMove
	session.handlers[cmdLastMove] = session.handleLastMove
	session.handlers[cmdWin] = session.handleResult
	session.handlers[cmdLoss] = session.handleResult
	session.handlers[cmdDraw] = session.handleResult
	session.handlers[cmdEnd] = session.handleEnd

	return session
}

// Run - dials the referee at addr and serves the connection until it ends.
func (that *Session) Run(ctx context.Context, addr string) error {
	dialer := net.Dialer{Timeout: dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to referee %s: %w", addr, err)
	}
	defer conn.Close()

	that.logger.Info().Str("addr", addr).Msg("connected to referee")

	return that.Serve(ctx, conn)
}

// Serve - reads commands line by line and writes the agent's moves back.
// Returns nil on end, EOF or context cancellation.
func (that *Session) Serve(ctx context.Context, conn io.ReadWriteCloser) error {
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	scanner := bufio.NewScanner(conn)
	writer := bufio.NewWriter(conn)

	for scanner.Scan() {
		line := scanner.Text()

		err := that.dispatch(ctx, line, writer)
		if errors.Is(err, errSessionEnd) {
			that.logger.Info().Msg("referee ended the session")
			return nil
		}

		if err != nil {
			that.logger.Error().Err(err).Str("line", line).Msg("error processing command")
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read from referee: %w", err)
	}

	that.logger.Info().Msg("referee closed the connection")

	return nil
}

func (that *Session) dispatch(ctx context.Context, line string, writer *bufio.Writer) error {
	command, err := ParseCommand(line)
	if err != nil {
		return err
	}

	handler, ok := that.handlers[command.Name]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, command.Name)
	}

	that.logger.Debug().Str("command", command.String()).Msg("received")

	return handler(ctx, command, writer)
}

func (that *Session) handleInit(ctx context.Context, _ *Command, _ *bufio.Writer) error {
	that.manager.NewGame(ctx)
	return nil
}

func (that *Session) handleStart(_ context.Context, command *Command, _ *bufio.Writer) error {
	if len(command.Raw) != 1 {
		return fmt.Errorf("%w: start expects a side", apperror.ErrMalformedCommand)
	}

	if err := that.manager.SetSide(command.Raw[0]); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedCommand, err)
	}

	return nil
}

func (that *Session) handleSecondMove(ctx context.Context, command *Command, writer *bufio.Writer) error {
	args, err := command.Ints(2)
	if err != nil {
		return err
	}

	cell, err := that.manager.SecondMove(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed second move: %w", err)
	}

	return that.sendMove(writer, cell)
}

func (that *Session) handleThirdMove(ctx context.Context, command *Command, writer *bufio.Writer) error {
	args, err := command.Ints(3)
	if err != nil {
		return err
	}

	cell, err := that.manager.ThirdMove(ctx, args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed third move: %w", err)
	}

	return that.sendMove(writer, cell)
}

func (that *Session) handleNextMove(ctx context.Context, command *Command, writer *bufio.Writer) error {
	args, err := command.Ints(1)
	if err != nil {
		return err
	}

	cell, err := that.manager.NextMove(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed next move: %w", err)
	}

	return that.sendMove(writer, cell)
}

func (that *Session) handleLastMove(ctx context.Context, command *Command, _ *bufio.Writer) error {
	args, err := command.Ints(1)
	if err != nil {
		return err
	}

	if err = that.manager.LastMove(ctx, args[0]); err != nil {
		return fmt.Errorf("failed last move: %w", err)
	}

	return nil
}

// handleResult - win, loss and draw share the handler; the command name is the result.
func (that *Session) handleResult(ctx context.Context, command *Command, _ *bufio.Writer) error {
	err := that.manager.Finish(ctx, command.Name)
	if errors.Is(err, apperror.ErrGameEnded) || errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Warn().Err(err).Str("result", command.Name).Msg("result without a game in progress")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed finish game: %w", err)
	}

	return nil
}

func (that *Session) handleEnd(context.Context, *Command, *bufio.Writer) error {
	return errSessionEnd
}

func (that *Session) sendMove(writer *bufio.Writer, cell int) error {
	if _, err := writer.WriteString(strconv.Itoa(cell) + "\n"); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

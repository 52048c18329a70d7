package referee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
)

const (
	cmdInit       = "init"
	cmdStart      = "start"
	cmdSecondMove = "second_move"
	cmdThirdMove  = "third_move"
	cmdNextMove   = "next_move"
	cmdLastMove   = "last_move"
	cmdWin        = "win"
	cmdLoss       = "loss"
	cmdDraw       = "draw"
	cmdEnd        = "end"
)

// Command - one referee line, e.g. third_move(5,1,9).
type Command struct {
	Name string
	Raw  []string
}

// ParseCommand - splits a line into the command name and its raw arguments.
func ParseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", apperror.ErrMalformedCommand)
	}

	open := strings.IndexByte(line, '(')
	if open < 0 {
		return &Command{Name: line}, nil
	}

	if !strings.HasSuffix(line, ")") {
		return nil, fmt.Errorf("%w: %q has no closing parenthesis", apperror.ErrMalformedCommand, line)
	}

	command := &Command{Name: strings.TrimSpace(line[:open])}
	if command.Name == "" {
		return nil, fmt.Errorf("%w: %q has no name", apperror.ErrMalformedCommand, line)
	}

	body := strings.TrimSpace(line[open+1 : len(line)-1])
	if body == "" {
		return command, nil
	}

	for _, arg := range strings.Split(body, ",") {
		command.Raw = append(command.Raw, strings.TrimSpace(arg))
	}

	return command, nil
}

// Ints - the arguments as exactly n integers.
func (that *Command) Ints(n int) ([]int, error) {
	if len(that.Raw) != n {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", apperror.ErrMalformedCommand, that.Name, n, len(that.Raw))
	}

	args := make([]int, n)
	for i, raw := range that.Raw {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s argument %q: %w", apperror.ErrMalformedCommand, that.Name, raw, err)
		}

		args[i] = value
	}

	return args, nil
}

func (that *Command) String() string {
	if len(that.Raw) == 0 {
		return that.Name
	}

	return that.Name + "(" + strings.Join(that.Raw, ",") + ")"
}

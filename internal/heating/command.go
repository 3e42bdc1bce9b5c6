package heating

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hheat/hheat/internal/hive"
)

// ErrInvalidArgument is returned for an argument that is neither a mode
// keyword nor a usable temperature.
var ErrInvalidArgument = errors.New("invalid argument")

// Action is what a Command does.
type Action int

const (
	ActionStatus Action = iota
	ActionSetMode
	ActionSetTarget
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionStatus:
		return "status"
	case ActionSetMode:
		return "set-mode"
	case ActionSetTarget:
		return "set-target"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Command is a parsed command line.
type Command struct {
	Action Action
	Mode   hive.Mode // ActionSetMode only
	Target float64   // ActionSetTarget only
}

// modeKeywords maps the accepted keywords to API modes. Matching is case-sensitive.
var modeKeywords = map[string]hive.Mode{
	"off":      hive.ModeOff,
	"manual":   hive.ModeManual,
	"schedule": hive.ModeSchedule,
}

// ParseCommand maps the arguments after the program name to a Command.
func ParseCommand(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Command{Action: ActionStatus}, nil
	case 1:
	default:
		return Command{}, fmt.Errorf("%w: expected at most one argument, got %d", ErrInvalidArgument, len(args))
	}

	arg := args[0]
	if mode, ok := modeKeywords[arg]; ok {
		return Command{Action: ActionSetMode, Mode: mode}, nil
	}

	target, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q is not off, manual, schedule or a temperature", ErrInvalidArgument, arg)
	}
	if err := ValidateTarget(target); err != nil {
		return Command{}, err
	}

	return Command{Action: ActionSetTarget, Target: target}, nil
}

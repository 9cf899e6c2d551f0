package life

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand reports a Command with an unrecognised kind.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind enumerates the commands a shell can send.
type CommandKind uint8

const (
	CmdToggleCell CommandKind = iota + 1
	CmdClearGrid
	CmdToggleRun
	CmdApplyPattern
)

func (k CommandKind) String() string {
	switch k {
	case CmdToggleCell:
		return "toggle-cell"
	case CmdClearGrid:
		return "clear"
	case CmdToggleRun:
		return "toggle-run"
	case CmdApplyPattern:
		return "apply-pattern"
	}
	return "unknown"
}

// Command is a discrete user action. X and Y are used by CmdToggleCell,
// Pattern by CmdApplyPattern.
type Command struct {
	Kind    CommandKind
	X, Y    int
	Pattern string
}

// ToggleCell builds a CmdToggleCell command.
func ToggleCell(x, y int) Command { return Command{Kind: CmdToggleCell, X: x, Y: y} }

// ClearGrid builds a CmdClearGrid command.
func ClearGrid() Command { return Command{Kind: CmdClearGrid} }

// ToggleRun builds a CmdToggleRun command.
func ToggleRun() Command { return Command{Kind: CmdToggleRun} }

// ApplyPattern builds a CmdApplyPattern command.
func ApplyPattern(name string) Command { return Command{Kind: CmdApplyPattern, Pattern: name} }

// Dispatch applies cmd to the simulation.
func (l *Life) Dispatch(cmd Command) error {
	switch cmd.Kind {
	case CmdToggleCell:
		return l.ToggleCell(cmd.X, cmd.Y)
	case CmdClearGrid:
		l.Clear()
		return nil
	case CmdToggleRun:
		l.ToggleRun()
		return nil
	case CmdApplyPattern:
		return l.ApplyPattern(cmd.Pattern)
	}
	return fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Kind)
}

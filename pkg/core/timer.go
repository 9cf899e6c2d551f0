package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativeDelta reports a tick with a negative time delta.
var ErrNegativeDelta = errors.New("negative time delta")

// RunState is the stepping state of a FixedStep clock.
type RunState uint8

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Overflow selects what happens to accumulated time once a step fires.
// Every mode steps at most once per Advance call.
type Overflow uint8

const (
	// OverflowDiscard resets the accumulator to zero.
	OverflowDiscard Overflow = iota
	// OverflowCarry subtracts one interval and keeps the rest, so a long
	// tick leaves enough time behind to fire again on following ticks.
	OverflowCarry
	// OverflowWrap keeps the accumulator modulo the interval.
	OverflowWrap
)

func (o Overflow) String() string {
	switch o {
	case OverflowCarry:
		return "carry"
	case OverflowWrap:
		return "wrap"
	default:
		return "discard"
	}
}

// ParseOverflow maps a name from String back to its Overflow.
func ParseOverflow(name string) (Overflow, error) {
	switch name {
	case "discard", "":
		return OverflowDiscard, nil
	case "carry":
		return OverflowCarry, nil
	case "wrap":
		return OverflowWrap, nil
	}
	return OverflowDiscard, fmt.Errorf("unknown overflow mode %q", name)
}

// FixedStep decides when a simulation advances, one step per elapsed
// interval, driven by externally supplied time deltas.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	state       RunState
	overflow    Overflow
}

// NewFixedStep constructs a stopped clock firing once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step interval. Non-positive values fall back to 200ms.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetOverflow changes how surplus time is handled after a step.
func (f *FixedStep) SetOverflow(o Overflow) { f.overflow = o }

// Overflow returns the active overflow mode.
func (f *FixedStep) Overflow() Overflow { return f.overflow }

// State returns whether the clock is running.
func (f *FixedStep) State() RunState { return f.state }

// Accumulated returns the time gathered towards the next step.
func (f *FixedStep) Accumulated() time.Duration { return f.accumulator }

// Toggle switches between Stopped and Running and returns the new state.
// The accumulator is kept as is.
func (f *FixedStep) Toggle() RunState {
	if f.state == Running {
		f.state = Stopped
	} else {
		f.state = Running
	}
	return f.state
}

// Advance feeds delta into the clock and reports whether one step is due.
// Stopped clocks ignore the delta.
func (f *FixedStep) Advance(delta time.Duration) (bool, error) {
	if delta < 0 {
		return false, fmt.Errorf("%w: %v", ErrNegativeDelta, delta)
	}
	if f.state != Running {
		return false, nil
	}
	f.accumulator += delta
	if f.accumulator < f.step {
		return false, nil
	}
	switch f.overflow {
	case OverflowCarry:
		f.accumulator -= f.step
	case OverflowWrap:
		f.accumulator %= f.step
	default:
		f.accumulator = 0
	}
	return true, nil
}

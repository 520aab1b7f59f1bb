package core

// Command is a discrete control intent, abstracted from physical key presses.
// Start/stop pairs model held keys: the platform emits Start on press and Stop
// on release (or on its best approximation of release).
type Command int

const (
	CommandNone           Command = iota
	CommandMoveLeftStart          // Left arrow, A pressed
	CommandMoveLeftStop           // Left arrow, A released
	CommandMoveRightStart         // Right arrow, D pressed
	CommandMoveRightStop          // Right arrow, D released
	CommandLaunch                 // Space - release the docked ball
	CommandQuit                   // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeftStart:
		return "MoveLeftStart"
	case CommandMoveLeftStop:
		return "MoveLeftStop"
	case CommandMoveRightStart:
		return "MoveRightStart"
	case CommandMoveRightStop:
		return "MoveRightStop"
	case CommandLaunch:
		return "Launch"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// AxisCount is the number of analog axes read per frame (two per track).
const AxisCount = 4

// AxisFrame holds one sample of the analog steering axes.
// Axes 0 and 1 belong to the left track, 2 and 3 to the right track.
type AxisFrame [AxisCount]float64

// InputFrame holds everything the platform collected for one simulation tick.
type InputFrame struct {
	// Commands in the order they arrived.
	Commands []Command

	// Axes is the analog sample for this tick, or nil without an analog source.
	Axes *AxisFrame
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends a command to the frame.
func (f *InputFrame) Push(c Command) {
	if c == CommandNone {
		return
	}
	f.Commands = append(f.Commands, c)
}

// SetAxes attaches an analog sample to the frame.
func (f *InputFrame) SetAxes(a AxisFrame) {
	f.Axes = &a
}

// Has returns true if the given command was queued this frame.
func (f InputFrame) Has(c Command) bool {
	for _, queued := range f.Commands {
		if queued == c {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Commands) == 0 && f.Axes == nil
}

// Clear resets the frame for the next tick, keeping its backing storage.
func (f *InputFrame) Clear() {
	f.Commands = f.Commands[:0]
	f.Axes = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Commands: append([]Command(nil), f.Commands...)}
	if f.Axes != nil {
		axes := *f.Axes
		clone.Axes = &axes
	}
	return clone
}

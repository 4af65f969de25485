package core

// RunState is the scheduler's run state.
type RunState int

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

// Mode selects how the grid is populated.
type Mode int

const (
	// ModeManual allows cell edits with the mouse.
	ModeManual Mode = iota
	// ModeRandom fills the grid randomly and blocks manual edits.
	ModeRandom
)

func (m Mode) String() string {
	if m == ModeRandom {
		return "random"
	}
	return "manual"
}

// Status is a point-in-time view of the simulation for display.
type Status struct {
	State      RunState
	Mode       Mode
	Generation int
	Population int
}

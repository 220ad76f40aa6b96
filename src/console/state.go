package console

import (
	"log/slog"
	"slices"

	"elevaid/src/config"
	"elevaid/src/types"

	"github.com/eiannone/keyboard"
	"github.com/tiendc/go-deepcopy"
)

type Action int

const (
	None Action = iota
	RunSimulation
	Reset
	Quit
)

type State struct {
	Selected  map[int]bool
	Priority  types.PriorityFloor
	Direction types.Direction
	Timing    types.TimingConfig
	// Set after 'o': the next floor key assigns the priority floor.
	AssigningPriority bool
	Message           string
}

func NewState(timing types.TimingConfig) State {
	return State{
		Selected:  make(map[int]bool),
		Direction: types.Down,
		Timing:    timing,
	}
}

// Floors returns the selected floors in ascending order.
func (s State) Floors() []int {
	floors := make([]int, 0, len(s.Selected))
	for floor, on := range s.Selected {
		if on {
			floors = append(floors, floor)
		}
	}
	slices.Sort(floors)
	return floors
}

// Apply returns the state after one key press. s is left untouched.
func Apply(s State, char rune, key keyboard.Key) (State, Action) {
	next := new(State)
	if err := deepcopy.Copy(next, &s); err != nil {
		slog.Error("Copying console state failed", "err", err)
		return s, None
	}
	if next.Selected == nil {
		next.Selected = make(map[int]bool)
	}
	next.Message = ""

	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return *next, Quit
	case keyboard.KeyEnter:
		next.AssigningPriority = false
		return *next, RunSimulation
	case keyboard.KeyArrowUp:
		next.Direction = types.Up
		return *next, None
	case keyboard.KeyArrowDown:
		next.Direction = types.Down
		return *next, None
	}

	if floor, ok := floorForKey(char); ok {
		if next.AssigningPriority {
			next.AssigningPriority = false
			togglePriority(next, floor)
		} else {
			toggleFloor(next, floor)
		}
		return *next, None
	}

	switch char {
	case 'o', 'O':
		next.AssigningPriority = !next.AssigningPriority
	case 'r', 'R':
		return NewState(next.Timing), Reset
	case 'q', 'Q':
		return *next, Quit
	case '+', '=':
		next.Timing.TravelPerFloor = min(next.Timing.TravelPerFloor+config.TravelTimeStep, config.MaxTravelTime)
	case '-', '_':
		next.Timing.TravelPerFloor = max(next.Timing.TravelPerFloor-config.TravelTimeStep, config.MinTravelTime)
	case ']':
		next.Timing.Stoppage = min(next.Timing.Stoppage+config.StoppageTimeStep, config.MaxStoppageTime)
	case '[':
		next.Timing.Stoppage = max(next.Timing.Stoppage-config.StoppageTimeStep, config.MinStoppageTime)
	}
	return *next, None
}

func toggleFloor(s *State, floor int) {
	if s.Selected[floor] {
		delete(s.Selected, floor)
		if s.Priority.Set && s.Priority.Floor == floor {
			s.Priority = types.NoPriority
		}
		return
	}
	s.Selected[floor] = true
}

// Only a selected floor can hold the priority passenger.
func togglePriority(s *State, floor int) {
	if !s.Selected[floor] {
		s.Message = "Select the floor first before assigning a priority passenger"
		return
	}
	if s.Priority.Set && s.Priority.Floor == floor {
		s.Priority = types.NoPriority
		return
	}
	s.Priority = types.Priority(floor)
}

// floorForKey maps 1-9 to floors 1-9 and a-e to floors 10-14.
func floorForKey(char rune) (int, bool) {
	switch {
	case char >= '1' && char <= '9':
		return int(char - '0'), true
	case char >= 'a' && char <= 'e':
		return int(char-'a') + 10, true
	case char >= 'A' && char <= 'E':
		return int(char-'A') + 10, true
	}
	return 0, false
}

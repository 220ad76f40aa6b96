package queue

import (
	"fmt"
	"slices"

	"elevaid/src/config"
	"elevaid/src/types"

	"github.com/tiendc/go-deepcopy"
)

// BuildTraditional orders the requested floors in the travel direction and
// appends the terminus: ground when going down, the top floor when going up.
func BuildTraditional(floors []int, dir types.Direction) (types.Queue, error) {
	if err := types.ValidateFloors(floors); err != nil {
		return nil, err
	}
	if err := dir.Validate(); err != nil {
		return nil, err
	}

	var sorted []int
	if len(floors) > 0 {
		if err := deepcopy.Copy(&sorted, floors); err != nil {
			return nil, fmt.Errorf("copying floors: %w", err)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	switch dir {
	case types.Down:
		slices.Reverse(sorted)
		// Ground is always the terminus, even if it was requested
		sorted = append(sorted, config.GroundFloor)
	case types.Up:
		if !slices.Contains(sorted, config.MaxFloor) {
			sorted = append(sorted, config.MaxFloor)
		}
	}
	return types.Queue(sorted), nil
}

// BuildPriority sends the elevator straight to the priority floor and back to
// ground. Without a priority floor it is the traditional queue.
func BuildPriority(floors []int, priority types.PriorityFloor, dir types.Direction) (types.Queue, error) {
	if !priority.Set {
		return BuildTraditional(floors, dir)
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}
	if err := types.ValidateFloors(floors); err != nil {
		return nil, err
	}
	return types.Queue{priority.Floor, config.GroundFloor}, nil
}

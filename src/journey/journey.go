package journey

import (
	"fmt"
	"slices"
	"time"

	"elevaid/src/config"
	"elevaid/src/queue"
	"elevaid/src/types"
)

// Traditional times the priority passenger when the elevator serves the
// requested floors in direction order.
//   - waiting time is accumulated stop by stop from ground, up to and including
//     the priority floor
//   - if the priority floor is not in the queue, the whole queue is accumulated
//   - travel time is the direct trip from the priority floor to ground
func Traditional(
	floors []int,
	priority types.PriorityFloor,
	timing types.TimingConfig,
	dir types.Direction,
) (types.JourneyResult, error) {
	if err := validate(priority, timing); err != nil {
		return types.JourneyResult{}, err
	}
	q, err := queue.BuildTraditional(floors, dir)
	if err != nil {
		return types.JourneyResult{}, err
	}

	var waiting time.Duration
	prev := config.GroundFloor
	for _, stop := range q {
		waiting += legDuration(prev, stop, timing) + timing.Stoppage
		prev = stop
		if stop == priority.Floor {
			break
		}
	}
	return result(waiting, legDuration(priority.Floor, config.GroundFloor, timing)), nil
}

// ElevAid times the priority passenger when the elevator goes straight to them.
func ElevAid(priority types.PriorityFloor, timing types.TimingConfig) (types.JourneyResult, error) {
	if err := validate(priority, timing); err != nil {
		return types.JourneyResult{}, err
	}
	trip := legDuration(config.GroundFloor, priority.Floor, timing)
	return result(trip+timing.Stoppage, trip), nil
}

// Compare returns how much sooner the priority passenger reaches ground with
// ElevAid. Negative when the traditional queue is faster.
func Compare(traditional, elevaid types.JourneyResult) time.Duration {
	return traditional.TotalTime - elevaid.TotalTime
}

// PriorityReached reports whether walking q stops at the priority floor.
func PriorityReached(q types.Queue, priority types.PriorityFloor) bool {
	return priority.Set && slices.Contains(q, priority.Floor)
}

func validate(priority types.PriorityFloor, timing types.TimingConfig) error {
	if !priority.Set {
		return fmt.Errorf("%w: no priority floor", types.ErrInvalidInput)
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	return timing.Validate()
}

func result(waiting, travel time.Duration) types.JourneyResult {
	return types.JourneyResult{
		WaitingTime: waiting,
		TravelTime:  travel,
		TotalTime:   waiting + travel,
	}
}

func legDuration(from, to int, timing types.TimingConfig) time.Duration {
	return time.Duration(abs(to-from)) * timing.TravelPerFloor
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

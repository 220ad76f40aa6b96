package journey

import (
	"time"

	"elevaid/src/config"
	"elevaid/src/types"
)

// Timeline lays out the stops of q in time, starting from ground at t=0.
// Stops on the priority floor are flagged.
func Timeline(q types.Queue, priority types.PriorityFloor, timing types.TimingConfig) ([]types.Stop, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	if err := types.ValidateFloors(q); err != nil {
		return nil, err
	}

	stops := make([]types.Stop, 0, len(q))
	prev := config.GroundFloor
	var clock time.Duration
	for _, floor := range q {
		arrive := clock + legDuration(prev, floor, timing)
		clock = arrive + timing.Stoppage
		stops = append(stops, types.Stop{
			Floor:    floor,
			Arrive:   arrive,
			Depart:   clock,
			Priority: priority.Set && floor == priority.Floor,
		})
		prev = floor
	}
	return stops, nil
}

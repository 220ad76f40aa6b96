package simulation

import (
	"log/slog"
	"time"

	"elevaid/src/journey"
	"elevaid/src/queue"
	"elevaid/src/types"
)

type Request struct {
	Floors    []int
	Priority  types.PriorityFloor
	Direction types.Direction
	Timing    types.TimingConfig
}

// Report holds both systems side by side. Journey fields are only set when
// the request carries a priority floor.
type Report struct {
	TraditionalQueue    types.Queue
	ElevAidQueue        types.Queue
	TraditionalTimeline []types.Stop
	ElevAidTimeline     []types.Stop

	HasJourneys     bool
	Traditional     types.JourneyResult
	ElevAid         types.JourneyResult
	TimeSaved       time.Duration
	PriorityReached bool
}

// Queues builds both stop sequences for req.
func Queues(req Request) (traditional, elevaid types.Queue, err error) {
	traditional, err = queue.BuildTraditional(req.Floors, req.Direction)
	if err != nil {
		return nil, nil, err
	}
	elevaid, err = queue.BuildPriority(req.Floors, req.Priority, req.Direction)
	if err != nil {
		return nil, nil, err
	}
	return traditional, elevaid, nil
}

// Journeys times the priority passenger on both systems.
func Journeys(req Request) (traditional, elevaid types.JourneyResult, err error) {
	traditional, err = journey.Traditional(req.Floors, req.Priority, req.Timing, req.Direction)
	if err != nil {
		return traditional, elevaid, err
	}
	elevaid, err = journey.ElevAid(req.Priority, req.Timing)
	return traditional, elevaid, err
}

// Run builds the queues and timelines for req and, when a priority floor is
// set, compares the priority passenger's journey on both systems.
func Run(req Request) (Report, error) {
	var report Report
	var err error

	report.TraditionalQueue, report.ElevAidQueue, err = Queues(req)
	if err != nil {
		return Report{}, err
	}
	if err := req.Timing.Validate(); err != nil {
		return Report{}, err
	}
	report.TraditionalTimeline, err = journey.Timeline(report.TraditionalQueue, req.Priority, req.Timing)
	if err != nil {
		return Report{}, err
	}
	report.ElevAidTimeline, err = journey.Timeline(report.ElevAidQueue, req.Priority, req.Timing)
	if err != nil {
		return Report{}, err
	}

	if !req.Priority.Set {
		return report, nil
	}

	report.Traditional, report.ElevAid, err = Journeys(req)
	if err != nil {
		return Report{}, err
	}
	report.HasJourneys = true
	report.TimeSaved = journey.Compare(report.Traditional, report.ElevAid)
	report.PriorityReached = journey.PriorityReached(report.TraditionalQueue, req.Priority)
	if !report.PriorityReached {
		slog.Warn("Priority floor not in traditional queue, waiting time covers the whole queue",
			"priorityFloor", req.Priority.Floor, "queue", report.TraditionalQueue)
	}

	slog.Debug("Simulation done",
		"traditionalQueue", report.TraditionalQueue,
		"elevaidQueue", report.ElevAidQueue,
		"timeSaved", report.TimeSaved)
	return report, nil
}

package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput is wrapped by every validation failure in the core.
var ErrInvalidInput = errors.New("invalid input")

type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "undefined"
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Down, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
}

// PriorityFloor is the floor where a priority passenger waits, if any.
type PriorityFloor struct {
	Floor int
	Set   bool
}

var NoPriority PriorityFloor

func Priority(floor int) PriorityFloor {
	return PriorityFloor{Floor: floor, Set: true}
}

// Queue holds the floors an elevator visits, first element first.
type Queue []int

type TimingConfig struct {
	TravelPerFloor time.Duration
	Stoppage       time.Duration
}

type JourneyResult struct {
	WaitingTime time.Duration
	TravelTime  time.Duration
	TotalTime   time.Duration
}

// Stop is one visit of a queue, with offsets measured from departure at the ground floor.
type Stop struct {
	Floor    int
	Arrive   time.Duration
	Depart   time.Duration
	Priority bool
}

type Detection struct {
	Detected        bool
	Confidence      float64
	FrameCount      int
	DetectionFrames int
}

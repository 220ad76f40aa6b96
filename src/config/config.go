package config

import "time"

const (
	GroundFloor = 0
	MaxFloor    = 14

	DefaultTravelTime   = 1 * time.Second
	DefaultStoppageTime = 2 * time.Second

	// Console slider bounds
	MinTravelTime    = 500 * time.Millisecond
	MaxTravelTime    = 3 * time.Second
	TravelTimeStep   = 100 * time.Millisecond
	MinStoppageTime  = 1 * time.Second
	MaxStoppageTime  = 5 * time.Second
	StoppageTimeStep = 200 * time.Millisecond

	DefaultAddr                = ":5000"
	DefaultMaxUploadBytes      = 100 << 20
	DefaultConfidenceThreshold = 0.3
	DefaultDetectTimeout       = 30 * time.Second
	DefaultPlaybackScale       = 0.25
)

var AllowedVideoExtensions = []string{"mp4", "avi", "mov", "wmv", "flv", "webm"}

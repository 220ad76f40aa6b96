package journey

import (
	"errors"
	"testing"
	"time"

	"elevaid/src/types"
)

var demoTiming = types.TimingConfig{
	TravelPerFloor: 1000 * time.Millisecond,
	Stoppage:       2000 * time.Millisecond,
}

func TestElevAid(t *testing.T) {
	got, err := ElevAid(types.Priority(5), demoTiming)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := types.JourneyResult{
		WaitingTime: 7 * time.Second,
		TravelTime:  5 * time.Second,
		TotalTime:   12 * time.Second,
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestTraditional(t *testing.T) {
	got, err := Traditional([]int{5, 10}, types.Priority(5), demoTiming, types.Down)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 10: 10*1s+2s = 12s, 5: 5*1s+2s = 7s
	want := types.JourneyResult{
		WaitingTime: 19 * time.Second,
		TravelTime:  5 * time.Second,
		TotalTime:   24 * time.Second,
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestTraditionalPriorityFirstStop(t *testing.T) {
	// Going up from ground the priority floor is the first stop, so both systems tie.
	trad, err := Traditional([]int{3, 9}, types.Priority(3), demoTiming, types.Up)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	elev, _ := ElevAid(types.Priority(3), demoTiming)
	if saved := Compare(trad, elev); saved != 0 {
		t.Errorf("Expected no time saved, got %v", saved)
	}
}

func TestTraditionalPriorityNotInQueue(t *testing.T) {
	// Queue [10 5 0] never visits floor 7, so the whole queue is summed:
	// 12s + 7s + 7s = 26s
	got, err := Traditional([]int{5, 10}, types.Priority(7), demoTiming, types.Down)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.WaitingTime != 26*time.Second {
		t.Errorf("Expected waiting time 26s, got %v", got.WaitingTime)
	}
	if got.TravelTime != 7*time.Second {
		t.Errorf("Expected travel time 7s, got %v", got.TravelTime)
	}
}

func TestTraditionalGroundPriority(t *testing.T) {
	// Priority at ground: the first ground stop ends the walk.
	got, err := Traditional([]int{4}, types.Priority(0), demoTiming, types.Down)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 4: 4s+2s, 0: 4s+2s
	if got.WaitingTime != 12*time.Second || got.TravelTime != 0 {
		t.Errorf("Expected 12s waiting and no travel, got %+v", got)
	}
}

func TestCompare(t *testing.T) {
	trad, _ := Traditional([]int{5, 10}, types.Priority(5), demoTiming, types.Down)
	elev, _ := ElevAid(types.Priority(5), demoTiming)
	if saved := Compare(trad, elev); saved != 12*time.Second {
		t.Errorf("Expected 12s saved, got %v", saved)
	}

	negative := Compare(types.JourneyResult{TotalTime: time.Second}, types.JourneyResult{TotalTime: 3 * time.Second})
	if negative != -2*time.Second {
		t.Errorf("Expected -2s, got %v", negative)
	}
}

func TestJourneysRequirePriority(t *testing.T) {
	if _, err := Traditional([]int{5}, types.NoPriority, demoTiming, types.Down); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if _, err := ElevAid(types.NoPriority, demoTiming); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestJourneysRejectInvalidInput(t *testing.T) {
	negative := types.TimingConfig{TravelPerFloor: -time.Second, Stoppage: time.Second}
	if _, err := ElevAid(types.Priority(2), negative); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative timing, got %v", err)
	}
	if _, err := Traditional([]int{2}, types.Priority(2), types.TimingConfig{Stoppage: -1}, types.Up); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative stoppage, got %v", err)
	}
	if _, err := ElevAid(types.Priority(15), demoTiming); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for floor 15, got %v", err)
	}
	if _, err := Traditional([]int{99}, types.Priority(2), demoTiming, types.Up); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for floor 99, got %v", err)
	}
}

func TestJourneysAreIdempotent(t *testing.T) {
	a, _ := Traditional([]int{3, 8, 12}, types.Priority(8), demoTiming, types.Up)
	b, _ := Traditional([]int{3, 8, 12}, types.Priority(8), demoTiming, types.Up)
	if a != b {
		t.Errorf("Expected identical results, got %+v and %+v", a, b)
	}
}

func TestPriorityReached(t *testing.T) {
	q := types.Queue{10, 5, 0}
	if !PriorityReached(q, types.Priority(5)) {
		t.Errorf("Expected floor 5 to be reached in %v", q)
	}
	if PriorityReached(q, types.Priority(7)) {
		t.Errorf("Expected floor 7 not to be reached in %v", q)
	}
	if PriorityReached(q, types.NoPriority) {
		t.Errorf("Expected no priority to never be reached")
	}
}

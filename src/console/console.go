package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elevaid/src/detect"
	"elevaid/src/simulation"
	"elevaid/src/timer"
	"elevaid/src/types"
	"elevaid/src/utils"

	"github.com/eiannone/keyboard"
)

type Options struct {
	Out      io.Writer
	Timing   types.TimingConfig
	Detector detect.Detector
	// VideoPath, if set, is checked by Detector before every run and the
	// priority floor only counts when a wheelchair is detected.
	VideoPath string
	Threshold float64
	// PlaybackScale scales simulated time when replaying stops. Zero prints at once.
	PlaybackScale float64
}

const help = `Keys: 1-9 a-e toggle floors 1-14 | o + floor: priority passenger | ↑/↓ direction
      +/- travel time | [/] stoppage time | Enter run | r reset | q/Esc quit`

// Run reads key presses until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer func() {
		_ = keyboard.Close()
	}()

	state := NewState(opts.Timing)
	fmt.Fprintln(opts.Out, help)
	Render(opts.Out, state)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keys:
			if ev.Err != nil {
				return fmt.Errorf("reading key: %w", ev.Err)
			}
			var action Action
			state, action = Apply(state, ev.Rune, ev.Key)
			switch action {
			case Quit:
				return nil
			case RunSimulation:
				if err := Simulate(ctx, opts, state); err != nil && !errors.Is(err, context.Canceled) {
					fmt.Fprintf(opts.Out, "Simulation failed: %v\n", err)
				}
			case Reset:
				fmt.Fprintln(opts.Out, "Reset")
			}
			Render(opts.Out, state)
		}
	}
}

// Render prints the current selection on one line.
func Render(w io.Writer, s State) {
	labels := make([]string, 0, len(s.Selected))
	for _, floor := range s.Floors() {
		label := utils.FormatFloor(floor)
		if s.Priority.Set && s.Priority.Floor == floor {
			label += "*"
		}
		labels = append(labels, label)
	}
	calls := "none"
	if len(labels) > 0 {
		calls = strings.Join(labels, ", ")
	}
	fmt.Fprintf(w, "Calls: %s | Direction: %s | Travel: %s | Stoppage: %s",
		calls, s.Direction, utils.FormatDuration(s.Timing.TravelPerFloor), utils.FormatDuration(s.Timing.Stoppage))
	if s.AssigningPriority {
		fmt.Fprint(w, " | press a floor key for the priority passenger")
	}
	fmt.Fprintln(w)
	if s.Message != "" {
		fmt.Fprintln(w, s.Message)
	}
}

// Simulate runs s through both systems, verifying the priority passenger
// against the video first when one is configured.
func Simulate(ctx context.Context, opts Options, s State) error {
	priority := s.Priority
	if priority.Set && opts.VideoPath != "" && opts.Detector != nil {
		var err error
		priority, err = verifyPriority(ctx, opts, priority.Floor)
		if err != nil {
			slog.Error("Detection failed, running without priority passenger", "err", err)
			fmt.Fprintln(opts.Out, "Detection unavailable, running without priority passenger")
		}
	}

	report, err := simulation.Run(simulation.Request{
		Floors:    s.Floors(),
		Priority:  priority,
		Direction: s.Direction,
		Timing:    s.Timing,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "Traditional: %s\n", utils.FormatQueue(report.TraditionalQueue))
	fmt.Fprintf(opts.Out, "ElevAid:     %s\n", utils.FormatQueue(report.ElevAidQueue))
	if err := playback(ctx, opts, report); err != nil {
		return err
	}
	PrintJourneys(opts.Out, report)
	return nil
}

func verifyPriority(ctx context.Context, opts Options, floor int) (types.PriorityFloor, error) {
	f, err := os.Open(opts.VideoPath)
	if err != nil {
		return types.NoPriority, err
	}
	defer f.Close()

	det, err := opts.Detector.Detect(ctx, filepath.Base(opts.VideoPath), f)
	if err != nil {
		return types.NoPriority, err
	}
	fmt.Fprintf(opts.Out, "Detection: detected=%v confidence=%.1f%%\n", det.Detected, det.Confidence*100)
	return detect.PriorityFloor(det, floor, opts.Threshold), nil
}

type event struct {
	system string
	stop   types.Stop
}

// playback prints the stops of both systems in simulated time order.
func playback(ctx context.Context, opts Options, report simulation.Report) error {
	events := mergeTimelines(report.TraditionalTimeline, report.ElevAidTimeline)
	offsets := make([]time.Duration, len(events))
	for i, ev := range events {
		offsets[i] = ev.stop.Arrive
	}
	return timer.Replay(ctx, offsets, opts.PlaybackScale, func(i int) {
		ev := events[i]
		marker := ""
		if ev.stop.Priority {
			marker = " (priority passenger)"
		}
		fmt.Fprintf(opts.Out, "  %7s  %-11s arrives at floor %s%s\n",
			utils.FormatDuration(ev.stop.Arrive), ev.system, utils.FormatFloor(ev.stop.Floor), marker)
	})
}

func mergeTimelines(traditional, elevaid []types.Stop) []event {
	events := make([]event, 0, len(traditional)+len(elevaid))
	i, j := 0, 0
	for i < len(traditional) || j < len(elevaid) {
		if j >= len(elevaid) || (i < len(traditional) && traditional[i].Arrive <= elevaid[j].Arrive) {
			events = append(events, event{system: "Traditional", stop: traditional[i]})
			i++
		} else {
			events = append(events, event{system: "ElevAid", stop: elevaid[j]})
			j++
		}
	}
	return events
}

// PrintJourneys writes the priority passenger comparison, if there is one.
func PrintJourneys(w io.Writer, report simulation.Report) {
	if !report.HasJourneys {
		fmt.Fprintln(w, "No priority passenger assigned")
		return
	}
	rows := []struct {
		name string
		res  types.JourneyResult
	}{
		{"Traditional", report.Traditional},
		{"ElevAid", report.ElevAid},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-11s waiting %s | travel %s | total %s\n", row.name,
			utils.FormatDuration(row.res.WaitingTime),
			utils.FormatDuration(row.res.TravelTime),
			utils.FormatDuration(row.res.TotalTime))
	}
	fmt.Fprintf(w, "Time saved: %s\n", utils.FormatDuration(report.TimeSaved))
	if !report.PriorityReached {
		fmt.Fprintln(w, "Note: the traditional queue never stops at the priority floor, waiting time covers the full queue")
	}
}

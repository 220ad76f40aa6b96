package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevaid/src/config"
	"elevaid/src/console"
	"elevaid/src/detect"
	"elevaid/src/logging"
	"elevaid/src/server"
	"elevaid/src/types"
	"elevaid/src/utils"
)

func main() {
	mode := flag.String("mode", "serve", "serve, console or once")
	configPath := flag.String("config", "elevaid.yaml", "Path to the YAML config file")
	envPath := flag.String("env", ".env", "Path to an optional .env file")
	demoDetect := flag.Bool("demo-detect", false, "Report a wheelchair in every video instead of calling the detector")
	video := flag.String("video", "", "Video to verify the priority passenger against (console, once)")
	floors := flag.String("floors", "", "Requested floors, e.g. 5,10 (once)")
	oku := flag.Int("oku", -1, "Floor of the priority passenger, -1 for none (once)")
	dir := flag.String("dir", "down", "Direction of travel, up or down (once)")
	travel := flag.Duration("travel", 0, "Travel time per floor, overrides config when set")
	stoppage := flag.Duration("stoppage", 0, "Stoppage time per stop, overrides config when set")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logFile, err := logging.Init(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	timing, err := timingFromFlags(cfg.Timing, setFlags, *travel, *stoppage)
	if err != nil {
		slog.Error("Invalid timing flags", "err", err)
		logFile.Close()
		os.Exit(1)
	}

	var detector detect.Detector = detect.Unavailable{}
	switch {
	case *demoDetect:
		detector = detect.Static{Result: types.Detection{Detected: true, Confidence: 0.95}}
	case cfg.Detector.URL != "":
		detector = detect.NewRemote(cfg.Detector.URL, cfg.Detector.Timeout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consoleOpts := console.Options{
		Out:           os.Stdout,
		Timing:        timing,
		Detector:      detector,
		VideoPath:     *video,
		Threshold:     cfg.Detector.ConfidenceThreshold,
		PlaybackScale: cfg.Console.PlaybackScale,
	}

	switch *mode {
	case "serve":
		slog.Info("Starting ElevAid server", "addr", cfg.Server.Addr, "detector", fmt.Sprintf("%T", detector))
		err = server.New(cfg, detector).ListenAndServe(ctx)
	case "console":
		err = console.Run(ctx, consoleOpts)
	case "once":
		err = runOnce(ctx, consoleOpts, *floors, *oku, *dir)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		slog.Error("Exiting", "err", err)
		logFile.Close()
		os.Exit(1)
	}
}

// timingFromFlags starts from the configured timing and applies the flags the
// user set explicitly, so zero is a valid override.
func timingFromFlags(base config.TimingConfig, set map[string]bool, travel, stoppage time.Duration) (types.TimingConfig, error) {
	timing := types.TimingConfig{TravelPerFloor: base.TravelPerFloor, Stoppage: base.Stoppage}
	if set["travel"] {
		timing.TravelPerFloor = travel
	}
	if set["stoppage"] {
		timing.Stoppage = stoppage
	}
	return timing, timing.Validate()
}

func runOnce(ctx context.Context, opts console.Options, floorList string, oku int, dir string) error {
	floors, err := utils.ParseFloors(floorList)
	if err != nil {
		return err
	}
	direction, err := types.ParseDirection(dir)
	if err != nil {
		return err
	}

	state := console.NewState(opts.Timing)
	state.Direction = direction
	for _, floor := range floors {
		state.Selected[floor] = true
	}
	if oku >= 0 {
		if err := types.ValidateFloor(oku); err != nil {
			return err
		}
		state.Priority = types.Priority(oku)
	}
	opts.PlaybackScale = 0
	return console.Simulate(ctx, opts, state)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Timing   TimingConfig   `yaml:"timing"`
	Detector DetectorConfig `yaml:"detector"`
	Log      LogConfig      `yaml:"log"`
	Console  ConsoleConfig  `yaml:"console"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
}

type TimingConfig struct {
	TravelPerFloor time.Duration `yaml:"travelTimePerFloor"`
	Stoppage       time.Duration `yaml:"stoppageTime"`
}

type DetectorConfig struct {
	// URL of the inference service. Empty means no detector is available.
	URL                 string        `yaml:"url"`
	ConfidenceThreshold float64       `yaml:"confidenceThreshold"`
	Timeout             time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ConsoleConfig struct {
	PlaybackScale float64 `yaml:"playbackScale"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           DefaultAddr,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Timing: TimingConfig{
			TravelPerFloor: DefaultTravelTime,
			Stoppage:       DefaultStoppageTime,
		},
		Detector: DetectorConfig{
			ConfidenceThreshold: DefaultConfidenceThreshold,
			Timeout:             DefaultDetectTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
		Console: ConsoleConfig{
			PlaybackScale: DefaultPlaybackScale,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. A missing file at path or envPath is not an error.
func Load(path, envPath string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if envPath != "" {
		// Load does not override variables already set in the environment.
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("reading env file %s: %w", envPath, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ELEVAID_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ELEVAID_DETECTOR_URL"); v != "" {
		cfg.Detector.URL = v
	}
	if v := os.Getenv("ELEVAID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ELEVAID_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("ELEVAID_CONFIDENCE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ELEVAID_CONFIDENCE_THRESHOLD: %w", err)
		}
		cfg.Detector.ConfidenceThreshold = threshold
	}
	for name, target := range map[string]*time.Duration{
		"ELEVAID_TRAVEL_TIME":   &cfg.Timing.TravelPerFloor,
		"ELEVAID_STOPPAGE_TIME": &cfg.Timing.Stoppage,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*target = d
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Timing.TravelPerFloor < 0 || cfg.Timing.Stoppage < 0 {
		return fmt.Errorf("timing must be non-negative, got travel %v stoppage %v",
			cfg.Timing.TravelPerFloor, cfg.Timing.Stoppage)
	}
	if cfg.Detector.ConfidenceThreshold < 0 || cfg.Detector.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold must be within [0, 1], got %v", cfg.Detector.ConfidenceThreshold)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", cfg.Server.MaxUploadBytes)
	}
	return nil
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the default slog logger. Records are rendered on stdout by
// zerolog's console writer and, if file is set, appended to file as JSON.
func Init(level, file string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	var out io.Writer = console
	var closer io.Closer = nopCloser{}
	if file != "" {
		logFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = io.MultiWriter(console, logFile)
		closer = logFile
	}

	slog.SetDefault(slog.New(NewHandler(out, lvl)))
	return closer, nil
}

// NewHandler returns a JSON handler whose field names follow zerolog's, so
// the output can be fed to a zerolog.ConsoleWriter.
func NewHandler(out io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
				}
				a.Key = zerolog.TimestampFieldName
			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelName(l))
				}
				a.Key = zerolog.LevelFieldName
			case slog.MessageKey:
				a.Key = zerolog.MessageFieldName
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
				a.Key = zerolog.CallerFieldName
			}
			return a
		},
	})
}

// ParseLevel accepts zerolog level names.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	switch lvl {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return slog.LevelDebug, nil
	case zerolog.InfoLevel, zerolog.NoLevel:
		return slog.LevelInfo, nil
	case zerolog.WarnLevel:
		return slog.LevelWarn, nil
	case zerolog.Disabled:
		return slog.LevelError + 4, nil
	default:
		return slog.LevelError, nil
	}
}

func levelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return zerolog.LevelDebugValue
	case l < slog.LevelWarn:
		return zerolog.LevelInfoValue
	case l < slog.LevelError:
		return zerolog.LevelWarnValue
	default:
		return zerolog.LevelErrorValue
	}
}

package detect

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"elevaid/src/config"
	"elevaid/src/types"
)

// ErrUnavailable is returned when no detection could be made, for example
// because the inference service is down or not configured.
var ErrUnavailable = errors.New("detector unavailable")

// Detector looks for a wheelchair user in a video.
type Detector interface {
	Detect(ctx context.Context, name string, video io.Reader) (types.Detection, error)
}

// Static always returns the same detection. Used for demos without a model.
type Static struct {
	Result types.Detection
}

func (s Static) Detect(ctx context.Context, _ string, video io.Reader) (types.Detection, error) {
	if err := ctx.Err(); err != nil {
		return types.Detection{}, err
	}
	if _, err := io.Copy(io.Discard, video); err != nil {
		return types.Detection{}, err
	}
	return s.Result, nil
}

type Unavailable struct{}

func (Unavailable) Detect(context.Context, string, io.Reader) (types.Detection, error) {
	return types.Detection{}, ErrUnavailable
}

// AllowedVideo reports whether name has one of the accepted video extensions.
func AllowedVideo(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext != "" && slices.Contains(config.AllowedVideoExtensions, ext)
}

// PriorityFloor turns a detection into a priority floor at floor. Only a
// positive detection with nonzero confidence at or above threshold counts.
func PriorityFloor(det types.Detection, floor int, threshold float64) types.PriorityFloor {
	if !det.Detected || det.Confidence <= 0 || det.Confidence < threshold {
		return types.NoPriority
	}
	if types.ValidateFloor(floor) != nil {
		return types.NoPriority
	}
	return types.Priority(floor)
}

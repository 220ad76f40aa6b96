package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"elevaid/src/types"
)

// Remote forwards videos to an HTTP inference service.
type Remote struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

type remoteResponse struct {
	Detected        bool    `json:"detected"`
	Confidence      float64 `json:"confidence"`
	FrameCount      int     `json:"frameCount"`
	DetectionFrames int     `json:"detectionFrames"`
	Error           string  `json:"error"`
}

func NewRemote(url string, timeout time.Duration) *Remote {
	return &Remote{URL: url, Timeout: timeout, Client: http.DefaultClient}
}

func (r *Remote) Detect(ctx context.Context, name string, video io.Reader) (types.Detection, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, video)
	if err != nil {
		return types.Detection{}, fmt.Errorf("building detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Filename", name)

	resp, err := r.Client.Do(req)
	if err != nil {
		slog.Error("Detector request failed", "url", r.URL, "err", err)
		return types.Detection{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("Detector returned error status", "url", r.URL, "status", resp.StatusCode)
		return types.Detection{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Detection{}, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if body.Error != "" {
		return types.Detection{}, fmt.Errorf("%w: %s", ErrUnavailable, body.Error)
	}

	det := types.Detection{
		Detected:        body.Detected,
		Confidence:      body.Confidence,
		FrameCount:      body.FrameCount,
		DetectionFrames: body.DetectionFrames,
	}
	slog.Debug("Detection received", "file", name, "detected", det.Detected, "confidence", det.Confidence)
	return det, nil
}

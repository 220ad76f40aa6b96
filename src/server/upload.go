package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"elevaid/src/detect"
	"elevaid/src/types"
)

const maxMemory = 32 << 20

type uploadDetection struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Detected   bool    `json:"detected"`
}

type uploadDetails struct {
	FrameCount      int `json:"frame_count"`
	DetectionFrames int `json:"detection_frames"`
}

type uploadResponse struct {
	Success       bool             `json:"success"`
	Error         string           `json:"error,omitempty"`
	RequestID     string           `json:"requestId,omitempty"`
	Detection     *uploadDetection `json:"detection,omitempty"`
	Details       *uploadDetails   `json:"details,omitempty"`
	PriorityFloor *int             `json:"priorityFloor,omitempty"`
}

func uploadFailed(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, uploadResponse{Success: false, Error: msg})
}

// handleUpload runs detection on an uploaded video. When the form also
// carries okuFloor and the detection is positive, the response names the
// priority floor to use for the simulation.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadFailed(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			uploadFailed(w, http.StatusBadRequest, "Malformed upload")
			return
		}
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		uploadFailed(w, http.StatusBadRequest, "No video file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		uploadFailed(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !detect.AllowedVideo(header.Filename) {
		uploadFailed(w, http.StatusBadRequest, "Unsupported video format")
		return
	}

	floor, hasFloor := -1, false
	if v := r.FormValue("okuFloor"); v != "" {
		floor, err = strconv.Atoi(v)
		if err == nil {
			err = types.ValidateFloor(floor)
		}
		if err != nil {
			uploadFailed(w, http.StatusBadRequest, "Invalid okuFloor")
			return
		}
		hasFloor = true
	}

	id := requestID(r.Context())
	det, err := s.detector.Detect(r.Context(), header.Filename, file)
	if err != nil {
		// No detection means no priority floor, never a guessed one.
		slog.Error("Detection failed", "id", id, "file", header.Filename, "err", err)
		uploadFailed(w, http.StatusServiceUnavailable, "Detection unavailable")
		return
	}

	kind := "none"
	if det.Detected {
		kind = "wheelchair"
	}
	resp := uploadResponse{
		Success:   true,
		RequestID: id,
		Detection: &uploadDetection{Type: kind, Confidence: det.Confidence, Detected: det.Detected},
		Details:   &uploadDetails{FrameCount: det.FrameCount, DetectionFrames: det.DetectionFrames},
	}
	if hasFloor {
		if priority := detect.PriorityFloor(det, floor, s.cfg.Detector.ConfidenceThreshold); priority.Set {
			resp.PriorityFloor = &priority.Floor
		}
	}
	slog.Info("Video analysed",
		"id", id,
		"file", header.Filename,
		"detected", det.Detected,
		"confidence", det.Confidence,
		"priorityFloor", resp.PriorityFloor != nil)
	writeJSON(w, http.StatusOK, resp)
}

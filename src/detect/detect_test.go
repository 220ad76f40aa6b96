package detect

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"elevaid/src/types"
)

func TestAllowedVideo(t *testing.T) {
	tests := map[string]bool{
		"lobby.mp4":     true,
		"LOBBY.MOV":     true,
		"clip.webm":     true,
		"notes.txt":     false,
		"mp4":           false,
		"archive.mp4.x": false,
		"":              false,
	}
	for name, want := range tests {
		if got := AllowedVideo(name); got != want {
			t.Errorf("AllowedVideo(%q): expected %v, got %v", name, want, got)
		}
	}
}

func TestPriorityFloor(t *testing.T) {
	tests := []struct {
		name  string
		det   types.Detection
		floor int
		want  types.PriorityFloor
	}{
		{"confident detection", types.Detection{Detected: true, Confidence: 0.9}, 5, types.Priority(5)},
		{"at threshold", types.Detection{Detected: true, Confidence: 0.3}, 2, types.Priority(2)},
		{"below threshold", types.Detection{Detected: true, Confidence: 0.2}, 5, types.NoPriority},
		{"zero confidence", types.Detection{Detected: true}, 5, types.NoPriority},
		{"not detected", types.Detection{Confidence: 0.9}, 5, types.NoPriority},
		{"floor out of range", types.Detection{Detected: true, Confidence: 0.9}, 40, types.NoPriority},
	}
	for _, tc := range tests {
		if got := PriorityFloor(tc.det, tc.floor, 0.3); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestStatic(t *testing.T) {
	want := types.Detection{Detected: true, Confidence: 0.8, FrameCount: 10, DetectionFrames: 3}
	got, err := Static{Result: want}.Detect(context.Background(), "a.mp4", strings.NewReader("video"))
	if err != nil || got != want {
		t.Errorf("Expected %+v, got %+v (err %v)", want, got, err)
	}
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Detect(context.Background(), "a.mp4", strings.NewReader(""))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != "frames" {
			t.Errorf("Expected body %q, got %q", "frames", body)
		}
		if r.Header.Get("X-Filename") != "lobby.mp4" {
			t.Errorf("Expected filename header, got %q", r.Header.Get("X-Filename"))
		}
		w.Write([]byte(`{"detected":true,"confidence":0.75,"frameCount":120,"detectionFrames":14}`))
	}))
	defer srv.Close()

	det, err := NewRemote(srv.URL, time.Second).Detect(context.Background(), "lobby.mp4", strings.NewReader("frames"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := types.Detection{Detected: true, Confidence: 0.75, FrameCount: 120, DetectionFrames: 14}
	if det != want {
		t.Errorf("Expected %+v, got %+v", want, det)
	}
}

func TestRemoteFailures(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detected":`))
		},
		"error field": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detected":false,"error":"Could not open video file"}`))
		},
	}
	for name, handler := range handlers {
		srv := httptest.NewServer(handler)
		_, err := NewRemote(srv.URL, time.Second).Detect(context.Background(), "a.mp4", strings.NewReader("x"))
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("%s: expected ErrUnavailable, got %v", name, err)
		}
		srv.Close()
	}
}

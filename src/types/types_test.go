package types

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", Up, false},
		{"DOWN", Down, false},
		{" Up ", Up, false},
		{"sideways", Down, true},
		{"", Down, true},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseDirection(%q): expected ErrInvalidInput, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q): expected %v, got %v (err %v)", tc.in, tc.want, got, err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Down.String() != "down" {
		t.Errorf("Expected up/down, got %s/%s", Up, Down)
	}
	if Direction(7).String() != "undefined" {
		t.Errorf("Expected undefined, got %s", Direction(7))
	}
}

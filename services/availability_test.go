package services

import (
	"errors"
	"testing"

	"canteen-backend/apperr"
)

func TestWindowsOverlap(t *testing.T) {
	mins := func(h, m int) int { return h*60 + m }

	tests := []struct {
		name   string
		startA int
		startB int
		want   bool
	}{
		{"identical start", mins(12, 0), mins(12, 0), true},
		{"partial overlap", mins(12, 0), mins(13, 0), true},
		{"one minute before end", mins(12, 0), mins(13, 59), true},
		{"back to back", mins(12, 0), mins(14, 0), false},
		{"well apart", mins(8, 0), mins(18, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := windowsOverlap(tc.startA, tc.startB); got != tc.want {
				t.Errorf("windowsOverlap(%d, %d) = %v, want %v", tc.startA, tc.startB, got, tc.want)
			}
			// Overlap is symmetric.
			if got := windowsOverlap(tc.startB, tc.startA); got != tc.want {
				t.Errorf("windowsOverlap(%d, %d) = %v, want %v", tc.startB, tc.startA, got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("18:30")
	if err != nil {
		t.Fatalf("parseClock(18:30): %v", err)
	}
	if got != 18*60+30 {
		t.Errorf("parseClock(18:30) = %d, want %d", got, 18*60+30)
	}

	for _, bad := range []string{"", "25:00", "noon", "7pm"} {
		if _, err := parseClock(bad); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("parseClock(%q) = %v, want ErrInvalidInput", bad, err)
		}
	}
}

package tui

import (
	"strings"
	"testing"
)

func TestBigTimeShape(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int
		wantChars int // glyphs incl. colon
	}{
		{"start of a session", 1500, 5},
		{"zero", 0, 5},
		{"three-digit minutes", 6000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := BigTime(tt.seconds)
			lines := strings.Split(out, "\n")
			if len(lines) != 5 {
				t.Fatalf("line count = %d, want 5", len(lines))
			}

			// Each glyph is 6 cells plus one cell of spacing; every row
			// must be the same width or centering shears the display.
			want := tt.wantChars * 7
			for i, line := range lines {
				if got := len([]rune(line)); got != want {
					t.Errorf("line %d width = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestBigTimeDistinguishesTimes(t *testing.T) {
	if BigTime(1500) == BigTime(1499) {
		t.Error("25:00 and 24:59 rendered identically")
	}
}

func TestBigTimeClampsNegative(t *testing.T) {
	if BigTime(-10) != BigTime(0) {
		t.Error("negative seconds should render as 00:00")
	}
}

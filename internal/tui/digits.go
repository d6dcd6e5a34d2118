package tui

import (
	"strings"

	"github.com/RohitRai1141/pomodoro/internal/timer"
)

// asciiDigits is the 6x5 block font for the countdown, one glyph per
// digit plus the colon at index 10.
var asciiDigits = [11][5]string{
	{"██████", "█    █", "█    █", "█    █", "██████"}, // 0
	{"  ██  ", "  ██  ", "  ██  ", "  ██  ", "  ██  "}, // 1
	{"██████", "     █", "██████", "█     ", "██████"}, // 2
	{"██████", "     █", "██████", "     █", "██████"}, // 3
	{"█    █", "█    █", "██████", "     █", "     █"}, // 4
	{"██████", "█     ", "██████", "     █", "██████"}, // 5
	{"██████", "█     ", "██████", "█    █", "██████"}, // 6
	{"██████", "     █", "     █", "     █", "     █"}, // 7
	{"██████", "█    █", "██████", "█    █", "██████"}, // 8
	{"██████", "█    █", "██████", "     █", "██████"}, // 9
	{"      ", "  ██  ", "      ", "  ██  ", "      "}, // :
}

// BigTime renders a number of seconds as five rows of block-digit
// MM:SS. Past 99 minutes the minute field simply grows wider.
func BigTime(seconds int) string {
	var rows [5]strings.Builder
	for _, ch := range timer.FormatTime(seconds) {
		glyph := 10 // colon
		if ch >= '0' && ch <= '9' {
			glyph = int(ch - '0')
		}
		for i, line := range asciiDigits[glyph] {
			rows[i].WriteString(line)
			rows[i].WriteByte(' ')
		}
	}

	// Rows keep their trailing padding so every line has the same
	// width and block centering cannot shear the glyphs.
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

package report

import (
	"fmt"
	"math"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Level is a named complexity band. Color is an ANSI 256-color index.
type Level struct {
	Name  string
	Upper int
	Color string
}

// Levels are ordered by ascending upper bound (inclusive).
var Levels = []Level{
	{Name: "Very Easy", Upper: 20, Color: "189"},
	{Name: "Easy", Upper: 40, Color: "147"},
	{Name: "Moderate", Upper: 60, Color: "105"},
	{Name: "Complex", Upper: 80, Color: "63"},
	{Name: "Very Complex", Upper: 100, Color: "20"},
}

func (l Level) ansi() string {
	return "\x1b[38;5;" + l.Color + "m"
}

// LevelFor returns the band for a complexity percentage.
func LevelFor(pct int) Level {
	return levelFor(pct)
}

func levelFor(pct int) Level {
	for _, l := range Levels {
		if pct <= l.Upper {
			return l
		}
	}
	return Levels[len(Levels)-1]
}

// Legend lists the complexity bands.
func Legend(useColor bool) string {
	parts := make([]string, len(Levels))
	lower := 0
	for i, l := range Levels {
		label := fmt.Sprintf("%s %d-%d%%", l.Name, lower, l.Upper)
		if useColor {
			label = l.ansi() + "■" + colorReset + " " + label
		}
		parts[i] = label
		lower = l.Upper
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// Sparkline renders values on a fixed [lo,hi] scale, one character each.
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - lo) / (hi - lo)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

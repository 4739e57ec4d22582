package analysis

import (
	"fmt"
	"math"
)

// FormatMinutes renders a reading or speaking time estimate.
func FormatMinutes(minutes float64) string {
	if math.IsNaN(minutes) || minutes < 1.0/60.0 {
		return "< 1 second"
	}
	// Trim float noise so exact minute multiples do not round up a second.
	total := int(math.Ceil(minutes*60 - 1e-9))
	if total < 60 {
		return plural(total, "second", "seconds")
	}
	mins := total / 60
	secs := total % 60
	out := plural(mins, "min", "mins")
	if secs > 0 {
		out += " " + plural(secs, "sec", "secs")
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

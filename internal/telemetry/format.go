package telemetry

import (
	"fmt"
	"math"
)

// FormatDelta renders a delta in seconds as a signed, zero-padded readout.
// Non-finite values render as "--". Strictly positive values carry a "+"
// prefix, strictly negative a "-", zero neither.
func FormatDelta(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "--"
	}

	sign := ""
	switch {
	case seconds > 0:
		sign = "+"
	case seconds < 0:
		sign = "-"
	}

	abs := math.Abs(seconds)
	minutes := int(abs / 60)
	rem := abs - float64(minutes)*60

	if minutes > 0 {
		return fmt.Sprintf("%s%d:%06.3f", sign, minutes, rem)
	}
	return fmt.Sprintf("%s%.3f", sign, rem)
}

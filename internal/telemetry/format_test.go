package telemetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"nan", math.NaN(), "--"},
		{"positive infinity", math.Inf(1), "--"},
		{"negative infinity", math.Inf(-1), "--"},
		{"zero has no sign", 0, "0.000"},
		{"sub-minute positive", 10, "+10.000"},
		{"sub-second positive", 0.042, "+0.042"},
		{"just under a minute", 59.999, "+59.999"},
		{"exactly a minute", 60, "+1:00.000"},
		{"minute with padded seconds", 70, "+1:10.000"},
		{"minute with sub-ten seconds", 125.5, "+2:05.500"},
		{"negative sub-minute", -45, "-45.000"},
		{"negative with minutes", -70, "-1:10.000"},
		{"small negative", -0.25, "-0.250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDelta(tt.seconds))
		})
	}
}

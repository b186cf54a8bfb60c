package telemetry

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"raceoverlay/internal/config"
)

// Upstream servers disagree on field names, so every accessor below walks an
// explicit priority table and takes the first structurally valid match.

// positionPairs are paired-key candidates for a 2D position, tried in order.
// An entity carrying both x/z and x/y always resolves via x/z.
var positionPairs = [...][2]string{
	{"x", "z"},
	{"X", "Z"},
	{"posX", "posZ"},
	{"pos_x", "pos_z"},
	{"posX", "posY"},
	{"x", "y"},
	{"X", "Y"},
}

var headingKeys = [...]string{"heading", "Heading", "yaw", "Yaw", "dir", "direction"}

var (
	progressKeys = [...]string{"lapProgress", "lap_progress", "lapFraction", "lap_fraction"}
	percentKeys  = [...]string{"lapPercent", "lap_percent"}
)

var (
	deltaMillisKeys = [...]string{"delta_ms", "deltaMs"}
	deltaKeys       = [...]string{"delta", "deltaLap", "deltaCurrent", "lapDelta", "splitDelta"}
	deltaSubKeys    = [...]string{"current", "lap", "value"}
)

var (
	playerKeys   = [...]string{"player", "car", "local"}
	opponentKeys = [...]string{"mci", "cars", "vehicles"}
	nameKeys     = [...]string{"name", "driver", "id", "PLID"}
)

// Normalize turns one raw telemetry frame into a canonical snapshot.
// It returns nil only when raw itself is nil; any other shape degrades to
// zero values rather than failing.
func Normalize(raw map[string]any) *State {
	if raw == nil {
		return nil
	}

	player := subObject(raw, playerKeys[:])
	px, py := ExtractPosition(player)

	st := &State{
		Player: Player{
			PX:          px,
			PY:          py,
			Heading:     NormalizeHeading(player),
			LapProgress: ReadLapProgress(player),
			Delta:       ReadDelta(player),
		},
	}

	for _, entry := range opponentEntries(raw) {
		ox, oy := ExtractPosition(entry)
		relX := ox - px
		relY := oy - py
		dist := math.Hypot(relX, relY)
		if !isFinite(dist) || dist <= config.ContactFloor {
			continue
		}
		st.Cars = append(st.Cars, Contact{
			RelX:     relX,
			RelY:     relY,
			Distance: dist,
			Name:     contactName(entry),
		})
	}

	return st
}

// ExtractPosition resolves a 2D position from a loosely shaped entity.
// Paired keys win over a pos sub-object, which wins over a position array.
// Entities with no recognisable position sit at the origin.
func ExtractPosition(entity map[string]any) (float64, float64) {
	if entity == nil {
		return 0, 0
	}

	for _, pair := range positionPairs {
		x, okX := number(entity[pair[0]])
		y, okY := number(entity[pair[1]])
		if okX && okY {
			return x, y
		}
	}

	if pos, ok := entity["pos"].(map[string]any); ok {
		if x, okX := number(pos["x"]); okX {
			if z, okZ := number(pos["z"]); okZ {
				return x, z
			}
			if y, okY := number(pos["y"]); okY {
				return x, y
			}
		}
	}

	if arr, ok := entity["position"].([]any); ok && len(arr) >= 2 {
		x, okX := number(arr[0])
		y, okY := number(arr[1])
		if okX && okY {
			return x, y
		}
	}

	return 0, 0
}

// NormalizeHeading reads the player heading in radians. Magnitudes beyond 2π
// are taken as degrees and converted; anything within ±2π is assumed to be
// radians already. Genuine unnormalized radians above 2π are therefore
// misread as degrees, matching the upstream feeds this was tuned against.
func NormalizeHeading(entity map[string]any) float64 {
	v, ok := firstNumber(entity, headingKeys[:])
	if !ok || !isFinite(v) {
		return 0
	}
	if math.Abs(v) > 2*math.Pi {
		return v * math.Pi / 180
	}
	return v
}

// ReadLapProgress resolves the lap fraction, clamped to [0, 1].
// Values above 1 are treated as percentages.
func ReadLapProgress(entity map[string]any) float64 {
	if v, ok := firstNumber(entity, progressKeys[:]); ok && isFinite(v) {
		return clampProgress(scalePercent(v))
	}
	if v, ok := firstNumber(entity, percentKeys[:]); ok && isFinite(v) {
		return clampProgress(scalePercent(v))
	}
	if lap, ok := entity["lap"].(map[string]any); ok {
		if v, ok := firstNumber(lap, []string{"progress", "fraction"}); ok && isFinite(v) {
			return clampProgress(scalePercent(v))
		}
		if v, ok := firstNumber(lap, []string{"percent", "pct"}); ok && isFinite(v) {
			return clampProgress(scalePercent(v))
		}
	}
	return 0
}

// ReadDelta resolves the delta in seconds, or NaN when absent. Explicit _ms
// keys are always milliseconds; bare keys with a magnitude between 30 and
// 60000 are assumed to be milliseconds too and rescaled.
func ReadDelta(entity map[string]any) float64 {
	if v, ok := firstNumber(entity, deltaMillisKeys[:]); ok && isFinite(v) {
		return v / 1000
	}
	if lap, ok := entity["lap"].(map[string]any); ok {
		if v, ok := firstNumber(lap, deltaMillisKeys[:]); ok && isFinite(v) {
			return v / 1000
		}
	}
	if v, ok := firstNumber(entity, deltaKeys[:]); ok && isFinite(v) {
		return rescaleDelta(v)
	}
	if sub, ok := entity["delta"].(map[string]any); ok {
		if v, ok := firstNumber(sub, deltaSubKeys[:]); ok && isFinite(v) {
			return rescaleDelta(v)
		}
	}
	return math.NaN()
}

func rescaleDelta(v float64) float64 {
	if abs := math.Abs(v); abs > 30 && abs < 60000 {
		return v / 1000
	}
	return v
}

func scalePercent(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

func clampProgress(v float64) float64 {
	if !(v > 0) { // catches NaN too
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// opponentEntries collects the raw opponent objects, preserving source order
// for arrays and sorting mapping keys so repeated frames normalize
// identically.
func opponentEntries(raw map[string]any) []map[string]any {
	var src any
	for _, key := range opponentKeys {
		if v, ok := raw[key]; ok && v != nil {
			src = v
			break
		}
	}

	switch coll := src.(type) {
	case []any:
		out := make([]map[string]any, 0, len(coll))
		for _, v := range coll {
			if entry, ok := v.(map[string]any); ok {
				out = append(out, entry)
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(coll))
		for k := range coll {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]map[string]any, 0, len(coll))
		for _, k := range keys {
			if entry, ok := coll[k].(map[string]any); ok {
				out = append(out, entry)
			}
		}
		return out
	}
	return nil
}

func contactName(entry map[string]any) string {
	for _, key := range nameKeys {
		switch v := entry[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64, int, int64, float32:
			n, _ := number(v)
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
	}
	return "car"
}

func subObject(raw map[string]any, keys []string) map[string]any {
	for _, key := range keys {
		if m, ok := raw[key].(map[string]any); ok {
			return m
		}
	}
	return nil
}

func firstNumber(entity map[string]any, keys []string) (float64, bool) {
	if entity == nil {
		return 0, false
	}
	for _, key := range keys {
		if v, ok := number(entity[key]); ok {
			return v, true
		}
	}
	return 0, false
}

// number accepts the numeric shapes a JSON decoder or a test fixture can
// produce.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

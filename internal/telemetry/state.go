package telemetry

// Player is the normalized view of the local vehicle for one frame.
type Player struct {
	PX          float64 // World position, first axis
	PY          float64 // World position, second axis
	Heading     float64 // Radians. Always finite; zero on bad input.
	LapProgress float64 // Clamped to [0, 1]
	Delta       float64 // Seconds. NaN when the feed carried no delta.
}

// Contact is a non-player vehicle relative to the player, pre-rotation.
type Contact struct {
	RelX     float64
	RelY     float64
	Distance float64 // Always finite and > the self-filter floor
	Name     string
}

// State is the canonical snapshot derived from one accepted telemetry frame.
// It is immutable once built; each accepted frame replaces the previous
// snapshot wholesale.
type State struct {
	Player Player
	Cars   []Contact
}

package config

import "time"

const (
	// Radar display
	MaxRange     = 140.0 // Maximum radar range in world units (metres)
	RadiusFactor = 0.35  // Radar radius as a fraction of min(width, height)
	RingCount    = 2     // Inner dashed range rings inside the outer ring
	MinOpacity   = 0.2   // Opacity floor for distant contacts
	MaxOpacity   = 0.9   // Opacity ceiling for close contacts
	ContactFloor = 0.5   // Contacts at or under this distance are the player itself
	TargetFPS    = 30    // Target frames per second
	PixelRatio   = 2     // Vertical half-block pixels per terminal cell

	// Lap progress bar
	BarWidthFactor = 0.8  // Bar width as a fraction of viewport width
	BarHeight      = 24.0 // Bar height in canvas units
	BarInset       = 6.0  // Fill inset inside the bar outline

	// Connection
	StaleAfter  = 2500 * time.Millisecond // No accepted frame for this long means the feed is paused
	DefaultHost = "127.0.0.1"
	DefaultPort = 30333
	PortMin     = 1
	PortMax     = 65535

	// Demo mode
	DemoCarCount = 6                     // Synthetic opponents
	DemoInterval = 66 * time.Millisecond // Synthetic feed cadence (~15 Hz)

	// App
	AppName    = "RACE-OVERLAY"
	AppVersion = "1.0"
)

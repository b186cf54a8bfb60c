package app

import "time"

// RedrawMsg is the coalesced frame callback; Token names the request that
// scheduled it so superseded requests can be dropped.
type RedrawMsg struct {
	Token uint64
}

// WatchdogMsg drives the staleness check independently of inbound frames.
type WatchdogMsg time.Time

package booking

import "time"

// Settings are the pacing knobs of the simulators. They are presentation
// choices, not physical constants, and come from configuration.
type Settings struct {
	Discovery     DiscoveryTimings
	DiscoveryTick time.Duration
	PriceStep     int
	TrackingTick  time.Duration
	IntroDelay    time.Duration
	SessionTTL    time.Duration
	RandomSeed    int64
}

// DefaultSettings mirrors the demo pacing of the booking app.
func DefaultSettings() Settings {
	return Settings{
		Discovery: DiscoveryTimings{
			CallingDurationMs:  1600,
			NegotiatingStartMs: 2000,
			DoneStartMs:        4000,
			PriceRevealMs:      1200,
		},
		DiscoveryTick: 100 * time.Millisecond,
		PriceStep:     5,
		TrackingTick:  8 * time.Second,
		IntroDelay:    700 * time.Millisecond,
		SessionTTL:    30 * time.Minute,
	}
}

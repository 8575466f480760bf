package booking

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"sync"
	"time"

	"homebook/clock"
	"homebook/models"
)

// DefaultEtaMinutes is used when an ETA label carries no number.
const DefaultEtaMinutes = 15

var firstNumber = regexp.MustCompile(`\d+`)

// ParseEtaMinutes extracts the first run of digits from an ETA label such as
// "15 min". Labels without digits ("Next day") yield DefaultEtaMinutes.
func ParseEtaMinutes(label string) int {
	digits := firstNumber.FindString(label)
	if digits == "" {
		return DefaultEtaMinutes
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return DefaultEtaMinutes
	}
	return n
}

// Lerp interpolates between a and b; t is clamped to [0,1].
func Lerp(a, b models.LatLng, t float64) models.LatLng {
	t = math.Max(0, math.Min(1, t))
	return models.LatLng{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}

// Midpoint is where a map camera should centre to show both points.
func Midpoint(a, b models.LatLng) models.LatLng {
	return Lerp(a, b, 0.5)
}

// NewTrackingState builds the state for a vendor initialEtaMinutes away.
// Negative ETAs are treated as 0, which is an immediate arrival.
func NewTrackingState(initialEtaMinutes int, vendorStart, destination models.LatLng) models.TrackingState {
	if initialEtaMinutes < 0 {
		initialEtaMinutes = 0
	}
	return derive(models.TrackingState{
		InitialEtaMinutes:   initialEtaMinutes,
		EtaMinutesRemaining: initialEtaMinutes,
		VendorStart:         vendorStart,
		Destination:         destination,
	})
}

// Tick advances the simulation by one minute. Once arrived it returns the
// state unchanged.
func Tick(state models.TrackingState) models.TrackingState {
	if state.Arrived {
		return state
	}
	next := state
	next.EtaMinutesRemaining = max(0, state.EtaMinutesRemaining-1)
	return derive(next)
}

func derive(st models.TrackingState) models.TrackingState {
	if st.InitialEtaMinutes <= 0 {
		st.EtaMinutesRemaining = 0
		st.Progress = 1
	} else {
		st.Progress = 1 - float64(st.EtaMinutesRemaining)/float64(st.InitialEtaMinutes)
		st.Progress = math.Max(0, math.Min(1, st.Progress))
	}
	st.VendorPosition = Lerp(st.VendorStart, st.Destination, st.Progress)
	st.DistanceRemainingKm = haversine(st.VendorPosition.Lat, st.VendorPosition.Lng, st.Destination.Lat, st.Destination.Lng)
	st.Arrived = st.EtaMinutesRemaining == 0
	return st
}

// StatusLabel is the line shown above the tracking map.
func StatusLabel(state models.TrackingState) string {
	if state.Arrived {
		return "Arriving now"
	}
	return fmt.Sprintf("%d min away", state.EtaMinutesRemaining)
}

// haversine returns the great-circle distance in km.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// TrackingSimulator counts a vendor down to arrival, one Tick per interval.
type TrackingSimulator struct {
	mu        sync.Mutex
	clk       clock.Clock
	state     models.TrackingState
	stop      clock.CancelFunc
	cancelled bool

	onTick   func(models.TrackingState)
	onArrive func(models.TrackingState)
}

// NewTrackingSimulator wraps an initial state. onTick runs after every tick,
// onArrive once on arrival; either may be nil.
func NewTrackingSimulator(clk clock.Clock, initial models.TrackingState, onTick, onArrive func(models.TrackingState)) *TrackingSimulator {
	return &TrackingSimulator{clk: clk, state: initial, onTick: onTick, onArrive: onArrive}
}

// Start ticks every interval until arrival or Cancel.
func (t *TrackingSimulator) Start(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil || t.cancelled || t.state.Arrived {
		return
	}
	t.stop = t.clk.Every(interval, func() { t.Step() })
}

// Step applies one Tick immediately. It is what the timer calls, and what
// tests call to drive the simulator without a clock.
func (t *TrackingSimulator) Step() models.TrackingState {
	t.mu.Lock()
	if t.cancelled || t.state.Arrived {
		st := t.state
		t.mu.Unlock()
		return st
	}
	t.state = Tick(t.state)
	st := t.state
	if st.Arrived && t.stop != nil {
		t.stop()
	}
	onTick, onArrive := t.onTick, t.onArrive
	t.mu.Unlock()

	if onTick != nil {
		onTick(st)
	}
	if st.Arrived && onArrive != nil {
		onArrive(st)
	}
	return st
}

// State returns the current state.
func (t *TrackingSimulator) State() models.TrackingState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Cancel clears the pending ticks.
func (t *TrackingSimulator) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	if t.stop != nil {
		t.stop()
	}
}

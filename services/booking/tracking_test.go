package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebook/clock"
	"homebook/models"
)

var (
	vendorStart = models.LatLng{Lat: 37.7726, Lng: -122.4194}
	home        = models.LatLng{Lat: 37.7599, Lng: -122.4148}
)

func TestParseEtaMinutes(t *testing.T) {
	tests := map[string]int{
		"15 min":         15,
		"12 min":         12,
		"about 7-9 mins": 7,
		"Next day":       DefaultEtaMinutes,
		"no digits here": DefaultEtaMinutes,
		"":               DefaultEtaMinutes,
		"0 min":          0,
	}
	for label, want := range tests {
		t.Run(label, func(t *testing.T) {
			assert.Equal(t, want, ParseEtaMinutes(label))
		})
	}
}

func TestTrackingArrivesAfterEtaTicks(t *testing.T) {
	st := NewTrackingState(15, vendorStart, home)
	assert.Equal(t, "15 min away", StatusLabel(st))
	assert.Zero(t, st.Progress)
	assert.Equal(t, vendorStart, st.VendorPosition)

	prev := st.Progress
	for i := 0; i < 15; i++ {
		require.False(t, st.Arrived, "arrived early at tick %d", i)
		st = Tick(st)
		assert.GreaterOrEqual(t, st.Progress, prev)
		assert.LessOrEqual(t, st.Progress, 1.0)
		prev = st.Progress
	}

	assert.True(t, st.Arrived)
	assert.Equal(t, 0, st.EtaMinutesRemaining)
	assert.Equal(t, 1.0, st.Progress)
	assert.Equal(t, "Arriving now", StatusLabel(st))
	assert.InDelta(t, home.Lat, st.VendorPosition.Lat, 1e-9)
	assert.InDelta(t, 0, st.DistanceRemainingKm, 1e-6)

	assert.Equal(t, st, Tick(st))
}

func TestTrackingDistanceShrinks(t *testing.T) {
	st := NewTrackingState(10, vendorStart, home)
	start := st.DistanceRemainingKm
	assert.InDelta(t, 1.47, start, 0.05)

	st = Tick(st)
	assert.Less(t, st.DistanceRemainingKm, start)
}

func TestTrackingZeroEtaArrivesImmediately(t *testing.T) {
	for _, eta := range []int{0, -4} {
		st := NewTrackingState(eta, vendorStart, home)
		assert.True(t, st.Arrived)
		assert.Equal(t, 1.0, st.Progress)
		assert.Equal(t, "Arriving now", StatusLabel(st))
	}
}

func TestLerpAndMidpoint(t *testing.T) {
	a := models.LatLng{Lat: 10, Lng: 20}
	b := models.LatLng{Lat: 30, Lng: -20}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, b, Lerp(a, b, 3))
	assert.Equal(t, models.LatLng{Lat: 20, Lng: 0}, Midpoint(a, b))
}

func TestTrackingSimulator(t *testing.T) {
	fc := clock.NewFake(epoch)
	ticks, arrivals := 0, 0
	sim := NewTrackingSimulator(fc, NewTrackingState(3, vendorStart, home),
		func(models.TrackingState) { ticks++ },
		func(models.TrackingState) { arrivals++ },
	)
	sim.Start(8 * time.Second)

	fc.Advance(16 * time.Second)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, "1 min away", StatusLabel(sim.State()))

	fc.Advance(time.Minute)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, arrivals)
	assert.True(t, sim.State().Arrived)
	assert.Zero(t, fc.Pending())
}

func TestTrackingSimulatorCancel(t *testing.T) {
	fc := clock.NewFake(epoch)
	ticks := 0
	sim := NewTrackingSimulator(fc, NewTrackingState(15, vendorStart, home), func(models.TrackingState) { ticks++ }, nil)
	sim.Start(8 * time.Second)

	fc.Advance(8 * time.Second)
	sim.Cancel()
	fc.Advance(time.Hour)

	assert.Equal(t, 1, ticks)
	assert.Equal(t, 14, sim.State().EtaMinutesRemaining)
	assert.Zero(t, fc.Pending())
	assert.Equal(t, 14, sim.Step().EtaMinutesRemaining)
}

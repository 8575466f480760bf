package booking

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebook/clock"
	"homebook/models"
)

func TestCallCountAt(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  int64
		max      int
		duration int64
		want     int
	}{
		{"start", 0, 14, 1600, 0},
		{"half way", 800, 14, 1600, 7},
		{"end of calling", 1600, 14, 1600, 14},
		{"past calling", 3000, 14, 1600, 14},
		{"negative elapsed", -5, 14, 1600, 0},
		{"zero vendors counts as one", 1600, 0, 1600, 1},
		{"negative vendors counts as one", 900, -3, 1600, 0},
		{"zero duration", 1, 6, 0, 6},
		{"floor", 114, 14, 1600, 0},
		{"first vendor", 115, 14, 1600, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CallCountAt(tc.elapsed, tc.max, tc.duration))
		})
	}
}

func TestCallCountAtIsMonotonic(t *testing.T) {
	prev := 0
	for elapsed := int64(0); elapsed <= 2000; elapsed += 7 {
		n := CallCountAt(elapsed, 14, 1600)
		require.GreaterOrEqual(t, n, prev, "elapsed %d", elapsed)
		require.LessOrEqual(t, n, 14)
		prev = n
	}
}

func TestPhaseAt(t *testing.T) {
	timings := DefaultSettings().Discovery
	assert.Equal(t, models.DiscoveryCalling, timings.PhaseAt(0))
	assert.Equal(t, models.DiscoveryCalling, timings.PhaseAt(1999))
	assert.Equal(t, models.DiscoveryNegotiating, timings.PhaseAt(2000))
	assert.Equal(t, models.DiscoveryNegotiating, timings.PhaseAt(3999))
	assert.Equal(t, models.DiscoveryDone, timings.PhaseAt(4000))
}

func TestBestPriceAt(t *testing.T) {
	dist := PriceDistribution{Min: 80, Max: 160, Step: 5}
	assert.Nil(t, BestPriceAt(1199, 1200, dist, rand.New(rand.NewSource(1))))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		p := BestPriceAt(1200, 1200, dist, rng)
		require.NotNil(t, p)
		assert.GreaterOrEqual(t, *p, 80)
		assert.LessOrEqual(t, *p, 160)
		assert.Zero(t, (*p-80)%5)
	}
}

func TestBestPriceIsDeterministicForSeed(t *testing.T) {
	dist := PriceDistribution{Min: 60, Max: 150, Step: 5}
	a := BestPriceAt(2000, 1200, dist, rand.New(rand.NewSource(7)))
	b := BestPriceAt(2000, 1200, dist, rand.New(rand.NewSource(7)))
	require.NotNil(t, a)
	assert.Equal(t, *a, *b)
}

func TestPriceDistributionNormalizes(t *testing.T) {
	d := PriceDistribution{Min: 0, Max: -4, Step: 0}
	assert.Equal(t, 1, d.Values())
	assert.Equal(t, 1, d.Draw(nil))
	assert.Equal(t, 17, PriceDistribution{Min: 80, Max: 160, Step: 5}.Values())
}

func TestOffersFor(t *testing.T) {
	best, fastest := OffersFor("plumber")
	assert.Equal(t, "FlowRight Plumbing", best.Name)
	assert.Equal(t, models.CategoryBest, best.Category)
	assert.Equal(t, "Rapid Rooter", fastest.Name)
	assert.Equal(t, models.CategoryFastest, fastest.Category)

	best, fastest = OffersFor("zeppelin_repair")
	assert.Equal(t, "Neighbourhood Pros", best.Name)
	assert.Equal(t, "QuickFix Crew", fastest.Name)
}

func newTestDiscovery(fc *clock.Fake, onChange, onDone func(models.DiscoveryState)) *DiscoverySimulator {
	return NewDiscoverySimulator(fc, "plumber", DiscoveryOptions{
		Timings:      DefaultSettings().Discovery,
		Distribution: PriceDistribution{Min: 80, Max: 160, Step: 5},
		Rand:         rand.New(rand.NewSource(3)),
		OnChange:     onChange,
		OnDone:       onDone,
	})
}

func TestDiscoverySimulatorRun(t *testing.T) {
	fc := clock.NewFake(epoch)
	var phases []models.DiscoveryPhase
	var lastCount int
	var done []models.DiscoveryState

	sim := newTestDiscovery(fc, func(st models.DiscoveryState) {
		assert.GreaterOrEqual(t, st.CallCount, lastCount)
		lastCount = st.CallCount
		if len(phases) == 0 || phases[len(phases)-1] != st.Phase {
			phases = append(phases, st.Phase)
		}
	}, func(st models.DiscoveryState) {
		done = append(done, st)
	})
	sim.Start(100 * time.Millisecond)

	fc.Advance(800 * time.Millisecond)
	st := sim.State()
	assert.Equal(t, models.DiscoveryCalling, st.Phase)
	assert.Equal(t, 7, st.CallCount)
	assert.Nil(t, st.BestPriceFound)

	fc.Advance(400 * time.Millisecond)
	st = sim.State()
	require.NotNil(t, st.BestPriceFound)
	price := *st.BestPriceFound

	fc.Advance(time.Second)
	st = sim.State()
	assert.Equal(t, models.DiscoveryNegotiating, st.Phase)
	assert.Equal(t, 14, st.CallCount)
	assert.Equal(t, price, *st.BestPriceFound)

	fc.Advance(5 * time.Second)
	st = sim.State()
	assert.Equal(t, models.DiscoveryDone, st.Phase)
	assert.Equal(t, 14, st.CallCount)
	require.Len(t, st.Offers, 2)
	assert.Equal(t, models.CategoryBest, st.Offers[0].Category)
	assert.Equal(t, models.CategoryFastest, st.Offers[1].Category)
	assert.Equal(t, price, *st.BestPriceFound)

	assert.Equal(t, []models.DiscoveryPhase{models.DiscoveryCalling, models.DiscoveryNegotiating, models.DiscoveryDone}, phases)
	assert.Len(t, done, 1)
	assert.Zero(t, fc.Pending())
}

func TestDiscoveryAdvanceNeverSkipsNegotiating(t *testing.T) {
	fc := clock.NewFake(epoch)
	var phases []models.DiscoveryPhase
	sim := newTestDiscovery(fc, func(st models.DiscoveryState) {
		phases = append(phases, st.Phase)
	}, nil)

	sim.Advance(500)
	st := sim.Advance(10_000)

	assert.Equal(t, models.DiscoveryDone, st.Phase)
	assert.Equal(t, []models.DiscoveryPhase{models.DiscoveryCalling, models.DiscoveryNegotiating, models.DiscoveryDone}, phases)
}

func TestDiscoveryIgnoresStaleElapsed(t *testing.T) {
	fc := clock.NewFake(epoch)
	sim := newTestDiscovery(fc, nil, nil)

	sim.Advance(1600)
	st := sim.Advance(400)

	assert.Equal(t, int64(1600), st.ElapsedMs)
	assert.Equal(t, 14, st.CallCount)
}

func TestDiscoveryCancelStopsCallbacks(t *testing.T) {
	fc := clock.NewFake(epoch)
	changes, dones := 0, 0
	sim := newTestDiscovery(fc, func(models.DiscoveryState) { changes++ }, func(models.DiscoveryState) { dones++ })
	sim.Start(100 * time.Millisecond)

	fc.Advance(300 * time.Millisecond)
	sim.Cancel()
	before := changes
	fc.Advance(10 * time.Second)

	assert.Equal(t, before, changes)
	assert.Zero(t, dones)
	assert.Zero(t, fc.Pending())
	assert.Equal(t, models.DiscoveryCalling, sim.State().Phase)
}

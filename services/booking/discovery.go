package booking

import (
	"sync"
	"time"

	"homebook/clock"
	"homebook/models"
	"homebook/services/catalog"
)

// DiscoveryTimings are the fixed offsets of a discovery run, in ms after start.
type DiscoveryTimings struct {
	CallingDurationMs  int64
	NegotiatingStartMs int64
	DoneStartMs        int64
	PriceRevealMs      int64
}

// PhaseAt returns the phase of a run elapsedMs after it started.
func (t DiscoveryTimings) PhaseAt(elapsedMs int64) models.DiscoveryPhase {
	switch {
	case elapsedMs < t.NegotiatingStartMs:
		return models.DiscoveryCalling
	case elapsedMs < t.DoneStartMs:
		return models.DiscoveryNegotiating
	default:
		return models.DiscoveryDone
	}
}

// CallCountAt is the number of vendors called after elapsedMs: a linear ramp
// reaching maxVendors at callingDurationMs, clamped to [0, maxVendors].
// maxVendors <= 0 is treated as 1.
func CallCountAt(elapsedMs int64, maxVendors int, callingDurationMs int64) int {
	if maxVendors <= 0 {
		maxVendors = 1
	}
	if elapsedMs <= 0 {
		return 0
	}
	if callingDurationMs <= 0 || elapsedMs >= callingDurationMs {
		return maxVendors
	}
	// floor(elapsed / (duration/max)) without float rounding.
	n := elapsedMs * int64(maxVendors) / callingDurationMs
	if n > int64(maxVendors) {
		return maxVendors
	}
	return int(n)
}

// RandomSource is the injected randomness of discovery. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// PriceDistribution draws whole-dollar prices from Min..Max in Step increments.
type PriceDistribution struct {
	Min  int
	Max  int
	Step int
}

// Values returns how many distinct prices the distribution can produce.
func (d PriceDistribution) Values() int {
	d = d.normalized()
	return (d.Max-d.Min)/d.Step + 1
}

// Draw picks one price. A nil source always yields Min.
func (d PriceDistribution) Draw(rng RandomSource) int {
	d = d.normalized()
	if rng == nil {
		return d.Min
	}
	return d.Min + rng.Intn(d.Values())*d.Step
}

func (d PriceDistribution) normalized() PriceDistribution {
	if d.Step <= 0 {
		d.Step = 1
	}
	if d.Min < 1 {
		d.Min = 1
	}
	if d.Max < d.Min {
		d.Max = d.Min
	}
	return d
}

// BestPriceAt is nil before revealMs and a draw from dist afterwards.
func BestPriceAt(elapsedMs, revealMs int64, dist PriceDistribution, rng RandomSource) *int {
	if elapsedMs < revealMs {
		return nil
	}
	p := dist.Draw(rng)
	return &p
}

// OffersFor returns the best and fastest offers for serviceID, falling back
// to the generic pair for unknown ids.
func OffersFor(serviceID string) (models.VendorOffer, models.VendorOffer) {
	pair := catalog.VendorsFor(serviceID)
	return pair.Best, pair.Fastest
}

// DiscoverySimulator drives one discovery run. It keeps only the last known
// elapsed time; everything else is derived from the pure functions above.
type DiscoverySimulator struct {
	mu        sync.Mutex
	clk       clock.Clock
	timings   DiscoveryTimings
	serviceID string
	dist      PriceDistribution
	rng       RandomSource
	startedAt time.Time
	state     models.DiscoveryState
	stop      clock.CancelFunc
	cancelled bool

	onChange func(models.DiscoveryState)
	onDone   func(models.DiscoveryState)
}

// DiscoveryOptions configure a DiscoverySimulator.
type DiscoveryOptions struct {
	Timings      DiscoveryTimings
	Distribution PriceDistribution
	Rand         RandomSource
	// OnChange fires after every tick that changed the observable state.
	OnChange func(models.DiscoveryState)
	// OnDone fires once, when the run reaches the done phase.
	OnDone func(models.DiscoveryState)
}

// NewDiscoverySimulator prepares a run for serviceID in the calling phase.
func NewDiscoverySimulator(clk clock.Clock, serviceID string, opts DiscoveryOptions) *DiscoverySimulator {
	return &DiscoverySimulator{
		clk:       clk,
		timings:   opts.Timings,
		serviceID: serviceID,
		dist:      opts.Distribution,
		rng:       opts.Rand,
		onChange:  opts.OnChange,
		onDone:    opts.OnDone,
		state: models.DiscoveryState{
			Phase:      models.DiscoveryCalling,
			MaxVendors: catalog.MaxVendorsFor(serviceID),
		},
	}
}

// Start records the start time and ticks every interval until done or cancelled.
func (s *DiscoverySimulator) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil || s.cancelled {
		return
	}
	s.startedAt = s.clk.Now()
	s.stop = s.clk.Every(interval, s.tick)
}

func (s *DiscoverySimulator) tick() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	elapsed := s.clk.Now().Sub(s.startedAt).Milliseconds()
	s.mu.Unlock()
	s.Advance(elapsed)
}

// Advance re-evaluates the run at elapsedMs. Values older than the last one
// seen are ignored, so observed state never moves backwards. A jump from
// calling straight past the done offset still passes through negotiating.
func (s *DiscoverySimulator) Advance(elapsedMs int64) models.DiscoveryState {
	s.mu.Lock()
	boundary := int64(-1)
	if !s.cancelled && s.state.Phase == models.DiscoveryCalling &&
		s.timings.PhaseAt(elapsedMs) == models.DiscoveryDone &&
		s.timings.NegotiatingStartMs < s.timings.DoneStartMs &&
		s.timings.NegotiatingStartMs >= s.state.ElapsedMs {
		boundary = s.timings.NegotiatingStartMs
	}
	s.mu.Unlock()

	if boundary >= 0 {
		s.advance(boundary)
	}
	return s.advance(elapsedMs)
}

func (s *DiscoverySimulator) advance(elapsedMs int64) models.DiscoveryState {
	s.mu.Lock()
	if s.cancelled || elapsedMs < s.state.ElapsedMs || s.state.Phase == models.DiscoveryDone {
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st
	}

	prev := s.snapshotLocked()
	next := s.state
	next.ElapsedMs = elapsedMs
	next.Phase = s.timings.PhaseAt(elapsedMs)
	if count := CallCountAt(elapsedMs, next.MaxVendors, s.timings.CallingDurationMs); count > next.CallCount {
		next.CallCount = count
	}
	if next.BestPriceFound == nil {
		// drawn once, then held for the rest of the run
		next.BestPriceFound = BestPriceAt(elapsedMs, s.timings.PriceRevealMs, s.dist, s.rng)
	}

	done := false
	if next.Phase == models.DiscoveryDone {
		next.CallCount = next.MaxVendors
		best, fastest := OffersFor(s.serviceID)
		next.Offers = []models.VendorOffer{best, fastest}
		done = true
		if s.stop != nil {
			s.stop()
		}
	}
	s.state = next
	st := s.snapshotLocked()
	onChange, onDone := s.onChange, s.onDone
	s.mu.Unlock()

	if onChange != nil && changed(prev, st) {
		onChange(st)
	}
	if done && onDone != nil {
		onDone(st)
	}
	return st
}

func changed(a, b models.DiscoveryState) bool {
	if a.Phase != b.Phase || a.CallCount != b.CallCount {
		return true
	}
	return (a.BestPriceFound == nil) != (b.BestPriceFound == nil)
}

// State returns a copy of the current state.
func (s *DiscoverySimulator) State() models.DiscoveryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *DiscoverySimulator) snapshotLocked() models.DiscoveryState {
	st := s.state
	if s.state.BestPriceFound != nil {
		p := *s.state.BestPriceFound
		st.BestPriceFound = &p
	}
	if s.state.Offers != nil {
		st.Offers = append([]models.VendorOffer{}, s.state.Offers...)
	}
	return st
}

// Cancel clears the pending ticks. The state stays readable.
func (s *DiscoverySimulator) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	if s.stop != nil {
		s.stop()
	}
}

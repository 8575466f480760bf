package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/models"
	"homebook/services/catalog"
)

// Event kinds reported to the event hook.
const (
	EventInitiated           = "session.initiated"
	EventIntroLine           = "conversation.intro"
	EventConversationAdvance = "conversation.advanced"
	EventStageChanged        = "pipeline.stage"
	EventDiscoveryProgress   = "discovery.progress"
	EventDiscoveryDone       = "discovery.done"
	EventTrackingTick        = "tracking.tick"
	EventTrackingArrived     = "tracking.arrived"
	EventCancelled           = "session.cancelled"
	EventSuperseded          = "session.superseded"
	EventCompleted           = "session.completed"
	EventExpired             = "session.expired"
)

// GuestUserID is recorded on attempts opened without a caller ID.
const GuestUserID = "guest"

// Event tells a UI shell that an attempt changed and it may animate.
type Event struct {
	SessionID string
	Kind      string
	Stage     models.BookingStage
}

// attempt is one booking attempt and every timer-bearing component it owns.
type attempt struct {
	mu           sync.Mutex
	id           string
	userID       string
	serviceID    string
	status       string
	conversation models.ConversationState
	intro        *IntroRunner
	pipeline     *Pipeline
	discovery    *DiscoverySimulator
	tracking     *TrackingSimulator
	rng          RandomSource
	createdAt    time.Time
	updatedAt    time.Time
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	clk      clock.Clock
	settings Settings
	store    SnapshotStore
	payments PaymentHandler
	logger   *zap.Logger

	mu           sync.Mutex
	seeds        *rand.Rand
	attempts     map[string]*attempt
	activeByUser map[string]string
	onEvent      func(Event)
}

var _ BookingSessionService = (*DefaultBookingSessionService)(nil)

// NewBookingSessionService wires a session service. A nil store falls back
// to an in-memory store, a nil payment handler to the simulated one.
func NewBookingSessionService(clk clock.Clock, settings Settings, store SnapshotStore, payments PaymentHandler, logger *zap.Logger) *DefaultBookingSessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = NewMemorySnapshotStore(clk, settings.SessionTTL)
	}
	if payments == nil {
		payments = NewPaymentHandler(logger, clk)
	}
	seed := settings.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DefaultBookingSessionService{
		clk:          clk,
		settings:     settings,
		store:        store,
		payments:     payments,
		logger:       logger,
		seeds:        rand.New(rand.NewSource(seed)),
		attempts:     make(map[string]*attempt),
		activeByUser: make(map[string]string),
	}
}

// OnEvent installs the hook that receives advance signals. Hooks run on the
// goroutine that caused the change and must not call back into the service.
func (s *DefaultBookingSessionService) OnEvent(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvent = fn
}

func (s *DefaultBookingSessionService) emit(a *attempt, kind string) {
	s.mu.Lock()
	fn := s.onEvent
	s.mu.Unlock()
	if fn != nil {
		fn(Event{SessionID: a.id, Kind: kind, Stage: a.stageLocked()})
	}
}

// Initiate opens a new attempt for serviceID. Any attempt the same user
// still has open is superseded and its timers are cleared. Callers without
// an ID are guests; guest attempts never supersede each other.
func (s *DefaultBookingSessionService) Initiate(ctx context.Context, userID, serviceID string) (*models.BookingSession, error) {
	userID = strings.TrimSpace(userID)
	guest := userID == ""
	if guest {
		userID = GuestUserID
	}
	serviceID = strings.TrimSpace(serviceID)
	now := s.clk.Now()

	s.mu.Lock()
	var previous *attempt
	if !guest {
		previous = s.attempts[s.activeByUser[userID]]
	}
	a := &attempt{
		id:           uuid.New().String(),
		userID:       userID,
		serviceID:    serviceID,
		status:       models.SessionActive,
		conversation: StartConversation(serviceID),
		rng:          rand.New(rand.NewSource(s.seeds.Int63())),
		createdAt:    now,
		updatedAt:    now,
	}
	s.attempts[a.id] = a
	if !guest {
		s.activeByUser[userID] = a.id
	}
	s.mu.Unlock()

	if previous != nil {
		s.close(ctx, previous, models.SessionSuperseded, EventSuperseded)
	}

	details, _ := catalog.GetService(serviceID)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.intro = NewIntroRunner(s.clk, s.settings.IntroDelay, len(details.IntroLines), func(shown int) {
		s.onIntroLine(a, shown)
	})
	a.intro.Start()

	s.logger.Info("Booking session initiated",
		zap.String("sessionID", a.id), zap.String("userID", userID), zap.String("serviceID", serviceID))
	s.emit(a, EventInitiated)
	return s.persistLocked(ctx, a), nil
}

func (s *DefaultBookingSessionService) onIntroLine(a *attempt, shown int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != models.SessionActive || a.conversation.Phase != models.PhaseIntro {
		return
	}
	a.conversation.IntroShown = shown
	s.persistLocked(context.Background(), a)
	s.emit(a, EventIntroLine)
}

// Answer submits text to the current intake question. Blank answers and
// answers after the summary leave the attempt unchanged.
func (s *DefaultBookingSessionService) Answer(ctx context.Context, sessionID, text string) (*models.BookingSession, error) {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}

	next, advanced := SubmitAnswer(a.conversation, text)
	if !advanced {
		return a.snapshotLocked(), nil
	}
	if a.intro != nil {
		// the user answered, so the rest of the scripted intro is moot
		a.intro.Cancel()
		next.IntroShown = max(next.IntroShown, a.intro.Shown())
	}
	a.conversation = next
	if next.Phase == models.PhaseSummary {
		summary, _ := SummarizeConversation(next)
		initial := models.RequestContext{ServiceID: a.serviceID}
		for _, line := range summary.Lines {
			initial.QuestionLabels = append(initial.QuestionLabels, line.Label)
			initial.Answers = append(initial.Answers, line.Answer)
		}
		a.pipeline = NewPipeline(initial)
		s.logger.Debug("Intake conversation finished", zap.String("sessionID", a.id), zap.Int("answers", len(next.Answers)))
	}
	s.emit(a, EventConversationAdvance)
	return s.persistLocked(ctx, a), nil
}

// SelectAddress records the service location.
func (s *DefaultBookingSessionService) SelectAddress(ctx context.Context, sessionID, address string, location models.LatLng) (*models.BookingSession, error) {
	return s.apply(ctx, sessionID, SelectAddress{Address: address, Location: location})
}

// StartDiscovery begins the simulated vendor auction. Calling it while a run
// is in progress returns the current state.
func (s *DefaultBookingSessionService) StartDiscovery(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	a, err := s.livePipeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if stage := a.pipeline.Stage(); stage != models.StageVendorDiscovery {
		return nil, fmt.Errorf("start discovery during %s: %w", stage, ErrStageMismatch)
	}
	if a.discovery != nil && a.discovery.State().Phase != models.DiscoveryDone {
		return a.snapshotLocked(), nil
	}
	if a.discovery != nil {
		a.discovery.Cancel()
	}

	details, _ := catalog.GetService(a.serviceID)
	var sim *DiscoverySimulator
	sim = NewDiscoverySimulator(s.clk, a.serviceID, DiscoveryOptions{
		Timings: s.settings.Discovery,
		Distribution: PriceDistribution{
			Min:  details.AvgPriceRange.Min,
			Max:  details.AvgPriceRange.Max,
			Step: s.settings.PriceStep,
		},
		Rand:     a.rng,
		OnChange: func(models.DiscoveryState) { s.onDiscoveryChange(a, sim) },
		OnDone:   func(st models.DiscoveryState) { s.onDiscoveryDone(a, sim, st) },
	})
	a.discovery = sim
	sim.Start(s.settings.DiscoveryTick)

	s.logger.Info("Vendor discovery started",
		zap.String("sessionID", a.id), zap.Int("maxVendors", sim.State().MaxVendors))
	return s.persistLocked(ctx, a), nil
}

func (s *DefaultBookingSessionService) onDiscoveryChange(a *attempt, sim *DiscoverySimulator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != models.SessionActive || a.discovery != sim {
		return
	}
	s.persistLocked(context.Background(), a)
	s.emit(a, EventDiscoveryProgress)
}

func (s *DefaultBookingSessionService) onDiscoveryDone(a *attempt, sim *DiscoverySimulator, st models.DiscoveryState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != models.SessionActive || a.discovery != sim || a.pipeline.Stage() != models.StageVendorDiscovery {
		return
	}
	if _, err := a.pipeline.Apply(CompleteDiscovery{Offers: st.Offers}); err != nil {
		s.logger.Warn("Discovery finished without usable offers", zap.String("sessionID", a.id), zap.Error(err))
		return
	}
	s.logger.Info("Vendor discovery done", zap.String("sessionID", a.id), zap.Int("offers", len(st.Offers)))
	s.persistLocked(context.Background(), a)
	s.emit(a, EventDiscoveryDone)
}

// ChooseVendor accepts the best or fastest offer.
func (s *DefaultBookingSessionService) ChooseVendor(ctx context.Context, sessionID string, category models.OfferCategory) (*models.BookingSession, error) {
	if s.discoveryRunning(ctx, sessionID) {
		return nil, ErrDiscoveryRunning
	}
	return s.apply(ctx, sessionID, ChooseVendor{Category: category})
}

// Verify confirms the contact phone number.
func (s *DefaultBookingSessionService) Verify(ctx context.Context, sessionID, phone string) (*models.BookingSession, error) {
	return s.apply(ctx, sessionID, Verify{Phone: phone, At: s.clk.Now()})
}

// Pay charges the chosen vendor's price with method ("card" or "cash").
func (s *DefaultBookingSessionService) Pay(ctx context.Context, sessionID, method string) (*models.BookingSession, error) {
	a, err := s.livePipeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if stage := a.pipeline.Stage(); stage != models.StagePayment {
		return nil, fmt.Errorf("pay during %s: %w", stage, ErrStageMismatch)
	}
	rc := a.pipeline.Context()
	if rc.ChosenVendor == nil {
		return nil, ErrUnknownOffer
	}

	inv, err := s.payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:      a.userID,
		Amount:      float64(rc.ChosenVendor.PriceUSD),
		Method:      strings.ToLower(strings.TrimSpace(method)),
		Currency:    "USD",
		Idempotency: a.id,
		Description: fmt.Sprintf("%s via %s", a.serviceID, rc.ChosenVendor.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}
	if _, err := a.pipeline.Apply(Pay{Outcome: outcomeFromInvoice(inv)}); err != nil {
		return nil, err
	}
	s.emit(a, EventStageChanged)
	return s.persistLocked(ctx, a), nil
}

// StartTracking starts the countdown towards the user's address. Calling it
// while tracking runs returns the current state.
func (s *DefaultBookingSessionService) StartTracking(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	a, err := s.livePipeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if stage := a.pipeline.Stage(); stage != models.StageTracking {
		return nil, fmt.Errorf("start tracking during %s: %w", stage, ErrStageMismatch)
	}
	if a.tracking != nil {
		return a.snapshotLocked(), nil
	}
	rc := a.pipeline.Context()
	if rc.ChosenVendor == nil {
		return nil, ErrUnknownOffer
	}
	if rc.Location == nil {
		return nil, ErrMissingAddress
	}

	initial := NewTrackingState(ParseEtaMinutes(rc.ChosenVendor.EtaLabel), catalog.VendorsFor(a.serviceID).Start, *rc.Location)
	var sim *TrackingSimulator
	sim = NewTrackingSimulator(s.clk, initial,
		func(models.TrackingState) { s.onTrackingTick(a, sim) },
		func(models.TrackingState) { s.onArrived(a, sim) },
	)
	a.tracking = sim
	s.logger.Info("Tracking started",
		zap.String("sessionID", a.id), zap.String("vendor", rc.ChosenVendor.Name), zap.Int("etaMinutes", initial.InitialEtaMinutes))

	if initial.Arrived {
		if err := s.markArrivedLocked(a); err != nil {
			return nil, err
		}
	} else {
		sim.Start(s.settings.TrackingTick)
	}
	return s.persistLocked(ctx, a), nil
}

func (s *DefaultBookingSessionService) onTrackingTick(a *attempt, sim *TrackingSimulator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != models.SessionActive || a.tracking != sim {
		return
	}
	s.persistLocked(context.Background(), a)
	s.emit(a, EventTrackingTick)
}

func (s *DefaultBookingSessionService) onArrived(a *attempt, sim *TrackingSimulator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != models.SessionActive || a.tracking != sim || a.pipeline.Stage() != models.StageTracking {
		return
	}
	if err := s.markArrivedLocked(a); err != nil {
		s.logger.Warn("Could not record arrival", zap.String("sessionID", a.id), zap.Error(err))
		return
	}
	s.persistLocked(context.Background(), a)
}

func (s *DefaultBookingSessionService) markArrivedLocked(a *attempt) error {
	if _, err := a.pipeline.Apply(MarkArrived{At: s.clk.Now()}); err != nil {
		return err
	}
	s.logger.Info("Vendor arrived", zap.String("sessionID", a.id))
	s.emit(a, EventTrackingArrived)
	return nil
}

// LeaveFeedback rates the visit; it completes the attempt.
func (s *DefaultBookingSessionService) LeaveFeedback(ctx context.Context, sessionID string, rating int, comment string) (*models.BookingSession, error) {
	if s.awaitingArrival(ctx, sessionID) {
		return nil, ErrTrackingNotArrived
	}
	session, err := s.apply(ctx, sessionID, LeaveFeedback{Rating: rating, Comment: comment})
	if err != nil {
		return nil, err
	}
	if session.Stage == models.StageComplete {
		s.mu.Lock()
		a := s.attempts[sessionID]
		s.mu.Unlock()
		if a != nil {
			s.close(ctx, a, models.SessionComplete, EventCompleted)
			return s.Get(ctx, sessionID)
		}
	}
	return session, nil
}

// Back returns to the previous stage. Timers of the stage being left are
// cleared; data entered there stays reachable through Forward.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if a.pipeline == nil {
		return a.snapshotLocked(), nil
	}
	leaving := a.pipeline.Stage()
	if !a.pipeline.Back() {
		return a.snapshotLocked(), nil
	}
	switch leaving {
	case models.StageVendorDiscovery:
		if a.discovery != nil {
			a.discovery.Cancel()
			a.discovery = nil
		}
	case models.StageTracking:
		if a.tracking != nil {
			a.tracking.Cancel()
			a.tracking = nil
		}
	}
	s.emit(a, EventStageChanged)
	return s.persistLocked(ctx, a), nil
}

// Forward re-enters a stage left with Back.
func (s *DefaultBookingSessionService) Forward(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	a, err := s.livePipeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if !a.pipeline.Forward() {
		return a.snapshotLocked(), nil
	}
	s.emit(a, EventStageChanged)
	return s.persistLocked(ctx, a), nil
}

// Cancel abandons the attempt and clears all of its timers.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, sessionID string) error {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return err
	}
	s.close(ctx, a, models.SessionCancelled, EventCancelled)
	return nil
}

// Get returns the live attempt, or its last stored snapshot once it is closed.
func (s *DefaultBookingSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	if a, err := s.live(ctx, sessionID); err == nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.snapshotLocked(), nil
	}
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	return session, nil
}

// ExpireIdle closes every attempt that has not changed for longer than the
// session TTL. Expired attempts stay readable through the store.
func (s *DefaultBookingSessionService) ExpireIdle(ctx context.Context, now time.Time) int {
	if s.settings.SessionTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	open := make([]*attempt, 0, len(s.attempts))
	for _, a := range s.attempts {
		open = append(open, a)
	}
	s.mu.Unlock()

	expired := 0
	for _, a := range open {
		a.mu.Lock()
		idle := now.Sub(a.updatedAt) > s.settings.SessionTTL
		a.mu.Unlock()
		if idle && s.close(ctx, a, models.SessionExpired, EventExpired) {
			expired++
		}
	}
	return expired
}

// Sweep expires idle attempts as of now. It lets the session sweeper drive
// the service alongside the snapshot store.
func (s *DefaultBookingSessionService) Sweep() int {
	return s.ExpireIdle(context.Background(), s.clk.Now())
}

func (s *DefaultBookingSessionService) GetAvailableServices() []models.ServiceDetails {
	return catalog.ListServices()
}

func (s *DefaultBookingSessionService) GetServiceByID(serviceID string) (models.ServiceDetails, bool) {
	return catalog.GetService(serviceID)
}

// apply runs a pipeline action against a live attempt.
func (s *DefaultBookingSessionService) apply(ctx context.Context, sessionID string, action Action) (*models.BookingSession, error) {
	a, err := s.livePipeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.activeLocked(); err != nil {
		return nil, err
	}
	if _, err := a.pipeline.Apply(action); err != nil {
		return nil, err
	}
	s.emit(a, EventStageChanged)
	return s.persistLocked(ctx, a), nil
}

// close stops every timer of a, stores its final snapshot and forgets it.
// It reports false when a was already closed.
func (s *DefaultBookingSessionService) close(ctx context.Context, a *attempt, status, kind string) bool {
	a.mu.Lock()
	if a.status != models.SessionActive {
		a.mu.Unlock()
		return false
	}
	a.status = status
	a.stopTimersLocked()
	s.persistLocked(ctx, a)
	s.emit(a, kind)
	a.mu.Unlock()

	s.mu.Lock()
	delete(s.attempts, a.id)
	if s.activeByUser[a.userID] == a.id {
		delete(s.activeByUser, a.userID)
	}
	s.mu.Unlock()

	s.logger.Info("Booking session closed", zap.String("sessionID", a.id), zap.String("status", status))
	return true
}

// live finds an open attempt. Attempts that were closed but are still in the
// store report ErrSessionClosed.
func (s *DefaultBookingSessionService) live(ctx context.Context, sessionID string) (*attempt, error) {
	s.mu.Lock()
	a, ok := s.attempts[sessionID]
	s.mu.Unlock()
	if ok {
		return a, nil
	}
	if _, err := s.store.Load(ctx, sessionID); err == nil {
		return nil, ErrSessionClosed
	}
	return nil, ErrSessionNotFound
}

// discoveryRunning reports whether a live attempt sits in vendor discovery
// with a simulator that has not finished yet.
func (s *DefaultBookingSessionService) discoveryRunning(ctx context.Context, sessionID string) bool {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stageLocked() == models.StageVendorDiscovery &&
		a.discovery != nil && a.discovery.State().Phase != models.DiscoveryDone
}

// awaitingArrival reports whether a live attempt is tracking a vendor that
// has not arrived, including when tracking was never started.
func (s *DefaultBookingSessionService) awaitingArrival(ctx context.Context, sessionID string) bool {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stageLocked() != models.StageTracking {
		return false
	}
	return a.tracking == nil || !a.tracking.State().Arrived
}

func (s *DefaultBookingSessionService) livePipeline(ctx context.Context, sessionID string) (*attempt, error) {
	a, err := s.live(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	open := a.pipeline == nil
	a.mu.Unlock()
	if open {
		return nil, ErrConversationOpen
	}
	return a, nil
}

// persistLocked stamps, snapshots and stores a. Store failures are logged;
// the live attempt stays authoritative.
func (s *DefaultBookingSessionService) persistLocked(ctx context.Context, a *attempt) *models.BookingSession {
	a.updatedAt = s.clk.Now()
	snap := a.snapshotLocked()
	if err := s.store.Save(ctx, *snap); err != nil {
		s.logger.Warn("Failed to store booking session", zap.String("sessionID", a.id), zap.Error(err))
	}
	return snap
}

func (a *attempt) activeLocked() error {
	if a.status != models.SessionActive {
		return ErrSessionClosed
	}
	return nil
}

func (a *attempt) stopTimersLocked() {
	if a.intro != nil {
		a.intro.Cancel()
	}
	if a.discovery != nil {
		a.discovery.Cancel()
	}
	if a.tracking != nil {
		a.tracking.Cancel()
	}
}

func (a *attempt) stageLocked() models.BookingStage {
	if a.pipeline == nil {
		return models.StageConversation
	}
	return a.pipeline.Stage()
}

func (a *attempt) snapshotLocked() *models.BookingSession {
	session := &models.BookingSession{
		SessionID:    a.id,
		UserID:       a.userID,
		ServiceID:    a.serviceID,
		Status:       a.status,
		Stage:        a.stageLocked(),
		Conversation: a.conversation,
		CreatedAt:    a.createdAt,
		UpdatedAt:    a.updatedAt,
	}
	session.Conversation.Answers = append([]string{}, a.conversation.Answers...)
	if q, ok := CurrentQuestion(a.conversation); ok {
		session.Question = &q
	}
	if summary, ok := SummarizeConversation(a.conversation); ok {
		session.Summary = &summary
	}

	if a.pipeline != nil {
		session.Context = a.pipeline.Context()
		session.History = a.pipeline.History()
		session.Cursor = a.pipeline.Cursor()
	} else {
		session.Context = models.RequestContext{ServiceID: a.serviceID, Answers: []string{}, QuestionLabels: []string{}}
	}
	if a.discovery != nil {
		st := a.discovery.State()
		session.Discovery = &st
	}
	if a.tracking != nil {
		st := a.tracking.State()
		session.Tracking = &st
		session.StatusLabel = StatusLabel(st)
	}
	return session
}

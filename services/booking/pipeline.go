package booking

import (
	"fmt"
	"strings"
	"time"

	"homebook/models"
)

// Stages is the fixed order of the booking pipeline.
var Stages = []models.BookingStage{
	models.StageAddressSelection,
	models.StageVendorDiscovery,
	models.StageVendorSelection,
	models.StageVerification,
	models.StagePayment,
	models.StageTracking,
	models.StageFeedback,
}

// Action is a user or system step that moves the pipeline forward. Apply
// receives a clone it may add to; it must not clear anything already set.
type Action interface {
	Stage() models.BookingStage
	Apply(rc models.RequestContext) (models.RequestContext, error)
}

// SelectAddress sets where the service takes place.
type SelectAddress struct {
	Address  string
	Location models.LatLng
}

func (SelectAddress) Stage() models.BookingStage { return models.StageAddressSelection }

func (a SelectAddress) Apply(rc models.RequestContext) (models.RequestContext, error) {
	addr := strings.TrimSpace(a.Address)
	if addr == "" {
		return rc, ErrMissingAddress
	}
	loc := a.Location
	rc.Address = &addr
	rc.Location = &loc
	return rc, nil
}

// CompleteDiscovery records the offers a discovery run settled on.
type CompleteDiscovery struct {
	Offers []models.VendorOffer
}

func (CompleteDiscovery) Stage() models.BookingStage { return models.StageVendorDiscovery }

func (a CompleteDiscovery) Apply(rc models.RequestContext) (models.RequestContext, error) {
	if len(a.Offers) == 0 {
		return rc, ErrNoOffers
	}
	rc.Offers = append([]models.VendorOffer{}, a.Offers...)
	return rc, nil
}

// ChooseVendor accepts one of the discovered offers by category.
type ChooseVendor struct {
	Category models.OfferCategory
}

func (ChooseVendor) Stage() models.BookingStage { return models.StageVendorSelection }

func (a ChooseVendor) Apply(rc models.RequestContext) (models.RequestContext, error) {
	if rc.ChosenVendor != nil {
		return rc, ErrVendorAlreadyChosen
	}
	for _, offer := range rc.Offers {
		if offer.Category == a.Category {
			chosen := offer
			rc.ChosenVendor = &chosen
			return rc, nil
		}
	}
	return rc, ErrUnknownOffer
}

// Verify confirms the contact number the vendor will call.
type Verify struct {
	Phone string
	At    time.Time
}

func (Verify) Stage() models.BookingStage { return models.StageVerification }

func (a Verify) Apply(rc models.RequestContext) (models.RequestContext, error) {
	phone := strings.TrimSpace(a.Phone)
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 {
		return rc, ErrInvalidPhone
	}
	rc.Verification = &models.Verification{Phone: phone, VerifiedAt: a.At}
	return rc, nil
}

// Pay stores the outcome of the payment step.
type Pay struct {
	Outcome models.PaymentOutcome
}

func (Pay) Stage() models.BookingStage { return models.StagePayment }

func (a Pay) Apply(rc models.RequestContext) (models.RequestContext, error) {
	out := a.Outcome
	rc.Payment = &out
	return rc, nil
}

// MarkArrived closes the tracking stage.
type MarkArrived struct {
	At time.Time
}

func (MarkArrived) Stage() models.BookingStage { return models.StageTracking }

func (a MarkArrived) Apply(rc models.RequestContext) (models.RequestContext, error) {
	at := a.At
	rc.ArrivedAt = &at
	return rc, nil
}

// LeaveFeedback rates the visit and completes the booking.
type LeaveFeedback struct {
	Rating  int
	Comment string
}

func (LeaveFeedback) Stage() models.BookingStage { return models.StageFeedback }

func (a LeaveFeedback) Apply(rc models.RequestContext) (models.RequestContext, error) {
	if a.Rating < 1 || a.Rating > 5 {
		return rc, ErrInvalidRating
	}
	rc.Feedback = &models.Feedback{Rating: a.Rating, Comment: strings.TrimSpace(a.Comment)}
	return rc, nil
}

// Pipeline threads a RequestContext through Stages. snapshots[i] is the
// context on entering stage i; Back and Forward only move the cursor, so
// nothing is lost by navigating. Applying an action at an earlier stage
// starts a new branch from that stage's snapshot.
type Pipeline struct {
	snapshots []models.RequestContext
	cursor    int
}

// NewPipeline starts at the first stage with initial as its context.
func NewPipeline(initial models.RequestContext) *Pipeline {
	return &Pipeline{snapshots: []models.RequestContext{initial.Clone()}}
}

// Stage is the stage waiting for an action, or StageComplete.
func (p *Pipeline) Stage() models.BookingStage {
	if p.cursor >= len(Stages) {
		return models.StageComplete
	}
	return Stages[p.cursor]
}

// Context returns a copy of the context at the cursor.
func (p *Pipeline) Context() models.RequestContext {
	return p.snapshots[p.cursor].Clone()
}

// Cursor is the index of the current stage.
func (p *Pipeline) Cursor() int { return p.cursor }

// History returns copies of all snapshots, including forward ones.
func (p *Pipeline) History() []models.RequestContext {
	out := make([]models.RequestContext, len(p.snapshots))
	for i, s := range p.snapshots {
		out[i] = s.Clone()
	}
	return out
}

// Apply runs action against the current stage and moves to the next one.
func (p *Pipeline) Apply(action Action) (models.RequestContext, error) {
	if stage := p.Stage(); action.Stage() != stage {
		return p.Context(), fmt.Errorf("%s during %s: %w", action.Stage(), stage, ErrStageMismatch)
	}
	next, err := action.Apply(p.snapshots[p.cursor].Clone())
	if err != nil {
		return p.Context(), err
	}
	p.snapshots = append(p.snapshots[:p.cursor+1], next)
	p.cursor++
	return next.Clone(), nil
}

// Back moves to the previous stage. It reports false at the first stage.
func (p *Pipeline) Back() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// Forward re-enters a stage that was visited before Back. It reports false
// when there is nothing ahead.
func (p *Pipeline) Forward() bool {
	if p.cursor+1 >= len(p.snapshots) {
		return false
	}
	p.cursor++
	return true
}

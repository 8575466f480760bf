package models

import "time"

// BookingStage is a step of the booking pipeline.
type BookingStage string

const (
	// StageConversation is reported while the intake questions are open,
	// before the pipeline proper begins.
	StageConversation     BookingStage = "conversation"
	StageAddressSelection BookingStage = "address_selection"
	StageVendorDiscovery  BookingStage = "vendor_discovery"
	StageVendorSelection  BookingStage = "vendor_selection"
	StageVerification     BookingStage = "verification"
	StagePayment          BookingStage = "payment"
	StageTracking         BookingStage = "tracking"
	StageFeedback         BookingStage = "feedback"
	StageComplete         BookingStage = "complete"
)

// BookingSession is the serialisable snapshot of one booking attempt.
type BookingSession struct {
	SessionID    string               `json:"sessionId"`
	UserID       string               `json:"userId"`
	ServiceID    string               `json:"serviceId"`
	Status       string               `json:"status"` // "active", "cancelled", "superseded", "complete", "expired"
	Stage        BookingStage         `json:"stage"`
	Conversation ConversationState    `json:"conversation"`
	Question     *Question            `json:"currentQuestion,omitempty"`
	Summary      *ConversationSummary `json:"summary,omitempty"`
	Context      RequestContext       `json:"context"`
	History      []RequestContext     `json:"history"`
	Cursor       int                  `json:"cursor"`
	Discovery    *DiscoveryState      `json:"discovery,omitempty"`
	Tracking     *TrackingState       `json:"tracking,omitempty"`
	StatusLabel  string               `json:"statusLabel,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

const (
	SessionActive     = "active"
	SessionCancelled  = "cancelled"
	SessionSuperseded = "superseded"
	SessionComplete   = "complete"
	SessionExpired    = "expired"
)

package models

// ConversationPhase is the phase of the intake conversation.
type ConversationPhase string

const (
	PhaseIntro   ConversationPhase = "intro"
	PhaseAsking  ConversationPhase = "asking"
	PhaseSummary ConversationPhase = "summary"
)

// ConversationState is the full state of an intake conversation.
// Phase is Summary exactly when QuestionIndex == TotalQuestions.
type ConversationState struct {
	ServiceID      string            `json:"serviceId"`
	QuestionIndex  int               `json:"questionIndex"`
	TotalQuestions int               `json:"totalQuestions"`
	Answers        []string          `json:"answers"`
	Phase          ConversationPhase `json:"phase"`
	IntroShown     int               `json:"introShown"`
}

// SummaryLine pairs a question label with the answer given.
type SummaryLine struct {
	Label  string `json:"label"`
	Answer string `json:"answer"`
}

// ConversationSummary is the finalized result of a conversation.
type ConversationSummary struct {
	ServiceID string        `json:"serviceId"`
	Lines     []SummaryLine `json:"lines"`
}

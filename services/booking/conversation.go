package booking

import (
	"strings"
	"sync"
	"time"

	"homebook/clock"
	"homebook/models"
	"homebook/services/catalog"
)

// StartConversation opens the intake conversation for serviceID. Unknown ids
// get the generic question list.
func StartConversation(serviceID string) models.ConversationState {
	return models.ConversationState{
		ServiceID:      serviceID,
		QuestionIndex:  0,
		TotalQuestions: len(catalog.QuestionsFor(serviceID)),
		Answers:        []string{},
		Phase:          models.PhaseIntro,
	}
}

// SubmitAnswer records text as the answer to the current question. Chip taps
// and typed text both land here. Blank text, or any submission once the
// summary is reached, returns the state unchanged and advanced == false.
func SubmitAnswer(state models.ConversationState, text string) (models.ConversationState, bool) {
	text = strings.TrimSpace(text)
	if text == "" || state.Phase == models.PhaseSummary || state.QuestionIndex >= state.TotalQuestions {
		return state, false
	}

	next := state
	next.Answers = append(append(make([]string, 0, len(state.Answers)+1), state.Answers...), text)
	next.QuestionIndex = state.QuestionIndex + 1
	if next.QuestionIndex == next.TotalQuestions {
		next.Phase = models.PhaseSummary
	} else {
		next.Phase = models.PhaseAsking
	}
	return next, true
}

// CurrentQuestion returns the question waiting for an answer, if any.
func CurrentQuestion(state models.ConversationState) (models.Question, bool) {
	questions := catalog.QuestionsFor(state.ServiceID)
	if state.Phase == models.PhaseSummary || state.QuestionIndex >= len(questions) {
		return models.Question{}, false
	}
	return questions[state.QuestionIndex], true
}

// SummarizeConversation pairs every question label with its answer. It only
// succeeds once the conversation reached the summary phase.
func SummarizeConversation(state models.ConversationState) (models.ConversationSummary, bool) {
	if state.Phase != models.PhaseSummary {
		return models.ConversationSummary{}, false
	}
	questions := catalog.QuestionsFor(state.ServiceID)
	lines := make([]models.SummaryLine, 0, len(state.Answers))
	for i, answer := range state.Answers {
		label := ""
		if i < len(questions) {
			label = questions[i].Label
		}
		lines = append(lines, models.SummaryLine{Label: label, Answer: answer})
	}
	return models.ConversationSummary{ServiceID: state.ServiceID, Lines: lines}, true
}

// IntroRunner reveals the scripted intro lines one at a time, delay apart.
type IntroRunner struct {
	mu        sync.Mutex
	clk       clock.Clock
	delay     time.Duration
	total     int
	shown     int
	stop      clock.CancelFunc
	cancelled bool
	onLine    func(shown int)
}

// NewIntroRunner prepares a runner for total lines. onLine is called with
// the number of lines shown so far after each reveal.
func NewIntroRunner(clk clock.Clock, delay time.Duration, total int, onLine func(shown int)) *IntroRunner {
	return &IntroRunner{clk: clk, delay: delay, total: total, onLine: onLine}
}

// Start schedules the reveals. It is a no-op when there is nothing to show
// or the runner was already started or cancelled.
func (r *IntroRunner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil || r.cancelled || r.total <= 0 {
		return
	}
	r.stop = r.clk.Every(r.delay, r.reveal)
}

func (r *IntroRunner) reveal() {
	r.mu.Lock()
	if r.cancelled || r.shown >= r.total {
		r.mu.Unlock()
		return
	}
	r.shown++
	shown := r.shown
	if shown == r.total && r.stop != nil {
		r.stop()
	}
	cb := r.onLine
	r.mu.Unlock()

	if cb != nil {
		cb(shown)
	}
}

// Shown returns how many intro lines have been revealed.
func (r *IntroRunner) Shown() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}

// Cancel clears the pending reveals.
func (r *IntroRunner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = true
	if r.stop != nil {
		r.stop()
	}
}

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebook/clock"
	"homebook/models"
)

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestConversationReachesSummaryOnce(t *testing.T) {
	st := StartConversation("plumber")
	require.Equal(t, 3, st.TotalQuestions)
	assert.Equal(t, models.PhaseIntro, st.Phase)

	summaries := 0
	for _, answer := range []string{"Leaking pipe", "Kitchen", "A little", "extra"} {
		var advanced bool
		st, advanced = SubmitAnswer(st, answer)
		if advanced && st.Phase == models.PhaseSummary {
			summaries++
		}
	}

	assert.Equal(t, 1, summaries)
	assert.Equal(t, models.PhaseSummary, st.Phase)
	assert.Equal(t, []string{"Leaking pipe", "Kitchen", "A little"}, st.Answers)
	assert.Equal(t, 3, st.QuestionIndex)

	summary, ok := SummarizeConversation(st)
	require.True(t, ok)
	assert.Equal(t, []models.SummaryLine{
		{Label: "Issue", Answer: "Leaking pipe"},
		{Label: "Location", Answer: "Kitchen"},
		{Label: "Severity", Answer: "A little"},
	}, summary.Lines)
}

func TestBlankAnswerLeavesStateUnchanged(t *testing.T) {
	st := StartConversation("plumber")
	st, _ = SubmitAnswer(st, "Clogged drain")

	for _, text := range []string{"", "   ", "\n\t"} {
		next, advanced := SubmitAnswer(st, text)
		assert.False(t, advanced)
		assert.Equal(t, st, next)
	}
}

func TestAnswersAreTrimmedAndNotShared(t *testing.T) {
	first, _ := SubmitAnswer(StartConversation("plumber"), "  Kitchen  ")
	a, _ := SubmitAnswer(first, "one")
	b, _ := SubmitAnswer(first, "two")

	assert.Equal(t, []string{"Kitchen"}, first.Answers)
	assert.Equal(t, "one", a.Answers[1])
	assert.Equal(t, "two", b.Answers[1])
	assert.Equal(t, models.PhaseAsking, a.Phase)
}

func TestUnknownServiceUsesGenericQuestions(t *testing.T) {
	st := StartConversation("zeppelin_repair")
	assert.Equal(t, 3, st.TotalQuestions)

	q, ok := CurrentQuestion(st)
	require.True(t, ok)
	assert.Equal(t, "Task", q.Label)
}

func TestCurrentQuestionFollowsIndex(t *testing.T) {
	st := StartConversation("locksmith")
	q, ok := CurrentQuestion(st)
	require.True(t, ok)
	first := q.Label

	st, _ = SubmitAnswer(st, "Locked out")
	q, ok = CurrentQuestion(st)
	require.True(t, ok)
	assert.NotEqual(t, first, q.Label)

	st, _ = SubmitAnswer(st, "Front door")
	_, ok = CurrentQuestion(st)
	assert.False(t, ok)
	_, ok = SummarizeConversation(StartConversation("locksmith"))
	assert.False(t, ok)
}

func TestIntroRunnerRevealsLinesThenStops(t *testing.T) {
	fc := clock.NewFake(epoch)
	var shown []int
	r := NewIntroRunner(fc, 700*time.Millisecond, 2, func(n int) { shown = append(shown, n) })
	r.Start()

	fc.Advance(699 * time.Millisecond)
	assert.Empty(t, shown)
	fc.Advance(5 * time.Second)

	assert.Equal(t, []int{1, 2}, shown)
	assert.Equal(t, 2, r.Shown())
	assert.Zero(t, fc.Pending())
}

func TestIntroRunnerCancel(t *testing.T) {
	fc := clock.NewFake(epoch)
	calls := 0
	r := NewIntroRunner(fc, 700*time.Millisecond, 3, func(int) { calls++ })
	r.Start()

	fc.Advance(700 * time.Millisecond)
	r.Cancel()
	fc.Advance(5 * time.Second)

	assert.Equal(t, 1, calls)
	assert.Zero(t, fc.Pending())
}

package quizarena

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/state"
)

func quizState(n int) state.State {
	st := state.Initial()
	st.View = state.ViewQuiz
	for i := 0; i < n; i++ {
		st.Quiz = append(st.Quiz, gateway.QuizQuestion{
			ID:            i + 1,
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 0,
			Explanation:   "Because.",
		})
	}
	return st
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answer submits the currently selected option and dismisses the feedback.
func answer(t *testing.T, q *QuizArenaScreen) {
	t.Helper()
	q.Update(enter()) // submit
	q.Update(enter()) // next
}

func TestQuizFlow_AllCorrect(t *testing.T) {
	q := New(quizState(5))

	for i := 0; i < 5; i++ {
		answer(t, q) // first option is always correct in the fixture
	}

	if !q.finished {
		t.Fatal("expected summary after the last question")
	}
	if q.score != 5 {
		t.Errorf("expected score 5, got %d", q.score)
	}
}

func TestQuizFlow_MixedScore(t *testing.T) {
	q := New(quizState(5))

	// Two correct answers, then three wrong ones (select option B first).
	answer(t, q)
	answer(t, q)
	for i := 0; i < 3; i++ {
		q.Update(keyPress('j')) // move to a wrong option
		answer(t, q)
	}

	if q.score != 2 {
		t.Errorf("expected score 2, got %d", q.score)
	}
}

func TestQuizCompletionDispatchedOnce(t *testing.T) {
	q := New(quizState(5))
	for i := 0; i < 5; i++ {
		answer(t, q)
	}

	_, cmd := q.Update(enter())
	if cmd == nil {
		t.Fatal("expected a completion command from the summary")
	}
	msg := cmd()
	done, ok := msg.(state.QuizCompleted)
	if !ok {
		t.Fatalf("expected QuizCompleted, got %T", msg)
	}
	if done.Score != 5 || done.Total != 5 {
		t.Errorf("unexpected completion payload: %+v", done)
	}

	// A second Enter on the summary must not dispatch again.
	_, cmd = q.Update(enter())
	if cmd != nil {
		t.Error("expected no second completion dispatch")
	}
}

func TestQuizFeedbackShowsExplanation(t *testing.T) {
	q := New(quizState(5))
	q.Update(enter()) // submit

	view := q.View(100, 30)
	if !strings.Contains(view, "Because.") {
		t.Error("expected the explanation in the feedback view")
	}
}

func TestQuizLetterShortcuts(t *testing.T) {
	q := New(quizState(5))

	q.Update(keyPress('c'))
	if q.choice.Selected != 2 {
		t.Errorf("expected option C selected, got %d", q.choice.Selected)
	}
}

func TestEmptyQuizCompletesImmediately(t *testing.T) {
	st := state.Initial()
	st.View = state.ViewQuiz
	q := New(st)

	_, cmd := q.Update(enter())
	if cmd == nil {
		t.Fatal("expected completion command for an empty quiz")
	}
	done, ok := cmd().(state.QuizCompleted)
	if !ok || done.Total != 0 {
		t.Errorf("expected zero-total completion, got %#v", done)
	}
}

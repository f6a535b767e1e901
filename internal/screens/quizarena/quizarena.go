package quizarena

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/screen"
	"github.com/ethiolearn/ethiolearn/internal/state"
	"github.com/ethiolearn/ethiolearn/internal/ui/components"
	"github.com/ethiolearn/ethiolearn/internal/ui/layout"
	"github.com/ethiolearn/ethiolearn/internal/ui/theme"
)

// QuizArenaScreen runs one quiz from first question to summary. The score
// is dispatched exactly once, when the student leaves the summary.
type QuizArenaScreen struct {
	st        state.State
	questions []gateway.QuizQuestion

	index    int
	score    int
	choice   components.MultiChoice
	finished bool
	reported bool
}

var _ screen.Screen = (*QuizArenaScreen)(nil)
var _ screen.KeyHintProvider = (*QuizArenaScreen)(nil)

// New creates the quiz screen for the questions held in the snapshot.
func New(st state.State) *QuizArenaScreen {
	q := &QuizArenaScreen{st: st, questions: st.Quiz}
	if len(q.questions) > 0 {
		q.choice = newChoice(q.questions[0])
	}
	return q
}

func newChoice(q gateway.QuizQuestion) components.MultiChoice {
	return components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
}

func (q *QuizArenaScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizArenaScreen) Title() string {
	return i18n.For(q.st.Lang).Quiz
}

func (q *QuizArenaScreen) KeyHints() []layout.KeyHint {
	if q.finished {
		return []layout.KeyHint{
			{Key: "Enter", Description: i18n.For(q.st.Lang).BackToHub},
		}
	}
	if q.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / A-D", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
	}
}

func (q *QuizArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		q.st = msg.State
		return q, nil

	case tea.KeyMsg:
		if len(q.questions) == 0 {
			return q, q.complete()
		}

		if q.finished {
			if msg.String() == "enter" {
				return q, q.complete()
			}
			return q, nil
		}

		if q.choice.Submitted {
			if msg.String() == "enter" {
				q.advance()
			}
			return q, nil
		}

		wasSubmitted := q.choice.Submitted
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if !wasSubmitted && q.choice.Submitted && q.choice.IsCorrect() {
			q.score++
		}
		return q, cmd
	}

	return q, nil
}

// advance moves to the next question or the summary.
func (q *QuizArenaScreen) advance() {
	if q.index+1 >= len(q.questions) {
		q.finished = true
		return
	}
	q.index++
	q.choice = newChoice(q.questions[q.index])
}

// complete dispatches the final score once and hands control back.
func (q *QuizArenaScreen) complete() tea.Cmd {
	if q.reported {
		return nil
	}
	q.reported = true
	score, total := q.score, len(q.questions)
	return func() tea.Msg {
		return state.QuizCompleted{Score: score, Total: total}
	}
}

func (q *QuizArenaScreen) View(width, height int) string {
	str := i18n.For(q.st.Lang)
	cw := width - 4
	if cw > 96 {
		cw = 96
	}

	if len(q.questions) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).
			Foreground(theme.TextDim).Render(str.NoQuiz)
	}

	if q.finished {
		return q.renderSummary(str, cw)
	}

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d", q.index+1, len(q.questions)),
		float64(q.index)/float64(len(q.questions)),
		false, cw)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(q.choice.View())

	if q.choice.Submitted {
		b.WriteString("\n")
		if q.choice.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(str.Correct) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(str.Incorrect) + "\n")
		}
		b.WriteString(components.Panel(str.Explanation,
			lipgloss.NewStyle().Foreground(theme.Text).Render(q.questions[q.index].Explanation), cw))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (q *QuizArenaScreen) renderSummary(str i18n.Strings, cw int) string {
	total := len(q.questions)
	body := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s %d / %d", str.YouScored, q.score, total)) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("+%d XP", q.score*100))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		components.Panel(str.QuizComplete, body, cw))
}

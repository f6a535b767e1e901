package dashboard

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ethiolearn/ethiolearn/internal/catalog"
	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/screen"
	"github.com/ethiolearn/ethiolearn/internal/state"
	"github.com/ethiolearn/ethiolearn/internal/ui/components"
	"github.com/ethiolearn/ethiolearn/internal/ui/layout"
	"github.com/ethiolearn/ethiolearn/internal/ui/theme"
)

// phase tracks the study-plan section's sub-state.
type phase int

const (
	phaseIdle phase = iota
	phaseForm
	phaseGenerating
	phaseFailed
)

// DashboardScreen shows the student's stats, the exam countdown, and the
// AI-generated study plan.
type DashboardScreen struct {
	svc   *gateway.Service
	st    state.State
	phase phase

	goalsInput components.TextInput
	weakInput  components.TextInput
	focusWeak  bool

	selectedTask int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.InputCapturer = (*DashboardScreen)(nil)

type planReadyMsg struct {
	goals     string
	weakAreas []string
	tasks     []gateway.StudyTask
}

// New creates the dashboard screen from the current session snapshot.
func New(svc *gateway.Service, st state.State) *DashboardScreen {
	d := &DashboardScreen{
		svc:        svc,
		st:         st,
		goalsInput: components.NewTextInput("", 120),
		weakInput:  components.NewTextInput("", 120),
	}
	str := i18n.For(st.Lang)
	d.goalsInput.Model.Placeholder = str.GoalsHint
	d.weakInput.Model.Placeholder = str.WeakAreasHint
	d.weakInput.Blur()
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return i18n.For(d.st.Lang).Dashboard
}

func (d *DashboardScreen) CapturesInput() bool {
	return d.phase == phaseForm
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseGenerating:
		return nil
	}
	if len(d.st.Plan.Tasks) > 0 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select task"},
			{Key: "Enter", Description: "Toggle done"},
			{Key: "P", Description: "New plan"},
		}
	}
	return []layout.KeyHint{
		{Key: "P", Description: "Create plan"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		d.st = msg.State
		if n := len(d.st.Plan.Tasks); n > 0 && d.selectedTask >= n {
			d.selectedTask = n - 1
		}
		return d, nil

	case planReadyMsg:
		if len(msg.tasks) == 0 {
			d.phase = phaseFailed
			return d, nil
		}
		d.phase = phaseIdle
		d.selectedTask = 0
		return d, dispatch(state.PlanGenerated{
			Goals:     msg.goals,
			WeakAreas: msg.weakAreas,
			Tasks:     msg.tasks,
		})

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.phase == phaseForm {
		return d.updateForm(msg)
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if d.phase == phaseForm {
		switch msg.String() {
		case "esc":
			d.phase = phaseIdle
			return d, nil
		case "tab", "shift+tab":
			d.focusWeak = !d.focusWeak
			if d.focusWeak {
				d.goalsInput.Blur()
				return d, d.weakInput.Focus()
			}
			d.weakInput.Blur()
			return d, d.goalsInput.Focus()
		case "enter":
			return d.submitForm()
		}
		return d.updateForm(msg)
	}

	if d.phase == phaseGenerating {
		return d, nil
	}

	switch msg.String() {
	case "p":
		d.phase = phaseForm
		d.focusWeak = false
		d.goalsInput.Reset()
		d.weakInput.Reset()
		d.weakInput.Blur()
		return d, d.goalsInput.Focus()
	case "up", "k":
		if d.selectedTask > 0 {
			d.selectedTask--
		}
	case "down", "j":
		if d.selectedTask < len(d.st.Plan.Tasks)-1 {
			d.selectedTask++
		}
	case "enter", " ", "space":
		if d.selectedTask < len(d.st.Plan.Tasks) {
			id := d.st.Plan.Tasks[d.selectedTask].ID
			return d, dispatch(state.TaskToggled{ID: id})
		}
	}
	return d, nil
}

func (d *DashboardScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if d.focusWeak {
		d.weakInput, cmd = d.weakInput.Update(msg)
	} else {
		d.goalsInput, cmd = d.goalsInput.Update(msg)
	}
	return d, cmd
}

func (d *DashboardScreen) submitForm() (screen.Screen, tea.Cmd) {
	goals := strings.TrimSpace(d.goalsInput.Value())
	if goals == "" {
		return d, nil
	}
	weakAreas := splitAreas(d.weakInput.Value())

	d.phase = phaseGenerating
	svc, lang := d.svc, d.st.Lang
	return d, func() tea.Msg {
		tasks := svc.GenerateStudyPlan(context.Background(), goals, weakAreas, lang)
		return planReadyMsg{goals: goals, weakAreas: weakAreas, tasks: tasks}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	str := i18n.For(d.st.Lang)
	cw := width - 4
	if cw > 96 {
		cw = 96
	}

	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  "+str.Welcome))

	sections = append(sections, d.renderStats(str, cw))
	sections = append(sections, d.renderCountdown(str, cw))

	sections = append(sections, components.Panel("",
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("“"+str.DailyQuote+"”"), cw))

	sections = append(sections, d.renderPlan(str, cw))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (d *DashboardScreen) renderStats(str i18n.Strings, cw int) string {
	s := d.st.Stats
	cardWidth := cw/4 - 1
	if cardWidth < 14 {
		cardWidth = 14
	}
	return components.CardRow(
		components.StatCard{Icon: "🔥", Label: str.Streak, Value: fmt.Sprintf("%d %s", s.Streak, str.Days), Width: cardWidth},
		components.StatCard{Icon: "⚡", Label: str.XP, Value: fmt.Sprintf("%d", s.XP), Width: cardWidth},
		components.StatCard{Icon: "🏅", Label: str.Level, Value: fmt.Sprintf("%d", s.Level), Width: cardWidth},
		components.StatCard{Icon: "✅", Label: str.Quiz, Value: fmt.Sprintf("%d", s.QuestionsAnswered), Width: cardWidth},
	)
}

func (d *DashboardScreen) renderCountdown(str i18n.Strings, cw int) string {
	days := daysUntilExam(time.Now())
	line := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d %s", days, str.Days))
	return components.Panel(str.ExamCountdown, line, cw)
}

func (d *DashboardScreen) renderPlan(str i18n.Strings, cw int) string {
	switch d.phase {
	case phaseForm:
		form := lipgloss.NewStyle().Foreground(theme.Text).Render(str.Goals) + "\n" +
			d.goalsInput.View() + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(str.WeakAreas) + "\n" +
			d.weakInput.View()
		return components.Panel(str.CreatePlan, form, cw)

	case phaseGenerating:
		return components.Panel(str.YourPlan,
			lipgloss.NewStyle().Foreground(theme.Info).Render(str.Loading), cw)

	case phaseFailed:
		body := lipgloss.NewStyle().Foreground(theme.Error).Render(str.PlanFailed) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("[P] "+str.TryAgain)
		return components.Panel(str.YourPlan, body, cw)
	}

	if len(d.st.Plan.Tasks) == 0 {
		body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(str.NoPlan) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Primary).Render("[P] "+str.CreatePlan)
		return components.Panel(str.YourPlan, body, cw)
	}

	var b strings.Builder
	for i, t := range d.st.Plan.Tasks {
		check := "☐"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if t.IsCompleted {
			check = "☑"
			style = lipgloss.NewStyle().Foreground(theme.Success).Strikethrough(true)
		}
		cursor := "  "
		if i == d.selectedTask {
			cursor = "▸ "
			style = style.Bold(true)
		}
		subjectName := t.SubjectID
		if subj, ok := catalog.ByID(t.SubjectID); ok {
			subjectName = subj.Icon + " " + subj.Name(d.st.Lang)
		}
		line := fmt.Sprintf("%s%s %s  (%s, %d min)", cursor, check, t.Title, subjectName, t.DurationMinutes)
		b.WriteString(style.Render(line) + "\n")
	}
	return components.Panel(str.YourPlan, strings.TrimRight(b.String(), "\n"), cw)
}

// daysUntilExam counts days to the national exam date. The date can be
// overridden with ETHIOLEARN_EXAM_DATE (YYYY-MM-DD); otherwise the next
// June 1st is assumed.
func daysUntilExam(now time.Time) int {
	exam := time.Date(now.Year(), time.June, 1, 0, 0, 0, 0, now.Location())
	if !exam.After(now) {
		exam = exam.AddDate(1, 0, 0)
	}
	if v := os.Getenv("ETHIOLEARN_EXAM_DATE"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			exam = t
		}
	}
	days := int(exam.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

func splitAreas(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '፣' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dispatch(a state.Action) tea.Cmd {
	return func() tea.Msg { return a }
}

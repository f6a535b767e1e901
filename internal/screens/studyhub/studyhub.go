package studyhub

import (
	"context"
	"strings"

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

// StudyHubScreen lists the subject catalog and starts AI quizzes.
type StudyHubScreen struct {
	svc *gateway.Service
	st  state.State

	menu       components.Menu
	generating bool
	subject    string
	failed     bool
}

var _ screen.Screen = (*StudyHubScreen)(nil)
var _ screen.KeyHintProvider = (*StudyHubScreen)(nil)

type quizReadyMsg struct {
	questions []gateway.QuizQuestion
}

// New creates the study hub screen from the current session snapshot.
func New(svc *gateway.Service, st state.State) *StudyHubScreen {
	h := &StudyHubScreen{svc: svc, st: st}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *StudyHubScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, len(catalog.Subjects))
	for i, subj := range catalog.Subjects {
		subj := subj
		items[i] = components.MenuItem{
			Label: subj.Icon + "  " + subj.Name(h.st.Lang),
			Action: func() tea.Cmd {
				return h.startQuiz(subj)
			},
		}
	}
	return items
}

func (h *StudyHubScreen) startQuiz(subj catalog.Subject) tea.Cmd {
	if h.generating {
		return nil
	}
	h.generating = true
	h.failed = false
	h.subject = subj.Name(h.st.Lang)

	svc := h.svc
	name := subj.NameEn // prompts always name the subject in English
	lang := h.st.Lang
	return func() tea.Msg {
		questions := svc.GenerateQuiz(context.Background(), name, lang)
		return quizReadyMsg{questions: questions}
	}
}

func (h *StudyHubScreen) Init() tea.Cmd {
	return nil
}

func (h *StudyHubScreen) Title() string {
	return i18n.For(h.st.Lang).StudyHub
}

func (h *StudyHubScreen) KeyHints() []layout.KeyHint {
	if h.generating {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: i18n.For(h.st.Lang).StartQuiz},
	}
}

func (h *StudyHubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		h.st = msg.State
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		h.menu.Selected = selected
		return h, nil

	case quizReadyMsg:
		h.generating = false
		if len(msg.questions) == 0 {
			h.failed = true
			return h, nil
		}
		return h, func() tea.Msg {
			return state.QuizLoaded{Questions: msg.questions}
		}

	case tea.KeyMsg:
		if h.generating {
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *StudyHubScreen) View(width, height int) string {
	str := i18n.For(h.st.Lang)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("  "+str.SelectSubject) + "\n\n")

	if h.generating {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Info).
			Render("  " + str.Loading + "  (" + h.subject + ")"))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	b.WriteString(h.menu.View())

	if h.failed {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).
			Render("  "+str.NoQuiz))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/router"
	"github.com/ethiolearn/ethiolearn/internal/screen"
	"github.com/ethiolearn/ethiolearn/internal/screens/analyzer"
	"github.com/ethiolearn/ethiolearn/internal/screens/dashboard"
	"github.com/ethiolearn/ethiolearn/internal/screens/quizarena"
	"github.com/ethiolearn/ethiolearn/internal/screens/studyhub"
	"github.com/ethiolearn/ethiolearn/internal/screens/tutorchat"
	"github.com/ethiolearn/ethiolearn/internal/state"
	"github.com/ethiolearn/ethiolearn/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the session state and the
// screen router: screens dispatch state.Action messages, the model reduces
// them, and either broadcasts the new snapshot or switches screens when the
// active view changed.
type AppModel struct {
	router *router.Router
	svc    *gateway.Service
	state  state.State
	width  int
	height int
}

// newAppModel creates a new AppModel on the dashboard.
func newAppModel(svc *gateway.Service) AppModel {
	st := state.Initial()
	m := AppModel{
		svc:   svc,
		state: st,
	}
	m.router = router.New(m.screenFor(st.View))
	return m
}

// screenFor builds the screen for a top-level view from the current state.
func (m *AppModel) screenFor(v state.View) screen.Screen {
	switch v {
	case state.ViewStudyHub:
		return studyhub.New(m.svc, m.state)
	case state.ViewQuiz:
		return quizarena.New(m.state)
	case state.ViewTutor:
		return tutorchat.New(m.svc, m.state)
	case state.ViewAnalyzer:
		return analyzer.New(m.svc, m.state)
	default:
		return dashboard.New(m.svc, m.state)
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case state.Action:
		return m.applyAction(msg)

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// applyAction reduces one action. A view change rebuilds the screen stack;
// anything else broadcasts the fresh snapshot to the active screen.
func (m AppModel) applyAction(a state.Action) (tea.Model, tea.Cmd) {
	prev := m.state
	m.state = state.Reduce(prev, a)

	if m.state.View != prev.View {
		cmd := m.router.Switch(m.screenFor(m.state.View))
		return m, cmd
	}

	cmd := m.router.Update(state.ChangedMsg{State: m.state})
	return m, cmd
}

// handleGlobalKey handles app-wide shortcuts. Number keys and the language
// toggle are suppressed while the active screen holds a focused text input.
func (m *AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return tea.Quit, true
	}

	capturing := false
	if ic, ok := m.router.Active().(screen.InputCapturer); ok {
		capturing = ic.CapturesInput()
	}

	if key == "ctrl+l" {
		return dispatch(state.ToggleLanguage{}), true
	}

	if capturing {
		return nil, false
	}

	switch key {
	case "1":
		return dispatch(state.SwitchView{View: state.ViewDashboard}), true
	case "2":
		return dispatch(state.SwitchView{View: state.ViewStudyHub}), true
	case "3":
		return dispatch(state.SwitchView{View: state.ViewTutor}), true
	case "4":
		return dispatch(state.SwitchView{View: state.ViewAnalyzer}), true
	case "esc":
		if m.router.Depth() > 1 {
			return func() tea.Msg { return router.PopScreenMsg{} }, true
		}
		if m.state.View == state.ViewQuiz {
			return dispatch(state.SwitchView{View: state.ViewStudyHub}), true
		}
		if m.state.View != state.ViewDashboard {
			return dispatch(state.SwitchView{View: state.ViewDashboard}), true
		}
		return nil, true
	}

	return nil, false
}

func dispatch(a state.Action) tea.Cmd {
	return func() tea.Msg { return a }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.state.Stats.XP, m.state.Stats.Streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints merges the screen's own hints with the global navigation row.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}

	str := i18n.For(m.state.Lang)
	hints = append(hints,
		layout.KeyHint{Key: "1-4", Description: str.Dashboard + "/" + str.StudyHub + "/" + str.AITutor + "/" + str.Analyzer},
		layout.KeyHint{Key: "Ctrl+L", Description: m.state.Lang.Toggle().Name()},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

// Run builds the model and starts the Bubble Tea program.
func Run(svc *gateway.Service) error {
	p := tea.NewProgram(newAppModel(svc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

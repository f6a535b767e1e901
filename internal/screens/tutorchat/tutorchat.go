package tutorchat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/llm"
	"github.com/ethiolearn/ethiolearn/internal/screen"
	"github.com/ethiolearn/ethiolearn/internal/state"
	"github.com/ethiolearn/ethiolearn/internal/ui/components"
	"github.com/ethiolearn/ethiolearn/internal/ui/layout"
	"github.com/ethiolearn/ethiolearn/internal/ui/theme"
)

// TutorChatScreen is the free-form AI tutor conversation. The transcript
// lives on the screen for the session; the backend holds no state, so the
// whole history is resent with every message.
type TutorChatScreen struct {
	svc *gateway.Service
	st  state.State

	transcript []gateway.ChatTurn
	input      components.TextInput
	awaiting   bool
}

var _ screen.Screen = (*TutorChatScreen)(nil)
var _ screen.KeyHintProvider = (*TutorChatScreen)(nil)
var _ screen.InputCapturer = (*TutorChatScreen)(nil)

type replyMsg struct {
	text string
}

// New creates the tutor screen with the greeting already in the transcript.
func New(svc *gateway.Service, st state.State) *TutorChatScreen {
	str := i18n.For(st.Lang)
	t := &TutorChatScreen{
		svc: svc,
		st:  st,
		transcript: []gateway.ChatTurn{
			{Role: llm.RoleAssistant, Text: str.Greeting},
		},
		input: components.NewTextInput(str.TypeMessage, 500),
	}
	return t
}

func (t *TutorChatScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TutorChatScreen) Title() string {
	return i18n.For(t.st.Lang).AITutor
}

func (t *TutorChatScreen) CapturesInput() bool {
	return true
}

func (t *TutorChatScreen) KeyHints() []layout.KeyHint {
	if t.awaiting {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.For(t.st.Lang).Send},
	}
}

func (t *TutorChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		t.st = msg.State
		return t, nil

	case replyMsg:
		t.awaiting = false
		t.transcript = append(t.transcript, gateway.ChatTurn{
			Role: llm.RoleAssistant,
			Text: msg.text,
		})
		return t, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return t, t.send()
		}
	}

	if t.awaiting {
		return t, nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// send appends the user turn and fires the model call. Input is disabled
// until the reply (or the apology) lands.
func (t *TutorChatScreen) send() tea.Cmd {
	if t.awaiting {
		return nil
	}
	text := strings.TrimSpace(t.input.Value())
	if text == "" {
		return nil
	}

	history := make([]gateway.ChatTurn, len(t.transcript))
	copy(history, t.transcript)

	t.transcript = append(t.transcript, gateway.ChatTurn{Role: llm.RoleUser, Text: text})
	t.input.Reset()
	t.awaiting = true

	svc, lang := t.svc, t.st.Lang
	return func() tea.Msg {
		return replyMsg{text: svc.ChatWithTutor(context.Background(), history, text, lang)}
	}
}

func (t *TutorChatScreen) View(width, height int) string {
	str := i18n.For(t.st.Lang)
	cw := width - 4
	if cw > 96 {
		cw = 96
	}
	bubbleWidth := cw * 3 / 4

	userStyle := lipgloss.NewStyle().
		Width(bubbleWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text)
	tutorStyle := lipgloss.NewStyle().
		Width(bubbleWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)

	var lines []string
	for _, turn := range t.transcript {
		if turn.Role == llm.RoleUser {
			bubble := userStyle.Render(turn.Text)
			lines = append(lines, lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(bubble))
		} else {
			lines = append(lines, tutorStyle.Render("🎓 "+turn.Text))
		}
	}

	if t.awaiting {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Info).Render(str.Loading))
	}

	conversation := strings.Join(lines, "\n")

	// Keep the newest turns visible in the space above the input line.
	visible := height - 3
	if visible > 0 {
		rows := strings.Split(conversation, "\n")
		if len(rows) > visible {
			rows = rows[len(rows)-visible:]
		}
		conversation = strings.Join(rows, "\n")
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(
		conversation + "\n\n" + t.input.View())
}

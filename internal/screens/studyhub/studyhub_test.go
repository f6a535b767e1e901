package studyhub

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ethiolearn/ethiolearn/internal/catalog"
	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/llm"
	"github.com/ethiolearn/ethiolearn/internal/state"
)

func newTestScreen(responses ...llm.MockResponse) (*StudyHubScreen, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	svc := gateway.New(mock, gateway.DefaultConfig())
	return New(svc, state.Initial()), mock
}

func validQuizJSON(count int) json.RawMessage {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"id":%d,"question":"Question %d?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"Because."}`, i+1, i+1)
	}
	b.WriteString("]")
	return json.RawMessage(b.String())
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestMenuListsAllSubjects(t *testing.T) {
	h, _ := newTestScreen()
	view := h.View(100, 40)
	for _, subj := range catalog.Subjects {
		if !strings.Contains(view, subj.NameEn) {
			t.Errorf("expected %q in the menu", subj.NameEn)
		}
	}
}

func TestStartQuizDispatchesQuizLoaded(t *testing.T) {
	h, mock := newTestScreen(llm.MockResponse{Content: validQuizJSON(5)})

	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !h.generating {
		t.Fatal("expected generating state")
	}

	_, loadCmd := h.Update(cmd())
	if loadCmd == nil {
		t.Fatal("expected a QuizLoaded dispatch")
	}
	action, ok := loadCmd().(state.QuizLoaded)
	if !ok {
		t.Fatalf("expected QuizLoaded, got %T", loadCmd())
	}
	if len(action.Questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(action.Questions))
	}
	if h.generating {
		t.Error("expected generating to be cleared")
	}

	req, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a provider call")
	}
	if !strings.Contains(req.Messages[0].Text, catalog.Subjects[0].NameEn) {
		t.Errorf("expected the subject name in the prompt, got %q", req.Messages[0].Text)
	}
}

func TestGenerationFailureShowsMessage(t *testing.T) {
	h, _ := newTestScreen() // empty mock queue fails the call

	_, cmd := h.Update(enter())
	_, loadCmd := h.Update(cmd())
	if loadCmd != nil {
		t.Error("expected no dispatch on failure")
	}
	if !h.failed {
		t.Fatal("expected failed state")
	}

	view := h.View(100, 40)
	if !strings.Contains(view, i18n.For(i18n.English).NoQuiz) {
		t.Error("expected the failure message in the view")
	}
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	h, mock := newTestScreen(llm.MockResponse{Content: validQuizJSON(5)})

	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a generation command")
	}

	if _, second := h.Update(enter()); second != nil {
		t.Error("expected keys to be ignored while generating")
	}
	_, _ = h.Update(cmd())
	if got := mock.CallCount(); got != 1 {
		t.Errorf("expected exactly one provider call, got %d", got)
	}
}

func TestLanguageChangePreservesSelection(t *testing.T) {
	h, _ := newTestScreen()

	h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if h.menu.Selected != 2 {
		t.Fatalf("expected selection 2, got %d", h.menu.Selected)
	}

	st := state.Initial()
	st.Lang = i18n.Amharic
	h.Update(state.ChangedMsg{State: st})

	if h.menu.Selected != 2 {
		t.Errorf("expected selection preserved, got %d", h.menu.Selected)
	}
	view := h.View(100, 40)
	if !strings.Contains(view, "ሒሳብ") {
		t.Error("expected Amharic subject names after the language change")
	}
}

package analyzer

import (
	"context"
	"fmt"
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

// phase tracks the analyzer's sub-state.
type phase int

const (
	phaseInput phase = iota
	phaseAnalyzing
	phaseResult
	phaseFailed
)

// AnalyzerScreen predicts the source and difficulty of a pasted exam
// question.
type AnalyzerScreen struct {
	svc *gateway.Service
	st  state.State

	input  components.TextInput
	phase  phase
	result *gateway.AnalysisResult
}

var _ screen.Screen = (*AnalyzerScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzerScreen)(nil)
var _ screen.InputCapturer = (*AnalyzerScreen)(nil)

type analysisDoneMsg struct {
	result *gateway.AnalysisResult
}

// New creates the analyzer screen.
func New(svc *gateway.Service, st state.State) *AnalyzerScreen {
	str := i18n.For(st.Lang)
	return &AnalyzerScreen{
		svc:   svc,
		st:    st,
		input: components.NewTextInput(str.UploadQuestion, 1000),
	}
}

func (a *AnalyzerScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AnalyzerScreen) Title() string {
	return i18n.For(a.st.Lang).Analyzer
}

func (a *AnalyzerScreen) CapturesInput() bool {
	return a.phase == phaseInput || a.phase == phaseFailed
}

func (a *AnalyzerScreen) KeyHints() []layout.KeyHint {
	str := i18n.For(a.st.Lang)
	switch a.phase {
	case phaseAnalyzing:
		return nil
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: str.TryAgain},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: str.AnalyzeBtn},
		{Key: "Ctrl+S", Description: str.LoadSample},
	}
}

func (a *AnalyzerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		a.st = msg.State
		return a, nil

	case analysisDoneMsg:
		if msg.result == nil {
			a.phase = phaseFailed
			return a, nil
		}
		a.result = msg.result
		a.phase = phaseResult
		return a, nil

	case tea.KeyMsg:
		switch a.phase {
		case phaseAnalyzing:
			return a, nil
		case phaseResult:
			if msg.String() == "enter" {
				a.phase = phaseInput
				a.result = nil
				a.input.Reset()
				return a, a.input.Focus()
			}
			return a, nil
		}

		switch msg.String() {
		case "enter":
			return a, a.analyze()
		case "ctrl+s":
			a.input.Model.SetValue(catalog.SampleQuestion)
			return a, nil
		}
	}

	if a.phase == phaseInput || a.phase == phaseFailed {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *AnalyzerScreen) analyze() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		return nil
	}
	a.phase = phaseAnalyzing

	svc, lang := a.svc, a.st.Lang
	return func() tea.Msg {
		return analysisDoneMsg{result: svc.AnalyzeQuestion(context.Background(), text, lang)}
	}
}

func (a *AnalyzerScreen) View(width, height int) string {
	str := i18n.For(a.st.Lang)
	cw := width - 4
	if cw > 96 {
		cw = 96
	}

	var sections []string

	sections = append(sections, components.Panel(str.UploadQuestion,
		a.input.View(), cw))

	switch a.phase {
	case phaseAnalyzing:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Info).Render("  "+str.Analyzing))

	case phaseFailed:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Error).Render("  "+str.AnalyzeFailed))

	case phaseResult:
		sections = append(sections, a.renderResult(str, cw))

	default:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+str.NoAnalysis))
	}

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  "+str.PDFNote))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (a *AnalyzerScreen) renderResult(str i18n.Strings, cw int) string {
	r := a.result

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(label.Render(str.SourcePrediction+": ") + value.Render(r.Source) + "\n")
	b.WriteString(label.Render(str.Difficulty+": ") +
		difficultyStyle(r.Difficulty).Render(string(r.Difficulty)) + "\n")

	rate := components.NewProgressBar(str.SuccessChance, r.SuccessRate/100, true, cw-4)
	b.WriteString(rate.View() + "\n\n")

	if len(r.Topics) > 0 {
		b.WriteString(label.Render(str.Topics+": ") +
			value.Render(strings.Join(r.Topics, ", ")) + "\n")
	}
	if len(r.SimilarQuestions) > 0 {
		b.WriteString(label.Render(str.SimilarQuestions+":") + "\n")
		for i, q := range r.SimilarQuestions {
			b.WriteString(value.Render(fmt.Sprintf("  %d. %s", i+1, q)) + "\n")
		}
	}
	b.WriteString("\n" + label.Render(str.AIInsight+": ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(r.Explanation))

	return components.Panel("", b.String(), cw)
}

func difficultyStyle(d gateway.Difficulty) lipgloss.Style {
	switch d {
	case gateway.DifficultyEasy:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case gateway.DifficultyMedium:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
}

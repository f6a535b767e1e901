package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/llm"
)

// ApologyReply is the fixed fallback text for tutor chat failures.
// Chat is the one operation whose failure path returns user-visible text
// instead of an empty value: the transcript must always show something.
const ApologyReply = "Sorry, I encountered an error. Please try again."

// Config controls the gateway's request parameters.
type Config struct {
	// QuizQuestionCount is the number of questions requested per quiz.
	// A reply with any other count is rejected wholesale.
	QuizQuestionCount int

	// MaxTokens caps each reply.
	MaxTokens int

	// Temperature for generation operations.
	Temperature float64
}

// DefaultConfig returns the standard gateway parameters.
func DefaultConfig() Config {
	return Config{
		QuizQuestionCount: 5,
		MaxTokens:         4096,
		Temperature:       0.7,
	}
}

// Service owns the model provider and exposes the four operations.
// It is stateless between calls; chat history travels with each request.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates a gateway Service.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// callStructured performs the shared schema-constrained round trip:
// one provider call, schema re-validation (inside the provider), then a
// typed unmarshal. All four operations funnel through here or callText.
func callStructured[T any](ctx context.Context, s *Service, purpose string, req llm.Request) (T, error) {
	var out T

	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return out, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return out, nil
}

// callText performs the shared free-text round trip.
func callText(ctx context.Context, s *Service, purpose string, req llm.Request) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// quizQuestionWire is the model's reply shape for one quiz question.
type quizQuestionWire struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuiz requests a fixed-size multiple-choice quiz for a subject.
// The returned slice is either empty or holds exactly the configured
// question count with every correctAnswer a valid option index. An empty
// slice means "no quiz available", never a zero-question success.
func (s *Service) GenerateQuiz(ctx context.Context, subjectName string, lang i18n.Language) []QuizQuestion {
	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Text: buildQuizPrompt(subjectName, s.cfg.QuizQuestionCount, lang)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	wire, err := callStructured[[]quizQuestionWire](ctx, s, "quiz-gen", req)
	if err != nil {
		return nil
	}
	if err := checkQuizQuestions(wire, s.cfg.QuizQuestionCount); err != nil {
		return nil
	}

	questions := make([]QuizQuestion, len(wire))
	for i, w := range wire {
		questions[i] = QuizQuestion{
			ID:            w.ID,
			Question:      w.Question,
			Options:       w.Options,
			CorrectAnswer: w.CorrectAnswer,
			Explanation:   w.Explanation,
		}
	}
	return questions
}

// ChatWithTutor sends the full prior transcript plus the new message and
// returns the tutor's reply. Any failure, including an empty reply,
// returns ApologyReply; the result is never empty.
func (s *Service) ChatWithTutor(ctx context.Context, history []ChatTurn, message string, lang i18n.Language) string {
	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Text: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Text: message})

	req := llm.Request{
		System:      tutorSystemPrompt(lang),
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	reply, err := callText(ctx, s, "tutor-chat", req)
	if err != nil || reply == "" {
		return ApologyReply
	}
	return reply
}

// analysisWire is the model's reply shape for a question analysis.
type analysisWire struct {
	Source           string   `json:"source"`
	Difficulty       string   `json:"difficulty"`
	SuccessRate      float64  `json:"successRate"`
	SimilarQuestions []string `json:"similarQuestions"`
	Topics           []string `json:"topics"`
	Explanation      string   `json:"explanation"`
}

// AnalyzeQuestion classifies one exam question. The result is either a
// fully-populated report or nil; a partial report is never returned.
func (s *Service) AnalyzeQuestion(ctx context.Context, questionText string, lang i18n.Language) *AnalysisResult {
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Text: buildAnalysisPrompt(questionText, lang)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	wire, err := callStructured[analysisWire](ctx, s, "analysis", req)
	if err != nil {
		return nil
	}
	if err := checkAnalysis(wire); err != nil {
		return nil
	}

	return &AnalysisResult{
		Source:           wire.Source,
		Difficulty:       Difficulty(wire.Difficulty),
		SuccessRate:      wire.SuccessRate,
		SimilarQuestions: wire.SimilarQuestions,
		Topics:           wire.Topics,
		Explanation:      wire.Explanation,
	}
}

// studyTaskWire is the model's reply shape for one study task.
type studyTaskWire struct {
	ID              string `json:"id"`
	SubjectID       string `json:"subjectId"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	IsCompleted     bool   `json:"isCompleted"`
	Type            string `json:"type"`
}

// GenerateStudyPlan requests 3-5 tasks balancing the student's weak areas
// against general progress. Tasks are normalized on the way in: blank IDs
// are backfilled and completion always starts false regardless of what the
// model claims. Any failure returns an empty slice.
func (s *Service) GenerateStudyPlan(ctx context.Context, goals string, weakAreas []string, lang i18n.Language) []StudyTask {
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Text: buildPlanPrompt(goals, weakAreas, lang)},
		},
		Schema:      StudyPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	wire, err := callStructured[[]studyTaskWire](ctx, s, "plan-gen", req)
	if err != nil {
		return nil
	}
	if err := checkStudyTasks(wire); err != nil {
		return nil
	}

	tasks := make([]StudyTask, len(wire))
	for i, w := range wire {
		id := w.ID
		if id == "" {
			id = uuid.New().String()
		}
		tasks[i] = StudyTask{
			ID:              id,
			SubjectID:       w.SubjectID,
			Title:           w.Title,
			DurationMinutes: w.DurationMinutes,
			IsCompleted:     false,
			Type:            TaskType(w.Type),
		}
	}
	return tasks
}

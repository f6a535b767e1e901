package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/ethiolearn/ethiolearn/internal/i18n"
	"github.com/ethiolearn/ethiolearn/internal/llm"
)

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func validQuizJSON(count int) json.RawMessage {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"id": %d,
			"question": "Question %d?",
			"options": ["A", "B", "C", "D"],
			"correctAnswer": %d,
			"explanation": "Because."
		}`, i+1, i+1, i%4)
	}
	return json.RawMessage("[" + strings.Join(items, ",") + "]")
}

func TestGenerateQuiz_Success(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{Content: validQuizJSON(5)})

	questions := svc.GenerateQuiz(context.Background(), "Physics", i18n.English)

	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d: correct answer %d out of range", i, q.CorrectAnswer)
		}
	}

	req, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a provider call")
	}
	if req.Schema == nil || req.Schema.Name != "quiz-questions" {
		t.Error("expected the quiz schema on the request")
	}
	if !strings.Contains(req.Messages[0].Text, "Physics") {
		t.Error("expected the subject in the prompt")
	}
}

func TestGenerateQuiz_ProviderError(t *testing.T) {
	svc, _ := newTestService() // empty queue simulates a dead backend

	questions := svc.GenerateQuiz(context.Background(), "Biology", i18n.English)
	if len(questions) != 0 {
		t.Fatalf("expected empty slice on failure, got %d questions", len(questions))
	}
}

func TestGenerateQuiz_WrongCount(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{Content: validQuizJSON(3)})

	questions := svc.GenerateQuiz(context.Background(), "Chemistry", i18n.English)
	if len(questions) != 0 {
		t.Fatalf("expected rejection of a 3-question reply, got %d questions", len(questions))
	}
}

func TestGenerateQuiz_AnswerIndexOutOfRange(t *testing.T) {
	bad := json.RawMessage(`[
		{"id":1,"question":"Q1?","options":["A","B","C","D"],"correctAnswer":4,"explanation":"e"},
		{"id":2,"question":"Q2?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"e"},
		{"id":3,"question":"Q3?","options":["A","B","C","D"],"correctAnswer":1,"explanation":"e"},
		{"id":4,"question":"Q4?","options":["A","B","C","D"],"correctAnswer":2,"explanation":"e"},
		{"id":5,"question":"Q5?","options":["A","B","C","D"],"correctAnswer":3,"explanation":"e"}
	]`)
	svc, _ := newTestService(llm.MockResponse{Content: bad})

	questions := svc.GenerateQuiz(context.Background(), "Math", i18n.English)
	if len(questions) != 0 {
		t.Fatal("expected wholesale rejection when any answer index is invalid")
	}
}

func TestGenerateQuiz_ExactlyOneCall(t *testing.T) {
	svc, mock := newTestService() // fails immediately

	svc.GenerateQuiz(context.Background(), "History", i18n.English)
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one provider call, got %d", mock.CallCount())
	}
}

func TestChatWithTutor_Success(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{Content: json.RawMessage("Photosynthesis converts light into chemical energy. 🌿")})

	history := []ChatTurn{
		{Role: llm.RoleAssistant, Text: "Hello! How can I help?"},
		{Role: llm.RoleUser, Text: "Tell me about plants."},
		{Role: llm.RoleAssistant, Text: "Plants are producers."},
	}
	reply := svc.ChatWithTutor(context.Background(), history, "What is photosynthesis?", i18n.English)

	if !strings.Contains(reply, "Photosynthesis") {
		t.Errorf("unexpected reply: %q", reply)
	}

	req, _ := mock.LastCall()
	if len(req.Messages) != 4 {
		t.Fatalf("expected full history plus new message (4 turns), got %d", len(req.Messages))
	}
	if req.Messages[3].Text != "What is photosynthesis?" {
		t.Error("expected the new message last")
	}
	if req.Schema != nil {
		t.Error("chat must be free text, not schema constrained")
	}
}

func TestChatWithTutor_FailureReturnsApology(t *testing.T) {
	svc, _ := newTestService()

	reply := svc.ChatWithTutor(context.Background(), nil, "Hello?", i18n.English)
	if reply != ApologyReply {
		t.Errorf("expected apology, got %q", reply)
	}
}

func TestChatWithTutor_EmptyReplyReturnsApology(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{Content: json.RawMessage("   ")})

	reply := svc.ChatWithTutor(context.Background(), nil, "Hello?", i18n.English)
	if reply != ApologyReply {
		t.Errorf("expected apology for blank reply, got %q", reply)
	}
}

func TestChatWithTutor_LanguageInSystemPrompt(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{Content: json.RawMessage("ሰላም!")})

	svc.ChatWithTutor(context.Background(), nil, "ሰላም", i18n.Amharic)

	req, _ := mock.LastCall()
	if !strings.Contains(req.System, "Amharic") {
		t.Error("expected the language in the system instruction")
	}
}

func TestAnalyzeQuestion_Success(t *testing.T) {
	result := json.RawMessage(`{
		"source": "Grade 11 Physics, Unit 2",
		"difficulty": "Medium",
		"successRate": 62.5,
		"similarQuestions": ["A train decelerates from 30 m/s..."],
		"topics": ["Kinematics", "Acceleration"],
		"explanation": "Straightforward application of a = v/t."
	}`)
	svc, _ := newTestService(llm.MockResponse{Content: result})

	report := svc.AnalyzeQuestion(context.Background(), "A car accelerates from rest...", i18n.English)

	if report == nil {
		t.Fatal("expected a report")
	}
	if report.Difficulty != DifficultyMedium {
		t.Errorf("expected Medium, got %q", report.Difficulty)
	}
	if report.SuccessRate != 62.5 {
		t.Errorf("expected 62.5, got %v", report.SuccessRate)
	}
	if len(report.Topics) != 2 {
		t.Errorf("expected 2 topics, got %d", len(report.Topics))
	}
}

func TestAnalyzeQuestion_FailureReturnsNil(t *testing.T) {
	svc, _ := newTestService()

	if report := svc.AnalyzeQuestion(context.Background(), "Some question", i18n.English); report != nil {
		t.Fatal("expected nil on provider failure")
	}
}

func TestAnalyzeQuestion_UnknownDifficultyRejected(t *testing.T) {
	bad := json.RawMessage(`{
		"source": "Grade 10",
		"difficulty": "Trivial",
		"successRate": 90,
		"similarQuestions": [],
		"topics": [],
		"explanation": "e"
	}`)
	svc, _ := newTestService(llm.MockResponse{Content: bad})

	if report := svc.AnalyzeQuestion(context.Background(), "q", i18n.English); report != nil {
		t.Fatal("expected nil for out-of-vocabulary difficulty")
	}
}

func validPlanJSON() json.RawMessage {
	return json.RawMessage(`[
		{"id":"t1","subjectId":"math","title":"Practice calculus","durationMinutes":45,"isCompleted":false,"type":"practice"},
		{"id":"","subjectId":"phys","title":"Read unit 4","durationMinutes":30,"isCompleted":true,"type":"reading"},
		{"id":"t3","subjectId":"bio","title":"Watch cell division video","durationMinutes":20,"isCompleted":false,"type":"video"}
	]`)
}

func TestGenerateStudyPlan_Success(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{Content: validPlanJSON()})

	tasks := svc.GenerateStudyPlan(context.Background(), "pass the national exam", []string{"math", "physics"}, i18n.English)

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	req, _ := mock.LastCall()
	if !strings.Contains(req.Messages[0].Text, "pass the national exam") {
		t.Error("expected the goal in the prompt")
	}
	if !strings.Contains(req.Messages[0].Text, "math, physics") {
		t.Error("expected the weak areas in the prompt")
	}
}

func TestGenerateStudyPlan_Normalization(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{Content: validPlanJSON()})

	tasks := svc.GenerateStudyPlan(context.Background(), "goal", nil, i18n.English)

	for i, task := range tasks {
		if task.ID == "" {
			t.Errorf("task %d: blank ID should have been backfilled", i)
		}
		if task.IsCompleted {
			t.Errorf("task %d: completion must be normalized to false", i)
		}
	}
}

func TestGenerateStudyPlan_FailureReturnsEmpty(t *testing.T) {
	svc, _ := newTestService()

	if tasks := svc.GenerateStudyPlan(context.Background(), "goal", nil, i18n.English); len(tasks) != 0 {
		t.Fatal("expected empty slice on failure")
	}
}

func TestGenerateStudyPlan_TooManyTasksRejected(t *testing.T) {
	items := make([]string, 6)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"t%d","subjectId":"math","title":"Task %d","durationMinutes":30,"isCompleted":false,"type":"quiz"}`, i, i)
	}
	svc, _ := newTestService(llm.MockResponse{Content: json.RawMessage("[" + strings.Join(items, ",") + "]")})

	if tasks := svc.GenerateStudyPlan(context.Background(), "goal", nil, i18n.English); len(tasks) != 0 {
		t.Fatal("expected rejection of a 6-task plan")
	}
}

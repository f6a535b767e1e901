package gateway

import (
	"fmt"
	"testing"
)

func wireQuestions(n int) []quizQuestionWire {
	out := make([]quizQuestionWire, n)
	for i := range out {
		out[i] = quizQuestionWire{
			ID:            i + 1,
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
			Explanation:   "Because.",
		}
	}
	return out
}

func TestCheckQuizQuestions(t *testing.T) {
	if err := checkQuizQuestions(wireQuestions(5), 5); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}

	if err := checkQuizQuestions(wireQuestions(4), 5); err == nil {
		t.Error("expected error for wrong count")
	}

	bad := wireQuestions(5)
	bad[2].CorrectAnswer = 4
	if err := checkQuizQuestions(bad, 5); err == nil {
		t.Error("expected error for out-of-range answer")
	}

	bad = wireQuestions(5)
	bad[0].Options = []string{"A", "B", "C"}
	if err := checkQuizQuestions(bad, 5); err == nil {
		t.Error("expected error for 3 options")
	}

	bad = wireQuestions(5)
	bad[4].Question = ""
	if err := checkQuizQuestions(bad, 5); err == nil {
		t.Error("expected error for empty question")
	}

	bad = wireQuestions(5)
	bad[1].Options[3] = ""
	if err := checkQuizQuestions(bad, 5); err == nil {
		t.Error("expected error for empty option")
	}
}

func TestCheckAnalysis(t *testing.T) {
	good := analysisWire{
		Source:      "Grade 11 Biology, Unit 3",
		Difficulty:  "Hard",
		SuccessRate: 40,
		Explanation: "Requires two-step reasoning.",
	}
	if err := checkAnalysis(good); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}

	bad := good
	bad.Difficulty = "Insane"
	if err := checkAnalysis(bad); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	bad = good
	bad.SuccessRate = 130
	if err := checkAnalysis(bad); err == nil {
		t.Error("expected error for success rate over 100")
	}

	bad = good
	bad.Source = ""
	if err := checkAnalysis(bad); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestCheckStudyTasks(t *testing.T) {
	good := []studyTaskWire{
		{ID: "1", SubjectID: "math", Title: "Practice", DurationMinutes: 30, Type: "practice"},
		{ID: "2", SubjectID: "phys", Title: "Read", DurationMinutes: 20, Type: "reading"},
		{ID: "3", SubjectID: "bio", Title: "Quiz", DurationMinutes: 15, Type: "quiz"},
	}
	if err := checkStudyTasks(good); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}

	if err := checkStudyTasks(good[:2]); err == nil {
		t.Error("expected error for fewer than 3 tasks")
	}

	bad := append([]studyTaskWire{}, good...)
	bad[1].DurationMinutes = 0
	if err := checkStudyTasks(bad); err == nil {
		t.Error("expected error for zero duration")
	}

	bad = append([]studyTaskWire{}, good...)
	bad[2].Type = "meditation"
	if err := checkStudyTasks(bad); err == nil {
		t.Error("expected error for unknown task type")
	}
}

func TestSubjectIDVocabularyMatchesCatalog(t *testing.T) {
	vocab := subjectIDVocabulary()
	if len(vocab) == 0 {
		t.Fatal("expected a non-empty vocabulary")
	}
	seen := map[any]bool{}
	for _, id := range vocab {
		if seen[id] {
			t.Errorf("duplicate subject id %v", id)
		}
		seen[id] = true
	}
}

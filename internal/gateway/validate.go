package gateway

import "fmt"

// Structural checks beyond what the response schema can express. The
// provider already re-validated the JSON shape; these guard the cross-field
// rules (answer index vs. option count, exact quiz size) so no malformed
// question can reach a screen.

func checkQuizQuestions(questions []quizQuestionWire, want int) error {
	if len(questions) != want {
		return fmt.Errorf("expected %d questions, got %d", want, len(questions))
	}
	for i, q := range questions {
		if q.Question == "" {
			return fmt.Errorf("question %d: empty question text", i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d: correct answer %d out of range", i, q.CorrectAnswer)
		}
		for j, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d: option %d is empty", i, j)
			}
		}
	}
	return nil
}

func checkAnalysis(a analysisWire) error {
	if a.Source == "" {
		return fmt.Errorf("empty source")
	}
	switch Difficulty(a.Difficulty) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyNationalExam:
	default:
		return fmt.Errorf("unknown difficulty %q", a.Difficulty)
	}
	if a.SuccessRate < 0 || a.SuccessRate > 100 {
		return fmt.Errorf("success rate %v out of range", a.SuccessRate)
	}
	if a.Explanation == "" {
		return fmt.Errorf("empty explanation")
	}
	return nil
}

func checkStudyTasks(tasks []studyTaskWire) error {
	if len(tasks) < 3 || len(tasks) > 5 {
		return fmt.Errorf("expected 3-5 tasks, got %d", len(tasks))
	}
	for i, t := range tasks {
		if t.Title == "" {
			return fmt.Errorf("task %d: empty title", i)
		}
		if t.DurationMinutes <= 0 {
			return fmt.Errorf("task %d: duration %d must be positive", i, t.DurationMinutes)
		}
		switch TaskType(t.Type) {
		case TaskReading, TaskQuiz, TaskVideo, TaskPractice:
		default:
			return fmt.Errorf("task %d: unknown type %q", i, t.Type)
		}
	}
	return nil
}

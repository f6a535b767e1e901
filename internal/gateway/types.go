// Package gateway mediates every call to the hosted generative-language
// model. Each operation makes exactly one round trip: build prompt and
// schema, invoke the provider, parse, re-check structure, and map any
// failure to the operation's documented fallback value. Callers never see
// an error and never see a partially-populated result.
package gateway

import "github.com/ethiolearn/ethiolearn/internal/llm"

// QuizQuestion is one AI-generated multiple-choice question.
// CorrectAnswer is always a valid index into Options.
type QuizQuestion struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// Difficulty classifies an analyzed exam question.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyMedium       Difficulty = "Medium"
	DifficultyHard         Difficulty = "Hard"
	DifficultyNationalExam Difficulty = "National Exam"
)

// AnalysisResult is the full report for one analyzed question.
// It is either fully populated or not returned at all.
type AnalysisResult struct {
	// Source is the predicted curriculum origin,
	// e.g. "Grade 11 Biology, Unit 3".
	Source string

	Difficulty Difficulty

	// SuccessRate is the simulated student success percentage, 0-100.
	SuccessRate float64

	SimilarQuestions []string
	Topics           []string
	Explanation      string
}

// TaskType categorizes a study task.
type TaskType string

const (
	TaskReading  TaskType = "reading"
	TaskQuiz     TaskType = "quiz"
	TaskVideo    TaskType = "video"
	TaskPractice TaskType = "practice"
)

// StudyTask is one entry of a generated study plan.
type StudyTask struct {
	ID              string
	SubjectID       string
	Title           string
	DurationMinutes int
	IsCompleted     bool
	Type            TaskType
}

// ChatTurn is one prior turn of a tutor conversation, passed explicitly on
// every chat call; the backend holds no conversation state.
type ChatTurn struct {
	Role llm.Role
	Text string
}

package gateway

import (
	"github.com/ethiolearn/ethiolearn/internal/catalog"
	"github.com/ethiolearn/ethiolearn/internal/llm"
)

// QuizSchema constrains quiz generation to an array of question objects.
// The backend enforces it advisorily; the provider re-validates before the
// response is trusted, and validate.go re-checks what JSON Schema cannot
// express (correctAnswer against the actual options length).
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple-choice exam questions with answer key and explanations",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type": "integer",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question text shown to the student",
				},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correctAnswer": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Index of the correct answer (0-3)",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is correct",
				},
			},
			"required":             []any{"id", "question", "options", "correctAnswer", "explanation"},
			"additionalProperties": false,
		},
	},
}

// AnalysisSchema constrains question analysis to a single report object.
var AnalysisSchema = &llm.Schema{
	Name:        "question-analysis",
	Description: "Source, difficulty and success-rate report for one exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"source": map[string]any{
				"type":        "string",
				"description": "Likely curriculum source, e.g. Grade 11 Biology, Unit 3, Page 45",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Easy", "Medium", "Hard", "National Exam"},
			},
			"successRate": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Simulated student success percentage",
			},
			"similarQuestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"source", "difficulty", "successRate", "similarQuestions", "topics", "explanation"},
		"additionalProperties": false,
	},
}

// StudyPlanSchema constrains plan generation to 3-5 task objects whose
// subjectId is drawn from the static subject catalog.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short personalized batch of study tasks",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 3,
		"maxItems": 5,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type": "string",
				},
				"subjectId": map[string]any{
					"type": "string",
					"enum": subjectIDVocabulary(),
				},
				"title": map[string]any{
					"type": "string",
				},
				"durationMinutes": map[string]any{
					"type":    "integer",
					"minimum": 1,
				},
				"isCompleted": map[string]any{
					"type": "boolean",
				},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"reading", "quiz", "video", "practice"},
				},
			},
			"required":             []any{"id", "subjectId", "title", "durationMinutes", "isCompleted", "type"},
			"additionalProperties": false,
		},
	},
}

func subjectIDVocabulary() []any {
	ids := catalog.IDs()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

package gateway

import (
	"fmt"
	"strings"

	"github.com/ethiolearn/ethiolearn/internal/i18n"
)

// Prompt templates mirror the hosted EthioLearn service. Only the subject,
// goals, weak areas, question text, history, and output language vary.

const quizSystemPrompt = "You are an expert Ethiopian National Exam creator."

func buildQuizPrompt(subject string, count int, lang i18n.Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple choice questions for Grade 12 %s.\n", count, subject)
	b.WriteString("The questions should be challenging and relevant to the Ethiopian National Exam curriculum.\n")
	fmt.Fprintf(&b, "Language: %s.\n", lang.Name())
	if lang == i18n.Amharic {
		b.WriteString("If Amharic, ensure the text is correctly encoded.")
	}
	return b.String()
}

func tutorSystemPrompt(lang i18n.Language) string {
	var b strings.Builder
	b.WriteString("You are EthioLearn AI, a friendly and knowledgeable tutor for Ethiopian students (Grades 1-12).\n")
	b.WriteString("You explain concepts clearly, referencing standard Ethiopian textbooks where possible.\n")
	fmt.Fprintf(&b, "Current Language: %s.\n", lang.Name())
	b.WriteString("Keep responses concise but helpful. Use emojis occasionally to be friendly.")
	return b.String()
}

func buildAnalysisPrompt(questionText string, lang i18n.Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this exam question: %q.\n", questionText)
	b.WriteString("Provide the likely source from the Ethiopian curriculum, estimate difficulty, simulate a student success rate, and list similar questions.\n")
	fmt.Fprintf(&b, "Language: %s.", lang.Name())
	return b.String()
}

func buildPlanPrompt(goals string, weakAreas []string, lang i18n.Language) string {
	var b strings.Builder
	b.WriteString("Create a personalized daily study plan (3-5 tasks) for an Ethiopian student.\n")
	fmt.Fprintf(&b, "Goal: %s\n", goals)
	fmt.Fprintf(&b, "Weak Areas: %s\n", strings.Join(weakAreas, ", "))
	fmt.Fprintf(&b, "Language: %s.\n", lang.Name())
	b.WriteString("Focus on helping them improve their weak areas while maintaining general progress.")
	return b.String()
}

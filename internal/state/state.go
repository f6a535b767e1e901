// Package state holds the application's shared session state and the pure
// reducer that advances it. Screens never mutate state directly: they emit
// action messages, the app applies them through Reduce, and the updated
// snapshot is broadcast back to the active screen.
package state

import (
	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
)

// View identifies one of the five top-level screens.
type View int

const (
	ViewDashboard View = iota
	ViewStudyHub
	ViewQuiz
	ViewTutor
	ViewAnalyzer
)

// String returns the stable name used in logs and key hints.
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewStudyHub:
		return "study-hub"
	case ViewQuiz:
		return "quiz"
	case ViewTutor:
		return "tutor"
	case ViewAnalyzer:
		return "analyzer"
	default:
		return "unknown"
	}
}

// UserStats is the gamification counters shown on the dashboard.
type UserStats struct {
	Streak            int
	XP                int
	Level             int
	StudyMinutes      int
	QuestionsAnswered int
}

// Plan is the student's current study plan. Nil Tasks means no plan has
// been generated this session.
type Plan struct {
	Goals     string
	WeakAreas []string
	Tasks     []gateway.StudyTask
}

// State is the full session snapshot. It is a value type: Reduce returns a
// new copy and never mutates its input, so stale snapshots held by screens
// stay internally consistent.
type State struct {
	View  View
	Lang  i18n.Language
	Stats UserStats
	Plan  Plan
	Quiz  []gateway.QuizQuestion
}

// Initial returns the session starting state. The stats seed matches the
// hosted app's demo account so the dashboard is never empty.
func Initial() State {
	return State{
		View: ViewDashboard,
		Lang: i18n.English,
		Stats: UserStats{
			Streak:            12,
			XP:                2450,
			Level:             5,
			StudyMinutes:      420,
			QuestionsAnswered: 85,
		},
	}
}

// ChangedMsg carries the updated snapshot to the active screen after an
// action has been applied.
type ChangedMsg struct {
	State State
}

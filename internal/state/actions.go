package state

import "github.com/ethiolearn/ethiolearn/internal/gateway"

// Action is a request to advance the session state. Actions travel as
// bubbletea messages from screens to the app model, which applies them
// through Reduce.
type Action interface {
	isAction()
}

// SwitchView changes the active top-level view.
type SwitchView struct {
	View View
}

// ToggleLanguage flips between English and Amharic.
type ToggleLanguage struct{}

// QuizLoaded installs a freshly generated quiz and moves to the quiz view.
// An empty Questions slice is ignored by the reducer: the study hub keeps
// showing its retry prompt instead.
type QuizLoaded struct {
	Questions []gateway.QuizQuestion
}

// QuizCompleted records a finished quiz run and awards XP.
type QuizCompleted struct {
	Score int
	Total int
}

// PlanGenerated installs a freshly generated study plan.
type PlanGenerated struct {
	Goals     string
	WeakAreas []string
	Tasks     []gateway.StudyTask
}

// TaskToggled flips one plan task's completion flag.
type TaskToggled struct {
	ID string
}

func (SwitchView) isAction()     {}
func (ToggleLanguage) isAction() {}
func (QuizLoaded) isAction()     {}
func (QuizCompleted) isAction()  {}
func (PlanGenerated) isAction()  {}
func (TaskToggled) isAction()    {}

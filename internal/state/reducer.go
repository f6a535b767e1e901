package state

import "github.com/ethiolearn/ethiolearn/internal/gateway"

// Gamification awards. Quiz completion pays per correct answer; finishing a
// plan task pays a flat bonus plus the task's study time.
const (
	xpPerCorrectAnswer = 100
	questionsPerQuiz   = 5
	xpPerCompletedTask = 50
)

// Reduce applies one action to a snapshot and returns the next snapshot.
// It is pure: no I/O, no mutation of the input. Unknown actions return the
// state unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SwitchView:
		s.View = act.View

	case ToggleLanguage:
		s.Lang = s.Lang.Toggle()

	case QuizLoaded:
		if len(act.Questions) == 0 {
			return s
		}
		s.Quiz = act.Questions
		s.View = ViewQuiz

	case QuizCompleted:
		s.Stats.XP += act.Score * xpPerCorrectAnswer
		s.Stats.QuestionsAnswered += questionsPerQuiz
		s.Quiz = nil
		s.View = ViewStudyHub

	case PlanGenerated:
		s.Plan = Plan{
			Goals:     act.Goals,
			WeakAreas: act.WeakAreas,
			Tasks:     act.Tasks,
		}

	case TaskToggled:
		s.Plan.Tasks = toggleTask(s.Plan.Tasks, act.ID, &s.Stats)
	}

	return s
}

// toggleTask flips the named task and awards XP and study minutes on the
// incomplete-to-complete transition only. Unchecking a task does not claw
// the award back; re-completing it pays again. This matches the hosted
// app's behavior.
func toggleTask(tasks []gateway.StudyTask, id string, stats *UserStats) []gateway.StudyTask {
	out := make([]gateway.StudyTask, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if !out[i].IsCompleted {
			stats.XP += xpPerCompletedTask
			stats.StudyMinutes += out[i].DurationMinutes
		}
		out[i].IsCompleted = !out[i].IsCompleted
		break
	}
	return out
}

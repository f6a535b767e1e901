package state

import (
	"testing"

	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/i18n"
)

func TestInitial(t *testing.T) {
	s := Initial()

	if s.View != ViewDashboard {
		t.Errorf("expected dashboard start view, got %v", s.View)
	}
	if s.Lang != i18n.English {
		t.Errorf("expected English start language, got %v", s.Lang)
	}
	if s.Stats.XP != 2450 || s.Stats.Streak != 12 || s.Stats.Level != 5 {
		t.Errorf("unexpected seed stats: %+v", s.Stats)
	}
	if s.Stats.StudyMinutes != 420 || s.Stats.QuestionsAnswered != 85 {
		t.Errorf("unexpected seed stats: %+v", s.Stats)
	}
}

func TestReduce_SwitchView(t *testing.T) {
	s := Reduce(Initial(), SwitchView{View: ViewTutor})
	if s.View != ViewTutor {
		t.Errorf("expected tutor view, got %v", s.View)
	}
}

func TestReduce_ToggleLanguage(t *testing.T) {
	s := Reduce(Initial(), ToggleLanguage{})
	if s.Lang != i18n.Amharic {
		t.Errorf("expected Amharic after toggle, got %v", s.Lang)
	}
	s = Reduce(s, ToggleLanguage{})
	if s.Lang != i18n.English {
		t.Errorf("expected English after double toggle, got %v", s.Lang)
	}
}

func TestReduce_QuizLoaded(t *testing.T) {
	questions := []gateway.QuizQuestion{{ID: 1, Question: "Q?", Options: []string{"a", "b", "c", "d"}}}

	s := Reduce(Initial(), QuizLoaded{Questions: questions})
	if s.View != ViewQuiz {
		t.Errorf("expected quiz view, got %v", s.View)
	}
	if len(s.Quiz) != 1 {
		t.Errorf("expected quiz installed, got %d questions", len(s.Quiz))
	}
}

func TestReduce_QuizLoaded_EmptyIgnored(t *testing.T) {
	before := Initial()
	after := Reduce(before, QuizLoaded{Questions: nil})

	if after.View != before.View {
		t.Error("empty quiz must not change the view")
	}
	if after.Quiz != nil {
		t.Error("empty quiz must not be installed")
	}
}

func TestReduce_QuizCompleted(t *testing.T) {
	s := Initial()
	s.Quiz = []gateway.QuizQuestion{{ID: 1}}
	s.View = ViewQuiz

	s = Reduce(s, QuizCompleted{Score: 3, Total: 5})

	if got := s.Stats.XP; got != 2450+300 {
		t.Errorf("expected 2750 XP after a 3/5 quiz, got %d", got)
	}
	if got := s.Stats.QuestionsAnswered; got != 85+5 {
		t.Errorf("expected 90 questions answered, got %d", got)
	}
	if s.View != ViewStudyHub {
		t.Errorf("expected return to study hub, got %v", s.View)
	}
	if s.Quiz != nil {
		t.Error("expected quiz cleared after completion")
	}
}

func TestReduce_QuizCompleted_ZeroScore(t *testing.T) {
	s := Reduce(Initial(), QuizCompleted{Score: 0, Total: 5})

	if s.Stats.XP != 2450 {
		t.Errorf("expected no XP for a 0/5 quiz, got %d", s.Stats.XP)
	}
	if s.Stats.QuestionsAnswered != 90 {
		t.Errorf("questions answered is flat per quiz, expected 90, got %d", s.Stats.QuestionsAnswered)
	}
}

func planWithTask(id string, minutes int) Plan {
	return Plan{
		Goals: "pass",
		Tasks: []gateway.StudyTask{
			{ID: id, SubjectID: "math", Title: "Practice", DurationMinutes: minutes},
		},
	}
}

func TestReduce_PlanGenerated(t *testing.T) {
	tasks := []gateway.StudyTask{
		{ID: "a", Title: "One", DurationMinutes: 10},
		{ID: "b", Title: "Two", DurationMinutes: 20},
		{ID: "c", Title: "Three", DurationMinutes: 30},
	}
	s := Reduce(Initial(), PlanGenerated{Goals: "g", WeakAreas: []string{"math"}, Tasks: tasks})

	if s.Plan.Goals != "g" || len(s.Plan.Tasks) != 3 {
		t.Errorf("unexpected plan: %+v", s.Plan)
	}
}

func TestReduce_TaskToggled_AwardsOnce(t *testing.T) {
	s := Initial()
	s.Plan = planWithTask("t1", 45)

	s = Reduce(s, TaskToggled{ID: "t1"})

	if !s.Plan.Tasks[0].IsCompleted {
		t.Fatal("expected task completed")
	}
	if s.Stats.XP != 2450+50 {
		t.Errorf("expected +50 XP, got %d", s.Stats.XP)
	}
	if s.Stats.StudyMinutes != 420+45 {
		t.Errorf("expected +45 study minutes, got %d", s.Stats.StudyMinutes)
	}
}

func TestReduce_TaskToggled_UncheckKeepsAward(t *testing.T) {
	s := Initial()
	s.Plan = planWithTask("t1", 45)

	s = Reduce(s, TaskToggled{ID: "t1"})
	s = Reduce(s, TaskToggled{ID: "t1"})

	if s.Plan.Tasks[0].IsCompleted {
		t.Fatal("expected task back to incomplete")
	}
	if s.Stats.XP != 2500 {
		t.Errorf("unchecking must not claw back XP, got %d", s.Stats.XP)
	}
	if s.Stats.StudyMinutes != 465 {
		t.Errorf("unchecking must not claw back minutes, got %d", s.Stats.StudyMinutes)
	}
}

func TestReduce_TaskToggled_RecompletePaysAgain(t *testing.T) {
	s := Initial()
	s.Plan = planWithTask("t1", 10)

	s = Reduce(s, TaskToggled{ID: "t1"})
	s = Reduce(s, TaskToggled{ID: "t1"})
	s = Reduce(s, TaskToggled{ID: "t1"})

	if s.Stats.XP != 2450+100 {
		t.Errorf("expected two awards of 50 XP, got %d", s.Stats.XP)
	}
}

func TestReduce_TaskToggled_UnknownIDNoop(t *testing.T) {
	s := Initial()
	s.Plan = planWithTask("t1", 45)

	after := Reduce(s, TaskToggled{ID: "nope"})

	if after.Stats.XP != s.Stats.XP {
		t.Error("unknown task id must not change stats")
	}
	if after.Plan.Tasks[0].IsCompleted {
		t.Error("unknown task id must not toggle anything")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Initial()
	before.Plan = planWithTask("t1", 45)

	_ = Reduce(before, TaskToggled{ID: "t1"})

	if before.Plan.Tasks[0].IsCompleted {
		t.Error("Reduce must not mutate its input's task slice")
	}
	if before.Stats.XP != 2450 {
		t.Error("Reduce must not mutate its input's stats")
	}
}

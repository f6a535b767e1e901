// Package i18n holds the two-language UI string table.
//
// EthioLearn ships in English and Amharic. The active language is part of
// the session state and is threaded into every prompt the app sends to the
// model as well as every label it renders.
package i18n

// Language selects the UI and prompt language.
type Language string

const (
	English Language = "en"
	Amharic Language = "am"
)

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Amharic {
		return English
	}
	return Amharic
}

// Name returns the language name used inside prompt templates.
func (l Language) Name() string {
	if l == Amharic {
		return "Amharic"
	}
	return "English"
}

// Strings is the full set of localized UI labels.
type Strings struct {
	AppName string

	// Navigation
	Dashboard string
	StudyHub  string
	Quiz      string
	AITutor   string
	Analyzer  string

	// Dashboard
	Welcome       string
	DailyQuote    string
	Streak        string
	XP            string
	Level         string
	ExamCountdown string
	Days          string
	YourPlan      string
	NoPlan        string
	CreatePlan    string
	Goals         string
	GoalsHint     string
	WeakAreas     string
	WeakAreasHint string
	GeneratePlan  string
	PlanFailed    string

	// Study hub
	SelectSubject string
	StartQuiz     string
	NoQuiz        string

	// Quiz arena
	Correct      string
	Incorrect    string
	Explanation  string
	QuizComplete string
	YouScored    string
	BackToHub    string

	// Tutor
	Greeting    string
	TypeMessage string
	Send        string

	// Analyzer
	UploadQuestion   string
	AnalyzeBtn       string
	Analyzing        string
	LoadSample       string
	SourcePrediction string
	Difficulty       string
	SuccessChance    string
	Topics           string
	SimilarQuestions string
	AIInsight        string
	NoAnalysis       string
	AnalyzeFailed    string
	PDFNote          string

	Loading  string
	TryAgain string
}

var english = Strings{
	AppName: "EthioLearn AI",

	Dashboard: "Dashboard",
	StudyHub:  "Study Hub",
	Quiz:      "Quiz Arena",
	AITutor:   "AI Tutor",
	Analyzer:  "Question Analyzer",

	Welcome:       "Welcome back!",
	DailyQuote:    "Education is the most powerful weapon which you can use to change the world.",
	Streak:        "Streak",
	XP:            "XP",
	Level:         "Level",
	ExamCountdown: "Exam Countdown",
	Days:          "days",
	YourPlan:      "Your Study Plan",
	NoPlan:        "No study plan yet. Let AI build one for you.",
	CreatePlan:    "Create Plan",
	Goals:         "Your goal",
	GoalsHint:     "e.g. pass the national exam",
	WeakAreas:     "Weak areas",
	WeakAreasHint: "e.g. math, physics",
	GeneratePlan:  "Generate Plan",
	PlanFailed:    "Couldn't generate a plan. Please try again.",

	SelectSubject: "Select a subject",
	StartQuiz:     "Start AI Quiz",
	NoQuiz:        "No quiz available. Please try again.",

	Correct:      "Correct!",
	Incorrect:    "Incorrect",
	Explanation:  "Explanation",
	QuizComplete: "Quiz Complete!",
	YouScored:    "You scored",
	BackToHub:    "Back to Study Hub",

	Greeting:    "Hello! I am your EthioLearn AI Tutor. How can I help you with your studies today?",
	TypeMessage: "Ask me anything about your studies...",
	Send:        "Send",

	UploadQuestion:   "Paste an exam question",
	AnalyzeBtn:       "Analyze",
	Analyzing:        "Analyzing...",
	LoadSample:       "Load sample",
	SourcePrediction: "Source Prediction",
	Difficulty:       "Difficulty",
	SuccessChance:    "Success Chance",
	Topics:           "Related Topics",
	SimilarQuestions: "Similar Questions",
	AIInsight:        "AI Insight",
	NoAnalysis:       "Paste a question to see source prediction and difficulty analysis.",
	AnalyzeFailed:    "Analysis failed. Please try again.",
	PDFNote:          "Note: the full app extracts text from National Exam PDFs (2010-2015 EC) automatically.",

	Loading:  "Thinking...",
	TryAgain: "Try again",
}

var amharic = Strings{
	AppName: "EthioLearn AI",

	Dashboard: "ዳሽቦርድ",
	StudyHub:  "የጥናት ማዕከል",
	Quiz:      "የፈተና መድረክ",
	AITutor:   "AI አስተማሪ",
	Analyzer:  "የጥያቄ መተንተኛ",

	Welcome:       "እንኳን ደህና መጡ!",
	DailyQuote:    "ትምህርት ዓለምን ለመለወጥ የሚያስችል ኃይለኛ መሣሪያ ነው።",
	Streak:        "ተከታታይ ቀናት",
	XP:            "ነጥብ",
	Level:         "ደረጃ",
	ExamCountdown: "የፈተና ቀን ቆጠራ",
	Days:          "ቀናት",
	YourPlan:      "የጥናት እቅድዎ",
	NoPlan:        "እስካሁን የጥናት እቅድ የለም። AI እንዲያዘጋጅልዎ ያድርጉ።",
	CreatePlan:    "እቅድ ፍጠር",
	Goals:         "ግብዎ",
	GoalsHint:     "ለምሳሌ፡ ሀገር አቀፍ ፈተና ማለፍ",
	WeakAreas:     "ደካማ ጎኖች",
	WeakAreasHint: "ለምሳሌ፡ ሒሳብ፣ ፊዚክስ",
	GeneratePlan:  "እቅድ አመንጭ",
	PlanFailed:    "እቅድ ማመንጨት አልተቻለም። እባክዎ እንደገና ይሞክሩ።",

	SelectSubject: "የትምህርት ዓይነት ይምረጡ",
	StartQuiz:     "የAI ፈተና ጀምር",
	NoQuiz:        "ፈተና አልተገኘም። እባክዎ እንደገና ይሞክሩ።",

	Correct:      "ትክክል!",
	Incorrect:    "ስህተት",
	Explanation:  "ማብራሪያ",
	QuizComplete: "ፈተናው ተጠናቀቀ!",
	YouScored:    "ውጤትዎ",
	BackToHub:    "ወደ ጥናት ማዕከል ተመለስ",

	Greeting:    "ሰላም! እኔ EthioLearn AI አስተማሪ ነኝ። ስለ ትምህርትህ የምትጠይቀኝ ነገር አለ?",
	TypeMessage: "ስለ ትምህርትዎ ማንኛውንም ነገር ይጠይቁ...",
	Send:        "ላክ",

	UploadQuestion:   "የፈተና ጥያቄ ያስገቡ",
	AnalyzeBtn:       "ተንትን",
	Analyzing:        "በመተንተን ላይ...",
	LoadSample:       "ናሙና ጫን",
	SourcePrediction: "የምንጭ ግምት",
	Difficulty:       "የክብደት ደረጃ",
	SuccessChance:    "የስኬት እድል",
	Topics:           "ተዛማጅ ርዕሶች",
	SimilarQuestions: "ተመሳሳይ ጥያቄዎች",
	AIInsight:        "የAI ማብራሪያ",
	NoAnalysis:       "የምንጭ ግምትና የክብደት ትንተና ለማየት ጥያቄ ያስገቡ።",
	AnalyzeFailed:    "ትንተናው አልተሳካም። እባክዎ እንደገና ይሞክሩ።",
	PDFNote:          "ማሳሰቢያ፡ ሙሉው መተግበሪያ ከሀገር አቀፍ ፈተና ፒዲኤፎች (2010-2015 ዓ.ም.) ጽሑፍ በራስ-ሰር ያወጣል።",

	Loading:  "በማሰብ ላይ...",
	TryAgain: "እንደገና ይሞክሩ",
}

// For returns the string table for the given language.
// Unknown values fall back to English.
func For(lang Language) Strings {
	if lang == Amharic {
		return amharic
	}
	return english
}

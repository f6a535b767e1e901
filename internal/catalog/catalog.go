// Package catalog holds the static subject catalog.
//
// The catalog is fixed at compile time and never mutated. Its IDs form the
// vocabulary the study-plan generator is allowed to assign tasks to.
package catalog

import "github.com/ethiolearn/ethiolearn/internal/i18n"

// Subject is one entry in the subject catalog.
type Subject struct {
	ID     string
	NameEn string
	NameAm string
	Icon   string
}

// Name returns the subject name in the given language.
func (s Subject) Name(lang i18n.Language) string {
	if lang == i18n.Amharic {
		return s.NameAm
	}
	return s.NameEn
}

// Subjects is the Grade 9-12 subject catalog, in display order.
var Subjects = []Subject{
	{ID: "math", NameEn: "Mathematics", NameAm: "ሒሳብ", Icon: "📐"},
	{ID: "phys", NameEn: "Physics", NameAm: "ፊዚክስ", Icon: "⚛️"},
	{ID: "chem", NameEn: "Chemistry", NameAm: "ኬሚስትሪ", Icon: "🧪"},
	{ID: "bio", NameEn: "Biology", NameAm: "ባዮሎጂ", Icon: "🧬"},
	{ID: "eng", NameEn: "English", NameAm: "እንግሊዝኛ", Icon: "📖"},
	{ID: "amh", NameEn: "Amharic", NameAm: "አማርኛ", Icon: "✍️"},
	{ID: "hist", NameEn: "History", NameAm: "ታሪክ", Icon: "🏛️"},
	{ID: "geo", NameEn: "Geography", NameAm: "ጂኦግራፊ", Icon: "🌍"},
	{ID: "econ", NameEn: "Economics", NameAm: "ምጣኔ ሀብት", Icon: "📈"},
	{ID: "ict", NameEn: "ICT", NameAm: "አይሲቲ", Icon: "💻"},
}

// IDs returns the subject ID vocabulary in catalog order.
func IDs() []string {
	ids := make([]string, len(Subjects))
	for i, s := range Subjects {
		ids[i] = s.ID
	}
	return ids
}

// ByID looks up a subject by ID. Returns (Subject{}, false) when unknown.
func ByID(id string) (Subject, bool) {
	for _, s := range Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// SampleQuestion is the canned exam question offered by the analyzer's
// "load sample" action.
const SampleQuestion = "A car accelerates uniformly from rest and reaches a velocity of 20 m/s in 5 seconds. What is the magnitude of its acceleration?"

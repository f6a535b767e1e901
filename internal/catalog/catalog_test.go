package catalog

import (
	"testing"

	"github.com/ethiolearn/ethiolearn/internal/i18n"
)

func TestIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range IDs() {
		if seen[id] {
			t.Errorf("duplicate subject id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != len(Subjects) {
		t.Errorf("expected %d ids, got %d", len(Subjects), len(seen))
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("phys")
	if !ok {
		t.Fatal("expected phys to exist")
	}
	if s.NameEn != "Physics" {
		t.Errorf("got %q", s.NameEn)
	}

	if _, ok := ByID("astrology"); ok {
		t.Error("expected astrology to be unknown")
	}
}

func TestName(t *testing.T) {
	s, _ := ByID("math")
	if s.Name(i18n.English) != "Mathematics" {
		t.Errorf("got %q", s.Name(i18n.English))
	}
	if s.Name(i18n.Amharic) != "ሒሳብ" {
		t.Errorf("got %q", s.Name(i18n.Amharic))
	}
}

func TestSubjectsFullyPopulated(t *testing.T) {
	for _, s := range Subjects {
		if s.ID == "" || s.NameEn == "" || s.NameAm == "" || s.Icon == "" {
			t.Errorf("subject %+v has blank fields", s)
		}
	}
}

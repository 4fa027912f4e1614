package interfaces

import "testing"

func TestDiffRecordPath_PrefersNewPath(t *testing.T) {
	d := DiffRecord{OldPath: "old/name.go", NewPath: "new/name.go"}

	if got := d.Path(); got != "new/name.go" {
		t.Errorf("expected new path, got %q", got)
	}
}

func TestDiffRecordPath_BlankNewPath_FallsBackToOld(t *testing.T) {
	d := DiffRecord{OldPath: "old/name.go", NewPath: "   "}

	if got := d.Path(); got != "old/name.go" {
		t.Errorf("expected old path for blank new path, got %q", got)
	}
}

func TestDiffRecordHasPath_BothBlank_False(t *testing.T) {
	d := DiffRecord{NewPath: " ", OldPath: "\t"}

	if d.HasPath() {
		t.Error("expected HasPath false for blank paths")
	}

	if !(DiffRecord{OldPath: "a.go"}).HasPath() {
		t.Error("expected HasPath true with old path only")
	}
}

func TestParseReviewMode_Integrated_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"integrated", "Integrated", "INTEGRATED"} {
		if got := ParseReviewMode(s); got != ModeIntegrated {
			t.Errorf("ParseReviewMode(%q) = %s, want integrated", s, got)
		}
	}
}

func TestParseReviewMode_UnknownOrEmpty_DefaultsToPersona(t *testing.T) {
	for _, s := range []string{"", "persona", "PERSONA", "banana"} {
		if got := ParseReviewMode(s); got != ModePersona {
			t.Errorf("ParseReviewMode(%q) = %s, want persona", s, got)
		}
	}
}

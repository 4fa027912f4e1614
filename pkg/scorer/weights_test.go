package scorer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing table file: %v", err)
	}
	return path
}

func TestLoadTable_ValidFile_ParsesRulesAndFillsThresholds(t *testing.T) {
	path := writeTableFile(t, `
path_weights:
  controller:
    backend_specialist: 30
extension_weights:
  .py:
    data_scientist: 20
keyword_weights:
  select:
    data_guardian: 15
complexity_weights:
  if.*else:
    quality_coach: 10
keyword_sets:
  security_auditor: [token, password]
`)

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	if got := table.PathWeights["controller"][interfaces.PersonaBackendSpecialist]; got != 30 {
		t.Errorf("expected path weight 30, got %d", got)
	}
	if got := table.ExtensionWeights[".py"][interfaces.PersonaDataScientist]; got != 20 {
		t.Errorf("expected extension weight 20, got %d", got)
	}
	if got := table.KeywordWeights["select"][interfaces.PersonaDataGuardian]; got != 15 {
		t.Errorf("expected keyword weight 15, got %d", got)
	}
	if got := table.ComplexityWeights["if.*else"][interfaces.PersonaQualityCoach]; got != 10 {
		t.Errorf("expected complexity weight 10, got %d", got)
	}
	if len(table.KeywordSets[interfaces.PersonaSecurityAuditor]) != 2 {
		t.Errorf("expected 2 set members, got %v", table.KeywordSets[interfaces.PersonaSecurityAuditor])
	}

	// omitted thresholds fall back to defaults
	if table.SelectionThreshold != DefaultSelectionThreshold {
		t.Errorf("expected selection threshold %d, got %d", DefaultSelectionThreshold, table.SelectionThreshold)
	}
	if table.MentionThreshold != DefaultMentionThreshold {
		t.Errorf("expected mention threshold %d, got %d", DefaultMentionThreshold, table.MentionThreshold)
	}
}

func TestLoadTable_MissingFile_Error(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadTable_MalformedYAML_Error(t *testing.T) {
	path := writeTableFile(t, "path_weights: [not a map")

	_, err := LoadTable(path)
	if err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
}

func TestLoadTable_UnknownPersona_Error(t *testing.T) {
	path := writeTableFile(t, `
path_weights:
  controller:
    space_cadet: 30
`)

	_, err := LoadTable(path)
	if err == nil {
		t.Fatal("expected error for unknown persona, got nil")
	}
	if !strings.Contains(err.Error(), "unknown persona") {
		t.Errorf("expected unknown persona error, got: %v", err)
	}
}

func TestValidate_DefaultTable_Passes(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Errorf("default table must validate, got: %v", err)
	}
}

func TestValidate_MentionNotAboveSelection_Error(t *testing.T) {
	table := testTable()
	table.MentionThreshold = table.SelectionThreshold

	if err := table.Validate(); err == nil {
		t.Error("expected error for mention threshold <= selection threshold, got nil")
	}
}

func TestValidate_WeightAboveFamilyCap_Error(t *testing.T) {
	table := testTable()
	table.PathWeights["controller"][interfaces.PersonaBackendSpecialist] = MaxPathWeight + 1

	if err := table.Validate(); err == nil {
		t.Error("expected error for weight above cap, got nil")
	}
}

func TestValidate_NonPositiveWeight_Error(t *testing.T) {
	table := testTable()
	table.KeywordWeights["@preauthorize"][interfaces.PersonaSecurityAuditor] = 0

	if err := table.Validate(); err == nil {
		t.Error("expected error for zero weight, got nil")
	}
}

func TestValidate_EmptyTrigger_Error(t *testing.T) {
	table := testTable()
	table.PathWeights[""] = PersonaWeights{interfaces.PersonaArchitect: 10}

	if err := table.Validate(); err == nil {
		t.Error("expected error for empty trigger, got nil")
	}
}

func TestValidate_InvalidComplexityPattern_Error(t *testing.T) {
	table := testTable()
	table.ComplexityWeights["(["] = PersonaWeights{interfaces.PersonaPerformanceTuner: 10}

	if err := table.Validate(); err == nil {
		t.Error("expected error for invalid pattern, got nil")
	}
}

func TestValidate_EmptyKeywordSet_Error(t *testing.T) {
	table := testTable()
	table.KeywordSets[interfaces.PersonaDevOpsEngineer] = nil

	if err := table.Validate(); err == nil {
		t.Error("expected error for empty keyword set, got nil")
	}
}

func TestValidate_UnknownKeywordSetPersona_Error(t *testing.T) {
	table := testTable()
	table.KeywordSets[interfaces.Persona("space_cadet")] = []string{"rocket"}

	if err := table.Validate(); err == nil {
		t.Error("expected error for unknown keyword set persona, got nil")
	}
}

package scorer

import (
	"testing"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

func TestSelect_HighestScoreWins(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaSecurityAuditor:   70,
		interfaces.PersonaBackendSpecialist: 50,
	}

	sel := Select(scores, 40, 60)

	if sel.Primary != interfaces.PersonaSecurityAuditor {
		t.Errorf("expected security_auditor, got %s", sel.Primary)
	}
	if sel.PrimaryScore != 70 {
		t.Errorf("expected primary score 70, got %d", sel.PrimaryScore)
	}
	if len(sel.Mentions) != 0 {
		t.Errorf("expected no mentions below 60, got %v", sel.Mentions)
	}
}

func TestSelect_Tie_BreaksByDeclarationOrder(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaPerformanceTuner:  55,
		interfaces.PersonaBackendSpecialist: 55,
	}

	sel := Select(scores, 40, 60)

	// performance_tuner is declared before backend_specialist
	if sel.Primary != interfaces.PersonaPerformanceTuner {
		t.Errorf("expected performance_tuner on tie, got %s", sel.Primary)
	}
}

func TestSelect_BelowSelectionThreshold_FallsBackToGeneral(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaGeneralReviewer:   12,
		interfaces.PersonaBackendSpecialist: 39,
	}

	sel := Select(scores, 40, 60)

	if sel.Primary != interfaces.PersonaGeneralReviewer {
		t.Errorf("expected general_reviewer fallback, got %s", sel.Primary)
	}
	// the fallback reports the general reviewer's own score, not the
	// candidate's
	if sel.PrimaryScore != 12 {
		t.Errorf("expected primary score 12, got %d", sel.PrimaryScore)
	}
}

func TestSelect_ExactSelectionThreshold_Selected(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaDataGuardian: 40,
	}

	sel := Select(scores, 40, 60)

	if sel.Primary != interfaces.PersonaDataGuardian {
		t.Errorf("expected data_guardian at exact threshold, got %s", sel.Primary)
	}
}

func TestSelect_Mentions_DeclarationOrderNotScoreOrder(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaSecurityAuditor:   80,
		interfaces.PersonaDataGuardian:      60,
		interfaces.PersonaBackendSpecialist: 65,
	}

	sel := Select(scores, 40, 60)

	if sel.Primary != interfaces.PersonaSecurityAuditor {
		t.Fatalf("expected security_auditor primary, got %s", sel.Primary)
	}

	// data_guardian (60) is declared before backend_specialist (65), so it
	// comes first despite the lower score
	want := []interfaces.Persona{
		interfaces.PersonaDataGuardian,
		interfaces.PersonaBackendSpecialist,
	}
	if len(sel.Mentions) != len(want) {
		t.Fatalf("expected mentions %v, got %v", want, sel.Mentions)
	}
	for i := range want {
		if sel.Mentions[i] != want[i] {
			t.Errorf("mention %d: expected %s, got %s", i, want[i], sel.Mentions[i])
		}
	}
}

func TestSelect_Primary_NeverMentioned(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaSecurityAuditor: 90,
	}

	sel := Select(scores, 40, 60)

	for _, m := range sel.Mentions {
		if m == sel.Primary {
			t.Errorf("primary %s must not appear in mentions %v", sel.Primary, sel.Mentions)
		}
	}
}

func TestSelect_JustBelowMentionThreshold_NotMentioned(t *testing.T) {
	scores := interfaces.ScoreMap{
		interfaces.PersonaSecurityAuditor:   80,
		interfaces.PersonaBackendSpecialist: 59,
	}

	sel := Select(scores, 40, 60)

	if len(sel.Mentions) != 0 {
		t.Errorf("expected no mentions at 59, got %v", sel.Mentions)
	}
}

func TestSelect_NilScores_GeneralZero(t *testing.T) {
	sel := Select(nil, 40, 60)

	if sel.Primary != interfaces.PersonaGeneralReviewer {
		t.Errorf("expected general_reviewer for nil scores, got %s", sel.Primary)
	}
	if sel.PrimaryScore != 0 {
		t.Errorf("expected primary score 0, got %d", sel.PrimaryScore)
	}
	if len(sel.Mentions) != 0 {
		t.Errorf("expected no mentions, got %v", sel.Mentions)
	}
}

func TestScorerSelect_UsesTableThresholds(t *testing.T) {
	table := testTable()
	table.SelectionThreshold = 10
	table.MentionThreshold = 20
	s, err := NewScorer(WithTable(table))
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	scores := interfaces.ScoreMap{
		interfaces.PersonaPerformanceTuner:  25,
		interfaces.PersonaDataGuardian:      20,
		interfaces.PersonaBackendSpecialist: 15,
	}

	sel := s.Select(scores)

	if sel.Primary != interfaces.PersonaPerformanceTuner {
		t.Errorf("expected performance_tuner, got %s", sel.Primary)
	}
	if len(sel.Mentions) != 1 || sel.Mentions[0] != interfaces.PersonaDataGuardian {
		t.Errorf("expected mentions [data_guardian], got %v", sel.Mentions)
	}
}

func TestScorerSelect_ThresholdOverride_BeatsTable(t *testing.T) {
	s, err := NewScorer(WithTable(testTable()), WithThresholds(70, 90))
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	scores := interfaces.ScoreMap{
		interfaces.PersonaSecurityAuditor: 65,
	}

	sel := s.Select(scores)

	// 65 clears the table's threshold of 40 but not the override of 70
	if sel.Primary != interfaces.PersonaGeneralReviewer {
		t.Errorf("expected general_reviewer under raised threshold, got %s", sel.Primary)
	}
}

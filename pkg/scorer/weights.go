// Package scorer routes diff sets to reviewer personas using weighted rules.
package scorer

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// Per-rule weight caps. A single rule may not grant more than this many
// points to any one persona.
const (
	MaxPathWeight       = 40
	MaxExtensionWeight  = 40
	MaxKeywordWeight    = 30
	MaxComplexityWeight = 15
)

// Keyword-set bonus parameters. Each matching token adds BonusPerHit points,
// capped at KeywordSetBonusCap per keyword set per diff.
const (
	BonusPerHit        = 5
	KeywordSetBonusCap = 20
)

// MaxScore caps every persona's accumulated total.
const MaxScore = 100

// PersonaWeights maps personas to the points a matching rule grants.
// Absent personas receive nothing from the rule.
type PersonaWeights map[interfaces.Persona]int

// WeightTable holds all scoring knowledge as pure data, never as code
// branches, so rules can be audited and tuned without touching logic.
// Tables are read-only after initialization.
type WeightTable struct {
	// PathWeights triggers on case-insensitive substrings of the effective
	// file path ("controller", "service", "docker", ...).
	PathWeights map[string]PersonaWeights `yaml:"path_weights"`

	// ExtensionWeights triggers on exact case-sensitive path suffixes
	// (".java", ".tsx", also multi-segment names like "package.json").
	ExtensionWeights map[string]PersonaWeights `yaml:"extension_weights"`

	// KeywordWeights triggers on case-insensitive substrings anywhere in
	// the patch text (annotations, SQL verbs, framework calls).
	KeywordWeights map[string]PersonaWeights `yaml:"keyword_weights"`

	// ComplexityWeights triggers on case-insensitive, cross-line regular
	// expressions over the raw patch text. One hit per rule per diff.
	ComplexityWeights map[string]PersonaWeights `yaml:"complexity_weights"`

	// KeywordSets grants a per-diff bonus to one persona for each
	// whitespace token of the patch that contains any set member.
	KeywordSets map[interfaces.Persona][]string `yaml:"keyword_sets"`

	// SelectionThreshold is the minimum score a persona needs to be chosen
	// as primary; below it the general reviewer takes over.
	SelectionThreshold int `yaml:"selection_threshold"`

	// MentionThreshold is the minimum score for a non-primary persona to be
	// surfaced as "also consider". Always above SelectionThreshold.
	MentionThreshold int `yaml:"mention_threshold"`
}

// LoadTable reads a weight table from a YAML file. Zero thresholds are
// filled with the defaults; everything else must be fully specified.
func LoadTable(path string) (*WeightTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scorer: reading weight table %s: %w", path, err)
	}

	table := &WeightTable{}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("scorer: parsing weight table %s: %w", path, err)
	}

	if table.SelectionThreshold == 0 {
		table.SelectionThreshold = DefaultSelectionThreshold
	}
	if table.MentionThreshold == 0 {
		table.MentionThreshold = DefaultMentionThreshold
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("scorer: weight table %s: %w", path, err)
	}
	return table, nil
}

// Validate checks the table's structural invariants: known personas,
// positive weights within per-family caps, compilable complexity patterns,
// and threshold ordering.
func (t *WeightTable) Validate() error {
	if t.MentionThreshold <= t.SelectionThreshold {
		return fmt.Errorf("mention threshold %d must be greater than selection threshold %d",
			t.MentionThreshold, t.SelectionThreshold)
	}

	if err := validateFamily("path", t.PathWeights, MaxPathWeight); err != nil {
		return err
	}
	if err := validateFamily("extension", t.ExtensionWeights, MaxExtensionWeight); err != nil {
		return err
	}
	if err := validateFamily("keyword", t.KeywordWeights, MaxKeywordWeight); err != nil {
		return err
	}
	if err := validateFamily("complexity", t.ComplexityWeights, MaxComplexityWeight); err != nil {
		return err
	}

	for pattern := range t.ComplexityWeights {
		if _, err := regexp.Compile(complexityFlags + pattern); err != nil {
			return fmt.Errorf("complexity rule %q: %w", pattern, err)
		}
	}

	for persona, members := range t.KeywordSets {
		if !persona.Valid() {
			return fmt.Errorf("keyword set: unknown persona %q", persona)
		}
		if len(members) == 0 {
			return fmt.Errorf("keyword set for %q is empty", persona)
		}
	}

	return nil
}

// validateFamily checks one rule family for unknown personas and
// out-of-range weights.
func validateFamily(family string, rules map[string]PersonaWeights, maxWeight int) error {
	for trigger, weights := range rules {
		if trigger == "" {
			return fmt.Errorf("%s rule with empty trigger", family)
		}
		if len(weights) == 0 {
			return fmt.Errorf("%s rule %q grants no weights", family, trigger)
		}
		for persona, weight := range weights {
			if !persona.Valid() {
				return fmt.Errorf("%s rule %q: unknown persona %q", family, trigger, persona)
			}
			if weight <= 0 || weight > maxWeight {
				return fmt.Errorf("%s rule %q: weight %d for %q outside (0,%d]",
					family, trigger, weight, persona, maxWeight)
			}
		}
	}
	return nil
}

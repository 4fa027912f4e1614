package scorer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// complexityFlags makes complexity patterns case-insensitive and lets "."
// match across line breaks, preserving the original matching semantics.
const complexityFlags = "(?is)"

// Scorer computes per-persona relevance scores for a diff set.
// All rules are precompiled at construction; a Scorer is immutable
// afterwards and safe for concurrent use.
type Scorer struct {
	table              *WeightTable
	selectionThreshold int
	mentionThreshold   int
	paths              []stringRule
	extensions         []stringRule
	keywords           []stringRule
	complexity         []regexRule
	sets               []keywordSet
}

// stringRule is a substring or suffix trigger with its persona weights.
type stringRule struct {
	trigger string
	weights PersonaWeights
}

// regexRule is a precompiled complexity pattern with its persona weights.
type regexRule struct {
	re      *regexp.Regexp
	weights PersonaWeights
}

// keywordSet is one persona's domain vocabulary with lower-cased members.
type keywordSet struct {
	persona interfaces.Persona
	members []string
}

// Option configures the Scorer.
type Option func(*Scorer)

// WithTable overrides the default weight table.
func WithTable(t *WeightTable) Option {
	return func(s *Scorer) {
		s.table = t
	}
}

// WithThresholds overrides the table's selection and mention thresholds.
// A zero value keeps the table's own threshold.
func WithThresholds(selection, mention int) Option {
	return func(s *Scorer) {
		s.selectionThreshold = selection
		s.mentionThreshold = mention
	}
}

// NewScorer creates a scorer with optional configuration. Complexity
// patterns are compiled here once, so an invalid pattern in a custom table
// surfaces at startup rather than at scoring time. Thresholds resolve in
// order: WithThresholds override, then the table, then the defaults; zero
// values fall through to the next source.
func NewScorer(opts ...Option) (*Scorer, error) {
	s := &Scorer{table: DefaultTable()}
	for _, opt := range opts {
		opt(s)
	}

	if s.selectionThreshold == 0 {
		s.selectionThreshold = s.table.SelectionThreshold
	}
	if s.mentionThreshold == 0 {
		s.mentionThreshold = s.table.MentionThreshold
	}
	if s.selectionThreshold == 0 {
		s.selectionThreshold = DefaultSelectionThreshold
	}
	if s.mentionThreshold == 0 {
		s.mentionThreshold = DefaultMentionThreshold
	}
	if s.mentionThreshold <= s.selectionThreshold {
		return nil, fmt.Errorf("scorer: mention threshold %d must be greater than selection threshold %d",
			s.mentionThreshold, s.selectionThreshold)
	}

	for trigger, weights := range s.table.PathWeights {
		s.paths = append(s.paths, stringRule{trigger: strings.ToLower(trigger), weights: weights})
	}
	for trigger, weights := range s.table.ExtensionWeights {
		s.extensions = append(s.extensions, stringRule{trigger: trigger, weights: weights})
	}
	for trigger, weights := range s.table.KeywordWeights {
		s.keywords = append(s.keywords, stringRule{trigger: strings.ToLower(trigger), weights: weights})
	}
	for pattern, weights := range s.table.ComplexityWeights {
		re, err := regexp.Compile(complexityFlags + pattern)
		if err != nil {
			return nil, fmt.Errorf("scorer: compiling complexity rule %q: %w", pattern, err)
		}
		s.complexity = append(s.complexity, regexRule{re: re, weights: weights})
	}
	for persona, members := range s.table.KeywordSets {
		lowered := make([]string, len(members))
		for i, m := range members {
			lowered[i] = strings.ToLower(m)
		}
		s.sets = append(s.sets, keywordSet{persona: persona, members: lowered})
	}

	return s, nil
}

// Thresholds returns the resolved selection and mention thresholds.
func (s *Scorer) Thresholds() (selection, mention int) {
	return s.selectionThreshold, s.mentionThreshold
}

// Score computes every persona's accumulated score for the given diff
// records. The result always contains all personas, clamped to [0,MaxScore],
// and does not depend on the order of the input. Score never fails: records
// without a path are skipped, records without patch text only contribute
// through path and extension rules.
func (s *Scorer) Score(diffs []interfaces.DiffRecord) interfaces.ScoreMap {
	scores := make(interfaces.ScoreMap, len(interfaces.AllPersonas()))
	for _, p := range interfaces.AllPersonas() {
		scores[p] = 0
	}

	for _, d := range diffs {
		s.scoreDiff(d, scores)
	}

	for p, total := range scores {
		if total > MaxScore {
			scores[p] = MaxScore
		}
	}
	return scores
}

// scoreDiff accumulates one record's rule matches into scores.
func (s *Scorer) scoreDiff(d interfaces.DiffRecord, scores interfaces.ScoreMap) {
	if !d.HasPath() {
		return
	}
	path := d.Path()
	lowerPath := strings.ToLower(path)

	for _, rule := range s.paths {
		if strings.Contains(lowerPath, rule.trigger) {
			addWeights(scores, rule.weights)
		}
	}
	for _, rule := range s.extensions {
		if strings.HasSuffix(path, rule.trigger) {
			addWeights(scores, rule.weights)
		}
	}

	if strings.TrimSpace(d.Patch) == "" {
		return
	}
	lowerPatch := strings.ToLower(d.Patch)

	for _, rule := range s.keywords {
		if strings.Contains(lowerPatch, rule.trigger) {
			addWeights(scores, rule.weights)
		}
	}

	tokens := strings.Fields(lowerPatch)
	for _, set := range s.sets {
		scores[set.persona] += set.bonus(tokens)
	}

	// Complexity regexes run against the raw patch so "." can span the
	// original line breaks. One hit per rule regardless of occurrences.
	for _, rule := range s.complexity {
		if rule.re.MatchString(d.Patch) {
			addWeights(scores, rule.weights)
		}
	}
}

// bonus converts the number of tokens containing any set member into capped
// bonus points. A token counts once even when it contains several members.
func (k keywordSet) bonus(tokens []string) int {
	count := 0
	for _, token := range tokens {
		for _, member := range k.members {
			if strings.Contains(token, member) {
				count++
				break
			}
		}
	}
	bonus := count * BonusPerHit
	if bonus > KeywordSetBonusCap {
		bonus = KeywordSetBonusCap
	}
	return bonus
}

// addWeights adds every persona's weight from one matched rule.
func addWeights(scores interfaces.ScoreMap, weights PersonaWeights) {
	for persona, weight := range weights {
		scores[persona] += weight
	}
}

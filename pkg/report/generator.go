// Package report generates routing reports from persona scores and selections.
package report

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// Generator builds reports from score maps and selections.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces a Report for one routing run over the given records.
// The prompt is the composed review prompt the selection leads to; it is
// carried verbatim so downstream callers need no second composition pass.
func (g *Generator) Generate(mode interfaces.ReviewMode, scores interfaces.ScoreMap, selection interfaces.Selection, promptText string, diffs []interfaces.DiffRecord) *interfaces.Report {
	start := time.Now()

	return &interfaces.Report{
		ID:        newULID(),
		Timestamp: time.Now(),
		Mode:      mode,
		Selection: selection,
		Scores:    scores,
		Summary:   buildSummary(scores, selection),
		Prompt:    promptText,
		DiffMeta:  buildDiffMetadata(diffs),
		Duration:  time.Since(start),
	}
}

// buildDiffMetadata calculates summary stats from the diff records.
func buildDiffMetadata(diffs []interfaces.DiffRecord) interfaces.DiffMetadata {
	meta := interfaces.DiffMetadata{
		FilesChanged: len(diffs),
	}

	for _, d := range diffs {
		if strings.TrimSpace(d.Patch) == "" {
			continue
		}
		for _, line := range strings.Split(d.Patch, "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			case strings.HasPrefix(line, "+"):
				meta.Additions++
			case strings.HasPrefix(line, "-"):
				meta.Deletions++
			}
		}
	}

	return meta
}

// buildSummary creates a one-line summary of the routing outcome.
func buildSummary(scores interfaces.ScoreMap, selection interfaces.Selection) string {
	prof := selection.Primary.Profile()
	scored := nonZeroScores(scores)
	if scored == "" {
		return fmt.Sprintf("Primary: %s (%d/100), no scoring rule matched", prof.DisplayName, selection.PrimaryScore)
	}
	return fmt.Sprintf("Primary: %s (%d/100), scores: %s", prof.DisplayName, selection.PrimaryScore, scored)
}

// nonZeroScores lists every persona with points, highest first. Personas
// with equal scores keep declaration order.
func nonZeroScores(scores interfaces.ScoreMap) string {
	type entry struct {
		persona interfaces.Persona
		score   int
	}

	var entries []entry
	for _, p := range interfaces.AllPersonas() {
		if scores[p] > 0 {
			entries = append(entries, entry{persona: p, score: scores[p]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s: %d", e.persona.Profile().DisplayName, e.score))
	}
	return strings.Join(parts, ", ")
}

// newULID generates a new ULID string.
func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}

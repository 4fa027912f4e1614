// Package interfaces defines the shared types and contracts for all review modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import (
	"strings"
	"time"
)

// DiffRecord is the minimal description of one changed file in a merge
// request: its old/new paths and the unified-diff patch text.
type DiffRecord struct {
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`
	Patch   string `json:"diff"`
}

// Path returns the effective file path: the new path when set, otherwise
// the old path. Blank (whitespace-only) paths count as unset.
func (d DiffRecord) Path() string {
	if strings.TrimSpace(d.NewPath) != "" {
		return d.NewPath
	}
	return d.OldPath
}

// HasPath reports whether the record carries a usable file path.
// Records without one are skipped by scoring.
func (d DiffRecord) HasPath() bool {
	return strings.TrimSpace(d.Path()) != ""
}

// ScoreMap holds the accumulated relevance score for every persona.
// Every persona is always present, zero-initialized; values stay in [0,100].
type ScoreMap map[Persona]int

// ReviewMode selects how the review prompt is composed.
type ReviewMode string

const (
	ModePersona    ReviewMode = "persona"    // specialized persona review
	ModeIntegrated ReviewMode = "integrated" // generic full-stack review
)

// ParseReviewMode converts a config string into a ReviewMode.
// Matching is case-insensitive; unknown values fall back to ModePersona.
func ParseReviewMode(s string) ReviewMode {
	if strings.EqualFold(s, string(ModeIntegrated)) {
		return ModeIntegrated
	}
	return ModePersona
}

// Selection is the outcome of routing a diff set to a persona.
// Mentions never contains Primary and is ordered by persona declaration order.
type Selection struct {
	Primary      Persona   `json:"primary"`
	PrimaryScore int       `json:"primary_score"`
	Mentions     []Persona `json:"mentions,omitempty"`
}

// DiffMetadata summarises the scope of a diff set.
type DiffMetadata struct {
	FilesChanged int `json:"files_changed"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
}

// Report is the final output of a routing run: which persona reviews the
// change, every persona's score, the prompt that drives the review, and
// summary stats about the diff set.
type Report struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Mode      ReviewMode    `json:"mode"`
	Selection Selection     `json:"selection"`
	Scores    ScoreMap      `json:"scores"`
	Summary   string        `json:"summary"`
	Prompt    string        `json:"prompt,omitempty"`
	DiffMeta  DiffMetadata  `json:"diff_metadata"`
	Duration  time.Duration `json:"duration"`
}

// Package vcs parses version control diffs into the records the scorer and
// prompt composer consume.
package vcs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

var (
	ErrEmptyDiff   = errors.New("vcs: empty diff input")
	ErrInvalidDiff = errors.New("vcs: invalid diff format")
)

var (
	diffHeaderRegex = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)
	binaryFileRegex = regexp.MustCompile(`^Binary files .+ and .+ differ$`)
)

// diffParser implements the interfaces.DiffParser interface.
type diffParser struct{}

// NewDiffParser creates a DiffParser that handles unified diff format.
func NewDiffParser() interfaces.DiffParser {
	return &diffParser{}
}

func (p *diffParser) Parse(ctx context.Context, raw []byte) ([]interfaces.DiffRecord, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyDiff
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	var current *fileState
	var records []interfaces.DiffRecord

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("vcs: parsing cancelled: %w", ctx.Err())
		default:
		}

		line := scanner.Text()

		// Start of a new file diff
		if matches := diffHeaderRegex.FindStringSubmatch(line); matches != nil {
			if current != nil {
				records = append(records, current.toRecord())
			}
			current = &fileState{
				gitOldPath: matches[1],
				gitNewPath: matches[2],
			}
			continue
		}

		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "--- "):
			current.minusHeader = strings.TrimPrefix(line, "--- ")
		case strings.HasPrefix(line, "+++ "):
			current.plusHeader = strings.TrimPrefix(line, "+++ ")
		case strings.HasPrefix(line, "rename from "):
			current.renameFrom = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			current.renameTo = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "new file mode"):
			current.newFile = true
		case strings.HasPrefix(line, "deleted file mode"):
			current.deletedFile = true
		case binaryFileRegex.MatchString(line):
			current.binary = true
		case hunkHeaderRegex.MatchString(line):
			current.inHunk = true
			current.patchLines = append(current.patchLines, line)
		case strings.HasPrefix(line, "\\"):
			// "\ No newline at end of file" marker, skip
		case current.inHunk:
			current.patchLines = append(current.patchLines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vcs: reading diff: %w", err)
	}

	if current != nil {
		records = append(records, current.toRecord())
	}

	if len(records) == 0 {
		return nil, ErrInvalidDiff
	}

	return records, nil
}

func (p *diffParser) ParseFile(ctx context.Context, path string) ([]interfaces.DiffRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vcs: reading diff file %s: %w", path, err)
	}
	return p.Parse(ctx, data)
}

// fileState holds mutable state while parsing a single file's diff.
type fileState struct {
	gitOldPath  string
	gitNewPath  string
	minusHeader string
	plusHeader  string
	renameFrom  string
	renameTo    string
	newFile     bool
	deletedFile bool
	binary      bool
	inHunk      bool
	patchLines  []string
}

// toRecord resolves the old/new paths from the collected headers. Added
// files carry only a new path, deleted files only an old path, so the
// scorer's effective-path rule lands on the side that still exists.
func (f *fileState) toRecord() interfaces.DiffRecord {
	rec := interfaces.DiffRecord{
		Patch: strings.Join(f.patchLines, "\n"),
	}

	switch {
	case f.renameFrom != "" || f.renameTo != "":
		rec.OldPath = f.renameFrom
		rec.NewPath = f.renameTo
		if rec.OldPath == "" {
			rec.OldPath = f.gitOldPath
		}
		if rec.NewPath == "" {
			rec.NewPath = f.gitNewPath
		}
	case f.newFile || f.minusHeader == "/dev/null":
		rec.NewPath = f.gitNewPath
	case f.deletedFile || f.plusHeader == "/dev/null":
		rec.OldPath = f.gitOldPath
	default:
		rec.OldPath = f.gitOldPath
		rec.NewPath = f.gitNewPath
	}

	return rec
}

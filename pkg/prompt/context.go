package prompt

import (
	"fmt"
	"strings"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// maxFileList caps how many changed paths the summary block lists.
// The file count above the list always reports the full total.
const maxFileList = 20

// userPrompt renders the change summary and every diff for the model.
func userPrompt(diffs []interfaces.DiffRecord) string {
	return fmt.Sprintf(`Review the following changes according to the rules above.

Context:
- Changed files: %d
- File list (first %d shown):
%s

Changes as unified diff:
%s`,
		len(diffs),
		maxFileList,
		fileList(diffs),
		diffContent(diffs),
	)
}

// fileList renders up to maxFileList changed paths, one per line.
// Paths beyond the cap are dropped silently.
func fileList(diffs []interfaces.DiffRecord) string {
	if len(diffs) == 0 {
		return "  - (no changed files)"
	}

	n := len(diffs)
	if n > maxFileList {
		n = maxFileList
	}

	entries := make([]string, 0, n)
	for _, d := range diffs[:n] {
		entries = append(entries, "  - "+d.Path())
	}
	return strings.Join(entries, "\n")
}

// diffContent renders every record as a "File:" header plus a fenced diff
// block. Records with empty patch text render an empty fence, not nothing.
func diffContent(diffs []interfaces.DiffRecord) string {
	if len(diffs) == 0 {
		return "(no diff)"
	}

	blocks := make([]string, 0, len(diffs))
	for _, d := range diffs {
		blocks = append(blocks, fmt.Sprintf("File: %s\n```diff\n%s\n```", d.Path(), d.Patch))
	}
	return strings.Join(blocks, "\n\n")
}

package interfaces

import "context"

// DiffParser parses raw unified diff content into DiffRecords.
// Used for both file-based diffs and piped input.
type DiffParser interface {
	// Parse converts raw unified diff bytes into diff records, one per file.
	Parse(ctx context.Context, raw []byte) ([]DiffRecord, error)

	// ParseFile reads a diff file from disk and parses it.
	ParseFile(ctx context.Context, path string) ([]DiffRecord, error)
}

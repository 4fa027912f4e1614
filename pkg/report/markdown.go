package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// MarkdownFormatter writes a routing report as Markdown, suitable for
// posting as a merge request comment.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w, report)
	f.writeSelection(w, report)
	f.writeScores(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, report *interfaces.Report) {
	prof := report.Selection.Primary.Profile()
	fmt.Fprintf(w, "## %s %s AI Code Review\n\n", prof.Emoji, prof.DisplayName)
}

func (f *MarkdownFormatter) writeSelection(w io.Writer, report *interfaces.Report) {
	prof := report.Selection.Primary.Profile()
	fmt.Fprintf(w, "**Primary reviewer**: %s (%d/100)\n\n", prof.DisplayName, report.Selection.PrimaryScore)
	fmt.Fprintf(w, "%s\n\n", prof.Description)

	if len(report.Selection.Mentions) > 0 {
		names := make([]string, 0, len(report.Selection.Mentions))
		for _, p := range report.Selection.Mentions {
			names = append(names, p.Profile().DisplayName)
		}
		fmt.Fprintf(w, "**Also consider**: %s\n\n", strings.Join(names, ", "))
	}
}

func (f *MarkdownFormatter) writeScores(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "| Persona | Score | |")
	fmt.Fprintln(w, "|---------|------:|---|")

	for _, p := range interfaces.AllPersonas() {
		marker := ""
		switch {
		case p == report.Selection.Primary:
			marker = "primary"
		case isMention(report.Selection.Mentions, p):
			marker = "mention"
		}
		prof := p.Profile()
		fmt.Fprintf(w, "| %s %s | %d | %s |\n", prof.Emoji, prof.DisplayName, report.Scores[p], marker)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	meta := report.DiffMeta
	fmt.Fprintf(w, "_Files: %d | +%d/-%d | Report: %s | Generated: %s_\n",
		meta.FilesChanged, meta.Additions, meta.Deletions,
		report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
}

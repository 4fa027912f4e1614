package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	primaryColor = color.New(color.FgHiGreen, color.Bold)
	mentionColor = color.New(color.FgHiYellow)
	dimColor     = color.New(color.Faint)
)

// TerminalFormatter writes a color-coded routing report for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w)
	f.writeSelection(w, report)
	f.writeScores(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", headingColor.Sprint("Merge Request Review Routing"))
}

func (f *TerminalFormatter) writeSelection(w io.Writer, report *interfaces.Report) {
	prof := report.Selection.Primary.Profile()
	fmt.Fprintf(w, "  %s %s\n", prof.Emoji,
		primaryColor.Sprintf("%s (%d/100)", prof.DisplayName, report.Selection.PrimaryScore))
	fmt.Fprintf(w, "     %s\n", dimColor.Sprint(prof.Description))

	if len(report.Selection.Mentions) > 0 {
		names := make([]string, 0, len(report.Selection.Mentions))
		for _, p := range report.Selection.Mentions {
			names = append(names, p.Profile().DisplayName)
		}
		fmt.Fprintf(w, "  %s %s\n", mentionColor.Sprint("Also consider:"), strings.Join(names, ", "))
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeScores(w io.Writer, report *interfaces.Report) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "  ", Right: "  "}),
	)
	table.Header([]string{"Persona", "Score", ""})

	for _, p := range interfaces.AllPersonas() {
		marker := ""
		switch {
		case p == report.Selection.Primary:
			marker = "primary"
		case isMention(report.Selection.Mentions, p):
			marker = "mention"
		}
		_ = table.Append([]string{
			p.Profile().DisplayName,
			strconv.Itoa(report.Scores[p]),
			marker,
		})
	}
	_ = table.Render()
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	meta := report.DiffMeta
	fmt.Fprintf(w, "\n  %s\n\n", dimColor.Sprintf("Files: %d | +%d/-%d | Report: %s | Generated: %s",
		meta.FilesChanged, meta.Additions, meta.Deletions,
		report.ID, report.Timestamp.Format("2006-01-02 15:04:05")))
}

func isMention(mentions []interfaces.Persona, p interfaces.Persona) bool {
	for _, m := range mentions {
		if m == p {
			return true
		}
	}
	return false
}

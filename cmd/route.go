package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/cli"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/prompt"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/report"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/scorer"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/vcs"
)

var diffFile string

var routeCmd = &cobra.Command{
	Use:   "route [path]",
	Short: "Score a diff and select the best-fit reviewer persona",
	Long: `Route scores the changes against every reviewer persona and reports
which persona should own the review.

Route a diff file directly:
  mr-review route --diff ./path/to/file.diff

Route a diff from a pipe:
  git diff main...HEAD | mr-review route --diff -

Route a working tree (compares against git HEAD):
  mr-review route ./path/to/repo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&diffFile, "diff", "", "path to a unified diff file to score, or - for stdin")
	rootCmd.AddCommand(routeCmd)
}

// formatter writes a structured report to a writer.
type formatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

func runRoute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	if diffFile == "" && target == "" {
		return fmt.Errorf("route: provide either --diff <file> or a target path")
	}

	// 1. Load configuration.
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	formatName := applyConfigOutput(cmd, cfg)

	slog.Debug("config loaded", "mode", cfg.Mode, "weights", cfg.Weights)

	// 2. Build the scorer, with an external weight table when configured.
	sc, err := buildScorer(cfg)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	// 3. Parse the diff.
	diffs, err := loadDiffs(ctx, diffFile, target)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	slog.Info("diff parsed", "files", len(diffs))

	// 4. Score every persona and select the primary.
	scores := sc.Score(diffs)
	selection := sc.Select(scores)

	slog.Info("persona selected",
		"persona", selection.Primary,
		"score", selection.PrimaryScore,
		"mentions", len(selection.Mentions),
	)

	// 5. Compose the prompt the selection leads to.
	composer := prompt.NewComposer(prompt.WithSystemPrompt(cfg.Prompt.System))
	mode := interfaces.ParseReviewMode(cfg.Mode)

	var promptText string
	switch mode {
	case interfaces.ModeIntegrated:
		promptText = composer.ComposeIntegrated(diffs)
	default:
		promptText = composer.Compose(selection.Primary, diffs)
	}

	// 6. Generate report.
	gen := report.NewGenerator()
	rpt := gen.Generate(mode, scores, selection, promptText, diffs)

	// 7. Select formatter and write output.
	f := selectFormatter(formatName)

	w, closeOutput, err := openOutput()
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	defer closeOutput()

	if err := f.Format(w, rpt); err != nil {
		return fmt.Errorf("route: writing report: %w", err)
	}

	return nil
}

// buildScorer constructs the scorer, loading an external weight table and
// applying threshold overrides when the config carries them.
func buildScorer(cfg *cli.Config) (*scorer.Scorer, error) {
	var opts []scorer.Option

	if cfg.Weights != "" {
		slog.Info("loading weight table", "path", cfg.Weights)
		table, err := scorer.LoadTable(cfg.Weights)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scorer.WithTable(table))
	}
	if cfg.Thresholds.Selection > 0 || cfg.Thresholds.Mention > 0 {
		opts = append(opts, scorer.WithThresholds(cfg.Thresholds.Selection, cfg.Thresholds.Mention))
	}

	return scorer.NewScorer(opts...)
}

// loadDiffs parses the diff from stdin when diffPath is "-", from a file
// when one is named, otherwise from `git diff HEAD` in the target directory.
func loadDiffs(ctx context.Context, diffPath, target string) ([]interfaces.DiffRecord, error) {
	parser := vcs.NewDiffParser()

	switch {
	case diffPath == "-":
		slog.Info("reading diff from stdin")
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading diff from stdin: %w", err)
		}
		return parser.Parse(ctx, raw)
	case diffPath != "":
		slog.Info("parsing diff file", "path", diffPath)
		return parser.ParseFile(ctx, diffPath)
	default:
		slog.Info("running git diff", "target", target)
		return diffFromGit(ctx, parser, target)
	}
}

// diffFromGit runs `git diff HEAD` in the given directory and parses the output.
func diffFromGit(ctx context.Context, parser interfaces.DiffParser, dir string) ([]interfaces.DiffRecord, error) {
	gitCmd := exec.CommandContext(ctx, "git", "diff", "HEAD")
	gitCmd.Dir = dir

	out, err := gitCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running git diff in %s: %w", dir, err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no changes found in %s (git diff HEAD returned empty)", dir)
	}

	return parser.Parse(ctx, out)
}

// applyConfigOutput merges config output settings with the command line.
// Flags win over config when both are set.
func applyConfigOutput(cmd *cobra.Command, cfg *cli.Config) string {
	if cfg.Output.Verbose && !verbose {
		verbose = true
		_ = setupLogging()
	}

	name := format
	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		name = cfg.Output.Format
	}
	return name
}

// openOutput returns the report destination: the --output file when set,
// stdout otherwise.
func openOutput() (io.Writer, func(), error) {
	if output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// selectFormatter returns the report formatter for the given format name.
func selectFormatter(name string) formatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}

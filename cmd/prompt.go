package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/cli"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
	"github.com/Int-Type/gitlab-mr-auto-review/pkg/prompt"
)

var (
	promptDiffFile string
	promptMode     string
	promptPersona  string
)

var promptCmd = &cobra.Command{
	Use:   "prompt [path]",
	Short: "Compose the review prompt for a diff",
	Long: `Prompt scores the changes, selects a reviewer persona, and prints the
full prompt a language model needs to review them.

Compose a persona-mode prompt (persona picked by scoring):
  mr-review prompt --diff ./path/to/file.diff

Compose from a pipe:
  git diff main...HEAD | mr-review prompt --diff -

Force a specific persona instead of scoring:
  mr-review prompt --diff ./file.diff --persona security_auditor

Compose a single integrated prompt:
  mr-review prompt --diff ./file.diff --mode integrated`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&promptDiffFile, "diff", "", "path to a unified diff file to review, or - for stdin")
	promptCmd.Flags().StringVar(&promptMode, "mode", "", "review mode (persona|integrated), overrides config")
	promptCmd.Flags().StringVar(&promptPersona, "persona", "", "force a persona instead of scoring (persona mode only)")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	if promptDiffFile == "" && target == "" {
		return fmt.Errorf("prompt: provide either --diff <file> or a target path")
	}

	// 1. Load configuration.
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	mode := interfaces.ParseReviewMode(cfg.Mode)
	if promptMode != "" {
		mode = interfaces.ParseReviewMode(promptMode)
	}

	slog.Debug("config loaded", "mode", mode, "weights", cfg.Weights)

	// 2. Parse the diff.
	diffs, err := loadDiffs(ctx, promptDiffFile, target)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	slog.Info("diff parsed", "files", len(diffs))

	composer := prompt.NewComposer(prompt.WithSystemPrompt(cfg.Prompt.System))

	// 3. Compose the prompt for the resolved mode.
	var text string
	switch mode {
	case interfaces.ModeIntegrated:
		text = composer.ComposeIntegrated(diffs)
	default:
		persona, personaErr := resolvePersona(cfg, diffs)
		if personaErr != nil {
			return fmt.Errorf("prompt: %w", personaErr)
		}
		slog.Info("composing persona prompt", "persona", persona)
		text = composer.Compose(persona, diffs)
	}

	// 4. Write the prompt.
	w, closeOutput, err := openOutput()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	defer closeOutput()

	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("prompt: writing prompt: %w", err)
	}

	return nil
}

// resolvePersona returns the forced persona when --persona is set, otherwise
// scores the diffs and selects one.
func resolvePersona(cfg *cli.Config, diffs []interfaces.DiffRecord) (interfaces.Persona, error) {
	if promptPersona != "" {
		p, ok := interfaces.ParsePersona(promptPersona)
		if !ok {
			return "", fmt.Errorf("unknown persona %q", promptPersona)
		}
		return p, nil
	}

	sc, err := buildScorer(cfg)
	if err != nil {
		return "", err
	}

	selection := sc.Select(sc.Score(diffs))
	slog.Info("persona selected", "persona", selection.Primary, "score", selection.PrimaryScore)
	return selection.Primary, nil
}

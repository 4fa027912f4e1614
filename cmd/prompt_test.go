package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_SecurityDiff_PersonaModeBySelection(t *testing.T) {
	resetFlags(t)
	t.Chdir(t.TempDir())
	diffPath := writeDiffFile(t, securityDiff)
	outPath := filepath.Join(t.TempDir(), "prompt.txt")

	err := execute(t, "prompt", "--diff", diffPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "You are a security auditor"),
		"expected the scored persona's identity to open the prompt")
	assert.Contains(t, text, "\n\n---\n\n")
	assert.Contains(t, text, "- Changed files: 1")
	assert.Contains(t, text, "File: src/main/java/com/acme/user/UserController.java")
	assert.Contains(t, text, "```diff")
}

func TestPrompt_ForcedPersona_SkipsScoring(t *testing.T) {
	resetFlags(t)
	t.Chdir(t.TempDir())
	diffPath := writeDiffFile(t, securityDiff)
	outPath := filepath.Join(t.TempDir(), "prompt.txt")

	err := execute(t, "prompt", "--diff", diffPath, "--persona", "performance_tuner", "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "You are a performance engineer"),
		"expected the forced persona regardless of scores")
}

func TestPrompt_UnknownPersona_Error(t *testing.T) {
	resetFlags(t)
	t.Chdir(t.TempDir())
	diffPath := writeDiffFile(t, securityDiff)

	err := execute(t, "prompt", "--diff", diffPath, "--persona", "space_cadet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown persona")
}

func TestPrompt_IntegratedMode_GeneralistPrompt(t *testing.T) {
	resetFlags(t)
	t.Chdir(t.TempDir())
	diffPath := writeDiffFile(t, securityDiff)
	outPath := filepath.Join(t.TempDir(), "prompt.txt")

	err := execute(t, "prompt", "--diff", diffPath, "--mode", "integrated", "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "You are a seasoned full-stack reviewer"),
		"expected the integrated identity")
}

func TestPrompt_ConfigMode_UsedWhenFlagAbsent(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mr-review.yml"),
		[]byte("mode: integrated\n"), 0o644))
	t.Chdir(dir)

	diffPath := writeDiffFile(t, securityDiff)
	outPath := filepath.Join(t.TempDir(), "prompt.txt")

	err := execute(t, "prompt", "--diff", diffPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "You are a seasoned full-stack reviewer"),
		"expected the config mode to apply without a flag")
}

func TestPrompt_ConfigSystemOverride_IntegratedOnly(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mr-review.yml"),
		[]byte("mode: integrated\nprompt:\n  system: Use the house review rules.\n"), 0o644))
	t.Chdir(dir)

	diffPath := writeDiffFile(t, securityDiff)
	outPath := filepath.Join(t.TempDir(), "prompt.txt")

	err := execute(t, "prompt", "--diff", diffPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "Use the house review rules.\n\n---\n\n"),
		"expected the configured system prompt to replace the built-in one")
}

func TestPrompt_NoDiffNoTarget_Error(t *testing.T) {
	resetFlags(t)
	t.Chdir(t.TempDir())

	err := execute(t, "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--diff")
}

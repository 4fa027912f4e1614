// Package prompt composes the review prompts handed to the text-generation
// backend. Composition is deterministic: identical inputs produce
// byte-identical prompts, and nothing here performs I/O.
package prompt

import "github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"

// NoChangesMessage replaces the full prompt when there is nothing to review.
const NoChangesMessage = "🤖 No changes found. Skipping the review."

// promptSeparator joins the system and user halves for backends that take a
// single combined prompt.
const promptSeparator = "\n\n---\n\n"

// diffRules explains the unified diff sign conventions so the model never
// reports an already-fixed problem as outstanding.
const diffRules = `How to read the diff (strict):
- Lines starting with "-" are the previous state: code that was removed.
- Lines starting with "+" are the current state: code after this change.
- When a problem visible on "-" lines is fixed on "+" lines, it was resolved by this change. Acknowledge it as an improvement and never report it as an outstanding issue.
- Only raise points that still apply to the current code.`

// styleRules pins down the review's voice and shape.
const styleRules = `How to write the review (strict):
- Write plain conversational text. No markdown, no headings, no bullet lists, no code fences.
- Start with exactly this sentence: "Hello, thanks for the merge request. I took a close look at the changes."
- Raise at most 2 to 3 issues, the most important ones first.
- Stick to facts visible in the diff. Do not speculate about code you cannot see.`

// Composer builds review prompts from diff data.
type Composer struct {
	systemOverride string
}

// Option configures the Composer.
type Option func(*Composer)

// WithSystemPrompt replaces the built-in integrated-mode system prompt with
// operator-supplied text. Persona-mode prompts are never overridden.
func WithSystemPrompt(text string) Option {
	return func(c *Composer) {
		c.systemOverride = text
	}
}

// NewComposer creates a prompt composer.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the complete persona-mode prompt. An empty diff list
// short-circuits to NoChangesMessage.
func (c *Composer) Compose(persona interfaces.Persona, diffs []interfaces.DiffRecord) string {
	if len(diffs) == 0 {
		return NoChangesMessage
	}
	return c.SystemPrompt(persona) + promptSeparator + c.UserPrompt(diffs)
}

// ComposeIntegrated builds the complete integrated-mode prompt. An empty
// diff list short-circuits to NoChangesMessage.
func (c *Composer) ComposeIntegrated(diffs []interfaces.DiffRecord) string {
	if len(diffs) == 0 {
		return NoChangesMessage
	}
	return c.IntegratedSystemPrompt() + promptSeparator + c.UserPrompt(diffs)
}

// SystemPrompt returns the persona-mode system half, for backends that send
// system and user roles separately.
func (c *Composer) SystemPrompt(persona interfaces.Persona) string {
	return personaSystemPrompt(persona)
}

// IntegratedSystemPrompt returns the integrated-mode system half, honoring
// a configured override.
func (c *Composer) IntegratedSystemPrompt() string {
	if c.systemOverride != "" {
		return c.systemOverride
	}
	return integratedSystemPrompt()
}

// UserPrompt returns the user half: the change summary plus every diff
// fenced as a diff block.
func (c *Composer) UserPrompt(diffs []interfaces.DiffRecord) string {
	return userPrompt(diffs)
}

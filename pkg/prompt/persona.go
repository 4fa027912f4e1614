package prompt

import (
	"fmt"

	"github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"
)

// personaSystemPrompt assembles the persona-specific review instructions:
// identity and interests first, then the shared diff and style rules, then
// the persona's closing question.
func personaSystemPrompt(p interfaces.Persona) string {
	prof := p.Profile()
	return fmt.Sprintf(`%s
%s

%s

%s

Finish the review with this question to the author: %q`,
		prof.Identity,
		prof.Interests,
		diffRules,
		styleRules,
		prof.Closing,
	)
}

package prompt

import "fmt"

// Integrated mode reviews with one generalist voice instead of a routed
// specialist. The triple below mirrors the shape of a persona profile.
const (
	integratedIdentity  = "You are a seasoned full-stack reviewer covering backend, frontend, data, and infrastructure changes alike."
	integratedInterests = "You look at correctness, security, performance, tests, and maintainability, weighting whatever matters most for the change at hand."
	integratedClosing   = "Which part of this change deserves a second pair of eyes before it merges?"
)

// integratedSystemPrompt assembles the generalist review instructions using
// the same structural template as the persona prompt.
func integratedSystemPrompt() string {
	return fmt.Sprintf(`%s
%s

%s

%s

Finish the review with this question to the author: %q`,
		integratedIdentity,
		integratedInterests,
		diffRules,
		styleRules,
		integratedClosing,
	)
}

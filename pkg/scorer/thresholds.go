package scorer

// Default threshold values, out of a maximum score of 100.
const (
	// DefaultSelectionThreshold is the minimum score for a specialized
	// persona to win the review over the general reviewer.
	DefaultSelectionThreshold = 40

	// DefaultMentionThreshold is the minimum score for a non-primary
	// persona to be listed as worth an extra look.
	DefaultMentionThreshold = 60
)

package scorer

import "github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"

// Select applies the threshold and fallback policy to a score map.
// The candidate is the highest-scoring persona; ties break in favor of the
// persona declared first in interfaces.AllPersonas. A candidate below the
// selection threshold is replaced by the general reviewer with its own
// score, which may itself be below threshold. Mentions collects every other
// persona at or above the mention threshold, in declaration order.
func Select(scores interfaces.ScoreMap, selectionThreshold, mentionThreshold int) interfaces.Selection {
	primary := interfaces.PersonaGeneralReviewer
	best := -1
	for _, p := range interfaces.AllPersonas() {
		if s := scores[p]; s > best {
			primary, best = p, s
		}
	}

	if best < selectionThreshold {
		primary = interfaces.PersonaGeneralReviewer
		best = scores[interfaces.PersonaGeneralReviewer]
	}

	var mentions []interfaces.Persona
	for _, p := range interfaces.AllPersonas() {
		if p == primary {
			continue
		}
		if scores[p] >= mentionThreshold {
			mentions = append(mentions, p)
		}
	}

	return interfaces.Selection{
		Primary:      primary,
		PrimaryScore: best,
		Mentions:     mentions,
	}
}

// Select routes a score map using the scorer's resolved thresholds.
func (s *Scorer) Select(scores interfaces.ScoreMap) interfaces.Selection {
	return Select(scores, s.selectionThreshold, s.mentionThreshold)
}

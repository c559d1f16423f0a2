// Package match reconciles one validated video candidate with the
// metadata provider: picking the right track among several results,
// scoring how confident that correspondence is, and deciding whether
// and how the result surfaces to the user.
package match

import "github.com/wavecrossed/tubefy/entity"

// BestTrack weights for picking among several provider results for one
// candidate. Duration dominates here: titles between providers are too
// inconsistent to disambiguate on, durations rarely are.
const (
	durationTight      = 5  // seconds
	durationLoose      = 15 // seconds
	durationTightScore = 0.6
	durationLooseScore = 0.3
	durationFarScore   = 0.1
	durationUnknown    = 0.3 // neutral when either side has no duration

	popularityWeight   = 0.3
	completenessBonus  = 0.1
	bestTrackThreshold = 0.4
)

// BestTrack picks the metadata track most plausibly corresponding to
// the candidate, or nil when nothing clears the threshold. This scorer
// answers "which of these results is the song" and is deliberately
// weighted differently from Confidence, which answers "how sure are we
// about the one we picked".
func BestTrack(candidate entity.Candidate, tracks []entity.Track) *entity.Track {
	var (
		best      *entity.Track
		bestScore float64
	)

	for i := range tracks {
		track := &tracks[i]
		score := durationAffinity(candidate, track) +
			float64(track.Popularity)/100*popularityWeight
		if track.Title != "" && len(track.Artists) > 0 {
			score += completenessBonus
		}
		if score > bestScore {
			best, bestScore = track, score
		}
	}

	if bestScore <= bestTrackThreshold {
		return nil
	}
	return best
}

func durationAffinity(candidate entity.Candidate, track *entity.Track) float64 {
	if !candidate.KnownDuration() || track.Duration() == 0 {
		return durationUnknown
	}

	gap := candidate.Duration - track.Duration()
	if gap < 0 {
		gap = -gap
	}
	switch {
	case gap <= durationTight:
		return durationTightScore
	case gap <= durationLoose:
		return durationLooseScore
	default:
		return durationFarScore
	}
}

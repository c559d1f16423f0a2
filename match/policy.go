package match

import (
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/filter"
)

// Inclusion thresholds. The no-track fallback is deliberately stricter
// than the low-confidence one: when no cross-provider validation was
// even attempted, the candidate has to stand further on its own.
const (
	HighConfidenceThreshold   = 80
	MediumConfidenceThreshold = 60
	FallbackRelevanceGate     = 65 // track existed but matched poorly
	SourceOnlyRelevanceGate   = 70 // no track at all
)

// Decide applies the tiered inclusion policy to one candidate and its
// optionally matched track, producing the terminal Match artifact. The
// attached track is only ever non-nil for the two confidence tiers, so
// callers cannot accidentally tag a bootleg with a stranger's album.
func Decide(candidate entity.Candidate, track *entity.Track, query string) entity.Match {
	if track != nil {
		confidence := Confidence(candidate, track)
		switch {
		case confidence >= HighConfidenceThreshold:
			return entity.Match{Candidate: candidate, Track: track, Confidence: confidence, Reason: entity.ReasonHighConfidence}
		case confidence >= MediumConfidenceThreshold:
			return entity.Match{Candidate: candidate, Track: track, Confidence: confidence, Reason: entity.ReasonMediumConfidence}
		}

		if relevance := filter.Relevance(candidate, query); relevance >= FallbackRelevanceGate {
			return entity.Match{Candidate: candidate, Confidence: relevance, Reason: entity.ReasonSourceOnly}
		}
		return entity.Match{Candidate: candidate, Confidence: confidence, Reason: entity.ReasonLowConfidence}
	}

	relevance := filter.Relevance(candidate, query)
	if relevance >= SourceOnlyRelevanceGate {
		return entity.Match{Candidate: candidate, Confidence: relevance, Reason: entity.ReasonSourceOnly}
	}
	return entity.Match{Candidate: candidate, Confidence: relevance, Reason: entity.ReasonIrrelevant}
}

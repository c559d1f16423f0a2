package entity

import "fmt"

// Reason explains why a candidate was included in (or dropped from) the
// final result list.
type Reason string

const (
	ReasonHighConfidence   Reason = "high_confidence_match"
	ReasonMediumConfidence Reason = "medium_confidence_match"
	ReasonSourceOnly       Reason = "source_only"
	ReasonLowConfidence    Reason = "low_confidence"
	ReasonIrrelevant       Reason = "irrelevant"
)

// Included reports whether a result with this reason is surfaced to the
// user at all.
func (reason Reason) Included() bool {
	switch reason {
	case ReasonHighConfidence, ReasonMediumConfidence, ReasonSourceOnly:
		return true
	}
	return false
}

// Tagged reports whether a result with this reason is eligible for
// metadata-provider tags. Source-only results must instead be tagged
// from their own title and channel, never from an unmatched track.
func (reason Reason) Tagged() bool {
	return reason == ReasonHighConfidence || reason == ReasonMediumConfidence
}

// Match is the terminal artifact emitted per surviving candidate.
// Track is nil unless the reason is one of the two confidence tiers.
type Match struct {
	Candidate  Candidate
	Track      *Track
	Confidence float64 // in [0,100]
	Reason     Reason
}

// Filename builds the installed file name, "Artist - Title.mp3", from
// whichever metadata source the reason allows.
func (match Match) Filename() string {
	title := match.Candidate.Title
	artist := ""
	if match.Reason.Tagged() && match.Track != nil {
		title = match.Track.Title
		artist = match.Track.Lead()
	}
	if artist == "" {
		return fmt.Sprintf("%s.%s", title, TrackFormat)
	}
	return fmt.Sprintf("%s - %s.%s", artist, title, TrackFormat)
}

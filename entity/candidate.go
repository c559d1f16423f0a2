package entity

// Candidate is a single raw result coming from the video search provider.
// It is immutable once built and lives only for the duration of one search.
type Candidate struct {
	Title       string
	Channel     string
	Duration    int    // in seconds, 0 when unknown
	RawDuration string // provider-formatted duration, e.g. "3:45"
	URL         string
}

// KnownDuration reports whether the provider exposed a usable duration.
// A zero duration means "unknown" and must never be penalized as a
// mismatch by scoring paths.
func (candidate Candidate) KnownDuration() bool {
	return candidate.Duration > 0
}

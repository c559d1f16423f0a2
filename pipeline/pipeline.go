// Package pipeline wires the collaborators around the pure filtering
// and matching core: fetch candidates, filter them, look up metadata
// per survivor, reconcile and decide.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/arunsworld/nursery"
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/filter"
	"github.com/wavecrossed/tubefy/match"
	"github.com/wavecrossed/tubefy/normalize"
)

// Collaborator contracts. Both must treat "nothing found" as an empty
// result, not an error.
type (
	VideoSearch func(ctx context.Context, query string, limit int) ([]entity.Candidate, error)
	TrackSearch func(ctx context.Context, query string, limit int) ([]entity.Track, error)
)

type Options struct {
	MaxResults  int // final result cap, default 5
	SearchLimit int // candidates fetched from the video provider, default 20
	TrackLimit  int // metadata results per candidate query, default 5
}

const (
	defaultSearchLimit = 20
	defaultTrackLimit  = 5
)

type Pipeline struct {
	videos  VideoSearch
	tracks  TrackSearch
	options Options
}

// New builds a pipeline. The track search may be nil, in which case
// every candidate goes through the source-only policy branch.
func New(videos VideoSearch, tracks TrackSearch, options Options) *Pipeline {
	if options.MaxResults <= 0 {
		options.MaxResults = filter.DefaultMaxResults
	}
	if options.SearchLimit <= 0 {
		options.SearchLimit = defaultSearchLimit
	}
	if options.TrackLimit <= 0 {
		options.TrackLimit = defaultTrackLimit
	}
	return &Pipeline{videos: videos, tracks: tracks, options: options}
}

// Search runs the full reconciliation flow for one query. Candidates
// keep the order the filter produced; metadata lookups for different
// candidates run concurrently in between the pure stages.
func (pipeline *Pipeline) Search(ctx context.Context, query string) ([]entity.Match, error) {
	candidates, err := pipeline.videos(ctx, query, pipeline.options.SearchLimit)
	if err != nil {
		return nil, err
	}

	kept := filter.Apply(candidates, query, pipeline.options.MaxResults)
	if len(kept) == 0 {
		return nil, nil
	}

	matches := make([]entity.Match, len(kept))
	jobs := make([]nursery.ConcurrentJob, len(kept))
	for i := range kept {
		index, candidate := i, kept[i]
		jobs[index] = func(ctx context.Context, _ chan error) {
			tracks := pipeline.lookupTracks(ctx, candidate)
			best := match.BestTrack(candidate, tracks)
			matches[index] = match.Decide(candidate, best, query)
		}
	}
	if err := nursery.RunConcurrentlyWithContext(ctx, jobs...); err != nil {
		return nil, err
	}
	return matches, nil
}

// lookupTracks tries the candidate queries in order and keeps the first
// non-empty response. Collaborator failures degrade to "no tracks";
// the policy then falls through to its source-only branch.
func (pipeline *Pipeline) lookupTracks(ctx context.Context, candidate entity.Candidate) []entity.Track {
	if pipeline.tracks == nil {
		return nil
	}
	for _, query := range CandidateQueries(candidate) {
		tracks, err := pipeline.tracks(ctx, query, pipeline.options.TrackLimit)
		if err != nil {
			continue
		}
		if len(tracks) > 0 {
			return tracks
		}
	}
	return nil
}

// CandidateQueries builds the ordered metadata-search queries for a
// candidate: a quoted exact title first for remixes and other variants
// (broad queries latch onto the unrelated original), then artist+song,
// the loose cleaned title, the song alone and the simplified title.
func CandidateQueries(candidate entity.Candidate) []string {
	cleaned := normalize.CleanQuery(candidate.Title)
	artist, song := normalize.ArtistSong(cleaned)

	var queries []string
	if filter.IsVariant(candidate.Title) {
		queries = append(queries, fmt.Sprintf("%q", strings.TrimSpace(candidate.Title)))
	}
	if artist != "" && song != "" {
		queries = append(queries, artist+" "+song)
	}
	queries = append(queries, cleaned, song, normalize.SimplifyTitle(candidate.Title))

	seen := map[string]bool{}
	unique := queries[:0]
	for _, query := range queries {
		query = strings.TrimSpace(query)
		if query == "" || seen[query] {
			continue
		}
		seen[query] = true
		unique = append(unique, query)
	}
	return unique
}

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wavecrossed/tubefy/cache"
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/filter"
	"github.com/wavecrossed/tubefy/pipeline"
	"github.com/wavecrossed/tubefy/provider"
	"github.com/wavecrossed/tubefy/spotify"
	"github.com/wavecrossed/tubefy/util"
	"github.com/wavecrossed/tubefy/util/anchor"
)

const defaultVideoLimit = 20

var (
	tui          = anchor.New(anchor.Red)
	searchCache  *cache.Memory
	reasonColors = map[entity.Reason]*color.Color{
		entity.ReasonHighConfidence:   color.New(color.FgGreen),
		entity.ReasonMediumConfidence: color.New(color.FgYellow),
		entity.ReasonSourceOnly:       color.New(color.FgCyan),
		entity.ReasonLowConfidence:    color.New(color.FgRed),
		entity.ReasonIrrelevant:       color.New(color.FgRed),
	}
)

func init() {
	cmdRoot.AddCommand(cmdSearch())
}

func cmdSearch() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search <query>",
		Short:        "Search for a song and score each result",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				limit   = util.ErrWrap(filter.DefaultMaxResults)(cmd.Flags().GetInt("limit"))
				videos  = util.ErrWrap(defaultVideoLimit)(cmd.Flags().GetInt("videos"))
				offline = util.ErrWrap(false)(cmd.Flags().GetBool("offline"))
				all     = util.ErrWrap(false)(cmd.Flags().GetBool("all"))
			)

			matches, err := runSearch(cmd.Context(), args[0], limit, videos, offline)
			if err != nil {
				return err
			}

			shown := 0
			for _, match := range matches {
				if !all && !match.Reason.Included() {
					continue
				}
				shown++
				printMatch(match)
			}
			if shown == 0 {
				tui.Printf("no results for %s", args[0])
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", filter.DefaultMaxResults, "Maximum number of results")
	cmd.Flags().Int("videos", defaultVideoLimit, "Number of video candidates to fetch")
	cmd.Flags().Bool("offline", false, "Skip metadata provider lookups")
	cmd.Flags().Bool("all", false, "Also show results the inclusion policy rejected")
	return cmd
}

// runSearch assembles the pipeline shared by search and get. With
// offline set, or when authentication fails, every candidate goes down
// the source-only path. The persistent query cache is flushed after
// every run; a typical invocation never accumulates enough entries to
// hit the incremental flush cadence.
func runSearch(ctx context.Context, query string, limit, videos int, offline bool) ([]entity.Match, error) {
	matches, err := pipeline.New(provider.Search, trackSearch(ctx, offline), pipeline.Options{
		MaxResults:  limit,
		SearchLimit: videos,
	}).Search(ctx, query)

	if searchCache != nil {
		util.ErrSuppress(searchCache.Flush())
	}
	return matches, err
}

func trackSearch(ctx context.Context, offline bool) pipeline.TrackSearch {
	if offline {
		return nil
	}
	if spotifyClient == nil {
		if searchCache == nil {
			searchCache = cache.NewPersistent(cache.DefaultTTL)
		}
		client, err := spotify.Authenticate(ctx, searchCache)
		if err != nil {
			tui.Printf("metadata provider unavailable, continuing source-only: %s", err)
			return nil
		}
		spotifyClient = client
	}
	return spotifyClient.SearchTrack
}

func printMatch(match entity.Match) {
	duration := "--:--"
	if match.Candidate.KnownDuration() {
		duration = util.FormatDuration(match.Candidate.Duration)
	}

	reason := string(match.Reason)
	if painter, ok := reasonColors[match.Reason]; ok {
		reason = painter.Sprint(reason)
	}

	tui.Printf("%3.0f%% %-26s %s", match.Confidence, reason, util.Excerpt(match.Candidate.Title))
	tui.Printf("     %s | %s | %s", match.Candidate.Channel, duration, match.Candidate.URL)
	if match.Track != nil {
		tui.Printf("     matched: %s by %s", match.Track.Title, match.Track.Artist)
	}
}

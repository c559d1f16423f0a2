package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arunsworld/nursery"
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"github.com/wavecrossed/tubefy/downloader"
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/entity/id3"
	"github.com/wavecrossed/tubefy/filter"
	"github.com/wavecrossed/tubefy/normalize"
	"github.com/wavecrossed/tubefy/util"
)

func init() {
	cmdRoot.AddCommand(cmdGet())
}

func cmdGet() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "get <query>",
		Short:        "Download and tag the best result for a song",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				output  = util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("output"))
				quality = util.ErrWrap(string(downloader.QualityBest))(cmd.Flags().GetString("quality"))
				videos  = util.ErrWrap(defaultVideoLimit)(cmd.Flags().GetInt("videos"))
				offline = util.ErrWrap(false)(cmd.Flags().GetBool("offline"))
				choose  = util.ErrWrap(false)(cmd.Flags().GetBool("choose"))
			)

			parsedQuality, err := downloader.ParseQuality(quality)
			if err != nil {
				return err
			}

			matches, err := runSearch(cmd.Context(), args[0], filter.DefaultMaxResults, videos, offline)
			if err != nil {
				return err
			}

			chosen := firstIncluded(matches)
			if choose {
				chosen = pickMatch(matches)
			}
			if chosen == nil {
				return errors.New("no suitable result for " + args[0])
			}
			printMatch(*chosen)

			return collect(cmd.Context(), chosen, output, parsedQuality)
		},
	}
	cmd.Flags().StringP("output", "o", xdg.UserDirs.Music, "Output path")
	cmd.Flags().StringP("quality", "q", string(downloader.QualityBest), "Audio bitrate (128k, 192k, 256k, 320k)")
	cmd.Flags().Int("videos", defaultVideoLimit, "Number of video candidates to fetch")
	cmd.Flags().Bool("offline", false, "Skip metadata provider lookups")
	cmd.Flags().BoolP("choose", "c", false, "Pick among the results instead of taking the best one")
	return cmd
}

func firstIncluded(matches []entity.Match) *entity.Match {
	for i := range matches {
		if matches[i].Reason.Included() {
			return &matches[i]
		}
	}
	return nil
}

// pickMatch lists the included results and prompts for a choice,
// defaulting to the first.
func pickMatch(matches []entity.Match) *entity.Match {
	var included []*entity.Match
	for i := range matches {
		if matches[i].Reason.Included() {
			included = append(included, &matches[i])
		}
	}
	if len(included) == 0 {
		return nil
	}

	for i, match := range included {
		tui.Printf("%d. %s (%s)", i+1, util.Excerpt(match.Candidate.Title), match.Reason)
	}

	selection := parseSelection(
		tui.Reads(fmt.Sprintf("Select [1-%d, 0 to cancel]:", len(included))), len(included))
	if selection == 0 {
		return nil
	}
	return included[selection-1]
}

// parseSelection parses a 1-based choice: empty input means the first
// entry, anything unparseable or out of range means cancel.
func parseSelection(input string, max int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return 1
	}
	selection, err := strconv.Atoi(input)
	if err != nil || selection < 0 || selection > max {
		return 0
	}
	return selection
}

// collect downloads the blob and its artwork concurrently, tags the
// result and installs it under the output path.
func collect(ctx context.Context, match *entity.Match, output string, quality downloader.Quality) error {
	detail := matchDetail(ctx, match)

	audioPath, artworkPath := assetPaths(match)
	var artworkData []byte

	jobs := []nursery.ConcurrentJob{
		func(_ context.Context, ch chan error) {
			tui.Lot("download").Print(match.Candidate.URL)
			if err := downloader.Audio(match.Candidate.URL, audioPath, quality); err != nil {
				tui.AnchorPrintf("download failure: %s", err)
				ch <- err
				return
			}
			tui.Lot("download").Close()
		},
	}
	if detail != nil && detail.ArtworkURL != "" {
		jobs = append(jobs, func(_ context.Context, _ chan error) {
			artwork := make(chan []byte, 1)
			defer close(artwork)

			tui.Lot("paint").Print(detail.ArtworkURL)
			if err := downloader.Artwork(detail.ArtworkURL, artworkPath, artwork); err != nil {
				tui.AnchorPrintf("artwork failure: %s", err)
				tui.Lot("paint").Wipe()
				return
			}
			artworkData = <-artwork
			tui.Lot("paint").Close(util.HumanizeBytes(len(artworkData)))
		})
	}
	if err := nursery.RunConcurrentlyWithContext(ctx, jobs...); err != nil {
		return err
	}

	if err := tagFile(audioPath, match, detail, artworkData); err != nil {
		return err
	}

	installed := filepath.Join(output, util.LegalizeFilename(match.Filename()))
	if err := util.FileMoveOrCopy(audioPath, installed, true); err != nil {
		return err
	}
	tui.Printf("installed %s", installed)
	return nil
}

// assetPaths picks the cache locations for the blob and its artwork:
// the matched track's own paths when the result is tagged, a
// title-derived stem otherwise.
func assetPaths(match *entity.Match) (audio, artwork string) {
	if match.Reason.Tagged() && match.Track != nil {
		return match.Track.Path().Download(), match.Track.Path().Artwork()
	}

	stem := util.LegalizeFilename(slug.Make(match.Candidate.Title))
	return util.CacheFile(stem + "." + entity.TrackFormat),
		util.CacheFile(stem + "." + entity.ArtworkFormat)
}

// matchDetail fetches tag-ready metadata, but only for matches the
// policy marked as confident. Fetch failures degrade to fallback tags.
func matchDetail(ctx context.Context, match *entity.Match) *entity.TrackDetail {
	if !match.Reason.Tagged() || match.Track == nil || spotifyClient == nil {
		return nil
	}
	detail, err := spotifyClient.TrackMetadata(ctx, match.Track.ID)
	if err != nil {
		tui.Printf("metadata fetch failed, tagging from title: %s", err)
		return nil
	}
	return detail
}

func tagFile(path string, match *entity.Match, detail *entity.TrackDetail, artwork []byte) error {
	tag, err := id3.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s for tagging: %w", path, err)
	}
	defer tag.Close()

	if detail != nil {
		tag.ApplyDetail(detail, artwork)
	} else {
		artist, song := normalize.ArtistSong(normalize.CleanQuery(match.Candidate.Title))
		tag.ApplyFallback(artist, util.First(song, match.Candidate.Title), match.Candidate.Channel)
	}
	tag.SetUpstreamURL(match.Candidate.URL)

	return tag.Save()
}

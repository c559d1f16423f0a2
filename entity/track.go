package entity

import (
	"fmt"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"github.com/wavecrossed/tubefy/util"
)

// Track is a single metadata-provider result, scoped to one search
// operation. Missing provider fields stay at their zero values: an empty
// Artists slice means "no artist data", a zero DurationMS means the
// duration is unknown and a zero Popularity simply contributes nothing
// to scoring.
type Track struct {
	ID         string
	Title      string
	Artist     string   // display string, e.g. "Artist A, Artist B"
	Artists    []string // ordered, lead artist first
	Album      string
	ArtworkURL string
	DurationMS int
	Popularity int
}

// TrackDetail is the tag-ready metadata fetched for a track the
// inclusion policy marked as eligible for metadata attachment.
type TrackDetail struct {
	Title       string
	Artist      string
	Album       string
	Year        string
	ArtworkURL  string
	TrackNumber int
	DiscNumber  int
	DurationMS  int
}

type TrackPath struct {
	track *Track
}

const (
	TrackFormat   = "mp3"
	ArtworkFormat = "jpg"
)

// certain track titles include the variant description,
// this functions aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}

// Lead returns the lead artist, or an empty string when the provider
// returned no artist data.
func (track *Track) Lead() string {
	if len(track.Artists) == 0 {
		return ""
	}
	return track.Artists[0]
}

// Duration returns the track length in whole seconds, 0 when unknown.
func (track *Track) Duration() int {
	return track.DurationMS / 1000
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

func (trackPath TrackPath) Download() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), TrackFormat)),
	)
}

func (trackPath TrackPath) Artwork() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(path.Base(trackPath.track.ArtworkURL)), ArtworkFormat)),
	)
}

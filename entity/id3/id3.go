// Package id3 applies the chosen metadata to downloaded files. Whether
// that is the provider detail or the title-derived fallback is the
// caller's decision, driven by the match reason.
package id3

import (
	"strconv"

	"github.com/bogem/id3v2/v2"
	"github.com/wavecrossed/tubefy/entity"
)

const upstreamURLDescription = "Upstream URL"

type Tag struct {
	*id3v2.Tag
}

func Open(path string) (*Tag, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

// ApplyDetail writes the full provider metadata, used only for results
// the inclusion policy marked as confident matches.
func (tag *Tag) ApplyDetail(detail *entity.TrackDetail, artwork []byte) {
	tag.SetTitle(detail.Title)
	tag.SetArtist(detail.Artist)
	tag.SetAlbum(detail.Album)
	if detail.Year != "" {
		tag.SetYear(detail.Year)
	}
	if detail.TrackNumber > 0 {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"),
			tag.DefaultEncoding(), strconv.Itoa(detail.TrackNumber))
	}
	if detail.DiscNumber > 0 {
		tag.AddTextFrame(tag.CommonID("Part of a set"),
			tag.DefaultEncoding(), strconv.Itoa(detail.DiscNumber))
	}
	if len(artwork) > 0 {
		tag.setArtwork(artwork)
	}
}

// ApplyFallback writes best-effort tags derived from the candidate's
// own title and channel, for source-only results. No album, year or
// artwork: better missing than wrong.
func (tag *Tag) ApplyFallback(artist, song, channel string) {
	tag.SetTitle(song)
	if artist == "" {
		artist = channel
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
}

// SetUpstreamURL records where the blob was downloaded from.
func (tag *Tag) SetUpstreamURL(url string) {
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: upstreamURLDescription,
		Text:        url,
	})
}

// UpstreamURL returns the recorded source URL, if any.
func (tag *Tag) UpstreamURL() string {
	for _, frame := range tag.GetFrames(tag.CommonID("Comments")) {
		comment, ok := frame.(id3v2.CommentFrame)
		if ok && comment.Description == upstreamURLDescription {
			return comment.Text
		}
	}
	return ""
}

func (tag *Tag) setArtwork(artwork []byte) {
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Front cover",
		Picture:     artwork,
	})
}

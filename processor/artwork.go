// Package processor post-processes downloaded assets before they are
// embedded or installed.
package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // uploaded covers occasionally come back as PNG

	"github.com/nfnt/resize"
)

const (
	artworkMaxEdge     = 640
	artworkJPEGQuality = 90
)

// Artwork normalizes cover images: anything larger than the target edge
// is scaled down and everything is re-encoded as JPEG, the only format
// every tag consumer agrees on.
type Artwork struct{}

func (Artwork) Do(data []byte) ([]byte, error) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > artworkMaxEdge || bounds.Dy() > artworkMaxEdge {
		decoded = resize.Thumbnail(artworkMaxEdge, artworkMaxEdge, decoded, resize.Lanczos3)
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, decoded, &jpeg.Options{Quality: artworkJPEGQuality}); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

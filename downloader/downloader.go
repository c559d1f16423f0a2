// Package downloader pulls audio blobs and artwork for chosen results.
// It sits strictly outside the matching core: by the time anything is
// downloaded, every inclusion decision has been made.
package downloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/thanhpk/randstr"
	"github.com/wavecrossed/tubefy/processor"
	cmdutil "github.com/wavecrossed/tubefy/util/cmd"
)

// Quality is the target bitrate for transcoded audio.
type Quality string

const (
	QualityLow    Quality = "128k"
	QualityMedium Quality = "192k"
	QualityHigh   Quality = "256k"
	QualityBest   Quality = "320k"
)

// ParseQuality maps a user-supplied bitrate string onto a preset.
func ParseQuality(value string) (Quality, error) {
	for _, quality := range []Quality{QualityLow, QualityMedium, QualityHigh, QualityBest} {
		if value == string(quality) {
			return quality, nil
		}
	}
	return "", fmt.Errorf("unsupported quality %q", value)
}

func (quality Quality) bitrate() string {
	if quality == "" {
		return ""
	}
	return string(quality[:len(quality)-1]) + "K"
}

// Audio downloads the media behind url into path as mp3.
func Audio(url, path string, quality Quality) error {
	return cmdutil.YouTubeDl(url, path, quality.bitrate())
}

// Artwork fetches an image over HTTP, normalizes it through the artwork
// processor and installs it at path. The processed bytes are also
// pushed onto every supplied channel, for callers embedding the cover
// without re-reading the file.
func Artwork(url, path string, channels ...chan []byte) error {
	response, err := http.Get(url)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("artwork download returned %d", response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	data, err = processor.Artwork{}.Do(data)
	if err != nil {
		return err
	}

	temp := filepath.Join(filepath.Dir(path), randstr.Hex(8)+filepath.Ext(path))
	if err := os.WriteFile(temp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(temp, path); err != nil {
		return err
	}

	for _, channel := range channels {
		channel <- data
	}
	return nil
}

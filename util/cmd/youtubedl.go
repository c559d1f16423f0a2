package cmd

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"

	"github.com/wavecrossed/tubefy/util"
)

// YouTubeDl extracts the audio stream behind url into path, transcoded
// at the given bitrate ("320K") or at the extractor's best when bitrate
// is empty.
func YouTubeDl(url, path, bitrate string) error {
	if bitrate == "" {
		bitrate = "0"
	}

	var (
		output bytes.Buffer
		ext    = filepath.Ext(path)[1:]
		stem   = util.FileBaseStem(path)
		cmd    = exec.Command("yt-dlp",
			"--format", "bestaudio",
			"--extract-audio",
			"--audio-format", ext,
			"--audio-quality", bitrate,
			"--output", stem+".%(ext)s",
			"--continue",
			"--no-overwrites",
			"--retry-sleep", "exp=1::2",
			"--sleep-interval", "5",
			url,
		)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return errors.New(output.String())
	}
	return nil
}

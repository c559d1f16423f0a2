package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
)

const (
	cacheDirname     = "tubefy"
	legalFilenameMax = 100
	excerptMaxRunes  = 50
)

var (
	illegalFilename = regexp.MustCompile(`[\\/*?:"<>|]`)
	extraSpaces     = regexp.MustCompile(`\s+`)
)

// ErrWrap returns fallback in place of value whenever err is set.
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrSuppress swallows an error on purpose.
func ErrSuppress(_ error) {}

// First returns the first non-empty string.
func First(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// CacheFile returns the path of name within the user cache directory,
// creating the directory if needed.
func CacheFile(name string) string {
	path, err := xdg.CacheFile(filepath.Join(cacheDirname, name))
	if err != nil {
		return filepath.Join(os.TempDir(), cacheDirname, name)
	}
	return path
}

// LegalizeFilename strips characters that cannot appear in filenames
// and bounds the result length.
func LegalizeFilename(filename string) string {
	legal := illegalFilename.ReplaceAllString(filename, "")
	legal = strings.TrimSpace(extraSpaces.ReplaceAllString(legal, " "))
	if len(legal) > legalFilenameMax {
		legal = legal[:legalFilenameMax]
	}
	return legal
}

// FileBaseStem returns the path without its extension.
func FileBaseStem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// FileMoveOrCopy installs src at dst, falling back to a copy when a
// rename crosses filesystems. With overwrite unset, an existing dst is
// an error.
func FileMoveOrCopy(src, dst string, overwrite ...bool) error {
	if _, err := os.Stat(dst); err == nil && (len(overwrite) == 0 || !overwrite[0]) {
		return fmt.Errorf("file %s already exists", dst)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	input, err := os.Open(src)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err := io.Copy(output, input); err != nil {
		return err
	}
	return os.Remove(src)
}

// Excerpt shortens a string for display.
func Excerpt(text string) string {
	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	if len(runes) <= excerptMaxRunes {
		return string(runes)
	}
	return string(runes[:excerptMaxRunes]) + "..."
}

// HumanizeBytes renders a byte count in a human-readable unit.
func HumanizeBytes(size int) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB"} {
		if value < 1024 {
			if unit == "B" {
				return fmt.Sprintf("%d%s", size, unit)
			}
			return fmt.Sprintf("%.2f%s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2fGB", value)
}

// FormatDuration renders seconds as MM:SS, or HH:MM:SS past the hour.
func FormatDuration(seconds int) string {
	minutes, seconds := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

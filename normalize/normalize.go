// Package normalize cleans free-text queries and video titles and
// decomposes them into (artist, song) guesses. Everything here is pure
// lexical work: no input is ever an error.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// noise vocabulary stripped from search queries, matched as whole words.
// Multi-word terms go first so that e.g. "official audio" disappears
// before a lone "official" or "audio" would.
var noiseTerms = []string{
	"official music video",
	"official audio",
	"music video",
	"lyric video",
	"full album",
	"full song",
	"official",
	"video",
	"audio",
	"lyrics",
	"live",
	"cover",
	"hq",
	"hd",
}

var (
	noisePatterns  []*regexp.Regexp
	parenthetical  = regexp.MustCompile(`\([^)]*\)`)
	bracketed      = regexp.MustCompile(`\[[^\]]*\]`)
	spaces         = regexp.MustCompile(`\s+`)
	pipeSuffix     = regexp.MustCompile(`\s*\|\s*.*$`)
	officialSuffix = regexp.MustCompile(`(?i)\s*-\s*official.*$`)
	officialParen  = regexp.MustCompile(`(?i)\s*\(official[^)]*\)\s*`)
	officialBrack  = regexp.MustCompile(`(?i)\s*\[official[^\]]*\]\s*`)
	decorWords     = regexp.MustCompile(`(?i)\s*(official|music|lyric|lyrics)\s*(video|audio)?\s*`)
)

func init() {
	for _, term := range noiseTerms {
		noisePatterns = append(noisePatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
}

// titlePattern is one recognized "artist separator song" title shape.
// Earlier patterns take precedence; a title holding several separators
// resolves to whichever pattern matches first.
type titlePattern struct {
	re      *regexp.Regexp
	swapped bool // capture groups are (song, artist) instead of (artist, song)
}

var titlePatterns = []titlePattern{
	{re: regexp.MustCompile(`^(.*?)\s*-\s*(.*)$`)},                // Artist - Song
	{re: regexp.MustCompile(`^(.*?)\s*"(.*?)"`)},                  // Artist "Song"
	{re: regexp.MustCompile(`^(.*?)\s*'(.*?)'`)},                  // Artist 'Song'
	{re: regexp.MustCompile(`^(.*?)\s*:\s*(.*)$`)},                // Artist: Song
	{re: regexp.MustCompile(`^(.*?)\s*\|\s*(.*)$`)},               // Artist | Song
	{re: regexp.MustCompile(`^(.*?)\s+by\s+(.*)$`), swapped: true}, // Song by Artist
}

// Text lowercases, strips diacritics and collapses whitespace.
func Text(text string) string {
	text = strings.ToLower(text)
	stripped, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), text)
	if err == nil {
		text = stripped
	}
	return strings.TrimSpace(spaces.ReplaceAllString(text, " "))
}

// CleanQuery removes noise terms and parenthesized or bracketed
// segments from a search query or title, lowercasing along the way.
func CleanQuery(query string) string {
	cleaned := strings.ToLower(query)
	for _, pattern := range noisePatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	cleaned = parenthetical.ReplaceAllString(cleaned, "")
	cleaned = bracketed.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(spaces.ReplaceAllString(cleaned, " "))
}

// ArtistSong guesses the artist and song halves of a video title. The
// pattern list is ordered and the first match wins; the "Song by
// Artist" shape carries its groups reversed. Titles matching nothing
// come back whole as the song, with an empty artist.
func ArtistSong(title string) (artist, song string) {
	for _, pattern := range titlePatterns {
		groups := pattern.re.FindStringSubmatch(title)
		if groups == nil {
			continue
		}
		if pattern.swapped {
			return strings.TrimSpace(groups[2]), strings.TrimSpace(groups[1])
		}
		return strings.TrimSpace(groups[1]), strings.TrimSpace(groups[2])
	}
	return "", strings.TrimSpace(title)
}

// SimplifyTitle strips video-specific decorations, e.g. "(official
// video)" tags and pipe-delimited suffixes, to build alternate
// metadata-search queries. Distinct from CleanQuery on purpose: this
// keeps the title's casing and wording, only dropping ornaments.
func SimplifyTitle(title string) string {
	simplified := officialParen.ReplaceAllString(title, " ")
	simplified = officialBrack.ReplaceAllString(simplified, " ")
	simplified = pipeSuffix.ReplaceAllString(simplified, "")
	simplified = officialSuffix.ReplaceAllString(simplified, "")
	return strings.TrimSpace(spaces.ReplaceAllString(simplified, " "))
}

// CoreTitle reduces a title to its core song information for duplicate
// comparison. Same normalization family as SimplifyTitle but
// independent, mirroring how the decorations differ between uploads.
func CoreTitle(title string) string {
	core := officialParen.ReplaceAllString(title, " ")
	core = officialBrack.ReplaceAllString(core, " ")
	core = decorWords.ReplaceAllString(core, " ")
	core = pipeSuffix.ReplaceAllString(core, "")
	core = officialSuffix.ReplaceAllString(core, "")
	return strings.TrimSpace(spaces.ReplaceAllString(core, " "))
}

package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/normalize"
)

const (
	youTubeBase   = "https://www.youtube.com"
	youTubeSearch = youTubeBase + "/results?search_query=%s"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	register(youTube{})
}

type youTube struct{}

func (youTube) Name() string {
	return "youtube"
}

// Search scrapes the results page: the data lives in the inlined
// ytInitialData script blob, so the document is parsed for script
// nodes and the blob decoded down to its videoRenderer entries.
func (youTube) Search(ctx context.Context, query string, limit int) ([]entity.Candidate, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf(youTubeSearch, url.QueryEscape(query)), nil)
	if err != nil {
		return nil, err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned %d", response.StatusCode)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, err
	}

	var payload string
	document.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()
		if strings.Contains(text, "var ytInitialData") {
			payload = text
			return false
		}
		return true
	})
	if payload == "" {
		return nil, nil
	}

	candidates := parseInitialData(payload, limit)
	for i := range candidates {
		if candidates[i].Duration == 0 {
			candidates[i].Duration = watchDuration(ctx, candidates[i].URL)
		}
	}
	return candidates, nil
}

var lengthSeconds = regexp.MustCompile(`"lengthSeconds"\s*:\s*"(\d+)"`)

// watchDuration fetches the watch page for a result whose search entry
// carried no duration, usually a fresh upload. Failures keep it at 0,
// which scoring treats as unknown.
func watchDuration(ctx context.Context, watchURL string) int {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return 0
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return 0
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return 0
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0
	}
	return parseLengthSeconds(string(body))
}

func parseLengthSeconds(page string) int {
	groups := lengthSeconds.FindStringSubmatch(page)
	if groups == nil {
		return 0
	}
	seconds, err := strconv.Atoi(groups[1])
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type videoRenderer struct {
	VideoID string `json:"videoId"`
	Title   struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"title"`
	OwnerText struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"ownerText"`
	LengthText struct {
		SimpleText string `json:"simpleText"`
	} `json:"lengthText"`
}

func parseInitialData(script string, limit int) []entity.Candidate {
	start := strings.Index(script, "{")
	end := strings.LastIndex(script, "}")
	if start < 0 || end <= start {
		return nil
	}

	var data initialData
	if err := json.UnmarshalFromString(script[start:end+1], &data); err != nil {
		return nil
	}

	var candidates []entity.Candidate
	for _, section := range data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			renderer := item.VideoRenderer
			if renderer == nil || renderer.VideoID == "" {
				continue
			}

			candidates = append(candidates, entity.Candidate{
				Title:       runsText(renderer.Title.Runs),
				Channel:     runsText(renderer.OwnerText.Runs),
				Duration:    normalize.Duration(renderer.LengthText.SimpleText),
				RawDuration: renderer.LengthText.SimpleText,
				URL:         youTubeBase + "/watch?v=" + renderer.VideoID,
			})
			if limit > 0 && len(candidates) >= limit {
				return candidates
			}
		}
	}
	return candidates
}

func runsText(runs []struct {
	Text string `json:"text"`
}) string {
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		parts = append(parts, run.Text)
	}
	return strings.Join(parts, "")
}

package video

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendition is a single transcode target: the output height and the x264
// constant rate factor used to encode it.
type Rendition struct {
	Height int
	CRF    int
}

func (r Rendition) String() string {
	return fmt.Sprintf("%d:%d", r.Height, r.CRF)
}

// CRF bounds accepted from configuration. Lower is higher quality.
const (
	MinCRF = 18
	MaxCRF = 35
)

// DefaultProgressiveRenditions is the built-in pre-check rendition list,
// produced as standalone MP4 files.
var DefaultProgressiveRenditions = []Rendition{
	{Height: 360, CRF: 28},
}

// DefaultHLSRenditions is the built-in adaptive streaming ladder.
var DefaultHLSRenditions = []Rendition{
	{Height: 144, CRF: 32},
	{Height: 240, CRF: 30},
	{Height: 360, CRF: 28},
	{Height: 480, CRF: 26},
	{Height: 720, CRF: 24},
	{Height: 1080, CRF: 22},
}

const defaultBandwidth = 800_000

var bandwidthByHeight = map[int]int{
	144:  200_000,
	240:  400_000,
	360:  800_000,
	480:  1_000_000,
	720:  1_500_000,
	1080: 3_000_000,
}

// BandwidthForHeight returns the master playlist bandwidth hint for a
// rendition height, falling back to 800kbps for heights outside the table.
func BandwidthForHeight(height int) int {
	if bw, ok := bandwidthByHeight[height]; ok {
		return bw
	}
	return defaultBandwidth
}

// ParseRenditions parses the "height:crf[,height:crf...]" flag syntax.
func ParseRenditions(s string) ([]Rendition, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty rendition list")
	}
	var renditions []Rendition
	for _, part := range strings.Split(s, ",") {
		height, crf, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return nil, fmt.Errorf("invalid rendition %q, expected height:crf", part)
		}
		h, err := strconv.Atoi(height)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("invalid rendition height %q", height)
		}
		c, err := strconv.Atoi(crf)
		if err != nil {
			return nil, fmt.Errorf("invalid rendition crf %q", crf)
		}
		if c < MinCRF || c > MaxCRF {
			return nil, fmt.Errorf("rendition crf %d out of range [%d, %d]", c, MinCRF, MaxCRF)
		}
		renditions = append(renditions, Rendition{Height: h, CRF: c})
	}
	return renditions, nil
}

// MasterEntry is the master playlist stanza for one HLS rendition. The width
// is reported as 1280 regardless of actual scaling, for compatibility with
// existing playback clients.
func MasterEntry(videoID string, height int) string {
	return fmt.Sprintf("#EXT-X-STREAM-INF:BANDWIDTH=%d,RESOLUTION=1280x%d\n%s/%d/index.m3u8",
		BandwidthForHeight(height), height, videoID, height)
}

// MasterPlaylist assembles the top-level playlist from the given stream
// entries, one trailing newline per entry.
func MasterPlaylist(entries []string) string {
	var sb strings.Builder
	sb.WriteString("#EXTM3U\n")
	for _, entry := range entries {
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	return sb.String()
}

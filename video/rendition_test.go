package video

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRenditions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Rendition
		errMsg   string
	}{
		{
			name:     "single rendition",
			input:    "360:28",
			expected: []Rendition{{Height: 360, CRF: 28}},
		},
		{
			name:  "full ladder",
			input: "144:32,240:30,360:28,480:26,720:24,1080:22",
			expected: []Rendition{
				{144, 32}, {240, 30}, {360, 28}, {480, 26}, {720, 24}, {1080, 22},
			},
		},
		{
			name:     "whitespace tolerated",
			input:    " 360:28 , 720:24 ",
			expected: []Rendition{{360, 28}, {720, 24}},
		},
		{
			name:   "empty",
			input:  "",
			errMsg: "empty rendition list",
		},
		{
			name:   "missing crf",
			input:  "360",
			errMsg: "expected height:crf",
		},
		{
			name:   "crf too low",
			input:  "360:17",
			errMsg: "out of range",
		},
		{
			name:   "crf too high",
			input:  "360:36",
			errMsg: "out of range",
		},
		{
			name:   "negative height",
			input:  "-360:28",
			errMsg: "invalid rendition height",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRenditions(tt.input)
			if tt.errMsg != "" {
				require.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestBandwidthForHeight(t *testing.T) {
	require.Equal(t, 200_000, BandwidthForHeight(144))
	require.Equal(t, 1_500_000, BandwidthForHeight(720))
	require.Equal(t, 3_000_000, BandwidthForHeight(1080))
	// heights not in the table fall back to 800kbps
	require.Equal(t, 800_000, BandwidthForHeight(540))
}

func TestMasterEntry(t *testing.T) {
	entry := MasterEntry("vidA", 720)
	require.Equal(t, "#EXT-X-STREAM-INF:BANDWIDTH=1500000,RESOLUTION=1280x720\nvidA/720/index.m3u8", entry)
}

func TestMasterPlaylist(t *testing.T) {
	playlist := MasterPlaylist([]string{
		MasterEntry("vidA", 360),
		MasterEntry("vidA", 720),
	})
	expected := "#EXTM3U\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=1280x360\nvidA/360/index.m3u8\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1500000,RESOLUTION=1280x720\nvidA/720/index.m3u8\n"
	require.Equal(t, expected, playlist)
}

func TestMasterPlaylistNoEntries(t *testing.T) {
	require.Equal(t, "#EXTM3U\n", MasterPlaylist(nil))
}

func TestLayout(t *testing.T) {
	require.Equal(t, "vidA.mp4", SourcePath("vidA"))
	require.Equal(t, "vidA_360p.mp4", ProgressivePath("vidA", 360))
	require.Equal(t, "vidA/720/index.m3u8", HLSPlaylistPath("vidA", 720))
	require.Equal(t, "vidA/720/seg_%03d.ts", HLSSegmentPattern("vidA", 720))
	require.Equal(t, "vidA_master.m3u8", MasterPlaylistPath("vidA"))
}

func TestSubmitterMerge(t *testing.T) {
	s := Submitter{UserID: "u1"}
	s.Merge(Submitter{UserID: "u2", Title: "T", Description: "D"})
	require.Equal(t, Submitter{UserID: "u1", Title: "T", Description: "D"}, s)

	// present fields are never overwritten
	s.Merge(Submitter{Title: "other"})
	require.Equal(t, "T", s.Title)
}

func TestSubmitterDefaults(t *testing.T) {
	s := Submitter{}.WithDefaults()
	require.Equal(t, "unknown", s.UserID)
	require.Equal(t, "Untitled", s.Title)
	require.Empty(t, s.Description)

	s = Submitter{UserID: "u", Title: "t", Description: "d"}.WithDefaults()
	require.Equal(t, Submitter{UserID: "u", Title: "t", Description: "d"}, s)
}

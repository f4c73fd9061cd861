package config

import (
	"flag"
	"testing"

	"github.com/codek7-services/codek7-backend/video"
	"github.com/stretchr/testify/require"
)

func TestRenditionsFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var renditions []video.Rendition
	RenditionsFlag(fs, &renditions, "hls-renditions", "360:28,720:24", "usage")

	// default applies before parsing
	require.Equal(t, []video.Rendition{{Height: 360, CRF: 28}, {Height: 720, CRF: 24}}, renditions)

	require.NoError(t, fs.Parse([]string{"-hls-renditions", "1080:22"}))
	require.Equal(t, []video.Rendition{{Height: 1080, CRF: 22}}, renditions)
}

func TestRenditionsFlagRejectsBadValues(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var renditions []video.Rendition
	RenditionsFlag(fs, &renditions, "hls-renditions", "360:28", "usage")
	require.Error(t, fs.Parse([]string{"-hls-renditions", "360:99"}))
}

func TestRenditionsFlagPanicsOnBadDefault(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var renditions []video.Rendition
	require.Panics(t, func() {
		RenditionsFlag(fs, &renditions, "hls-renditions", "not-a-list", "usage")
	})
}

func TestNormalizeGRPCTarget(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:50051", "localhost:50051"},
		{"http://[::1]:50051", "[::1]:50051"},
		{"http://repo.internal:50051", "repo.internal:50051"},
		{"[::1]:50051", "[::1]:50051"},
	}
	for _, tt := range tests {
		got, err := NormalizeGRPCTarget(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestGRPCTargetFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var target string
	GRPCTargetFlag(fs, &target, "repo-service-addr", DefaultRepoServiceAddress, "usage")
	require.Equal(t, "localhost:50051", target)

	require.NoError(t, fs.Parse([]string{"-repo-service-addr", "http://[::1]:50051"}))
	require.Equal(t, "[::1]:50051", target)
}

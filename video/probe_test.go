package video

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/vansante/go-ffprobe.v2"
)

func TestItRejectsWhenNoVideoTrackPresent(t *testing.T) {
	_, err := parseProbeOutput(&ffprobe.ProbeData{
		Streams: []*ffprobe.Stream{
			{
				CodecType: "audio",
			},
		},
	})
	require.ErrorContains(t, err, "no video stream found")
}

func TestItRejectsWhenFormatMissing(t *testing.T) {
	_, err := parseProbeOutput(&ffprobe.ProbeData{
		Streams: []*ffprobe.Stream{
			{
				CodecType: "video",
			},
		},
	})
	require.ErrorContains(t, err, "format information missing")
}

func TestParseProbeOutput(t *testing.T) {
	info, err := parseProbeOutput(&ffprobe.ProbeData{
		Streams: []*ffprobe.Stream{
			{
				CodecType: "video",
				CodecName: "h264",
			},
		},
		Format: &ffprobe.Format{
			Size:            "123456",
			BitRate:         "800000",
			DurationSeconds: 12.5,
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(123456), info.SizeBytes)
	require.Equal(t, int64(800000), info.BitRate)
	require.Equal(t, 12.5, info.DurationSec)
}

func TestBitrateIsOptional(t *testing.T) {
	info, err := parseProbeOutput(&ffprobe.ProbeData{
		Streams: []*ffprobe.Stream{
			{
				CodecType: "video",
			},
		},
		Format: &ffprobe.Format{
			Size: "1",
		},
	})
	require.NoError(t, err)
	require.Zero(t, info.BitRate)
}

package transcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codek7-services/codek7-backend/video"
	"github.com/stretchr/testify/require"
)

// argValue returns the value following the given flag, failing if absent.
func argValue(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag {
			require.Less(t, i+1, len(args), "flag %s has no value", flag)
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestProgressiveEncoderArgs(t *testing.T) {
	args := progressiveCmd("vidA.mp4", "vidA_360p.mp4", video.Rendition{Height: 360, CRF: 28}).GetArgs()

	require.Equal(t, "vidA.mp4", argValue(t, args, "-i"))
	require.Equal(t, "scale=-2:360", argValue(t, args, "-vf"))
	require.Equal(t, "libx264", argValue(t, args, "-c:v"))
	require.Equal(t, "28", argValue(t, args, "-crf"))
	require.Equal(t, "fast", argValue(t, args, "-preset"))
	require.Equal(t, "aac", argValue(t, args, "-c:a"))
	require.Equal(t, "128k", argValue(t, args, "-b:a"))
	require.Contains(t, args, "-y")
	require.Contains(t, args, "vidA_360p.mp4")
}

func TestHLSEncoderArgs(t *testing.T) {
	r := video.Rendition{Height: 720, CRF: 24}
	args := hlsCmd("vidA.mp4", "vidA/720/index.m3u8", "vidA/720/seg_%03d.ts", r).GetArgs()

	require.Equal(t, "hls", argValue(t, args, "-f"))
	require.Equal(t, "4", argValue(t, args, "-hls_time"))
	require.Equal(t, "vod", argValue(t, args, "-hls_playlist_type"))
	require.Equal(t, "vidA/720/seg_%03d.ts", argValue(t, args, "-hls_segment_filename"))
	require.Equal(t, "scale=-2:720", argValue(t, args, "-vf"))
	require.Equal(t, "24", argValue(t, args, "-crf"))
	require.Contains(t, args, "vidA/720/index.m3u8")
}

func TestCheckPlaylistToleratesBrokenPlaylists(t *testing.T) {
	// verification is advisory only, none of these may panic or error out
	checkPlaylist("vidA", "does/not/exist.m3u8", 3)

	dir := t.TempDir()
	playlist := filepath.Join(dir, "index.m3u8")
	require.NoError(t, os.WriteFile(playlist, []byte("not a playlist"), 0644))
	checkPlaylist("vidA", playlist, 3)

	content := "#EXTM3U\n#EXT-X-VERSION:3\n#EXT-X-TARGETDURATION:4\n#EXT-X-PLAYLIST-TYPE:VOD\n" +
		"#EXTINF:4.000,\nseg_000.ts\n#EXTINF:4.000,\nseg_001.ts\n#EXT-X-ENDLIST\n"
	require.NoError(t, os.WriteFile(playlist, []byte(content), 0644))
	checkPlaylist("vidA", playlist, 2)
	checkPlaylist("vidA", playlist, 5)
}

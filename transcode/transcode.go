// Package transcode drives the external ffmpeg encoder to produce the two
// rendition families for a reassembled source file.
package transcode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/codek7-services/codek7-backend/log"
	"github.com/codek7-services/codek7-backend/video"
	"github.com/grafov/m3u8"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	hlsSegmentSeconds = 4
	hlsPlaylistType   = "vod"
)

// HLSOutput describes one finished HLS rendition.
type HLSOutput struct {
	// PlaylistPath is the media playlist, <video_id>/<height>/index.m3u8.
	PlaylistPath string
	// SegmentPaths are the transport-stream segments, in name order.
	SegmentPaths []string
	// MasterEntry is this rendition's stanza for the master playlist.
	MasterEntry string
}

// Driver produces renditions from a source file. Implementations report
// failure via the error only; they never retry and never parse encoder output.
type Driver interface {
	MakeProgressive(sourcePath, videoID string, r video.Rendition) (string, error)
	MakeHLS(sourcePath, videoID string, r video.Rendition) (HLSOutput, error)
}

// FFMPEG shells out to ffmpeg, which must be on PATH. The encoder's exit
// status is the only success signal; stderr is captured purely for error
// reporting.
type FFMPEG struct{}

func (f FFMPEG) MakeProgressive(sourcePath, videoID string, r video.Rendition) (string, error) {
	outputPath := video.ProgressivePath(videoID, r.Height)

	ffmpegErr := bytes.Buffer{}
	err := progressiveCmd(sourcePath, outputPath, r).WithErrorOutput(&ffmpegErr).Run()
	if err != nil {
		return "", fmt.Errorf("failed to encode %dp progressive rendition of %s [%s]: %s", r.Height, sourcePath, ffmpegErr.String(), err)
	}
	return outputPath, nil
}

func (f FFMPEG) MakeHLS(sourcePath, videoID string, r video.Rendition) (HLSOutput, error) {
	outputDir := video.HLSDir(videoID, r.Height)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return HLSOutput{}, fmt.Errorf("failed to create HLS output dir %s: %w", outputDir, err)
	}
	playlistPath := video.HLSPlaylistPath(videoID, r.Height)

	ffmpegErr := bytes.Buffer{}
	err := hlsCmd(sourcePath, playlistPath, video.HLSSegmentPattern(videoID, r.Height), r).WithErrorOutput(&ffmpegErr).Run()
	if err != nil {
		// leave the directory behind, pipeline cleanup removes it
		return HLSOutput{}, fmt.Errorf("failed to encode %dp HLS rendition of %s [%s]: %s", r.Height, sourcePath, ffmpegErr.String(), err)
	}

	segments, err := filepath.Glob(filepath.Join(outputDir, "seg_*.ts"))
	if err != nil {
		return HLSOutput{}, fmt.Errorf("failed to enumerate segments in %s: %w", outputDir, err)
	}
	sort.Strings(segments)
	checkPlaylist(videoID, playlistPath, len(segments))

	return HLSOutput{
		PlaylistPath: playlistPath,
		SegmentPaths: segments,
		MasterEntry:  video.MasterEntry(videoID, r.Height),
	}, nil
}

func progressiveCmd(sourcePath, outputPath string, r video.Rendition) *ffmpeg.Stream {
	return ffmpeg.Input(sourcePath).
		Output(outputPath, codecArgs(r)).
		OverWriteOutput()
}

func hlsCmd(sourcePath, playlistPath, segmentPattern string, r video.Rendition) *ffmpeg.Stream {
	args := codecArgs(r)
	args["f"] = "hls"
	args["hls_time"] = hlsSegmentSeconds
	args["hls_playlist_type"] = hlsPlaylistType
	args["hls_segment_filename"] = segmentPattern
	return ffmpeg.Input(sourcePath).
		Output(playlistPath, args).
		OverWriteOutput()
}

func codecArgs(r video.Rendition) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"vf":     fmt.Sprintf("scale=-2:%d", r.Height),
		"c:v":    "libx264",
		"crf":    r.CRF,
		"preset": "fast",
		"c:a":    "aac",
		"b:a":    "128k",
	}
}

// checkPlaylist decodes the media playlist ffmpeg wrote and compares its
// segment count with what we found on disk. A mismatch is only logged; the
// encoder's exit status remains the sole success signal.
func checkPlaylist(videoID, playlistPath string, segmentsOnDisk int) {
	file, err := os.Open(playlistPath)
	if err != nil {
		log.LogNoRunID("failed to open media playlist for verification", "video_id", videoID, "playlist", playlistPath, "err", err)
		return
	}
	defer file.Close()

	playlist, playlistType, err := m3u8.DecodeFrom(file, true)
	if err != nil || playlistType != m3u8.MEDIA {
		log.LogNoRunID("failed to decode media playlist", "video_id", videoID, "playlist", playlistPath, "err", err)
		return
	}
	mediaPlaylist, ok := playlist.(*m3u8.MediaPlaylist)
	if !ok {
		return
	}
	listed := 0
	for _, seg := range mediaPlaylist.Segments {
		if seg != nil {
			listed++
		}
	}
	if listed != segmentsOnDisk {
		log.LogNoRunID("media playlist segment count does not match disk",
			"video_id", videoID, "playlist", playlistPath, "listed", listed, "on_disk", segmentsOnDisk)
	}
}

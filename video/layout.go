package video

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// On-disk layout for one video, rooted in the working directory:
//
//	<video_id>.mp4                source reassembly
//	<video_id>_<h>p.mp4           progressive renditions
//	<video_id>/<h>/index.m3u8     HLS media playlists
//	<video_id>/<h>/seg_NNN.ts     HLS segments
//	<video_id>_master.m3u8        HLS master playlist
//
// Paths are deliberately relative so that the artifact names sent to the repo
// service match what its file-type detection expects.

func SourcePath(videoID string) string {
	return videoID + ".mp4"
}

func ProgressivePath(videoID string, height int) string {
	return fmt.Sprintf("%s_%dp.mp4", videoID, height)
}

func HLSDir(videoID string, height int) string {
	return filepath.Join(videoID, strconv.Itoa(height))
}

func HLSPlaylistPath(videoID string, height int) string {
	return filepath.Join(HLSDir(videoID, height), "index.m3u8")
}

func HLSSegmentPattern(videoID string, height int) string {
	return filepath.Join(HLSDir(videoID, height), "seg_%03d.ts")
}

func MasterPlaylistPath(videoID string) string {
	return videoID + "_master.m3u8"
}

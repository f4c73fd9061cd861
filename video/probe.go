package video

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/vansante/go-ffprobe.v2"
)

// SourceInfo summarizes a reassembled source file. The pipeline uses it for
// logging and metrics only; probe failures never abort a video.
type SourceInfo struct {
	DurationSec float64
	SizeBytes   int64
	BitRate     int64
}

type Prober interface {
	ProbeSource(ctx context.Context, path string) (SourceInfo, error)
}

type Probe struct{}

func (p Probe) ProbeSource(ctx context.Context, path string) (SourceInfo, error) {
	probeCtx, probeCancel := context.WithTimeout(ctx, 60*time.Second)
	defer probeCancel()
	data, err := ffprobe.ProbeURL(probeCtx, path, "-loglevel", "error")
	if err != nil {
		return SourceInfo{}, fmt.Errorf("error probing: %w", err)
	}
	return parseProbeOutput(data)
}

func parseProbeOutput(probeData *ffprobe.ProbeData) (SourceInfo, error) {
	if probeData.FirstVideoStream() == nil {
		return SourceInfo{}, errors.New("error checking for video: no video stream found")
	}
	if probeData.Format == nil {
		return SourceInfo{}, errors.New("error parsing source video: format information missing")
	}
	size, err := strconv.ParseInt(probeData.Format.Size, 10, 64)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("error parsing filesize from probed data: %w", err)
	}
	var bitrate int64
	if probeData.Format.BitRate != "" {
		bitrate, err = strconv.ParseInt(probeData.Format.BitRate, 10, 64)
		if err != nil {
			return SourceInfo{}, fmt.Errorf("error parsing bitrate from probed data: %w", err)
		}
	}
	return SourceInfo{
		DurationSec: probeData.Format.DurationSeconds,
		SizeBytes:   size,
		BitRate:     bitrate,
	}, nil
}

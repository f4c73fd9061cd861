// Package pipeline turns a completed set of chunks into a transcoded,
// uploaded, and announced video. Each video runs in its own goroutine; the
// coordinator never blocks the ingest loop.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/codek7-services/codek7-backend/clients"
	"github.com/codek7-services/codek7-backend/errors"
	"github.com/codek7-services/codek7-backend/log"
	"github.com/codek7-services/codek7-backend/metrics"
	"github.com/codek7-services/codek7-backend/reassembly"
	"github.com/codek7-services/codek7-backend/transcode"
	"github.com/codek7-services/codek7-backend/video"
)

// maxConcurrentHLSRenditions bounds the HLS family because each rendition
// writes many segment files and the encoder is memory hungry at high heights.
// Progressive renditions are not bounded; the default family has one.
const maxConcurrentHLSRenditions = 2

const progressEventType = "processing"

// Coordinator owns one video pipeline run end to end. Every collaborator is
// an interface so tests can run the whole pipeline without ffmpeg, gRPC or a
// broker.
type Coordinator struct {
	Table    *reassembly.Table
	Driver   transcode.Driver
	Uploader clients.Uploader
	Notifier clients.Notifier
	Prober   video.Prober

	ProgressiveRenditions []video.Rendition
	HLSRenditions         []video.Rendition

	// MetricsDB is optional; nil disables per-run telemetry inserts.
	MetricsDB *MetricsDB
}

type progressiveResult struct {
	Rendition video.Rendition
	Path      string
}

// Process runs the whole pipeline for one reassembled video: write the source
// file, encode both rendition families concurrently, stream every artifact to
// the repo service, announce progress, trigger moderation, and clean up. It
// is designed to be called as `go coord.Process(entry)`.
//
// Rendition, upload and notification failures are logged and skipped; only a
// source that cannot be written aborts the video.
func (c *Coordinator) Process(entry *reassembly.Entry) {
	runID := uuid.New().String()[:8]
	log.AddContext(runID, "video_id", entry.VideoID, "user_id", entry.Submitter.UserID)
	ctx := log.WithLogValues(context.Background(), "run_id", runID, "video_id", entry.VideoID)

	metrics.Metrics.VideosInFlight.Inc()
	defer metrics.Metrics.VideosInFlight.Dec()
	start := time.Now()

	log.Log(runID, "pipeline started", "total_chunks", entry.Total)
	c.sendProgress(ctx, runID, entry, 10, "Receiving video chunks")

	sourcePath := video.SourcePath(entry.VideoID)
	if err := writeSource(sourcePath, entry); err != nil {
		log.LogError(runID, "failed to write source file", err)
		c.finish(ctx, runID, entry, start, runSummary{})
		return
	}

	var sourceInfo video.SourceInfo
	if info, err := c.Prober.ProbeSource(ctx, sourcePath); err != nil {
		log.LogError(runID, "failed to probe source file", err)
	} else {
		sourceInfo = info
		metrics.Metrics.SourceDurationSec.Observe(info.DurationSec)
		log.Log(runID, "probed source file", "duration_secs", info.DurationSec, "size_bytes", info.SizeBytes, "bitrate", info.BitRate)
	}

	var progressive []progressiveResult
	var hlsCount int
	eg := errgroup.Group{}
	eg.Go(func() error {
		progressive = c.runProgressiveFamily(ctx, runID, entry, sourcePath)
		return nil
	})
	eg.Go(func() error {
		hlsCount = c.runHLSFamily(ctx, runID, entry, sourcePath)
		return nil
	})
	_ = eg.Wait()

	c.triggerModeration(ctx, runID, entry, progressive)

	c.finish(ctx, runID, entry, start, runSummary{
		ProgressiveRenditions: len(progressive),
		HLSRenditions:         hlsCount,
		SourceBytes:           sourceInfo.SizeBytes,
		Success:               len(progressive) > 0 && hlsCount > 0,
	})
}

// runSummary is what finish needs to know about how the run went.
type runSummary struct {
	ProgressiveRenditions int
	HLSRenditions         int
	SourceBytes           int64
	Success               bool
}

// runProgressiveFamily encodes every progressive rendition concurrently,
// uploading each one as soon as its encode finishes, then uploads the source
// file itself. Returns the renditions that made it to disk.
func (c *Coordinator) runProgressiveFamily(ctx context.Context, runID string, entry *reassembly.Entry, sourcePath string) []progressiveResult {
	results := make([]*progressiveResult, len(c.ProgressiveRenditions))

	encodes := errgroup.Group{}
	uploads := errgroup.Group{}
	for i, r := range c.ProgressiveRenditions {
		i, r := i, r
		encodes.Go(func() error {
			path, err := c.Driver.MakeProgressive(sourcePath, entry.VideoID, r)
			if err != nil {
				metrics.Metrics.RenditionFailures.WithLabelValues("progressive").Inc()
				log.LogError(runID, "failed to encode progressive rendition", err, "rendition", r.String())
				return nil
			}
			log.Log(runID, "encoded progressive rendition", "rendition", r.String(), "path", path)
			results[i] = &progressiveResult{Rendition: r, Path: path}
			uploads.Go(func() error {
				c.uploadArtifact(ctx, runID, entry, path)
				return nil
			})
			return nil
		})
	}
	_ = encodes.Wait()
	_ = uploads.Wait()

	c.uploadArtifact(ctx, runID, entry, sourcePath)
	c.sendProgress(ctx, runID, entry, 30, "Finished generating pre check resolution")

	var successes []progressiveResult
	for _, r := range results {
		if r != nil {
			successes = append(successes, *r)
		}
	}
	return successes
}

// runHLSFamily encodes the HLS ladder with bounded concurrency, streams each
// rendition's playlist and segments as the encode finishes, then assembles
// the master playlist from the renditions that succeeded, in ladder order,
// and uploads it last. Returns the number of successful renditions.
func (c *Coordinator) runHLSFamily(ctx context.Context, runID string, entry *reassembly.Entry, sourcePath string) int {
	outputs := make([]*transcode.HLSOutput, len(c.HLSRenditions))

	eg := errgroup.Group{}
	eg.SetLimit(maxConcurrentHLSRenditions)
	for i, r := range c.HLSRenditions {
		i, r := i, r
		eg.Go(func() error {
			out, err := c.Driver.MakeHLS(sourcePath, entry.VideoID, r)
			if err != nil {
				metrics.Metrics.RenditionFailures.WithLabelValues("hls").Inc()
				log.LogError(runID, "failed to encode HLS rendition", err, "rendition", r.String())
				return nil
			}
			log.Log(runID, "encoded HLS rendition", "rendition", r.String(), "segments", len(out.SegmentPaths))
			outputs[i] = &out

			paths := append([]string{out.PlaylistPath}, out.SegmentPaths...)
			for j, path := range paths {
				c.uploadArtifact(ctx, runID, entry, path)
				c.sendProgress(ctx, runID, entry, (j+1)*100/len(paths), "Receiving video chunks")
			}
			return nil
		})
	}
	_ = eg.Wait()

	var entries []string
	for _, out := range outputs {
		if out != nil {
			entries = append(entries, out.MasterEntry)
		}
	}
	if len(entries) == 0 {
		log.Log(runID, "no HLS renditions succeeded, skipping master playlist")
		return 0
	}

	masterPath := video.MasterPlaylistPath(entry.VideoID)
	if err := os.WriteFile(masterPath, []byte(video.MasterPlaylist(entries)), 0644); err != nil {
		log.LogError(runID, "failed to write master playlist", err, "path", masterPath)
		return len(entries)
	}
	c.uploadArtifact(ctx, runID, entry, masterPath)
	return len(entries)
}

// triggerModeration sends the lowest progressive rendition still on disk to
// the moderation queue. The lowest height keeps the checker's decode cost
// down; content is identical across the ladder.
func (c *Coordinator) triggerModeration(ctx context.Context, runID string, entry *reassembly.Entry, progressive []progressiveResult) {
	var lowest *progressiveResult
	for i := range progressive {
		if lowest == nil || progressive[i].Rendition.Height < lowest.Rendition.Height {
			lowest = &progressive[i]
		}
	}
	if lowest == nil {
		log.Log(runID, "no progressive rendition available, skipping moderation trigger")
		return
	}
	if err := c.Notifier.Send(ctx, clients.ModerationQueue, []byte(lowest.Path)); err != nil {
		metrics.Metrics.NotificationFailures.Inc()
		log.LogError(runID, "failed to send moderation trigger", err, "path", lowest.Path)
		return
	}
	log.Log(runID, "sent moderation trigger", "path", lowest.Path)
}

// finish is the single exit path: cleanup, table drop, metrics, and the
// optional telemetry insert.
func (c *Coordinator) finish(ctx context.Context, runID string, entry *reassembly.Entry, start time.Time, summary runSummary) {
	c.cleanup(runID, entry.VideoID)
	c.Table.Drop(entry.VideoID)

	duration := time.Since(start)
	metrics.Metrics.VideoPipelineResults.WithLabelValues(fmt.Sprint(summary.Success)).Inc()
	metrics.Metrics.VideoPipelineDurationSec.Observe(duration.Seconds())
	log.Log(runID, "pipeline finished", "success", summary.Success, "duration", duration.String())

	if c.MetricsDB != nil {
		if err := c.MetricsDB.InsertRun(ctx, RunRecord{
			VideoID:               entry.VideoID,
			RunID:                 runID,
			UserID:                entry.Submitter.UserID,
			Success:               summary.Success,
			ProgressiveRenditions: summary.ProgressiveRenditions,
			HLSRenditions:         summary.HLSRenditions,
			SourceBytes:           summary.SourceBytes,
			DurationMillis:        duration.Milliseconds(),
		}); err != nil {
			log.LogError(runID, "failed to insert pipeline telemetry", err)
		}
	}
}

// uploadArtifact streams one local file to the repo service, absorbing the
// error. A failed artifact leaves a hole in the repo but never aborts the
// remaining artifacts.
func (c *Coordinator) uploadArtifact(ctx context.Context, runID string, entry *reassembly.Entry, path string) {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	resp, err := c.Uploader.Upload(ctx, path, entry.VideoID, entry.Submitter.WithDefaults())
	if err != nil {
		metrics.Metrics.UploadFailures.Inc()
		log.LogError(runID, "failed to upload artifact", err, "path", path)
		return
	}
	metrics.Metrics.ArtifactsUploaded.Inc()
	metrics.Metrics.BytesUploaded.Add(float64(size))
	log.Log(runID, "uploaded artifact", "path", path, "size_bytes", size, "stored_id", resp.GetId())
}

func (c *Coordinator) sendProgress(ctx context.Context, runID string, entry *reassembly.Entry, progress int, description string) {
	msg := clients.ProgressMessage{
		VideoID:     entry.VideoID,
		EventType:   progressEventType,
		Progress:    progress,
		UserID:      entry.Submitter.WithDefaults().UserID,
		Description: description,
		ServiceName: clients.ProgressServiceName,
	}
	if err := c.Notifier.SendProgress(ctx, msg); err != nil {
		metrics.Metrics.NotificationFailures.Inc()
		log.LogError(runID, "failed to send progress event", err, "progress", progress)
	}
}

// cleanup removes everything the pipeline may have left in the working
// directory. Each removal is independent; a failure is logged and the rest
// still run.
func (c *Coordinator) cleanup(runID, videoID string) {
	if err := os.RemoveAll(videoID); err != nil {
		log.LogError(runID, "failed to remove HLS output dir", err, "path", videoID)
	}
	for _, path := range []string{
		video.MasterPlaylistPath(videoID),
		video.ProgressivePath(videoID, 360),
		video.SourcePath(videoID),
	} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.LogError(runID, "failed to remove local artifact", err, "path", path)
		}
	}
}

// writeSource concatenates the chunks in index order into the source file. A
// missing index means the producer and the chunk table disagree about the
// total; that cannot heal on retry, so the error is unretriable.
func writeSource(path string, entry *reassembly.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create source file %s: %w", path, err)
	}
	defer file.Close()

	for i := 0; i < entry.Total; i++ {
		chunk, ok := entry.Chunks[i]
		if !ok {
			return errors.Unretriable(fmt.Errorf("chunk %d of %d missing from completed entry %s", i, entry.Total, entry.VideoID))
		}
		if _, err := file.Write(chunk); err != nil {
			return fmt.Errorf("failed to write chunk %d to %s: %w", i, path, err)
		}
	}
	return file.Close()
}

package pipeline

import (
	"context"
	"database/sql"
	"fmt"
)

const runsTableName = "video_pipeline_runs"

// RunRecord is one finished pipeline run, mirrored into Postgres for
// longer-term analytics than the Prometheus counters keep.
type RunRecord struct {
	VideoID               string
	RunID                 string
	UserID                string
	Success               bool
	ProgressiveRenditions int
	HLSRenditions         int
	SourceBytes           int64
	DurationMillis        int64
}

// MetricsDB writes one row per finished video. Callers treat insert errors as
// advisory; a dead analytics database never affects video processing.
type MetricsDB struct {
	db *sql.DB
}

func NewMetricsDB(db *sql.DB) *MetricsDB {
	return &MetricsDB{db: db}
}

func (m *MetricsDB) InsertRun(ctx context.Context, rec RunRecord) error {
	insertStmt := `insert into "` + runsTableName + `"(
		"finished_at",
		"video_id",
		"run_id",
		"user_id",
		"success",
		"progressive_renditions",
		"hls_renditions",
		"source_bytes",
		"duration_millis"
	) values(now(), $1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := m.db.ExecContext(ctx, insertStmt,
		rec.VideoID, rec.RunID, rec.UserID, rec.Success,
		rec.ProgressiveRenditions, rec.HLSRenditions, rec.SourceBytes, rec.DurationMillis)
	if err != nil {
		return fmt.Errorf("error inserting pipeline run for %s: %w", rec.VideoID, err)
	}
	return nil
}

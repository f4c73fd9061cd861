package pipeline

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestInsertRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`insert into "video_pipeline_runs"`).
		WithArgs("vid-1", "run-1", "user-1", true, 1, 6, int64(5_000_000), int64(12500)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	metricsDB := NewMetricsDB(db)
	err = metricsDB.InsertRun(context.Background(), RunRecord{
		VideoID:               "vid-1",
		RunID:                 "run-1",
		UserID:                "user-1",
		Success:               true,
		ProgressiveRenditions: 1,
		HLSRenditions:         6,
		SourceBytes:           5_000_000,
		DurationMillis:        12500,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertRunPropagatesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`insert into "video_pipeline_runs"`).
		WillReturnError(context.DeadlineExceeded)

	metricsDB := NewMetricsDB(db)
	err = metricsDB.InsertRun(context.Background(), RunRecord{VideoID: "vid-1"})
	require.ErrorContains(t, err, "error inserting pipeline run for vid-1")
}

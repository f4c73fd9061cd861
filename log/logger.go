package log

import (
	"io"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/patrickmn/go-cache"
)

// Loggers are cached per pipeline run so that context added while a video is
// being processed shows up on every later line for that run. Runs are keyed by
// run id rather than video id because at-least-once delivery can process the
// same video twice in one session.
var loggerCache *cache.Cache
var defaultLoggerCacheExpiry = 6 * time.Hour

var logDestination io.Writer = kitlog.NewSyncWriter(os.Stderr)

func init() {
	loggerCache = cache.New(defaultLoggerCacheExpiry, 10*time.Minute)
}

// Permanently add context to the logger. Any future logging for this run ID will include this context
func AddContext(runID string, keyvals ...interface{}) {
	_ = loggerCache.Add(runID, kitlog.With(getLogger(runID), keyvals...), defaultLoggerCacheExpiry)
}

func Log(runID string, message string, keyvals ...interface{}) {
	_ = kitlog.With(getLogger(runID), "msg", message).Log(keyvals...)
}

// Log in situations where we don't have access to the run ID, e.g. the ingest
// loop before a video has finished reassembly. Should be used sparingly and
// with as much context inserted into the message as possible
func LogNoRunID(message string, keyvals ...interface{}) {
	_ = kitlog.With(newLogger(), "msg", message).Log(keyvals...)
}

func LogError(runID string, message string, err error, keyvals ...interface{}) {
	msgLogger := kitlog.With(getLogger(runID), "msg", message)
	errLogger := kitlog.With(msgLogger, "err", err.Error())
	_ = errLogger.Log(keyvals...)
}

func getLogger(runID string) kitlog.Logger {
	logger, found := loggerCache.Get(runID)
	if found {
		return logger.(kitlog.Logger)
	}

	runLogger := kitlog.With(newLogger(), "run_id", runID)
	err := loggerCache.Add(runID, runLogger, defaultLoggerCacheExpiry)
	if err != nil {
		_ = runLogger.Log("msg", "error adding logger to cache", "run_id", runID)
	}
	return runLogger
}

func newLogger() kitlog.Logger {
	return kitlog.With(kitlog.NewLogfmtLogger(logDestination), "ts", kitlog.DefaultTimestampUTC)
}

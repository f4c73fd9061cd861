// Package reassembly correlates out-of-order chunk records into complete
// source videos, keyed by video id.
package reassembly

import (
	"sync"

	"github.com/codek7-services/codek7-backend/video"
)

// ChunkRecord is one parsed ingest record.
type ChunkRecord struct {
	VideoID   string
	Index     int
	Total     int
	Payload   []byte
	Submitter video.Submitter
}

// Outcome reports what a single Absorb call did to the entry.
type Outcome int

const (
	// Incomplete means the entry still has chunks outstanding.
	Incomplete Outcome = iota
	// JustCompleted means this record was the last outstanding chunk. It is
	// returned exactly once per entry lifetime; the caller owns the returned
	// snapshot and must eventually Drop the entry.
	JustCompleted
	// AlreadyComplete means the entry has completed before and is still being
	// processed. The record is ignored.
	AlreadyComplete
)

// Entry is the snapshot handed to the pipeline when a video completes. The
// table no longer mutates it after handoff.
type Entry struct {
	VideoID   string
	Total     int
	Chunks    map[int][]byte
	Submitter video.Submitter
}

type entryState struct {
	total      int
	chunks     map[int][]byte
	submitter  video.Submitter
	inProgress bool
}

// Table is the per-video reassembly state. The ingest loop is the only writer;
// pipeline goroutines call Drop when they are done with a video. All work
// under the mutex is plain map bookkeeping, never I/O.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entryState
}

func NewTable() *Table {
	return &Table{
		entries: make(map[string]*entryState),
	}
}

// Absorb inserts a chunk under (video id, chunk index). The total declared by
// the first accepted record is authoritative; later disagreements are ignored.
// Duplicate indices overwrite silently.
func (t *Table) Absorb(rec ChunkRecord) (Outcome, *Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[rec.VideoID]
	if !ok {
		entry = &entryState{
			total:  rec.Total,
			chunks: make(map[int][]byte),
		}
		t.entries[rec.VideoID] = entry
	}
	if entry.inProgress {
		return AlreadyComplete, nil
	}
	entry.submitter.Merge(rec.Submitter)
	if rec.Index < 0 || rec.Index >= entry.total {
		return Incomplete, nil
	}
	entry.chunks[rec.Index] = rec.Payload

	if len(entry.chunks) < entry.total {
		return Incomplete, nil
	}

	// Completion fires exactly once: mark the slot so that redundant records
	// arriving while the pipeline runs are ignored until Drop.
	entry.inProgress = true
	return JustCompleted, &Entry{
		VideoID:   rec.VideoID,
		Total:     entry.total,
		Chunks:    entry.chunks,
		Submitter: entry.submitter,
	}
}

// Drop removes the entry after successful or terminally failed processing.
func (t *Table) Drop(videoID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, videoID)
}

// Len reports how many videos are currently being reassembled or processed.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Package ingest consumes chunk records from the upload topic and feeds them
// into the reassembly table, dispatching completed videos to the pipeline.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/codek7-services/codek7-backend/config"
	"github.com/codek7-services/codek7-backend/log"
	"github.com/codek7-services/codek7-backend/metrics"
	"github.com/codek7-services/codek7-backend/reassembly"
)

// Consumer is the single reader of the chunk topic. Parsing and table
// bookkeeping happen inline; anything slower runs in a pipeline goroutine so
// consumption never stalls behind a transcode.
type Consumer struct {
	reader  *kafka.Reader
	table   *reassembly.Table
	process func(*reassembly.Entry)
}

func NewConsumer(cli config.Cli, table *reassembly.Table, process func(*reassembly.Entry)) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cli.KafkaBootstrapServers, ","),
		GroupID:  cli.KafkaConsumerGroup,
		Topic:    cli.KafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
		// A fresh consumer group starts from the oldest retained chunk so
		// that videos uploaded before the worker came up are not lost.
		StartOffset: kafka.FirstOffset,
	})
	return &Consumer{
		reader:  reader,
		table:   table,
		process: process,
	}
}

// Run consumes until ctx is cancelled or the reader is closed. Malformed
// records and transport hiccups are logged and skipped; the loop only exits
// on shutdown.
func (c *Consumer) Run(ctx context.Context) error {
	log.LogNoRunID("ingest consumer started", "topic", c.reader.Config().Topic, "group", c.reader.Config().GroupID)
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return err
			}
			metrics.Metrics.IngestErrors.Inc()
			log.LogNoRunID("error reading from chunk topic", "err", err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Consumer) handleMessage(msg kafka.Message) {
	metrics.Metrics.ChunksConsumed.Inc()

	rec, err := parseRecord(msg)
	if err != nil {
		metrics.Metrics.MalformedRecords.Inc()
		log.LogNoRunID("dropping malformed chunk record", "err", err, "partition", msg.Partition, "offset", msg.Offset)
		return
	}

	outcome, entry := c.table.Absorb(rec)
	if outcome == reassembly.JustCompleted {
		log.LogNoRunID("video fully reassembled, starting pipeline", "video_id", entry.VideoID, "total_chunks", entry.Total)
		go c.process(entry)
	}
}

// Close unblocks Run and releases the group membership.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// parseRecord maps one topic message to a chunk record. The video id rides on
// the message key and the chunk bytes on the value; everything else comes in
// headers. Records that cannot be placed in a chunk table are rejected rather
// than guessed at.
func parseRecord(msg kafka.Message) (reassembly.ChunkRecord, error) {
	rec := reassembly.ChunkRecord{
		VideoID: string(msg.Key),
		Payload: msg.Value,
		Index:   -1,
		Total:   -1,
	}
	if rec.VideoID == "" {
		return reassembly.ChunkRecord{}, errors.New("chunk record has no video id key")
	}
	if len(rec.Payload) == 0 {
		return reassembly.ChunkRecord{}, fmt.Errorf("chunk record for %s has an empty payload", rec.VideoID)
	}

	for _, header := range msg.Headers {
		value := string(header.Value)
		var err error
		switch header.Key {
		case "chunk_index":
			rec.Index, err = strconv.Atoi(value)
		case "total_chunks":
			rec.Total, err = strconv.Atoi(value)
		case "title":
			rec.Submitter.Title = value
		case "user_id":
			rec.Submitter.UserID = value
		case "description":
			rec.Submitter.Description = value
		}
		if err != nil {
			return reassembly.ChunkRecord{}, fmt.Errorf("chunk record for %s has unparseable header %s=%q: %w", rec.VideoID, header.Key, value, err)
		}
	}

	if rec.Total <= 0 {
		return reassembly.ChunkRecord{}, fmt.Errorf("chunk record for %s declares total_chunks=%d", rec.VideoID, rec.Total)
	}
	if rec.Index < 0 || rec.Index >= rec.Total {
		return reassembly.ChunkRecord{}, fmt.Errorf("chunk record for %s has chunk_index=%d outside of total_chunks=%d", rec.VideoID, rec.Index, rec.Total)
	}
	return rec, nil
}

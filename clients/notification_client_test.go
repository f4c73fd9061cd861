package clients

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var _ Notifier = (*AMQPNotifier)(nil)

const progressEventSchema = `{
	"type": "object",
	"required": ["video_id", "event_type", "progress", "user_id", "description", "service_name"],
	"additionalProperties": false,
	"properties": {
		"video_id": {"type": "string", "minLength": 1},
		"event_type": {"type": "string", "minLength": 1},
		"progress": {"type": "integer", "minimum": 0, "maximum": 100},
		"user_id": {"type": "string"},
		"description": {"type": "string"},
		"service_name": {"type": "string", "enum": ["video_processor"]}
	}
}`

func TestProgressMessageMatchesSchema(t *testing.T) {
	body, err := json.Marshal(ProgressMessage{
		VideoID:     "vidA",
		EventType:   "processing",
		Progress:    10,
		UserID:      "U",
		Description: "Receiving video chunks",
		ServiceName: ProgressServiceName,
	})
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(progressEventSchema),
		gojsonschema.NewBytesLoader(body),
	)
	require.NoError(t, err)
	require.True(t, result.Valid(), "schema errors: %v", result.Errors())
}

func TestProgressMessageFieldOrder(t *testing.T) {
	body, err := json.Marshal(ProgressMessage{
		VideoID:     "vidA",
		EventType:   "processing",
		Progress:    30,
		UserID:      "U",
		Description: "Finished generating pre check resolution",
		ServiceName: ProgressServiceName,
	})
	require.NoError(t, err)

	// consumers parse the object positionally, so serialization order is
	// part of the contract
	expected := `{"video_id":"vidA","event_type":"processing","progress":30,` +
		`"user_id":"U","description":"Finished generating pre check resolution",` +
		`"service_name":"video_processor"}`
	require.Equal(t, expected, string(body))
}

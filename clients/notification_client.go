package clients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codek7-services/codek7-backend/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ModerationQueue receives one message per completed video: the local
	// path of the selected pre-check rendition.
	ModerationQueue = "verify_nsfw"
	// ProgressQueue receives the JSON progress events.
	ProgressQueue = "notify.q"

	// ProgressServiceName identifies this worker in progress events.
	ProgressServiceName = "video_processor"
)

// ProgressMessage is the progress event payload. Field order is part of the
// wire contract; consumers parse the object positionally.
type ProgressMessage struct {
	VideoID     string `json:"video_id"`
	EventType   string `json:"event_type"`
	Progress    int    `json:"progress"`
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	ServiceName string `json:"service_name"`
}

// Notifier publishes moderation triggers and progress events. Callers treat
// publish errors as advisory: they log and move on, the pipeline never aborts
// over a notification.
type Notifier interface {
	Send(ctx context.Context, queue string, body []byte) error
	SendProgress(ctx context.Context, msg ProgressMessage) error
}

// AMQPNotifier publishes over a single channel in confirm mode. Both queues
// are declared idempotently with default options at connect time.
type AMQPNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPNotifier(uri string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	if err := channel.Confirm(false); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to put AMQP channel in confirm mode: %w", err)
	}
	for _, queue := range []string{ModerationQueue, ProgressQueue} {
		if _, err := channel.QueueDeclare(queue, false, false, false, false, nil); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}
	return &AMQPNotifier{conn: conn, channel: channel}, nil
}

// Send publishes the raw payload to the named queue via the default exchange
// and waits for the broker's publisher confirmation.
func (n *AMQPNotifier) Send(ctx context.Context, queue string, body []byte) error {
	confirmation, err := n.channel.PublishWithDeferredConfirmWithContext(
		ctx, "", queue, false, false,
		amqp.Publishing{Body: body},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queue, err)
	}
	if !confirmation.Wait() {
		return fmt.Errorf("broker rejected publish to queue %s", queue)
	}
	log.LogCtx(ctx, "message published", "queue", queue, "bytes", len(body))
	return nil
}

func (n *AMQPNotifier) SendProgress(ctx context.Context, msg ProgressMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal progress message: %w", err)
	}
	return n.Send(ctx, ProgressQueue, body)
}

func (n *AMQPNotifier) Close() error {
	return n.conn.Close()
}

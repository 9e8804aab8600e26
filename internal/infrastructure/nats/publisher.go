package natsinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Publisher publishes JSON-encoded events on a NATS connection.
type Publisher struct {
	conn *nats.Conn
}

func Connect(url string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("pet-adoption-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	slog.DebugContext(ctx, "publishing event", "subject", subject, "bytes", len(payload))
	return p.conn.Publish(subject, payload)
}

// Close flushes pending messages before closing the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

package bench

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/lattice-lang/tools/internal/logfields"
)

// Publisher pushes recorded results onto a NATS subject so dashboards and
// regression alerting can react without polling the database.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to the NATS server at url.
func NewPublisher(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	slog.Info("Connected to NATS", logfields.URL(url), logfields.Subject(subject))
	return &Publisher{conn: conn, subject: subject}, nil
}

// Publish sends one recorded result as JSON.
func (p *Publisher) Publish(r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish result: %w", err)
	}
	slog.Debug("Published benchmark result",
		logfields.Benchmark(r.Benchmark), logfields.Commit(r.Commit))
	return nil
}

// Close flushes pending messages and drops the connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		_ = p.conn.Flush()
		p.conn.Close()
	}
}

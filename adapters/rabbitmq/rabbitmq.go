package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
)

// PubMsg is the unit handed to a Publisher implementation.
type PubMsg struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

// Publisher is a minimal AMQP-like publisher interface decoupled from any concrete library.
type Publisher interface {
	Publish(ctx context.Context, m PubMsg) error
}

// Adapter implements crelay.Publisher using an injected AMQP-like Publisher.
// The message topic maps to the AMQP routing key.
type Adapter struct {
	Publisher  Publisher
	Exchange   string                  // exchange for published messages; empty uses the default exchange
	Propagator crelay.HeaderPropagator // optional, for context propagation into headers
}

var _ crelay.Publisher = (*Adapter)(nil)

// New creates a new RabbitMQ adapter instance with the provided publisher.
func New(p Publisher) *Adapter { return &Adapter{Publisher: p} }

// NewWithExchange creates an adapter publishing to a named exchange.
func NewWithExchange(p Publisher, exchange string) *Adapter {
	return &Adapter{Publisher: p, Exchange: exchange}
}

func (a *Adapter) Publish(ctx context.Context, m crelay.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Publisher == nil {
		return fmt.Errorf("rabbitmq publish: %w", rerr.ErrNotConfigured)
	}

	headers := make(map[string]string, len(m.Headers)+1)
	for k, v := range m.Headers {
		headers[k] = v
	}

	if m.Key != "" {
		headers["key"] = m.Key
	}

	if a.Propagator != nil {
		a.Propagator.Inject(ctx, headers)
	}

	pm := PubMsg{
		Exchange:   a.Exchange,
		RoutingKey: m.Topic,
		Body:       m.Body,
		Headers:    headers,
	}

	if err := a.Publisher.Publish(ctx, pm); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq publish %q: %w", m.Topic, errors.Join(rerr.ErrPublishFailed, err))
	}

	return nil
}

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
	"github.com/next-trace/scg-signal/signal"
)

// Relay publishes fired event payloads to a configured Publisher.
//
// Fire has no error channel, so publish failures on the attach path are
// reported through the logger instead of propagating into the event. The
// direct Publish method returns errors as usual.
//
// Relay is concurrency-safe and contains no global state.
type Relay struct {
	pub        crelay.Publisher
	logger     *slog.Logger
	propagator crelay.HeaderPropagator
	headers    map[string]string
}

// Option configures a Relay instance.
type Option func(*Relay)

// WithPropagator sets a HeaderPropagator used to inject context into
// outgoing message headers.
func WithPropagator(hp crelay.HeaderPropagator) Option {
	return func(r *Relay) { r.propagator = hp }
}

// WithHeaders sets static headers attached to every published message.
func WithHeaders(h map[string]string) Option {
	return func(r *Relay) { r.headers = h }
}

// New constructs a Relay over the given publisher. The logger is optional;
// nil falls back to slog.Default for attach-path failures.
func New(p crelay.Publisher, logger *slog.Logger, opts ...Option) *Relay {
	r := &Relay{pub: p, logger: logger}
	for _, o := range opts {
		o(r)
	}

	return r
}

// Publish serializes payload to JSON and publishes it under topic.
func (r *Relay) Publish(ctx context.Context, topic string, payload any, opts crelay.PublishOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.pub == nil {
		return fmt.Errorf("relay publish: %w", rerr.ErrNotConfigured)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("relay serialize: %w", errors.Join(rerr.ErrSerializationFailed, err))
	}

	m := crelay.Message{
		Topic:   topicFor(topic, opts),
		Key:     opts.Key,
		Body:    body,
		Headers: r.messageHeaders(ctx, opts),
	}

	if err := r.pub.Publish(ctx, m); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("relay publish %q: %w", m.Topic, errors.Join(rerr.ErrPublishFailed, err))
	}

	return nil
}

// Attach binds a forwarding handler to ev: every fired payload is
// published under topic. The returned Binding controls the forwarder's
// lifetime like any other scoped handler.
func Attach[T any](r *Relay, ev *signal.Event[T], topic string) *signal.Binding[T] {
	return ev.Bind(forwarder[T](r, topic))
}

// AttachPermanent binds a forwarding handler for the event's lifetime.
func AttachPermanent[T any](r *Relay, ev *signal.Event[T], topic string) {
	ev.PermanentBind(forwarder[T](r, topic))
}

func forwarder[T any](r *Relay, topic string) signal.Handler[T] {
	return func(v T) {
		if err := r.Publish(context.Background(), topic, v, crelay.PublishOptions{}); err != nil {
			r.log().Error("relay forward failed", "topic", topic, "err", err)
		}
	}
}

func (r *Relay) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}

	return slog.Default()
}

func (r *Relay) messageHeaders(ctx context.Context, o crelay.PublishOptions) map[string]string {
	h := make(map[string]string, len(r.headers)+len(o.Headers)+1)
	for k, v := range r.headers {
		h[k] = v
	}

	for k, v := range o.Headers {
		h[k] = v
	}

	if o.Key != "" {
		h["key"] = o.Key
	}

	if r.propagator != nil {
		r.propagator.Inject(ctx, h)
	}

	return h
}

func topicFor(topic string, o crelay.PublishOptions) string {
	if o.TopicOverride != "" {
		return o.TopicOverride
	}

	return topic
}

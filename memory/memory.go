package memory

import (
	"log/slog"

	"github.com/next-trace/scg-signal/adapters/inmemory"
	"github.com/next-trace/scg-signal/relay"
)

// New constructs a relay backed by the in-memory publisher and returns both,
// so callers can attach events and inspect what was published.
func New(logger *slog.Logger) (*relay.Relay, *inmemory.Publisher) {
	pub := inmemory.New()
	return relay.New(pub, logger), pub
}

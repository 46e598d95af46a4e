package memory_test

import (
	"testing"

	"github.com/next-trace/scg-signal/memory"
	"github.com/next-trace/scg-signal/relay"
	"github.com/next-trace/scg-signal/signal"
)

func TestNew_AttachAndInspect(t *testing.T) {
	r, rec := memory.New(nil)

	ev := signal.NewEvent[string]()
	relay.AttachPermanent(r, ev, "greetings")

	ev.Fire("hi")

	got := rec.Recorded()
	if len(got) != 1 || got[0].Topic != "greetings" {
		t.Fatalf("recorded mismatch: %+v", got)
	}
}

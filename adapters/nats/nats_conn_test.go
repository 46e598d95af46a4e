package nats_test

import (
	"errors"
	"testing"

	"github.com/next-trace/scg-signal/adapters/nats"
	rerr "github.com/next-trace/scg-signal/contract/errors"
)

func TestNewWithNATS_RequiresURL(t *testing.T) {
	_, _, err := nats.NewWithNATS(nats.Config{})
	if !errors.Is(err, rerr.ErrConnectFailed) {
		t.Fatalf("want ErrConnectFailed, got %v", err)
	}
}

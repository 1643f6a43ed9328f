package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	for _, dev := range []bool{false, true} {
		l, err := NewLogger(dev)
		if err != nil {
			t.Fatalf("dev=%v: unexpected err: %v", dev, err)
		}
		if got := l.Core().Enabled(zap.DebugLevel); got != dev {
			t.Fatalf("dev=%v: debug enabled=%v", dev, got)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("expected a no-op logger")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Fatal("expected the given logger")
	}
}

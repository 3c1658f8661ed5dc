package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod"} {
		if _, err := New(env, ""); err != nil {
			t.Errorf("New(%q) error = %v", env, err)
		}
	}
}

func TestNewLevelOverride(t *testing.T) {
	if _, err := New("local", "warn"); err != nil {
		t.Errorf("New with warn level error = %v", err)
	}
	if _, err := New("local", "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFromContextFallsBackToNop(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext must never return nil")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := zap.NewNop().With(zap.String("request_id", "r1"))
	ctx := WithContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("expected the stored logger back")
	}
}

//go:build !integration

package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKeyvalsPairsAndBareErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	Error("load failed", errors.New("boom"), "user_id", "u1")
	Info("served", "algorithm", "rule_based", "dangling")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0].ContextMap()
	if first["error"] != "boom" {
		t.Fatalf("expected error field, got %v", first)
	}
	if first["user_id"] != "u1" {
		t.Fatalf("expected user_id field, got %v", first)
	}

	second := entries[1].ContextMap()
	if second["algorithm"] != "rule_based" || second["detail"] != "dangling" {
		t.Fatalf("unexpected fields: %v", second)
	}
}

func TestNamedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	Named("store").Info("connected")

	entries := logs.All()
	if len(entries) != 1 || entries[0].LoggerName != "store" {
		t.Fatalf("expected one entry from store logger, got %+v", entries)
	}
}

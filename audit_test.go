package goGrant

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func auditConfig() Config {
	cfg := DefaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 16
	return cfg
}

func waitForEvent(t *testing.T, sink *ChannelSink) AuditEvent {
	t.Helper()
	select {
	case event := <-sink.Events():
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit event")
		return AuditEvent{}
	}
}

func TestAuditEventOnResolveFailure(t *testing.T) {
	sink := NewChannelSink(16)
	engine, err := New().WithConfig(auditConfig()).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Get([]string{"monitor", "bogus_privilege"}); err == nil {
		t.Fatal("expected resolution failure")
	}

	event := waitForEvent(t, sink)
	if event.EventType != EventResolveFailed {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if event.Success {
		t.Fatal("failure event marked successful")
	}
	if event.ID == "" {
		t.Fatal("event missing ID")
	}
	if event.Error == "" {
		t.Fatal("event missing error message")
	}
	if len(event.Tokens) != 2 {
		t.Fatalf("event must carry the full token set, got %v", event.Tokens)
	}
}

func TestAuditEventOnResolveSuccessWhenEnabled(t *testing.T) {
	cfg := auditConfig()
	cfg.Audit.EmitResolves = true

	sink := NewChannelSink(16)
	engine, err := New().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Get([]string{"monitor"}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	event := waitForEvent(t, sink)
	if event.EventType != EventResolve {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if !event.Success {
		t.Fatal("success event not marked successful")
	}
}

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), newAuditEvent(EventResolveFailed, []string{"x"}))

	var decoded AuditEvent
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatalf("sink output is not one JSON object per line: %v", err)
	}
	if decoded.EventType != EventResolveFailed {
		t.Fatalf("unexpected event type %q", decoded.EventType)
	}
	if len(decoded.Tokens) != 1 || decoded.Tokens[0] != "x" {
		t.Fatalf("unexpected tokens %v", decoded.Tokens)
	}
}

func TestRedisStreamSink(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	sink := NewRedisStreamSink(rdb, "gogrant:audit:test")
	sink.Emit(context.Background(), newAuditEvent(EventResolveFailed, []string{"bogus"}))
	sink.Emit(context.Background(), newAuditEvent(EventResolve, []string{"monitor"}))

	n, err := rdb.XLen(context.Background(), "gogrant:audit:test").Result()
	if err != nil {
		t.Fatalf("xlen: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 stream entries, got %d", n)
	}

	entries, err := rdb.XRange(context.Background(), "gogrant:audit:test", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	raw, ok := entries[0].Values["event"].(string)
	if !ok {
		t.Fatalf("stream entry missing event field: %v", entries[0].Values)
	}
	var decoded AuditEvent
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("stream entry is not JSON: %v", err)
	}
	if decoded.EventType != EventResolveFailed {
		t.Fatalf("unexpected event type %q", decoded.EventType)
	}
}

type gatedSink struct {
	gate chan struct{}
}

func (s *gatedSink) Emit(ctx context.Context, _ AuditEvent) {
	select {
	case <-s.gate:
	case <-ctx.Done():
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	gate := make(chan struct{})
	sink := &gatedSink{gate: gate}

	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	for i := 0; i < 8; i++ {
		d.Emit(context.Background(), newAuditEvent(EventResolveFailed, nil))
	}
	if d.Dropped() == 0 {
		t.Fatal("expected drops with a full buffer and a blocked sink")
	}

	close(gate)
	d.Close()
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 4, DropIfFull: true}, NoOpSink{})
	d.Close()
	d.Close()

	// Emits after close are discarded without panic.
	d.Emit(context.Background(), newAuditEvent(EventResolve, nil))
}

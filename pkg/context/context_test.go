package ctxutil

import (
	"context"
	"testing"
)

func TestNewContextWithRequest(t *testing.T) {
	ctx := NewContextWithRequest(context.Background(), "req-1", "10.0.0.1", "curl/8", "handler", "ListPersons")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("Expected request id req-1, got %q", got)
	}
	if got := GetClientIP(ctx); got != "10.0.0.1" {
		t.Errorf("Expected client ip, got %q", got)
	}
	if got := GetModule(ctx); got != "handler" {
		t.Errorf("Expected module handler, got %q", got)
	}
	if got := GetFunction(ctx); got != "ListPersons" {
		t.Errorf("Expected function ListPersons, got %q", got)
	}
	if GetStartTime(ctx).IsZero() {
		t.Error("Expected start time to be set")
	}

	m := ContextToMap(ctx)
	if m["request_id"] != "req-1" || m["function"] != "ListPersons" {
		t.Errorf("Unexpected context map %v", m)
	}
}

func TestWithFunctionOverridesModule(t *testing.T) {
	ctx := NewContextWithRequest(context.Background(), "", "", "", "handler", "ListPersons")
	ctx = WithFunction(ctx, "service", "Query")

	if GetModule(ctx) != "service" || GetFunction(ctx) != "Query" {
		t.Errorf("Expected service/Query, got %s/%s", GetModule(ctx), GetFunction(ctx))
	}
	if GetRequestID(ctx) != "" {
		t.Error("Expected empty request id")
	}
}

func TestIsValidContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if !IsValidContext(ctx) {
		t.Error("Expected live context to be valid")
	}
	cancel()
	if IsValidContext(ctx) {
		t.Error("Expected cancelled context to be invalid")
	}
}

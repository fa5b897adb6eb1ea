package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.AggregatePenca", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.Healthz")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected the original context without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a noop span")
	}
}

func TestStartPencaSpan_WithoutParentIsNoop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/pencas/p1", nil)
	req.SetPathValue("pencaID", "p1")

	ctx, span := startPencaSpan(req, "httpapi.Handler.GetPenca")
	defer span.End()

	if ctx != req.Context() || span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent")
	}
}

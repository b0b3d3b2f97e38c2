package sse

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriterStart(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	headers := rec.Header()
	tests := []struct {
		header string
		want   string
	}{
		{"Content-Type", "text/event-stream"},
		{"Cache-Control", "no-cache"},
		{"Connection", "keep-alive"},
		{"X-Content-Type-Options", "nosniff"},
	}
	for _, tt := range tests {
		if got := headers.Get(tt.header); got != tt.want {
			t.Errorf("header %s = %q, want %q", tt.header, got, tt.want)
		}
	}

	// Start is idempotent.
	if err := w.Start(); err != nil {
		t.Errorf("second Start() error = %v", err)
	}
}

func TestWriterWriteEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)
	w.Start()

	if err := w.WriteEvent("status", NewInitStatus()); err != nil {
		t.Fatalf("WriteEvent() error = %v", err)
	}

	body := rec.Body.String()
	want := "event: status\ndata: {\"step\":\"init\"}\n\n"
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestWriterWriteComment(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)
	w.Start()

	if err := w.WriteComment("ping"); err != nil {
		t.Fatalf("WriteComment() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), ": ping\n\n") {
		t.Errorf("body = %q, want comment frame", rec.Body.String())
	}
}

func TestWriterClose(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)
	w.Start()
	w.Close()

	if !w.IsClosed() {
		t.Error("IsClosed() = false after Close()")
	}
	if err := w.WriteEvent("done", NewDoneEvent()); err == nil {
		t.Error("WriteEvent() after Close() should return an error")
	}
	if err := w.WriteComment("ping"); err == nil {
		t.Error("WriteComment() after Close() should return an error")
	}
}

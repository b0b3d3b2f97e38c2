package sse

import (
	"encoding/json"
	"testing"
)

func TestStatusEventJSON(t *testing.T) {
	tests := []struct {
		name  string
		event StatusEvent
		want  string
	}{
		{"init", NewInitStatus(), `{"step":"init"}`},
		{"thread ready", NewThreadReadyStatus("thread_abc"), `{"step":"thread_ready","threadId":"thread_abc"}`},
		{"run start", NewRunStartStatus(), `{"step":"run_start"}`},
		{"tools", NewToolsStatus(3), `{"step":"tools","count":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestToolCallEventNilArgs(t *testing.T) {
	event := NewToolCallEvent("get_today", nil)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"name":"get_today","args":{}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestTerminalEventsJSON(t *testing.T) {
	done, _ := json.Marshal(NewDoneEvent())
	if string(done) != `{"ok":true}` {
		t.Errorf("done = %s", done)
	}

	withStatus, _ := json.Marshal(NewErrorEvent("failed", "run failed"))
	if string(withStatus) != `{"status":"failed","message":"run failed"}` {
		t.Errorf("error with status = %s", withStatus)
	}

	withoutStatus, _ := json.Marshal(NewErrorEvent("", "stream error"))
	if string(withoutStatus) != `{"message":"stream error"}` {
		t.Errorf("error without status = %s", withoutStatus)
	}
}

package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockProvider starts a mock assistant API and returns a client pointed
// at it.
func newMockProvider(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:      "sk-test",
		AssistantID: "asst_test",
		BaseURL:     srv.URL,
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

func TestCreateThread(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/threads", r.URL.Path)
		writeJSON(t, w, `{"id":"thread_abc","object":"thread"}`)
	}))

	id, err := client.CreateThread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "thread_abc", id)
}

func TestAddUserMessage(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/threads/thread_abc/messages", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user", body["role"])
		assert.Equal(t, "quero treinar pernas hoje", body["content"])

		writeJSON(t, w, `{"id":"msg_1","object":"thread.message","role":"user"}`)
	}))

	err := client.AddUserMessage(context.Background(), "thread_abc", "quero treinar pernas hoje")
	require.NoError(t, err)
}

func TestCreateRunUsesAssistantID(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/threads/thread_abc/runs", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asst_test", body["assistant_id"])

		writeJSON(t, w, `{"id":"run_1","object":"thread.run","thread_id":"thread_abc","status":"queued"}`)
	}))

	run, err := client.CreateRun(context.Background(), "thread_abc")
	require.NoError(t, err)
	assert.Equal(t, "run_1", run.ID)
	assert.Equal(t, StatusQueued, run.Status)
	assert.False(t, run.Status.Terminal())
}

func TestGetRunRequiresAction(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/threads/thread_abc/runs/run_1", r.URL.Path)
		writeJSON(t, w, `{
			"id": "run_1",
			"object": "thread.run",
			"thread_id": "thread_abc",
			"status": "requires_action",
			"required_action": {
				"type": "submit_tool_outputs",
				"submit_tool_outputs": {
					"tool_calls": [
						{
							"id": "call_1",
							"type": "function",
							"function": {"name": "get_today", "arguments": "{}"}
						},
						{
							"id": "call_2",
							"type": "function",
							"function": {"name": "log_water", "arguments": "{\"amount_ml\":250}"}
						}
					]
				}
			}
		}`)
	}))

	run, err := client.GetRun(context.Background(), "thread_abc", "run_1")
	require.NoError(t, err)
	assert.Equal(t, StatusRequiresAction, run.Status)
	require.Len(t, run.ToolCalls, 2)
	assert.Equal(t, "call_1", run.ToolCalls[0].ID)
	assert.Equal(t, "get_today", run.ToolCalls[0].Name)
	assert.Equal(t, `{"amount_ml":250}`, run.ToolCalls[1].Arguments)
}

func TestGetRunFailed(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, `{
			"id": "run_1",
			"object": "thread.run",
			"thread_id": "thread_abc",
			"status": "failed",
			"last_error": {"code": "rate_limit_exceeded", "message": "Rate limit reached"}
		}`)
	}))

	run, err := client.GetRun(context.Background(), "thread_abc", "run_1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, run.Status)
	assert.True(t, run.Status.Terminal())
	assert.Equal(t, "Rate limit reached", run.LastError)
}

func TestSubmitToolOutputs(t *testing.T) {
	client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/threads/thread_abc/runs/run_1/submit_tool_outputs", r.URL.Path)

		var body struct {
			ToolOutputs []struct {
				ToolCallID string `json:"tool_call_id"`
				Output     string `json:"output"`
			} `json:"tool_outputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.ToolOutputs, 1)
		assert.Equal(t, "call_1", body.ToolOutputs[0].ToolCallID)
		assert.JSONEq(t, `{"ok":true,"water_ml":250}`, body.ToolOutputs[0].Output)

		writeJSON(t, w, `{"id":"run_1","object":"thread.run","thread_id":"thread_abc","status":"in_progress"}`)
	}))

	run, err := client.SubmitToolOutputs(context.Background(), "thread_abc", "run_1", []ToolOutput{
		{ToolCallID: "call_1", Output: `{"ok":true,"water_ml":250}`},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, run.Status)
}

func TestLatestAssistantText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "text reply",
			body: `{"object":"list","data":[
				{"id":"msg_2","role":"assistant","content":[{"type":"text","text":{"value":"Bora treinar!"}}]},
				{"id":"msg_1","role":"user","content":[{"type":"text","text":{"value":"oi"}}]}
			]}`,
			want: "Bora treinar!",
		},
		{
			name: "skips user messages",
			body: `{"object":"list","data":[
				{"id":"msg_1","role":"user","content":[{"type":"text","text":{"value":"oi"}}]},
				{"id":"msg_2","role":"assistant","content":[{"type":"text","text":{"value":"Oi! Como posso ajudar?"}}]}
			]}`,
			want: "Oi! Como posso ajudar?",
		},
		{
			name: "non-text content",
			body: `{"object":"list","data":[
				{"id":"msg_1","role":"assistant","content":[{"type":"image_file"}]}
			]}`,
			want: "",
		},
		{
			name: "no messages",
			body: `{"object":"list","data":[]}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/threads/thread_abc/messages", r.URL.Path)
				assert.Equal(t, "run_1", r.URL.Query().Get("run_id"))
				writeJSON(t, w, tt.body)
			}))

			text, err := client.LatestAssistantText(context.Background(), "thread_abc", "run_1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

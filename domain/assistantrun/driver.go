// Package assistantrun drives one assistant run per request: it binds the
// user to a provider thread, posts the message, polls the run, executes
// requested tools, and streams progress as SSE events.
package assistantrun

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vander-supa3/academia-nutricional/domain/threads"
	"github.com/vander-supa3/academia-nutricional/domain/tools"
	"github.com/vander-supa3/academia-nutricional/internal/config"
	"github.com/vander-supa3/academia-nutricional/pkg/assistant"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
	"github.com/vander-supa3/academia-nutricional/pkg/sse"
)

// Driver runs the poll/tool loop for a single assistant run and reports
// progress on an SSE writer. One driver instance serves all requests.
type Driver struct {
	provider assistant.Provider
	threads  *threads.Service
	registry *tools.Registry
	log      *slog.Logger

	pollInterval  time.Duration
	maxWait       time.Duration
	maxToolCycles int

	// active tracks users with a run in flight. A user gets one run at a
	// time; concurrent runs would interleave tool writes on one thread.
	active sync.Map
}

// NewDriver creates the run driver from the assistant configuration.
func NewDriver(cfg *config.Config, provider assistant.Provider, threadSvc *threads.Service, registry *tools.Registry, log *slog.Logger) *Driver {
	return &Driver{
		provider:      provider,
		threads:       threadSvc,
		registry:      registry,
		log:           log.With(logger.Scope("assistantrun")),
		pollInterval:  cfg.Assistant.PollInterval,
		maxWait:       cfg.Assistant.MaxWait,
		maxToolCycles: cfg.Assistant.MaxToolCycles,
	}
}

// Acquire claims the per-user run slot. It returns false when the user
// already has a run in flight; on success the caller must invoke the
// returned release function when the run finishes.
func (d *Driver) Acquire(userID string) (func(), bool) {
	if _, loaded := d.active.LoadOrStore(userID, struct{}{}); loaded {
		return nil, false
	}
	return func() { d.active.Delete(userID) }, true
}

// Run executes one assistant run and streams its progress. The stream must
// already be started; every outcome, success or failure, is reported
// in-band and the writer is closed before returning.
func (d *Driver) Run(ctx context.Context, out *sse.Writer, userID, message string) {
	start := time.Now()
	outcome := "completed"

	defer func() {
		if r := recover(); r != nil {
			outcome = "panic"
			d.log.Error("assistant run panicked",
				slog.String("user_id", userID),
				slog.Any("panic", r),
			)
			out.WriteEvent(string(sse.EventError), sse.NewErrorEvent("", fmt.Sprintf("internal error: %v", r)))
		}
		runDuration.Observe(time.Since(start).Seconds())
		runsTotal.WithLabelValues(outcome).Inc()
		out.Close()
	}()

	out.WriteEvent(string(sse.EventStatus), sse.NewInitStatus())

	threadID, err := d.threads.Resolve(ctx, userID)
	if err != nil {
		outcome = "failed"
		d.fail(out, userID, "failed to prepare conversation thread", err)
		return
	}
	out.WriteEvent(string(sse.EventStatus), sse.NewThreadReadyStatus(threadID))

	if err := d.provider.AddUserMessage(ctx, threadID, message); err != nil {
		outcome = "failed"
		d.fail(out, userID, "failed to post message", err)
		return
	}

	run, err := d.provider.CreateRun(ctx, threadID)
	if err != nil {
		outcome = "failed"
		d.fail(out, userID, "failed to start assistant run", err)
		return
	}
	out.WriteEvent(string(sse.EventStatus), sse.NewRunStartStatus())

	deadline := time.Now().Add(d.maxWait)
	cycles := 0

	for {
		switch {
		case run.Status == assistant.StatusRequiresAction:
			cycles++
			if cycles > d.maxToolCycles {
				outcome = "failed"
				out.WriteEvent(string(sse.EventError), sse.NewErrorEvent("", "assistant requested too many tool rounds"))
				return
			}

			outputs := d.executeTools(ctx, out, userID, run.ToolCalls)
			run, err = d.provider.SubmitToolOutputs(ctx, threadID, run.ID, outputs)
			if err != nil {
				outcome = "failed"
				d.fail(out, userID, "failed to submit tool outputs", err)
				return
			}
			// Re-evaluate immediately: the provider may already have moved
			// the run forward, or asked for another tool round.
			continue

		case run.Status == assistant.StatusCompleted:
			text, err := d.provider.LatestAssistantText(ctx, threadID, run.ID)
			if err != nil {
				outcome = "failed"
				d.fail(out, userID, "failed to read assistant reply", err)
				return
			}
			if text == "" {
				text = "Ok."
			}
			out.WriteEvent(string(sse.EventMessage), sse.NewMessageEvent(text))
			out.WriteEvent(string(sse.EventDone), sse.NewDoneEvent())
			return

		case run.Status.Terminal():
			// failed, cancelled or expired
			outcome = "failed"
			msg := run.LastError
			if msg == "" {
				msg = "assistant run ended without a reply"
			}
			out.WriteEvent(string(sse.EventError), sse.NewErrorEvent(string(run.Status), msg))
			return
		}

		// queued or in_progress: wait for the next poll.
		if time.Now().After(deadline) {
			outcome = "timeout"
			out.WriteEvent(string(sse.EventError), sse.NewErrorEvent("timeout", "assistant run did not finish in time"))
			return
		}

		select {
		case <-ctx.Done():
			// Client went away; nothing we write reaches them.
			outcome = "cancelled"
			d.log.Info("assistant run cancelled by client",
				slog.String("user_id", userID),
				slog.String("run_id", run.ID),
			)
			return
		case <-time.After(d.pollInterval):
		}

		run, err = d.provider.GetRun(ctx, threadID, run.ID)
		if err != nil {
			outcome = "failed"
			d.fail(out, userID, "failed to poll assistant run", err)
			return
		}
	}
}

// executeTools runs every requested tool call and collects one output per
// call. The batch is always complete: the provider rejects partial
// submissions.
func (d *Driver) executeTools(ctx context.Context, out *sse.Writer, userID string, calls []assistant.ToolCall) []assistant.ToolOutput {
	out.WriteEvent(string(sse.EventStatus), sse.NewToolsStatus(len(calls)))

	outputs := make([]assistant.ToolOutput, 0, len(calls))
	for _, call := range calls {
		args := parseToolArgs(call.Arguments)
		out.WriteEvent(string(sse.EventToolCall), sse.NewToolCallEvent(call.Name, args))

		result := d.registry.Dispatch(ctx, userID, call.Name, args)
		toolCallsTotal.WithLabelValues(call.Name).Inc()

		payload, err := json.Marshal(result)
		if err != nil {
			d.log.Error("tool result not serializable",
				slog.String("tool", call.Name),
				logger.Error(err),
			)
			payload = []byte(`{"ok":false,"error":"tool result not serializable"}`)
		}
		outputs = append(outputs, assistant.ToolOutput{
			ToolCallID: call.ID,
			Output:     string(payload),
		})
	}
	return outputs
}

// fail logs the error and emits the terminal error frame. The provider
// error itself stays in the log; clients get the stable message.
func (d *Driver) fail(out *sse.Writer, userID, message string, err error) {
	d.log.Error(message,
		slog.String("user_id", userID),
		logger.Error(err),
	)
	out.WriteEvent(string(sse.EventError), sse.NewErrorEvent("", message))
}

// parseToolArgs decodes the provider's argument JSON. Malformed arguments
// become an empty map so the tool still runs and reports its own error.
func parseToolArgs(raw string) map[string]any {
	args := map[string]any{}
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}
	}
	return args
}

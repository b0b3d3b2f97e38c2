// Package tools implements the domain tool handlers the assistant can call
// during a run.
package tools

import (
	"context"
	"log/slog"
	"sort"
)

// Result is the uniform tool output envelope: {ok:true, ...} on success,
// {ok:false, error} on failure. Tool failures are data, never run aborts —
// the assistant sees them and reacts in natural language.
type Result map[string]any

// ok builds a success envelope with extra fields.
func ok(fields Result) Result {
	if fields == nil {
		fields = Result{}
	}
	fields["ok"] = true
	return fields
}

// fail builds a failure envelope.
func fail(message string) Result {
	return Result{"ok": false, "error": message}
}

// HandlerFunc executes one tool for an authenticated user.
type HandlerFunc func(ctx context.Context, userID string, args map[string]any) Result

// Registry is the closed set of tools the assistant may invoke.
type Registry struct {
	handlers map[string]HandlerFunc
	log      *slog.Logger
}

// Dispatch runs a tool by name. The caller identity comes from the
// session, never from tool arguments; without it every tool fails closed.
// Unknown names produce a failure envelope and the run continues.
func (r *Registry) Dispatch(ctx context.Context, userID, name string, args map[string]any) Result {
	if userID == "" {
		return fail("unauthorized")
	}

	handler, found := r.handlers[name]
	if !found {
		r.log.Warn("unknown tool requested", slog.String("tool", name))
		return fail("tool not implemented: " + name)
	}

	if args == nil {
		args = map[string]any{}
	}
	return handler(ctx, userID, args)
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// argString reads an optional string argument.
func argString(args map[string]any, key string) string {
	if v, found := args[key].(string); found {
		return v
	}
	return ""
}

// argInt reads an optional numeric argument. JSON numbers decode as
// float64.
func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// argBool reads an optional boolean argument.
func argBool(args map[string]any, key string) bool {
	if v, found := args[key].(bool); found {
		return v
	}
	return false
}

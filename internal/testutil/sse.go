package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// SSEEvent represents a Server-Sent Event
type SSEEvent struct {
	Event string // The event type (from "event:" line)
	Data  string // The data payload (from "data:" line)
}

// ParseSSE parses a Server-Sent Events body into individual events.
// Each event is separated by a blank line; comment lines are skipped.
func ParseSSE(body io.Reader) ([]SSEEvent, error) {
	var events []SSEEvent
	scanner := bufio.NewScanner(body)

	var current SSEEvent
	var dataLines []string

	for scanner.Scan() {
		line := scanner.Text()

		// Empty line marks end of event
		if line == "" {
			if len(dataLines) > 0 || current.Event != "" {
				current.Data = strings.Join(dataLines, "\n")
				events = append(events, current)
				current = SSEEvent{}
				dataLines = nil
			}
			continue
		}

		if strings.HasPrefix(line, "event:") {
			current.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		} else if strings.HasPrefix(line, "data:") {
			dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
		// Lines starting with : are comments, ignore them
	}

	if len(dataLines) > 0 || current.Event != "" {
		current.Data = strings.Join(dataLines, "\n")
		events = append(events, current)
	}

	return events, scanner.Err()
}

// ParseSSEBytes parses SSE events from a byte slice
func ParseSSEBytes(data []byte) ([]SSEEvent, error) {
	return ParseSSE(bytes.NewReader(data))
}

// JSON parses the event's data payload into v.
func (e *SSEEvent) JSON(v any) error {
	return json.Unmarshal([]byte(e.Data), v)
}

// EventsByType returns all events with the given type, in order.
func EventsByType(events []SSEEvent, eventType string) []SSEEvent {
	var result []SSEEvent
	for _, e := range events {
		if e.Event == eventType {
			result = append(result, e)
		}
	}
	return result
}

// EventNames returns the ordered list of event type names.
func EventNames(events []SSEEvent) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Event)
	}
	return names
}

package sse

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type event struct {
	Event string `json:"event"`
	Count int    `json:"count"`
}

func collect(t *testing.T, stream string) []event {
	t.Helper()
	d := NewDecoder(strings.NewReader(stream))
	var events []event
	for {
		var ev event
		err := d.Next(&ev)
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		events = append(events, ev)
	}
}

func TestDecoderReadsFrames(t *testing.T) {
	t.Parallel()
	stream := "data: {\"event\":\"connected\",\"count\":1}\n\n" +
		"data: {\"event\":\"disconnected\"}\n\n"
	events := collect(t, stream)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Event != "connected" || events[0].Count != 1 {
		t.Errorf("first event: got %+v", events[0])
	}
	if events[1].Event != "disconnected" {
		t.Errorf("second event: got %+v", events[1])
	}
}

func TestDecoderSkipsHeartbeatsAndComments(t *testing.T) {
	t.Parallel()
	stream := ": ping\n\n" +
		"event: keepalive\n\n" +
		"data: {\"event\":\"connected\"}\n\n" +
		": ping\n\n"
	events := collect(t, stream)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Event != "connected" {
		t.Errorf("event: got %+v", events[0])
	}
}

func TestDecoderSkipsMalformedPayloads(t *testing.T) {
	t.Parallel()
	stream := "data: {not json\n\n" +
		"data: {\"event\":\"connected\"}\n\n"
	events := collect(t, stream)
	if len(events) != 1 || events[0].Event != "connected" {
		t.Fatalf("got %+v, want the one well-formed event", events)
	}
}

func TestDecoderDataWithoutSpace(t *testing.T) {
	t.Parallel()
	events := collect(t, "data:{\"event\":\"connected\"}\n\n")
	if len(events) != 1 || events[0].Event != "connected" {
		t.Fatalf("got %+v, want the connected event", events)
	}
}

func TestDecoderFinalFrameWithoutTrailingBlank(t *testing.T) {
	t.Parallel()
	events := collect(t, "data: {\"event\":\"connected\"}\n")
	if len(events) != 1 || events[0].Event != "connected" {
		t.Fatalf("got %+v, want the connected event", events)
	}
}

func TestDecoderLastDataLineWins(t *testing.T) {
	t.Parallel()
	stream := "data: {\"event\":\"stale\"}\n" +
		"data: {\"event\":\"connected\"}\n\n"
	events := collect(t, stream)
	if len(events) != 1 || events[0].Event != "connected" {
		t.Fatalf("got %+v, want the last data line", events)
	}
}

func TestDecoderEmptyStream(t *testing.T) {
	t.Parallel()
	if events := collect(t, ""); len(events) != 0 {
		t.Fatalf("got %+v, want none", events)
	}
}

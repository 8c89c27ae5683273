// Package sse decodes text/event-stream frames into typed events. Framing
// is implemented once here; every subscriber consumes decoded values
// instead of re-splitting the byte stream.
package sse

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// Decoder reads blank-line-separated frames from a stream and extracts the
// JSON payload of each frame's data: line. Frames without a data: line
// (heartbeats, comments) and payloads that fail to decode are skipped.
type Decoder struct {
	scanner *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Decoder{scanner: sc}
}

// Next decodes the next well-formed event into v. It returns io.EOF when
// the stream ends, or the scanner error if reading fails.
func (d *Decoder) Next(v any) error {
	var data string
	haveData := false
	for d.scanner.Scan() {
		line := d.scanner.Text()
		if line == "" {
			// frame boundary
			if haveData {
				if err := json.Unmarshal([]byte(data), v); err == nil {
					return nil
				}
				// heartbeat or malformed payload, keep reading
			}
			data, haveData = "", false
			continue
		}
		if strings.HasPrefix(line, "data:") {
			data = strings.TrimSpace(line[len("data:"):])
			haveData = true
		}
	}
	if err := d.scanner.Err(); err != nil {
		return err
	}
	// a final frame can end at EOF without a trailing blank line
	if haveData {
		if err := json.Unmarshal([]byte(data), v); err == nil {
			// consume it exactly once
			return nil
		}
	}
	return io.EOF
}

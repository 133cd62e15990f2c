package responseformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the wire encoding.
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat accepts "json" (also the empty string) and "msgpack".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", JSON:
		return JSON, nil
	case MsgPack:
		return MsgPack, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or msgpack)", s)
	}
}

// Formatter handles encoding values in JSON or MessagePack format
type Formatter struct {
	// Indent pretty-prints JSON output.
	Indent bool
}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Write encodes data to w. JSON is the default format.
func (f *Formatter) Write(w io.Writer, data any, format Format) error {
	if format == MsgPack {
		return f.writeMsgPack(w, data)
	}
	return f.writeJSON(w, data)
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}

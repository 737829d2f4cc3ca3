package frame

import (
	"encoding/json"
	"fmt"
)

// Decoder turns a raw inbound message into a Frame.
type Decoder interface {
	Decode(data []byte) (*Frame, error)
}

// DecodeError reports a message that could not be turned into a Frame.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode frame: %s: %v", e.Reason, e.Err)
	}
	return "decode frame: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// JSONDecoder decodes JSON frame messages.
type JSONDecoder struct{}

func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

func (d *JSONDecoder) Decode(data []byte) (*Frame, error) {
	return Decode(data)
}

// Decode parses a JSON frame message. A missing "ascii" or "resolution" key,
// or a resolution below 1, is a *DecodeError.
func Decode(data []byte) (*Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &DecodeError{Reason: "invalid json", Err: err}
	}
	if w.Rows == nil {
		return nil, &DecodeError{Reason: `missing "ascii"`}
	}
	if w.Resolution == nil {
		return nil, &DecodeError{Reason: `missing "resolution"`}
	}
	if *w.Resolution <= 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("resolution must be positive, got %d", *w.Resolution)}
	}

	f := &Frame{
		Rows:       *w.Rows,
		Resolution: *w.Resolution,
	}
	if w.Theme != nil {
		f.Theme = *w.Theme
	}
	return f, nil
}

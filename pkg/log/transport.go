package log

import (
	"encoding/json"
	"io"
	"os"
)

// Transport is a log output destination.
type Transport interface {
	// Write delivers one entry. Implementations must be safe for use from
	// multiple goroutines through the logger's serialization.
	Write(entry Entry) error
}

// JSONTransport writes line-delimited JSON entries to a writer.
type JSONTransport struct {
	w io.Writer
}

// NewStdout returns a transport writing JSON lines to os.Stdout.
func NewStdout() *JSONTransport {
	return &JSONTransport{w: os.Stdout}
}

// NewJSONTransport returns a transport writing JSON lines to w.
// Useful for testing.
func NewJSONTransport(w io.Writer) *JSONTransport {
	return &JSONTransport{w: w}
}

// Write marshals the entry and appends a newline.
func (t *JSONTransport) Write(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = t.w.Write(data)
	return err
}

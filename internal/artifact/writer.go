package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Writer serializes artifacts into a Sink and records what it wrote.
type Writer struct {
	sink    Sink
	written []string
}

// NewWriter returns a Writer over sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink: sink}
}

// WriteJSON writes v as two-space indented JSON without a trailing newline.
func (w *Writer) WriteJSON(path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return w.write(path, data)
}

// WriteText writes text verbatim.
func (w *Writer) WriteText(path, text string) error {
	return w.write(path, []byte(text))
}

// Clear removes a stale aggregate file or directory before it is rebuilt.
func (w *Writer) Clear(path string) error {
	return w.sink.RemoveAll(path)
}

// Written lists artifact paths in the order they were written.
func (w *Writer) Written() []string {
	return append([]string(nil), w.written...)
}

func (w *Writer) write(path string, data []byte) error {
	if err := w.sink.WriteFile(path, data); err != nil {
		return err
	}
	w.written = append(w.written, path)
	return nil
}

// EncodeJSON renders v the way the site tooling expects: two-space indent,
// no HTML escaping, no trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

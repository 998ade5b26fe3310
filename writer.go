package preopen

import (
	"bytes"
	"io"
	"os"
)

// Writer translates tokens appearing in written bytes back into the host
// paths they stand in for, and forwards the result to an inner io.Writer.
//
// Translation is applied a line at a time: Write buffers bytes until it
// sees a newline, rewrites every token in the buffered line, then flushes
// the line to the inner writer. A final partial line with no trailing
// newline is held until the next Write call or never flushed at all,
// matching ordinary line-buffered output.
//
// Write re-scans the whole buffered line for every binding in the table,
// which is O(bindings × line length). A long-running process that emits
// many lines through a Mediator with hundreds of bindings would do better
// with an Aho-Corasick multi-pattern matcher; for the number of bindings
// a typical command line produces, the simple scan is fine.
type Writer struct {
	mediator *Mediator
	inner    io.Writer
	buf      []byte
}

// Stdout returns a Writer that translates tokens written to it and
// forwards the result to os.Stdout.
func (m *Mediator) Stdout() *Writer {
	return &Writer{mediator: m, inner: os.Stdout}
}

// Stderr returns a Writer that translates tokens written to it and
// forwards the result to os.Stderr.
func (m *Mediator) Stderr() *Writer {
	return &Writer{mediator: m, inner: os.Stderr}
}

// NewWriter returns a Writer that translates tokens written to it and
// forwards the result to inner.
func NewWriter(m *Mediator, inner io.Writer) *Writer {
	return &Writer{mediator: m, inner: inner}
}

// Write implements io.Writer. It always consumes all of p; the returned
// count is len(p) unless the inner writer fails partway through a
// completed line.
func (w *Writer) Write(p []byte) (int, error) {
	total := len(p)
	consumed := 0
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		w.buf = append(w.buf, p[:i+1]...)
		w.replaceTokens()
		if _, err := w.inner.Write(w.buf); err != nil {
			return consumed + i + 1, err
		}
		w.buf = w.buf[:0]
		consumed += i + 1
		p = p[i+1:]
	}
	w.buf = append(w.buf, p...)
	return total, nil
}

// replaceTokens rewrites every occurrence of every binding's token in
// w.buf with its original host path, in binding order.
func (w *Writer) replaceTokens() {
	for _, b := range w.mediator.table {
		for {
			i := bytes.Index(w.buf, []byte(b.Token))
			if i < 0 {
				break
			}
			after := w.buf[i+len(b.Token):]
			rewritten := make([]byte, 0, i+len(b.Original)+len(after))
			rewritten = append(rewritten, w.buf[:i]...)
			rewritten = append(rewritten, b.Original...)
			rewritten = append(rewritten, after...)
			w.buf = rewritten
		}
	}
}

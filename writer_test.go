package preopen

import (
	"bytes"
	"testing"
)

func TestWriterTranslatesTokens(t *testing.T) {
	m := New(Auto)
	tok, err := m.process("/secret/path/file.txt")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w := NewWriter(m, &buf)

	if _, err := w.Write([]byte("reading " + tok + "\n")); err != nil {
		t.Fatal(err)
	}

	want := "reading /secret/path/file.txt\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriterBuffersPartialLines(t *testing.T) {
	m := New(Auto)
	tok, err := m.process("/secret/file")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w := NewWriter(m, &buf)

	if _, err := w.Write([]byte("partial " + tok)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing flushed before a newline, got %q", buf.String())
	}

	if _, err := w.Write([]byte(" suffix\n")); err != nil {
		t.Fatal(err)
	}
	want := "partial /secret/file suffix\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriterTranslatesMultipleTokensOnOneLine(t *testing.T) {
	m := New(Auto)
	src, _ := m.process("/a.txt")
	dst, _ := m.process("/b.txt")

	var buf bytes.Buffer
	w := NewWriter(m, &buf)
	w.Write([]byte(src + " -> " + dst + "\n"))

	want := "/a.txt -> /b.txt\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

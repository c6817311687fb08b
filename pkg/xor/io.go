package xor

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader for subsequent reads.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer for subsequent writes.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	key    byte
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	screenInPlace(out[:n], r.key)
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
}

// NewReader constructs a new Reader that will XOR all bytes read from source with key.
func NewReader(source io.Reader, key byte) Reader {
	return &reader{
		source: source,
		key:    key,
	}
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	key    byte
}

// NewWriter constructs a new Writer that will XOR all bytes with key before passing them to target.
// The slice given to Write is never modified.
func NewWriter(target io.Writer, key byte) Writer {
	return &writer{
		target: target,
		key:    key,
	}
}

func (w *writer) Write(in []byte) (n int, err error) {
	return w.target.Write(Screen(in, w.key))
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
}

package format

import "io"

// Emitter is the single-character output primitive the engine is built on.
// Emit is called once per output character, left to right. The engine treats
// it as synchronous and infallible.
type Emitter interface {
	Emit(c byte)
}

// EmitterFunc adapts an ordinary function to the Emitter interface.
type EmitterFunc func(c byte)

// Emit calls f(c).
func (f EmitterFunc) Emit(c byte) { f(c) }

// Discard is an Emitter that drops every character.
var Discard Emitter = EmitterFunc(func(byte) {})

// WriterEmitter emits characters to an io.Writer, one write per character.
//
// Write failures cannot be reported through Emit, so the first one is latched:
// every later character is dropped and the error is available from Err.
type WriterEmitter struct {
	w   io.Writer
	bw  io.ByteWriter
	err error
	n   int64
	one [1]byte
}

// NewWriterEmitter returns an Emitter writing to w. If w implements
// io.ByteWriter, WriteByte is used instead of Write.
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	e := &WriterEmitter{w: w}
	if bw, ok := w.(io.ByteWriter); ok {
		e.bw = bw
	}
	return e
}

// Emit writes c to the underlying writer unless a previous write failed.
func (e *WriterEmitter) Emit(c byte) {
	if e.err != nil {
		return
	}
	if e.bw != nil {
		e.err = e.bw.WriteByte(c)
	} else {
		e.one[0] = c
		_, e.err = e.w.Write(e.one[:])
	}
	if e.err == nil {
		e.n++
	}
}

// Err returns the first write error, if any.
func (e *WriterEmitter) Err() error { return e.err }

// Count returns the number of characters successfully written.
func (e *WriterEmitter) Count() int64 { return e.n }

type emitterWriter struct {
	e Emitter
}

func (w emitterWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		w.e.Emit(c)
	}
	return len(p), nil
}

func (w emitterWriter) WriteByte(c byte) error {
	w.e.Emit(c)
	return nil
}

// NewEmitterWriter returns an io.Writer that feeds every byte written to it
// through e. It never returns an error.
func NewEmitterWriter(e Emitter) io.Writer {
	return emitterWriter{e: e}
}

package io

import (
	"io"
)

// ReaderSource adapts an io.Reader into a Source, one byte per read.
// Any read error, including io.EOF, ends the stream.
type ReaderSource struct {
	Input io.Reader
}

// Next returns the next byte of the input stream.
func (rs *ReaderSource) Next() (value uint32, ok bool) {
	var one [1]byte
	for {
		n, err := rs.Input.Read(one[:])
		if n > 0 {
			return uint32(one[0]), true
		}
		if err != nil {
			return
		}
	}
}

// WriterSink adapts an io.Writer into a Sink.
type WriterSink struct {
	Output io.Writer
}

// Send writes a single byte to the output stream.
func (ws *WriterSink) Send(value byte) (err error) {
	_, err = ws.Output.Write([]byte{value})
	return
}

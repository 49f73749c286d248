package io

// Bytes is an in-memory Source over a fixed byte slice.
type Bytes struct {
	Data []byte

	next int
}

// Next returns the next byte of Data.
func (b *Bytes) Next() (value uint32, ok bool) {
	if b.next >= len(b.Data) {
		return
	}

	value = uint32(b.Data[b.next])
	b.next++
	return value, true
}

// Rewind restarts the source at the first byte.
func (b *Bytes) Rewind() {
	b.next = 0
}

// Buffer is an in-memory Sink that records every byte sent.
type Buffer struct {
	Data []byte
}

// Send appends a single byte to the buffer.
func (b *Buffer) Send(value byte) (err error) {
	b.Data = append(b.Data, value)
	return
}

// String returns the recorded output as a string.
func (b *Buffer) String() string {
	return string(b.Data)
}

// Reset discards the recorded output.
func (b *Buffer) Reset() {
	b.Data = b.Data[:0]
}

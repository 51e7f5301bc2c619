// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import "io"

// Entry is one message of a Bitstream
type Entry struct {
	Message
	Offset int    // position of the header byte in the stream
	Raw    []byte // encoded bytes, header through checksum
}

// Header returns the entry's header byte
func (e Entry) Header() byte {
	return e.Raw[0]
}

// Bitstream accumulates encoded messages back to back, the way a sensor
// sends its handshake. A Bitstream is not safe for concurrent use.
type Bitstream struct {
	buf     []byte
	entries []Entry
}

// NewBitstream creates an empty bitstream
func NewBitstream() *Bitstream {
	return &Bitstream{}
}

// Append encodes m at the end of the stream. On error the stream is left
// unchanged.
func (b *Bitstream) Append(m Message) error {
	var scratch [BufferMin]byte
	n, err := m.Encode(scratch[:])
	if err != nil {
		return err
	}
	off := len(b.buf)
	b.buf = append(b.buf, scratch[:n]...)
	b.entries = append(b.entries, Entry{
		Message: m,
		Offset:  off,
		Raw:     b.buf[off : off+n : off+n],
	})
	return nil
}

// Sys appends a System message
func (b *Bitstream) Sys(t Sys) error {
	return b.Append(NewSysMessage(t))
}

// Type appends a Command/Type message
func (b *Bitstream) Type(sensorType uint8) error {
	return b.Append(NewTypeMessage(sensorType))
}

// Modes appends a Command/Modes message
func (b *Bitstream) Modes(modes, visible uint8) error {
	return b.Append(NewModesMessage(modes, visible))
}

// Speed appends a Command/Speed message
func (b *Bitstream) Speed(speed uint32) error {
	return b.Append(NewSpeedMessage(speed))
}

// Select appends a Command/Select message
func (b *Bitstream) Select(mode uint8) error {
	return b.Append(NewSelectMessage(mode))
}

// Write appends a Command/Write message
func (b *Bitstream) Write(data []byte) error {
	return b.Append(NewWriteMessage(data))
}

// Name appends an Info/Name message
func (b *Bitstream) Name(mode uint8, name string) error {
	return b.Append(NewNameMessage(mode, name))
}

// Span appends an Info/Span message
func (b *Bitstream) Span(mode uint8, span SpanType, lower, upper float32) error {
	return b.Append(NewSpanMessage(mode, span, lower, upper))
}

// Symbol appends an Info/Symbol message
func (b *Bitstream) Symbol(mode uint8, symbol string) error {
	return b.Append(NewSymbolMessage(mode, symbol))
}

// Format appends an Info/Format message
func (b *Bitstream) Format(mode uint8, f Format) error {
	return b.Append(NewFormatMessage(mode, f))
}

// Data appends a Data message
func (b *Bitstream) Data(mode uint8, data []byte) error {
	return b.Append(NewDataMessage(mode, data))
}

// Bytes returns the encoded stream. The slice is only valid until the next
// Append or Reset.
func (b *Bitstream) Bytes() []byte {
	return b.buf
}

// Len returns the number of encoded bytes
func (b *Bitstream) Len() int {
	return len(b.buf)
}

// Entries returns the messages of the stream in order
func (b *Bitstream) Entries() []Entry {
	return b.entries
}

// Reset empties the stream
func (b *Bitstream) Reset() {
	b.buf = nil
	b.entries = nil
}

// WriteTo writes the encoded stream to w
func (b *Bitstream) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

// cursor writes a single message into a caller buffer. The buffer has already
// been checked to hold the whole message, so the put methods do not check
// bounds again.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) putByte(b byte) {
	c.buf[c.pos] = b
	c.pos++
}

func (c *cursor) putBytes(p []byte) {
	c.pos += copy(c.buf[c.pos:], p)
}

func (c *cursor) putString(s string) {
	c.pos += copy(c.buf[c.pos:], s)
}

func (c *cursor) putUint32(v uint32) {
	putUint32(c.buf[c.pos:], v)
	c.pos += 4
}

func (c *cursor) putFloat32(f float32) {
	putFloat32(c.buf[c.pos:], f)
	c.pos += 4
}

// pad pads the n byte payload just written up to the next power of two
func (c *cursor) pad(n int) {
	c.pos += InsertPadding(c.buf[c.pos:], uint8(n))
}

// zero writes n zero bytes
func (c *cursor) zero(n int) {
	clear(c.buf[c.pos : c.pos+n])
	c.pos += n
}

// seal appends the checksum of everything written so far and returns the
// message length
func (c *cursor) seal() int {
	c.buf[c.pos] = Checksum(c.buf[:c.pos])
	c.pos++
	return c.pos
}

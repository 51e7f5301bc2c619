// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package ev3uart frames messages for the LEGO EV3 UART sensor protocol.
//
// Every message starts with a header byte packing three fields: the message
// category in bits 6-7, the payload length class in bits 3-5 and a sub-type or
// mode index in bits 0-2. Payloads are zero padded to a power of two so the
// host can recover their footprint from the length class alone, and every
// message except System messages ends with an XOR checksum.
//
// The Frame* functions write a single message into a caller-owned buffer and
// return the number of bytes written. They never allocate and never write to
// the buffer when they return an error.
package ev3uart

// Header base selectors (bits 6-7)
const (
	BaseSys  = 0x00
	BaseCmd  = 0x40
	BaseInfo = 0x80
	BaseData = 0xC0
)

// Sys is the sub-type of a System message (low bits of the header).
type Sys uint8

// System message sub-types
const (
	SysSync Sys = 0x00
	SysNack Sys = 0x02
	SysAck  Sys = 0x04
	SysEsc  Sys = 0x06
)

// Command message sub-types (low bits of the header)
const (
	CmdType   = 0x00
	CmdModes  = 0x01
	CmdSpeed  = 0x02
	CmdSelect = 0x03
	CmdWrite  = 0x04
)

// Info selector bytes, sent right after the header of an Info message.
// Span messages use the SpanType value as their selector.
const (
	InfoName   = 0x00
	InfoSymbol = 0x04
	InfoFormat = 0x80
)

// SpanType selects which value span an Info/Span message describes.
type SpanType uint8

// Span type values
const (
	SpanRaw SpanType = 0x01
	SpanPct SpanType = 0x02
	SpanSI  SpanType = 0x03
)

// DataType is the element type of a sensor's Data messages.
type DataType uint8

// Data type values
const (
	DataS8  DataType = 0x00
	DataS16 DataType = 0x01
	DataS32 DataType = 0x02
	DataF32 DataType = 0x03
)

// Size limits, in bytes
const (
	BufferMin              = 35 // always enough for any single message
	PayloadMin             = 1
	PayloadSensorToHostMax = 32
	PayloadHostToSensorMax = 24
	SymbolMax              = 8
	NameMax                = PayloadSensorToHostMax
)

// MaxMode is the highest mode index a header can carry.
const MaxMode = 7

// Invalid is the byte count returned together with a non-nil error.
const Invalid = -1

// Field masks
const (
	modeMask     = 0x07
	elemsMask    = 0x3F
	dataTypeMask = 0x03
	widthMask    = 0x0F
	decimalsMask = 0x0F
	lengthMask   = 0x38
)

// Fixed payload sizes
const (
	speedSize  = 4
	spanSize   = 8
	formatSize = 4
)

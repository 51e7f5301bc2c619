// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

// Fixed message sizes, in bytes
const (
	sysSize        = 1
	cmdTypeSize    = 3
	cmdModesSize   = 4
	cmdSpeedSize   = 6
	cmdSelectSize  = 3
	infoSpanSize   = 11
	infoSymbolSize = 11
	infoFormatSize = 7
)

// Format describes how the host reads and displays a mode's Data messages.
type Format struct {
	Elems    uint8    // data elements per Data message, 6 bits
	Type     DataType // element type, 2 bits
	Width    uint8    // display width including the decimal separator, 4 bits
	Decimals uint8    // digits after the decimal separator, 4 bits
}

// FrameSys frames a one byte System message.
func FrameSys(dst []byte, t Sys) (int, error) {
	if err := checkBuffer(dst, sysSize); err != nil {
		return Invalid, err
	}
	dst[0] = BaseSys | (byte(t) & modeMask)
	return sysSize, nil
}

// FrameCmdType frames a Command/Type message carrying the sensor type id.
func FrameCmdType(dst []byte, sensorType uint8) (int, error) {
	if err := checkBuffer(dst, cmdTypeSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseCmd | CmdType | LengthCode(1))
	c.putByte(sensorType)
	return c.seal(), nil
}

// FrameCmdModes frames a Command/Modes message. modes is the highest mode
// index the sensor supports and visible the highest index shown to the user.
// Both are masked to 3 bits.
func FrameCmdModes(dst []byte, modes, visible uint8) (int, error) {
	if err := checkBuffer(dst, cmdModesSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseCmd | CmdModes | LengthCode(2))
	c.putByte(modes & modeMask)
	c.putByte(visible & modeMask)
	return c.seal(), nil
}

// FrameCmdSpeed frames a Command/Speed message with a baud rate.
func FrameCmdSpeed(dst []byte, speed uint32) (int, error) {
	if err := checkBuffer(dst, cmdSpeedSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseCmd | CmdSpeed | LengthCode(speedSize))
	c.putUint32(speed)
	return c.seal(), nil
}

// FrameCmdSelect frames a Command/Select message requesting a mode.
func FrameCmdSelect(dst []byte, mode uint8) (int, error) {
	if err := checkBuffer(dst, cmdSelectSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseCmd | CmdSelect | LengthCode(1))
	c.putByte(mode & modeMask)
	return c.seal(), nil
}

// FrameCmdWrite frames a Command/Write message. data must hold between
// PayloadMin and PayloadHostToSensorMax bytes.
func FrameCmdWrite(dst []byte, data []byte) (int, error) {
	if err := checkLength(KindWrite, len(data), PayloadHostToSensorMax); err != nil {
		return Invalid, err
	}
	n := len(data)
	if err := checkBuffer(dst, 2+PaddedLength(uint8(n))); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseCmd | CmdWrite | LengthCode(uint8(n)))
	c.putBytes(data)
	c.pad(n)
	return c.seal(), nil
}

// FrameInfoName frames an Info/Name message. name must hold between
// PayloadMin and NameMax bytes.
func FrameInfoName(dst []byte, mode uint8, name string) (int, error) {
	if err := checkLength(KindName, len(name), NameMax); err != nil {
		return Invalid, err
	}
	n := len(name)
	if err := checkBuffer(dst, 3+PaddedLength(uint8(n))); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseInfo | (mode & modeMask) | LengthCode(uint8(n)))
	c.putByte(InfoName)
	c.putString(name)
	c.pad(n)
	return c.seal(), nil
}

// FrameInfoSpan frames an Info/Span message with the lower and upper bound of
// a mode's readings.
func FrameInfoSpan(dst []byte, mode uint8, span SpanType, lower, upper float32) (int, error) {
	if err := checkBuffer(dst, infoSpanSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseInfo | (mode & modeMask) | LengthCode(spanSize))
	c.putByte(byte(span))
	c.putFloat32(lower)
	c.putFloat32(upper)
	return c.seal(), nil
}

// FrameInfoSymbol frames an Info/Symbol message with the unit symbol of a
// mode. symbol must hold between PayloadMin and SymbolMax bytes and is always
// padded to SymbolMax.
func FrameInfoSymbol(dst []byte, mode uint8, symbol string) (int, error) {
	if err := checkLength(KindSymbol, len(symbol), SymbolMax); err != nil {
		return Invalid, err
	}
	if err := checkBuffer(dst, infoSymbolSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseInfo | (mode & modeMask) | LengthCode(SymbolMax))
	c.putByte(InfoSymbol)
	c.putString(symbol)
	c.zero(SymbolMax - len(symbol))
	return c.seal(), nil
}

// FrameInfoFormat frames an Info/Format message. Every field is masked to its
// width. Element counts above DataType.MaxElems are not rejected.
func FrameInfoFormat(dst []byte, mode uint8, f Format) (int, error) {
	if err := checkBuffer(dst, infoFormatSize); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseInfo | (mode & modeMask) | LengthCode(formatSize))
	c.putByte(InfoFormat)
	c.putByte(f.Elems & elemsMask)
	c.putByte(byte(f.Type) & dataTypeMask)
	c.putByte(f.Width & widthMask)
	c.putByte(f.Decimals & decimalsMask)
	return c.seal(), nil
}

// FrameData frames a Data message carrying a sample for a mode. data must
// hold between PayloadMin and PayloadSensorToHostMax bytes.
func FrameData(dst []byte, mode uint8, data []byte) (int, error) {
	if err := checkLength(KindData, len(data), PayloadSensorToHostMax); err != nil {
		return Invalid, err
	}
	n := len(data)
	if err := checkBuffer(dst, 2+PaddedLength(uint8(n))); err != nil {
		return Invalid, err
	}
	c := cursor{buf: dst}
	c.putByte(BaseData | (mode & modeMask) | LengthCode(uint8(n)))
	c.putBytes(data)
	c.pad(n)
	return c.seal(), nil
}

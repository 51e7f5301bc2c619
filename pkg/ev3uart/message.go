// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

// Kind identifies the concrete shape of a message
type Kind uint8

// Message kinds
const (
	KindSync Kind = iota
	KindNack
	KindAck
	KindEsc
	KindType
	KindModes
	KindSpeed
	KindSelect
	KindWrite
	KindName
	KindSpan
	KindSymbol
	KindFormat
	KindData
)

// IsSys reports whether k is a System message kind
func (k Kind) IsSys() bool {
	return k <= KindEsc
}

// IsCmd reports whether k is a Command message kind
func (k Kind) IsCmd() bool {
	return k >= KindType && k <= KindWrite
}

// IsInfo reports whether k is an Info message kind
func (k Kind) IsInfo() bool {
	return k >= KindName && k <= KindFormat
}

// HasMode reports whether messages of kind k carry a mode index in their
// header or payload
func (k Kind) HasMode() bool {
	return k == KindSelect || k.IsInfo() || k == KindData
}

// Sys returns the System sub-type of a System kind
func (k Kind) Sys() (Sys, bool) {
	switch k {
	case KindSync:
		return SysSync, true
	case KindNack:
		return SysNack, true
	case KindAck:
		return SysAck, true
	case KindEsc:
		return SysEsc, true
	}
	return 0, false
}

// Message is a single protocol message before encoding. Only the fields used
// by Kind are meaningful.
type Message struct {
	Kind Kind
	Mode uint8 // Select, Info and Data messages

	TypeID  uint8  // Type
	Modes   uint8  // Modes: highest mode index
	Visible uint8  // Modes: highest visible mode index
	Speed   uint32 // Speed, in baud

	Text string // Name, Symbol
	Data []byte // Write, Data

	Span  SpanType // Span
	Lower float32  // Span
	Upper float32  // Span

	Format Format // Format
}

// NewSysMessage creates a System message
func NewSysMessage(t Sys) Message {
	switch t & modeMask {
	case SysNack:
		return Message{Kind: KindNack}
	case SysAck:
		return Message{Kind: KindAck}
	case SysEsc:
		return Message{Kind: KindEsc}
	}
	return Message{Kind: KindSync}
}

// NewTypeMessage creates a Command/Type message
func NewTypeMessage(sensorType uint8) Message {
	return Message{Kind: KindType, TypeID: sensorType}
}

// NewModesMessage creates a Command/Modes message
func NewModesMessage(modes, visible uint8) Message {
	return Message{Kind: KindModes, Modes: modes, Visible: visible}
}

// NewSpeedMessage creates a Command/Speed message
func NewSpeedMessage(speed uint32) Message {
	return Message{Kind: KindSpeed, Speed: speed}
}

// NewSelectMessage creates a Command/Select message
func NewSelectMessage(mode uint8) Message {
	return Message{Kind: KindSelect, Mode: mode}
}

// NewWriteMessage creates a Command/Write message
func NewWriteMessage(data []byte) Message {
	return Message{Kind: KindWrite, Data: data}
}

// NewNameMessage creates an Info/Name message
func NewNameMessage(mode uint8, name string) Message {
	return Message{Kind: KindName, Mode: mode, Text: name}
}

// NewSpanMessage creates an Info/Span message
func NewSpanMessage(mode uint8, span SpanType, lower, upper float32) Message {
	return Message{Kind: KindSpan, Mode: mode, Span: span, Lower: lower, Upper: upper}
}

// NewSymbolMessage creates an Info/Symbol message
func NewSymbolMessage(mode uint8, symbol string) Message {
	return Message{Kind: KindSymbol, Mode: mode, Text: symbol}
}

// NewFormatMessage creates an Info/Format message
func NewFormatMessage(mode uint8, f Format) Message {
	return Message{Kind: KindFormat, Mode: mode, Format: f}
}

// NewDataMessage creates a Data message
func NewDataMessage(mode uint8, data []byte) Message {
	return Message{Kind: KindData, Mode: mode, Data: data}
}

// Encode frames the message into dst with the matching Frame function.
func (m Message) Encode(dst []byte) (int, error) {
	switch m.Kind {
	case KindSync, KindNack, KindAck, KindEsc:
		t, _ := m.Kind.Sys()
		return FrameSys(dst, t)
	case KindType:
		return FrameCmdType(dst, m.TypeID)
	case KindModes:
		return FrameCmdModes(dst, m.Modes, m.Visible)
	case KindSpeed:
		return FrameCmdSpeed(dst, m.Speed)
	case KindSelect:
		return FrameCmdSelect(dst, m.Mode)
	case KindWrite:
		return FrameCmdWrite(dst, m.Data)
	case KindName:
		return FrameInfoName(dst, m.Mode, m.Text)
	case KindSpan:
		return FrameInfoSpan(dst, m.Mode, m.Span, m.Lower, m.Upper)
	case KindSymbol:
		return FrameInfoSymbol(dst, m.Mode, m.Text)
	case KindFormat:
		return FrameInfoFormat(dst, m.Mode, m.Format)
	case KindData:
		return FrameData(dst, m.Mode, m.Data)
	}
	return Invalid, ErrUnknownKind
}

// Size returns the encoded size of the message, or Invalid with the error
// Encode would return for a payload length violation or unknown kind.
func (m Message) Size() (int, error) {
	switch m.Kind {
	case KindSync, KindNack, KindAck, KindEsc:
		return sysSize, nil
	case KindType:
		return cmdTypeSize, nil
	case KindModes:
		return cmdModesSize, nil
	case KindSpeed:
		return cmdSpeedSize, nil
	case KindSelect:
		return cmdSelectSize, nil
	case KindWrite:
		if err := checkLength(KindWrite, len(m.Data), PayloadHostToSensorMax); err != nil {
			return Invalid, err
		}
		return 2 + PaddedLength(uint8(len(m.Data))), nil
	case KindName:
		if err := checkLength(KindName, len(m.Text), NameMax); err != nil {
			return Invalid, err
		}
		return 3 + PaddedLength(uint8(len(m.Text))), nil
	case KindSpan:
		return infoSpanSize, nil
	case KindSymbol:
		if err := checkLength(KindSymbol, len(m.Text), SymbolMax); err != nil {
			return Invalid, err
		}
		return infoSymbolSize, nil
	case KindFormat:
		return infoFormatSize, nil
	case KindData:
		if err := checkLength(KindData, len(m.Data), PayloadSensorToHostMax); err != nil {
			return Invalid, err
		}
		return 2 + PaddedLength(uint8(len(m.Data))), nil
	}
	return Invalid, ErrUnknownKind
}

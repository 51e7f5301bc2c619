// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"fmt"
	"strings"
)

// FormatEntry formats a bitstream entry into a human-readable line followed by
// its bytes
func FormatEntry(e Entry) string {
	result := fmt.Sprintf("[%04d] %-11s (0x%02X) len=%-2d %s\n",
		e.Offset, FormatKind(e.Kind), e.Header(), len(e.Raw), FormatMessage(e.Message))
	result += "       " + formatHexRow(e.Raw) + "\n"
	return result
}

// FormatKind returns the human-readable name for a message kind
func FormatKind(k Kind) string {
	switch k {
	// System
	case KindSync:
		return "SYS_SYNC"
	case KindNack:
		return "SYS_NACK"
	case KindAck:
		return "SYS_ACK"
	case KindEsc:
		return "SYS_ESC"

	// Command
	case KindType:
		return "CMD_TYPE"
	case KindModes:
		return "CMD_MODES"
	case KindSpeed:
		return "CMD_SPEED"
	case KindSelect:
		return "CMD_SELECT"
	case KindWrite:
		return "CMD_WRITE"

	// Info
	case KindName:
		return "INFO_NAME"
	case KindSpan:
		return "INFO_SPAN"
	case KindSymbol:
		return "INFO_SYMBOL"
	case KindFormat:
		return "INFO_FORMAT"

	case KindData:
		return "DATA"

	default:
		return "UNKNOWN"
	}
}

// FormatMessage summarises the arguments of a message
func FormatMessage(m Message) string {
	switch m.Kind {
	case KindSync, KindNack, KindAck, KindEsc:
		return "(no payload)"

	case KindType:
		return fmt.Sprintf("Type: %d (0x%02X)", m.TypeID, m.TypeID)

	case KindModes:
		return fmt.Sprintf("Modes: %d, Visible: %d", m.Modes&modeMask+1, m.Visible&modeMask+1)

	case KindSpeed:
		return fmt.Sprintf("Speed: %d baud", m.Speed)

	case KindSelect:
		return fmt.Sprintf("Mode: %d", m.Mode&modeMask)

	case KindWrite:
		return fmt.Sprintf("Data: % X", m.Data)

	case KindName:
		return fmt.Sprintf("Mode: %d, Name: %q", m.Mode&modeMask, m.Text)

	case KindSpan:
		return fmt.Sprintf("Mode: %d, %s: %g .. %g",
			m.Mode&modeMask, strings.ToUpper(m.Span.String()), m.Lower, m.Upper)

	case KindSymbol:
		return fmt.Sprintf("Mode: %d, Symbol: %q", m.Mode&modeMask, m.Text)

	case KindFormat:
		f := m.Format
		return fmt.Sprintf("Mode: %d, Elems: %d x %s, Width: %d, Decimals: %d",
			m.Mode&modeMask, f.Elems&elemsMask, DataType(byte(f.Type)&dataTypeMask),
			f.Width&widthMask, f.Decimals&decimalsMask)

	case KindData:
		return fmt.Sprintf("Mode: %d, Data: % X", m.Mode&modeMask, m.Data)
	}
	return ""
}

// LengthClass returns the payload length class carried by a header byte
func LengthClass(header byte) uint8 {
	return (header & lengthMask) >> 3
}

// HexDump formats data as rows of 16 hex bytes prefixed with their offset
func HexDump(data []byte) string {
	var s strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := min(off+16, len(data))
		fmt.Fprintf(&s, "%04X  %s\n", off, formatHexRow(data[off:end]))
	}
	return s.String()
}

func formatHexRow(data []byte) string {
	return fmt.Sprintf("% X", data)
}

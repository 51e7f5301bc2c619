package ev3uart

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFrameSys(t *testing.T) {
	tests := []struct {
		name string
		sys  Sys
		want byte
	}{
		{"sync", SysSync, 0x00},
		{"nack", SysNack, 0x02},
		{"ack", SysAck, 0x04},
		{"esc", SysEsc, 0x06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := filledBuffer(1)
			n, err := FrameSys(buf, tt.sys)
			if err != nil {
				t.Fatalf("FrameSys failed: %v", err)
			}
			if n != 1 {
				t.Errorf("length mismatch: got %d, want 1", n)
			}
			if buf[0] != tt.want {
				t.Errorf("header mismatch: got 0x%02X, want 0x%02X", buf[0], tt.want)
			}
		})
	}
}

func TestFrame_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		encode func(dst []byte) (int, error)
		want   []byte
	}{
		{
			name:   "ack",
			encode: func(dst []byte) (int, error) { return FrameSys(dst, SysAck) },
			want:   []byte{0x04},
		},
		{
			name:   "type 0x1D",
			encode: func(dst []byte) (int, error) { return FrameCmdType(dst, 0x1D) },
			want:   []byte{0x40, 0x1D, 0xA2},
		},
		{
			name:   "modes 5 visible 2",
			encode: func(dst []byte) (int, error) { return FrameCmdModes(dst, 5, 2) },
			want:   []byte{0x49, 0x05, 0x02, 0xB1},
		},
		{
			name:   "speed 57600",
			encode: func(dst []byte) (int, error) { return FrameCmdSpeed(dst, 57600) },
			want:   []byte{0x52, 0x00, 0xE1, 0x00, 0x00, 0x4C},
		},
		{
			name:   "select 3",
			encode: func(dst []byte) (int, error) { return FrameCmdSelect(dst, 3) },
			want:   []byte{0x43, 0x03, 0xFF ^ 0x43 ^ 0x03},
		},
		{
			name:   "write 3 bytes",
			encode: func(dst []byte) (int, error) { return FrameCmdWrite(dst, []byte{0x01, 0x02, 0x03}) },
			want:   []byte{0x54, 0x01, 0x02, 0x03, 0x00, 0xFF ^ 0x54 ^ 0x01 ^ 0x02 ^ 0x03},
		},
		{
			name:   "symbol col",
			encode: func(dst []byte) (int, error) { return FrameInfoSymbol(dst, 2, "col") },
			want:   []byte{0x9A, 0x04, 'c', 'o', 'l', 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
		},
		{
			name:   "span raw 0..65535",
			encode: func(dst []byte) (int, error) { return FrameInfoSpan(dst, 5, SpanRaw, 0, 65535) },
			want:   []byte{0x9D, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x7F, 0x47, 0xA4},
		},
		{
			name: "format 1 x s8",
			encode: func(dst []byte) (int, error) {
				return FrameInfoFormat(dst, 2, Format{Elems: 1, Type: DataS8, Width: 2, Decimals: 0})
			},
			want: []byte{0x92, 0x80, 0x01, 0x00, 0x02, 0x00, 0xEE},
		},
		{
			name:   "data 1 byte",
			encode: func(dst []byte) (int, error) { return FrameData(dst, 0, []byte{0x32}) },
			want:   []byte{0xC0, 0x32, 0x0D},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := filledBuffer(BufferMin)
			n, err := tt.encode(buf)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if n != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", n, len(tt.want))
			}
			if !bytes.Equal(buf[:n], tt.want) {
				t.Errorf("bytes mismatch:\n got % X\nwant % X", buf[:n], tt.want)
			}
			for i := n; i < len(buf); i++ {
				if buf[i] != 0xFF {
					t.Fatalf("byte %d beyond the message was modified", i)
				}
			}
		})
	}
}

func TestFrameCmdType_AllTypes(t *testing.T) {
	buf := filledBuffer(BufferMin)
	for typ := 0; typ < 0x100; typ++ {
		n, err := FrameCmdType(buf, uint8(typ))
		if err != nil || n != 3 {
			t.Fatalf("FrameCmdType(%d) = %d, %v", typ, n, err)
		}
		if buf[0] != BaseCmd|CmdType|LengthCode(1) || buf[1] != uint8(typ) || buf[2] != Checksum(buf[:2]) {
			t.Fatalf("FrameCmdType(%d) = % X", typ, buf[:n])
		}
	}
}

func TestFrame_MasksModes(t *testing.T) {
	buf := filledBuffer(BufferMin)
	for mode := 0; mode < 0x100; mode++ {
		m := uint8(mode)

		if _, err := FrameCmdModes(buf, m, m); err != nil {
			t.Fatal(err)
		}
		if buf[1] != m&0x07 || buf[2] != m&0x07 {
			t.Fatalf("FrameCmdModes(%d) payload = % X", mode, buf[1:3])
		}

		if _, err := FrameCmdSelect(buf, m); err != nil {
			t.Fatal(err)
		}
		if buf[0] != 0x43 || buf[1] != m&0x07 {
			t.Fatalf("FrameCmdSelect(%d) = % X", mode, buf[:2])
		}

		if _, err := FrameInfoSpan(buf, m, SpanSI, 0, 1); err != nil {
			t.Fatal(err)
		}
		if buf[0] != BaseInfo|LengthCode(8)|m&0x07 {
			t.Fatalf("FrameInfoSpan mode %d header = 0x%02X", mode, buf[0])
		}

		if _, err := FrameData(buf, m, []byte{0x01}); err != nil {
			t.Fatal(err)
		}
		if buf[0] != BaseData|m&0x07 {
			t.Fatalf("FrameData mode %d header = 0x%02X", mode, buf[0])
		}
	}
}

func TestFrameInfoFormat_MasksFields(t *testing.T) {
	buf := filledBuffer(BufferMin)
	n, err := FrameInfoFormat(buf, 0xFF, Format{Elems: 0xFF, Type: DataType(0xFF), Width: 0xFF, Decimals: 0xFF})
	if err != nil {
		t.Fatalf("FrameInfoFormat failed: %v", err)
	}
	want := []byte{0x97, 0x80, 0x3F, 0x03, 0x0F, 0x0F}
	want = append(want, Checksum(want))
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("bytes mismatch:\n got % X\nwant % X", buf[:n], want)
	}
}

func TestFrameInfoFormat_NoElemCeiling(t *testing.T) {
	// 32 x s32 does not fit in a Data message but is still framed as given
	buf := filledBuffer(BufferMin)
	if _, err := FrameInfoFormat(buf, 0, Format{Elems: 32, Type: DataS32}); err != nil {
		t.Fatalf("FrameInfoFormat failed: %v", err)
	}
	if buf[2] != 32 {
		t.Errorf("elems mismatch: got %d, want 32", buf[2])
	}
}

// variableFrame frames a message with a variable payload of n bytes
type variableFrame struct {
	name     string
	max      int
	overhead int // header, selector and checksum bytes
	frame    func(dst []byte, n int) (int, error)
}

var variableFrames = []variableFrame{
	{
		name: "write", max: PayloadHostToSensorMax, overhead: 2,
		frame: func(dst []byte, n int) (int, error) { return FrameCmdWrite(dst, sequence(n)) },
	},
	{
		name: "name", max: NameMax, overhead: 3,
		frame: func(dst []byte, n int) (int, error) { return FrameInfoName(dst, 1, letters(n)) },
	},
	{
		name: "data", max: PayloadSensorToHostMax, overhead: 2,
		frame: func(dst []byte, n int) (int, error) { return FrameData(dst, 1, sequence(n)) },
	},
}

// sequence returns n bytes counting up from 1
func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i + 1)
	}
	return data
}

// letters returns n upper-case letters starting at 'A'
func letters(n int) string {
	var s strings.Builder
	for i := 0; i < n; i++ {
		s.WriteByte(byte('A' + i%26))
	}
	return s.String()
}

func TestFrame_VariableLengths(t *testing.T) {
	for _, vf := range variableFrames {
		t.Run(vf.name, func(t *testing.T) {
			for n := PayloadMin; n <= vf.max; n++ {
				buf := filledBuffer(BufferMin)
				got, err := vf.frame(buf, n)
				if err != nil {
					t.Fatalf("length %d: %v", n, err)
				}
				want := vf.overhead + (1 << ceilLog2(n))
				if got != want {
					t.Fatalf("length %d: returned %d, want %d", n, got, want)
				}
				if LengthClass(buf[0]) != ceilLog2(n) {
					t.Errorf("length %d: length class %d, want %d", n, LengthClass(buf[0]), ceilLog2(n))
				}
				start := vf.overhead - 1 // payload starts after header and selector
				for i := start + n; i < got-1; i++ {
					if buf[i] != 0x00 {
						t.Errorf("length %d: padding byte %d = 0x%02X", n, i, buf[i])
					}
				}
				if buf[got-1] != Checksum(buf[:got-1]) {
					t.Errorf("length %d: checksum mismatch", n)
				}
			}
		})
	}
}

func TestFrame_RejectsLengthWithoutWriting(t *testing.T) {
	for _, vf := range variableFrames {
		t.Run(vf.name, func(t *testing.T) {
			for _, n := range []int{0, vf.max + 1, vf.max + 10} {
				buf := filledBuffer(64)
				got, err := vf.frame(buf, n)
				if got != Invalid {
					t.Errorf("length %d: returned %d, want %d", n, got, Invalid)
				}
				if !errors.Is(err, ErrPayloadLength) {
					t.Errorf("length %d: expected ErrPayloadLength, got %v", n, err)
				}
				if !bytes.Equal(buf, filledBuffer(64)) {
					t.Errorf("length %d: buffer modified on error", n)
				}
			}
		})
	}
}

func TestFrameCmdWrite_EmptyPayload(t *testing.T) {
	buf := filledBuffer(BufferMin)
	n, err := FrameCmdWrite(buf, nil)
	if n != -1 {
		t.Errorf("expected -1, got %d", n)
	}
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LengthError, got %T", err)
	}
	if lerr.Kind != KindWrite || lerr.Length != 0 || lerr.Max != PayloadHostToSensorMax {
		t.Errorf("unexpected error fields: %+v", lerr)
	}
	if !bytes.Equal(buf, filledBuffer(BufferMin)) {
		t.Error("buffer modified on error")
	}
}

func TestFrameInfoSymbol_Lengths(t *testing.T) {
	for n := 0; n <= SymbolMax+4; n++ {
		buf := filledBuffer(BufferMin)
		symbol := letters(n)
		got, err := FrameInfoSymbol(buf, 3, symbol)

		if n < PayloadMin || n > SymbolMax {
			if got != Invalid || !errors.Is(err, ErrPayloadLength) {
				t.Errorf("symbol length %d: got %d, %v", n, got, err)
			}
			if !bytes.Equal(buf, filledBuffer(BufferMin)) {
				t.Errorf("symbol length %d: buffer modified on error", n)
			}
			continue
		}

		if err != nil || got != 11 {
			t.Fatalf("symbol length %d: got %d, %v", n, got, err)
		}
		if buf[0] != 0x9B || buf[1] != InfoSymbol {
			t.Errorf("symbol length %d: header % X", n, buf[:2])
		}
		if string(buf[2:2+n]) != symbol {
			t.Errorf("symbol length %d: payload %q", n, buf[2:2+n])
		}
		for i := 2 + n; i < 10; i++ {
			if buf[i] != 0x00 {
				t.Errorf("symbol length %d: padding byte %d = 0x%02X", n, i, buf[i])
			}
		}
		if buf[10] != Checksum(buf[:10]) {
			t.Errorf("symbol length %d: checksum mismatch", n)
		}
	}
}

func TestFrameInfoName_Layout(t *testing.T) {
	buf := filledBuffer(BufferMin)
	n, err := FrameInfoName(buf, 5, "COL-CAL")
	if err != nil {
		t.Fatalf("FrameInfoName failed: %v", err)
	}
	want := []byte{0x9D, 0x00, 'C', 'O', 'L', '-', 'C', 'A', 'L', 0x00}
	want = append(want, Checksum(want))
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("bytes mismatch:\n got % X\nwant % X", buf[:n], want)
	}
}

func TestFrameInfoName_MaxLengthFillsBufferMin(t *testing.T) {
	buf := filledBuffer(BufferMin)
	n, err := FrameInfoName(buf, 0, letters(NameMax))
	if err != nil {
		t.Fatalf("FrameInfoName failed: %v", err)
	}
	if n != BufferMin {
		t.Errorf("expected %d bytes, got %d", BufferMin, n)
	}
}

func TestFrame_ShortBuffer(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		encode func(dst []byte) (int, error)
	}{
		{"sys", 1, func(dst []byte) (int, error) { return FrameSys(dst, SysAck) }},
		{"type", 3, func(dst []byte) (int, error) { return FrameCmdType(dst, 1) }},
		{"modes", 4, func(dst []byte) (int, error) { return FrameCmdModes(dst, 1, 1) }},
		{"speed", 6, func(dst []byte) (int, error) { return FrameCmdSpeed(dst, 2400) }},
		{"select", 3, func(dst []byte) (int, error) { return FrameCmdSelect(dst, 1) }},
		{"write", 6, func(dst []byte) (int, error) { return FrameCmdWrite(dst, sequence(3)) }},
		{"name", 7, func(dst []byte) (int, error) { return FrameInfoName(dst, 1, "NAME") }},
		{"span", 11, func(dst []byte) (int, error) { return FrameInfoSpan(dst, 1, SpanPct, 0, 100) }},
		{"symbol", 11, func(dst []byte) (int, error) { return FrameInfoSymbol(dst, 1, "pct") }},
		{"format", 7, func(dst []byte) (int, error) { return FrameInfoFormat(dst, 1, Format{Elems: 1}) }},
		{"data", 10, func(dst []byte) (int, error) { return FrameData(dst, 1, sequence(8)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := filledBuffer(tt.size - 1)
			n, err := tt.encode(buf)
			if n != Invalid || !errors.Is(err, ErrShortBuffer) {
				t.Errorf("expected Invalid and ErrShortBuffer, got %d, %v", n, err)
			}
			if !bytes.Equal(buf, filledBuffer(tt.size-1)) {
				t.Error("buffer modified on error")
			}

			buf = filledBuffer(tt.size)
			if n, err := tt.encode(buf); err != nil || n != tt.size {
				t.Errorf("exact buffer: got %d, %v, want %d", n, err, tt.size)
			}
		})
	}
}

func TestFrame_LengthCheckedBeforeBuffer(t *testing.T) {
	_, err := FrameData(nil, 0, nil)
	if !errors.Is(err, ErrPayloadLength) {
		t.Errorf("expected ErrPayloadLength, got %v", err)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"fmt"
	"strings"
)

// String returns the lower-case name of the span type
func (s SpanType) String() string {
	switch s {
	case SpanRaw:
		return "raw"
	case SpanPct:
		return "pct"
	case SpanSI:
		return "si"
	}
	return fmt.Sprintf("span(0x%02X)", uint8(s))
}

// ParseSpanType parses "raw", "pct" or "si"
func ParseSpanType(s string) (SpanType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return SpanRaw, nil
	case "pct", "percent":
		return SpanPct, nil
	case "si":
		return SpanSI, nil
	}
	return 0, fmt.Errorf("ev3uart: unknown span type %q", s)
}

// String returns the lower-case name of the data type
func (d DataType) String() string {
	switch d {
	case DataS8:
		return "s8"
	case DataS16:
		return "s16"
	case DataS32:
		return "s32"
	case DataF32:
		return "f32"
	}
	return fmt.Sprintf("dtype(0x%02X)", uint8(d))
}

// ParseDataType parses "s8", "s16", "s32" or "f32"
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s8":
		return DataS8, nil
	case "s16":
		return DataS16, nil
	case "s32":
		return DataS32, nil
	case "f32", "float":
		return DataF32, nil
	}
	return 0, fmt.Errorf("ev3uart: unknown data type %q", s)
}

// Size returns the byte width of one element, or 0 for unknown types
func (d DataType) Size() int {
	switch d {
	case DataS8:
		return 1
	case DataS16:
		return 2
	case DataS32, DataF32:
		return 4
	}
	return 0
}

// MaxElems returns the most elements of this type a Data message can hold
func (d DataType) MaxElems() int {
	if d.Size() == 0 {
		return 0
	}
	return PayloadSensorToHostMax / d.Size()
}

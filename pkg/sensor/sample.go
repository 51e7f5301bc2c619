// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package sensor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
)

// PackSample packs one reading as the payload of a Data message. Integer
// types are rounded to the nearest value and must fit the element width.
// Elements are little-endian.
func PackSample(f ev3uart.Format, values []float64) ([]byte, error) {
	if len(values) != int(f.Elems) {
		return nil, fmt.Errorf("format expects %d values, got %d", f.Elems, len(values))
	}
	size := f.Type.Size()
	if size == 0 {
		return nil, fmt.Errorf("unknown data type %s", f.Type)
	}
	n := size * len(values)
	if n < ev3uart.PayloadMin || n > ev3uart.PayloadSensorToHostMax {
		return nil, fmt.Errorf("%w: %d bytes (valid %d-%d)", ev3uart.ErrPayloadLength, n, ev3uart.PayloadMin, ev3uart.PayloadSensorToHostMax)
	}

	out := make([]byte, n)
	for i, v := range values {
		elem := out[i*size : (i+1)*size]
		if f.Type == ev3uart.DataF32 {
			binary.LittleEndian.PutUint32(elem, math.Float32bits(float32(v)))
			continue
		}

		lo, hi := intRange(size)
		r := math.Round(v)
		if math.IsNaN(r) || r < lo || r > hi {
			return nil, fmt.Errorf("%w: value %d is %g (%s range %g to %g)", ErrSampleRange, i, v, f.Type, lo, hi)
		}
		switch size {
		case 1:
			elem[0] = byte(int8(r))
		case 2:
			binary.LittleEndian.PutUint16(elem, uint16(int16(r)))
		default:
			binary.LittleEndian.PutUint32(elem, uint32(int32(r)))
		}
	}
	return out, nil
}

// intRange returns the bounds of a signed integer of size bytes
func intRange(size int) (lo, hi float64) {
	half := math.Ldexp(1, size*8-1)
	return -half, half - 1
}

// Sample packs values with the format and returns the Data message for mode
func Sample(mode uint8, f ev3uart.Format, values []float64) (ev3uart.Message, error) {
	data, err := PackSample(f, values)
	if err != nil {
		return ev3uart.Message{}, err
	}
	return ev3uart.NewDataMessage(mode, data), nil
}

// ModeSample packs values for a mode of the profile
func (p *Profile) ModeSample(mode uint8, values []float64) (ev3uart.Message, error) {
	m, ok := p.Mode(mode)
	if !ok {
		return ev3uart.Message{}, fmt.Errorf("profile %q has no mode %d", p.Name, mode)
	}
	f, err := m.Format.Format()
	if err != nil {
		return ev3uart.Message{}, err
	}
	return Sample(mode, f, values)
}

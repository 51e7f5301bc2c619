// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadLength reports a data, name or symbol length outside the
	// bounds of its message kind.
	ErrPayloadLength = errors.New("ev3uart: payload length out of range")
	ErrShortBuffer   = errors.New("ev3uart: destination buffer too small")
	ErrUnknownKind   = errors.New("ev3uart: unknown message kind")
)

// LengthError describes a rejected payload length
type LengthError struct {
	Kind   Kind
	Length int
	Min    int
	Max    int
}

// Error implements the error interface
func (e *LengthError) Error() string {
	return fmt.Sprintf("ev3uart: %s payload length %d out of range [%d, %d]",
		FormatKind(e.Kind), e.Length, e.Min, e.Max)
}

// Is reports whether target is ErrPayloadLength
func (e *LengthError) Is(target error) bool {
	return target == ErrPayloadLength
}

func checkLength(kind Kind, n, max int) error {
	if n < PayloadMin || n > max {
		return &LengthError{Kind: kind, Length: n, Min: PayloadMin, Max: max}
	}
	return nil
}

func checkBuffer(dst []byte, need int) error {
	if len(dst) < need {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, need, len(dst))
	}
	return nil
}

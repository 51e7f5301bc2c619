// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"errors"
	"fmt"
)

// AnomalyType represents the kinds of argument anomaly ValidateMessage reports
type AnomalyType int

const (
	AnomalyLength AnomalyType = iota
	AnomalyMaskedMode
	AnomalyMaskedField
	AnomalyElemCount
	AnomalyDecimals
	AnomalyVisibleModes
	AnomalyUnknownType
)

// ValidationError describes one anomaly found in a message's arguments
type ValidationError struct {
	Type    AnomalyType
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// ValidateMessage reports arguments the encoders would reject or silently
// truncate. It does not change how the message encodes; callers that need
// strict checking must act on the result themselves.
// Returns an empty slice if nothing is wrong.
func ValidateMessage(m Message) []ValidationError {
	errors := []ValidationError{}

	if m.Kind.HasMode() && m.Mode > MaxMode {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedMode,
			Message: fmt.Sprintf("Mode %d out of range, encodes as %d", m.Mode, m.Mode&modeMask),
			Details: map[string]interface{}{"mode": m.Mode, "max": MaxMode},
		})
	}

	switch m.Kind {
	case KindModes:
		errors = append(errors, validateModes(m)...)
	case KindWrite, KindName, KindSymbol, KindData:
		errors = append(errors, validateLength(m)...)
	case KindSpan:
		errors = append(errors, validateSpan(m)...)
	case KindFormat:
		errors = append(errors, validateFormat(m.Format)...)
	default:
		if _, err := m.Size(); err != nil {
			errors = append(errors, ValidationError{
				Type:    AnomalyUnknownType,
				Message: fmt.Sprintf("Unknown message kind %d", m.Kind),
				Details: map[string]interface{}{"kind": m.Kind},
			})
		}
	}

	return errors
}

// validateModes validates a Command/Modes message
func validateModes(m Message) []ValidationError {
	errors := []ValidationError{}

	if m.Modes > MaxMode {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Modes %d out of range, encodes as %d", m.Modes, m.Modes&modeMask),
			Details: map[string]interface{}{"modes": m.Modes, "max": MaxMode},
		})
	}
	if m.Visible > MaxMode {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Visible modes %d out of range, encodes as %d", m.Visible, m.Visible&modeMask),
			Details: map[string]interface{}{"visible": m.Visible, "max": MaxMode},
		})
	}
	if m.Visible&modeMask > m.Modes&modeMask {
		errors = append(errors, ValidationError{
			Type:    AnomalyVisibleModes,
			Message: fmt.Sprintf("Visible modes %d exceed modes %d", m.Visible&modeMask, m.Modes&modeMask),
			Details: map[string]interface{}{"visible": m.Visible, "modes": m.Modes},
		})
	}

	return errors
}

// validateLength validates messages with a variable payload
func validateLength(m Message) []ValidationError {
	_, err := m.Size()
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		return nil
	}
	return []ValidationError{{
		Type:    AnomalyLength,
		Message: lerr.Error(),
		Details: map[string]interface{}{"length": lerr.Length, "min": lerr.Min, "max": lerr.Max},
	}}
}

// validateSpan validates an Info/Span message
func validateSpan(m Message) []ValidationError {
	errors := []ValidationError{}

	if m.Span < SpanRaw || m.Span > SpanSI {
		errors = append(errors, ValidationError{
			Type:    AnomalyUnknownType,
			Message: fmt.Sprintf("Unknown span type 0x%02X", uint8(m.Span)),
			Details: map[string]interface{}{"span": uint8(m.Span)},
		})
	}
	if m.Lower > m.Upper {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Span lower bound %g above upper bound %g", m.Lower, m.Upper),
			Details: map[string]interface{}{"lower": m.Lower, "upper": m.Upper},
		})
	}

	return errors
}

// validateFormat validates an Info/Format message
func validateFormat(f Format) []ValidationError {
	errors := []ValidationError{}

	if f.Type > DataF32 {
		errors = append(errors, ValidationError{
			Type:    AnomalyUnknownType,
			Message: fmt.Sprintf("Unknown data type 0x%02X, encodes as %s", uint8(f.Type), DataType(byte(f.Type)&dataTypeMask)),
			Details: map[string]interface{}{"type": uint8(f.Type)},
		})
	}

	elemsMax := DataType(byte(f.Type) & dataTypeMask).MaxElems()
	switch {
	case f.Elems > elemsMask:
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Elements %d out of range, encodes as %d", f.Elems, f.Elems&elemsMask),
			Details: map[string]interface{}{"elems": f.Elems, "max": elemsMask},
		})
	case f.Elems == 0 || int(f.Elems) > elemsMax:
		errors = append(errors, ValidationError{
			Type:    AnomalyElemCount,
			Message: fmt.Sprintf("Elements %d invalid for %s (valid 1-%d)", f.Elems, DataType(byte(f.Type)&dataTypeMask), elemsMax),
			Details: map[string]interface{}{"elems": f.Elems, "min": 1, "max": elemsMax},
		})
	}

	if f.Width > widthMask {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Width %d out of range, encodes as %d", f.Width, f.Width&widthMask),
			Details: map[string]interface{}{"width": f.Width, "max": widthMask},
		})
	}
	if f.Decimals > decimalsMask {
		errors = append(errors, ValidationError{
			Type:    AnomalyMaskedField,
			Message: fmt.Sprintf("Decimals %d out of range, encodes as %d", f.Decimals, f.Decimals&decimalsMask),
			Details: map[string]interface{}{"decimals": f.Decimals, "max": decimalsMask},
		})
	}
	if f.Width > 0 && f.Decimals >= f.Width {
		errors = append(errors, ValidationError{
			Type:    AnomalyDecimals,
			Message: fmt.Sprintf("Decimals %d do not fit in width %d", f.Decimals, f.Width),
			Details: map[string]interface{}{"decimals": f.Decimals, "width": f.Width},
		})
	}

	return errors
}

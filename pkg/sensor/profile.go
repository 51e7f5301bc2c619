// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package sensor describes EV3 UART sensors as profiles and turns them into
// the handshake and data messages a sensor sends to the EV3 host.
package sensor

import (
	"errors"
	"fmt"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
)

// Profile errors
var (
	ErrInvalidProfile = errors.New("invalid sensor profile")
	ErrUnknownProfile = errors.New("unknown built-in profile")
	ErrSampleRange    = errors.New("sample value out of range")
)

// MaxModes is the number of modes a sensor can advertise
const MaxModes = ev3uart.MaxMode + 1

// Profile describes a sensor: its type id, highest UART speed and modes.
// Modes may be listed in any order; Handshake sends them from the highest
// index down.
type Profile struct {
	Name        string     `toml:"name" cbor:"1,keyasint,omitempty"`
	Description string     `toml:"description,omitempty" cbor:"2,keyasint,omitempty"`
	Type        uint8      `toml:"type" cbor:"3,keyasint"`
	Speed       uint32     `toml:"speed" cbor:"4,keyasint"`
	Visible     uint8      `toml:"visible" cbor:"5,keyasint"`
	Modes       []ModeSpec `toml:"mode" cbor:"6,keyasint"`
}

// ModeSpec describes a single sensor mode
type ModeSpec struct {
	Index  uint8      `toml:"index" cbor:"1,keyasint"`
	Name   string     `toml:"name" cbor:"2,keyasint"`
	Symbol string     `toml:"symbol,omitempty" cbor:"3,keyasint,omitempty"`
	Spans  []SpanSpec `toml:"span,omitempty" cbor:"4,keyasint,omitempty"`
	Format FormatSpec `toml:"format" cbor:"5,keyasint"`
}

// SpanSpec is one Info/Span message of a mode. Kind is "raw", "pct" or "si".
type SpanSpec struct {
	Kind  string  `toml:"kind" cbor:"1,keyasint"`
	Lower float32 `toml:"lower" cbor:"2,keyasint"`
	Upper float32 `toml:"upper" cbor:"3,keyasint"`
}

// FormatSpec is the Info/Format message of a mode. Type is "s8", "s16",
// "s32" or "f32".
type FormatSpec struct {
	Elems    uint8  `toml:"elems" cbor:"1,keyasint"`
	Type     string `toml:"type" cbor:"2,keyasint"`
	Width    uint8  `toml:"width" cbor:"3,keyasint"`
	Decimals uint8  `toml:"decimals" cbor:"4,keyasint,omitempty"`
}

// Format converts the mode format to its wire description
func (f FormatSpec) Format() (ev3uart.Format, error) {
	dt, err := ev3uart.ParseDataType(f.Type)
	if err != nil {
		return ev3uart.Format{}, err
	}
	return ev3uart.Format{Elems: f.Elems, Type: dt, Width: f.Width, Decimals: f.Decimals}, nil
}

// HighestMode returns the highest mode index in the profile
func (p *Profile) HighestMode() uint8 {
	var highest uint8
	for _, m := range p.Modes {
		highest = max(highest, m.Index)
	}
	return highest
}

// Mode returns the mode with the given index
func (p *Profile) Mode(index uint8) (ModeSpec, bool) {
	for _, m := range p.Modes {
		if m.Index == index {
			return m, true
		}
	}
	return ModeSpec{}, false
}

// Validate checks that the profile produces a handshake the EV3 host accepts.
// All returned errors match ErrInvalidProfile.
func (p *Profile) Validate() error {
	if p.Speed == 0 {
		return fmt.Errorf("%w: speed must be greater than zero", ErrInvalidProfile)
	}
	if len(p.Modes) == 0 || len(p.Modes) > MaxModes {
		return fmt.Errorf("%w: %d modes (expected 1-%d)", ErrInvalidProfile, len(p.Modes), MaxModes)
	}

	seen := make([]bool, len(p.Modes))
	for _, m := range p.Modes {
		if int(m.Index) >= len(p.Modes) {
			return fmt.Errorf("%w: mode index %d leaves a gap (expected 0-%d)", ErrInvalidProfile, m.Index, len(p.Modes)-1)
		}
		if seen[m.Index] {
			return fmt.Errorf("%w: duplicate mode index %d", ErrInvalidProfile, m.Index)
		}
		seen[m.Index] = true

		if err := m.validate(); err != nil {
			return fmt.Errorf("%w: mode %d: %w", ErrInvalidProfile, m.Index, err)
		}
	}

	if p.Visible > p.HighestMode() {
		return fmt.Errorf("%w: visible modes %d exceed highest mode %d", ErrInvalidProfile, p.Visible, p.HighestMode())
	}

	return nil
}

func (m ModeSpec) validate() error {
	if len(m.Name) == 0 || len(m.Name) > ev3uart.NameMax {
		return fmt.Errorf("name %q must be 1-%d bytes", m.Name, ev3uart.NameMax)
	}
	if len(m.Symbol) > ev3uart.SymbolMax {
		return fmt.Errorf("symbol %q exceeds %d bytes", m.Symbol, ev3uart.SymbolMax)
	}
	for _, s := range m.Spans {
		if _, err := ev3uart.ParseSpanType(s.Kind); err != nil {
			return err
		}
		if s.Lower > s.Upper {
			return fmt.Errorf("%s span lower %g above upper %g", s.Kind, s.Lower, s.Upper)
		}
	}

	f, err := m.Format.Format()
	if err != nil {
		return err
	}
	if f.Elems == 0 || int(f.Elems) > f.Type.MaxElems() {
		return fmt.Errorf("%d %s elements (expected 1-%d)", f.Elems, f.Type, f.Type.MaxElems())
	}
	if f.Width > 15 || f.Decimals > 15 {
		return fmt.Errorf("width %d and decimals %d must be at most 15", f.Width, f.Decimals)
	}
	return nil
}

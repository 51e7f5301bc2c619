// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package sensor

import (
	"fmt"
	"sort"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
)

// HandshakeMessages returns the messages a sensor sends after reset, in order:
// type, modes, speed, then for every mode from the highest index down its name,
// spans, symbol (if set) and format, and finally an ACK.
func HandshakeMessages(p *Profile) ([]ev3uart.Message, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	modes := make([]ModeSpec, len(p.Modes))
	copy(modes, p.Modes)
	sort.Slice(modes, func(i, j int) bool { return modes[i].Index > modes[j].Index })

	msgs := []ev3uart.Message{
		ev3uart.NewTypeMessage(p.Type),
		ev3uart.NewModesMessage(p.HighestMode(), p.Visible),
		ev3uart.NewSpeedMessage(p.Speed),
	}

	for _, m := range modes {
		msgs = append(msgs, ev3uart.NewNameMessage(m.Index, m.Name))
		for _, s := range m.Spans {
			st, err := ev3uart.ParseSpanType(s.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w: mode %d: %w", ErrInvalidProfile, m.Index, err)
			}
			msgs = append(msgs, ev3uart.NewSpanMessage(m.Index, st, s.Lower, s.Upper))
		}
		if m.Symbol != "" {
			msgs = append(msgs, ev3uart.NewSymbolMessage(m.Index, m.Symbol))
		}
		f, err := m.Format.Format()
		if err != nil {
			return nil, fmt.Errorf("%w: mode %d: %w", ErrInvalidProfile, m.Index, err)
		}
		msgs = append(msgs, ev3uart.NewFormatMessage(m.Index, f))
	}

	return append(msgs, ev3uart.NewSysMessage(ev3uart.SysAck)), nil
}

// Handshake encodes the profile's handshake into a bitstream
func Handshake(p *Profile) (*ev3uart.Bitstream, error) {
	msgs, err := HandshakeMessages(p)
	if err != nil {
		return nil, err
	}

	b := ev3uart.NewBitstream()
	for i, m := range msgs {
		if err := b.Append(m); err != nil {
			return nil, fmt.Errorf("handshake message %d (%s): %w", i, ev3uart.FormatKind(m.Kind), err)
		}
	}
	return b, nil
}

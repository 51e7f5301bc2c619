// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"fmt"
	"strings"
)

// Statistics tracks message and byte counts over encoded messages.
// It is not safe for concurrent use.
type Statistics struct {
	// Counters
	Messages      uint64
	Bytes         uint64
	HeaderBytes   uint64
	PayloadBytes  uint64
	PaddingBytes  uint64
	ChecksumBytes uint64

	ByKind map[Kind]uint64
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{ByKind: make(map[Kind]uint64)}
}

// Collect returns statistics for every message of a bitstream
func Collect(b *Bitstream) *Statistics {
	s := NewStatistics()
	for _, e := range b.Entries() {
		s.Update(e)
	}
	return s
}

// Update accounts for one encoded message
func (s *Statistics) Update(e Entry) {
	s.Messages++
	s.Bytes += uint64(len(e.Raw))
	s.ByKind[e.Kind]++

	if e.Kind.IsSys() {
		s.HeaderBytes++
		return
	}

	header := uint64(1)
	if e.Kind.IsInfo() {
		header++ // selector byte
	}
	payload := uint64(payloadLength(e.Message))
	s.HeaderBytes += header
	s.PayloadBytes += payload
	s.ChecksumBytes++
	s.PaddingBytes += uint64(len(e.Raw)) - header - payload - 1
}

// payloadLength returns the unpadded payload length of a message
func payloadLength(m Message) int {
	switch m.Kind {
	case KindType, KindSelect:
		return 1
	case KindModes:
		return 2
	case KindSpeed:
		return speedSize
	case KindWrite, KindData:
		return len(m.Data)
	case KindName, KindSymbol:
		return len(m.Text)
	case KindSpan:
		return spanSize
	case KindFormat:
		return formatSize
	}
	return 0
}

// Overhead returns the share of bytes that are not payload
func (s *Statistics) Overhead() float64 {
	if s.Bytes == 0 {
		return 0
	}
	return float64(s.Bytes-s.PayloadBytes) / float64(s.Bytes)
}

// String returns a multi-line summary
func (s *Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Messages: %d, Bytes: %d (payload %d, padding %d, header %d, checksum %d, overhead %.1f%%)\n",
		s.Messages, s.Bytes, s.PayloadBytes, s.PaddingBytes, s.HeaderBytes, s.ChecksumBytes, s.Overhead()*100)
	for k := KindSync; k <= KindData; k++ {
		if n := s.ByKind[k]; n > 0 {
			fmt.Fprintf(&b, "  %-11s %d\n", FormatKind(k), n)
		}
	}
	return b.String()
}

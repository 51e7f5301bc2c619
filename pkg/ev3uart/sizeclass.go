// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import "math/bits"

// Log2 returns the base-2 logarithm of v rounded up to the next integer.
// The result is undefined for v == 0.
func Log2(v uint8) uint8 {
	return uint8(bits.Len8(v - 1))
}

// LengthCode returns the header bits encoding a payload of n bytes.
func LengthCode(n uint8) uint8 {
	return Log2(n) << 3
}

// PaddedLength returns the on-wire footprint of an n byte payload.
func PaddedLength(n uint8) int {
	return 1 << Log2(n)
}

// InsertPadding zeroes the bytes following an n byte payload, up to the next
// power of two. dst must start right after the payload. Returns the number of
// padding bytes written.
func InsertPadding(dst []byte, n uint8) int {
	padding := PaddedLength(n) - int(n)
	clear(dst[:padding])
	return padding
}

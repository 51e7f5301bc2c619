// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

import (
	"encoding/binary"
	"math"
)

// HostToLE32 converts a 32-bit value from host byte order to the little-endian
// order used on the wire. Stored with the host's native layout, the result
// reads back as little-endian bytes.
//
// The conversion is chosen at build time from GOARCH. Architectures missing
// from both endian_little.go and endian_big.go do not build.
func HostToLE32(v uint32) uint32 {
	return hostToLE32(v)
}

// putUint32 stores v in wire order at dst[0:4].
func putUint32(dst []byte, v uint32) {
	binary.NativeEndian.PutUint32(dst, HostToLE32(v))
}

// putFloat32 stores f in wire order at dst[0:4]. Go float32 values are always
// IEEE-754 binary32, which is what the host expects.
func putFloat32(dst []byte, f float32) {
	putUint32(dst, math.Float32bits(f))
}

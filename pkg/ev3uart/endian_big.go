// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package ev3uart

import "math/bits"

func hostToLE32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

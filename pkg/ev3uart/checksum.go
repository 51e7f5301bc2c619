// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package ev3uart

const checksumInitial = 0xFF

// Checksum computes the EV3 message checksum over the given bytes
func Checksum(data []byte) byte {
	acc := byte(checksumInitial)
	for _, b := range data {
		acc ^= b
	}
	return acc
}

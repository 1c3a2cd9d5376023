// This file implements the rotating-byte cipher and its two content-derived
// rotation-seed functions.

package xidecoder

// nibbleBitCount maps a 4-bit nibble to its population count, used to build
// popCount without a loop per byte.
var nibbleBitCount = [16]byte{
	0, 1, 1, 2, 1, 2, 2, 3,
	1, 2, 2, 3, 2, 3, 3, 4,
}

// popCount returns the number of set bits in b.
func popCount(b byte) int {
	return int(nibbleBitCount[b&0x0F]) + int(nibbleBitCount[b>>4])
}

// RotateRightByte circularly rotates b right by n bit positions.
// n must be in [0,7]; n == 0 is a no-op.
func RotateRightByte(b byte, n int) byte {
	for ; n > 0; n-- {
		if b&0x01 == 0x01 {
			b = (b >> 1) | 0x80
		} else {
			b >>= 1
		}
	}
	return b
}

// Decode applies RotateRightByte to every byte of data in place, with the
// same rotation count n. n == 0 is a no-op.
func Decode(data []byte, n int) {
	if n == 0 {
		return
	}
	for i, b := range data {
		data[i] = RotateRightByte(b, n)
	}
}

// rotationTable maps abs(seed) % 5 to a rotation count.
type rotationTable [5]int

var variableEncryptionTable = rotationTable{7, 1, 6, 2, 5}
var textEncryptionTable = rotationTable{1, 7, 2, 6, 3}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// VariableEncryptionSeed derives the rotation count used to decode ability
// and spell frames from the content of data itself. Items do not use it:
// they are decoded with the fixed ItemFixedRotation. Requires
// len(data) >= 13; returns 0 otherwise.
func VariableEncryptionSeed(data []byte) int {
	if len(data) < 13 {
		return 0
	}
	seed := popCount(data[2]) - popCount(data[11]) + popCount(data[12])
	return variableEncryptionTable[abs(seed)%5]
}

// TextEncryptionSeed derives a rotation count from the first two bytes of
// data. Requires len(data) >= 2 and not both data[0] and data[1] zero;
// returns 0 otherwise.
func TextEncryptionSeed(data []byte) int {
	if len(data) < 2 || (data[0] == 0 && data[1] == 0) {
		return 0
	}
	seed := popCount(data[1]) - popCount(data[0])
	return textEncryptionTable[abs(seed)%5]
}

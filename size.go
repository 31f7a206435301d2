package varint

import "math/bits"

// UvarintSize32 returns the number of bytes EncodeUvarint32 produces for
// value, without encoding it.
func UvarintSize32(value uint32) int {
	if value == 0 {
		return 1
	}
	return (bits.Len32(value) + 6) / 7
}

func UvarintSize64(value uint64) int {
	if value == 0 {
		return 1
	}
	return (bits.Len64(value) + 6) / 7
}

func VarintSize32(value int32) int {
	return UvarintSize32(ZigzagEncode32(value))
}

func VarintSize64(value int64) int {
	return UvarintSize64(ZigzagEncode64(value))
}

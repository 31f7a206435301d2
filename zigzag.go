package varint

func ZigzagEncode8(value int8) uint8 {
	return uint8((value << 1) ^ (value >> 7))
}

func ZigzagDecode8(value uint8) int8 {
	return int8(value>>1) ^ -int8(value&1)
}

func ZigzagEncode16(value int16) uint16 {
	return uint16((value << 1) ^ (value >> 15))
}

func ZigzagDecode16(value uint16) int16 {
	return int16(value>>1) ^ -int16(value&1)
}

func ZigzagEncode32(value int32) uint32 {
	return uint32((value << 1) ^ (value >> 31))
}

func ZigzagDecode32(value uint32) int32 {
	return int32(value>>1) ^ -int32(value&1)
}

func ZigzagEncode64(value int64) uint64 {
	return uint64((value << 1) ^ (value >> 63))
}

func ZigzagDecode64(value uint64) int64 {
	return int64(value>>1) ^ -int64(value&1)
}

package codec

import "github.com/vedadiyan/varint"

func AppendVarint32(dst []byte, value int32) []byte {
	return AppendUvarint32(dst, varint.ZigzagEncode32(value))
}

func AppendVarint64(dst []byte, value int64) []byte {
	return AppendUvarint64(dst, varint.ZigzagEncode64(value))
}

func DecodeVarint32(data []byte, offset int) (int32, int, error) {
	encoded, consumed, err := DecodeUvarint32(data, offset)
	if err != nil {
		return 0, 0, err
	}
	return varint.ZigzagDecode32(encoded), consumed, nil
}

func DecodeVarint64(data []byte, offset int) (int64, int, error) {
	encoded, consumed, err := DecodeUvarint64(data, offset)
	if err != nil {
		return 0, 0, err
	}
	return varint.ZigzagDecode64(encoded), consumed, nil
}

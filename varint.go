// Package varint implements the variable-length integer encoding used by
// Protocol Buffers, together with the zig-zag transform that keeps signed
// values of small magnitude short on the wire.
//
// Every byte carries seven payload bits, least significant group first, and
// the high bit is set on all bytes except the last. A 32-bit value takes at
// most MaxLen32 bytes, a 64-bit value at most MaxLen64.
//
// Decoders read from an io.ByteReader and encoders write to an io.ByteWriter,
// so any in-memory buffer or network stream can serve as source or sink.
package varint

import "io"

const (
	MaxLen32 = 5
	MaxLen64 = 10
)

func WriteUvarint32(w io.ByteWriter, value uint32) error {
	return WriteUvarint64(w, uint64(value))
}

func WriteUvarint64(w io.ByteWriter, value uint64) error {
	for value >= 0x80 {
		if err := w.WriteByte(byte(value) | 0x80); err != nil {
			return writeError(err)
		}
		value >>= 7
	}
	if err := w.WriteByte(byte(value)); err != nil {
		return writeError(err)
	}
	return nil
}

func WriteVarint32(w io.ByteWriter, value int32) error {
	return WriteUvarint32(w, ZigzagEncode32(value))
}

func WriteVarint64(w io.ByteWriter, value int64) error {
	return WriteUvarint64(w, ZigzagEncode64(value))
}

// ReadUvarint32 reads one varint of at most MaxLen32 bytes. The fifth byte
// may only carry the four bits left over from the first 28.
func ReadUvarint32(r io.ByteReader) (uint32, error) {
	var result uint32
	var shift uint

	for i := 0; i < MaxLen32; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err)
		}
		if i == MaxLen32-1 && b > 0x0f {
			return 0, ErrOverflow
		}
		result |= uint32(b&0x7f) << shift

		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}
	return 0, ErrOverflow
}

// ReadUvarint64 reads one varint of at most MaxLen64 bytes. The tenth byte
// may only carry the top bit.
func ReadUvarint64(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < MaxLen64; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err)
		}
		if i == MaxLen64-1 && b > 1 {
			return 0, ErrOverflow
		}
		result |= uint64(b&0x7f) << shift

		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}
	return 0, ErrOverflow
}

func ReadVarint32(r io.ByteReader) (int32, error) {
	value, err := ReadUvarint32(r)
	if err != nil {
		return 0, err
	}
	return ZigzagDecode32(value), nil
}

func ReadVarint64(r io.ByteReader) (int64, error) {
	value, err := ReadUvarint64(r)
	if err != nil {
		return 0, err
	}
	return ZigzagDecode64(value), nil
}

// EncodeUvarint32 returns the minimal encoding of value in a new slice.
func EncodeUvarint32(value uint32) []byte {
	return appendUvarint(make([]byte, 0, UvarintSize32(value)), uint64(value))
}

func EncodeUvarint64(value uint64) []byte {
	return appendUvarint(make([]byte, 0, UvarintSize64(value)), value)
}

func EncodeVarint32(value int32) []byte {
	return EncodeUvarint32(ZigzagEncode32(value))
}

func EncodeVarint64(value int64) []byte {
	return EncodeUvarint64(ZigzagEncode64(value))
}

func appendUvarint(buffer []byte, value uint64) []byte {
	for value >= 0x80 {
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// Package codec works on varints held in byte slices, addressing them by
// offset the way a wire decoder walks a message.
package codec

import (
	"bytes"

	"github.com/vedadiyan/varint"
)

func AppendUvarint32(dst []byte, value uint32) []byte {
	return AppendUvarint64(dst, uint64(value))
}

func AppendUvarint64(dst []byte, value uint64) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value)|0x80)
		value >>= 7
	}
	return append(dst, byte(value))
}

// DecodeUvarint32 decodes the varint starting at data[offset] and returns it
// with the number of bytes it occupies.
func DecodeUvarint32(data []byte, offset int) (uint32, int, error) {
	reader, err := readerAt(data, offset)
	if err != nil {
		return 0, 0, err
	}
	value, err := varint.ReadUvarint32(reader)
	if err != nil {
		return 0, 0, err
	}
	return value, len(data) - offset - reader.Len(), nil
}

func DecodeUvarint64(data []byte, offset int) (uint64, int, error) {
	reader, err := readerAt(data, offset)
	if err != nil {
		return 0, 0, err
	}
	value, err := varint.ReadUvarint64(reader)
	if err != nil {
		return 0, 0, err
	}
	return value, len(data) - offset - reader.Len(), nil
}

// DecodeAll64 decodes data as a run of back-to-back varints.
func DecodeAll64(data []byte) ([]uint64, error) {
	var out []uint64
	reader := bytes.NewReader(data)
	for reader.Len() != 0 {
		value, err := varint.ReadUvarint64(reader)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func readerAt(data []byte, offset int) (*bytes.Reader, error) {
	if offset < 0 || offset >= len(data) {
		return nil, varint.ErrEndOfInput
	}
	return bytes.NewReader(data[offset:]), nil
}

package varint

import "bytes"

// UvarintEncode encodes value into a buffer taken from the pool. The buffer
// belongs to the caller, who may hand it back with Dealloc.
func UvarintEncode(value uint64) *bytes.Buffer {
	buffer := Alloc(UvarintSize64(value))
	// bytes.Buffer never fails a WriteByte.
	_ = WriteUvarint64(buffer, value)
	return buffer
}

func VarintEncode(value int64) *bytes.Buffer {
	return UvarintEncode(ZigzagEncode64(value))
}

// UvarintDecode consumes one varint from the front of data.
func UvarintDecode(data *bytes.Buffer) (uint64, error) {
	return ReadUvarint64(data)
}

func VarintDecode(data *bytes.Buffer) (int64, error) {
	return ReadVarint64(data)
}

// UvarintPeek decodes the varint at the front of data without consuming it
// and reports how many bytes it spans.
func UvarintPeek(data *bytes.Buffer) (uint64, int, error) {
	reader := bytes.NewReader(data.Bytes())
	value, err := ReadUvarint64(reader)
	if err != nil {
		return 0, 0, err
	}
	return value, data.Len() - reader.Len(), nil
}

package varint

import (
	"bytes"
	"sync"
)

var (
	_pool = sync.Pool{
		New: func() any {
			return bytes.NewBuffer(make([]byte, 0, MaxLen64))
		},
	}
)

// Alloc takes a reset buffer from the pool with room for at least size
// bytes.
func Alloc(size int) *bytes.Buffer {
	buffer := _pool.Get().(*bytes.Buffer)
	if size > buffer.Cap() {
		buffer.Grow(size)
	}
	return buffer
}

// Dealloc returns buffer to the pool. The caller must not touch it
// afterwards.
func Dealloc(buffer *bytes.Buffer) {
	if buffer == nil {
		return
	}
	buffer.Reset()
	_pool.Put(buffer)
}

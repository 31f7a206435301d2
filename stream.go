package varint

import (
	"bufio"
	"io"

	"go.uber.org/multierr"
)

type byteSource struct {
	r   io.Reader
	one [1]byte
}

// NewByteSource adapts r for the Read functions. Readers that already
// implement io.ByteReader are returned unchanged; anything else is read one
// byte per call, so nothing past the current varint is consumed.
func NewByteSource(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteSource{r: r}
}

func (s *byteSource) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.one[:]); err != nil {
		return 0, err
	}
	return s.one[0], nil
}

type byteSink struct {
	w   io.Writer
	one [1]byte
}

// NewByteSink adapts w for the Write functions.
func NewByteSink(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &byteSink{w: w}
}

func (s *byteSink) WriteByte(b byte) error {
	s.one[0] = b
	n, err := s.w.Write(s.one[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Conn carries varints over a connection such as a net.Conn. Writes are
// buffered until Flush or Close; reads are not, so a Conn can share the
// connection with other protocol code. A Conn is not safe for concurrent
// use.
type Conn struct {
	conn   io.ReadWriteCloser
	source io.ByteReader
	sink   *bufio.Writer
}

func NewConn(conn io.ReadWriteCloser) *Conn {
	return &Conn{
		conn:   conn,
		source: &byteSource{r: conn},
		sink:   bufio.NewWriter(conn),
	}
}

func (c *Conn) ReadUvarint32() (uint32, error) {
	return ReadUvarint32(c.source)
}

func (c *Conn) ReadUvarint64() (uint64, error) {
	return ReadUvarint64(c.source)
}

func (c *Conn) ReadVarint32() (int32, error) {
	return ReadVarint32(c.source)
}

func (c *Conn) ReadVarint64() (int64, error) {
	return ReadVarint64(c.source)
}

func (c *Conn) WriteUvarint32(value uint32) error {
	return WriteUvarint32(c.sink, value)
}

func (c *Conn) WriteUvarint64(value uint64) error {
	return WriteUvarint64(c.sink, value)
}

func (c *Conn) WriteVarint32(value int32) error {
	return WriteVarint32(c.sink, value)
}

func (c *Conn) WriteVarint64(value int64) error {
	return WriteVarint64(c.sink, value)
}

func (c *Conn) Flush() error {
	if err := c.sink.Flush(); err != nil {
		return writeError(err)
	}
	return nil
}

// Close flushes pending writes and closes the connection, reporting both
// failures if both happen.
func (c *Conn) Close() error {
	return multierr.Combine(c.Flush(), c.conn.Close())
}

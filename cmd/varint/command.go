package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/vedadiyan/varint"
	"github.com/vedadiyan/varint/codec"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"
)

type command struct {
	width  int
	signed bool
	check  bool
	logger *zap.Logger
}

func (c *command) run(verb string, args []string, out io.Writer) error {
	if c.width != 32 && c.width != 64 {
		return fmt.Errorf("unsupported width %d", c.width)
	}
	switch verb {
	case "encode":
		for _, arg := range args {
			encoded, err := c.encode(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hex.EncodeToString(encoded))
		}
	case "decode":
		for _, arg := range args {
			data, err := hex.DecodeString(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			values, err := c.decode(data)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			for _, value := range values {
				fmt.Fprintln(out, value)
			}
		}
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

func (c *command) encode(arg string) ([]byte, error) {
	var encoded []byte
	var reference uint64

	switch {
	case c.width == 32 && c.signed:
		v, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return nil, err
		}
		encoded = codec.AppendVarint32(nil, int32(v))
		reference = protowire.EncodeZigZag(v)
	case c.width == 32:
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return nil, err
		}
		encoded = codec.AppendUvarint32(nil, uint32(v))
		reference = v
	case c.signed:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, err
		}
		encoded = codec.AppendVarint64(nil, v)
		reference = protowire.EncodeZigZag(v)
	default:
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, err
		}
		encoded = codec.AppendUvarint64(nil, v)
		reference = v
	}
	c.logger.Debug("encoded",
		zap.String("value", arg),
		zap.Int("width", c.width),
		zap.Bool("signed", c.signed),
		zap.Binary("bytes", encoded),
	)

	if c.check {
		if expected := protowire.AppendVarint(nil, reference); !bytes.Equal(expected, encoded) {
			return nil, fmt.Errorf("encoding of %s is %x, protowire gives %x", arg, encoded, expected)
		}
	}
	return encoded, nil
}

func (c *command) decode(data []byte) ([]string, error) {
	var values []string
	for offset := 0; offset < len(data); {
		text, raw, n, err := c.decodeAt(data, offset)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", offset, err)
		}
		c.logger.Debug("decoded",
			zap.Int("offset", offset),
			zap.Int("size", n),
			zap.String("value", text),
		)
		if c.check {
			expected, m := protowire.ConsumeVarint(data[offset:])
			if m != n || expected != raw {
				return nil, fmt.Errorf("offset %d: decoded %d in %d bytes, protowire gives %d in %d", offset, raw, n, expected, m)
			}
		}
		values = append(values, text)
		offset += n
	}
	return values, nil
}

func (c *command) decodeAt(data []byte, offset int) (string, uint64, int, error) {
	if c.width == 32 {
		u, n, err := codec.DecodeUvarint32(data, offset)
		if err != nil {
			return "", 0, 0, err
		}
		if c.signed {
			return strconv.FormatInt(int64(varint.ZigzagDecode32(u)), 10), uint64(u), n, nil
		}
		return strconv.FormatUint(uint64(u), 10), uint64(u), n, nil
	}
	u, n, err := codec.DecodeUvarint64(data, offset)
	if err != nil {
		return "", 0, 0, err
	}
	if c.signed {
		return strconv.FormatInt(varint.ZigzagDecode64(u), 10), u, n, nil
	}
	return strconv.FormatUint(u, 10), u, n, nil
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedadiyan/varint"
	"go.uber.org/zap/zaptest"
)

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		signed   bool
		args     []string
		expected string
	}{
		{"unsigned32", 32, false, []string{"0", "127", "128", "3463465"}, "00\n7f\n8001\na9b2d301\n"},
		{"signed32", 32, true, []string{"-4", "-2147483648"}, "07\nffffffff0f\n"},
		{"unsigned64", 64, false, []string{"18446744073709551615"}, "ffffffffffffffffff01\n"},
		{"signed64", 64, true, []string{"-1", "1"}, "01\n02\n"},
		{"hex input", 64, false, []string{"0x12c"}, "ac02\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &command{width: tt.width, signed: tt.signed, check: true, logger: zaptest.NewLogger(t)}
			var out bytes.Buffer
			require.NoError(t, cmd.run("encode", tt.args, &out))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	cmd := &command{width: 64, check: true, logger: zaptest.NewLogger(t)}
	var out bytes.Buffer
	require.NoError(t, cmd.run("decode", []string{"a9b2d301", "00ac02"}, &out))
	assert.Equal(t, "3463465\n0\n300\n", out.String())

	cmd = &command{width: 32, signed: true, check: true, logger: zaptest.NewLogger(t)}
	out.Reset()
	require.NoError(t, cmd.run("decode", []string{"0701"}, &out))
	assert.Equal(t, "-4\n-1\n", out.String())
}

func TestCommandErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	var out bytes.Buffer

	cmd := &command{width: 32, logger: logger}
	err := cmd.run("decode", []string{"8080808010"}, &out)
	assert.ErrorIs(t, err, varint.ErrOverflow)

	err = cmd.run("decode", []string{"80"}, &out)
	assert.ErrorIs(t, err, varint.ErrEndOfInput)

	err = cmd.run("decode", []string{"zz"}, &out)
	assert.Error(t, err)

	err = cmd.run("encode", []string{"4294967296"}, &out)
	assert.Error(t, err)

	err = cmd.run("frobnicate", nil, &out)
	assert.EqualError(t, err, `unknown command "frobnicate"`)

	cmd = &command{width: 48, logger: logger}
	assert.EqualError(t, cmd.run("encode", []string{"1"}, &out), "unsupported width 48")
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := newLogger(level)
		require.NoError(t, err, level)
		require.NotNil(t, logger)
	}
	_, err := newLogger("chatty")
	assert.Error(t, err)
}

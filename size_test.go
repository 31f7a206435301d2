package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintSize(t *testing.T) {
	for _, c := range uvarintCases {
		require.Equal(t, len(EncodeUvarint64(c)), UvarintSize64(c), "case: %d", c)
		if c <= math.MaxUint32 {
			require.Equal(t, len(EncodeUvarint32(uint32(c))), UvarintSize32(uint32(c)), "case: %d", c)
		}
	}

	// every group boundary
	for groups := 1; groups < MaxLen64; groups++ {
		edge := uint64(1) << (7 * groups)
		require.Equal(t, groups, UvarintSize64(edge-1), "groups: %d", groups)
		require.Equal(t, groups+1, UvarintSize64(edge), "groups: %d", groups)
	}
	require.Equal(t, MaxLen32, UvarintSize32(math.MaxUint32))
	require.Equal(t, MaxLen64, UvarintSize64(math.MaxUint64))
}

func TestVarintSize(t *testing.T) {
	for _, c := range []int32{0, -1, 1, -64, 63, 64, -65, math.MaxInt32, math.MinInt32} {
		require.Equal(t, len(EncodeVarint32(c)), VarintSize32(c), "case: %d", c)
	}
	for _, c := range []int64{0, -1, 1, -(1 << 40), 1 << 40, math.MaxInt64, math.MinInt64} {
		require.Equal(t, len(EncodeVarint64(c)), VarintSize64(c), "case: %d", c)
	}
	require.Equal(t, 1, VarintSize64(-64))
	require.Equal(t, 2, VarintSize64(64))
}

package align

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		v    uintptr
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{1024, true},
		{1023, false},
		{^uintptr(0), false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IsPowerOfTwo(c.v), "v=%d", c.v)
	}
}

func TestUpBoundaryCases(t *testing.T) {
	require.Equal(t, uintptr(0x00), Up(0x00, 8))
	require.Equal(t, uintptr(0x08), Up(0x01, 8))
	require.Equal(t, uintptr(0x1240), Up(0x1234, 64))

	max := ^uintptr(0)
	require.Equal(t, max-7, Up(max-7, 8))
	require.Equal(t, max-7, Up(max-6, 8), "overflow must saturate down to the last multiple of 8")
}

func TestDownBoundaryCases(t *testing.T) {
	max := ^uintptr(0)
	require.Equal(t, max&^7, Down(max, 8))
}

func TestPaddingNeeded(t *testing.T) {
	require.Equal(t, uintptr(76), PaddingNeeded(0x1234, 128))
	require.Equal(t, uintptr(0), PaddingNeeded(64, 64))
}

func TestUnitCount(t *testing.T) {
	require.Equal(t, uintptr(8), UnitCount(65, 16, 64))
}

func TestRoundTripAlignment(t *testing.T) {
	alignments := []uintptr{1, 2, 4, 8, 16, 64, 4096}
	values := []uintptr{0, 1, 7, 8, 9, 4095, 4096, 4097, 1 << 20}
	for _, a := range alignments {
		for _, v := range values {
			require.Equal(t, Down(v, a), Up(Down(v, a), a), "a=%d v=%d", a, v)
			require.Equal(t, Up(v, a), Down(Up(v, a), a), "a=%d v=%d", a, v)
		}
	}
}

func TestPaddingIdentity(t *testing.T) {
	alignments := []uintptr{1, 8, 16, 128}
	values := []uintptr{0, 1, 63, 64, 65, 4095, 4096}
	for _, a := range alignments {
		for _, v := range values {
			require.Equal(t, Up(v, a), v+PaddingNeeded(v, a), "a=%d v=%d", a, v)
		}
	}
}

func TestIsAligned(t *testing.T) {
	require.True(t, IsAligned(64, 64))
	require.False(t, IsAligned(65, 64))
}

func TestAssertsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { Up(10, 3) })
	require.Panics(t, func() { Down(10, 0) })
	require.Panics(t, func() { Offset(10, 6) })
}

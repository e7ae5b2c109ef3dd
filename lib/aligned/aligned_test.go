package aligned

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/teleprint-me/attica/lib/align"
)

func TestAllocReturnsAlignedUsableMemory(t *testing.T) {
	p := Alloc(128, align.A)
	require.NotNil(t, p)
	defer Free(p)

	require.True(t, align.IsAligned(uintptr(p), align.A))

	b := unsafe.Slice((*byte)(p), 128)
	for i := range b {
		b[i] = byte(i)
	}
	for i := range b {
		require.Equal(t, byte(i), b[i])
	}
}

func TestCallocZeroesMemory(t *testing.T) {
	p := Calloc(16, 8, align.A)
	require.NotNil(t, p)
	defer Free(p)

	b := unsafe.Slice((*byte)(p), 16*8)
	for _, v := range b {
		require.Zero(t, v)
	}
}

func TestReallocPreservesContent(t *testing.T) {
	p := Alloc(64, align.A)
	require.NotNil(t, p)
	b := unsafe.Slice((*byte)(p), 64)
	for i := range b {
		b[i] = byte(i + 1)
	}

	q := Realloc(p, 64, 256, align.A)
	require.NotNil(t, q)
	defer Free(q)

	qb := unsafe.Slice((*byte)(q), 64)
	for i := range qb {
		require.Equal(t, byte(i+1), qb[i])
	}
}

func TestReallocToZeroFrees(t *testing.T) {
	p := Alloc(32, align.A)
	require.NotNil(t, p)
	require.Nil(t, Realloc(p, 32, 0, align.A))
}

func TestReallocFromNilAllocates(t *testing.T) {
	p := Realloc(nil, 0, 32, align.A)
	require.NotNil(t, p)
	Free(p)
}

func TestFreeNilIsNoop(t *testing.T) {
	require.NotPanics(t, func() { Free(nil) })
}

func TestAllocRejectsNonPowerOfTwoAlignment(t *testing.T) {
	// 24 is above the pointer-size floor, so it is not raised before the
	// power-of-two check.
	require.Nil(t, Alloc(16, 24))
}

func TestAllocRejectsAlignmentLargerThanPage(t *testing.T) {
	require.Nil(t, Alloc(16, uintptr(align.PageSize())*2))
}

package heint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/workpool"
)

func newEngine(t *testing.T) *testkit.Keys {
	t.Helper()
	k, err := testkit.New()
	require.NoError(t, err)
	return k
}

func TestBitGates(t *testing.T) {
	k := newEngine(t)
	e := k.Engine

	for _, tc := range []struct {
		a, b                   bool
		wantXor, wantOr, wantAnd bool
	}{
		{false, false, false, false, false},
		{false, true, true, true, false},
		{true, false, true, true, false},
		{true, true, false, true, true},
	} {
		a := e.TrivialBit(tc.a)
		b := e.TrivialBit(tc.b)

		xor, err := heint.DecryptBit(k.Dec, e, e.Xor(a, b))
		require.NoError(t, err)
		require.Equal(t, tc.wantXor, xor)

		or, err := heint.DecryptBit(k.Dec, e, e.Or(a, b))
		require.NoError(t, err)
		require.Equal(t, tc.wantOr, or)

		and, err := heint.DecryptBit(k.Dec, e, e.And(a, b))
		require.NoError(t, err)
		require.Equal(t, tc.wantAnd, and)
	}

	notTrue, err := heint.DecryptBit(k.Dec, e, e.Not(e.TrivialBit(true)))
	require.NoError(t, err)
	require.False(t, notTrue)

	mux, err := heint.DecryptBit(k.Dec, e, e.MuxBit(e.TrivialBit(true), e.TrivialBit(false), e.TrivialBit(true)))
	require.NoError(t, err)
	require.False(t, mux)
}

func TestByteRoundTrip(t *testing.T) {
	k := newEngine(t)
	e := k.Engine

	for _, v := range []byte{0, 1, 'A', 'z', 127} {
		enc, err := heint.EncryptByte(k.Enc, e, v)
		require.NoError(t, err)
		got, err := heint.DecryptByte(k.Dec, e, enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestByteEqAndIsZero(t *testing.T) {
	k := newEngine(t)
	e := k.Engine
	pool := workpool.New(0)

	a := e.TrivialByte('x')
	b := e.TrivialByte('x')
	c := e.TrivialByte('y')

	eq, err := heint.DecryptBit(k.Dec, e, e.ByteEq(pool, a, b))
	require.NoError(t, err)
	require.True(t, eq)

	neq, err := heint.DecryptBit(k.Dec, e, e.ByteEq(pool, a, c))
	require.NoError(t, err)
	require.False(t, neq)

	isZero, err := heint.DecryptBit(k.Dec, e, e.ByteIsZero(pool, e.TrivialByte(0)))
	require.NoError(t, err)
	require.True(t, isZero)
}

func TestU16RoundTripAndArithmetic(t *testing.T) {
	k := newEngine(t)
	e := k.Engine

	for _, v := range []uint16{0, 1, 42, 1000, 65535} {
		enc, err := heint.EncryptU16(k.Enc, e, v)
		require.NoError(t, err)
		got, err := heint.DecryptU16(k.Dec, e, enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	sum := e.AddU16(e.TrivialU16(12), e.TrivialU16(30))
	gotSum, err := heint.DecryptU16(k.Dec, e, sum)
	require.NoError(t, err)
	require.Equal(t, uint16(42), gotSum)

	diff := e.SubU16(e.TrivialU16(30), e.TrivialU16(12))
	gotDiff, err := heint.DecryptU16(k.Dec, e, diff)
	require.NoError(t, err)
	require.Equal(t, uint16(18), gotDiff)

	lt, eq := e.CompareU16(e.TrivialU16(5), e.TrivialU16(10))
	ltBit, err := heint.DecryptBit(k.Dec, e, lt)
	require.NoError(t, err)
	require.True(t, ltBit)
	eqBit, err := heint.DecryptBit(k.Dec, e, eq)
	require.NoError(t, err)
	require.False(t, eqBit)
}

func TestConstShift(t *testing.T) {
	k := newEngine(t)
	e := k.Engine

	var chars heint.Chars
	for _, b := range []byte("hello") {
		chars = append(chars, e.TrivialByte(b))
	}

	left := e.ConstShiftLeft(chars, 2)
	for i, want := range []byte("llo\x00\x00") {
		got, err := heint.DecryptByte(k.Dec, e, left[i])
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	right := e.ConstShiftRight(chars, 2)
	for i, want := range []byte("\x00\x00hel") {
		got, err := heint.DecryptByte(k.Dec, e, right[i])
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

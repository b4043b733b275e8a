package casefold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/casefold"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/workpool"
)

func TestToLowerAndToUpper(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	e := k.Engine
	pool := workpool.New(0)

	cases := []struct{ in, lower, upper byte }{
		{'A', 'a', 'A'},
		{'z', 'z', 'Z'},
		{'5', '5', '5'},
		{' ', ' ', ' '},
		{0, 0, 0},
	}
	for _, tc := range cases {
		c := e.TrivialByte(tc.in)

		lower, err := heint.DecryptByte(k.Dec, e, casefold.ToLower(e, pool, c))
		require.NoError(t, err)
		require.Equal(t, tc.lower, lower)

		upper, err := heint.DecryptByte(k.Dec, e, casefold.ToUpper(e, pool, c))
		require.NoError(t, err)
		require.Equal(t, tc.upper, upper)
	}
}

func TestEqualFold(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	e := k.Engine
	pool := workpool.New(0)

	eq, err := heint.DecryptBit(k.Dec, e, casefold.EqualFold(e, pool, e.TrivialByte('A'), e.TrivialByte('a')))
	require.NoError(t, err)
	require.True(t, eq)

	neq, err := heint.DecryptBit(k.Dec, e, casefold.EqualFold(e, pool, e.TrivialByte('A'), e.TrivialByte('b')))
	require.NoError(t, err)
	require.False(t, neq)
}

func TestInRange(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	e := k.Engine
	pool := workpool.New(0)

	in, err := heint.DecryptBit(k.Dec, e, casefold.InRange(e, pool, e.TrivialByte('m'), 'a', 'z'))
	require.NoError(t, err)
	require.True(t, in)

	out, err := heint.DecryptBit(k.Dec, e, casefold.InRange(e, pool, e.TrivialByte('M'), 'a', 'z'))
	require.NoError(t, err)
	require.False(t, out)
}

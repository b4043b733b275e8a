package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/transform"
	"github.com/fhestr/fhestr/internal/workpool"
)

func TestToLowerUpper(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("Hello World!", 0)
	require.NoError(t, err)

	lower := transform.ToLowercase(k.Engine, pool, s)
	lowerStr, err := k.DecryptString(lower)
	require.NoError(t, err)
	require.Equal(t, "hello world!", lowerStr)

	upper := transform.ToUppercase(k.Engine, pool, s)
	upperStr, err := k.DecryptString(upper)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD!", upperStr)
}

func TestConcat(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	a, err := k.EncryptString("foo", 0)
	require.NoError(t, err)
	b, err := k.EncryptString("bar", 0)
	require.NoError(t, err)

	out := transform.Concat(k.Engine, pool, a, b)
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "foobar", got)
}

func TestConcatWithPaddedLeft(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	a, err := k.EncryptString("foo", 3)
	require.NoError(t, err)
	b, err := k.EncryptString("bar", 0)
	require.NoError(t, err)

	out := transform.Concat(k.Engine, pool, a, b)
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "foobar", got)
}

func TestRepeatClearCount(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("ab", 0)
	require.NoError(t, err)

	out := transform.Repeat(k.Engine, pool, s, strmodel.ClearUInt(3))
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "ababab", got)

	zero := transform.Repeat(k.Engine, pool, s, strmodel.ClearUInt(0))
	gotZero, err := k.DecryptString(zero)
	require.NoError(t, err)
	require.Equal(t, "", gotZero)
}

func TestTrim(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("  hi  ", 0)
	require.NoError(t, err)

	start := transform.TrimStart(k.Engine, pool, s)
	gotStart, err := k.DecryptString(start)
	require.NoError(t, err)
	require.Equal(t, "hi  ", gotStart)

	end := transform.TrimEnd(k.Engine, pool, s)
	gotEnd, err := k.DecryptString(end)
	require.NoError(t, err)
	require.Equal(t, "  hi", gotEnd)

	both := transform.Trim(k.Engine, pool, s)
	gotBoth, err := k.DecryptString(both)
	require.NoError(t, err)
	require.Equal(t, "hi", gotBoth)
}

func TestTrimFormFeedAndCR(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("\f\rhi\r\f", 0)
	require.NoError(t, err)

	both := transform.Trim(k.Engine, pool, s)
	got, err := k.DecryptString(both)
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}

package split_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/split"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/workpool"
)

// collect drives it to exhaustion and returns every segment whose
// present bit decrypted true, in yield order.
func collect(t *testing.T, k *testkit.Keys, it *split.Iterator) []string {
	t.Helper()
	var out []string
	for i := 0; i < it.MaxCalls; i++ {
		seg, present := it.Next()
		p, err := heint.DecryptBit(k.Dec, k.Engine, present)
		require.NoError(t, err)
		if !p {
			continue
		}
		s, err := k.DecryptString(seg)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestSplitOnDelimiter(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("a.b.c", 0)
	require.NoError(t, err)
	dot, err := k.EncryptString(".", 0)
	require.NoError(t, err)

	it := split.Split(k.Engine, pool, s, dot)
	require.Equal(t, []string{"a", "b", "c"}, collect(t, k, it))
}

func TestRSplitOnDelimiter(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("a.b.c", 0)
	require.NoError(t, err)
	dot, err := k.EncryptString(".", 0)
	require.NoError(t, err)

	it := split.RSplit(k.Engine, pool, s, dot)
	require.Equal(t, []string{"c", "b", "a"}, collect(t, k, it))
}

func TestSplitEmptyPattern(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("ab", 0)
	require.NoError(t, err)
	empty, err := k.EncryptString("", 0)
	require.NoError(t, err)

	it := split.Split(k.Engine, pool, s, empty)
	require.Equal(t, []string{"", "a", "b", ""}, collect(t, k, it))
}

func TestSplitTerminatorDropsTrailingEmpty(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("a.b.", 0)
	require.NoError(t, err)
	dot, err := k.EncryptString(".", 0)
	require.NoError(t, err)

	it := split.SplitTerminator(k.Engine, pool, s, dot)
	require.Equal(t, []string{"a", "b"}, collect(t, k, it))
}

func TestSplitInclusiveKeepsDelimiter(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("a.b.c", 0)
	require.NoError(t, err)
	dot, err := k.EncryptString(".", 0)
	require.NoError(t, err)

	it := split.SplitInclusive(k.Engine, pool, s, dot)
	require.Equal(t, []string{"a.", "b.", "c"}, collect(t, k, it))
}

func TestSplitAsciiWhitespace(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("  hello   world  ", 0)
	require.NoError(t, err)

	it := split.SplitAsciiWhitespace(k.Engine, pool, s)
	var words []string
	for i := 0; i < it.MaxCalls; i++ {
		seg, _ := it.Next()
		w, err := k.DecryptString(seg)
		require.NoError(t, err)
		if w != "" {
			words = append(words, w)
		}
	}
	require.Equal(t, []string{"hello", "world"}, words)
}

func TestSplitNLimitsSegmentCount(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("a,b,c,d", 0)
	require.NoError(t, err)
	comma, err := k.EncryptString(",", 0)
	require.NoError(t, err)

	it := split.SplitN(k.Engine, pool, s, comma, strmodel.ClearUInt(2))
	require.Equal(t, []string{"a", "b,c,d"}, collect(t, k, it))
}

func TestOnceAndROnce(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("key=value=more", 0)
	require.NoError(t, err)
	eq, err := k.EncryptString("=", 0)
	require.NoError(t, err)

	left, right, found := split.Once(k.Engine, pool, s, eq)
	foundBit, err := heint.DecryptBit(k.Dec, k.Engine, found)
	require.NoError(t, err)
	require.True(t, foundBit)
	leftStr, err := k.DecryptString(left)
	require.NoError(t, err)
	rightStr, err := k.DecryptString(right)
	require.NoError(t, err)
	require.Equal(t, "key", leftStr)
	require.Equal(t, "value=more", rightStr)

	rleft, rright, rfound := split.ROnce(k.Engine, pool, s, eq)
	rfoundBit, err := heint.DecryptBit(k.Dec, k.Engine, rfound)
	require.NoError(t, err)
	require.True(t, rfoundBit)
	rleftStr, err := k.DecryptString(rleft)
	require.NoError(t, err)
	rrightStr, err := k.DecryptString(rright)
	require.NoError(t, err)
	require.Equal(t, "key=value", rleftStr)
	require.Equal(t, "more", rrightStr)
}

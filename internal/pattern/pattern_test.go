package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/pattern"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/workpool"
)

// paddings enumerates the padding widths these tests exercise on both
// operands, so a bug that only shows up for a padded pattern against an
// unpadded string (or vice versa) can't hide behind an all-unpadded suite.
var paddings = []int{0, 1, 2, 3}

func TestContainsStartsEndsWith(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	for _, tc := range []struct {
		pat                            string
		contains, startsWith, endsWith bool
	}{
		{"hello", true, true, false},
		{"world", true, false, true},
		{"o wo", true, false, false},
		{"xyz", false, false, false},
		{"hello world", true, true, true},
	} {
		for _, sPad := range paddings {
			for _, pPad := range paddings {
				s, err := k.EncryptString("hello world", sPad)
				require.NoError(t, err)
				p, err := k.EncryptString(tc.pat, pPad)
				require.NoError(t, err)

				contains, err := heint.DecryptBit(k.Dec, k.Engine, pattern.Contains(k.Engine, pool, s, p))
				require.NoError(t, err)
				require.Equal(t, tc.contains, contains, "contains %q (s pad %d, p pad %d)", tc.pat, sPad, pPad)

				startsWith, err := heint.DecryptBit(k.Dec, k.Engine, pattern.StartsWith(k.Engine, pool, s, p))
				require.NoError(t, err)
				require.Equal(t, tc.startsWith, startsWith, "starts_with %q (s pad %d, p pad %d)", tc.pat, sPad, pPad)

				endsWith, err := heint.DecryptBit(k.Dec, k.Engine, pattern.EndsWith(k.Engine, pool, s, p))
				require.NoError(t, err)
				require.Equal(t, tc.endsWith, endsWith, "ends_with %q (s pad %d, p pad %d)", tc.pat, sPad, pPad)
			}
		}
	}
}

// TestEndsWithRejectsPaddedPatternSlack is the regression case for a
// padded pattern whose real content is shorter than its public capacity:
// matching past the pattern's real length must not be treated as reaching
// the genuine end of s just because that span falls inside the pattern's
// padding slack.
func TestEndsWithRejectsPaddedPatternSlack(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("helloXYZW", 0)
	require.NoError(t, err)
	p, err := k.EncryptString("lo", 4)
	require.NoError(t, err)

	endsWith, err := heint.DecryptBit(k.Dec, k.Engine, pattern.EndsWith(k.Engine, pool, s, p))
	require.NoError(t, err)
	require.False(t, endsWith)

	_, found := pattern.StripSuffix(k.Engine, pool, s, p)
	foundBit, err := heint.DecryptBit(k.Dec, k.Engine, found)
	require.NoError(t, err)
	require.False(t, foundBit)
}

func TestFindRfind(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("abcabc", 0)
	require.NoError(t, err)
	p, err := k.EncryptString("bc", 0)
	require.NoError(t, err)

	f := pattern.Find(k.Engine, pool, s, p)
	found, err := heint.DecryptBit(k.Dec, k.Engine, f.Found)
	require.NoError(t, err)
	require.True(t, found)
	idx, err := heint.DecryptU16(k.Dec, k.Engine, f.Index)
	require.NoError(t, err)
	require.EqualValues(t, 1, idx)

	rf := pattern.Rfind(k.Engine, pool, s, p)
	rfound, err := heint.DecryptBit(k.Dec, k.Engine, rf.Found)
	require.NoError(t, err)
	require.True(t, rfound)
	ridx, err := heint.DecryptU16(k.Dec, k.Engine, rf.Index)
	require.NoError(t, err)
	require.EqualValues(t, 4, ridx)
}

func TestFindNotFound(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("abc", 0)
	require.NoError(t, err)
	p, err := k.EncryptString("xyz", 0)
	require.NoError(t, err)

	f := pattern.Find(k.Engine, pool, s, p)
	found, err := heint.DecryptBit(k.Dec, k.Engine, f.Found)
	require.NoError(t, err)
	require.False(t, found)
}

func TestStripPrefixSuffix(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("foobar", 0)
	require.NoError(t, err)
	pre, err := k.EncryptString("foo", 0)
	require.NoError(t, err)
	suf, err := k.EncryptString("bar", 0)
	require.NoError(t, err)

	stripped, found := pattern.StripPrefix(k.Engine, pool, s, pre)
	foundBit, err := heint.DecryptBit(k.Dec, k.Engine, found)
	require.NoError(t, err)
	require.True(t, foundBit)
	str, err := k.DecryptString(stripped)
	require.NoError(t, err)
	require.Equal(t, "bar", str)

	stripped2, found2 := pattern.StripSuffix(k.Engine, pool, s, suf)
	foundBit2, err := heint.DecryptBit(k.Dec, k.Engine, found2)
	require.NoError(t, err)
	require.True(t, foundBit2)
	str2, err := k.DecryptString(stripped2)
	require.NoError(t, err)
	require.Equal(t, "foo", str2)
}

func TestEmptyPatternPreChecks(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("abc", 0)
	require.NoError(t, err)
	empty, err := k.EncryptString("", 0)
	require.NoError(t, err)

	contains, err := heint.DecryptBit(k.Dec, k.Engine, pattern.Contains(k.Engine, pool, s, empty))
	require.NoError(t, err)
	require.True(t, contains)

	f := pattern.Find(k.Engine, pool, s, empty)
	idx, err := heint.DecryptU16(k.Dec, k.Engine, f.Index)
	require.NoError(t, err)
	require.EqualValues(t, 0, idx)
}

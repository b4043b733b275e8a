package refengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/refengine"
)

func TestSplitOnDelimiter(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, refengine.Split("a.b.c", "."))
	require.Equal(t, []string{"c", "b", "a"}, refengine.RSplit("a.b.c", "."))
}

func TestSplitEmptyPattern(t *testing.T) {
	require.Equal(t, []string{"", "a", "b", ""}, refengine.Split("ab", ""))
	require.Equal(t, []string{"", "b", "a", ""}, refengine.RSplit("ab", ""))
}

func TestSplitNAndRSplitN(t *testing.T) {
	require.Equal(t, []string{"a", "b,c,d"}, refengine.SplitN("a,b,c,d", ",", 2))
	require.Equal(t, []string{"d", "a,b,c"}, refengine.RSplitN("a,b,c,d", ",", 2))
}

func TestSplitTerminator(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, refengine.SplitTerminator("a.b.", "."))
	require.Equal(t, []string{"b", "a"}, refengine.RSplitTerminator("a.b.", "."))
}

func TestSplitInclusive(t *testing.T) {
	require.Equal(t, []string{"a.", "b.", "c"}, refengine.SplitInclusive("a.b.c", "."))
}

func TestSplitAsciiWhitespace(t *testing.T) {
	require.Equal(t, []string{"hello", "world"}, refengine.SplitAsciiWhitespace("  hello   world  "))
	require.Nil(t, refengine.SplitAsciiWhitespace("   "))
}

func TestReplaceAndReplacen(t *testing.T) {
	require.Equal(t, "a-b-c-d", refengine.Replace("aXbXcXd", "X", "-"))
	require.Equal(t, "a-b-cXd", refengine.Replacen("aXbXcXd", "X", "-", 2))
}

func TestStripPrefixSuffix(t *testing.T) {
	stripped, ok := refengine.StripPrefix("foobar", "foo")
	require.True(t, ok)
	require.Equal(t, "bar", stripped)

	_, ok2 := refengine.StripPrefix("foobar", "baz")
	require.False(t, ok2)
}

func TestTrimFamily(t *testing.T) {
	require.Equal(t, "hi  ", refengine.TrimStart("  hi  "))
	require.Equal(t, "  hi", refengine.TrimEnd("  hi  "))
	require.Equal(t, "hi", refengine.Trim("\f\rhi\r\f"))
}

func TestFindRfind(t *testing.T) {
	idx, found := refengine.Find("abcabc", "bc")
	require.True(t, found)
	require.Equal(t, 1, idx)

	ridx, rfound := refengine.Rfind("abcabc", "bc")
	require.True(t, rfound)
	require.Equal(t, 4, ridx)

	_, notFound := refengine.Find("abc", "xyz")
	require.False(t, notFound)
}

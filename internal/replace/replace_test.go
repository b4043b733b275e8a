package replace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/replace"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/testkit"
	"github.com/fhestr/fhestr/internal/workpool"
)

func TestReplace(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("aXbXc", 0)
	require.NoError(t, err)
	from, err := k.EncryptString("X", 0)
	require.NoError(t, err)
	to, err := k.EncryptString("-", 0)
	require.NoError(t, err)

	out := replace.Replace(k.Engine, pool, s, from, to)
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "a-b-c", got)
}

func TestReplacenLimitsSubstitutions(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("aXbXcXd", 0)
	require.NoError(t, err)
	from, err := k.EncryptString("X", 0)
	require.NoError(t, err)
	to, err := k.EncryptString("-", 0)
	require.NoError(t, err)

	out := replace.Replacen(k.Engine, pool, s, from, to, strmodel.ClearUInt(2))
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "a-b-cXd", got)
}

func TestReplaceNoMatch(t *testing.T) {
	k, err := testkit.New()
	require.NoError(t, err)
	pool := workpool.New(0)

	s, err := k.EncryptString("hello", 0)
	require.NoError(t, err)
	from, err := k.EncryptString("z", 0)
	require.NoError(t, err)
	to, err := k.EncryptString("-", 0)
	require.NoError(t, err)

	out := replace.Replace(k.Engine, pool, s, from, to)
	got, err := k.DecryptString(out)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

// Package obliviousassert is SPEC_FULL.md §9's supplemented parity
// harness: small test-only helpers, used by the root package's
// fhestr_test.go, that encrypt a plaintext at a given padding width
// (Paddings lists the widths spec.md §8 enumerates), decrypt a server
// result, and assert it against an expected value the caller supplies -
// so the public API's tests read like the original's dense combinatorial
// assertions (assert_functions/test_vectors.rs) rather than one-off spot
// checks. The internal packages' tests use internal/testkit instead.
package obliviousassert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr"
	"github.com/fhestr/fhestr/internal/heint"
)

// Paddings enumerates the four padding choices spec.md §8's testable
// properties range over: 0 extra NULs (unpadded, unless s is empty, in
// which case ClientKey.Encrypt always marks Padded), 1, 2, and 3.
var Paddings = []uint32{0, 1, 2, 3}

// Encrypt encrypts s under ck with padding extra encrypted NUL bytes
// appended, failing the test immediately on error.
func Encrypt(t *testing.T, ck *fhestr.ClientKey, s string, padding uint32) fhestr.EncString {
	t.Helper()
	enc, err := ck.Encrypt(s, &padding)
	require.NoError(t, err)
	return *enc
}

// Decrypt recovers the plaintext string an EncString carries, failing
// the test immediately on error.
func Decrypt(t *testing.T, ck *fhestr.ClientKey, s fhestr.EncString) string {
	t.Helper()
	got, err := ck.Decrypt(&s)
	require.NoError(t, err)
	return got
}

// Bit decrypts a boolean ciphertext and asserts it equals want.
func Bit(t *testing.T, ck *fhestr.ClientKey, got heint.Bit, want bool) {
	t.Helper()
	v, err := ck.DecryptBit(got)
	require.NoError(t, err)
	require.Equal(t, want, v)
}

// String decrypts an EncString and asserts it equals want.
func String(t *testing.T, ck *fhestr.ClientKey, got fhestr.EncString, want string) {
	t.Helper()
	require.Equal(t, want, Decrypt(t, ck, got))
}

// Length decrypts a Length (resolving the clear case trivially) and
// asserts it equals want.
func Length(t *testing.T, ck *fhestr.ClientKey, got fhestr.Length, want int) {
	t.Helper()
	v, err := ck.DecryptLength(got)
	require.NoError(t, err)
	require.Equal(t, want, v)
}

// Find asserts a FindResult matches the plaintext (index, found) pair.
// Per spec.md §9, the index is only meaningful when found decrypts true;
// when want's found is false, the index is not checked.
func Find(t *testing.T, ck *fhestr.ClientKey, got fhestr.FindResult, wantIdx int, wantFound bool) {
	t.Helper()
	Bit(t, ck, got.Found, wantFound)
	if !wantFound {
		return
	}
	idx, err := ck.DecryptU16(got.Index)
	require.NoError(t, err)
	require.Equal(t, wantIdx, int(idx))
}

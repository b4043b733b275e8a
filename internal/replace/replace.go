// Package replace implements spec.md §4.7's replace/replacen: repeated
// find-and-substitute built directly on top of the split iterator, the
// same way the plaintext identity `s.split(from).collect().join(to) ==
// s.replace(from, to)` relates the two operations (and `splitn(n+1,
// from).join(to) == s.replacen(from, to, n)`).
package replace

import (
	"github.com/fhestr/fhestr/internal/bitutil"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/split"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/transform"
	"github.com/fhestr/fhestr/internal/workpool"
)

// Replace is spec.md §4.7's replace: every occurrence of from is
// substituted with to.
func Replace(e *heint.Engine, pool *workpool.Pool, s, from, to strmodel.EncString) strmodel.EncString {
	it := split.Split(e, pool, s, from)
	return join(e, pool, it, to)
}

// Replacen is spec.md §4.7's replacen: only the first n occurrences of
// from are substituted. Replacing n occurrences takes n splits, i.e.
// n+1 segments, so the underlying splitn limit is n+1, not n.
func Replacen(e *heint.Engine, pool *workpool.Pool, s, from, to strmodel.EncString, n strmodel.UIntArg) strmodel.EncString {
	it := split.SplitN(e, pool, s, from, bumpLimit(e, n))
	return join(e, pool, it, to)
}

func bumpLimit(e *heint.Engine, n strmodel.UIntArg) strmodel.UIntArg {
	if n.IsClear {
		return strmodel.ClearUInt(n.Clear + 1)
	}
	return strmodel.EncUInt(e.AddU16(n.Enc, e.TrivialU16(1)), n.Max+1)
}

// join drives it to exhaustion, concatenating every present segment with
// to in between (but never after the last present one), i.e. the join
// operation plaintext replace/replacen is built from.
func join(e *heint.Engine, pool *workpool.Pool, it *split.Iterator, to strmodel.EncString) strmodel.EncString {
	acc, _ := it.Next()
	for i := 1; i < it.MaxCalls; i++ {
		seg, present := it.Next()
		joined := transform.Concat(e, pool, transform.Concat(e, pool, acc, to), seg)
		acc = bitutil.SelectString(e, pool, present, joined, acc)
	}
	return acc
}

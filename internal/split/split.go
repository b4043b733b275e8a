// Package split implements spec.md §4.6's splitting iterators: each
// exposes a Next method the caller drives exactly MaxCalls times (a
// public bound derived from the string's capacity), receiving a
// (segment, present) pair every call. Once the real sequence of segments
// is exhausted, present decrypts to false for every remaining call; the
// SplitAsciiWhitespace iterator differs, see its doc.
package split

import (
	"github.com/fhestr/fhestr/internal/bitutil"
	"github.com/fhestr/fhestr/internal/cmpeq"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/pattern"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/transform"
	"github.com/fhestr/fhestr/internal/workpool"
)

// kind selects the delimiter-matching and emission policy for Next.
type kind int

const (
	kindSplit kind = iota
	kindRSplit
	kindSplitTerminator
	kindRSplitTerminator
	kindSplitInclusive
	kindSplitAsciiWhitespace
)

// Iterator drives one splitting pass over s by pat, per spec.md §4.6.
// MaxCalls bounds how many times Next may be called; it is public. done
// is the sticky ciphertext "the logical sequence has already yielded its
// final segment" flag - it must be a ciphertext, not a plaintext bool,
// because whether the pattern occurs again in what remains is secret.
type Iterator struct {
	e    *heint.Engine
	pool *workpool.Pool
	kind kind

	remaining strmodel.EncString
	pat       strmodel.EncString
	done      heint.Bit

	capHint  int
	calls    int
	MaxCalls int

	limit *strmodel.UIntArg // non-nil for SplitN/RSplitN
}

// The empty-pattern advancement rule (spec.md §4.6 step 4) only has a
// closed-form public trigger when the pattern's emptiness is itself
// public, i.e. an unpadded, zero-capacity pattern. A padded pattern that
// happens to decrypt empty still drives the ordinary find/rfind-based
// step, which the shifted-compare kernel already handles correctly for
// every real alignment; only the "never advances" degenerate case needs
// the explicit bias, and that degeneracy is only reachable when the
// pattern is statically empty.
func patStaticallyEmpty(pat strmodel.EncString) bool {
	return !pat.Padded && pat.Cap() == 0
}

func newIterator(e *heint.Engine, pool *workpool.Pool, k kind, s, pat strmodel.EncString) *Iterator {
	return &Iterator{
		e: e, pool: pool, kind: k,
		remaining: s, pat: pat,
		done:     e.TrivialBit(false),
		capHint:  s.Cap(),
		MaxCalls: s.Cap() + 2,
	}
}

// Split is spec.md §4.6's split iterator constructor.
func Split(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindSplit, s, pat)
}

// RSplit is spec.md §4.6's rsplit iterator constructor.
func RSplit(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindRSplit, s, pat)
}

// SplitTerminator is spec.md §4.6's split_terminator: like Split, but a
// delimiter at the very end does not produce a trailing empty segment.
func SplitTerminator(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindSplitTerminator, s, pat)
}

// RSplitTerminator is the reverse-order counterpart of SplitTerminator.
func RSplitTerminator(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindRSplitTerminator, s, pat)
}

// SplitInclusive is spec.md §4.6's split_inclusive: each yielded segment
// (other than a possible final one) keeps its matched delimiter
// appended.
func SplitInclusive(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindSplitInclusive, s, pat)
}

// SplitAsciiWhitespace is spec.md §4.6's split_ascii_whitespace: splits
// on runs of ASCII whitespace, and leading/trailing runs produce no empty
// words. Per the decision recorded in SPEC_FULL.md §10, the end of the
// stream is an emission policy rather than a found bit: present is always
// true, and once the words run out every remaining call yields an empty
// segment.
func SplitAsciiWhitespace(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) *Iterator {
	return newIterator(e, pool, kindSplitAsciiWhitespace, s, strmodel.EncString{})
}

// SplitN and RSplitN cap the number of real splits performed; the final
// yielded segment absorbs whatever remains once the limit is reached.
func SplitN(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString, n strmodel.UIntArg) *Iterator {
	it := newIterator(e, pool, kindSplit, s, pat)
	it.limit = &n
	return it
}

func RSplitN(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString, n strmodel.UIntArg) *Iterator {
	it := newIterator(e, pool, kindRSplit, s, pat)
	it.limit = &n
	return it
}

func (it *Iterator) exhaustedResult() (strmodel.EncString, heint.Bit) {
	e := it.e
	chars := make(heint.Chars, it.capHint)
	for i := range chars {
		chars[i] = e.TrivialByte(0)
	}
	return strmodel.EncString{Chars: chars, Padded: true}, e.TrivialBit(false)
}

// Next yields the iterator's next (segment, present) pair. The caller
// must call Next exactly MaxCalls times to observe every real segment
// obliviously; calls beyond the real segment count return
// (well-formed-but-empty, false).
func (it *Iterator) Next() (strmodel.EncString, heint.Bit) {
	if it.calls >= it.MaxCalls {
		return it.exhaustedResult()
	}
	it.calls++

	if it.kind == kindSplitAsciiWhitespace {
		return it.nextWhitespace()
	}

	e, pool := it.e, it.pool
	notDoneBefore := e.Not(it.done)
	reverse := it.kind == kindRSplit || it.kind == kindRSplitTerminator

	var found heint.Bit
	var idx heint.U16
	if reverse {
		res := pattern.Rfind(e, pool, it.remaining, it.pat)
		found, idx = res.Found, res.Index
	} else {
		res := pattern.Find(e, pool, it.remaining, it.pat)
		found, idx = res.Found, res.Index
	}

	if patStaticallyEmpty(it.pat) {
		found = e.Not(cmpeq.IsEmptyBit(e, pool, it.remaining))
		if reverse {
			length := cmpeq.LengthAsU16(e, cmpeq.Len(e, pool, it.remaining))
			if it.calls == 1 {
				idx = length
			} else {
				idx = e.SubU16(length, e.TrivialU16(1))
			}
		} else {
			if it.calls == 1 {
				idx = e.TrivialU16(0)
			} else {
				idx = e.TrivialU16(1)
			}
		}
	}

	if it.limit != nil {
		dump := it.dumpBit()
		found = e.MuxBit(dump, e.TrivialBit(false), found)
	}

	patLen := cmpeq.LengthAsU16(e, cmpeq.Len(e, pool, it.pat))
	idxPlusLen := e.AddU16(idx, patLen)

	lhsLen := idx
	if it.kind == kindSplitInclusive {
		lhsLen = idxPlusLen
	}
	lhs := maskKeepBefore(e, pool, it.remaining, lhsLen)
	rhs := bitutil.ShiftCharsLeft(e, pool, it.remaining, strmodel.EncUInt(idxPlusLen, uint16(it.remaining.Cap())))

	var thisYield, newRemaining strmodel.EncString
	if reverse {
		thisYield, newRemaining = rhs, lhs
	} else {
		thisYield, newRemaining = lhs, rhs
	}

	empty := strmodel.EncString{Chars: heint.Chars{}, Padded: true}
	thisYield = bitutil.SelectString(e, pool, found, thisYield, it.remaining)
	newRemaining = bitutil.SelectString(e, pool, found, newRemaining, empty)
	it.remaining = newRemaining

	// split_terminator/rsplit_terminator: a trailing delimiter must not
	// produce a final empty segment. Detect that case (no more delimiter
	// found, and the value that would be yielded is empty) and suppress
	// it.
	suppressTrailing := e.TrivialBit(false)
	if it.kind == kindSplitTerminator || it.kind == kindRSplitTerminator {
		wasLast := e.Not(found)
		yieldIsEmpty := cmpeq.IsEmptyBit(e, pool, thisYield)
		suppressTrailing = e.And(wasLast, yieldIsEmpty)
	}

	presentThis := e.And(notDoneBefore, e.Not(suppressTrailing))
	it.done = e.Or(it.done, e.Not(found))

	return thisYield, presentThis
}

// dumpBit reports whether this call (the it.calls-th Next invocation,
// 1-indexed, a public quantity since the caller controls how many times
// it drives the iterator) has reached the splitn/rsplitn limit, meaning
// this call must dump the entire remainder as the final segment instead
// of splitting further.
func (it *Iterator) dumpBit() heint.Bit {
	e := it.e
	if it.limit.IsClear {
		return e.TrivialBit(it.calls >= int(it.limit.Clear))
	}
	callsU16 := e.TrivialU16(uint16(it.calls))
	return e.Not(e.CompareU16Lt(callsU16, it.limit.Enc))
}

// maskKeepBefore zeroes every character at or past idx, leaving a
// prefix view of s.
func maskKeepBefore(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString, idx heint.U16) strmodel.EncString {
	out := make(heint.Chars, s.Cap())
	workpool.ParallelFor(pool, s.Cap(), func(i int) {
		keep := e.CompareU16Lt(e.TrivialU16(uint16(i)), idx)
		out[i] = e.MuxByte(pool, keep, s.Chars[i], e.TrivialByte(0))
	})
	return strmodel.EncString{Chars: out, Padded: true}
}

// nextWhitespace is split_ascii_whitespace's dedicated kernel (spec.md
// §4.6): left-trim, extract the leading maximal run of non-whitespace
// characters via a running "still in word" mask, then shift the
// remainder left by the word's length.
func (it *Iterator) nextWhitespace() (strmodel.EncString, heint.Bit) {
	e, pool := it.e, it.pool
	trimmed := transform.TrimStart(e, pool, it.remaining)
	n := trimmed.Cap()

	mask := make([]heint.Bit, n)
	stillWord := e.TrivialBit(true)
	for i := 0; i < n; i++ {
		nonWS := e.Not(transform.IsWhitespace(e, pool, trimmed.Chars[i]))
		nonNul := e.Not(e.ByteIsZero(pool, trimmed.Chars[i]))
		wordChar := e.And(nonWS, nonNul)
		stillWord = e.And(stillWord, wordChar)
		mask[i] = stillWord
	}

	wordChars := make(heint.Chars, n)
	counts := make([]heint.U16, n)
	workpool.ParallelFor(pool, n, func(i int) {
		wordChars[i] = e.MuxByte(pool, mask[i], trimmed.Chars[i], e.TrivialByte(0))
		counts[i] = e.BitToU16(mask[i])
	})
	word := strmodel.EncString{Chars: wordChars, Padded: true}
	wordLen := workpool.ReduceParallel(pool, counts, e.TrivialU16(0), e.AddU16)

	it.remaining = bitutil.ShiftCharsLeft(e, pool, trimmed, strmodel.EncUInt(wordLen, uint16(n)))
	return word, e.TrivialBit(true)
}

// Once is the supplemented split_once convenience op (SPEC_FULL.md §9):
// a single-shot wrapper over the forward find/split kernel for callers
// that only want the first split, without driving a stateful iterator.
func Once(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) (strmodel.EncString, strmodel.EncString, heint.Bit) {
	res := pattern.Find(e, pool, s, pat)
	return onceFromIndex(e, pool, s, pat, res.Index, res.Found)
}

// ROnce is the supplemented rsplit_once convenience op: the last-match
// counterpart of Once.
func ROnce(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString) (strmodel.EncString, strmodel.EncString, heint.Bit) {
	res := pattern.Rfind(e, pool, s, pat)
	return onceFromIndex(e, pool, s, pat, res.Index, res.Found)
}

func onceFromIndex(e *heint.Engine, pool *workpool.Pool, s, pat strmodel.EncString, idx heint.U16, found heint.Bit) (strmodel.EncString, strmodel.EncString, heint.Bit) {
	patLen := cmpeq.LengthAsU16(e, cmpeq.Len(e, pool, pat))
	idxPlusLen := e.AddU16(idx, patLen)
	lhs := maskKeepBefore(e, pool, s, idx)
	rhs := bitutil.ShiftCharsLeft(e, pool, s, strmodel.EncUInt(idxPlusLen, uint16(s.Cap())))
	return lhs, rhs, found
}

// Package pattern implements spec.md §4.4's pattern engine: the shared
// shifted-compare kernel behind contains, starts_with, ends_with, find,
// rfind, strip_prefix and strip_suffix.
package pattern

import (
	"github.com/fhestr/fhestr/internal/bitutil"
	"github.com/fhestr/fhestr/internal/cmpeq"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/workpool"
)

// preCheck is spec.md §4.4's public pre-check helper: one of
// {Clear(true), Clear(false), Cipher(b), none}.
type preCheck struct {
	proceed bool // true means "none", fall through to the shifted compare
	isClear bool
	clear   bool
	cipher  heint.Bit
}

func runPreCheck(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) preCheck {
	// Pattern empty (clear) or padded with capacity 1: every string
	// "contains" the empty pattern.
	if (!p.Padded && p.Cap() == 0) || (p.Padded && p.Cap() == 1) {
		return preCheck{isClear: true, clear: true}
	}
	// String empty (clear) or padded with capacity 1: delegate to
	// is_empty(pat).
	if (!s.Padded && s.Cap() == 0) || (s.Padded && s.Cap() == 1) {
		empty := cmpeq.IsEmpty(e, pool, p)
		if empty.IsClear {
			return preCheck{isClear: true, clear: empty.Clear}
		}
		return preCheck{cipher: empty.Enc}
	}
	// Unpadded pattern longer than unpadded string, or >= padded string.
	if !p.Padded {
		if !s.Padded && p.Cap() > s.Cap() {
			return preCheck{isClear: true, clear: false}
		}
		if s.Padded && p.Cap() >= s.Cap() {
			return preCheck{isClear: true, clear: false}
		}
	}
	return preCheck{proceed: true}
}

func (c preCheck) bit(e *heint.Engine) heint.Bit {
	if c.isClear {
		return e.TrivialBit(c.clear)
	}
	return c.cipher
}

// enumerate returns the public alignment start positions a pattern of
// capacity pCap could occupy inside a string of capacity sCap, per
// spec.md §4.4.1, generalized uniformly across all four (s.Padded,
// p.Padded) combinations: an unpadded pattern must fit entirely (i in
// 0..=sCap-pCap); a padded pattern's real length may be anywhere in
// 0..pCap, including 0, so every start in 0..=sCap is a candidate. Views
// beyond public capacity are trivially NUL-extended by view(), so
// enumerating a few structurally-impossible alignments costs extra gates
// but never changes the result.
func enumerate(sCap, pCap int, pPadded bool) []int {
	if !pPadded {
		n := sCap - pCap
		if n < 0 {
			return nil
		}
		out := make([]int, n+1)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, sCap+1)
	for i := range out {
		out[i] = i
	}
	return out
}

// view returns chars[start:start+length], NUL-extending past chars'
// public capacity.
func view(e *heint.Engine, chars heint.Chars, start, length int) heint.Chars {
	out := make(heint.Chars, length)
	for i := 0; i < length; i++ {
		pos := start + i
		if pos < len(chars) {
			out[i] = chars[pos]
		} else {
			out[i] = e.TrivialByte(0)
		}
	}
	return out
}

// matchAt computes m_i, the per-alignment match bit, for a pattern
// anchored at start in s.
func matchAt(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString, start int) heint.Bit {
	sv := view(e, s.Chars, start, p.Cap())
	if p.Padded {
		return e.EqualArraysIgnorePatPad(pool, sv, p.Chars)
	}
	return e.EqualArrays(pool, sv, p.Chars)
}

// tailMatchesPatternEnd reports whether a candidate alignment at start
// truly reaches the real end of s, not merely the end of the pattern's
// public capacity. matchAt's EqualArraysIgnorePatPad already treats every
// s position past the pattern's real (possibly secret) length as an
// automatic match, so checking s.Chars[start+p.Cap():] alone (the public
// capacity offset) is wrong whenever p is padded with real slack: any
// genuine s content sitting between start+realLen(p) and start+p.Cap()
// would be ignored rather than rejected. This instead AND-folds, over
// every position from start to s.Cap()-1, "either this position is still
// within the pattern's real length (unchecked - matchAt already verified
// it), or it's NUL" - so only content genuinely past the pattern's real
// end is required to be NUL.
func tailMatchesPatternEnd(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString, start int) heint.Bit {
	tailLen := s.Cap() - start
	if tailLen <= 0 {
		return e.TrivialBit(true)
	}
	patLen := cmpeq.Len(e, pool, p)
	bits := make([]heint.Bit, tailLen)
	workpool.ParallelFor(pool, tailLen, func(i int) {
		if patLen.IsClear && i < patLen.Clear {
			bits[i] = e.TrivialBit(true)
			return
		}
		isZero := e.ByteIsZero(pool, s.Chars[start+i])
		if patLen.IsClear {
			bits[i] = isZero
			return
		}
		before := e.CompareU16Lt(e.TrivialU16(uint16(i)), patLen.Enc)
		bits[i] = e.Or(before, isZero)
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(true), e.And)
}

// Contains is spec.md §4.4's contains: OR-fold of every alignment's match
// bit.
func Contains(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) heint.Bit {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		return pre.bit(e)
	}
	starts := enumerate(s.Cap(), p.Cap(), p.Padded)
	bits := make([]heint.Bit, len(starts))
	workpool.ParallelFor(pool, len(starts), func(i int) {
		bits[i] = matchAt(e, pool, s, p, starts[i])
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(false), e.Or)
}

// StartsWith is spec.md §4.4's starts_with: m_0.
func StartsWith(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) heint.Bit {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		return pre.bit(e)
	}
	return matchAt(e, pool, s, p, 0)
}

// EndsWith is spec.md §4.4's ends_with, generalized uniformly across the
// four padding combinations: OR-fold, over every candidate alignment, of
// (match at that alignment) AND (everything after the matched region is
// NUL) - i.e. the matched region truly reaches the end of s's real
// content, not merely some interior occurrence.
func EndsWith(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) heint.Bit {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		return pre.bit(e)
	}
	starts := enumerate(s.Cap(), p.Cap(), p.Padded)
	bits := make([]heint.Bit, len(starts))
	workpool.ParallelFor(pool, len(starts), func(i int) {
		m := matchAt(e, pool, s, p, starts[i])
		tail := tailMatchesPatternEnd(e, pool, s, p, starts[i])
		bits[i] = e.And(m, tail)
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(false), e.Or)
}

// Find is spec.md §4.4's find: argmin-i of matches, folded from largest
// to smallest so the first match wins.
func Find(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) strmodel.FindResult {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		b := pre.bit(e)
		return strmodel.FindResult{Index: e.TrivialU16(0), Found: b}
	}
	starts := enumerate(s.Cap(), p.Cap(), p.Padded)
	idx := e.TrivialU16(uint16(s.Cap()))
	found := e.TrivialBit(false)
	for i := len(starts) - 1; i >= 0; i-- {
		m := matchAt(e, pool, s, p, starts[i])
		idx = e.MuxU16(m, e.TrivialU16(uint16(starts[i])), idx)
		found = e.Or(found, m)
	}
	return strmodel.FindResult{Index: idx, Found: found}
}

// Rfind is spec.md §4.4's rfind: symmetric to Find, iterating
// smallest-to-largest so the last match wins, with the post-pass
// correcting the both-padded-and-homomorphically-empty-pattern case to
// return len(s) rather than the largest enumerated index (spec.md §9).
func Rfind(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) strmodel.FindResult {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		b := pre.bit(e)
		return strmodel.FindResult{Index: e.TrivialU16(0), Found: b}
	}
	starts := enumerate(s.Cap(), p.Cap(), p.Padded)
	idx := e.TrivialU16(uint16(s.Cap()))
	found := e.TrivialBit(false)
	for i := 0; i < len(starts); i++ {
		m := matchAt(e, pool, s, p, starts[i])
		idx = e.MuxU16(m, e.TrivialU16(uint16(starts[i])), idx)
		found = e.Or(found, m)
	}
	if s.Padded && p.Padded {
		patEmpty := cmpeq.IsEmpty(e, pool, p)
		if !patEmpty.IsClear {
			length := cmpeq.Len(e, pool, s)
			idx = e.MuxU16(patEmpty.Enc, cmpeq.LengthAsU16(e, length), idx)
		}
	}
	return strmodel.FindResult{Index: idx, Found: found}
}

// StripPrefix is spec.md §4.4's strip_prefix: call StartsWith; shift s
// left by the encrypted real pattern length gated on that predicate;
// always marked Padded per invariant I3. Returns (suffix, found).
func StripPrefix(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) (strmodel.EncString, heint.Bit) {
	found := StartsWith(e, pool, s, p)
	patLen := cmpeq.LengthAsU16(e, cmpeq.Len(e, pool, p))
	amount := e.MuxU16(found, patLen, e.TrivialU16(0))
	shifted := bitutil.ShiftCharsLeft(e, pool, s, strmodel.EncUInt(amount, uint16(s.Cap())))
	result := bitutil.SelectString(e, pool, found, shifted, s)
	return result, found
}

// StripSuffix is spec.md §4.4's strip_suffix: the mask-and-zero variant.
// For every alignment that both matches and reaches the real end of s
// (EndsWith's per-alignment predicate), the pattern-width window starting
// at that alignment is zeroed in a working copy. Returns (result, found).
func StripSuffix(e *heint.Engine, pool *workpool.Pool, s, p strmodel.EncString) (strmodel.EncString, heint.Bit) {
	pre := runPreCheck(e, pool, s, p)
	if !pre.proceed {
		return s, pre.bit(e)
	}
	starts := enumerate(s.Cap(), p.Cap(), p.Padded)
	matchBits := make([]heint.Bit, len(starts))
	workpool.ParallelFor(pool, len(starts), func(i int) {
		m := matchAt(e, pool, s, p, starts[i])
		tail := tailMatchesPatternEnd(e, pool, s, p, starts[i])
		matchBits[i] = e.And(m, tail)
	})
	found := workpool.ReduceParallel(pool, matchBits, e.TrivialBit(false), e.Or)

	out := make(heint.Chars, s.Cap())
	copy(out, s.Chars)
	for j := 0; j < s.Cap(); j++ {
		zeroed := e.TrivialBit(false)
		for k, start := range starts {
			if j >= start && j < start+p.Cap() {
				zeroed = e.Or(zeroed, matchBits[k])
			}
		}
		out[j] = e.MuxByte(pool, zeroed, e.TrivialByte(0), out[j])
	}
	return strmodel.EncString{Chars: out, Padded: true}, found
}

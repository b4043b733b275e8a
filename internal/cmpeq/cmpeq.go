// Package cmpeq implements spec.md §4.1's length/emptiness oracle and
// §4.3's equality and ordering engine.
package cmpeq

import (
	"github.com/fhestr/fhestr/internal/casefold"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/workpool"
)

// Len is spec.md §4.1's len: Clear(N) when s is unpadded, else an
// encrypted count of non-NUL bytes.
func Len(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.Length {
	if !s.Padded {
		return strmodel.Length{IsClear: true, Clear: s.Cap()}
	}
	counts := make([]heint.U16, s.Cap())
	workpool.ParallelFor(pool, s.Cap(), func(i int) {
		nonNul := e.Not(e.ByteIsZero(pool, s.Chars[i]))
		counts[i] = e.BitToU16(nonNul)
	})
	total := workpool.ReduceParallel(pool, counts, e.TrivialU16(0), e.AddU16)
	return strmodel.Length{Enc: total}
}

// IsEmpty is spec.md §4.1's is_empty. For capacity 0 it is trivially
// Clear(true); for an unpadded string of capacity >= 1 it is Clear(false);
// otherwise it reduces to Len(s) == 0, per spec.md's note that for N>=1
// is_empty is just len(s)=0 (the s.chars[0]=0 check that note mentions is
// subsumed by that equality since a padded string's length already counts
// leading non-NULs).
func IsEmpty(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.IsEmpty {
	if s.Cap() == 0 {
		return strmodel.IsEmpty{IsClear: true, Clear: true}
	}
	if !s.Padded {
		return strmodel.IsEmpty{IsClear: true, Clear: false}
	}
	length := Len(e, pool, s)
	zero := e.IsZeroU16(pool, length.Enc)
	return strmodel.IsEmpty{Enc: zero}
}

// LengthAsU16 forces a Length into ciphertext form, trivially encrypting
// the clear case. Used by callers (pattern/split/replace) that need a
// length value to feed into further arithmetic regardless of whether it
// started out public.
func LengthAsU16(e *heint.Engine, l strmodel.Length) heint.U16 {
	if l.IsClear {
		return e.TrivialU16(uint16(l.Clear))
	}
	return l.Enc
}

// Eq is spec.md §4.3's eq, with its public-length fast paths.
func Eq(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	// Either side has capacity 0, or padded with capacity 1: equality
	// reduces to is_empty(other).
	if a.Cap() == 0 || (a.Padded && a.Cap() == 1) {
		return isEmptyBit(e, pool, b)
	}
	if b.Cap() == 0 || (b.Padded && b.Cap() == 1) {
		return isEmptyBit(e, pool, a)
	}
	if !a.Padded && !b.Padded && a.Cap() != b.Cap() {
		return e.TrivialBit(false)
	}
	if !a.Padded && b.Padded && b.Cap() <= a.Cap() {
		return e.TrivialBit(false)
	}
	if !b.Padded && a.Padded && a.Cap() <= b.Cap() {
		return e.TrivialBit(false)
	}

	xs, ys := a.Chars, b.Chars
	// If an unpadded side is strictly shorter than the padded side minus
	// one, extend it with a single NUL so e.g. "abc" vs "abcd\0" (cap 5,
	// padded) correctly compares unequal rather than only comparing the
	// shared prefix.
	if !a.Padded && b.Padded && a.Cap() < b.Cap()-1 {
		xs = append(append(heint.Chars{}, xs...), e.TrivialByte(0))
	}
	if !b.Padded && a.Padded && b.Cap() < a.Cap()-1 {
		ys = append(append(heint.Chars{}, ys...), e.TrivialByte(0))
	}
	xs, ys = e.PadLSB(xs, ys)
	return e.EqualArrays(pool, xs, ys)
}

func isEmptyBit(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) heint.Bit {
	return IsEmptyBit(e, pool, s)
}

// IsEmptyBit flattens IsEmpty to a single ciphertext bit, trivially
// encrypting the clear case. Callers that need a uniform bit regardless
// of whether the string's emptiness was already public (split's
// empty-pattern compensation, pattern's pre-checks) use this instead of
// branching on IsEmpty.IsClear themselves.
func IsEmptyBit(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) heint.Bit {
	empty := IsEmpty(e, pool, s)
	if empty.IsClear {
		return e.TrivialBit(empty.Clear)
	}
	return empty.Enc
}

// Ne is eq XOR 1.
func Ne(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	return e.Not(Eq(e, pool, a, b))
}

// Lt, Le, Gt, Ge pack both sides into wide-integer views, LSB-pad the
// shorter, and run the HE integer comparator (spec.md §4.3). Because NUL
// sorts below any printable byte, padding preserves ASCII lexicographic
// order for prefix inputs of unequal length.
func Lt(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	lt, _ := compare(e, pool, a, b)
	return lt
}

func Le(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	lt, eq := compare(e, pool, a, b)
	return e.Or(lt, eq)
}

func Gt(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	lt, eq := compare(e, pool, a, b)
	return e.Not(e.Or(lt, eq))
}

func Ge(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	lt, _ := compare(e, pool, a, b)
	return e.Not(lt)
}

func compare(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) (lt, eq heint.Bit) {
	xs, ys := e.PadLSB(a.Chars, b.Chars)
	return e.Compare(pool, xs, ys)
}

// EqIgnoreCase is spec.md §4.3's eq_ignore_case: identical structure to
// Eq, but character comparison folds ASCII case first.
func EqIgnoreCase(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) heint.Bit {
	if a.Cap() == 0 || (a.Padded && a.Cap() == 1) {
		return isEmptyBit(e, pool, b)
	}
	if b.Cap() == 0 || (b.Padded && b.Cap() == 1) {
		return isEmptyBit(e, pool, a)
	}
	if !a.Padded && !b.Padded && a.Cap() != b.Cap() {
		return e.TrivialBit(false)
	}
	xs, ys := e.PadLSB(a.Chars, b.Chars)
	bits := make([]heint.Bit, len(xs))
	workpool.ParallelFor(pool, len(xs), func(i int) {
		bits[i] = casefold.EqualFold(e, pool, xs[i], ys[i])
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(true), e.And)
}

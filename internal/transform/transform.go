// Package transform implements spec.md §4.5's whole-string transforms:
// case conversion, concatenation, repetition, and trimming.
package transform

import (
	"github.com/fhestr/fhestr/internal/bitutil"
	"github.com/fhestr/fhestr/internal/casefold"
	"github.com/fhestr/fhestr/internal/cmpeq"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/workpool"
)

// ToLowercase applies casefold.ToLower to every character.
func ToLowercase(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.EncString {
	out := make(heint.Chars, s.Cap())
	workpool.ParallelFor(pool, s.Cap(), func(i int) {
		out[i] = casefold.ToLower(e, pool, s.Chars[i])
	})
	return strmodel.EncString{Chars: out, Padded: s.Padded}
}

// ToUppercase applies casefold.ToUpper to every character.
func ToUppercase(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.EncString {
	out := make(heint.Chars, s.Cap())
	workpool.ParallelFor(pool, s.Cap(), func(i int) {
		out[i] = casefold.ToUpper(e, pool, s.Chars[i])
	})
	return strmodel.EncString{Chars: out, Padded: s.Padded}
}

// Concat is spec.md §4.5's concat: the result's capacity is the sum of
// both public capacities, with b shifted into place after a's real
// content. a's real length must be known: when a is unpadded its length
// is its public capacity (clear), when padded it is the encrypted Len.
func Concat(e *heint.Engine, pool *workpool.Pool, a, b strmodel.EncString) strmodel.EncString {
	n := a.Cap() + b.Cap()
	out := make(heint.Chars, n)
	copy(out, a.Chars)
	for i := a.Cap(); i < n; i++ {
		out[i] = e.TrivialByte(0)
	}
	wide := strmodel.EncString{Chars: out, Padded: true}

	if !a.Padded {
		// a's length is public: b can be placed at a fixed offset.
		for i, c := range b.Chars {
			wide.Chars[a.Cap()+i] = c
		}
		return wide
	}

	aLen := cmpeq.LengthAsU16(e, cmpeq.Len(e, pool, a))
	bPadded := make(heint.Chars, n)
	copy(bPadded, b.Chars)
	for i := b.Cap(); i < n; i++ {
		bPadded[i] = e.TrivialByte(0)
	}
	shiftedB := bitutil.ShiftCharsRight(e, pool, strmodel.EncString{Chars: bPadded, Padded: true}, strmodel.EncUInt(aLen, uint16(n)))

	for i := 0; i < n; i++ {
		isTail := e.TrivialBit(i >= a.Cap())
		wide.Chars[i] = e.MuxByte(pool, isTail, shiftedB.Chars[i], wide.Chars[i])
	}
	// Positions within a's own capacity but beyond its real length must
	// take b's shifted-in bytes instead of a's trailing pad bytes.
	for i := 0; i < a.Cap(); i++ {
		idx := e.TrivialU16(uint16(i))
		beyond := e.Not(e.CompareU16Lt(idx, aLen))
		wide.Chars[i] = e.MuxByte(pool, beyond, shiftedB.Chars[i], wide.Chars[i])
	}
	return wide
}

// Repeat is spec.md §4.5's repeat. Clear counts unroll to a fixed number
// of concatenations. Encrypted counts are expanded square-and-multiply
// style: for each bit of the count (as many bits as Max needs), s
// repeated 2^k times is conditionally concatenated onto the result when
// bit k is set.
func Repeat(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString, count strmodel.UIntArg) strmodel.EncString {
	if count.IsClear {
		out := strmodel.EncString{Chars: heint.Chars{}, Padded: false}
		for i := uint16(0); i < count.Clear; i++ {
			out = Concat(e, pool, out, s)
		}
		if count.Clear == 0 {
			return strmodel.EncString{Chars: heint.Chars{}, Padded: false}
		}
		return out
	}

	maxN := int(count.Max)
	bits := e.ShiftAmountBits(count.Enc, maxN)
	// Build doubling powers of s: at step k, cur is s repeated 2^k times,
	// conditionally folded into the accumulator when bit k of count is
	// set.
	acc := strmodel.EncString{Chars: heint.Chars{}, Padded: false}
	cur := s
	for i, b := range bits {
		candidate := Concat(e, pool, acc, cur)
		acc = bitutil.SelectString(e, pool, b, candidate, acc)
		if i != len(bits)-1 {
			cur = Concat(e, pool, cur, cur)
		}
	}
	isZero := e.IsZeroU16(pool, count.Enc)
	return bitutil.SelectString(e, pool, isZero, strmodel.EncString{Chars: heint.Chars{}, Padded: true}, acc)
}

// TrimStart is spec.md §4.5's trim_start: find the index of the first
// non-whitespace character (via Find-style fold over whitespace
// membership) and shift left by that amount.
func TrimStart(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.EncString {
	firstNonWS := firstNonWhitespaceIndex(e, pool, s)
	shifted := bitutil.ShiftCharsLeft(e, pool, s, strmodel.EncUInt(firstNonWS, uint16(s.Cap())))
	return shifted
}

// TrimEnd is spec.md §4.5's trim_end: a forward fold finds one past the
// last non-whitespace character, and every position at or past it is
// masked to NUL.
func TrimEnd(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.EncString {
	lastNonWS := lastNonWhitespaceIndexPlusOne(e, pool, s)
	out := make(heint.Chars, s.Cap())
	for i := 0; i < s.Cap(); i++ {
		idx := e.TrivialU16(uint16(i))
		keep := e.CompareU16Lt(idx, lastNonWS)
		out[i] = e.MuxByte(pool, keep, s.Chars[i], e.TrivialByte(0))
	}
	return strmodel.EncString{Chars: out, Padded: true}
}

// Trim composes TrimStart and TrimEnd.
func Trim(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) strmodel.EncString {
	return TrimEnd(e, pool, TrimStart(e, pool, s))
}

// IsWhitespace reports whether c is one of the five ASCII whitespace
// bytes spec.md §4.5 names: space, tab, LF, FF, CR.
func IsWhitespace(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Bit {
	return isWhitespace(e, pool, c)
}

func isWhitespace(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Bit {
	isSpace := e.ByteEq(pool, c, e.TrivialByte(' '))
	isTab := e.ByteEq(pool, c, e.TrivialByte('\t'))
	isNL := e.ByteEq(pool, c, e.TrivialByte('\n'))
	isFF := e.ByteEq(pool, c, e.TrivialByte('\f'))
	isCR := e.ByteEq(pool, c, e.TrivialByte('\r'))
	return e.Or(e.Or(isSpace, isTab), e.Or(isNL, e.Or(isFF, isCR)))
}

// firstNonWhitespaceIndex folds from the last position to the first so
// the smallest qualifying index wins, matching pattern.Find's technique.
func firstNonWhitespaceIndex(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) heint.U16 {
	n := s.Cap()
	idx := e.TrivialU16(uint16(n))
	for i := n - 1; i >= 0; i-- {
		nonWS := e.Not(isWhitespace(e, pool, s.Chars[i]))
		if s.Padded {
			nonNul := e.Not(e.ByteIsZero(pool, s.Chars[i]))
			nonWS = e.And(nonWS, nonNul)
		}
		idx = e.MuxU16(nonWS, e.TrivialU16(uint16(i)), idx)
	}
	return idx
}

// lastNonWhitespaceIndexPlusOne folds from the first position to the last
// so the largest qualifying index wins.
func lastNonWhitespaceIndexPlusOne(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString) heint.U16 {
	n := s.Cap()
	idx := e.TrivialU16(0)
	for i := 0; i < n; i++ {
		nonWS := e.Not(isWhitespace(e, pool, s.Chars[i]))
		if s.Padded {
			nonNul := e.Not(e.ByteIsZero(pool, s.Chars[i]))
			nonWS = e.And(nonWS, nonNul)
		}
		idx = e.MuxU16(nonWS, e.TrivialU16(uint16(i+1)), idx)
	}
	return idx
}

// Package bitutil implements spec.md §4.2's whole-string bit utilities:
// packing a string into a wide-integer view, block-aligning two such
// views, shifting by an encrypted character count, and conditionally
// selecting between two strings.
package bitutil

import (
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/workpool"
)

// ToUint returns s's characters viewed as a single big-endian radix value
// (spec.md §4.2's to_uint); EncString already stores its characters in
// that order, so this is a type-level statement, not a transformation.
func ToUint(s strmodel.EncString) heint.Chars { return s.Chars }

// PadLSB block-aligns two wide-integer views by extending the shorter
// with trivially-encrypted zero bytes at the low-order (tail) end.
func PadLSB(e *heint.Engine, a, b heint.Chars) (heint.Chars, heint.Chars) {
	return e.PadLSB(a, b)
}

// ShiftCharsLeft shifts s left by amount characters (bits = 8*amount),
// saturating to all-NUL once amount reaches or exceeds s.Cap(), per
// spec.md §4.2's policy divergence from the underlying primitive's wrap
// behavior. The result keeps s's capacity and is always marked Padded,
// per invariant I3: a shift can introduce trailing NULs whose count is
// secret.
func ShiftCharsLeft(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString, amount strmodel.UIntArg) strmodel.EncString {
	n := s.Cap()
	if amount.IsClear {
		k := clamp(int(amount.Clear), n)
		return strmodel.EncString{Chars: e.ConstShiftLeft(s.Chars, k), Padded: true}
	}
	maxShift := clamp(int(amount.Max), n)
	bits := e.ShiftAmountBits(amount.Enc, maxShift)
	return strmodel.EncString{Chars: e.ShiftLeft(pool, s.Chars, bits, maxShift), Padded: true}
}

// ShiftCharsRight shifts s right by amount characters, inserting NULs at
// the front and truncating overflow at the tail.
func ShiftCharsRight(e *heint.Engine, pool *workpool.Pool, s strmodel.EncString, amount strmodel.UIntArg) strmodel.EncString {
	n := s.Cap()
	if amount.IsClear {
		k := clamp(int(amount.Clear), n)
		return strmodel.EncString{Chars: e.ConstShiftRight(s.Chars, k), Padded: true}
	}
	maxShift := clamp(int(amount.Max), n)
	bits := e.ShiftAmountBits(amount.Enc, maxShift)
	return strmodel.EncString{Chars: e.ShiftRight(pool, s.Chars, bits, maxShift), Padded: true}
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// SelectString is spec.md §4.2's select_string: returns t if cond
// decrypts to 1, else f. Per invariant I3, if the two inputs disagree on
// Padded, the result appends one trivial NUL and is marked Padded so the
// "safe" side's potential trailing NULs are never misrepresented as
// content.
func SelectString(e *heint.Engine, pool *workpool.Pool, cond heint.Bit, t, f strmodel.EncString) strmodel.EncString {
	n := t.Cap()
	if f.Cap() > n {
		n = f.Cap()
	}
	tChars := extend(e, t.Chars, n)
	fChars := extend(e, f.Chars, n)

	merged := e.SelectArray(pool, cond, tChars, fChars)
	padded := t.Padded && f.Padded
	if t.Padded != f.Padded {
		merged = append(merged, e.TrivialByte(0))
		padded = true
	}
	return strmodel.EncString{Chars: merged, Padded: padded}
}

func extend(e *heint.Engine, xs heint.Chars, n int) heint.Chars {
	if len(xs) >= n {
		return xs
	}
	out := make(heint.Chars, n)
	copy(out, xs)
	for i := len(xs); i < n; i++ {
		out[i] = e.TrivialByte(0)
	}
	return out
}

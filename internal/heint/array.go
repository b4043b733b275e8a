package heint

import "github.com/fhestr/fhestr/internal/workpool"

// Chars is an ordered sequence of encrypted characters viewed as a single
// big-endian radix value (spec.md §4.2's "to_uint"): position 0 is the
// most significant byte. Every function in this file is data-oblivious -
// its sequence of gate calls depends only on len(xs)/len(ys), never on
// ciphertext contents.
type Chars []Byte

// EqualArrays AND-reduces per-position ByteEq, i.e. spec.md §4.3's
// chars_eq: it returns 1 iff every paired character is equal. xs and ys
// must have equal length; callers (internal/cmpeq) are responsible for
// pre-extending the shorter side with one trivial NUL first.
func (e *Engine) EqualArrays(pool *workpool.Pool, xs, ys Chars) Bit {
	if len(xs) != len(ys) {
		panic("heint: EqualArrays called with mismatched lengths")
	}
	if len(xs) == 0 {
		return e.TrivialBit(true)
	}
	bits := make([]Bit, len(xs))
	workpool.ParallelFor(pool, len(xs), func(i int) {
		bits[i] = e.ByteEq(pool, xs[i], ys[i])
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(true), e.And)
}

// EqualArraysIgnorePatPad is spec.md §4.3's chars_eq_ignore_pat_pad: AND-
// reduces (x_i = y_i) OR (y_i = 0), treating a NUL in ys (the pattern
// side) as "pattern already ended, remainder matches trivially".
func (e *Engine) EqualArraysIgnorePatPad(pool *workpool.Pool, xs, ys Chars) Bit {
	if len(xs) != len(ys) {
		panic("heint: EqualArraysIgnorePatPad called with mismatched lengths")
	}
	if len(xs) == 0 {
		return e.TrivialBit(true)
	}
	bits := make([]Bit, len(xs))
	workpool.ParallelFor(pool, len(xs), func(i int) {
		eq := e.ByteEq(pool, xs[i], ys[i])
		patEnded := e.ByteIsZero(pool, ys[i])
		bits[i] = e.Or(eq, patEnded)
	})
	return workpool.ReduceParallel(pool, bits, e.TrivialBit(true), e.And)
}

// Compare is the bit-serial, MSB-first magnitude comparator spec.md §4.3
// delegates to for lt/le/gt/ge: it walks xs/ys from the most significant
// character down, and returns (lt, eq) such that lt=1 iff xs<ys and eq=1
// iff xs==ys, as unsigned big-endian byte strings. xs and ys must have
// equal length (callers LSB-pad the shorter side with Engine.PadLSB
// first).
func (e *Engine) Compare(pool *workpool.Pool, xs, ys Chars) (lt, eq Bit) {
	if len(xs) != len(ys) {
		panic("heint: Compare called with mismatched lengths")
	}
	lt = e.TrivialBit(false)
	eq = e.TrivialBit(true)
	for i := 0; i < len(xs); i++ {
		byteLt, byteEq := e.compareByte(xs[i], ys[i])
		lt = e.Or(lt, e.And(eq, byteLt))
		eq = e.And(eq, byteEq)
	}
	return lt, eq
}

// compareByte is Compare's per-character kernel, an 8-bit ripple
// comparator over MSB-first bits.
func (e *Engine) compareByte(a, b Byte) (lt, eq Bit) {
	lt = e.TrivialBit(false)
	eq = e.TrivialBit(true)
	for i := 0; i < 8; i++ {
		bitLt := e.And(e.Not(a.Bits[i]), b.Bits[i])
		bitEq := e.Not(e.Xor(a.Bits[i], b.Bits[i]))
		lt = e.Or(lt, e.And(eq, bitLt))
		eq = e.And(eq, bitEq)
	}
	return lt, eq
}

// PadLSB extends the shorter of two Chars with trivially-encrypted NUL
// bytes appended at the low-order (tail) end, so both have equal length
// before Compare or EqualArrays run (spec.md §4.2).
func (e *Engine) PadLSB(a, b Chars) (Chars, Chars) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	return e.extendTo(a, n), e.extendTo(b, n)
}

func (e *Engine) extendTo(xs Chars, n int) Chars {
	if len(xs) >= n {
		return xs
	}
	out := make(Chars, n)
	copy(out, xs)
	for i := len(xs); i < n; i++ {
		out[i] = e.TrivialByte(0)
	}
	return out
}

// SelectArray is the wide-integer multiplexer of spec.md §4.2: it returns
// t if cond decrypts to 1, else f, position by position. t and f must
// have equal length.
func (e *Engine) SelectArray(pool *workpool.Pool, cond Bit, t, f Chars) Chars {
	if len(t) != len(f) {
		panic("heint: SelectArray called with mismatched lengths")
	}
	out := make(Chars, len(t))
	workpool.ParallelFor(pool, len(t), func(i int) {
		out[i] = e.MuxByte(pool, cond, t[i], f[i])
	})
	return out
}

// ShiftLeft implements spec.md §4.2's shift_chars_left: shifts xs left by
// an encrypted character count, bit-decomposed in amountBits (LSB-first,
// enough bits to represent 0..maxShift), saturating to all-NUL once the
// shift reaches or exceeds len(xs) rather than wrapping.
func (e *Engine) ShiftLeft(pool *workpool.Pool, xs Chars, amountBits []Bit, maxShift int) Chars {
	return e.barrelShift(pool, xs, amountBits, maxShift, e.constShiftLeft)
}

// ShiftRight implements spec.md §4.2's shift_chars_right: shifts xs right
// by an encrypted character count, inserting NULs at the front and
// truncating overflow at the tail, saturating to all-NUL past len(xs).
func (e *Engine) ShiftRight(pool *workpool.Pool, xs Chars, amountBits []Bit, maxShift int) Chars {
	return e.barrelShift(pool, xs, amountBits, maxShift, e.constShiftRight)
}

func (e *Engine) barrelShift(
	pool *workpool.Pool,
	xs Chars,
	amountBits []Bit,
	maxShift int,
	constShift func(Chars, int) Chars,
) Chars {
	cur := append(Chars(nil), xs...)
	for i := 0; (1 << uint(i)) <= maxShift && i < len(amountBits); i++ {
		d := 1 << uint(i)
		shifted := constShift(cur, d)
		cur = e.SelectArray(pool, amountBits[i], shifted, cur)
	}
	return cur
}

func (e *Engine) constShiftLeft(xs Chars, d int) Chars {
	out := make(Chars, len(xs))
	for i := range out {
		if i+d < len(xs) {
			out[i] = xs[i+d]
		} else {
			out[i] = e.TrivialByte(0)
		}
	}
	return out
}

func (e *Engine) constShiftRight(xs Chars, d int) Chars {
	out := make(Chars, len(xs))
	for i := range out {
		if i-d >= 0 {
			out[i] = xs[i-d]
		} else {
			out[i] = e.TrivialByte(0)
		}
	}
	return out
}

package heint

import "github.com/fhestr/fhestr/internal/workpool"

// Byte is an encrypted ASCII character: 8 Bits, most-significant first.
// Values 0..127 are meaningful; 0 (NUL) is reserved by the data model as
// the padding sentinel (spec.md §3).
type Byte struct {
	Bits [8]Bit
}

// TrivialByte cheaply encrypts a known byte constant, e.g. the NUL used to
// extend a view in the pattern engine (spec.md §4.4).
func (e *Engine) TrivialByte(v byte) Byte {
	var out Byte
	for i := 0; i < 8; i++ {
		bit := v&(1<<uint(7-i)) != 0
		out.Bits[i] = e.TrivialBit(bit)
	}
	return out
}

// ByteEq reports whether two encrypted characters carry the same value, AND-
// reducing the eight per-bit equalities in a balanced tree (workpool.Reduce)
// so the result is independent of scheduling order (spec.md §5).
func (e *Engine) ByteEq(pool *workpool.Pool, a, b Byte) Bit {
	eqs := make([]Bit, 8)
	workpool.ParallelFor(pool, 8, func(i int) {
		eqs[i] = e.Not(e.Xor(a.Bits[i], b.Bits[i]))
	})
	return workpool.Reduce(eqs, e.TrivialBit(true), e.And)
}

// ByteIsZero reports whether an encrypted character is the NUL padding
// sentinel.
func (e *Engine) ByteIsZero(pool *workpool.Pool, a Byte) Bit {
	return e.ByteEq(pool, a, e.TrivialByte(0))
}

// MuxByte selects a if cond decrypts to 1, else b, bit by bit.
func (e *Engine) MuxByte(pool *workpool.Pool, cond Bit, a, b Byte) Byte {
	var out Byte
	workpool.ParallelFor(pool, 8, func(i int) {
		out.Bits[i] = e.MuxBit(cond, a.Bits[i], b.Bits[i])
	})
	return out
}

// ByteXorConst flips exactly the bits set in mask, unconditionally. Used by
// case folding (internal/casefold) to apply the 0x20 ASCII-case mask once
// the per-character predicate has already gated it via MuxByte.
func (e *Engine) ByteXorConst(a Byte, mask byte) Byte {
	var out Byte
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(7-i)) != 0 {
			out.Bits[i] = e.Not(a.Bits[i])
		} else {
			out.Bits[i] = a.Bits[i]
		}
	}
	return out
}

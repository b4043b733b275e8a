package heint

import "github.com/fhestr/fhestr/internal/workpool"

// U16 is a 16-bit unsigned radix ciphertext, most-significant bit first.
// It represents the encrypted lengths, indices, and repeat/limit counts
// spec.md §3/§6 call out (16-bit radix is sufficient since every public
// capacity N in this module is bounded well under 2^16).
type U16 struct {
	Bits [16]Bit
}

// TrivialU16 cheaply encrypts a known constant, e.g. the public capacity N
// used as an upper bound in find/rfind folds.
func (e *Engine) TrivialU16(v uint16) U16 {
	var out U16
	for i := 0; i < 16; i++ {
		out.Bits[i] = e.TrivialBit(v&(1<<uint(15-i)) != 0)
	}
	return out
}

// AddU16 is a 16-bit ripple-carry adder.
func (e *Engine) AddU16(a, b U16) U16 {
	var out U16
	carry := e.TrivialBit(false)
	for i := 15; i >= 0; i-- {
		sum := e.Xor(e.Xor(a.Bits[i], b.Bits[i]), carry)
		// carry_out = majority(a,b,carry)
		ab := e.And(a.Bits[i], b.Bits[i])
		ac := e.And(a.Bits[i], carry)
		bc := e.And(b.Bits[i], carry)
		carry = e.Or(e.Or(ab, ac), bc)
		out.Bits[i] = sum
	}
	return out
}

// SubU16 computes a-b via two's complement: a + (^b) + 1.
func (e *Engine) SubU16(a, b U16) U16 {
	var notB U16
	for i := range b.Bits {
		notB.Bits[i] = e.Not(b.Bits[i])
	}
	return e.AddU16(e.AddU16(a, notB), e.TrivialU16(1))
}

// CompareU16 returns (lt, eq) for a<b and a==b, unsigned.
func (e *Engine) CompareU16(a, b U16) (lt, eq Bit) {
	lt = e.TrivialBit(false)
	eq = e.TrivialBit(true)
	for i := 0; i < 16; i++ {
		bitLt := e.And(e.Not(a.Bits[i]), b.Bits[i])
		bitEq := e.Not(e.Xor(a.Bits[i], b.Bits[i]))
		lt = e.Or(lt, e.And(eq, bitLt))
		eq = e.And(eq, bitEq)
	}
	return lt, eq
}

// CompareU16Lt is the strict-less-than half of CompareU16, for callers
// that don't need the equality bit.
func (e *Engine) CompareU16Lt(a, b U16) Bit {
	lt, _ := e.CompareU16(a, b)
	return lt
}

// MuxU16 selects a if cond decrypts to 1, else b.
func (e *Engine) MuxU16(cond Bit, a, b U16) U16 {
	var out U16
	for i := 0; i < 16; i++ {
		out.Bits[i] = e.MuxBit(cond, a.Bits[i], b.Bits[i])
	}
	return out
}

// IsZeroU16 NOR-reduces every bit.
func (e *Engine) IsZeroU16(pool *workpool.Pool, a U16) Bit {
	orBits := make([]Bit, 16)
	copy(orBits, a.Bits[:])
	any := workpool.ReduceParallel(pool, orBits, e.TrivialBit(false), e.Or)
	return e.Not(any)
}

// BitToU16 embeds a single Bit as the least-significant bit of a U16,
// letting it participate in AddU16 reductions (used by Len's non-NUL
// counting fold).
func (e *Engine) BitToU16(b Bit) U16 {
	out := e.TrivialU16(0)
	out.Bits[15] = b
	return out
}

// ShiftAmountBits returns the low log2(maxShift)+1 bits of u, LSB-first,
// the order Engine.ShiftLeft/ShiftRight expect for their amountBits
// parameter.
func (e *Engine) ShiftAmountBits(u U16, maxShift int) []Bit {
	nbits := 0
	for (1 << uint(nbits)) <= maxShift {
		nbits++
	}
	out := make([]Bit, nbits)
	for i := 0; i < nbits; i++ {
		out[i] = u.Bits[15-i]
	}
	return out
}

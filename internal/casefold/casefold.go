// Package casefold implements the ASCII case-folding predicate and mask
// shared by spec.md §4.3's eq_ignore_case and §4.5's to_lowercase/
// to_uppercase: a character is folded by conditionally OR/AND-ing the
// 0x20 bit once an oblivious range check identifies it as upper/lower
// alpha.
package casefold

import (
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/workpool"
)

const caseBit byte = 0x20

// InRange reports whether c lies in the inclusive byte range [lo, hi],
// via the same bit-serial comparator the ordering engine uses, so the
// predicate costs no more than a single-character Compare.
func InRange(e *heint.Engine, pool *workpool.Pool, c heint.Byte, lo, hi byte) heint.Bit {
	loArr := heint.Chars{e.TrivialByte(lo)}
	hiArr := heint.Chars{e.TrivialByte(hi)}
	cArr := heint.Chars{c}
	ltLo, _ := e.Compare(pool, cArr, loArr) // c < lo
	gtHi, _ := e.Compare(pool, hiArr, cArr) // hi < c, i.e. c > hi
	notTooLow := e.Not(ltLo)
	notTooHigh := e.Not(gtHi)
	return e.And(notTooLow, notTooHigh)
}

// IsUpperAlpha reports whether c is in ['A'..'Z'].
func IsUpperAlpha(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Bit {
	return InRange(e, pool, c, 'A', 'Z')
}

// IsLowerAlpha reports whether c is in ['a'..'z'].
func IsLowerAlpha(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Bit {
	return InRange(e, pool, c, 'a', 'z')
}

// ToLower ORs the 0x20 bit into c when c is upper-alpha, leaving every
// other byte (including NUL) untouched.
func ToLower(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Byte {
	isUpper := IsUpperAlpha(e, pool, c)
	folded := e.ByteXorConst(c, caseBit)
	return e.MuxByte(pool, isUpper, folded, c)
}

// ToUpper clears the 0x20 bit in c when c is lower-alpha.
func ToUpper(e *heint.Engine, pool *workpool.Pool, c heint.Byte) heint.Byte {
	isLower := IsLowerAlpha(e, pool, c)
	folded := e.ByteXorConst(c, caseBit)
	return e.MuxByte(pool, isLower, folded, c)
}

// EqualFold reports whether a and b are equal under ASCII case folding,
// by folding both sides to lowercase before comparing.
func EqualFold(e *heint.Engine, pool *workpool.Pool, a, b heint.Byte) heint.Bit {
	return e.ByteEq(pool, ToLower(e, pool, a), ToLower(e, pool, b))
}

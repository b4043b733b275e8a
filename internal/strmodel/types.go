// Package strmodel holds the ciphertext data model of spec.md §3: EncChar,
// EncString, UIntArg, and Length. Keeping the types here (rather than in
// the root package) lets every internal algorithm package
// (cmpeq/pattern/transform/split/replace) depend on the data model without
// importing the public ClientKey/ServerKey surface, avoiding an import
// cycle; package fhestr re-exports these as its own public types.
package strmodel

import "github.com/fhestr/fhestr/internal/heint"

// EncChar is a ciphertext representing one ASCII byte (0..127); NUL (0) is
// reserved as the padding sentinel.
type EncChar = heint.Byte

// EncString is spec.md §3's (chars, padded) pair. Cap (the sequence's
// public length N) is always len(Chars); Padded is the public flag
// described by invariants I1-I4.
type EncString struct {
	Chars  heint.Chars
	Padded bool
}

// Cap returns the public capacity N.
func (s EncString) Cap() int { return len(s.Chars) }

// Length is spec.md §4.1's Clear(N) | Enc(len) result: a public clear
// length when the string is unpadded, or an encrypted length otherwise.
type Length struct {
	IsClear bool
	Clear   int
	Enc     heint.U16
}

// IsEmpty is spec.md §4.1's Clear(N=0) | Enc(bit) result.
type IsEmpty struct {
	IsClear bool
	Clear   bool
	Enc     heint.Bit
}

// UIntArg is spec.md §3's repeat/limit count: either a public Clear(u16)
// or an Enc(ciphertext, max) whose public max bounds circuit size.
type UIntArg struct {
	IsClear bool
	Clear   uint16
	Enc     heint.U16
	Max     uint16
}

// ClearUInt builds a public count argument.
func ClearUInt(v uint16) UIntArg { return UIntArg{IsClear: true, Clear: v} }

// EncUInt builds an encrypted count argument bounded by max.
func EncUInt(v heint.U16, max uint16) UIntArg { return UIntArg{IsClear: false, Enc: v, Max: max} }

// FindResult is spec.md §6's (index_ciphertext, found_ciphertext) shape.
type FindResult struct {
	Index heint.U16
	Found heint.Bit
}

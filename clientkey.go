// Package fhestr implements data-oblivious ASCII string operations over
// ciphertexts produced by a homomorphic-encryption scheme for integer
// arithmetic: a caller holding a ClientKey encrypts a string into an
// EncString, and a server holding only the ServerKey runs length,
// containment, search, case-folding, trimming, splitting, replacement,
// comparison and concatenation operations on it without ever observing
// plaintext.
//
// The ciphertext engine (internal/heint) is built on
// github.com/tuneinsight/lattigo/v6's BGV scheme; independent sub-circuit
// evaluation is scheduled on a data-parallel work pool
// (internal/workpool) built on golang.org/x/sync.
package fhestr

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"

	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
	"github.com/fhestr/fhestr/internal/workpool"
)

// EncString is spec.md §3's (chars, padded) pair: a publicly-sized
// sequence of encrypted ASCII bytes plus a public flag indicating whether
// the trailing positions may hold encrypted NUL padding.
type EncString = strmodel.EncString

// UIntArg is spec.md §3's repeat/limit count: Clear(u16) or Enc(u16,
// max), used by Repeat/Replacen/SplitN/RSplitN.
type UIntArg = strmodel.UIntArg

// Length is spec.md §4.1's len result: Clear(int) when the string is
// unpadded, Enc(ciphertext) otherwise.
type Length = strmodel.Length

// IsEmptyResult is spec.md §4.1's is_empty result.
type IsEmptyResult = strmodel.IsEmpty

// FindResult is spec.md §6's (index_ciphertext, found_ciphertext) shape,
// returned by Find and Rfind.
type FindResult = strmodel.FindResult

// ClientKey holds the secret key material: it can encrypt plaintext
// strings and counts, and decrypt results the ServerKey produces. It
// never runs a string operation itself.
type ClientKey struct {
	params bgv.Parameters
	engine *heint.Engine
	sk     *rlwe.SecretKey
	enc    *rlwe.Encryptor
	dec    *rlwe.Decryptor
	evk    rlwe.EvaluationKeySet
}

// NewClientKey generates a fresh secret key and the public evaluation
// key material (relinearization key and one Galois key per power-of-two
// slot rotation) derived from it.
func NewClientKey() (*ClientKey, error) {
	params, err := heint.Params()
	if err != nil {
		return nil, fmt.Errorf("fhestr: %w", err)
	}

	kgen := rlwe.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)

	galEls := shiftGaloisElements(params)
	galKeys := make([]*rlwe.GaloisKey, len(galEls))
	for i, el := range galEls {
		galKeys[i] = kgen.GenGaloisKeyNew(el, sk)
	}
	evk := rlwe.NewMemEvaluationKeySet(rlk, galKeys...)

	encryptor := rlwe.NewEncryptor(params, pk)
	decryptor := rlwe.NewDecryptor(params, sk)

	return &ClientKey{
		params: params,
		engine: heint.NewEngine(params, evk),
		sk:     sk,
		enc:    encryptor,
		dec:    decryptor,
		evk:    evk,
	}, nil
}

// shiftGaloisElements returns one Galois automorphism element per
// power-of-two slot rotation below the ring degree. internal/heint's
// ShiftLeft/ShiftRight do not rotate slots (they move whole Byte
// ciphertexts between positions), so no gate uses the keys built from
// these elements.
func shiftGaloisElements(params bgv.Parameters) []uint64 {
	n := params.N()
	var els []uint64
	for d := 1; d < n; d *= 2 {
		els = append(els, params.GaloisElement(d))
	}
	return els
}

// ServerKey returns the public handle this ClientKey's server-side
// counterpart operates with: an Engine scoped to exactly the published
// evaluation key, with no access to the secret key.
func (ck *ClientKey) ServerKey() *ServerKey {
	return &ServerKey{engine: ck.engine, pool: workpool.New(0)}
}

// Encrypt encrypts an ASCII plaintext string into an EncString. padding,
// if non-nil, is the number of extra encrypted NUL bytes to append beyond
// the string's own length; the result's Padded flag is set whenever
// padding is requested or the string is empty (spec.md §6).
//
// Encrypt rejects (per spec.md §7's BadInput class) plaintext containing
// non-ASCII bytes or interior NUL bytes, since NUL is reserved as the
// padding sentinel.
func (ck *ClientKey) Encrypt(s string, padding *uint32) (*EncString, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return nil, fmt.Errorf("fhestr: non-ASCII byte 0x%02x at offset %d: %w", s[i], i, ErrBadInput)
		}
		if s[i] == 0 {
			return nil, fmt.Errorf("fhestr: interior NUL byte at offset %d: %w", i, ErrBadInput)
		}
	}

	extra := uint32(0)
	if padding != nil {
		extra = *padding
	}
	padded := extra > 0 || len(s) == 0

	n := len(s) + int(extra)
	chars := make(heint.Chars, n)
	for i := 0; i < len(s); i++ {
		b, err := heint.EncryptByte(ck.enc, ck.engine, s[i])
		if err != nil {
			return nil, fmt.Errorf("fhestr: encrypting byte %d: %w", i, err)
		}
		chars[i] = b
	}
	for i := len(s); i < n; i++ {
		b, err := heint.EncryptByte(ck.enc, ck.engine, 0)
		if err != nil {
			return nil, fmt.Errorf("fhestr: encrypting padding byte %d: %w", i, err)
		}
		chars[i] = b
	}

	return &EncString{Chars: chars, Padded: padded}, nil
}

// Decrypt recovers the plaintext string an EncString carries: every
// character is decrypted, and trailing NUL bytes (meaningful only when
// Padded) are stripped.
func (ck *ClientKey) Decrypt(s *EncString) (string, error) {
	out := make([]byte, 0, s.Cap())
	for i, c := range s.Chars {
		b, err := heint.DecryptByte(ck.dec, ck.engine, c)
		if err != nil {
			return "", fmt.Errorf("fhestr: decrypting byte %d: %w", i, err)
		}
		if b == 0 && s.Padded {
			break
		}
		out = append(out, b)
	}
	return string(out), nil
}

// EncryptBoundedU16 encrypts a 16-bit count bounded by a public max, the
// UIntArg shape every repeat/limit parameter in the server API accepts.
// Per spec.md §7, an encrypted count argument without its public max is a
// BadInput error; this constructor makes that pairing structurally
// required.
func (ck *ClientKey) EncryptBoundedU16(v, max uint16) (UIntArg, error) {
	if v > max {
		return UIntArg{}, fmt.Errorf("fhestr: encrypted count %d exceeds its own max %d: %w", v, max, ErrBadInput)
	}
	enc, err := heint.EncryptU16(ck.enc, ck.engine, v)
	if err != nil {
		return UIntArg{}, fmt.Errorf("fhestr: encrypting bounded u16: %w", err)
	}
	return strmodel.EncUInt(enc, max), nil
}

// DecryptU16 recovers a plain uint16 from an encrypted length/index/count
// ciphertext, the decrypt-side counterpart of Length.Enc, FindResult.Index
// and UIntArg.Enc.
func (ck *ClientKey) DecryptU16(u heint.U16) (uint16, error) {
	v, err := heint.DecryptU16(ck.dec, ck.engine, u)
	if err != nil {
		return 0, fmt.Errorf("fhestr: decrypting u16: %w", err)
	}
	return v, nil
}

// DecryptBit recovers a plain bool from a boolean ciphertext, the
// decrypt-side counterpart of every predicate/found bit this package
// returns.
func (ck *ClientKey) DecryptBit(b heint.Bit) (bool, error) {
	v, err := heint.DecryptBit(ck.dec, ck.engine, b)
	if err != nil {
		return false, fmt.Errorf("fhestr: decrypting bit: %w", err)
	}
	return v, nil
}

// DecryptLength resolves a Length into a plain int, decrypting only when
// the string it came from was padded.
func (ck *ClientKey) DecryptLength(l Length) (int, error) {
	if l.IsClear {
		return l.Clear, nil
	}
	v, err := ck.DecryptU16(l.Enc)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

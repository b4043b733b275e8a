// Package testkit builds a throwaway Engine/Encryptor/Decryptor triple
// for internal package tests that need white-box access to an *heint.Engine
// directly, without going through the public ClientKey/ServerKey split.
// Every _test.go file under internal/ that needs to encrypt or decrypt
// values uses this instead of duplicating key generation.
package testkit

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"

	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/strmodel"
)

// Keys bundles the engine and the encrypt/decrypt pair tests drive
// directly, mirroring the key material clientkey.go generates for the
// public API.
type Keys struct {
	Engine *heint.Engine
	Enc    *rlwe.Encryptor
	Dec    *rlwe.Decryptor
}

// New generates a fresh key set, including the same power-of-two Galois
// keys clientkey.go generates, so every gate in internal/heint is
// exercisable.
func New() (*Keys, error) {
	params, err := heint.Params()
	if err != nil {
		return nil, fmt.Errorf("testkit: %w", err)
	}

	kgen := rlwe.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)

	n := params.N()
	var galKeys []*rlwe.GaloisKey
	for d := 1; d < n; d *= 2 {
		el := params.GaloisElement(d)
		galKeys = append(galKeys, kgen.GenGaloisKeyNew(el, sk))
	}
	evk := rlwe.NewMemEvaluationKeySet(rlk, galKeys...)

	return &Keys{
		Engine: heint.NewEngine(params, evk),
		Enc:    rlwe.NewEncryptor(params, pk),
		Dec:    rlwe.NewDecryptor(params, sk),
	}, nil
}

// EncryptString builds an EncString of s plus padding extra encrypted NUL
// bytes, the same shape ClientKey.Encrypt produces, without this
// package's test callers needing to reimplement the byte loop.
func (k *Keys) EncryptString(s string, padding int) (strmodel.EncString, error) {
	n := len(s) + padding
	chars := make(heint.Chars, n)
	for i := 0; i < len(s); i++ {
		b, err := heint.EncryptByte(k.Enc, k.Engine, s[i])
		if err != nil {
			return strmodel.EncString{}, err
		}
		chars[i] = b
	}
	for i := len(s); i < n; i++ {
		b, err := heint.EncryptByte(k.Enc, k.Engine, 0)
		if err != nil {
			return strmodel.EncString{}, err
		}
		chars[i] = b
	}
	return strmodel.EncString{Chars: chars, Padded: padding > 0}, nil
}

// DecryptString recovers the plaintext an EncString carries, stopping at
// the first NUL when it is Padded (NUL is never a legal non-padding
// byte).
func (k *Keys) DecryptString(s strmodel.EncString) (string, error) {
	out := make([]byte, 0, s.Cap())
	for _, c := range s.Chars {
		b, err := heint.DecryptByte(k.Dec, k.Engine, c)
		if err != nil {
			return "", err
		}
		if b == 0 && s.Padded {
			break
		}
		out = append(out, b)
	}
	return string(out), nil
}

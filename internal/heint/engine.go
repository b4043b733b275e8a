// Package heint implements the bit-sliced radix ciphertext primitives that
// the oblivious string algorithms in this module are built on.
//
// A Bit is a single encrypted boolean; Byte, U16 and Chars compose Bits into
// the byte- and multi-byte-wide ciphertexts the rest of the package tree
// operates on. The backing scheme is BGV (github.com/tuneinsight/lattigo),
// run with plaintext modulus 2, which turns BGV's native ring arithmetic
// into boolean algebra: XOR is addition, AND is multiplication, NOT is
// 1-x. This is the "radix-integer ciphertext type supporting variable
// block count" collaborator the rest of the module assumes.
package heint

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Params returns the single BGV parameter set every Engine in this module
// runs under. LogN/LogQ/LogP were chosen for a comfortable multiplicative
// depth budget for the longest boolean chains in the pattern engine
// (shifted-compare folds). No gate in this package relinearizes, rescales
// or bootstraps a ciphertext, so this parameter set's depth budget is the
// whole budget any chain of gates has.
func Params() (bgv.Parameters, error) {
	params, err := bgv.NewParametersFromLiteral(bgv.ParametersLiteral{
		LogN:             13,
		LogQ:             []int{56, 39, 39},
		LogP:             []int{55},
		PlaintextModulus: 2,
	})
	if err != nil {
		return bgv.Parameters{}, fmt.Errorf("heint: building bgv parameters: %w", err)
	}
	return params, nil
}

// Engine evaluates gates over Bit/Byte/U16/Chars ciphertexts.
//
// An Engine holds only the parameters, an encoder and an Evaluator built
// from the public evaluation key set; it carries no secret key, so it can
// run every gate in this package but can decrypt nothing, matching spec.md
// §1's "server ... possesses only the evaluation key". ClientKey keeps its
// Encryptor/Decryptor beside its Engine, and the ServerKey it hands out
// shares that same Engine.
type Engine struct {
	Params    bgv.Parameters
	Encoder   *bgv.Encoder
	Evaluator *bgv.Evaluator
}

// NewEngine builds an Engine from a public evaluation key set. No gate in
// this package rotates slots, so Galois keys in the set go unused: the
// shifters (ShiftLeft/ShiftRight) move whole Byte ciphertexts between
// positions with multiplexers and work with or without them.
func NewEngine(params bgv.Parameters, evk rlwe.EvaluationKeySet) *Engine {
	return &Engine{
		Params:    params,
		Encoder:   bgv.NewEncoder(params),
		Evaluator: bgv.NewEvaluator(params, evk),
	}
}

// WithKey returns a copy of the Engine bound to a fresh Evaluator over evk.
// ClientKey.ServerKey does not use it: the ServerKey shares the
// ClientKey's own Engine.
func (e *Engine) WithKey(evk rlwe.EvaluationKeySet) *Engine {
	return NewEngine(e.Params, evk)
}

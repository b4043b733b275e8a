package heint

import (
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// Bit is a single encrypted boolean (a BGV ciphertext over plaintext
// modulus 2). Its value is fully hidden; only Params.LogN/LogQ (public)
// bound the noise/depth budget available to it.
type Bit struct {
	ct *rlwe.Ciphertext
}

// CT exposes the underlying ciphertext for callers that need the raw
// lattigo value.
func (b Bit) CT() *rlwe.Ciphertext { return b.ct }

func bitFromCT(ct *rlwe.Ciphertext) Bit { return Bit{ct: ct} }

// TrivialBit produces a cheaply-encrypted constant: a "trivial ciphertext"
// per the glossary, used as identity/zero input to the gates below rather
// than a fresh client-encrypted value.
func (e *Engine) TrivialBit(v bool) Bit {
	val := int64(0)
	if v {
		val = 1
	}
	pt := bgvPlaintext(e, []int64{val})
	ct := e.Evaluator.ShallowCopy().NewCiphertext(pt.Level(), 1)
	_ = e.Evaluator.Add(ct, pt, ct)
	return Bit{ct: ct}
}

// Xor evaluates encrypted XOR: a+b-2ab (mod 2, this collapses to a+b,
// since 2ab vanishes mod 2; the explicit subtraction is kept so the
// circuit is correct regardless of which modulus Params() is configured
// with).
func (e *Engine) Xor(a, b Bit) Bit {
	sum := e.Evaluator.AddNew(a.ct, b.ct)
	prod := e.Evaluator.MulNew(a.ct, b.ct)
	twoProd := e.Evaluator.AddNew(prod, prod)
	out := e.Evaluator.SubNew(sum, twoProd)
	return Bit{ct: out}
}

// Or evaluates encrypted OR: a+b-ab.
func (e *Engine) Or(a, b Bit) Bit {
	sum := e.Evaluator.AddNew(a.ct, b.ct)
	prod := e.Evaluator.MulNew(a.ct, b.ct)
	out := e.Evaluator.SubNew(sum, prod)
	return Bit{ct: out}
}

// And evaluates encrypted AND: ab.
func (e *Engine) And(a, b Bit) Bit {
	return Bit{ct: e.Evaluator.MulNew(a.ct, b.ct)}
}

// Not evaluates encrypted NOT: 1-a.
func (e *Engine) Not(a Bit) Bit {
	neg := e.Evaluator.NegNew(a.ct)
	out := e.Evaluator.AddScalarNew(neg, 1)
	return Bit{ct: out}
}

// MuxBit is the if_then_else multiplexer specialized to Bit: cond*a +
// (1-cond)*b, folded as b + cond*(a-b) to spend one multiplication instead
// of two.
func (e *Engine) MuxBit(cond Bit, a, b Bit) Bit {
	diff := e.Evaluator.SubNew(a.ct, b.ct)
	gated := e.Evaluator.MulNew(cond.ct, diff)
	out := e.Evaluator.AddNew(b.ct, gated)
	return Bit{ct: out}
}

func bgvPlaintext(e *Engine, values []int64) *rlwe.Plaintext {
	pt := rlwe.NewPlaintext(e.Params, e.Params.MaxLevel())
	_ = e.Encoder.Encode(values, pt)
	return pt
}

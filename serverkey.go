package fhestr

import (
	"github.com/fhestr/fhestr/internal/cmpeq"
	"github.com/fhestr/fhestr/internal/heint"
	"github.com/fhestr/fhestr/internal/pattern"
	"github.com/fhestr/fhestr/internal/replace"
	"github.com/fhestr/fhestr/internal/split"
	"github.com/fhestr/fhestr/internal/transform"
	"github.com/fhestr/fhestr/internal/workpool"
)

// ServerKey is the public handle every oblivious string operation in
// this package runs against: it holds only the published evaluation key
// (via its Engine), never the secret key, matching spec.md §1's "server
// ... possesses only the evaluation key". Its methods never mutate their
// EncString arguments (spec.md §5).
type ServerKey struct {
	engine *heint.Engine
	pool   *workpool.Pool
}

// Len is spec.md §4.1's len.
func (sk *ServerKey) Len(s EncString) Length {
	return cmpeq.Len(sk.engine, sk.pool, s)
}

// IsEmpty is spec.md §4.1's is_empty.
func (sk *ServerKey) IsEmpty(s EncString) IsEmptyResult {
	return cmpeq.IsEmpty(sk.engine, sk.pool, s)
}

// Eq is spec.md §4.3's eq.
func (sk *ServerKey) Eq(a, b EncString) heint.Bit {
	return cmpeq.Eq(sk.engine, sk.pool, a, b)
}

// Ne is spec.md §4.3's ne.
func (sk *ServerKey) Ne(a, b EncString) heint.Bit {
	return cmpeq.Ne(sk.engine, sk.pool, a, b)
}

// Lt is spec.md §4.3's lexicographic <.
func (sk *ServerKey) Lt(a, b EncString) heint.Bit {
	return cmpeq.Lt(sk.engine, sk.pool, a, b)
}

// Le is spec.md §4.3's lexicographic <=.
func (sk *ServerKey) Le(a, b EncString) heint.Bit {
	return cmpeq.Le(sk.engine, sk.pool, a, b)
}

// Gt is spec.md §4.3's lexicographic >.
func (sk *ServerKey) Gt(a, b EncString) heint.Bit {
	return cmpeq.Gt(sk.engine, sk.pool, a, b)
}

// Ge is spec.md §4.3's lexicographic >=.
func (sk *ServerKey) Ge(a, b EncString) heint.Bit {
	return cmpeq.Ge(sk.engine, sk.pool, a, b)
}

// EqIgnoreCase is spec.md §4.3's eq_ignore_case.
func (sk *ServerKey) EqIgnoreCase(a, b EncString) heint.Bit {
	return cmpeq.EqIgnoreCase(sk.engine, sk.pool, a, b)
}

// ToLowercase is spec.md §4.5's to_lowercase.
func (sk *ServerKey) ToLowercase(s EncString) EncString {
	return transform.ToLowercase(sk.engine, sk.pool, s)
}

// ToUppercase is spec.md §4.5's to_uppercase.
func (sk *ServerKey) ToUppercase(s EncString) EncString {
	return transform.ToUppercase(sk.engine, sk.pool, s)
}

// Contains is spec.md §4.4's contains.
func (sk *ServerKey) Contains(s, p EncString) heint.Bit {
	return pattern.Contains(sk.engine, sk.pool, s, p)
}

// StartsWith is spec.md §4.4's starts_with.
func (sk *ServerKey) StartsWith(s, p EncString) heint.Bit {
	return pattern.StartsWith(sk.engine, sk.pool, s, p)
}

// EndsWith is spec.md §4.4's ends_with.
func (sk *ServerKey) EndsWith(s, p EncString) heint.Bit {
	return pattern.EndsWith(sk.engine, sk.pool, s, p)
}

// Find is spec.md §4.4's find: argmin-i of every feasible alignment.
func (sk *ServerKey) Find(s, p EncString) FindResult {
	return pattern.Find(sk.engine, sk.pool, s, p)
}

// Rfind is spec.md §4.4's rfind: argmax-i, with the both-padded
// empty-pattern post-pass spec.md §9 describes.
func (sk *ServerKey) Rfind(s, p EncString) FindResult {
	return pattern.Rfind(sk.engine, sk.pool, s, p)
}

// StripPrefix is spec.md §4.4's strip_prefix: (suffix, found).
func (sk *ServerKey) StripPrefix(s, p EncString) (EncString, heint.Bit) {
	return pattern.StripPrefix(sk.engine, sk.pool, s, p)
}

// StripSuffix is spec.md §4.4's strip_suffix: (result, found).
func (sk *ServerKey) StripSuffix(s, p EncString) (EncString, heint.Bit) {
	return pattern.StripSuffix(sk.engine, sk.pool, s, p)
}

// Concat is spec.md §4.5's concat.
func (sk *ServerKey) Concat(a, b EncString) EncString {
	return transform.Concat(sk.engine, sk.pool, a, b)
}

// Repeat is spec.md §4.5's repeat, for a clear or encrypted count bounded
// by a public max.
func (sk *ServerKey) Repeat(s EncString, n UIntArg) EncString {
	return transform.Repeat(sk.engine, sk.pool, s, n)
}

// TrimStart is spec.md §4.5's trim_start.
func (sk *ServerKey) TrimStart(s EncString) EncString {
	return transform.TrimStart(sk.engine, sk.pool, s)
}

// TrimEnd is spec.md §4.5's trim_end.
func (sk *ServerKey) TrimEnd(s EncString) EncString {
	return transform.TrimEnd(sk.engine, sk.pool, s)
}

// Trim is spec.md §4.5's trim (trim_end . trim_start).
func (sk *ServerKey) Trim(s EncString) EncString {
	return transform.Trim(sk.engine, sk.pool, s)
}

// Replace is spec.md §4.7's replace: every occurrence of from substituted
// with to.
func (sk *ServerKey) Replace(s, from, to EncString) EncString {
	return replace.Replace(sk.engine, sk.pool, s, from, to)
}

// Replacen is spec.md §4.7's replacen: only the first n occurrences
// substituted.
func (sk *ServerKey) Replacen(s, from, to EncString, n UIntArg) EncString {
	return replace.Replacen(sk.engine, sk.pool, s, from, to, n)
}

// SplitOnce is the supplemented split_once convenience op (SPEC_FULL.md
// §9): (left, right, found) for the first occurrence of pat in s.
func (sk *ServerKey) SplitOnce(s, pat EncString) (EncString, EncString, heint.Bit) {
	return split.Once(sk.engine, sk.pool, s, pat)
}

// RSplitOnce is the supplemented rsplit_once convenience op: (left,
// right, found) for the last occurrence of pat in s.
func (sk *ServerKey) RSplitOnce(s, pat EncString) (EncString, EncString, heint.Bit) {
	return split.ROnce(sk.engine, sk.pool, s, pat)
}

// SplitIterator is the stateful handle every split-family constructor
// returns (spec.md §4.6): the caller drives Next exactly MaxCalls times.
type SplitIterator struct {
	it *split.Iterator
}

// MaxCalls is the public bound on how many times Next must be called to
// observe every real segment.
func (si *SplitIterator) MaxCalls() int { return si.it.MaxCalls }

// Next yields the iterator's next (segment, present) pair. sk is
// accepted for API symmetry with the rest of the server surface; the
// iterator already carries the engine/pool it was constructed with.
func (si *SplitIterator) Next(sk *ServerKey) (EncString, heint.Bit) {
	return si.it.Next()
}

// NewSplit is spec.md §4.6's split iterator constructor.
func (sk *ServerKey) NewSplit(s, pat EncString) *SplitIterator {
	return &SplitIterator{it: split.Split(sk.engine, sk.pool, s, pat)}
}

// NewRSplit is spec.md §4.6's rsplit iterator constructor.
func (sk *ServerKey) NewRSplit(s, pat EncString) *SplitIterator {
	return &SplitIterator{it: split.RSplit(sk.engine, sk.pool, s, pat)}
}

// NewSplitOnce returns an iterator bounded to at most two Next calls,
// the iterator-shaped counterpart of SplitOnce.
func (sk *ServerKey) NewSplitOnce(s, pat EncString) *SplitIterator {
	it := split.SplitN(sk.engine, sk.pool, s, pat, UIntArg{IsClear: true, Clear: 2})
	it.MaxCalls = 2
	return &SplitIterator{it: it}
}

// NewRSplitOnce returns an iterator bounded to at most two Next calls,
// the iterator-shaped counterpart of RSplitOnce.
func (sk *ServerKey) NewRSplitOnce(s, pat EncString) *SplitIterator {
	it := split.RSplitN(sk.engine, sk.pool, s, pat, UIntArg{IsClear: true, Clear: 2})
	it.MaxCalls = 2
	return &SplitIterator{it: it}
}

// NewSplitN is spec.md §4.6's splitn iterator constructor.
func (sk *ServerKey) NewSplitN(s, pat EncString, n UIntArg) *SplitIterator {
	return &SplitIterator{it: split.SplitN(sk.engine, sk.pool, s, pat, n)}
}

// NewRSplitN is spec.md §4.6's rsplitn iterator constructor.
func (sk *ServerKey) NewRSplitN(s, pat EncString, n UIntArg) *SplitIterator {
	return &SplitIterator{it: split.RSplitN(sk.engine, sk.pool, s, pat, n)}
}

// NewSplitTerminator is spec.md §4.6's split_terminator iterator
// constructor.
func (sk *ServerKey) NewSplitTerminator(s, pat EncString) *SplitIterator {
	return &SplitIterator{it: split.SplitTerminator(sk.engine, sk.pool, s, pat)}
}

// NewRSplitTerminator is spec.md §4.6's rsplit_terminator iterator
// constructor.
func (sk *ServerKey) NewRSplitTerminator(s, pat EncString) *SplitIterator {
	return &SplitIterator{it: split.RSplitTerminator(sk.engine, sk.pool, s, pat)}
}

// NewSplitInclusive is spec.md §4.6's split_inclusive iterator
// constructor.
func (sk *ServerKey) NewSplitInclusive(s, pat EncString) *SplitIterator {
	return &SplitIterator{it: split.SplitInclusive(sk.engine, sk.pool, s, pat)}
}

// NewSplitAsciiWhitespace is spec.md §4.6's split_ascii_whitespace
// iterator constructor.
func (sk *ServerKey) NewSplitAsciiWhitespace(s EncString) *SplitIterator {
	return &SplitIterator{it: split.SplitAsciiWhitespace(sk.engine, sk.pool, s)}
}

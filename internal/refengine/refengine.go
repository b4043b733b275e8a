// Package refengine is SPEC_FULL.md §11's plaintext oracle: the
// Clear(op, ...) behavior of spec.md §8's testable properties. It never
// touches a ciphertext type and never participates in ServerKey's
// oblivious code paths. cmd/fhestr-golden computes its golden vectors
// from it; the ciphertext tests in this module assert literal expected
// values and do not call it.
package refengine

import "strings"

const asciiWhitespace = " \t\n\f\r"

// Contains, StartsWith, EndsWith, Find, Rfind, the strip and trim
// families, EqIgnoreCase, ToLower, ToUpper and Replace/Replacen all wrap a
// direct stdlib equivalent that already matches the plaintext ASCII
// semantics spec.md §8 tests against; only the split family, whose exact
// edge-case behavior needs it, is a purpose-built reference.

// Contains, StartsWith, EndsWith are direct strings aliases kept here so
// test code reads uniformly as refengine.X rather than mixing packages.
func Contains(s, p string) bool    { return strings.Contains(s, p) }
func StartsWith(s, p string) bool  { return strings.HasPrefix(s, p) }
func EndsWith(s, p string) bool    { return strings.HasSuffix(s, p) }
func Find(s, p string) (int, bool) { i := strings.Index(s, p); return i, i >= 0 }
func Rfind(s, p string) (int, bool) {
	i := strings.LastIndex(s, p)
	return i, i >= 0
}

// StripPrefix and StripSuffix mirror spec.md §6's (result, found) shape.
func StripPrefix(s, p string) (string, bool) { return strings.CutPrefix(s, p) }
func StripSuffix(s, p string) (string, bool) { return strings.CutSuffix(s, p) }

// EqIgnoreCase, ToLower, ToUpper are safe over ASCII-only input, which is
// the only alphabet this module ever encrypts.
func EqIgnoreCase(a, b string) bool { return strings.EqualFold(a, b) }
func ToLower(s string) string       { return strings.ToLower(s) }
func ToUpper(s string) string       { return strings.ToUpper(s) }

// TrimStart, TrimEnd, Trim use spec.md §4.5's five-byte ASCII whitespace
// set (space, tab, LF, FF, CR).
func TrimStart(s string) string { return strings.TrimLeft(s, asciiWhitespace) }
func TrimEnd(s string) string   { return strings.TrimRight(s, asciiWhitespace) }
func Trim(s string) string      { return strings.Trim(s, asciiWhitespace) }

// Replace and Replacen delegate to the standard library, whose "old ==
// """ behavior (insert new at the start, end, and between every byte)
// already matches spec.md §4.7's from-empty edge case exactly.
func Replace(s, from, to string) string         { return strings.ReplaceAll(s, from, to) }
func Replacen(s, from, to string, n int) string { return strings.Replace(s, from, to, n) }

// splitEmpty is the degenerate "" pattern: every split produces one
// segment per character plus an empty segment at each end, spec.md §4.6
// step 4's "empty-pattern compensation" in plaintext form.
func splitEmpty(s string) []string {
	out := make([]string, 0, len(s)+2)
	out = append(out, "")
	for i := 0; i < len(s); i++ {
		out = append(out, string(s[i]))
	}
	out = append(out, "")
	return out
}

func reverseCopy(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// Split is spec.md §4.6's split, collected eagerly.
func Split(s, pat string) []string {
	if pat == "" {
		return splitEmpty(s)
	}
	var out []string
	rest := s
	for {
		i := strings.Index(rest, pat)
		if i < 0 {
			out = append(out, rest)
			return out
		}
		out = append(out, rest[:i])
		rest = rest[i+len(pat):]
	}
}

// RSplit yields the same segments as Split, in reverse order.
func RSplit(s, pat string) []string { return reverseCopy(Split(s, pat)) }

// SplitN caps the number of real splits at n-1, the final segment
// absorbing whatever remains.
func SplitN(s, pat string, n int) []string {
	if n <= 0 {
		return nil
	}
	if pat == "" {
		full := splitEmpty(s)
		if n >= len(full) {
			return full
		}
		out := append([]string{}, full[:n-1]...)
		out = append(out, strings.Join(full[n-1:], ""))
		return out
	}
	var out []string
	rest := s
	for i := 0; i < n-1; i++ {
		idx := strings.Index(rest, pat)
		if idx < 0 {
			break
		}
		out = append(out, rest[:idx])
		rest = rest[idx+len(pat):]
	}
	out = append(out, rest)
	return out
}

// RSplitN caps the number of real splits at n-1, taken from the right.
func RSplitN(s, pat string, n int) []string {
	if n <= 0 {
		return nil
	}
	if pat == "" {
		rev := reverseCopy(splitEmpty(s))
		if n >= len(rev) {
			return rev
		}
		out := append([]string{}, rev[:n-1]...)
		out = append(out, strings.Join(reverseCopy(rev[n-1:]), ""))
		return out
	}
	var out []string
	rest := s
	for i := 0; i < n-1; i++ {
		idx := strings.LastIndex(rest, pat)
		if idx < 0 {
			break
		}
		out = append(out, rest[idx+len(pat):])
		rest = rest[:idx]
	}
	out = append(out, rest)
	return out
}

// SplitTerminator is Split with a single trailing empty segment
// suppressed.
func SplitTerminator(s, pat string) []string {
	full := Split(s, pat)
	if len(full) > 0 && full[len(full)-1] == "" {
		full = full[:len(full)-1]
	}
	return full
}

// RSplitTerminator is SplitTerminator's segments in reverse order.
func RSplitTerminator(s, pat string) []string { return reverseCopy(SplitTerminator(s, pat)) }

// SplitInclusive keeps the matched delimiter attached to the end of
// every non-final segment.
func SplitInclusive(s, pat string) []string {
	if pat == "" {
		return splitEmpty(s)
	}
	var out []string
	rest := s
	for {
		idx := strings.Index(rest, pat)
		if idx < 0 {
			if rest != "" || len(out) == 0 {
				out = append(out, rest)
			}
			return out
		}
		out = append(out, rest[:idx+len(pat)])
		rest = rest[idx+len(pat):]
	}
}

// SplitAsciiWhitespace splits on runs of spec.md §4.5's five-byte ASCII
// whitespace set, producing no empty segments.
func SplitAsciiWhitespace(s string) []string {
	isWS := func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r'
	}
	var out []string
	i := 0
	for i < len(s) {
		for i < len(s) && isWS(s[i]) {
			i++
		}
		start := i
		for i < len(s) && !isWS(s[i]) {
			i++
		}
		if i > start {
			out = append(out, s[start:i])
		}
	}
	return out
}

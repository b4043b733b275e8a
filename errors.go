package fhestr

import "errors"

// ErrBadInput is the sentinel spec.md §7's "Input validation" error class
// wraps. It is returned for invalid plaintext on encryption (non-ASCII
// bytes, NUL bytes) by ClientKey.Encrypt, and for a value above its
// public max by ClientKey.EncryptBoundedU16. ServerKey operations have no
// error result: they do not check that an EncString was encrypted under
// the key the ServerKey came from.
var ErrBadInput = errors.New("fhestr: bad input")

// ErrCapacityExceeded is spec.md §7's "Capacity overflow" error class. No
// function in this module returns it: Repeat and the other ServerKey
// operations have no error result and do not check their output capacity
// against the 16-bit length budget this module's U16 arithmetic assumes.
var ErrCapacityExceeded = errors.New("fhestr: capacity exceeded")

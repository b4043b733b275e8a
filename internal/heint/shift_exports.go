package heint

// ConstShiftLeft shifts xs left by a *public* constant d, used whenever a
// caller already knows the shift amount (e.g. a clear repeat count) and
// does not need the barrel-shifter form of ShiftLeft.
func (e *Engine) ConstShiftLeft(xs Chars, d int) Chars { return e.constShiftLeft(xs, d) }

// ConstShiftRight shifts xs right by a *public* constant d.
func (e *Engine) ConstShiftRight(xs Chars, d int) Chars { return e.constShiftRight(xs, d) }

package canonical

import "strconv"

// Str, Int, Uint, Bl and Arr are convenience constructors for assembling a
// Value tree programmatically (as C7/C8 do when building a signing
// pre-image), without forcing every caller to round-trip through JSON text
// first.
func Str(s string) Value { return String(s) }
func Int(n int64) Value  { return Number(strconv.FormatInt(n, 10)) }

// Uint constructs a Number from the full unsigned 64-bit range, for token
// amounts and other fields that can exceed math.MaxInt64.
func Uint(n uint64) Value { return Number(strconv.FormatUint(n, 10)) }
func Bl(b bool) Value     { return Bool(b) }
func Arr(vs ...Value) Value {
	a := make(Array, len(vs))
	copy(a, vs)
	return a
}

package canonical

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
)

// topLevelSkipKeys are dropped from the canonical form, but only when they
// appear in the outermost object - spec §9 is explicit that this exception
// is depth-zero only, and a recursive serializer that forgets to thread the
// depth flag silently corrupts every nested signature.
var topLevelSkipKeys = map[string]bool{
	"signature":  true,
	"signatures": true,
	"fees":       true,
}

// hashedKeys identifies object keys whose string value is replaced, before
// emission, by the hex of SHA-256 over its UTF-8 bytes.
var hashedKeys = map[string]bool{
	"raw":  true,
	"hash": true,
	"enc":  true,
}

// Serialize produces the canonical UTF-8 signing pre-image for v.
func Serialize(v Value) string {
	var b strings.Builder
	serializeInto(&b, v, true)
	return b.String()
}

func serializeInto(b *strings.Builder, v Value, topLevel bool) {
	switch t := v.(type) {
	case nullValue:
		// empty string
	case Bool:
		if t {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case Number:
		b.WriteString(string(t))
	case String:
		b.WriteString(string(t))
	case Array:
		for i, elem := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			serializeInto(b, elem, false)
		}
	case *Object:
		first := true
		for _, key := range t.keys {
			if topLevel && topLevelSkipKeys[key] {
				continue
			}
			if !first {
				b.WriteByte('|')
			}
			first = false
			b.WriteString(key)
			b.WriteByte(':')
			val, _ := t.Get(key)
			if hashedKeys[key] {
				b.WriteString(hashFieldValue(val))
			} else {
				serializeInto(b, val, false)
			}
		}
	default:
		// Null value or unreachable; treated as empty per the Null rule.
	}
}

// ValidateHashableFields walks v and checks that every "raw"/"hash"/"enc"
// key, at any depth, holds a string value - the only shape hashFieldValue
// can hash meaningfully. Serialize itself has no ctx to attach an i18n
// error to, so callers that accept host-supplied documents (C8's fee
// digest, the CLI's canon inspector) validate up front instead.
func ValidateHashableFields(ctx context.Context, v Value) error {
	switch t := v.(type) {
	case Array:
		for _, elem := range t {
			if err := ValidateHashableFields(ctx, elem); err != nil {
				return err
			}
		}
	case *Object:
		for _, key := range t.keys {
			val, _ := t.Get(key)
			if hashedKeys[key] {
				if _, ok := val.(String); !ok {
					return sovi18n.NewError(ctx, msgs.MsgHashFieldNotString, key)
				}
			}
			if err := ValidateHashableFields(ctx, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func hashFieldValue(v Value) string {
	s, ok := v.(String)
	if !ok {
		// Non-string values under raw/hash/enc keys are not produced by
		// any component in this system; hash the value's ordinary
		// serialization rather than panic, matching the "tree-shaped
		// data, no exotic inputs" assumption in spec §9.
		sum := sha256.Sum256([]byte(Serialize(v)))
		return hex.EncodeToString(sum[:])
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

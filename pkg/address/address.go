package address

import (
	"context"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// Qualify computes base58check(decode_base58(verkeyBase58)) and prepends
// the "pay:sov:" qualifier. Fails with MalformedStructure if verkeyBase58
// is not valid base58 or does not decode to exactly 32 bytes.
func Qualify(ctx context.Context, verkeyBase58 string) (string, error) {
	if !isValidBase58(verkeyBase58) {
		return "", sovi18n.NewError(ctx, msgs.MsgInvalidBase58, verkeyBase58)
	}
	verkey := base58.Decode(verkeyBase58)
	if len(verkey) != sovtypes.VerkeyLen {
		return "", sovi18n.NewError(ctx, msgs.MsgWrongVerkeyLength, len(verkey))
	}
	unqualified := encodeCheck(verkey)
	return sovtypes.PaymentAddressQualifier + unqualified, nil
}

// wrapDecodeCheckErr maps decodeCheck's sentinel errors to the specific
// message each one names, falling back to the generic payload-decode
// message for anything else (a checksum-length short-read, say).
func wrapDecodeCheckErr(ctx context.Context, input string, err error) error {
	switch {
	case errors.Is(err, errInvalidBase58):
		return sovi18n.NewError(ctx, msgs.MsgInvalidBase58, input)
	case errors.Is(err, errChecksumMismatch):
		return sovi18n.NewError(ctx, msgs.MsgChecksumMismatch, input)
	default:
		return sovi18n.WrapError(ctx, msgs.MsgInvalidAddressPayload, err)
	}
}

// Unqualify strips the 8-byte "pay:sov:" prefix. The result still contains
// the checksum (it is the "unqualified address", not the raw verkey).
func Unqualify(qualifiedAddress string) string {
	return strings.TrimPrefix(qualifiedAddress, sovtypes.PaymentAddressQualifier)
}

// VerkeyOf validates a qualified payment address and returns its 32-byte
// verkey in base58. Validation: starts with "pay:sov:", the remainder
// base58check-decodes, and the decoded payload is exactly 32 bytes.
func VerkeyOf(ctx context.Context, qualifiedAddress string) (string, error) {
	if !strings.HasPrefix(qualifiedAddress, sovtypes.PaymentAddressQualifier) {
		return "", sovi18n.NewError(ctx, msgs.MsgMissingAddressPrefix, qualifiedAddress, sovtypes.PaymentAddressQualifier)
	}
	unqualified := Unqualify(qualifiedAddress)
	verkey, err := decodeCheck(unqualified)
	if err != nil {
		return "", wrapDecodeCheckErr(ctx, unqualified, err)
	}
	if len(verkey) != sovtypes.VerkeyLen {
		return "", sovi18n.NewError(ctx, msgs.MsgWrongVerkeyLength, len(verkey))
	}
	return base58.Encode(verkey), nil
}

// ValidateUnqualified validates an unqualified (checksum-bearing) address
// string directly, without requiring the "pay:sov:" prefix, for callers that
// hold only the unqualified form. The source codec and reply parsers in this
// module do not call it; they pass unqualified addresses through unchecked.
func ValidateUnqualified(ctx context.Context, unqualified string) error {
	verkey, err := decodeCheck(unqualified)
	if err != nil {
		return wrapDecodeCheckErr(ctx, unqualified, err)
	}
	if len(verkey) != sovtypes.VerkeyLen {
		return sovi18n.NewError(ctx, msgs.MsgWrongVerkeyLength, len(verkey))
	}
	return nil
}

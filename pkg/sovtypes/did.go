package sovtypes

import (
	"context"
	"unicode"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/sovconf"
)

// ValidDIDLengths are the accepted DID lengths, in UTF-8 code points.
// It defaults to sovconf.DIDConfigDefaults and can be replaced by a host at
// startup via SetDIDConfig; ValidateDID always reads this package var, never
// the config struct directly.
var ValidDIDLengths = append([]int(nil), sovconf.DIDConfigDefaults.AllowedLengths...)

// SetDIDConfig lets a host override C4's DID-length acceptance policy at
// startup, in place of the hardcoded 20/21 default.
func SetDIDConfig(cfg sovconf.DIDConfig) {
	ValidDIDLengths = append([]int(nil), cfg.AllowedLengths...)
}

// ValidateDID checks that did has one of the accepted lengths (in code
// points, not bytes) and consists entirely of alphanumeric code points.
func ValidateDID(ctx context.Context, did string) error {
	runes := []rune(did)
	validLength := false
	for _, l := range ValidDIDLengths {
		if len(runes) == l {
			validLength = true
			break
		}
	}
	if !validLength {
		return sovi18n.NewError(ctx, msgs.MsgInvalidDIDLength, len(runes))
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return sovi18n.NewError(ctx, msgs.MsgInvalidDIDChar, string(r))
		}
	}
	return nil
}

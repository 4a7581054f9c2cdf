package address

import (
	"context"
	"encoding/json"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
)

// createAddressConfig is the {} or {"seed": <32 bytes utf8|base64|hex>}
// config object create_address accepts.
type createAddressConfig struct {
	Seed string `json:"seed"`
}

// CreateAddress implements create_address: it decodes configJSON (an empty
// object or one carrying a "seed"), asks gen to derive or generate a
// keypair from the decoded seed, and qualifies the resulting verkey into a
// "pay:sov:" address. gen is host-owned (spec §1's "does not manage keys");
// this function only translates between the wire config and the
// KeyGenerator contract.
func CreateAddress(ctx context.Context, gen wallet.KeyGenerator, configJSON string) (string, error) {
	var cfg createAddressConfig
	if configJSON != "" {
		if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
			return "", sovi18n.WrapError(ctx, msgs.MsgInvalidAddressPayload, err)
		}
	}

	seed, err := wallet.DecodeSeedConfig(cfg.Seed)
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgInvalidAddressPayload, err)
	}

	verkey, err := gen.GenerateKey(ctx, seed)
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgInvalidAddressPayload, err)
	}

	return Qualify(ctx, verkey)
}

package sovtoken

import (
	"context"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/envelope"
	"github.com/kaleido-io/sovtoken-core/pkg/source"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// GetSourcesOperation is the wire shape of a GET_UTXO request.
type GetSourcesOperation struct {
	Type    string `json:"type"`
	Address string `json:"address"`
	From    *int64 `json:"from,omitempty"`
}

// BuildGetSourcesRequest implements build_get_sources_request: a GET_UTXO
// query for every unspent source owned by address. from is a pagination
// cursor; sovtypes.NoNextCursor means "start from the beginning" and is
// omitted from the wire form.
func BuildGetSourcesRequest(ctx context.Context, submitterDID string, qualifiedAddress string, from int64) (string, error) {
	unqualified, err := stripAddress(ctx, qualifiedAddress)
	if err != nil {
		return "", err
	}

	op := GetSourcesOperation{Type: sovtypes.TxnTypeGetUTXO, Address: unqualified}
	if from != sovtypes.NoNextCursor {
		op.From = &from
	}

	env, err := envelope.Wrap(ctx, op, submitterDID, qualifiedAddress)
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// MintOperation is the wire shape of a MINT_PUBLIC request: outputs only,
// unsigned - minting authority is established by the submitter DID's
// ledger role, not by a per-output signature.
type MintOperation struct {
	Type    string            `json:"type"`
	Outputs []sovtypes.Output `json:"outputs"`
	Extra   string            `json:"extra,omitempty"`
}

// BuildMintRequest implements build_mint_request: strips every output's
// address qualifier and wraps the outputs in a MINT_PUBLIC operation under
// submitterDID.
func BuildMintRequest(ctx context.Context, submitterDID string, outputs []sovtypes.Output, extra string) (string, error) {
	if len(outputs) == 0 {
		return "", sovi18n.NewError(ctx, msgs.MsgNoOutputs)
	}
	stripped, err := stripOutputs(ctx, outputs)
	if err != nil {
		return "", err
	}

	op := MintOperation{Type: sovtypes.TxnTypeMintPublic, Outputs: stripped, Extra: extra}
	env, err := envelope.Wrap(ctx, op, submitterDID, "")
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// SetFeesOperation is the wire shape of a SET_FEES request: a flat map of
// ledger txn-type codes to their new fee amount.
type SetFeesOperation struct {
	Type string                         `json:"type"`
	Fees map[string]sovtypes.TokenAmount `json:"fees"`
}

// BuildSetFeesRequest implements build_set_fees_request.
func BuildSetFeesRequest(ctx context.Context, submitterDID string, fees map[string]sovtypes.TokenAmount) (string, error) {
	if len(fees) == 0 {
		return "", sovi18n.NewError(ctx, msgs.MsgNoFees)
	}
	op := SetFeesOperation{Type: sovtypes.TxnTypeSetFees, Fees: fees}
	env, err := envelope.Wrap(ctx, op, submitterDID, "")
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// GetFeesOperation is the wire shape of a GET_FEES request - a bare type tag.
type GetFeesOperation struct {
	Type string `json:"type"`
}

// BuildGetFeesRequest implements build_get_fees_request.
func BuildGetFeesRequest(ctx context.Context, submitterDID string) (string, error) {
	op := GetFeesOperation{Type: sovtypes.TxnTypeGetFees}
	env, err := envelope.Wrap(ctx, op, submitterDID, "")
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// GetTxnOperation is the wire shape of a GET_TXN request: look up a ledger
// transaction by its sequence number on the domain ledger.
type GetTxnOperation struct {
	Type     string        `json:"type"`
	Data     sovtypes.SeqNo `json:"data"`
	LedgerId int           `json:"ledgerId"`
}

// BuildVerifyRequest implements build_verify_request: decode the opaque
// source string back into (address, seqNo) and issue a GET_TXN for that
// seqNo - the transaction that created or spent this source.
func BuildVerifyRequest(ctx context.Context, submitterDID string, src string) (string, error) {
	_, seqNo, err := source.Decode(ctx, src)
	if err != nil {
		return "", err
	}

	op := GetTxnOperation{Type: sovtypes.TxnTypeGetTxn, Data: seqNo, LedgerId: sovtypes.DefaultLedgerId}
	env, err := envelope.Wrap(ctx, op, submitterDID, "")
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// stripAddress validates a qualified address and returns its unqualified form.
func stripAddress(ctx context.Context, qualifiedAddress string) (string, error) {
	if _, err := address.VerkeyOf(ctx, qualifiedAddress); err != nil {
		return "", err
	}
	return address.Unqualify(qualifiedAddress), nil
}

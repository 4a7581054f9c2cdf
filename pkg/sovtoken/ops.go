package sovtoken

import (
	"context"

	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
)

// Ops is the registration table a host ledger runtime builds once, under
// the payment-method identifier "sov", and calls into for every operation
// this core supports. It exists so a host has one value to wire up instead
// of importing every function individually; nothing in this package itself
// calls through Ops.
type Ops struct {
	CreateAddress func(ctx context.Context, gen wallet.KeyGenerator, configJSON string) (string, error)

	AttachFees     func(ctx context.Context, w wallet.Signer, hostRequestJSON string, inputs []sovtypes.Input, outputs []sovtypes.Output) (string, error)
	ParseFeesReply func(ctx context.Context, replyJSON string) ([]UTXO, error)

	BuildGetSourcesRequest func(ctx context.Context, submitterDID string, qualifiedAddress string, from int64) (string, error)
	ParseGetSourcesReply   func(ctx context.Context, replyJSON string) ([]UTXO, int64, error)

	BuildPaymentRequest func(ctx context.Context, w wallet.Signer, submitterDID string, inputs []sovtypes.Input, outputs []sovtypes.Output, extra string) (string, error)
	ParsePaymentReply   func(ctx context.Context, replyJSON string) ([]UTXO, error)

	BuildMintRequest func(ctx context.Context, submitterDID string, outputs []sovtypes.Output, extra string) (string, error)
	ParseMintReply   func(ctx context.Context, replyJSON string) error

	BuildSetFeesRequest func(ctx context.Context, submitterDID string, fees map[string]sovtypes.TokenAmount) (string, error)
	BuildGetFeesRequest func(ctx context.Context, submitterDID string) (string, error)
	ParseGetFeesReply   func(ctx context.Context, replyJSON string) (map[string]sovtypes.TokenAmount, error)

	BuildVerifyRequest func(ctx context.Context, submitterDID string, source string) (string, error)
	ParseVerifyReply   func(ctx context.Context, replyJSON string) (*VerifyResult, error)

	ParseGetAuthRuleReply func(ctx context.Context, replyJSON string) (map[string]sovtypes.TokenAmount, error)
	ExtractStateProof     func(ctx context.Context, replyJSON string, kvsToVerify [][2]string) (*StateProof, error)
}

// DefaultOps wires every named operation to its implementation in this
// package, the registration table described by spec §6.
var DefaultOps = Ops{
	CreateAddress: address.CreateAddress,

	AttachFees:     AttachFees,
	ParseFeesReply: ParseResponseWithFees,

	BuildGetSourcesRequest: BuildGetSourcesRequest,
	ParseGetSourcesReply:   ParseGetUTXOReply,

	BuildPaymentRequest: BuildTransfer,
	ParsePaymentReply:   ParsePaymentReply,

	BuildMintRequest: BuildMintRequest,
	ParseMintReply:   ParseMintReply,

	BuildSetFeesRequest: BuildSetFeesRequest,
	BuildGetFeesRequest: BuildGetFeesRequest,
	ParseGetFeesReply:   ParseGetTxnFeesReply,

	BuildVerifyRequest: BuildVerifyRequest,
	ParseVerifyReply:   ParseVerifyReply,

	ParseGetAuthRuleReply: ParseGetAuthRuleReply,
	ExtractStateProof:     ExtractStateProof,
}

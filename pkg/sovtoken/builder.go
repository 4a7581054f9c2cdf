// Package sovtoken is the per-operation surface the host ledger runtime
// calls into: the transfer and request builders (C7), fees attachment
// engine (C8), ledger reply parsers (C9), and state-proof extractors
// (C10). This package's exported functions, and the Ops registration table
// in ops.go, are the plugin registration contract a host wires up once.
package sovtoken

import (
	"context"
	"encoding/json"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/signing"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/canonical"
	"github.com/kaleido-io/sovtoken-core/pkg/envelope"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
)

// XferOperation is the wire shape of an XFER_PUBLIC operation:
// {"type":"10001","inputs":[[addr,seqNo,sig],…],"outputs":[[addr,amount],…],"signatures":[sig,…],"extra"?:…}.
type XferOperation struct {
	Type       string            `json:"type"`
	Inputs     []sovtypes.Input  `json:"inputs"`
	Outputs    []sovtypes.Output `json:"outputs"`
	Signatures []string          `json:"signatures"`
	Extra      string            `json:"extra,omitempty"`
}

// BuildTransfer implements C7: it strips address qualifiers, builds the
// per-input canonical signing pre-image, fans the signing out across the
// wallet (merged back into index order by C12), and assembles the signed
// XFER_PUBLIC request wrapped in the canonical envelope (C6).
//
// Preconditions, all failing with MalformedStructure: at least one input;
// at least one output; every address must validate as qualified.
func BuildTransfer(ctx context.Context, w wallet.Signer, submitterDID string, inputs []sovtypes.Input, outputs []sovtypes.Output, extra string) (string, error) {
	if w == nil {
		return "", sovi18n.NewError(ctx, msgs.MsgNullPointer, "wallet")
	}
	if len(inputs) == 0 {
		return "", sovi18n.NewError(ctx, msgs.MsgNoInputs)
	}
	if len(outputs) == 0 {
		return "", sovi18n.NewError(ctx, msgs.MsgNoOutputs)
	}

	firstQualifiedAddress := inputs[0].Address

	strippedInputs, verkeys, err := stripInputs(ctx, inputs)
	if err != nil {
		return "", err
	}
	strippedOutputs, err := stripOutputs(ctx, outputs)
	if err != nil {
		return "", err
	}

	signatures, err := signInputs(ctx, w, strippedInputs, verkeys, strippedOutputs, nil)
	if err != nil {
		return "", err
	}
	for i := range strippedInputs {
		strippedInputs[i].Signature = signatures[i]
	}

	op := XferOperation{
		Type:       sovtypes.TxnTypeXferPublic,
		Inputs:     strippedInputs,
		Outputs:    strippedOutputs,
		Signatures: signatures,
		Extra:      extra,
	}

	env, err := envelope.Wrap(ctx, op, submitterDID, firstQualifiedAddress)
	if err != nil {
		return "", err
	}
	return marshalEnvelope(ctx, env)
}

// stripInputs validates every input's qualified address, derives its
// signing verkey, and returns the unqualified-form inputs alongside a
// parallel slice of verkeys (in base58) to sign with.
func stripInputs(ctx context.Context, inputs []sovtypes.Input) ([]sovtypes.Input, []string, error) {
	stripped := make([]sovtypes.Input, len(inputs))
	verkeys := make([]string, len(inputs))
	for i, in := range inputs {
		verkey, err := address.VerkeyOf(ctx, in.Address)
		if err != nil {
			return nil, nil, err
		}
		stripped[i] = sovtypes.Input{
			Address: address.Unqualify(in.Address),
			SeqNo:   in.SeqNo,
		}
		verkeys[i] = verkey
	}
	return stripped, verkeys, nil
}

func stripOutputs(ctx context.Context, outputs []sovtypes.Output) ([]sovtypes.Output, error) {
	stripped := make([]sovtypes.Output, len(outputs))
	for i, out := range outputs {
		if _, err := address.VerkeyOf(ctx, out.Recipient); err != nil {
			return nil, err
		}
		stripped[i] = sovtypes.Output{
			Recipient: address.Unqualify(out.Recipient),
			Amount:    out.Amount,
			Extra:     out.Extra,
		}
	}
	return stripped, nil
}

// signInputs runs the per-input signing fan-out shared by the transfer
// builder (C7) and the fees attachment engine (C8). digest, when non-nil,
// is appended as a third element of every input's pre-image (the fees
// binding described in spec §4.8); it is nil for an ordinary transfer.
//
// The signing order is by input index (the merge key), never by wallet
// completion order - spec §4.7's ordering guarantee.
func signInputs(ctx context.Context, w wallet.Signer, inputs []sovtypes.Input, verkeys []string, outputs []sovtypes.Output, digest *string) ([]string, error) {
	outputsTuple := make(canonical.Array, len(outputs))
	for i, out := range outputs {
		outputsTuple[i] = out.TupleValue()
	}

	var signatures []string
	var finishErr error
	done := make(chan struct{})

	signing.MergeAsync(ctx, len(inputs), func(i int, complete func(string, error)) {
		preImageElems := []canonical.Value{
			canonical.Arr(inputs[i].ObjectValue()),
			outputsTuple,
		}
		if digest != nil {
			preImageElems = append(preImageElems, canonical.Str(*digest))
		}
		preImage := canonical.Serialize(canonical.Arr(preImageElems...))

		sig, err := w.Sign(ctx, verkeys[i], []byte(preImage))
		if err != nil {
			complete("", sovi18n.WrapError(ctx, msgs.MsgWalletSignFailed, err, i))
			return
		}
		complete(sig, nil)
	}, func(results []string, err error) {
		if err != nil {
			finishErr = err
		} else {
			signatures = results
		}
		close(done)
	})

	<-done
	if finishErr != nil {
		return nil, finishErr
	}
	return signatures, nil
}

func marshalEnvelope(ctx context.Context, env *envelope.Envelope) (string, error) {
	b, err := json.Marshal(env)
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return string(b), nil
}

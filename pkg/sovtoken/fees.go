package sovtoken

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/canonical"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
)

// FeesTriple is the [inputs, outputs, signatures] shape attached under the
// "fees" key of a non-transfer ledger request.
type FeesTriple struct {
	Inputs     []sovtypes.Input
	Outputs    []sovtypes.Output
	Signatures []string
}

// MarshalJSON emits the bare 3-element array form
// [ [[addr,seqNo,sig],…], [[addr,amount],…], [sig,…] ]: each input carries
// its signature in its own tuple (sovtypes.Input's tuple form) as well as in
// the trailing signatures list.
func (f FeesTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{f.Inputs, f.Outputs, f.Signatures})
}

type hostRequestOperation struct {
	Type string `json:"type"`
}

type hostRequestEnvelope struct {
	Operation *hostRequestOperation `json:"operation"`
}

// AttachFees implements C8: it digests the host request (the canonical
// serializer's top-level skip rule keeps a pre-existing "fees" key from
// folding into its own digest), runs the transfer signing flow with the
// digest bound into every input's pre-image, and attaches the resulting
// signed triple under the host request's "fees" key.
//
// hostRequestJSON must be a JSON object with an "operation" object carrying
// a "type" string; type "10001" (a transfer) is rejected, since fees cannot
// ride atop a transfer - the transfer is itself the fee-bearing operation.
// At least one input is required; outputs may be empty (full consumption
// as fee).
func AttachFees(ctx context.Context, w wallet.Signer, hostRequestJSON string, inputs []sovtypes.Input, outputs []sovtypes.Output) (string, error) {
	if w == nil {
		return "", sovi18n.NewError(ctx, msgs.MsgNullPointer, "wallet")
	}
	if len(inputs) == 0 {
		return "", sovi18n.NewError(ctx, msgs.MsgFeesNoInputs)
	}

	var env hostRequestEnvelope
	if err := json.Unmarshal([]byte(hostRequestJSON), &env); err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedHostRequest, err)
	}
	if env.Operation == nil || env.Operation.Type == "" {
		return "", sovi18n.NewError(ctx, msgs.MsgMissingOperation)
	}
	if env.Operation.Type == sovtypes.TxnTypeXferPublic {
		return "", sovi18n.NewError(ctx, msgs.MsgFeesOnTransfer, env.Operation.Type)
	}

	hostValue, err := canonical.ParseJSON([]byte(hostRequestJSON))
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedHostRequest, err)
	}
	if err := canonical.ValidateHashableFields(ctx, hostValue); err != nil {
		return "", err
	}
	digestHex := digestOf(hostValue)

	strippedInputs, verkeys, err := stripInputs(ctx, inputs)
	if err != nil {
		return "", err
	}
	strippedOutputs, err := stripOutputs(ctx, outputs)
	if err != nil {
		return "", err
	}

	signatures, err := signInputs(ctx, w, strippedInputs, verkeys, strippedOutputs, &digestHex)
	if err != nil {
		return "", err
	}
	for i := range strippedInputs {
		strippedInputs[i].Signature = signatures[i]
	}

	triple := FeesTriple{
		Inputs:     strippedInputs,
		Outputs:    strippedOutputs,
		Signatures: signatures,
	}

	return attachFeesKey(ctx, hostRequestJSON, triple)
}

// digestOf computes hex(sha256(canonical(v))), binding the fee signature to
// the exact bytes of the host request it accompanies (spec §4.8's
// rationale: a mempool adversary cannot lift a fee signature onto a
// substituted operation).
func digestOf(v canonical.Value) string {
	canon := canonical.Serialize(v)
	sum := sha256.Sum256([]byte(canon))
	return hex.EncodeToString(sum[:])
}

// attachFeesKey decodes hostRequestJSON's top level into raw JSON values,
// sets its "fees" key, and re-renders it as ordinary JSON for transmission.
// Every other key's value (the "operation" subtree included) is carried
// through as its own raw JSON, compacted by encoding/json; the top-level
// keys themselves come out in sorted order, not in their original order.
func attachFeesKey(ctx context.Context, hostRequestJSON string, triple FeesTriple) (string, error) {
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(hostRequestJSON), &asMap); err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedHostRequest, err)
	}
	feesJSON, err := json.Marshal(triple)
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	asMap["fees"] = feesJSON

	out, err := json.Marshal(asMap)
	if err != nil {
		return "", sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return string(out), nil
}

package sovtypes

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/canonical"
)

// ParseTokenAmount parses a decimal string into a TokenAmount, failing
// with MalformedStructure (not a panic or a silent wraparound) if it is
// negative, non-numeric, or exceeds the unsigned 64-bit range - the edge
// canonical.Uint alone cannot guard, since a caller can hand it a raw
// string before it ever becomes a typed amount.
func ParseTokenAmount(ctx context.Context, s string) (TokenAmount, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, sovi18n.NewError(ctx, msgs.MsgAmountOverflow, s)
	}
	return v, nil
}

// Input is the in-memory representation of a spent UTXO reference (C5).
// Signature is unset at construction and populated once the transfer
// builder (C7) has collected the wallet's signature for this input.
type Input struct {
	Address   string
	SeqNo     SeqNo
	Signature string // base58, empty until signed
}

// Output is the in-memory representation of a payment destination (C5).
type Output struct {
	Recipient string
	Amount    TokenAmount
	Extra     string // optional; empty string means absent
}

// inputObjectForm is the caller-facing object shape for an Input:
// {"address":…, "seqNo":…}.
type inputObjectForm struct {
	Address string `json:"address"`
	SeqNo   SeqNo  `json:"seqNo"`
}

// outputObjectForm is the caller-facing object shape for an Output:
// {"recipient":…, "amount":…, "extra"?:…}.
type outputObjectForm struct {
	Recipient string `json:"recipient"`
	Amount    TokenAmount `json:"amount"`
	Extra     string `json:"extra,omitempty"`
}

// UnmarshalJSON accepts the object form {"address":…,"seqNo":…} only; the
// source-string form is handled one layer up (pkg/source has no visibility
// into sovtypes' internals, and sovtypes must not import pkg/source without
// creating an import cycle), and the tuple form is wire-output-only per
// spec §4.5 ("Tuple form, emitted onto the wire").
func (in *Input) UnmarshalJSON(data []byte) error {
	var obj inputObjectForm
	if err := json.Unmarshal(data, &obj); err != nil {
		return sovi18n.WrapError(context.Background(), msgs.MsgInvalidInputShape, err, string(data))
	}
	in.Address = obj.Address
	in.SeqNo = obj.SeqNo
	return nil
}

// MarshalJSON emits the tuple form [address, seqNo, signature]. Fails with
// MalformedStructure if Signature is empty, per spec §4.5.
func (in Input) MarshalJSON() ([]byte, error) {
	if in.Signature == "" {
		return nil, sovi18n.NewError(context.Background(), msgs.MsgMissingSignature, in.Address)
	}
	return json.Marshal([]interface{}{in.Address, in.SeqNo, in.Signature})
}

// ObjectValue returns the canonical-serializer Object form of this Input,
// used to build the per-input signing pre-image in C7/C8.
func (in Input) ObjectValue() *canonical.Object {
	return canonical.NewObject().
		Set("address", canonical.Str(in.Address)).
		Set("seqNo", canonical.Int(int64(in.SeqNo)))
}

// UnmarshalJSON accepts the object form
// {"recipient":…,"amount":…,"extra"?:…}.
func (out *Output) UnmarshalJSON(data []byte) error {
	var obj outputObjectForm
	if err := json.Unmarshal(data, &obj); err != nil {
		return sovi18n.WrapError(context.Background(), msgs.MsgInvalidOutputShape, err, string(data))
	}
	out.Recipient = obj.Recipient
	out.Amount = obj.Amount
	out.Extra = obj.Extra
	return nil
}

// MarshalJSON emits the tuple form [address, amount] - extra is never part
// of the wire tuple form.
func (out Output) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{out.Recipient, out.Amount})
}

// TupleValue returns the canonical-serializer Array form [address, amount],
// used to build signing pre-images in C7/C8.
func (out Output) TupleValue() canonical.Value {
	return canonical.Arr(canonical.Str(out.Recipient), canonical.Uint(out.Amount))
}

// ObjectValue returns the canonical-serializer Object form of this Output.
func (out Output) ObjectValue() *canonical.Object {
	obj := canonical.NewObject().
		Set("recipient", canonical.Str(out.Recipient)).
		Set("amount", canonical.Uint(out.Amount))
	if out.Extra != "" {
		obj.Set("extra", canonical.Str(out.Extra))
	}
	return obj
}

// TupleValue returns the canonical-serializer Array form
// [address, seqNo, signature] for a fully-signed Input.
func (in Input) TupleValue(ctx context.Context) (canonical.Value, error) {
	if in.Signature == "" {
		return nil, sovi18n.NewError(ctx, msgs.MsgMissingSignature, in.Address)
	}
	return canonical.Arr(canonical.Str(in.Address), canonical.Int(int64(in.SeqNo)), canonical.Str(in.Signature)), nil
}

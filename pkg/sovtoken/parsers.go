package sovtoken

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/source"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// UTXO is the caller-facing unspent-output record every reply parser
// produces: a (recipient, receipt, amount, extra) tuple where receipt is
// the caller-opaque source string usable as an input later.
type UTXO struct {
	Recipient string             `json:"recipient"`
	Receipt   string             `json:"receipt"`
	Amount    sovtypes.TokenAmount `json:"amount"`
	Extra     string             `json:"extra,omitempty"`
}

type replyEnvelope struct {
	Op     string          `json:"op"`
	Result json.RawMessage `json:"result"`
	Reason string          `json:"reason"`
}

// classifyReply classifies a ledger reply's op field before any
// type-specific parsing happens, since REJECT/REQNACK carry a reason
// string instead of a result object.
func classifyReply(ctx context.Context, raw []byte) (*replyEnvelope, error) {
	var env replyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	if env.Op == "REJECT" || env.Op == "REQNACK" {
		return nil, mapRejectReason(ctx, env.Reason)
	}
	return &env, nil
}

// mapRejectReason translates a ledger reject reason string to the specific
// error kind via substring matching, per spec §4.9/§7.
func mapRejectReason(ctx context.Context, reason string) error {
	switch {
	case strings.Contains(reason, "InsufficientFundsError"):
		return sovi18n.NewError(ctx, msgs.MsgInsufficientFunds, reason)
	case strings.Contains(reason, "UTXOAlreadySpentError"):
		return sovi18n.NewError(ctx, msgs.MsgSourceDoesNotExist, reason)
	default:
		return sovi18n.NewError(ctx, msgs.MsgLedgerRejected, reason)
	}
}

// ParseMintReply implements the MINT ack parser: success carries no payload
// beyond confirming the ledger accepted the mint.
func ParseMintReply(ctx context.Context, replyJSON string) error {
	_, err := classifyReply(ctx, []byte(replyJSON))
	return err
}

type paymentReplyResult struct {
	Outputs []json.RawMessage `json:"outputs"`
	SeqNo   sovtypes.SeqNo    `json:"seqNo"`
}

// ParsePaymentReply implements the XFER_PUBLIC response parser: for each
// output in result.outputs, emit a UTXO whose receipt encodes (recipient,
// result.seqNo).
func ParsePaymentReply(ctx context.Context, replyJSON string) ([]UTXO, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var result paymentReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return buildUTXOsFromPairs(ctx, result.Outputs, result.SeqNo)
}

// outputObjectReplyForm is the object-shaped alternative to the
// [address, amount] tuple a reply's "outputs" entries can carry. The
// original implementation's Output deserializer accepts both shapes on
// read (it only ever emits the tuple form); "paymentAddress" - not
// "address" - is the object-form field name its own fixtures use.
type outputObjectReplyForm struct {
	PaymentAddress string               `json:"paymentAddress"`
	Amount         sovtypes.TokenAmount `json:"amount"`
}

// decodeOutputPair decodes one "outputs" entry as either the tuple form
// [address, amount] or the object form {"paymentAddress":…, "amount":…}.
func decodeOutputPair(ctx context.Context, raw json.RawMessage) (addr string, amount sovtypes.TokenAmount, err error) {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err == nil {
		if uerr := json.Unmarshal(tuple[0], &addr); uerr != nil {
			return "", 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, uerr)
		}
		if uerr := json.Unmarshal(tuple[1], &amount); uerr != nil {
			return "", 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, uerr)
		}
		return addr, amount, nil
	}

	var obj outputObjectReplyForm
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return obj.PaymentAddress, obj.Amount, nil
}

// buildUTXOsFromPairs converts a list of outputs entries (tuple or object
// form, see decodeOutputPair) into UTXOs at a single, shared sequence
// number.
func buildUTXOsFromPairs(ctx context.Context, pairs []json.RawMessage, seqNo sovtypes.SeqNo) ([]UTXO, error) {
	utxos := make([]UTXO, 0, len(pairs))
	for _, pair := range pairs {
		addr, amount, err := decodeOutputPair(ctx, pair)
		if err != nil {
			return nil, err
		}
		receipt, err := source.Encode(addr, seqNo)
		if err != nil {
			return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		utxos = append(utxos, UTXO{Recipient: addr, Receipt: receipt, Amount: amount})
	}
	return utxos, nil
}

type feesReplyWrapper struct {
	Fees json.RawMessage `json:"fees"`
}

// ParseResponseWithFees implements the fees-reply parser: the "fees" field
// is [inputs, outputs, seqNo]; emit one UTXO per output at that seqNo.
func ParseResponseWithFees(ctx context.Context, replyJSON string) ([]UTXO, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var wrapped feesReplyWrapper
	if err := json.Unmarshal(env.Result, &wrapped); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	var triple [3]json.RawMessage
	if err := json.Unmarshal(wrapped.Fees, &triple); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	var outputs []json.RawMessage
	if err := json.Unmarshal(triple[1], &outputs); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	var seqNo sovtypes.SeqNo
	if err := json.Unmarshal(triple[2], &seqNo); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return buildUTXOsFromPairs(ctx, outputs, seqNo)
}

type getUTXOReplyResult struct {
	Outputs [][3]json.RawMessage `json:"outputs"`
	Next    *int64               `json:"next"`
}

// ParseGetUTXOReply implements the GET_UTXO reply parser: for each
// (address, seqNo, amount) triple in result.outputs, emit a UTXO; also
// return the optional "next" cursor, or the sentinel -1 if absent.
func ParseGetUTXOReply(ctx context.Context, replyJSON string) ([]UTXO, int64, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, 0, err
	}
	var result getUTXOReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}

	utxos := make([]UTXO, 0, len(result.Outputs))
	for _, triple := range result.Outputs {
		var addr string
		var seqNo sovtypes.SeqNo
		var amount sovtypes.TokenAmount
		if err := json.Unmarshal(triple[0], &addr); err != nil {
			return nil, 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		if err := json.Unmarshal(triple[1], &seqNo); err != nil {
			return nil, 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		if err := json.Unmarshal(triple[2], &amount); err != nil {
			return nil, 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		receipt, err := source.Encode(addr, seqNo)
		if err != nil {
			return nil, 0, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		utxos = append(utxos, UTXO{Recipient: addr, Receipt: receipt, Amount: amount})
	}

	next := sovtypes.NoNextCursor
	if result.Next != nil {
		next = *result.Next
	}
	return utxos, next, nil
}

type getFeesReplyResult struct {
	Fees map[string]sovtypes.TokenAmount `json:"fees"`
}

// ParseGetTxnFeesReply implements the GET_FEES reply parser: return the
// result.fees map as-is.
func ParseGetTxnFeesReply(ctx context.Context, replyJSON string) (map[string]sovtypes.TokenAmount, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var result getFeesReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	return result.Fees, nil
}

type verifyReplyResult struct {
	Data *verifyReplyData `json:"data"`
}

type verifyReplyData struct {
	Txn         *verifyReplyTxn      `json:"txn"`
	TxnMetadata *verifyReplyTxnMeta  `json:"txnMetadata"`
}

type verifyReplyTxnMeta struct {
	SeqNo sovtypes.SeqNo `json:"seqNo"`
}

type verifyReplyTxn struct {
	Data *verifyReplyTxnData `json:"data"`
}

type verifyReplyTxnData struct {
	Inputs  [][2]json.RawMessage `json:"inputs"`
	Outputs []json.RawMessage    `json:"outputs"`
	Extra   string               `json:"extra,omitempty"`
}

// VerifyResult is the result of parse_verify_reply: the sources consumed
// and the receipts produced by the verified transaction.
type VerifyResult struct {
	Sources  []string `json:"sources"`
	Receipts []UTXO   `json:"receipts"`
	Extra    string   `json:"extra,omitempty"`
}

// ParseVerifyReply implements the verify-by-seqno parser (a GET_TXN by
// seqno): extract data.txn.data.{inputs,outputs,extra} and
// data.txnMetadata.seqNo; reconstruct sources and receipts at that seqNo.
// If "data" is missing, fail with SourceDoesNotExist.
func ParseVerifyReply(ctx context.Context, replyJSON string) (*VerifyResult, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var result verifyReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	if result.Data == nil {
		return nil, sovi18n.NewError(ctx, msgs.MsgMissingResultData)
	}
	if result.Data.TxnMetadata == nil || result.Data.Txn == nil || result.Data.Txn.Data == nil {
		return nil, sovi18n.NewError(ctx, msgs.MsgMalformedReply, "verify reply is missing txn/txnMetadata")
	}

	seqNo := result.Data.TxnMetadata.SeqNo
	txnData := result.Data.Txn.Data

	sources := make([]string, 0, len(txnData.Inputs))
	for _, pair := range txnData.Inputs {
		var addr string
		var inSeqNo sovtypes.SeqNo
		if err := json.Unmarshal(pair[0], &addr); err != nil {
			return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		if err := json.Unmarshal(pair[1], &inSeqNo); err != nil {
			return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		src, err := source.Encode(addr, inSeqNo)
		if err != nil {
			return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
		}
		sources = append(sources, src)
	}

	receipts, err := buildUTXOsFromPairs(ctx, txnData.Outputs, seqNo)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].Extra = txnData.Extra
	}

	return &VerifyResult{Sources: sources, Receipts: receipts, Extra: txnData.Extra}, nil
}

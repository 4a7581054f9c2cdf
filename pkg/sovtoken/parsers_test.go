package sovtoken

import (
	"context"
	"testing"

	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMintReplySuccess(t *testing.T) {
	err := ParseMintReply(context.Background(), `{"op":"REPLY","result":{}}`)
	require.NoError(t, err)
}

func TestParseMintReplyRejected(t *testing.T) {
	err := ParseMintReply(context.Background(), `{"op":"REQNACK","reason":"client request invalid: InsufficientFundsError(\"nope\")"}`)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindInsufficientFunds, sovi18n.KindOf(err))
}

func TestParsePaymentReplyEmitsUTXOsAtSeqNo(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"seqNo":4,"outputs":[["A",10],["B",5]]}}`
	utxos, err := ParsePaymentReply(context.Background(), replyJSON)
	require.NoError(t, err)
	require.Len(t, utxos, 2)

	assert.Equal(t, "A", utxos[0].Recipient)
	assert.Equal(t, uint64(10), uint64(utxos[0].Amount))
	assert.Equal(t, "B", utxos[1].Recipient)
	assert.Equal(t, uint64(5), uint64(utxos[1].Amount))

	for _, u := range utxos {
		assert.NotEmpty(t, u.Receipt)
		addr, seqNo, err := source.Decode(context.Background(), u.Receipt)
		require.NoError(t, err)
		assert.Equal(t, uint32(4), uint32(seqNo))
		assert.Equal(t, u.Recipient, addr)
	}
}

func TestParseGetUTXOReplyNoNextCursor(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"outputs":[["A",2,10],["A",3,3]]}}`
	utxos, next, err := ParseGetUTXOReply(context.Background(), replyJSON)
	require.NoError(t, err)
	require.Len(t, utxos, 2)
	assert.Equal(t, int64(-1), next)
}

func TestParseGetUTXOReplyWithNextCursor(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"outputs":[["A",2,10]],"next":7}}`
	_, next, err := ParseGetUTXOReply(context.Background(), replyJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(7), next)
}

func TestParseGetTxnFeesReply(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"fees":{"1":100,"10001":50}}}`
	fees, err := ParseGetTxnFeesReply(context.Background(), replyJSON)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), uint64(fees["1"]))
	assert.Equal(t, uint64(50), uint64(fees["10001"]))
}

func TestParseVerifyReplyMissingData(t *testing.T) {
	_, err := ParseVerifyReply(context.Background(), `{"op":"REPLY","result":{}}`)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindSourceDoesNotExist, sovi18n.KindOf(err))
}

func TestParseVerifyReplyHappyPath(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"data":{"txnMetadata":{"seqNo":9},"txn":{"data":{"inputs":[["A",1]],"outputs":[["B",7]],"extra":"memo"}}}}}`
	res, err := ParseVerifyReply(context.Background(), replyJSON)
	require.NoError(t, err)
	require.Len(t, res.Sources, 1)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, "memo", res.Extra)
	assert.Equal(t, "B", res.Receipts[0].Recipient)
}

// A replayed MINT's outputs can reach a GET_TXN reply in the object form
// ({"paymentAddress":…,"amount":…}), not just the tuple form this core
// itself emits; the reply parser has to accept both.
func TestParseVerifyReplyAcceptsObjectFormOutputs(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"data":{"txnMetadata":{"seqNo":9},"txn":{"data":{"inputs":[["A",1]],"outputs":[{"paymentAddress":"B","amount":7}],"extra":"memo"}}}}}`
	res, err := ParseVerifyReply(context.Background(), replyJSON)
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, "B", res.Receipts[0].Recipient)
	assert.Equal(t, uint64(7), uint64(res.Receipts[0].Amount))
}

package sovtoken

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/source"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireTypeOnly struct {
	Operation struct {
		Type string `json:"type"`
	} `json:"operation"`
}

func TestBuildGetSourcesRequestOmitsFromAtSentinel(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	addr := newQualifiedAddress(t, w)

	out, err := BuildGetSourcesRequest(ctx, "Th7MpTaRZVRYnPiabds81Y", addr, sovtypes.NoNextCursor)
	require.NoError(t, err)

	var env struct {
		Operation GetSourcesOperation `json:"operation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, sovtypes.TxnTypeGetUTXO, env.Operation.Type)
	assert.Nil(t, env.Operation.From)
	assert.NotContains(t, env.Operation.Address, "pay:sov:")
}

func TestBuildGetSourcesRequestIncludesFromWhenSet(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	addr := newQualifiedAddress(t, w)

	out, err := BuildGetSourcesRequest(ctx, "Th7MpTaRZVRYnPiabds81Y", addr, 7)
	require.NoError(t, err)

	var env struct {
		Operation GetSourcesOperation `json:"operation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.NotNil(t, env.Operation.From)
	assert.EqualValues(t, 7, *env.Operation.From)
}

func TestBuildMintRequestStripsOutputAddresses(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	outAddr := newQualifiedAddress(t, w)

	out, err := BuildMintRequest(ctx, "Th7MpTaRZVRYnPiabds81Y", []sovtypes.Output{{Recipient: outAddr, Amount: 12}}, "")
	require.NoError(t, err)

	var env struct {
		Operation struct {
			Type    string              `json:"type"`
			Outputs [][]json.RawMessage `json:"outputs"`
		} `json:"operation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, sovtypes.TxnTypeMintPublic, env.Operation.Type)
	require.Len(t, env.Operation.Outputs, 1)
	var addrWire string
	require.NoError(t, json.Unmarshal(env.Operation.Outputs[0][0], &addrWire))
	assert.NotContains(t, addrWire, "pay:sov:")
}

func TestBuildMintRequestRejectsEmptyOutputs(t *testing.T) {
	_, err := BuildMintRequest(context.Background(), "Th7MpTaRZVRYnPiabds81Y", nil, "")
	require.Error(t, err)
}

func TestBuildSetFeesRequest(t *testing.T) {
	out, err := BuildSetFeesRequest(context.Background(), "Th7MpTaRZVRYnPiabds81Y", map[string]sovtypes.TokenAmount{
		sovtypes.TxnTypeXferPublic: 8,
	})
	require.NoError(t, err)

	var env wireTypeOnly
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, sovtypes.TxnTypeSetFees, env.Operation.Type)
}

func TestBuildSetFeesRequestRejectsEmptyMap(t *testing.T) {
	_, err := BuildSetFeesRequest(context.Background(), "Th7MpTaRZVRYnPiabds81Y", nil)
	require.Error(t, err)
}

func TestBuildGetFeesRequest(t *testing.T) {
	out, err := BuildGetFeesRequest(context.Background(), "Th7MpTaRZVRYnPiabds81Y")
	require.NoError(t, err)

	var env wireTypeOnly
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, sovtypes.TxnTypeGetFees, env.Operation.Type)
}

func TestBuildVerifyRequestDecodesSourceSeqNo(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	addr := newQualifiedAddress(t, w)
	src, err := source.Encode(address.Unqualify(addr), 9)
	require.NoError(t, err)

	out, err := BuildVerifyRequest(ctx, "Th7MpTaRZVRYnPiabds81Y", src)
	require.NoError(t, err)

	var env struct {
		Operation GetTxnOperation `json:"operation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, sovtypes.TxnTypeGetTxn, env.Operation.Type)
	assert.EqualValues(t, 9, env.Operation.Data)
	assert.Equal(t, sovtypes.DefaultLedgerId, env.Operation.LedgerId)
}

package sovtoken

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachFeesPreservesOperationAndAddsFeesTuple(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	inAddr := newQualifiedAddress(t, w)
	outAddr := newQualifiedAddress(t, w)

	hostRequest := `{"operation":{"type":"3"}}`
	inputs := []sovtypes.Input{{Address: inAddr, SeqNo: 1}}
	outputs := []sovtypes.Output{{Recipient: outAddr, Amount: 20}}

	out, err := AttachFees(ctx, w, hostRequest, inputs, outputs)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	// operation subtree preserved byte-for-byte.
	assert.JSONEq(t, `{"type":"3"}`, string(decoded["operation"]))

	var triple [3]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["fees"], &triple))
	var sigs []string
	require.NoError(t, json.Unmarshal(triple[2], &sigs))
	assert.Len(t, sigs, 1)
}

func TestAttachFeesRefusedOnTransfer(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	inAddr := newQualifiedAddress(t, w)

	hostRequest := `{"operation":{"type":"10001"}}`
	inputs := []sovtypes.Input{{Address: inAddr, SeqNo: 1}}

	_, err := AttachFees(ctx, w, hostRequest, inputs, nil)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

func TestAttachFeesRejectsNilWallet(t *testing.T) {
	ctx := context.Background()
	hostRequest := `{"operation":{"type":"3"}}`
	inputs := []sovtypes.Input{{Address: "pay:sov:x", SeqNo: 1}}

	_, err := AttachFees(ctx, nil, hostRequest, inputs, nil)
	require.Error(t, err)
}

func TestAttachFeesRejectsNoInputs(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	hostRequest := `{"operation":{"type":"3"}}`

	_, err := AttachFees(ctx, w, hostRequest, nil, nil)
	require.Error(t, err)
}

func TestAttachFeesRejectsMissingOperation(t *testing.T) {
	ctx := context.Background()
	w := wallet.NewInMemory()
	inAddr := newQualifiedAddress(t, w)

	_, err := AttachFees(ctx, w, `{}`, []sovtypes.Input{{Address: inAddr, SeqNo: 1}}, nil)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

package sovtoken

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStateProofHappyPath(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{"state_proof":{"root_hash":"abc","proof_nodes":"def","multi_signature":{"value":"sig"}}}}`
	proof, err := ExtractStateProof(context.Background(), replyJSON, [][2]string{{"k1", "v1"}})
	require.NoError(t, err)
	assert.Equal(t, "abc", proof.RootHash)
	assert.Equal(t, "def", proof.ProofNodes)
	assert.Equal(t, [][2]string{{"k1", "v1"}}, proof.KVsToVerify)
}

func TestExtractStateProofMissing(t *testing.T) {
	replyJSON := `{"op":"REPLY","result":{}}`
	_, err := ExtractStateProof(context.Background(), replyJSON, nil)
	require.Error(t, err)
}

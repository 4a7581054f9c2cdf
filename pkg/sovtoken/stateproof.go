package sovtoken

import (
	"context"
	"encoding/json"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
)

// StateProof is the (root_hash, proof_nodes, multi_signature) tuple a
// GET_UTXO or GET_FEES reply carries alongside its result, plus the
// key/value pairs the proof is claimed to cover.
type StateProof struct {
	RootHash       string          `json:"rootHash"`
	ProofNodes     string          `json:"proofNodes"`
	MultiSignature json.RawMessage `json:"multiSignature"`
	KVsToVerify    [][2]string     `json:"kvsToVerify"`
}

type stateProofReplyResult struct {
	StateProof *stateProofWire `json:"state_proof"`
}

type stateProofWire struct {
	RootHash       string          `json:"root_hash"`
	ProofNodes     string          `json:"proof_nodes"`
	MultiSignature json.RawMessage `json:"multi_signature"`
}

// ExtractStateProof implements C10: pull the (root_hash, proof_nodes,
// multi_signature) triple out of a GET_UTXO or GET_FEES reply's
// result.state_proof, and pair it with the caller-supplied key/value
// entries the proof is meant to verify (the core does not itself perform
// Merkle-Patricia verification - that is a host/trie-library concern - it
// only extracts the inputs that verification needs).
func ExtractStateProof(ctx context.Context, replyJSON string, kvsToVerify [][2]string) (*StateProof, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var result stateProofReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}
	if result.StateProof == nil {
		return nil, sovi18n.NewError(ctx, msgs.MsgMissingStateProof)
	}
	return &StateProof{
		RootHash:       result.StateProof.RootHash,
		ProofNodes:     result.StateProof.ProofNodes,
		MultiSignature: result.StateProof.MultiSignature,
		KVsToVerify:    kvsToVerify,
	}, nil
}

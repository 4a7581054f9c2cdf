// Package envelope implements the canonical request envelope (C6): reqId,
// protocolVersion, and identifier derivation, wrapped around any ledger
// operation.
package envelope

import (
	"context"
	"crypto/rand"
	"encoding/binary"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// Envelope wraps an operation with the fields every ledger request carries.
type Envelope struct {
	Operation       interface{} `json:"operation"`
	ReqId           sovtypes.ReqId `json:"reqId"`
	ProtocolVersion int         `json:"protocolVersion"`
	Identifier      string      `json:"identifier,omitempty"`
}

// NewReqId generates a fresh, non-zero random 32-bit request identifier.
func NewReqId() (sovtypes.ReqId, error) {
	for {
		var buf [4]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		id := binary.BigEndian.Uint32(buf[:])
		if id != 0 {
			return id, nil
		}
	}
}

// Wrap builds the envelope for operation. If submitterDID is non-empty it
// is used verbatim as the identifier; otherwise, for a transfer-shaped
// operation, firstInputQualifiedAddress (if non-empty) is unqualified via
// C2 and used instead, per spec §4.6.
func Wrap(ctx context.Context, operation interface{}, submitterDID string, firstInputQualifiedAddress string) (*Envelope, error) {
	reqID, err := NewReqId()
	if err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgReqIdGeneration, err)
	}

	identifier := submitterDID
	if identifier == "" && firstInputQualifiedAddress != "" {
		identifier = address.Unqualify(firstInputQualifiedAddress)
	}
	if identifier == "" {
		return nil, sovi18n.NewError(ctx, msgs.MsgMissingFirstInput)
	}

	return &Envelope{
		Operation:       operation,
		ReqId:           reqID,
		ProtocolVersion: sovtypes.ProtocolVersion,
		Identifier:      identifier,
	}, nil
}

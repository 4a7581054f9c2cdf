// Package source implements the UTXO source codec (C3): an (address,
// seqNo) pair serialized to and from the opaque "txo:sov:" source string
// used as an input reference on the wire.
package source

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// txo is the canonical JSON shape base58check-encoded inside a source
// string. Field order is fixed ("address" then "seqNo") because the
// checksum over its serialized bytes must be reproducible.
type txo struct {
	Address string       `json:"address"`
	SeqNo   sovtypes.SeqNo `json:"seqNo"`
}

// Encode produces "txo:sov:" + base58check(utf8_json({address,seqNo})) for
// the given unqualified address and sequence number.
func Encode(unqualifiedAddress string, seqNo sovtypes.SeqNo) (string, error) {
	payload, err := json.Marshal(txo{Address: unqualifiedAddress, SeqNo: seqNo})
	if err != nil {
		return "", err
	}
	checksum := doubleSHA256(payload)[:4]
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return sovtypes.SourceQualifier + base58.Encode(buf), nil
}

// Decode strips the "txo:sov:" prefix (a substring replacement, not a bare
// prefix-trim, to tolerate the prefix's defensive absence as spec §4.3
// requires), base58check-decodes, and parses the JSON payload.
func Decode(ctx context.Context, src string) (address string, seqNo sovtypes.SeqNo, err error) {
	stripped := strings.Replace(src, sovtypes.SourceQualifier, "", 1)
	raw := base58.Decode(stripped)
	if len(raw) < 4 {
		return "", 0, sovi18n.NewError(ctx, msgs.MsgInvalidSourcePayload, "payload shorter than checksum")
	}
	payload := raw[:len(raw)-4]
	checksum := raw[len(raw)-4:]
	want := doubleSHA256(payload)[:4]
	if !bytes.Equal(checksum, want) {
		return "", 0, sovi18n.NewError(ctx, msgs.MsgInvalidSourcePayload, "checksum mismatch")
	}
	var t txo
	if err := json.Unmarshal(payload, &t); err != nil {
		return "", 0, sovi18n.WrapError(ctx, msgs.MsgInvalidSourceJSON, err)
	}
	return t.Address, t.SeqNo, nil
}

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

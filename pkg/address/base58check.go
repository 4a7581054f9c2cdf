// Package address implements the payment address codec (C2): verkey to
// qualified payment address and back, via base58check.
package address

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

var (
	errInvalidBase58    = errors.New("not valid base58")
	errShortPayload     = errors.New("base58check payload shorter than the checksum")
	errChecksumMismatch = errors.New("base58check checksum mismatch")
)

// base58Alphabet is the Bitcoin/IPFS base58 alphabet btcutil/base58 itself
// decodes against (digits 0, letters O/I/l excluded to avoid visual
// ambiguity). btcutil's Decode does not error on an out-of-alphabet
// character - it silently stops decoding at that point - so validity has
// to be checked here before trusting its output.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func isValidBase58(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// checksumLen is the number of checksum bytes appended to a base58check
// payload in this system. Indy addresses carry no version byte (unlike
// Bitcoin's CheckEncode/CheckDecode in the same btcutil package), so the
// checksum is computed and verified directly here rather than reusing
// btcutil's CheckEncode helper.
const checksumLen = 4

// encodeCheck appends a 4-byte double-SHA256 checksum to payload and
// base58-encodes the result.
func encodeCheck(payload []byte) string {
	checksum := doubleSHA256(payload)[:checksumLen]
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return base58.Encode(buf)
}

// decodeCheck base58-decodes s and verifies its trailing checksum,
// returning the payload with the checksum stripped.
func decodeCheck(s string) ([]byte, error) {
	if !isValidBase58(s) {
		return nil, errInvalidBase58
	}
	raw := base58.Decode(s)
	if len(raw) < checksumLen {
		return nil, errShortPayload
	}
	payload := raw[:len(raw)-checksumLen]
	checksum := raw[len(raw)-checksumLen:]
	want := doubleSHA256(payload)[:checksumLen]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, errChecksumMismatch
		}
	}
	return payload, nil
}

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

package address

import (
	"context"
	"testing"

	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden verkey/address pairs lifted from the original implementation's
// address test fixtures.
var goldenPairs = []struct {
	verkey  string
	address string
}{
	{"EFfodscoymgdJDuM885uEWmgCcA25P6VR6TjVqsYZLW3", "2Viu9qrpqM48PSw3vdoQoFKP5AvYTChUZhwWtCydfW9iu7ftRt"},
	{"2gcGb3qbTGNc5zkdcBq9Kq4nQutptt7ofoFVRTmxAnJc", "C1iM7fr4cT32J3DuwKDQDPLbNhN7NaEk9ex2ictk86Lg1ZKC9"},
	{"9pdZM4dWas2WsQkiD1H57yT8qwME6T38fS2M6AwmDR2v", "zivqx63btpvxCM2Aj7hqVMBkbB84v7aJ5xDC6MNQj7MSPFJN1"},
	{"B2gfDbd9EBh7Acs3x3cqgWebTApqZvuSKKhSocKzM4Cq", "28dLM4uKiPa2cyLuUsEpKDa8HyvcTMTmg6ji5X23eLA8jZCJAv"},
	{"52JU5iD4ryAkjpYLb58qwY48sGQZGYq3gQs1uqY3o1oz", "TKe9eXtchV71J2qXX5HwP8rbkTBStnEEkMwQkHie265VtRSbs"},
}

func TestQualifyGoldenVectors(t *testing.T) {
	ctx := context.Background()
	for _, p := range goldenPairs {
		qualified, err := Qualify(ctx, p.verkey)
		require.NoError(t, err)
		assert.Equal(t, "pay:sov:"+p.address, qualified)
	}
}

func TestVerkeyOfGoldenVectors(t *testing.T) {
	ctx := context.Background()
	for _, p := range goldenPairs {
		verkey, err := VerkeyOf(ctx, "pay:sov:"+p.address)
		require.NoError(t, err)
		assert.Equal(t, p.verkey, verkey)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, p := range goldenPairs {
		qualified, err := Qualify(ctx, p.verkey)
		require.NoError(t, err)
		verkey, err := VerkeyOf(ctx, qualified)
		require.NoError(t, err)
		assert.Equal(t, p.verkey, verkey)
	}
}

func TestVerkeyOfRejectsMissingPrefix(t *testing.T) {
	ctx := context.Background()
	_, err := VerkeyOf(ctx, goldenPairs[0].address)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

func TestVerkeyOfRejectsTamperedChecksum(t *testing.T) {
	ctx := context.Background()
	qualified, err := Qualify(ctx, goldenPairs[0].verkey)
	require.NoError(t, err)

	// Flip the last character of the base58 string, which (with
	// overwhelming probability) corrupts the trailing checksum bytes.
	tampered := qualified[:len(qualified)-1] + flipLastChar(qualified)
	_, err = VerkeyOf(ctx, tampered)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

func flipLastChar(s string) string {
	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	last := s[len(s)-1]
	for _, c := range alphabet {
		if byte(c) != last {
			return string(c)
		}
	}
	return "1"
}

func TestQualifyRejectsWrongLength(t *testing.T) {
	ctx := context.Background()
	// Valid base58, but decodes to far fewer than 32 bytes.
	_, err := Qualify(ctx, goldenPairs[0].verkey[:10])
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

func TestQualifyRejectsOutOfAlphabetCharacter(t *testing.T) {
	ctx := context.Background()
	_, err := Qualify(ctx, "0"+goldenPairs[0].verkey[1:])
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

func TestVerkeyOfRejectsOutOfAlphabetCharacter(t *testing.T) {
	ctx := context.Background()
	_, err := VerkeyOf(ctx, "pay:sov:0"+goldenPairs[0].address[1:])
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindMalformedStructure, sovi18n.KindOf(err))
}

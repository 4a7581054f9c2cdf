package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		address string
		seqNo   uint32
	}{
		{"2Viu9qrpqM48PSw3vdoQoFKP5AvYTChUZhwWtCydfW9iu7ftRt", 1},
		{"TKe9eXtchV71J2qXX5HwP8rbkTBStnEEkMwQkHie265VtRSbs", 4},
		{"zivqx63btpvxCM2Aj7hqVMBkbB84v7aJ5xDC6MNQj7MSPFJN1", 0},
	}
	for _, c := range cases {
		encoded, err := Encode(c.address, c.seqNo)
		require.NoError(t, err)
		assert.Contains(t, encoded, "txo:sov:")

		addr, seq, err := Decode(ctx, encoded)
		require.NoError(t, err)
		assert.Equal(t, c.address, addr)
		assert.Equal(t, c.seqNo, seq)
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	ctx := context.Background()
	encoded, err := Encode("TKe9eXtchV71J2qXX5HwP8rbkTBStnEEkMwQkHie265VtRSbs", 1)
	require.NoError(t, err)
	tampered := encoded[:len(encoded)-1] + "1"
	_, _, err = Decode(ctx, tampered)
	assert.Error(t, err)
}

func TestDecodeTolerateMissingPrefix(t *testing.T) {
	ctx := context.Background()
	encoded, err := Encode("TKe9eXtchV71J2qXX5HwP8rbkTBStnEEkMwQkHie265VtRSbs", 1)
	require.NoError(t, err)

	withoutPrefix := encoded[len("txo:sov:"):]
	addr, seq, err := Decode(ctx, withoutPrefix)
	require.NoError(t, err)
	assert.Equal(t, "TKe9eXtchV71J2qXX5HwP8rbkTBStnEEkMwQkHie265VtRSbs", addr)
	assert.Equal(t, uint32(1), seq)
}

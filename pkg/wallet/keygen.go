package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

// KeyGenerator is the host-owned collaborator that derives or generates an
// Ed25519 keypair for create_address (spec §6). The core never implements
// key generation itself - this interface exists only so pkg/address has a
// concrete Go signature to call, mirroring Signer in wallet.go.
type KeyGenerator interface {
	// GenerateKey derives a keypair from seed if non-empty, or generates a
	// fresh one if seed is empty, and returns the verkey in base58.
	GenerateKey(ctx context.Context, seed []byte) (verkeyBase58 string, err error)
}

// GenerateKey implements KeyGenerator for the in-memory fake wallet. A
// 32-byte seed is used directly as the Ed25519 private seed (ed25519.NewKeyFromSeed);
// any other non-empty length is stretched/truncated to 32 bytes via SHA-256,
// matching the host contract's tolerance for "32 bytes utf8|base64|hex"
// without mandating raw 32-byte input.
func (w *InMemory) GenerateKey(ctx context.Context, seed []byte) (string, error) {
	var priv ed25519.PrivateKey
	if len(seed) == 0 {
		var err error
		_, priv, err = ed25519.GenerateKey(nil)
		if err != nil {
			return "", err
		}
	} else {
		seed32 := seed
		if len(seed32) != ed25519.SeedSize {
			sum := sha256.Sum256(seed)
			seed32 = sum[:]
		}
		priv = ed25519.NewKeyFromSeed(seed32)
	}

	pub := priv.Public().(ed25519.PublicKey)
	verkeyBase58 := base58.Encode(pub)
	w.keys[verkeyBase58] = priv
	return verkeyBase58, nil
}

// DecodeSeedConfig interprets create_address's {"seed": <32 bytes
// utf8|base64|hex>} value: a BIP-39 mnemonic phrase is decoded to its
// entropy bytes via go-bip39; otherwise the string is tried as hex, then
// base64, then taken as raw UTF-8 bytes.
func DecodeSeedConfig(seed string) ([]byte, error) {
	if seed == "" {
		return nil, nil
	}
	if bip39.IsMnemonicValid(seed) {
		return bip39.EntropyFromMnemonic(seed)
	}
	if b, err := hex.DecodeString(seed); err == nil {
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(seed); err == nil {
		return b, nil
	}
	return []byte(seed), nil
}

package wallet

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ed25519"
)

// InMemory is a trivial Signer backed by an in-process map of
// verkey(base58) -> ed25519.PrivateKey. It exists to let this module's own
// tests (and a host's integration tests) produce real, verifiable Ed25519
// signatures without depending on any real wallet implementation.
type InMemory struct {
	keys map[string]ed25519.PrivateKey
}

// NewInMemory returns an empty fake wallet.
func NewInMemory() *InMemory {
	return &InMemory{keys: map[string]ed25519.PrivateKey{}}
}

// AddKey generates a fresh Ed25519 keypair and returns its verkey in
// base58, registering it so Sign can later be called for it.
func (w *InMemory) AddKey() (verkeyBase58 string, err error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return "", err
	}
	verkeyBase58 = base58.Encode(pub)
	w.keys[verkeyBase58] = priv
	return verkeyBase58, nil
}

// Sign implements Signer.
func (w *InMemory) Sign(ctx context.Context, verkeyBase58 string, message []byte) (string, error) {
	priv, ok := w.keys[verkeyBase58]
	if !ok {
		return "", fmt.Errorf("fake wallet has no key registered for verkey %s", verkeyBase58)
	}
	sig := ed25519.Sign(priv, message)
	return base58.Encode(sig), nil
}

// Package wallet defines the one external collaborator interface the
// transfer builder and fees engine call out to: the secret-key wallet that
// performs Ed25519 signing. The core never implements this - per spec §1
// the wallet is owned by the host - it only defines the contract a host
// must satisfy.
package wallet

import "context"

// Signer is satisfied by the host-owned wallet. Sign is a blocking call
// from the core's point of view: the transfer builder and fees engine call
// it once per input, one after another on the calling goroutine, and the
// merge primitive (C12) collects the N results into input-index order.
type Signer interface {
	Sign(ctx context.Context, verkeyBase58 string, message []byte) (signatureBase58 string, err error)
}

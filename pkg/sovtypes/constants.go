// Package sovtypes holds the data model shared by every sovtoken core
// component: the address and source prefixes and lengths, ledger txn type
// codes, the token amount / seqNo / reqId types, the DID validator, and
// inputs/outputs. The request envelope lives in pkg/envelope and the
// reply-facing UTXO type in pkg/sovtoken.
package sovtypes

const (
	// PayIndicator and SovrinIndicator together form the qualified payment
	// address prefix "pay:sov:".
	PayIndicator    = "pay"
	SovrinIndicator = "sov"
	FieldSep        = ":"

	// PaymentAddressQualifier is the fixed 8-byte ASCII prefix of every
	// qualified payment address.
	PaymentAddressQualifier = PayIndicator + FieldSep + SovrinIndicator + FieldSep

	// SourceQualifier is the fixed prefix of every opaque UTXO source string.
	SourceQualifier = "txo" + FieldSep + SovrinIndicator + FieldSep

	// ChecksumLen is the length, in bytes, of the base58check checksum
	// appended to every unqualified address and source payload.
	ChecksumLen = 4

	// VerkeyLen is the fixed length, in bytes, of an Ed25519 verkey.
	VerkeyLen = 32

	// AddressQualifierLen is the byte length of PaymentAddressQualifier.
	AddressQualifierLen = len(PaymentAddressQualifier)

	// ProtocolVersion is the constant protocol version stamped on every
	// request envelope.
	ProtocolVersion = 2
)

// Ledger operation type codes used by the core.
const (
	TxnTypeNym         = "1"
	TxnTypeAttrib      = "100"
	TxnTypeGetAttrib   = "104"
	TxnTypeGetAuthRule = "121"
	TxnTypeMintPublic  = "10000"
	TxnTypeXferPublic  = "10001"
	TxnTypeGetUTXO     = "10002"
	TxnTypeSetFees     = "20000"
	TxnTypeGetFees     = "20001"
	TxnTypeGetTxn      = "3"
)

// DefaultLedgerId is the domain ledger id stamped on a GET_TXN request when
// no pool/ledger qualifier is supplied, per build_verify_request (spec §4.9).
const DefaultLedgerId = 1

// TokenAmount is an unsigned 64-bit token quantity. Zero is a valid amount.
type TokenAmount = uint64

// SeqNo is an unsigned 32-bit ledger sequence number.
type SeqNo = uint32

// ReqId is an unsigned 32-bit random request identifier.
type ReqId = uint32

// NoNextCursor is the sentinel value returned by parse_get_utxo_reply when
// the ledger reply carries no "next" cursor.
const NoNextCursor int64 = -1

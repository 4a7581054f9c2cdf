// Package msgs registers every message key the sovtoken core can emit.
// Grouped by component for the same reason the teacher groups registration
// by subsystem: so a reviewer can see at a glance which component owns
// which failure mode.
package msgs

import "github.com/kaleido-io/sovtoken-core/internal/sovi18n"

var (
	// C2 - address codec
	MsgInvalidBase58         = sovi18n.Def("SVT0001", "Value %q is not valid base58", sovi18n.KindMalformedStructure)
	MsgChecksumMismatch      = sovi18n.Def("SVT0002", "Checksum mismatch decoding %q", sovi18n.KindMalformedStructure)
	MsgWrongVerkeyLength     = sovi18n.Def("SVT0003", "Decoded verkey has length %d, expected 32", sovi18n.KindMalformedStructure)
	MsgMissingAddressPrefix  = sovi18n.Def("SVT0004", "Address %q is missing the required %q prefix", sovi18n.KindMalformedStructure)
	MsgInvalidAddressPayload = sovi18n.Def("SVT0005", "Address payload decode failed: %s", sovi18n.KindMalformedStructure)

	// C3 - source codec
	MsgInvalidSourcePayload = sovi18n.Def("SVT0010", "Source payload decode failed: %s", sovi18n.KindMalformedStructure)
	MsgInvalidSourceJSON    = sovi18n.Def("SVT0011", "Source JSON is malformed: %s", sovi18n.KindMalformedStructure)

	// C4 - DID validator
	MsgInvalidDIDLength = sovi18n.Def("SVT0020", "DID has length %d, which is not an allowed DID length", sovi18n.KindMalformedStructure)
	MsgInvalidDIDChar   = sovi18n.Def("SVT0021", "DID contains non-alphanumeric character %q", sovi18n.KindMalformedStructure)

	// C5 - input/output model
	MsgMissingSignature     = sovi18n.Def("SVT0030", "Input for address %q has no signature to serialize", sovi18n.KindMalformedStructure)
	MsgInvalidInputShape    = sovi18n.Def("SVT0031", "Input JSON %s is not in the {\"address\",\"seqNo\"} object form: %s", sovi18n.KindMalformedStructure)
	MsgInvalidOutputShape   = sovi18n.Def("SVT0032", "Output JSON %s is not in the {\"recipient\",\"amount\"} object form: %s", sovi18n.KindMalformedStructure)
	MsgAmountOverflow       = sovi18n.Def("SVT0033", "Amount %s does not fit in an unsigned 64-bit token amount", sovi18n.KindMalformedStructure)

	// C6 - request envelope
	MsgMissingFirstInput = sovi18n.Def("SVT0040", "Cannot derive an identifier: no submitter DID and no first input address", sovi18n.KindMalformedStructure)
	MsgReqIdGeneration   = sovi18n.Def("SVT0041", "Failed to generate a request id: %s", sovi18n.KindInvalidState)

	// C7 - transfer builder
	MsgNoInputs           = sovi18n.Def("SVT0050", "A transfer requires at least one input", sovi18n.KindMalformedStructure)
	MsgNoOutputs          = sovi18n.Def("SVT0051", "A transfer or mint requires at least one output", sovi18n.KindMalformedStructure)
	MsgWalletSignFailed   = sovi18n.Def("SVT0052", "Wallet refused to sign input %d: %s", sovi18n.KindWalletSignFailed)

	// C7 - other request builders (mint, get-sources, set-fees, get-fees, verify)
	MsgNoFees = sovi18n.Def("SVT0053", "A set-fees request requires at least one txn type/amount pair", sovi18n.KindMalformedStructure)

	// C8 - fees attachment
	MsgFeesOnTransfer     = sovi18n.Def("SVT0060", "Fees cannot be attached to a transfer request (type %s)", sovi18n.KindMalformedStructure)
	MsgFeesNoInputs       = sovi18n.Def("SVT0061", "Attaching fees requires at least one input", sovi18n.KindMalformedStructure)
	MsgMissingOperation   = sovi18n.Def("SVT0062", "Host request is missing a required 'operation' object", sovi18n.KindMalformedStructure)
	MsgMalformedHostRequest = sovi18n.Def("SVT0063", "Host request JSON is malformed: %s", sovi18n.KindMalformedStructure)

	// C9 - reply parsers
	MsgLedgerRejected      = sovi18n.Def("SVT0070", "Ledger rejected the request: %s", sovi18n.KindMalformedStructure)
	MsgInsufficientFunds   = sovi18n.Def("SVT0071", "Ledger reported insufficient funds: %s", sovi18n.KindInsufficientFunds)
	MsgSourceDoesNotExist  = sovi18n.Def("SVT0072", "Ledger reported the source no longer exists: %s", sovi18n.KindSourceDoesNotExist)
	MsgMalformedReply      = sovi18n.Def("SVT0073", "Ledger reply has an unexpected shape: %s", sovi18n.KindMalformedStructure)
	MsgMissingResultData   = sovi18n.Def("SVT0074", "Ledger reply is missing result data", sovi18n.KindSourceDoesNotExist)
	MsgAuthRuleFeeConflict = sovi18n.Def("SVT0075", "Auth rule constraints for txn type %q disagree on fee (%d vs %d)", sovi18n.KindMalformedStructure)

	// C10 - state-proof extractors
	MsgMissingStateProof = sovi18n.Def("SVT0080", "Ledger reply is missing a state_proof section", sovi18n.KindMalformedStructure)

	// C1 - canonical serializer
	MsgHashFieldNotString = sovi18n.Def("SVT0090", "Field %q must be a string to be hashed into the canonical form", sovi18n.KindInvalidState)

	// C12 - async signing scaffolding
	MsgMergeKeyReused = sovi18n.Def("SVT0100", "Merge key %v was completed more than once", sovi18n.KindInvalidState)

	// FFI boundary
	MsgNullPointer = sovi18n.Def("SVT0110", "Required parameter %q was null at the FFI boundary", sovi18n.KindInvalidParam)
)

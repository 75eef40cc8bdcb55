package zkschnorr

const (
	SIGN_MESSAGE_DOMAIN_TAG = "zkschnorr.sign_message"
	WITNESS_DOMAIN_TAG      = "zkschnorr.witness"
	KEYPAIR_DOMAIN_TAG      = "zkschnorr-keypair"
	SIGNATURE_DOMAIN_SEP    = "zkschnorr v1"

	// Transcript labels committed by Sign and Verify.
	LABEL_DOMAIN_SEP = "dom-sep"
	LABEL_BASIS      = "G"
	LABEL_PUBLIC     = "H"
	LABEL_NONCE      = "R"
	LABEL_CHALLENGE  = "challenge"
	LABEL_WITNESS    = "x"

	POINT_LEN            = 32
	SCALAR_LEN           = 32
	WIDE_SCALAR_LEN      = 64
	SIGNATURE_LEN        = POINT_LEN + SCALAR_LEN
	VERIFICATION_KEY_LEN = 2 * POINT_LEN
	WITNESS_ENTROPY_LEN  = 32
	MIN_SEED_LEN         = 32

	// Each signature contributes its basis, nonce commitment and public point.
	TERMS_PER_SIGNATURE = 3
)

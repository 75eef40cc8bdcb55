package zkschnorr

import "errors"

var (
	// ErrInvalidSignature covers malformed encodings, points that fail to
	// decompress and a verification equation that does not hold.
	ErrInvalidSignature = errors.New("Signature verification failed")

	// ErrInvalidBatch is returned when any equation of a batch fails. The
	// failing signature is not identified.
	ErrInvalidBatch = errors.New("Batch signature verification failed")
)

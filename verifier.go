package zkschnorr

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// BatchVerification records a claim that
//
//	basisScalar·points[0] + Σ scalars[i]·points[i+1] == identity
//
// points must hold exactly one more entry than scalars. A nil point stands for
// an encoding that failed to decompress and makes the claim false.
type BatchVerification interface {
	Append(basisScalar *ristretto.Scalar, scalars []*ristretto.Scalar, points []*ristretto.Point)
}

// SingleVerifier checks each appended equation immediately.
type SingleVerifier struct {
	appended bool
	result   error
}

// VerifySingle runs fn against a fresh SingleVerifier. The result is
// ErrInvalidSignature unless fn appended at least one equation and every
// appended equation holds.
func VerifySingle(fn func(*SingleVerifier)) error {
	verifier := &SingleVerifier{result: ErrInvalidSignature}
	fn(verifier)
	return verifier.result
}

func (v *SingleVerifier) Append(basisScalar *ristretto.Scalar, scalars []*ristretto.Scalar, points []*ristretto.Point) {
	err := checkEquation(basisScalar, scalars, points)
	if !v.appended {
		v.appended = true
		v.result = err
		return
	}
	if v.result == nil {
		v.result = err
	}
}

func checkEquation(basisScalar *ristretto.Scalar, scalars []*ristretto.Scalar, points []*ristretto.Point) error {
	if len(points) != len(scalars)+1 {
		return ErrInvalidSignature
	}
	for _, p := range points {
		if p == nil {
			return ErrInvalidSignature
		}
	}
	all := make([]*ristretto.Scalar, 0, len(points))
	all = append(all, basisScalar)
	all = append(all, scalars...)
	if !isIdentity(multiscalarMul(all, points)) {
		return ErrInvalidSignature
	}
	return nil
}

// BatchVerifier accumulates equations and checks them with one multiscalar
// multiplication. Every equation is scaled by its own weight drawn from rand,
// so invalid equations cannot be chosen to cancel each other out.
//
// A BatchVerifier is single-writer and single-use: Verify consumes it.
type BatchVerifier struct {
	rand    io.Reader
	weights []*ristretto.Scalar
	points  []*ristretto.Point
	count   int
	failed  bool
	done    bool
}

func NewBatchVerifier(rand io.Reader) *BatchVerifier {
	return NewBatchVerifierWithCapacity(rand, 0)
}

// NewBatchVerifierWithCapacity preallocates room for n signatures.
func NewBatchVerifierWithCapacity(rand io.Reader, n int) *BatchVerifier {
	return &BatchVerifier{
		rand:    rand,
		weights: make([]*ristretto.Scalar, 0, n*TERMS_PER_SIGNATURE),
		points:  make([]*ristretto.Point, 0, n*TERMS_PER_SIGNATURE),
	}
}

// Len returns the number of equations appended so far.
func (b *BatchVerifier) Len() int {
	return b.count
}

func (b *BatchVerifier) Append(basisScalar *ristretto.Scalar, scalars []*ristretto.Scalar, points []*ristretto.Point) {
	b.count += 1
	if b.done || b.failed {
		b.failed = true
		return
	}
	if len(points) != len(scalars)+1 {
		b.failed = true
		return
	}
	for _, p := range points {
		if p == nil {
			b.failed = true
			return
		}
	}

	w, err := randomScalar(b.rand)
	if err != nil || isZeroScalar(w) {
		b.failed = true
		return
	}

	var r ristretto.Scalar
	b.weights = append(b.weights, r.Mul(w, basisScalar))
	for _, s := range scalars {
		var r ristretto.Scalar
		b.weights = append(b.weights, r.Mul(w, s))
	}
	b.points = append(b.points, points...)
}

// Verify checks all appended equations at once. An empty batch is valid. The
// verifier cannot be used again afterwards.
func (b *BatchVerifier) Verify() error {
	if b.done {
		return ErrInvalidBatch
	}
	b.done = true
	weights, points := b.weights, b.points
	b.weights, b.points = nil, nil

	if b.failed {
		return ErrInvalidBatch
	}
	if len(weights) == 0 {
		return nil
	}
	if !isIdentity(multiscalarMul(weights, points)) {
		return ErrInvalidBatch
	}
	return nil
}

package zkschnorr

import (
	"encoding/hex"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// SigningKey is the long-term secret scalar.
type SigningKey = ristretto.Scalar

// VerificationKey carries its own basis instead of the group generator:
// Public = Basis·x and Basis = G·r for a random r chosen at key creation.
type VerificationKey struct {
	Basis  CompressedPoint
	Public CompressedPoint
}

// NewVerificationKey does not validate the points, malformed encodings are
// reported by the first operation that decompresses them.
func NewVerificationKey(basis, public CompressedPoint) VerificationKey {
	return VerificationKey{Basis: basis, Public: public}
}

func VerificationKeyFromSecret(privkey *SigningKey, r *ristretto.Scalar) VerificationKey {
	g := BasisFromSecret(r)
	var h ristretto.Point
	h.ScalarMult(g, privkey)
	return NewVerificationKey(compress(g), compress(&h))
}

func BasisFromSecret(r *ristretto.Scalar) *ristretto.Point {
	var g ristretto.Point
	return g.ScalarMultBase(r)
}

func VerificationKeyFromBytes(buf []byte) (VerificationKey, error) {
	if len(buf) != VERIFICATION_KEY_LEN {
		return VerificationKey{}, fmt.Errorf("Invalid verification key size %d: %w", len(buf), ErrInvalidSignature)
	}
	var key VerificationKey
	copy(key.Basis[:], buf[:POINT_LEN])
	copy(key.Public[:], buf[POINT_LEN:])
	return key, nil
}

func (key VerificationKey) Points() (CompressedPoint, CompressedPoint) {
	return key.Basis, key.Public
}

func (key VerificationKey) Array() [VERIFICATION_KEY_LEN]byte {
	var buf [VERIFICATION_KEY_LEN]byte
	copy(buf[:POINT_LEN], key.Basis[:])
	copy(buf[POINT_LEN:], key.Public[:])
	return buf
}

func (key VerificationKey) Bytes() []byte {
	buf := key.Array()
	return buf[:]
}

func (key VerificationKey) Equal(other VerificationKey) bool {
	return key.Basis == other.Basis && key.Public == other.Public
}

func (key VerificationKey) String() string {
	return hex.EncodeToString(key.Bytes())
}

// decompress returns nil in place of any point that is not a valid encoding.
// An identity basis is reported as nil too.
func (key VerificationKey) decompress() (*ristretto.Point, *ristretto.Point) {
	return key.basis(), key.Public.Decompress()
}

func (key VerificationKey) basis() *ristretto.Point {
	basis := key.Basis.Decompress()
	if basis == nil || isIdentity(basis) {
		return nil
	}
	return basis
}

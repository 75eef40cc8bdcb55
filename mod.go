package zkschnorr

import (
	"encoding/hex"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// ℓ = 2^252 + 27742317777372353535851937790883648493, little endian
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// CompressedPoint is the canonical 32-byte ristretto encoding of a group element.
type CompressedPoint [POINT_LEN]byte

// Decompress returns nil when p is not a valid encoding.
func (p CompressedPoint) Decompress() *ristretto.Point {
	buf := [POINT_LEN]byte(p)
	var point ristretto.Point
	if !point.SetBytes(&buf) {
		return nil
	}
	return &point
}

func (p CompressedPoint) String() string {
	return hex.EncodeToString(p[:])
}

func compress(p *ristretto.Point) CompressedPoint {
	var c CompressedPoint
	copy(c[:], p.Bytes())
	return c
}

func fromBytesModOrderWide(data []byte) *ristretto.Scalar {
	var data64 [WIDE_SCALAR_LEN]byte
	copy(data64[:], data)
	var hs ristretto.Scalar
	return hs.SetReduced(&data64)
}

// scalarFromCanonicalBytes rejects encodings that are not fully reduced mod ℓ.
func scalarFromCanonicalBytes(buf []byte) (*ristretto.Scalar, bool) {
	if len(buf) != SCALAR_LEN {
		return nil, false
	}
	var buf32 [SCALAR_LEN]byte
	copy(buf32[:], buf)
	if !isCanonicalScalar(&buf32) {
		return nil, false
	}
	var s ristretto.Scalar
	return s.SetBytes(&buf32), true
}

func isCanonicalScalar(buf *[SCALAR_LEN]byte) bool {
	for i := SCALAR_LEN - 1; i >= 0; i-- {
		if buf[i] < groupOrder[i] {
			return true
		}
		if buf[i] > groupOrder[i] {
			return false
		}
	}
	return false
}

func randomScalar(rand io.Reader) (*ristretto.Scalar, error) {
	var buf [WIDE_SCALAR_LEN]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, err
	}
	return fromBytesModOrderWide(buf[:]), nil
}

func isZeroScalar(s *ristretto.Scalar) bool {
	var zero ristretto.Scalar
	return s.Equals(zero.SetZero())
}

func isIdentity(p *ristretto.Point) bool {
	var zero ristretto.Point
	return p.Equals(zero.SetZero())
}

// multiscalarMul computes Σ scalars[i]·points[i]. The caller guarantees
// matching lengths and non-nil points.
func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

package zkschnorr

import (
	"encoding/binary"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [SCALAR_LEN]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func TestCanonicalScalar(t *testing.T) {
	assert := assert.New(t)

	order := groupOrder
	assert.False(isCanonicalScalar(&order))

	below := groupOrder
	below[0] -= 1
	assert.True(isCanonicalScalar(&below))

	var zero [SCALAR_LEN]byte
	assert.True(isCanonicalScalar(&zero))

	var max [SCALAR_LEN]byte
	for i := range max {
		max[i] = 0xff
	}
	assert.False(isCanonicalScalar(&max))

	s, ok := scalarFromCanonicalBytes(below[:])
	assert.True(ok)
	var minusOne, one ristretto.Scalar
	minusOne.Neg(one.SetOne())
	assert.True(s.Equals(&minusOne))

	_, ok = scalarFromCanonicalBytes(order[:])
	assert.False(ok)
	_, ok = scalarFromCanonicalBytes(below[:31])
	assert.False(ok)
}

func TestMultiscalarMul(t *testing.T) {
	assert := assert.New(t)

	var g ristretto.Point
	g.SetBase()
	h := BasisFromSecret(uint64ToScalar(7))

	// 3·G + 5·H == G·(3 + 35)
	p := multiscalarMul([]*ristretto.Scalar{uint64ToScalar(3), uint64ToScalar(5)}, []*ristretto.Point{&g, h})
	var expected ristretto.Point
	expected.ScalarMultBase(uint64ToScalar(38))
	assert.True(p.Equals(&expected))

	assert.True(isIdentity(multiscalarMul(nil, nil)))

	var invalid CompressedPoint
	for i := range invalid {
		invalid[i] = 0xff
	}
	assert.Nil(invalid.Decompress())
	assert.True(compress(&g).Decompress().Equals(&g))
}

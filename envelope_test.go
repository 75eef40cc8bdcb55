package zkschnorr

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestSignedMessage(t *testing.T) {
	assert := assert.New(t)

	kp := testKeypair(42, 7)
	m, err := NewSignedMessage([]byte("test"), []byte("Hello, World!"), kp)
	require.Nil(t, err)
	assert.Nil(m.Verify())

	data := m.Marshal()
	decoded, err := UnmarshalSignedMessage(data)
	require.Nil(t, err)
	assert.True(m.Key.Equal(decoded.Key))
	assert.True(m.Signature.Equal(decoded.Signature))
	assert.Equal(m.Label, decoded.Label)
	assert.Equal(m.Message, decoded.Message)
	assert.Nil(decoded.Verify())

	decoded.Message = []byte("Hello, World?")
	assert.ErrorIs(decoded.Verify(), ErrInvalidSignature)
	decoded.Signature = nil
	assert.ErrorIs(decoded.Verify(), ErrInvalidSignature)

	_, err = UnmarshalSignedMessage(data[:len(data)-1])
	assert.ErrorIs(err, ErrInvalidSignature)
	_, err = UnmarshalSignedMessage(nil)
	assert.ErrorIs(err, ErrInvalidSignature)

	extended := protowire.AppendTag(append([]byte{}, data...), 9, protowire.VarintType)
	extended = protowire.AppendVarint(extended, 12345)
	extended = protowire.AppendTag(extended, 10, protowire.BytesType)
	extended = protowire.AppendBytes(extended, []byte("unknown"))
	decoded, err = UnmarshalSignedMessage(extended)
	require.Nil(t, err)
	assert.Nil(decoded.Verify())

	unsigned := &SignedMessage{Key: kp.Public, Label: m.Label, Message: m.Message}
	_, err = UnmarshalSignedMessage(unsigned.Marshal())
	assert.ErrorIs(err, ErrInvalidSignature)

	var short []byte
	short = protowire.AppendTag(short, signedMessageKey, protowire.BytesType)
	short = protowire.AppendBytes(short, kp.Public.Bytes()[:POINT_LEN])
	short = protowire.AppendTag(short, signedMessageSignature, protowire.BytesType)
	short = protowire.AppendBytes(short, m.Signature.Bytes())
	_, err = UnmarshalSignedMessage(short)
	assert.ErrorIs(err, ErrInvalidSignature)
}

func TestVerifySignedMessages(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(VerifySignedMessages(rand.Reader, nil))

	msgs := make([]*SignedMessage, 8)
	for i := range msgs {
		kp, err := KeypairFromSeed([]byte(fmt.Sprintf("signed message seed number %05d", i)))
		require.Nil(t, err)
		msgs[i], err = NewSignedMessage([]byte("batch"), []byte(fmt.Sprintf("message %d", i)), kp)
		require.Nil(t, err)
	}
	assert.Nil(VerifySignedMessages(rand.Reader, msgs))

	tampered := *msgs[5]
	tampered.Message = []byte("tampered")
	msgs[5] = &tampered
	assert.ErrorIs(VerifySignedMessages(rand.Reader, msgs), ErrInvalidBatch)

	msgs[5] = &SignedMessage{Key: msgs[4].Key, Label: msgs[4].Label, Message: msgs[4].Message}
	assert.ErrorIs(VerifySignedMessages(rand.Reader, msgs), ErrInvalidBatch)
}

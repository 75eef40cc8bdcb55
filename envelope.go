package zkschnorr

import (
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the SignedMessage wire encoding.
const (
	signedMessageKey       protowire.Number = 1
	signedMessageSignature protowire.Number = 2
	signedMessageLabel     protowire.Number = 3
	signedMessageBody      protowire.Number = 4
)

// SignedMessage bundles a message with its label, signer key and signature.
// It is encoded in protobuf wire format.
type SignedMessage struct {
	Key       VerificationKey
	Signature *Signature
	Label     []byte
	Message   []byte
}

func NewSignedMessage(label, message []byte, kp *Keypair) (*SignedMessage, error) {
	sig, err := kp.SignMessage(label, message)
	if err != nil {
		return nil, err
	}
	return &SignedMessage{
		Key:       kp.Public,
		Signature: sig,
		Label:     label,
		Message:   message,
	}, nil
}

func (m *SignedMessage) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, signedMessageKey, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Key.Bytes())
	if m.Signature != nil {
		b = protowire.AppendTag(b, signedMessageSignature, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Signature.Bytes())
	}
	b = protowire.AppendTag(b, signedMessageLabel, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Label)
	b = protowire.AppendTag(b, signedMessageBody, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Message)
	return b
}

func UnmarshalSignedMessage(b []byte) (*SignedMessage, error) {
	m := &SignedMessage{}
	var hasKey bool
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("Invalid signed message tag: %v: %w", protowire.ParseError(n), ErrInvalidSignature)
		}
		b = b[n:]

		if typ != protowire.BytesType || num < signedMessageKey || num > signedMessageBody {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("Invalid signed message field %d: %v: %w", num, protowire.ParseError(n), ErrInvalidSignature)
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("Invalid signed message field %d: %v: %w", num, protowire.ParseError(n), ErrInvalidSignature)
		}
		b = b[n:]

		switch num {
		case signedMessageKey:
			key, err := VerificationKeyFromBytes(v)
			if err != nil {
				return nil, err
			}
			m.Key = key
			hasKey = true
		case signedMessageSignature:
			sig, err := SignatureFromBytes(v)
			if err != nil {
				return nil, err
			}
			m.Signature = sig
		case signedMessageLabel:
			m.Label = append([]byte{}, v...)
		case signedMessageBody:
			m.Message = append([]byte{}, v...)
		}
	}
	if !hasKey || m.Signature == nil {
		return nil, fmt.Errorf("Incomplete signed message: %w", ErrInvalidSignature)
	}
	return m, nil
}

func (m *SignedMessage) Verify() error {
	if m.Signature == nil {
		return ErrInvalidSignature
	}
	return m.Signature.VerifyMessage(m.Label, m.Message, m.Key)
}

func (m *SignedMessage) VerifyBatched(batch BatchVerification) {
	if m.Signature == nil {
		batch.Append(nil, nil, []*ristretto.Point{nil})
		return
	}
	m.Signature.VerifyMessageBatched(m.Label, m.Message, m.Key, batch)
}

// VerifySignedMessages checks all messages with one batch verification.
func VerifySignedMessages(rand io.Reader, msgs []*SignedMessage) error {
	batch := NewBatchVerifierWithCapacity(rand, len(msgs))
	for _, m := range msgs {
		m.VerifyBatched(batch)
	}
	return batch.Verify()
}

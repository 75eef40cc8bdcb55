package zkschnorr

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"github.com/gtank/merlin"
)

const (
	entryInit      = 0x00
	entryMessage   = 0x01
	entryChallenge = 0x02
)

// Transcript is the Fiat-Shamir accumulator shared by signer and verifier.
// Besides the merlin state it keeps a running blake2b digest of every entry,
// which the signer snapshots to derive its nonce without touching the merlin
// state. A Transcript must not be used from several goroutines at once.
type Transcript struct {
	t      *merlin.Transcript
	digest hash.Hash
}

func NewTranscript(label string) *Transcript {
	t := &Transcript{
		t:      merlin.NewTranscript(label),
		digest: blake2b.New512(),
	}
	t.record(entryInit, []byte(label), nil)
	return t
}

func (t *Transcript) AppendMessage(label, message []byte) {
	t.t.AppendMessage(label, message)
	t.record(entryMessage, label, message)
}

// DomainSep commits the signature protocol tag.
func (t *Transcript) DomainSep() {
	t.AppendMessage([]byte(LABEL_DOMAIN_SEP), []byte(SIGNATURE_DOMAIN_SEP))
}

func (t *Transcript) AppendScalar(label string, s *ristretto.Scalar) {
	t.AppendMessage([]byte(label), s.Bytes())
}

func (t *Transcript) AppendPoint(label string, p CompressedPoint) {
	t.AppendMessage([]byte(label), p[:])
}

func (t *Transcript) ChallengeScalar(label string) *ristretto.Scalar {
	data := t.t.ExtractBytes([]byte(label), WIDE_SCALAR_LEN)
	t.record(entryChallenge, []byte(label), data)
	return fromBytesModOrderWide(data)
}

// WitnessScalar derives a secret nonce bound to the current transcript state
// and secret, hedged with entropy read from rand. The transcript itself is not
// modified.
func (t *Transcript) WitnessScalar(label string, secret *ristretto.Scalar, rand io.Reader) (*ristretto.Scalar, error) {
	var entropy [WITNESS_ENTROPY_LEN]byte
	if _, err := io.ReadFull(rand, entropy[:]); err != nil {
		return nil, err
	}
	return witnessScalar(t.snapshot(), label, secret, entropy[:]), nil
}

func (t *Transcript) snapshot() []byte {
	return t.digest.Sum(nil)
}

func (t *Transcript) record(kind byte, label, value []byte) {
	var n [8]byte
	t.digest.Write([]byte{kind})
	binary.LittleEndian.PutUint64(n[:], uint64(len(label)))
	t.digest.Write(n[:])
	t.digest.Write(label)
	binary.LittleEndian.PutUint64(n[:], uint64(len(value)))
	t.digest.Write(n[:])
	t.digest.Write(value)
}

// witnessScalar is a pure function of its inputs: the same snapshot, secret
// and entropy always give the same scalar.
func witnessScalar(snapshot []byte, label string, secret *ristretto.Scalar, entropy []byte) *ristretto.Scalar {
	w := merlin.NewTranscript(WITNESS_DOMAIN_TAG)
	w.AppendMessage([]byte("transcript"), snapshot)
	w.AppendMessage([]byte(label), secret.Bytes())
	w.AppendMessage([]byte("rng"), entropy)
	return fromBytesModOrderWide(w.ExtractBytes([]byte("witness"), WIDE_SCALAR_LEN))
}

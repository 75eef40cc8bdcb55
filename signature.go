package zkschnorr

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Signature is a Schnorr proof of knowledge of x with Public = Basis·x.
type Signature struct {
	// R is the nonce commitment Basis·k.
	R CompressedPoint
	// S is the response k + c·x.
	S ristretto.Scalar
}

// Sign proves knowledge of privkey over the current state of t, drawing the
// nonce entropy from crypto/rand.
func Sign(t *Transcript, pubkey VerificationKey, privkey *SigningKey) (*Signature, error) {
	return SignWithRand(rand.Reader, t, pubkey, privkey)
}

func SignWithRand(rand io.Reader, t *Transcript, pubkey VerificationKey, privkey *SigningKey) (*Signature, error) {
	basis := pubkey.basis()
	if basis == nil {
		return nil, ErrInvalidSignature
	}

	commitKey(t, pubkey)

	k, err := t.WitnessScalar(LABEL_WITNESS, privkey, rand)
	if err != nil {
		return nil, err
	}

	var R ristretto.Point
	R.ScalarMult(basis, k)
	compressedR := compress(&R)

	t.AppendPoint(LABEL_NONCE, compressedR)
	c := t.ChallengeScalar(LABEL_CHALLENGE)

	var cx, s ristretto.Scalar
	cx.Mul(c, privkey)
	s.Add(k, &cx)
	k.SetZero()

	return &Signature{R: compressedR, S: s}, nil
}

// Verify checks the signature against a transcript in the same state as the
// one passed to Sign.
func (sig *Signature) Verify(t *Transcript, pubkey VerificationKey) error {
	return VerifySingle(func(v *SingleVerifier) {
		sig.VerifyBatched(t, pubkey, v)
	})
}

// VerifyBatched appends the equation s·Basis − R − c·Public == identity to batch.
func (sig *Signature) VerifyBatched(t *Transcript, pubkey VerificationKey, batch BatchVerification) {
	commitKey(t, pubkey)
	t.AppendPoint(LABEL_NONCE, sig.R)
	c := t.ChallengeScalar(LABEL_CHALLENGE)

	var one, minusOne, minusC ristretto.Scalar
	minusOne.Neg(one.SetOne())
	minusC.Neg(c)

	basis, public := pubkey.decompress()
	batch.Append(
		&sig.S,
		[]*ristretto.Scalar{&minusOne, &minusC},
		[]*ristretto.Point{basis, sig.R.Decompress(), public},
	)
}

func commitKey(t *Transcript, pubkey VerificationKey) {
	t.DomainSep()
	t.AppendPoint(LABEL_BASIS, pubkey.Basis)
	t.AppendPoint(LABEL_PUBLIC, pubkey.Public)
}

// SignMessage signs message under label with a transcript of fixed shape.
func SignMessage(label, message []byte, pubkey VerificationKey, privkey *SigningKey) (*Signature, error) {
	return Sign(transcriptForMessage(label, message), pubkey, privkey)
}

func (sig *Signature) VerifyMessage(label, message []byte, pubkey VerificationKey) error {
	return sig.Verify(transcriptForMessage(label, message), pubkey)
}

func (sig *Signature) VerifyMessageBatched(label, message []byte, pubkey VerificationKey, batch BatchVerification) {
	sig.VerifyBatched(transcriptForMessage(label, message), pubkey, batch)
}

func transcriptForMessage(label, message []byte) *Transcript {
	t := NewTranscript(SIGN_MESSAGE_DOMAIN_TAG)
	t.AppendMessage(label, message)
	return t
}

// SignatureFromBytes decodes R ∥ s. The nonce commitment must decompress and
// the response must be a canonical scalar.
func SignatureFromBytes(buf []byte) (*Signature, error) {
	if len(buf) != SIGNATURE_LEN {
		return nil, ErrInvalidSignature
	}
	var R CompressedPoint
	copy(R[:], buf[:POINT_LEN])
	if R.Decompress() == nil {
		return nil, ErrInvalidSignature
	}
	s, ok := scalarFromCanonicalBytes(buf[POINT_LEN:])
	if !ok {
		return nil, ErrInvalidSignature
	}
	return &Signature{R: R, S: *s}, nil
}

func (sig *Signature) Array() [SIGNATURE_LEN]byte {
	var buf [SIGNATURE_LEN]byte
	copy(buf[:POINT_LEN], sig.R[:])
	copy(buf[POINT_LEN:], sig.S.Bytes())
	return buf
}

func (sig *Signature) Bytes() []byte {
	buf := sig.Array()
	return buf[:]
}

func (sig *Signature) Equal(other *Signature) bool {
	return sig.R == other.R && sig.S.Equals(&other.S)
}

func (sig *Signature) String() string {
	return hex.EncodeToString(sig.Bytes())
}

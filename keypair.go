package zkschnorr

import (
	"fmt"
	"io"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/crypto/hkdf"
)

// Keypair holds a signing key with its verification key. The basis
// randomness is dropped once the verification key is built.
type Keypair struct {
	Secret *SigningKey
	Public VerificationKey
}

func NewKeypair(secret *SigningKey, r *ristretto.Scalar) *Keypair {
	x := *secret
	return &Keypair{
		Secret: &x,
		Public: VerificationKeyFromSecret(&x, r),
	}
}

func GenerateKeypair(rand io.Reader) (*Keypair, error) {
	secret, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	r, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	kp := NewKeypair(secret, r)
	secret.SetZero()
	r.SetZero()
	return kp, nil
}

// KeypairFromSeed deterministically expands seed into a signing key and a
// basis randomness.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) < MIN_SEED_LEN {
		return nil, fmt.Errorf("Invalid seed size %d, at least %d", len(seed), MIN_SEED_LEN)
	}
	okm, err := kdfStep(seed, []byte("keypair"), 2*WIDE_SCALAR_LEN)
	if err != nil {
		return nil, err
	}
	secret := fromBytesModOrderWide(okm[:WIDE_SCALAR_LEN])
	r := fromBytesModOrderWide(okm[WIDE_SCALAR_LEN:])
	kp := NewKeypair(secret, r)
	secret.SetZero()
	r.SetZero()
	return kp, nil
}

// KeypairFromMiniSecret expands a 32-byte sr25519 mini secret key. The signing
// key is the sr25519 secret scalar, so with a basis randomness of one the
// public point would be the sr25519 public key.
func KeypairFromMiniSecret(mini [32]byte) (*Keypair, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(mini)
	if err != nil {
		return nil, err
	}
	raw := msk.ExpandUniform().Encode()
	secret, ok := scalarFromCanonicalBytes(raw[:])
	if !ok {
		return nil, fmt.Errorf("Invalid expanded secret key")
	}

	okm, err := kdfStep(mini[:], []byte("basis"), WIDE_SCALAR_LEN)
	if err != nil {
		return nil, err
	}
	r := fromBytesModOrderWide(okm)
	kp := NewKeypair(secret, r)
	secret.SetZero()
	r.SetZero()
	return kp, nil
}

func kdfStep(secret, info []byte, size int) ([]byte, error) {
	okm := make([]byte, size)
	key := hkdf.New(blake2b.New512, secret, []byte(KEYPAIR_DOMAIN_TAG), info)
	if _, err := io.ReadFull(key, okm); err != nil {
		return nil, err
	}
	return okm, nil
}

func (kp *Keypair) Sign(t *Transcript) (*Signature, error) {
	return Sign(t, kp.Public, kp.Secret)
}

func (kp *Keypair) SignMessage(label, message []byte) (*Signature, error) {
	return SignMessage(label, message, kp.Public, kp.Secret)
}

// Zero wipes the signing key.
func (kp *Keypair) Zero() {
	if kp.Secret != nil {
		kp.Secret.SetZero()
	}
}

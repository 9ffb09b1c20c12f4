package ed25519

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/ecliptic-labs/ed25519/fr"
	"github.com/ecliptic-labs/ed25519/twistededwards"
)

const (
	// SeedSize is the size of a private key seed.
	SeedSize = 32
	// PublicKeySize is the size of an encoded public key.
	PublicKeySize = 32
	// SignatureSize is the size of an encoded signature.
	SignatureSize = 64
)

var (
	ErrInvalidSeed      = errors.New("ed25519: seed must be 32 bytes")
	ErrInvalidPublicKey = errors.New("ed25519: invalid public key")
	ErrInvalidSignature = errors.New("ed25519: invalid signature encoding")
	ErrSeedOverflow     = errors.New("ed25519: integer seed does not fit in 32 bytes")
)

// PrivateKey is an Ed25519 private key: a 32-byte seed from which the
// secret scalar and the signing prefix are derived.
type PrivateKey struct {
	seed [SeedSize]byte
}

// NewPrivateKey builds a private key from a 32-byte seed.
func NewPrivateKey(seed []byte) (PrivateKey, error) {
	var sk PrivateKey
	if len(seed) != SeedSize {
		return sk, ErrInvalidSeed
	}
	copy(sk.seed[:], seed)
	return sk, nil
}

// NewPrivateKeyFromHex builds a private key from a 64-character hex seed.
func NewPrivateKeyFromHex(s string) (PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return NewPrivateKey(b)
}

// NewPrivateKeyFromInt builds a private key from a non-negative integer,
// serialized little-endian and zero-padded to 32 bytes. Integers needing
// more than 32 bytes are rejected.
func NewPrivateKeyFromInt(k *big.Int) (PrivateKey, error) {
	var sk PrivateKey
	if k.Sign() < 0 {
		return sk, ErrInvalidSeed
	}
	if k.BitLen() > 8*SeedSize {
		return sk, ErrSeedOverflow
	}
	var be [SeedSize]byte
	k.FillBytes(be[:])
	for i := 0; i < SeedSize; i++ {
		sk.seed[i] = be[SeedSize-1-i]
	}
	return sk, nil
}

// Seed returns the 32-byte seed.
func (sk PrivateKey) Seed() [SeedSize]byte {
	return sk.seed
}

// Hex returns the seed as 64 hex characters.
func (sk PrivateKey) Hex() string {
	return hex.EncodeToString(sk.seed[:])
}

// Public derives the public key [a]B from the clamped secret scalar a.
func (sk PrivateKey) Public() PublicKey {
	a := sk.secretScalar()
	var A twistededwards.Point
	if _, err := A.ScalarMulBase(a); err != nil {
		panic("ed25519: clamped scalar rejected: " + err.Error())
	}
	return NewPublicKeyFromPoint(&A)
}

// PublicKey is a decoded Ed25519 public key together with the 32-byte
// encoding it was built from.
type PublicKey struct {
	p   twistededwards.Point
	enc [PublicKeySize]byte
}

// NewPublicKey decodes a 32-byte public key encoding. Decode failures
// (non-canonical y, no square root, off-curve) surface as errors.
func NewPublicKey(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeySize {
		return pk, ErrInvalidPublicKey
	}
	if _, err := pk.p.SetBytes(b); err != nil {
		return pk, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	copy(pk.enc[:], b)
	return pk, nil
}

// NewPublicKeyFromHex decodes a public key from 64 hex characters.
func NewPublicKeyFromHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return NewPublicKey(b)
}

// NewPublicKeyFromPoint builds a public key from an already decoded point.
func NewPublicKeyFromPoint(p *twistededwards.Point) PublicKey {
	var pk PublicKey
	pk.p.Set(p)
	pk.enc = p.Bytes()
	return pk
}

// Bytes returns the 32-byte public key encoding.
func (pk PublicKey) Bytes() [PublicKeySize]byte {
	return pk.enc
}

// Hex returns the public key encoding as 64 hex characters.
func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk.enc[:])
}

// Point returns a copy of the decoded curve point.
func (pk PublicKey) Point() twistededwards.Point {
	var p twistededwards.Point
	p.Set(&pk.p)
	return p
}

// IsSmallOrder reports whether the key lies in the 8-torsion subgroup.
// Such keys verify trivially forged signatures; callers needing strong
// unforgeability should reject them before calling Verify.
func (pk PublicKey) IsSmallOrder() bool {
	return pk.p.IsSmallOrder()
}

// Signature is a decoded Ed25519 signature (R, s) with R a curve point and
// s a canonical scalar mod the group order.
type Signature struct {
	r twistededwards.Point
	s fr.Element
}

// NewSignature parses a 64-byte signature R || s. R must decode to a curve
// point and s must be a canonical scalar: s >= l is rejected.
func NewSignature(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, ErrInvalidSignature
	}
	if _, err := sig.r.SetBytes(b[:32]); err != nil {
		return sig, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if err := sig.s.SetBytesCanonical(b[32:]); err != nil {
		return sig, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return sig, nil
}

// NewSignatureFromHex parses a signature from 128 hex characters.
func NewSignatureFromHex(s string) (Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return NewSignature(b)
}

// NewSignatureFromRS builds a signature from a decoded R and a scalar s in
// [0, l).
func NewSignatureFromRS(r *twistededwards.Point, s *big.Int) (Signature, error) {
	var sig Signature
	if s.Sign() < 0 || s.Cmp(fr.Modulus()) >= 0 {
		return sig, ErrInvalidSignature
	}
	sig.r.Set(r)
	sig.s.SetBigInt(s)
	return sig, nil
}

// R returns a copy of the signature's curve point.
func (sig Signature) R() twistededwards.Point {
	var p twistededwards.Point
	p.Set(&sig.r)
	return p
}

// S returns the scalar component.
func (sig Signature) S() *big.Int {
	var s big.Int
	return sig.s.BigInt(&s)
}

// Bytes returns the 64-byte encoding R || s.
func (sig Signature) Bytes() [SignatureSize]byte {
	var out [SignatureSize]byte
	r := sig.r.Bytes()
	s := sig.s.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// Hex returns the signature encoding as 128 hex characters.
func (sig Signature) Hex() string {
	b := sig.Bytes()
	return hex.EncodeToString(b[:])
}

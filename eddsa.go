package ed25519

import (
	"crypto/sha512"
	"math/big"

	"github.com/ecliptic-labs/ed25519/fr"
	"github.com/ecliptic-labs/ed25519/twistededwards"
)

// expand derives the secret scalar and the signing prefix from the seed,
// per RFC 8032 section 5.1.5: the low half of SHA-512(seed) is clamped and
// read little-endian, the high half becomes the prefix.
func (sk PrivateKey) expand() (*big.Int, [32]byte) {
	h := sha512.Sum512(sk.seed[:])
	var prefix [32]byte
	copy(prefix[:], h[32:])
	return clampScalar(h[:32]), prefix
}

// secretScalar returns the clamped secret scalar reduced mod the group
// order, the form every multiplication and signature computation uses.
func (sk PrivateKey) secretScalar() *big.Int {
	a, _ := sk.expand()
	return a.Mod(a, fr.Modulus())
}

// clampScalar clears the three low bits and the top bit of the 32-byte
// little-endian scalar and sets bit 254, yielding a multiple of 8 in
// [2^254, 2^255).
func clampScalar(b []byte) *big.Int {
	var le [32]byte
	copy(le[:], b)
	le[0] &= 248
	le[31] &= 127
	le[31] |= 64
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = le[31-i]
	}
	return new(big.Int).SetBytes(be[:])
}

// hashToScalar hashes the concatenation of the given chunks with SHA-512
// and reduces the 64-byte digest mod the group order.
func hashToScalar(chunks ...[]byte) fr.Element {
	h := sha512.New()
	for _, c := range chunks {
		h.Write(c)
	}
	var sum [64]byte
	h.Sum(sum[:0])
	var k fr.Element
	if err := k.SetBytesWide(sum[:]); err != nil {
		panic("ed25519: sha512 digest is 64 bytes: " + err.Error())
	}
	return k
}

// GetPublicKey derives the public key for sk.
func GetPublicKey(sk PrivateKey) PublicKey {
	return sk.Public()
}

// Sign signs message with sk per RFC 8032:
//
//	r = SHA-512(prefix || message) mod l
//	R = [r]B
//	k = SHA-512(enc(R) || enc(A) || message) mod l
//	s = r + k*a mod l
func Sign(message []byte, sk PrivateKey) (Signature, error) {
	a, prefix := sk.expand()
	a.Mod(a, fr.Modulus())
	var aRed fr.Element
	aRed.SetBigInt(a)

	var A twistededwards.Point
	if _, err := A.ScalarMulBase(a); err != nil {
		return Signature{}, err
	}
	aEnc := A.Bytes()

	r := hashToScalar(prefix[:], message)
	var rInt big.Int
	r.BigInt(&rInt)
	var R twistededwards.Point
	if _, err := R.ScalarMulBase(&rInt); err != nil {
		return Signature{}, err
	}
	rEnc := R.Bytes()

	k := hashToScalar(rEnc[:], aEnc[:], message)

	var s fr.Element
	s.Mul(&k, &aRed)
	s.Add(&s, &r)

	var sig Signature
	sig.r.Set(&R)
	sig.s.Set(&s)
	return sig, nil
}

// Verify checks sig over message against pub. A signature that parses but
// fails the group equation yields (false, nil); only malformed inputs
// produce errors, and those surface when pub and sig are constructed.
// Acceptance is [s]B == R + [k]A with k = SHA-512(enc(R) || enc(A) ||
// message) mod l.
func Verify(pub PublicKey, sig Signature, message []byte) (bool, error) {
	rEnc := sig.r.Bytes()
	aEnc := pub.Bytes()
	k := hashToScalar(rEnc[:], aEnc[:], message)
	var kInt big.Int
	k.BigInt(&kInt)

	var sInt big.Int
	sig.s.BigInt(&sInt)

	var lhs twistededwards.Point
	if _, err := lhs.ScalarMulBase(&sInt); err != nil {
		return false, err
	}
	var rhs twistededwards.Point
	if _, err := rhs.ScalarMul(&pub.p, &kInt); err != nil {
		return false, err
	}
	rhs.Add(&rhs, &sig.r)

	return lhs.Equal(&rhs), nil
}

// VerifyBytes parses a 64-byte signature and a 32-byte public key and
// verifies them over message. Parse failures are errors, a sound but wrong
// signature is (false, nil).
func VerifyBytes(sig, message, pub []byte) (bool, error) {
	pk, err := NewPublicKey(pub)
	if err != nil {
		return false, err
	}
	sg, err := NewSignature(sig)
	if err != nil {
		return false, err
	}
	return Verify(pk, sg, message)
}

// VerifyHex is VerifyBytes for hex-encoded signature and public key.
func VerifyHex(sigHex string, message []byte, pubHex string) (bool, error) {
	pk, err := NewPublicKeyFromHex(pubHex)
	if err != nil {
		return false, err
	}
	sg, err := NewSignatureFromHex(sigHex)
	if err != nil {
		return false, err
	}
	return Verify(pk, sg, message)
}

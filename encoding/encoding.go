// Package encoding offers (de)serialization APIs for signature material.
// Bundles are CBOR encoded with canonical options and carry a scheme
// identifier in the first field; reading a bundle produced for another
// scheme fails.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Scheme identifies the signature suite bundles are produced for.
const Scheme = "ed25519-sha512"

var ErrInvalidScheme = errors.New("encoding: object was serialized with another scheme")

// Bundle groups a public key, a signature and the signed message for
// storage or transport.
type Bundle struct {
	Scheme    string `cbor:"1,keyasint"`
	PublicKey []byte `cbor:"2,keyasint"`
	Signature []byte `cbor:"3,keyasint"`
	Message   []byte `cbor:"4,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("encoding: cbor options: " + err.Error())
	}
}

// Serialize writes b into the provided writer, stamping the scheme.
func Serialize(w io.Writer, b *Bundle) error {
	b.Scheme = Scheme
	return encMode.NewEncoder(w).Encode(b)
}

// Deserialize reads a bundle from the provided reader; the scheme stamp
// must match.
func Deserialize(r io.Reader, into *Bundle) error {
	if err := cbor.NewDecoder(r).Decode(into); err != nil {
		return fmt.Errorf("encoding: decode bundle: %w", err)
	}
	if into.Scheme != Scheme {
		return ErrInvalidScheme
	}
	return nil
}

// Write serializes a bundle into a file.
func Write(path string, b *Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, b)
}

// Read reads and deserializes a bundle from a file.
func Read(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b Bundle
	if err := Deserialize(f, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

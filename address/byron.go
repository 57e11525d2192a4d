// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package address

import (
	"errors"
	"fmt"
	"hash/crc32"
	"maps"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/zoeldevapps/cardano-crypto.js/cbor"
	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

const (
	// MainnetProtocolMagic is assumed when a legacy address carries no
	// protocol magic attribute
	MainnetProtocolMagic uint32 = 764824073

	BootstrapAttributeDerivationPath uint64 = 1
	BootstrapAttributeProtocolMagic  uint64 = 2

	// Only account and address indexes are stored in a legacy address
	maxDerivationPathLength = 2

	bootstrapAddressTypePubKey  = 0
	bootstrapSpendingDataPubKey = 0
)

// DerivationScheme selects how a legacy wallet derives child keys
type DerivationScheme int

const (
	DerivationSchemeV1 DerivationScheme = 1
	DerivationSchemeV2 DerivationScheme = 2
)

// BootstrapAttributes maps attribute keys to their raw CBOR values
type BootstrapAttributes map[uint64][]byte

type bootstrapAddressEnvelope struct {
	cbor.StructAsArray
	Payload  cbor.WrappedCbor
	Checksum uint32
}

type bootstrapAddressPayload struct {
	cbor.StructAsArray
	Root       []byte
	Attributes cbor.RawMessage
	Type       uint64
}

// PackBootstrapAddress builds a legacy address for the extended public key.
// With scheme V1 the derivation path is encrypted with hdPassphrase and stored
// in the address. A protocol magic other than mainnet is stored as an
// attribute
func PackBootstrapAddress(
	derivationPath []uint32,
	xpub []byte,
	hdPassphrase []byte,
	scheme DerivationScheme,
	protocolMagic uint32,
) ([]byte, error) {
	if err := validateLength("extended public key", xpub, crypto.XpubSize); err != nil {
		return nil, err
	}
	switch scheme {
	case DerivationSchemeV1:
		if derivationPath == nil {
			return nil, ValidationError{
				Field:   "derivation path",
				Message: "required for derivation scheme 1",
			}
		}
		if err := validateLength("HD passphrase", hdPassphrase, crypto.HdPassphraseSize); err != nil {
			return nil, err
		}
	case DerivationSchemeV2:
	default:
		return nil, ValidationError{
			Field:   "derivation scheme",
			Message: fmt.Sprintf("must be 1 or 2, got %d", scheme),
		}
	}
	// The root hash only ever covers the derivation path attribute
	rootAttributes := BootstrapAttributes{}
	if scheme == DerivationSchemeV1 && len(derivationPath) > 0 {
		encryptedPath, err := encryptDerivationPath(derivationPath, hdPassphrase)
		if err != nil {
			return nil, err
		}
		rootAttributes[BootstrapAttributeDerivationPath] = encryptedPath
	}
	attributes := maps.Clone(rootAttributes)
	if protocolMagic != MainnetProtocolMagic {
		magicCbor, err := cbor.Encode(protocolMagic)
		if err != nil {
			return nil, fmt.Errorf("failed to encode protocol magic: %w", err)
		}
		attributes[BootstrapAttributeProtocolMagic] = magicCbor
	}
	root, err := bootstrapAddressRoot(xpub, rootAttributes)
	if err != nil {
		return nil, err
	}
	return encodeBootstrapAddress(root.Bytes(), attributes, bootstrapAddressTypePubKey)
}

func encryptDerivationPath(derivationPath []uint32, hdPassphrase []byte) ([]byte, error) {
	pathCbor, err := cbor.Encode(cbor.NewIndefLengthList(derivationPath))
	if err != nil {
		return nil, fmt.Errorf("failed to encode derivation path: %w", err)
	}
	ciphertext, err := crypto.ChaCha20Poly1305Encrypt(
		pathCbor,
		hdPassphrase,
		crypto.DerivationPathNonce,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt derivation path: %w", err)
	}
	ret, err := cbor.Encode(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to encode derivation path: %w", err)
	}
	return ret, nil
}

func bootstrapAddressRoot(xpub []byte, attributes BootstrapAttributes) (crypto.Blake2b224, error) {
	tmpRoot := []any{
		bootstrapAddressTypePubKey,
		[]any{bootstrapSpendingDataPubKey, xpub},
		attributes,
	}
	rootCbor, err := cbor.Encode(tmpRoot)
	if err != nil {
		return crypto.Blake2b224{}, fmt.Errorf("failed to encode address root: %w", err)
	}
	return crypto.AddressRootHash(rootCbor), nil
}

func encodeBootstrapAddress(root []byte, attributes BootstrapAttributes, addrType uint64) ([]byte, error) {
	if attributes == nil {
		attributes = BootstrapAttributes{}
	}
	rawPayload, err := cbor.Encode([]any{root, attributes, addrType})
	if err != nil {
		return nil, fmt.Errorf("failed to encode legacy address payload: %w", err)
	}
	tmpData := []any{
		cbor.WrappedCbor(rawPayload),
		crc32.ChecksumIEEE(rawPayload),
	}
	ret, err := cbor.Encode(tmpData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode legacy address data: %w", err)
	}
	return ret, nil
}

func decodeBootstrapEnvelope(data []byte) (*bootstrapAddressEnvelope, error) {
	var envelope bootstrapAddressEnvelope
	if err := cbor.DecodeFull(data, &envelope); err != nil {
		return nil, FormatError{Format: "legacy address", Err: err}
	}
	return &envelope, nil
}

func decodeBootstrapPayload(envelope *bootstrapAddressEnvelope) (*bootstrapAddressPayload, BootstrapAttributes, error) {
	var payload bootstrapAddressPayload
	if err := cbor.DecodeFull(envelope.Payload.Bytes(), &payload); err != nil {
		return nil, nil, FormatError{Format: "legacy address payload", Err: err}
	}
	attributes := BootstrapAttributes{}
	if cbor.IsMap(payload.Attributes) {
		if err := cbor.DecodeFull(payload.Attributes, &attributes); err != nil {
			return nil, nil, FormatError{Format: "legacy address attributes", Err: err}
		}
	}
	return &payload, attributes, nil
}

// BootstrapAddressAttributes returns the attribute map of a legacy address.
// The checksum is not verified
func BootstrapAddressAttributes(data []byte) (BootstrapAttributes, error) {
	envelope, err := decodeBootstrapEnvelope(data)
	if err != nil {
		return nil, err
	}
	_, attributes, err := decodeBootstrapPayload(envelope)
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

// BootstrapAddressDerivationPath decrypts the derivation path stored in a
// legacy address. It returns a nil path when the address carries none
func BootstrapAddressDerivationPath(data []byte, hdPassphrase []byte) ([]uint32, error) {
	if err := validateLength("HD passphrase", hdPassphrase, crypto.HdPassphraseSize); err != nil {
		return nil, err
	}
	attributes, err := BootstrapAddressAttributes(data)
	if err != nil {
		return nil, err
	}
	return attributes.DerivationPath(hdPassphrase)
}

// BootstrapAddressProtocolMagic returns the protocol magic stored in a legacy
// address, or MainnetProtocolMagic when none is stored
func BootstrapAddressProtocolMagic(data []byte) (uint32, error) {
	attributes, err := BootstrapAddressAttributes(data)
	if err != nil {
		return 0, err
	}
	return attributes.ProtocolMagic()
}

// IsValidBootstrapAddress returns true if the string is base58 encoded and its
// checksum matches the payload
func IsValidBootstrapAddress(addr string) bool {
	data, err := Base58Decode(addr)
	if err != nil {
		return false
	}
	envelope, err := decodeBootstrapEnvelope(data)
	if err != nil {
		return false
	}
	return crc32.ChecksumIEEE(envelope.Payload.Bytes()) == envelope.Checksum
}

// DerivationPath decrypts the derivation path attribute
func (a BootstrapAttributes) DerivationPath(hdPassphrase []byte) ([]uint32, error) {
	encryptedPathCbor, ok := a[BootstrapAttributeDerivationPath]
	if !ok {
		return nil, nil
	}
	var encryptedPath []byte
	if err := cbor.DecodeFull(encryptedPathCbor, &encryptedPath); err != nil {
		return nil, ErrIncorrectAddressOrPassphrase
	}
	pathCbor, err := crypto.ChaCha20Poly1305Decrypt(
		encryptedPath,
		hdPassphrase,
		crypto.DerivationPathNonce,
	)
	if err != nil {
		return nil, ErrIncorrectAddressOrPassphrase
	}
	var derivationPath []uint32
	if err := cbor.DecodeFull(pathCbor, &derivationPath); err != nil {
		return nil, ErrIncorrectAddressOrPassphrase
	}
	if len(derivationPath) > maxDerivationPathLength {
		return nil, IntegrityError{
			Message: fmt.Sprintf(
				"derivation path has %d indexes, at most %d are allowed",
				len(derivationPath),
				maxDerivationPathLength,
			),
		}
	}
	return derivationPath, nil
}

// ProtocolMagic decodes the protocol magic attribute
func (a BootstrapAttributes) ProtocolMagic() (uint32, error) {
	magicCbor, ok := a[BootstrapAttributeProtocolMagic]
	if !ok {
		return MainnetProtocolMagic, nil
	}
	var protocolMagic uint32
	if err := cbor.DecodeFull(magicCbor, &protocolMagic); err != nil {
		return 0, FormatError{Format: "protocol magic", Err: err}
	}
	return protocolMagic, nil
}

// BootstrapAddress is a decoded legacy address
type BootstrapAddress struct {
	root       CredentialHash
	attributes BootstrapAttributes
	checksum   uint32
	raw        []byte
}

func (*BootstrapAddress) isAddress() {}

func (*BootstrapAddress) Type() AddressType {
	return AddressTypeBootstrap
}

// Root returns the hash committing to the public key and attributes
func (a *BootstrapAddress) Root() CredentialHash {
	return a.root
}

func (a *BootstrapAddress) Attributes() BootstrapAttributes {
	return a.attributes
}

func (a *BootstrapAddress) Checksum() uint32 {
	return a.checksum
}

func (a *BootstrapAddress) ProtocolMagic() (uint32, error) {
	return a.attributes.ProtocolMagic()
}

func (a *BootstrapAddress) DerivationPath(hdPassphrase []byte) ([]uint32, error) {
	if err := validateLength("HD passphrase", hdPassphrase, crypto.HdPassphraseSize); err != nil {
		return nil, err
	}
	return a.attributes.DerivationPath(hdPassphrase)
}

// Bytes returns the address exactly as it was decoded
func (a *BootstrapAddress) Bytes() []byte {
	return append([]byte{}, a.raw...)
}

// String returns the base58-encoded version of the address
func (a *BootstrapAddress) String() string {
	return base58.Encode(a.raw)
}

func decodeBootstrapAddress(data []byte) (*BootstrapAddress, error) {
	envelope, err := decodeBootstrapEnvelope(data)
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(envelope.Payload.Bytes()) != envelope.Checksum {
		return nil, IntegrityError{Message: "legacy address checksum does not match"}
	}
	payload, attributes, err := decodeBootstrapPayload(envelope)
	if err != nil {
		return nil, err
	}
	if len(payload.Root) != HashSize {
		return nil, FormatError{
			Format: "legacy address",
			Err: errors.New(
				"root hash is not expected length",
			),
		}
	}
	return &BootstrapAddress{
		root:       crypto.NewBlake2b224(payload.Root),
		attributes: attributes,
		checksum:   envelope.Checksum,
		raw:        append([]byte{}, data...),
	}, nil
}

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

	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

// PackBaseAddress builds a base address from a spending and a staking
// credential hash
func PackBaseAddress(
	spendingHash []byte,
	stakingHash []byte,
	networkId int,
	subtype BaseAddressSubtype,
) ([]byte, error) {
	if err := validateHash("spending hash", spendingHash); err != nil {
		return nil, err
	}
	if err := validateHash("staking hash", stakingHash); err != nil {
		return nil, err
	}
	if err := ValidateNetworkId(networkId); err != nil {
		return nil, err
	}
	if subtype > BaseAddressScriptScript {
		return nil, ValidationError{
			Field:   "base address subtype",
			Message: fmt.Sprintf("must be between 0 and 3, got %d", subtype),
		}
	}
	header := addressHeader(AddressTypeBase|AddressType(subtype), networkId)
	return buildAddress(header, spendingHash, stakingHash), nil
}

// PackPointerAddress builds a pointer address from a spending credential hash
// and a pointer to a stake registration certificate
func PackPointerAddress(
	spendingHash []byte,
	pointer Pointer,
	networkId int,
	isScript bool,
) ([]byte, error) {
	if err := validateHash("spending hash", spendingHash); err != nil {
		return nil, err
	}
	if err := ValidateNetworkId(networkId); err != nil {
		return nil, err
	}
	addrType := AddressTypePointer
	if isScript {
		addrType = AddressTypePointerScript
	}
	header := addressHeader(addrType, networkId)
	return buildAddress(header, spendingHash, pointer.encode()), nil
}

// PackEnterpriseAddress builds an address with a spending credential and no
// staking rights
func PackEnterpriseAddress(
	spendingHash []byte,
	networkId int,
	isScript bool,
) ([]byte, error) {
	if err := validateHash("spending hash", spendingHash); err != nil {
		return nil, err
	}
	if err := ValidateNetworkId(networkId); err != nil {
		return nil, err
	}
	addrType := AddressTypeEnterprise
	if isScript {
		addrType = AddressTypeEnterpriseScript
	}
	return buildAddress(addressHeader(addrType, networkId), spendingHash), nil
}

// PackRewardAddress builds a reward (stake) address from a staking credential hash
func PackRewardAddress(
	stakingHash []byte,
	networkId int,
	isScript bool,
) ([]byte, error) {
	if err := validateHash("staking hash", stakingHash); err != nil {
		return nil, err
	}
	if err := ValidateNetworkId(networkId); err != nil {
		return nil, err
	}
	addrType := AddressTypeReward
	if isScript {
		addrType = AddressTypeRewardScript
	}
	return buildAddress(addressHeader(addrType, networkId), stakingHash), nil
}

// AddressTypeFromBytes returns the address type stored in the header byte
func AddressTypeFromBytes(data []byte) (AddressType, error) {
	if err := validateNotEmpty("address", data); err != nil {
		return 0, err
	}
	return AddressType(data[0] >> 4), nil
}

// NetworkIdFromBytes returns the network ID stored in the header byte of a typed address
func NetworkIdFromBytes(data []byte) (uint8, error) {
	if err := validateNotEmpty("address", data); err != nil {
		return 0, err
	}
	return data[0] & AddressHeaderNetworkMask, nil
}

// HasSpendingScript returns true if the address spending credential is a script hash
func HasSpendingScript(data []byte) bool {
	addrType, err := AddressTypeFromBytes(data)
	if err != nil {
		return false
	}
	return addrType.HasSpendingScript()
}

// HasStakingScript returns true if the address staking credential is a script hash
func HasStakingScript(data []byte) bool {
	addrType, err := AddressTypeFromBytes(data)
	if err != nil {
		return false
	}
	return addrType.HasStakingScript()
}

// IsValidShelleyAddress returns true if the string is bech32 encoded and
// carries one of the typed address families
func IsValidShelleyAddress(addr string) bool {
	_, data, err := Bech32Decode(addr)
	if err != nil {
		return false
	}
	addrType, err := AddressTypeFromBytes(data)
	if err != nil {
		return false
	}
	return addrType.IsShelley()
}

// PubKeyHash returns the Blake2b-224 credential hash of an Ed25519 public key
func PubKeyHash(pubKey []byte) ([]byte, error) {
	if err := validateLength("public key", pubKey, PubKeySize); err != nil {
		return nil, err
	}
	return crypto.Blake2b224Hash(pubKey).Bytes(), nil
}

// shelleyAddress holds the header fields shared by all typed addresses
type shelleyAddress struct {
	addressType AddressType
	networkId   uint8
	// Trailing bytes found after the expected payload. Some addresses on
	// chain carry these and they must survive a round trip
	extraData []byte
}

func (shelleyAddress) isAddress() {}

func (a shelleyAddress) Type() AddressType {
	return a.addressType
}

func (a shelleyAddress) NetworkId() uint8 {
	return a.networkId
}

func (a shelleyAddress) header() byte {
	return addressHeader(a.addressType, int(a.networkId))
}

func (a shelleyAddress) generateHRP() string {
	var ret string
	if a.addressType == AddressTypeReward ||
		a.addressType == AddressTypeRewardScript {
		ret = "stake"
	} else {
		ret = "addr"
	}
	// Add test_ suffix if not mainnet
	if a.networkId != AddressNetworkMainnet {
		ret += "_test"
	}
	return ret
}

func (a shelleyAddress) bech32(prefix string, data []byte) string {
	encoded, err := encodeBech32(prefix, data)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// BaseAddress carries a spending and a staking credential
type BaseAddress struct {
	shelleyAddress
	spendingHash CredentialHash
	stakingHash  CredentialHash
}

func (a *BaseAddress) SpendingHash() CredentialHash {
	return a.spendingHash
}

func (a *BaseAddress) StakingHash() CredentialHash {
	return a.stakingHash
}

func (a *BaseAddress) Bytes() []byte {
	return buildAddress(
		a.header(),
		a.spendingHash.Bytes(),
		a.stakingHash.Bytes(),
		a.extraData,
	)
}

// Bech32 returns the address encoded with the given human-readable prefix
func (a *BaseAddress) Bech32(prefix string) (string, error) {
	return Bech32Encode(prefix, a.Bytes())
}

// String returns the bech32-encoded version of the address
func (a *BaseAddress) String() string {
	return a.bech32(a.generateHRP(), a.Bytes())
}

// PointerAddress carries a spending credential and a pointer to the stake
// registration certificate
type PointerAddress struct {
	shelleyAddress
	spendingHash CredentialHash
	pointer      Pointer
}

func (a *PointerAddress) SpendingHash() CredentialHash {
	return a.spendingHash
}

func (a *PointerAddress) Pointer() Pointer {
	return a.pointer
}

func (a *PointerAddress) Bytes() []byte {
	return buildAddress(
		a.header(),
		a.spendingHash.Bytes(),
		a.pointer.encode(),
		a.extraData,
	)
}

func (a *PointerAddress) Bech32(prefix string) (string, error) {
	return Bech32Encode(prefix, a.Bytes())
}

func (a *PointerAddress) String() string {
	return a.bech32(a.generateHRP(), a.Bytes())
}

// EnterpriseAddress carries only a spending credential
type EnterpriseAddress struct {
	shelleyAddress
	spendingHash CredentialHash
}

func (a *EnterpriseAddress) SpendingHash() CredentialHash {
	return a.spendingHash
}

func (a *EnterpriseAddress) Bytes() []byte {
	return buildAddress(a.header(), a.spendingHash.Bytes(), a.extraData)
}

func (a *EnterpriseAddress) Bech32(prefix string) (string, error) {
	return Bech32Encode(prefix, a.Bytes())
}

func (a *EnterpriseAddress) String() string {
	return a.bech32(a.generateHRP(), a.Bytes())
}

// RewardAddress carries only a staking credential
type RewardAddress struct {
	shelleyAddress
	stakingHash CredentialHash
}

func (a *RewardAddress) StakingHash() CredentialHash {
	return a.stakingHash
}

func (a *RewardAddress) Bytes() []byte {
	return buildAddress(a.header(), a.stakingHash.Bytes(), a.extraData)
}

func (a *RewardAddress) Bech32(prefix string) (string, error) {
	return Bech32Encode(prefix, a.Bytes())
}

func (a *RewardAddress) String() string {
	return a.bech32(a.generateHRP(), a.Bytes())
}

func newShelleyAddress(data []byte) shelleyAddress {
	return shelleyAddress{
		addressType: AddressType(data[0] >> 4),
		networkId:   data[0] & AddressHeaderNetworkMask,
	}
}

// readHash takes the next credential hash off the payload
func readHash(payload []byte, field string) (CredentialHash, []byte, error) {
	if len(payload) < HashSize {
		return CredentialHash{}, nil, FormatError{
			Format: "address",
			Err:    fmt.Errorf("%s too small: %d bytes", field, len(payload)),
		}
	}
	return crypto.NewBlake2b224(payload[:HashSize]), payload[HashSize:], nil
}

func trailingData(payload []byte) []byte {
	if len(payload) == 0 {
		return nil
	}
	return append([]byte{}, payload...)
}

func decodeBaseAddress(data []byte) (*BaseAddress, error) {
	ret := &BaseAddress{shelleyAddress: newShelleyAddress(data)}
	var err error
	payload := data[1:]
	if ret.spendingHash, payload, err = readHash(payload, "spending hash"); err != nil {
		return nil, err
	}
	if ret.stakingHash, payload, err = readHash(payload, "staking hash"); err != nil {
		return nil, err
	}
	ret.extraData = trailingData(payload)
	return ret, nil
}

func decodePointerAddress(data []byte) (*PointerAddress, error) {
	ret := &PointerAddress{shelleyAddress: newShelleyAddress(data)}
	var err error
	payload := data[1:]
	if ret.spendingHash, payload, err = readHash(payload, "spending hash"); err != nil {
		return nil, err
	}
	pointer, n, err := decodePointer(payload)
	if err != nil {
		return nil, FormatError{
			Format: "address",
			Err:    errors.Join(errors.New("invalid pointer"), err),
		}
	}
	ret.pointer = pointer
	ret.extraData = trailingData(payload[n:])
	return ret, nil
}

func decodeEnterpriseAddress(data []byte) (*EnterpriseAddress, error) {
	ret := &EnterpriseAddress{shelleyAddress: newShelleyAddress(data)}
	var err error
	payload := data[1:]
	if ret.spendingHash, payload, err = readHash(payload, "spending hash"); err != nil {
		return nil, err
	}
	ret.extraData = trailingData(payload)
	return ret, nil
}

func decodeRewardAddress(data []byte) (*RewardAddress, error) {
	ret := &RewardAddress{shelleyAddress: newShelleyAddress(data)}
	var err error
	payload := data[1:]
	if ret.stakingHash, payload, err = readHash(payload, "staking hash"); err != nil {
		return nil, err
	}
	ret.extraData = trailingData(payload)
	return ret, nil
}

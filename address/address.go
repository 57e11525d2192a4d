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
	"fmt"

	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F

	// HashSize is the length of a key or script credential hash
	HashSize = crypto.Blake2b224Size
	// PubKeySize is the length of an Ed25519 public key
	PubKeySize = 32

	MaxNetworkId = 15

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1
)

// AddressType is the 4-bit tag stored in the high nibble of a typed address header
type AddressType uint8

const (
	AddressTypeBase             AddressType = 0b0000
	AddressTypeBaseScriptKey    AddressType = 0b0001
	AddressTypeBaseKeyScript    AddressType = 0b0010
	AddressTypeBaseScriptScript AddressType = 0b0011
	AddressTypePointer          AddressType = 0b0100
	AddressTypePointerScript    AddressType = 0b0101
	AddressTypeEnterprise       AddressType = 0b0110
	AddressTypeEnterpriseScript AddressType = 0b0111
	AddressTypeBootstrap        AddressType = 0b1000
	AddressTypeReward           AddressType = 0b1110
	AddressTypeRewardScript     AddressType = 0b1111
)

// BaseAddressSubtype selects the key/script combination of a base address
type BaseAddressSubtype uint8

const (
	BaseAddressKeyKey       BaseAddressSubtype = 0b00
	BaseAddressScriptKey    BaseAddressSubtype = 0b01
	BaseAddressKeyScript    BaseAddressSubtype = 0b10
	BaseAddressScriptScript BaseAddressSubtype = 0b11
)

// CredentialHash identifies a spending or staking key or script
type CredentialHash = crypto.Blake2b224

var addressTypeNames = map[AddressType]string{
	AddressTypeBase:             "base",
	AddressTypeBaseScriptKey:    "base_script_key",
	AddressTypeBaseKeyScript:    "base_key_script",
	AddressTypeBaseScriptScript: "base_script_script",
	AddressTypePointer:          "pointer",
	AddressTypePointerScript:    "pointer_script",
	AddressTypeEnterprise:       "enterprise",
	AddressTypeEnterpriseScript: "enterprise_script",
	AddressTypeBootstrap:        "bootstrap",
	AddressTypeReward:           "reward",
	AddressTypeRewardScript:     "reward_script",
}

func (t AddressType) String() string {
	if name, ok := addressTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// IsShelley returns true for the ten typed address families. The bootstrap
// type and the unassigned values 9-13 return false
func (t AddressType) IsShelley() bool {
	switch t {
	case AddressTypeBase,
		AddressTypeBaseScriptKey,
		AddressTypeBaseKeyScript,
		AddressTypeBaseScriptScript,
		AddressTypePointer,
		AddressTypePointerScript,
		AddressTypeEnterprise,
		AddressTypeEnterpriseScript,
		AddressTypeReward,
		AddressTypeRewardScript:
		return true
	default:
		return false
	}
}

func (t AddressType) HasSpendingScript() bool {
	switch t {
	case AddressTypeBaseScriptKey,
		AddressTypeBaseScriptScript,
		AddressTypePointerScript,
		AddressTypeEnterpriseScript:
		return true
	default:
		return false
	}
}

func (t AddressType) HasStakingScript() bool {
	switch t {
	case AddressTypeBaseKeyScript,
		AddressTypeBaseScriptScript,
		AddressTypeRewardScript:
		return true
	default:
		return false
	}
}

// Address is a decoded address. The concrete type is one of
// *BootstrapAddress, *BaseAddress, *PointerAddress, *EnterpriseAddress or
// *RewardAddress
type Address interface {
	Type() AddressType
	Bytes() []byte
	String() string
	isAddress()
}

// Decode parses raw address bytes, dispatching on the header nibble
func Decode(data []byte) (Address, error) {
	if err := validateNotEmpty("address", data); err != nil {
		return nil, err
	}
	addrType := AddressType(data[0] >> 4)
	switch addrType {
	case AddressTypeBootstrap:
		addr, err := decodeBootstrapAddress(data)
		if err != nil {
			return nil, err
		}
		return addr, nil
	case AddressTypeBase,
		AddressTypeBaseScriptKey,
		AddressTypeBaseKeyScript,
		AddressTypeBaseScriptScript:
		addr, err := decodeBaseAddress(data)
		if err != nil {
			return nil, err
		}
		return addr, nil
	case AddressTypePointer, AddressTypePointerScript:
		addr, err := decodePointerAddress(data)
		if err != nil {
			return nil, err
		}
		return addr, nil
	case AddressTypeEnterprise, AddressTypeEnterpriseScript:
		addr, err := decodeEnterpriseAddress(data)
		if err != nil {
			return nil, err
		}
		return addr, nil
	case AddressTypeReward, AddressTypeRewardScript:
		addr, err := decodeRewardAddress(data)
		if err != nil {
			return nil, err
		}
		return addr, nil
	default:
		return nil, FormatError{
			Format: "address",
			Err:    fmt.Errorf("unknown address type: %d", addrType),
		}
	}
}

// Parse decodes an address string in either base58 or bech32 form
func Parse(addr string) (Address, error) {
	data, err := AddressToBytes(addr)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func addressHeader(addrType AddressType, networkId int) byte {
	return (byte(addrType) << 4) | (byte(networkId) & AddressHeaderNetworkMask)
}

func buildAddress(header byte, parts ...[]byte) []byte {
	size := 1
	for _, part := range parts {
		size += len(part)
	}
	ret := make([]byte, 0, size)
	ret = append(ret, header)
	for _, part := range parts {
		ret = append(ret, part...)
	}
	return ret
}

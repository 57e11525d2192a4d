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
	"math/big"

	"github.com/blinklabs-io/plutigo/data"
)

// ToPlutusData converts a typed address into its on-chain Plutus
// representation. Legacy and reward addresses have none and return nil
func ToPlutusData(addr Address) data.PlutusData {
	switch a := addr.(type) {
	case *BaseAddress:
		return data.NewConstr(
			0,
			credentialPlutusData(a.spendingHash, a.addressType.HasSpendingScript()),
			data.NewConstr(
				0,
				data.NewConstr(
					0,
					credentialPlutusData(a.stakingHash, a.addressType.HasStakingScript()),
				),
			),
		)
	case *PointerAddress:
		return data.NewConstr(
			0,
			credentialPlutusData(a.spendingHash, a.addressType.HasSpendingScript()),
			data.NewConstr(
				0,
				data.NewConstr(
					1,
					data.NewInteger(new(big.Int).SetUint64(a.pointer.BlockIndex)),
					data.NewInteger(new(big.Int).SetUint64(a.pointer.TxIndex)),
					data.NewInteger(new(big.Int).SetUint64(a.pointer.CertIndex)),
				),
			),
		)
	case *EnterpriseAddress:
		return data.NewConstr(
			0,
			credentialPlutusData(a.spendingHash, a.addressType.HasSpendingScript()),
			// No staking credential
			data.NewConstr(1),
		)
	default:
		return nil
	}
}

func credentialPlutusData(hash CredentialHash, isScript bool) data.PlutusData {
	var tag uint = 0
	if isScript {
		tag = 1
	}
	return data.NewConstr(tag, data.NewByteString(hash.Bytes()))
}

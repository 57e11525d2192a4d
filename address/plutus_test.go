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
	"reflect"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressToPlutusData(t *testing.T) {
	testDefs := []struct {
		address      string
		expectedData data.PlutusData
	}{
		// Payment-only address
		{
			address: "addr_test1vqg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zygxrcya6",
			expectedData: data.NewConstr(
				0,
				data.NewConstr(
					0,
					data.NewByteString(
						[]byte{
							0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
						},
					),
				),
				data.NewConstr(
					1,
				),
			),
		},
		// Script payment with key staking credential
		{
			address: "addr_test1xqqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcur50p7gppyg3jgffxyu5zj23t9skjutesxyerxdp4xcmsyu2795",
			expectedData: data.NewConstr(
				0,
				data.NewConstr(1, data.NewByteString(testSpendingHash)),
				data.NewConstr(
					0,
					data.NewConstr(
						0,
						data.NewConstr(1, data.NewByteString(testStakingHash)),
					),
				),
			),
		},
		{
			address: "addr_test12qqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xupnz75xxcrun7wk7",
			expectedData: data.NewConstr(
				0,
				data.NewConstr(1, data.NewByteString(testSpendingHash)),
				data.NewConstr(
					0,
					data.NewConstr(
						1,
						data.NewInteger(big.NewInt(2498243)),
						data.NewInteger(big.NewInt(27)),
						data.NewInteger(big.NewInt(3)),
					),
				),
			),
		},
	}
	for _, testDef := range testDefs {
		tmpAddr, err := Parse(testDef.address)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		tmpPd := ToPlutusData(tmpAddr)
		if !reflect.DeepEqual(tmpPd, testDef.expectedData) {
			t.Errorf(
				"did not get expected PlutusData\n     got: %#v\n  wanted: %#v",
				tmpPd,
				testDef.expectedData,
			)
		}
	}
}

func TestAddressToPlutusDataUnsupported(t *testing.T) {
	for _, addrStr := range []string{
		"stake1uywp68slyqsjygeyy5nzw2pf9g4jctfw9ucrzv3nxs6nvdcw8dy5z",
		"FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth",
	} {
		addr, err := Parse(addrStr)
		require.NoError(t, err)
		assert.Nil(t, ToPlutusData(addr), addrStr)
	}
}

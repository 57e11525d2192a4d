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

package cardanocrypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	cardanocrypto "github.com/zoeldevapps/cardano-crypto.js"
)

func TestNetworkLookup(t *testing.T) {
	testDefs := []struct {
		name            string
		expectedMagic   uint32
		expectedId      uint8
		expectedPrefix  string
		expectedStake   string
	}{
		{name: "mainnet", expectedMagic: 764824073, expectedId: 1, expectedPrefix: "addr", expectedStake: "stake"},
		{name: "testnet", expectedMagic: 1097911063, expectedId: 0, expectedPrefix: "addr_test", expectedStake: "stake_test"},
		{name: "preprod", expectedMagic: 1, expectedId: 0, expectedPrefix: "addr_test", expectedStake: "stake_test"},
		{name: "preview", expectedMagic: 2, expectedId: 0, expectedPrefix: "addr_test", expectedStake: "stake_test"},
		{name: "sanchonet", expectedMagic: 4, expectedId: 0, expectedPrefix: "addr_test", expectedStake: "stake_test"},
	}
	for _, testDef := range testDefs {
		network := cardanocrypto.NetworkByName(testDef.name)
		assert.Equal(t, testDef.name, network.String())
		assert.Equal(t, testDef.expectedMagic, network.NetworkMagic)
		assert.Equal(t, testDef.expectedId, network.Id)
		assert.Equal(t, testDef.expectedPrefix, network.AddressPrefix())
		assert.Equal(t, testDef.expectedStake, network.StakeAddressPrefix())
		assert.Equal(t, network, cardanocrypto.NetworkByNetworkMagic(testDef.expectedMagic))
	}
}

func TestNetworkLookupInvalid(t *testing.T) {
	assert.Equal(t, cardanocrypto.NetworkInvalid, cardanocrypto.NetworkByName("nonexistent"))
	assert.Equal(t, cardanocrypto.NetworkInvalid, cardanocrypto.NetworkByNetworkMagic(12345))
	assert.Equal(t, cardanocrypto.NetworkInvalid, cardanocrypto.NetworkById(7))
	assert.Equal(t, cardanocrypto.NetworkMainnet, cardanocrypto.NetworkById(1))
	assert.Equal(t, cardanocrypto.NetworkTestnet, cardanocrypto.NetworkById(0))
}

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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoeldevapps/cardano-crypto.js/cbor"
)

func TestWrappedCborEncode(t *testing.T) {
	cborData, err := cbor.Encode(cbor.WrappedCbor([]byte{0xab, 0xcd, 0xef}))
	require.NoError(t, err)
	assert.Equal(t, "d81843abcdef", hex.EncodeToString(cborData))
}

func TestWrappedCborDecode(t *testing.T) {
	var dest cbor.WrappedCbor
	_, err := cbor.Decode([]byte{0xd8, 0x18, 0x43, 0xab, 0xcd, 0xef}, &dest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd, 0xef}, dest.Bytes())
}

func TestWrappedCborDecodeRequiresTag(t *testing.T) {
	var dest cbor.WrappedCbor
	// Plain bytestring without tag 24
	_, err := cbor.Decode([]byte{0x43, 0xab, 0xcd, 0xef}, &dest)
	assert.Error(t, err)
	// Wrong tag number
	_, err = cbor.Decode([]byte{0xd8, 0x19, 0x43, 0xab, 0xcd, 0xef}, &dest)
	assert.Error(t, err)
}

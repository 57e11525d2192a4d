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

package crypto_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoeldevapps/cardano-crypto.js/crypto"
	"github.com/zoeldevapps/cardano-crypto.js/internal/test"
)

func TestPbkdf2Sha512(t *testing.T) {
	expected := "867f70cf1ade02cff3752599a3a53dc4af34c7a669815ae5d513554e1c8cf252c02d470a285a0501bad999bfe943c08f050235d7d68b1da55e63f73b60a57fce"
	out := crypto.Pbkdf2Sha512([]byte("password"), []byte("salt"), 1, 64)
	assert.Equal(t, expected, hex.EncodeToString(out))
	// Shorter output is a prefix of the first block
	out = crypto.Pbkdf2Sha512([]byte("password"), []byte("salt"), 1, 32)
	assert.Equal(t, expected[:64], hex.EncodeToString(out))
}

func TestPbkdf2Sha512EmptyPassword(t *testing.T) {
	first := crypto.Pbkdf2Sha512(nil, []byte("mnemonic"), 2048, 32)
	second := crypto.Pbkdf2Sha512([]byte{}, []byte("mnemonic"), 2048, 32)
	assert.Len(t, first, 32)
	assert.Equal(t, first, second)
}

func TestXpubToHdPassphrase(t *testing.T) {
	hdPassphrase, err := crypto.XpubToHdPassphrase(test.SequentialBytes(64))
	require.NoError(t, err)
	assert.Equal(
		t,
		"c60c1651b6dab077ee7a5c9a9c85018595160f36bf03f91bea12f523f53f111c",
		hex.EncodeToString(hdPassphrase),
	)
}

func TestXpubToHdPassphraseInvalidLength(t *testing.T) {
	for _, length := range []int{0, 32, 63, 65} {
		_, err := crypto.XpubToHdPassphrase(test.SequentialBytes(length))
		if !errors.Is(err, crypto.ErrInvalidXpubLength) {
			t.Fatalf("expected invalid length error for %d bytes, got: %v", length, err)
		}
	}
}

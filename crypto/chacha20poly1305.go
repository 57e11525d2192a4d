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

package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// DerivationPathNonce is the fixed nonce used when encrypting HD derivation
// paths into legacy address attributes
var DerivationPathNonce = []byte("serokellfore")

// ChaCha20Poly1305Encrypt seals the plaintext with the 32-byte key and 12-byte
// nonce. The result is the ciphertext followed by the 16-byte tag
func ChaCha20Poly1305Encrypt(plaintext, key, nonce []byte) ([]byte, error) {
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonce))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// ChaCha20Poly1305Decrypt reverses ChaCha20Poly1305Encrypt. It fails when the
// key is wrong or the ciphertext was tampered with
func ChaCha20Poly1305Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonce))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}

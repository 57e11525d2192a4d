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
	"errors"
	"fmt"
)

const (
	XpubSize         = 64
	HdPassphraseSize = 32

	hdPassphraseSalt       = "address-hashing"
	hdPassphraseIterations = 500
)

var ErrInvalidXpubLength = errors.New("invalid extended public key length")

// XpubToHdPassphrase derives the secret used to encrypt the derivation path
// stored in legacy addresses from the root extended public key
func XpubToHdPassphrase(xpub []byte) ([]byte, error) {
	if len(xpub) != XpubSize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidXpubLength,
			XpubSize,
			len(xpub),
		)
	}
	return Pbkdf2Sha512(
		xpub,
		[]byte(hdPassphraseSalt),
		hdPassphraseIterations,
		HdPassphraseSize,
	), nil
}

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

package paperwallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

const (
	MnemonicWordCount   = 27
	ScrambledWordCount  = 18
	PassphraseWordCount = MnemonicWordCount - ScrambledWordCount
	SaltSize            = 8

	passphraseSaltPrefix = "mnemonic"
	passphraseIterations = 2048
	passphraseKeySize    = 32
	unscrambleIterations = 10000
)

var (
	ErrInvalidMnemonicWords  = errors.New("invalid mnemonic words")
	ErrInvalidMnemonicLength = errors.New("invalid paper wallet mnemonic length")
	ErrInputTooShort         = errors.New("input is too short")
)

// DecodeMnemonic returns the 12-word wallet mnemonic hidden in a 27-word
// paper wallet mnemonic
func DecodeMnemonic(mnemonic string) (string, error) {
	return DecodeMnemonicWithPassword(mnemonic, "")
}

// DecodeMnemonicWithPassword is DecodeMnemonic for certificates whose
// passphrase was salted with an additional password
func DecodeMnemonicWithPassword(mnemonic string, password string) (string, error) {
	words, err := validateMnemonic(mnemonic)
	if err != nil {
		return "", err
	}
	passphrase := MnemonicToPassphrase(
		strings.Join(words[ScrambledWordCount:], " "),
		password,
	)
	return Unscramble(passphrase, strings.Join(words[:ScrambledWordCount], " "))
}

// MnemonicToPassphrase derives the hex passphrase used to scramble the wallet
// entropy from the passphrase words
func MnemonicToPassphrase(mnemonic string, password string) string {
	key := crypto.Pbkdf2Sha512(
		[]byte(mnemonic),
		[]byte(passphraseSaltPrefix+password),
		passphraseIterations,
		passphraseKeySize,
	)
	return hex.EncodeToString(key)
}

// Unscramble decodes the scrambled mnemonic to entropy, removes the salt and
// returns the mnemonic for the recovered entropy
func Unscramble(passphrase string, scrambled string) (string, error) {
	input, err := bip39.EntropyFromMnemonic(scrambled)
	if err != nil {
		return "", fmt.Errorf("failed to decode scrambled mnemonic: %w", err)
	}
	if len(input) <= SaltSize {
		return "", ErrInputTooShort
	}
	output := applyKeystream(passphrase, input[:SaltSize], input[SaltSize:])
	mnemonic, err := bip39.NewMnemonic(output)
	if err != nil {
		return "", fmt.Errorf("failed to encode unscrambled mnemonic: %w", err)
	}
	return mnemonic, nil
}

// Scramble is the inverse of Unscramble. It returns the mnemonic for the salt
// followed by the scrambled entropy
func Scramble(entropy []byte, salt []byte, passphrase string) (string, error) {
	if len(salt) != SaltSize {
		return "", fmt.Errorf(
			"invalid salt length: expected %d bytes, got %d",
			SaltSize,
			len(salt),
		)
	}
	if len(entropy) == 0 {
		return "", ErrInputTooShort
	}
	output := make([]byte, 0, SaltSize+len(entropy))
	output = append(output, salt...)
	output = append(output, applyKeystream(passphrase, salt, entropy)...)
	mnemonic, err := bip39.NewMnemonic(output)
	if err != nil {
		return "", fmt.Errorf("failed to encode scrambled mnemonic: %w", err)
	}
	return mnemonic, nil
}

func applyKeystream(passphrase string, salt []byte, data []byte) []byte {
	keystream := crypto.Pbkdf2Sha512(
		[]byte(passphrase),
		salt,
		unscrambleIterations,
		len(data),
	)
	for i := range keystream {
		keystream[i] ^= data[i]
	}
	return keystream
}

func validateMnemonic(mnemonic string) ([]string, error) {
	words := strings.Fields(mnemonic)
	for _, word := range words {
		if _, ok := bip39.GetWordIndex(word); !ok {
			return nil, fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonicWords, word)
		}
	}
	if len(words) != MnemonicWordCount {
		return nil, fmt.Errorf(
			"%w: must be %d words, got %d instead",
			ErrInvalidMnemonicLength,
			MnemonicWordCount,
			len(words),
		)
	}
	return words, nil
}

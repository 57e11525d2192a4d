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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testXpubHex         = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
	testSpendingHashHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b"
	testStakingHashHex  = "1c1d1e1f202122232425262728292a2b2c2d2e2f3031323334353637"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunPack(t *testing.T) {
	testDefs := []struct {
		args           []string
		expectedOutput string
	}{
		{
			args:           []string{"pack-enterprise", "-spending-hash", testSpendingHashHex},
			expectedOutput: "addr1vyqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcjrvarg",
		},
		{
			args:           []string{"-network", "preview", "pack-reward", "-script", "-staking-hash", testStakingHashHex},
			expectedOutput: "stake_test17qwp68slyqsjygeyy5nzw2pf9g4jctfw9ucrzv3nxs6nvdcq9mx8l",
		},
		{
			args:           []string{"-network", "preprod", "pack-base", "-subtype", "3", "-spending-hash", testSpendingHashHex, "-staking-hash", testStakingHashHex},
			expectedOutput: "addr_test1xqqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcur50p7gppyg3jgffxyu5zj23t9skjutesxyerxdp4xcmsyu2795",
		},
		{
			args:           []string{"-network", "preview", "pack-pointer", "-script", "-spending-hash", testSpendingHashHex, "-block-index", "2498243", "-tx-index", "27", "-cert-index", "3"},
			expectedOutput: "addr_test12qqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xupnz75xxcrun7wk7",
		},
		{
			args:           []string{"pack-bootstrap", "-xpub", testXpubHex},
			expectedOutput: "Ae2tdPwUPEZ987QhEbj7Fs5DBudHvZzzgud3kjcnxPF1KVF4eWTbKwmQgs1",
		},
		{
			args:           []string{"-network", "preview", "pack-bootstrap", "-xpub", testXpubHex},
			expectedOutput: "FHnt4NL7yPXzfUAzwppo3kKfdhcrzYWrJ9wdHNB2aqiaEMQ2LkGbLd5y4ASocDd",
		},
		{
			args:           []string{"pack-bootstrap", "-scheme", "1", "-path", "0,1", "-xpub", testXpubHex},
			expectedOutput: "sxtitePxjp6JvDhpky3E6dA1NSVsUJeCYw55kpvgKGZsnDT8VQSBgkKJz3w8kjJuuPCm2X2WmGUppDEqroqGu3Z7Q8",
		},
		{
			args:           []string{"-network-magic", "1097911063", "pack-bootstrap", "-scheme", "1", "-path", "0,1", "-xpub", testXpubHex},
			expectedOutput: "9XQrTpiaBYn3dECYbZU2fo9qKTo24XpngFtATbhuDtRvYAUo6d1dGTNWeKCD4h1Q6xty8uw9KbECcD3nRiTP9qujzsxenDpjWxKv",
		},
		{
			args:           []string{"pack-bootstrap", "-scheme", "1", "-path", "0H,1'", "-xpub", testXpubHex},
			expectedOutput: "DdzFFzCqrhswF1g4G8i2ifXae9y4CPFViwnAwPnAvFFh38yxL7yzQmSpETisQQ5XcNrHgJWZX1wA6QKmpXc8xrN2LCgQdANoGERD4NDY",
		},
	}
	for _, testDef := range testDefs {
		output, err := runCommand(t, testDef.args...)
		require.NoError(t, err, "args: %v", testDef.args)
		assert.Equal(t, testDef.expectedOutput+"\n", output, "args: %v", testDef.args)
	}
}

func TestRunPackCustomNetworkMagic(t *testing.T) {
	output, err := runCommand(t, "-network-magic", "42", "-debug", "pack-enterprise", "-spending-hash", testSpendingHashHex)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "addr_test1v"), "output: %s", output)
}

func TestRunInspect(t *testing.T) {
	output, err := runCommand(t, "inspect", "addr1wysmmrpwphe0h6fpxlmcmw46frmzxz89yvpsf8cdv29kcnqsw3vw6")
	require.NoError(t, err)
	assert.Contains(t, output, "type: enterprise_script\n")
	assert.Contains(t, output, "network-id: 1\n")
	assert.Contains(t, output, "spending-hash: 21bd8c2e0df2fbe92137f78dbaba48f62308e52303049f0d628b6c4c\n")

	output, err = runCommand(
		t,
		"inspect",
		"-xpub", testXpubHex,
		"sxtitePxjp6JvDhpky3E6dA1NSVsUJeCYw55kpvgKGZsnDT8VQSBgkKJz3w8kjJuuPCm2X2WmGUppDEqroqGu3Z7Q8",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "type: bootstrap\n")
	assert.Contains(t, output, "root: 966f543998978ec00f85213c16ba2bd4a3a5f66a5bd9bf8f97c44c72\n")
	assert.Contains(t, output, "protocol-magic: 764824073\n")
	assert.Contains(t, output, "derivation-path: 0,1\n")

	output, err = runCommand(
		t,
		"inspect",
		"-xpub", testXpubHex,
		"DdzFFzCqrhswF1g4G8i2ifXae9y4CPFViwnAwPnAvFFh38yxL7yzQmSpETisQQ5XcNrHgJWZX1wA6QKmpXc8xrN2LCgQdANoGERD4NDY",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "derivation-path: 0H,1H\n")

	output, err = runCommand(t, "inspect", "addr_test12qqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xupnz75xxcrun7wk7")
	require.NoError(t, err)
	assert.Contains(t, output, "pointer: 2498243/27/3\n")

	output, err = runCommand(t, "inspect", "-dump", "FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth")
	require.NoError(t, err)
	assert.Contains(t, output, "<wrapped cbor> (length 36)\n")
	assert.Contains(t, output, "protocol-magic: 2\n")
}

func TestRunPaperWallet(t *testing.T) {
	output, err := runCommand(
		t,
		"paper-wallet",
		"force usage medal chapter start myself odor ripple concert aspect wink melt afford lounge smart bulk way hazard burden type broken defense city announce reward same tumble",
	)
	require.NoError(t, err)
	assert.Equal(t, "swim average antenna there trap nice good stereo lion safe next brief\n", output)
}

func TestRunErrors(t *testing.T) {
	testDefs := [][]string{
		{},
		{"bogus"},
		{"-network", "bogus", "inspect", "addr1wysmmrpwphe0h6fpxlmcmw46frmzxz89yvpsf8cdv29kcnqsw3vw6"},
		{"-network-magic", "-5", "inspect", "addr1wysmmrpwphe0h6fpxlmcmw46frmzxz89yvpsf8cdv29kcnqsw3vw6"},
		{"inspect"},
		{"inspect", "not-an-address"},
		{"pack-enterprise"},
		{"pack-enterprise", "-spending-hash", "zz"},
		{"pack-enterprise", "-spending-hash", "0001"},
		{"pack-base", "-subtype", "4", "-spending-hash", testSpendingHashHex, "-staking-hash", testStakingHashHex},
		{"pack-bootstrap", "-scheme", "1", "-path", "x", "-xpub", testXpubHex},
		{"pack-bootstrap", "-scheme", "3", "-xpub", testXpubHex},
		{"paper-wallet"},
		{"paper-wallet", "swim average antenna"},
	}
	for _, testDef := range testDefs {
		_, err := runCommand(t, testDef...)
		assert.Error(t, err, "args: %v", testDef)
	}
}

func TestDerivationPathFormatting(t *testing.T) {
	path, err := parseDerivationPath("0, 1H, 2'")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 0x80000001, 0x80000002}, path)
	assert.Equal(t, "0,1H,2H", formatDerivationPath(path))
	path, err = parseDerivationPath("")
	require.NoError(t, err)
	assert.Empty(t, path)
	_, err = parseDerivationPath("2147483648H")
	assert.Error(t, err)
}

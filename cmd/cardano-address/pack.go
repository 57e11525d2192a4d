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
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/zoeldevapps/cardano-crypto.js/address"
	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

type packFlags struct {
	flagset      *flag.FlagSet
	spendingHash string
	stakingHash  string
	script       bool
	subtype      uint
	blockIndex   uint64
	txIndex      uint64
	certIndex    uint64
	xpub         string
	rootXpub     string
	path         string
	scheme       int
}

func newPackFlags(name string) *packFlags {
	f := &packFlags{
		flagset: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.flagset.StringVar(&f.spendingHash, "spending-hash", "", "hex-encoded spending key or script hash")
	f.flagset.StringVar(&f.stakingHash, "staking-hash", "", "hex-encoded staking key or script hash")
	f.flagset.BoolVar(&f.script, "script", false, "the credential is a script hash")
	f.flagset.UintVar(&f.subtype, "subtype", 0, "base address subtype (0=key/key, 1=script/key, 2=key/script, 3=script/script)")
	f.flagset.Uint64Var(&f.blockIndex, "block-index", 0, "pointer block index")
	f.flagset.Uint64Var(&f.txIndex, "tx-index", 0, "pointer transaction index")
	f.flagset.Uint64Var(&f.certIndex, "cert-index", 0, "pointer certificate index")
	f.flagset.StringVar(&f.xpub, "xpub", "", "hex-encoded extended public key")
	f.flagset.StringVar(&f.rootXpub, "root-xpub", "", "hex-encoded wallet root extended public key used to encrypt the derivation path (defaults to -xpub)")
	f.flagset.StringVar(&f.path, "path", "", "comma separated derivation path stored in legacy scheme 1 addresses")
	f.flagset.IntVar(&f.scheme, "scheme", int(address.DerivationSchemeV2), "legacy derivation scheme (1 or 2)")
	return f
}

func parsePackFlags(name string, args []string) (*packFlags, error) {
	f := newPackFlags(name)
	if err := f.flagset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	return f, nil
}

func decodeHexFlag(name string, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("you must specify -%s", name)
	}
	ret, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return ret, nil
}

func (c *command) printTypedAddress(addrBytes []byte) error {
	addr, err := address.Decode(addrBytes)
	if err != nil {
		return err
	}
	c.logger.Debug(
		"packed address",
		"type", addr.Type().String(),
		"bytes", hex.EncodeToString(addrBytes),
	)
	fmt.Fprintln(c.stdout, addr.String())
	return nil
}

func (c *command) packBase(args []string) error {
	f, err := parsePackFlags("pack-base", args)
	if err != nil {
		return err
	}
	spendingHash, err := decodeHexFlag("spending-hash", f.spendingHash)
	if err != nil {
		return err
	}
	stakingHash, err := decodeHexFlag("staking-hash", f.stakingHash)
	if err != nil {
		return err
	}
	if f.subtype > uint(address.BaseAddressScriptScript) {
		return fmt.Errorf("invalid -subtype: %d", f.subtype)
	}
	addrBytes, err := address.PackBaseAddress(
		spendingHash,
		stakingHash,
		int(c.network.Id),
		address.BaseAddressSubtype(f.subtype),
	)
	if err != nil {
		return err
	}
	return c.printTypedAddress(addrBytes)
}

func (c *command) packPointer(args []string) error {
	f, err := parsePackFlags("pack-pointer", args)
	if err != nil {
		return err
	}
	spendingHash, err := decodeHexFlag("spending-hash", f.spendingHash)
	if err != nil {
		return err
	}
	addrBytes, err := address.PackPointerAddress(
		spendingHash,
		address.Pointer{
			BlockIndex: f.blockIndex,
			TxIndex:    f.txIndex,
			CertIndex:  f.certIndex,
		},
		int(c.network.Id),
		f.script,
	)
	if err != nil {
		return err
	}
	return c.printTypedAddress(addrBytes)
}

func (c *command) packEnterprise(args []string) error {
	f, err := parsePackFlags("pack-enterprise", args)
	if err != nil {
		return err
	}
	spendingHash, err := decodeHexFlag("spending-hash", f.spendingHash)
	if err != nil {
		return err
	}
	addrBytes, err := address.PackEnterpriseAddress(spendingHash, int(c.network.Id), f.script)
	if err != nil {
		return err
	}
	return c.printTypedAddress(addrBytes)
}

func (c *command) packReward(args []string) error {
	f, err := parsePackFlags("pack-reward", args)
	if err != nil {
		return err
	}
	stakingHash, err := decodeHexFlag("staking-hash", f.stakingHash)
	if err != nil {
		return err
	}
	addrBytes, err := address.PackRewardAddress(stakingHash, int(c.network.Id), f.script)
	if err != nil {
		return err
	}
	return c.printTypedAddress(addrBytes)
}

func (c *command) packBootstrap(args []string) error {
	f, err := parsePackFlags("pack-bootstrap", args)
	if err != nil {
		return err
	}
	xpub, err := decodeHexFlag("xpub", f.xpub)
	if err != nil {
		return err
	}
	scheme := address.DerivationScheme(f.scheme)
	var derivationPath []uint32
	var hdPassphrase []byte
	if scheme == address.DerivationSchemeV1 {
		derivationPath, err = parseDerivationPath(f.path)
		if err != nil {
			return err
		}
		rootXpub := xpub
		if f.rootXpub != "" {
			rootXpub, err = decodeHexFlag("root-xpub", f.rootXpub)
			if err != nil {
				return err
			}
		}
		hdPassphrase, err = crypto.XpubToHdPassphrase(rootXpub)
		if err != nil {
			return err
		}
	}
	addrBytes, err := address.PackBootstrapAddress(
		derivationPath,
		xpub,
		hdPassphrase,
		scheme,
		c.network.NetworkMagic,
	)
	if err != nil {
		return err
	}
	c.logger.Debug(
		"packed legacy address",
		"bytes", hex.EncodeToString(addrBytes),
		"protocol_magic", c.network.NetworkMagic,
	)
	fmt.Fprintln(c.stdout, base58.Encode(addrBytes))
	return nil
}

func parseDerivationPath(path string) ([]uint32, error) {
	ret := []uint32{}
	if path == "" {
		return ret, nil
	}
	for _, part := range strings.Split(path, ",") {
		part = strings.TrimSpace(part)
		hardened := strings.HasSuffix(part, "H") || strings.HasSuffix(part, "'")
		part = strings.TrimRight(part, "H'")
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid derivation path index %q: %w", part, err)
		}
		if hardened {
			if idx >= hardenedIndexOffset {
				return nil, fmt.Errorf("invalid hardened derivation path index: %d", idx)
			}
			idx += hardenedIndexOffset
		}
		ret = append(ret, uint32(idx))
	}
	return ret, nil
}

const hardenedIndexOffset = 0x80000000

func formatDerivationPath(path []uint32) string {
	parts := make([]string, 0, len(path))
	for _, idx := range path {
		if idx >= hardenedIndexOffset {
			parts = append(parts, strconv.FormatUint(uint64(idx-hardenedIndexOffset), 10)+"H")
			continue
		}
		parts = append(parts, strconv.FormatUint(uint64(idx), 10))
	}
	return strings.Join(parts, ",")
}

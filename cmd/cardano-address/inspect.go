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
	"errors"
	"flag"
	"fmt"

	"github.com/zoeldevapps/cardano-crypto.js/address"
	"github.com/zoeldevapps/cardano-crypto.js/cbor"
	"github.com/zoeldevapps/cardano-crypto.js/crypto"
)

type inspectFlags struct {
	flagset *flag.FlagSet
	xpub    string
	dump    bool
}

func newInspectFlags() *inspectFlags {
	f := &inspectFlags{
		flagset: flag.NewFlagSet("inspect", flag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.xpub,
		"xpub",
		"",
		"hex-encoded root extended public key used to decrypt the derivation path of a legacy address",
	)
	f.flagset.BoolVar(
		&f.dump,
		"dump",
		false,
		"print the CBOR structure of a legacy address",
	)
	return f
}

func (c *command) inspect(args []string) error {
	inspectFlags := newInspectFlags()
	if err := inspectFlags.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	if len(inspectFlags.flagset.Args()) != 1 {
		return errors.New("you must specify exactly one address")
	}
	addrStr := inspectFlags.flagset.Arg(0)
	addr, err := address.Parse(addrStr)
	if err != nil {
		return err
	}
	c.logger.Debug(
		"decoded address",
		"type", addr.Type().String(),
		"length", len(addr.Bytes()),
	)
	fmt.Fprintf(c.stdout, "type: %s\n", addr.Type())
	fmt.Fprintf(c.stdout, "bytes: %s\n", hex.EncodeToString(addr.Bytes()))
	switch a := addr.(type) {
	case *address.BootstrapAddress:
		if inspectFlags.dump {
			var data any
			if _, err := cbor.Decode(a.Bytes(), &data); err != nil {
				return err
			}
			fmt.Fprint(c.stdout, cbor.DumpStructure(data, ""))
		}
		return c.inspectBootstrap(a, inspectFlags.xpub)
	case *address.BaseAddress:
		fmt.Fprintf(c.stdout, "network-id: %d\n", a.NetworkId())
		fmt.Fprintf(c.stdout, "spending-hash: %s\n", a.SpendingHash())
		fmt.Fprintf(c.stdout, "staking-hash: %s\n", a.StakingHash())
	case *address.PointerAddress:
		pointer := a.Pointer()
		fmt.Fprintf(c.stdout, "network-id: %d\n", a.NetworkId())
		fmt.Fprintf(c.stdout, "spending-hash: %s\n", a.SpendingHash())
		fmt.Fprintf(
			c.stdout,
			"pointer: %d/%d/%d\n",
			pointer.BlockIndex,
			pointer.TxIndex,
			pointer.CertIndex,
		)
	case *address.EnterpriseAddress:
		fmt.Fprintf(c.stdout, "network-id: %d\n", a.NetworkId())
		fmt.Fprintf(c.stdout, "spending-hash: %s\n", a.SpendingHash())
	case *address.RewardAddress:
		fmt.Fprintf(c.stdout, "network-id: %d\n", a.NetworkId())
		fmt.Fprintf(c.stdout, "staking-hash: %s\n", a.StakingHash())
	}
	return nil
}

func (c *command) inspectBootstrap(addr *address.BootstrapAddress, xpubHex string) error {
	protocolMagic, err := addr.ProtocolMagic()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "root: %s\n", addr.Root())
	fmt.Fprintf(c.stdout, "protocol-magic: %d\n", protocolMagic)
	if xpubHex == "" {
		return nil
	}
	xpub, err := hex.DecodeString(xpubHex)
	if err != nil {
		return fmt.Errorf("invalid xpub: %w", err)
	}
	hdPassphrase, err := crypto.XpubToHdPassphrase(xpub)
	if err != nil {
		return err
	}
	derivationPath, err := addr.DerivationPath(hdPassphrase)
	if err != nil {
		return err
	}
	if derivationPath == nil {
		fmt.Fprintf(c.stdout, "derivation-path: none\n")
		return nil
	}
	fmt.Fprintf(c.stdout, "derivation-path: %s\n", formatDerivationPath(derivationPath))
	return nil
}

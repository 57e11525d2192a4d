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
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/zoeldevapps/cardano-crypto.js/paperwallet"
)

type paperWalletFlags struct {
	flagset  *flag.FlagSet
	password string
}

func newPaperWalletFlags() *paperWalletFlags {
	f := &paperWalletFlags{
		flagset: flag.NewFlagSet("paper-wallet", flag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.password,
		"password",
		"",
		"optional password the certificate passphrase was salted with",
	)
	return f
}

func (c *command) paperWallet(args []string) error {
	paperWalletFlags := newPaperWalletFlags()
	if err := paperWalletFlags.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	if len(paperWalletFlags.flagset.Args()) == 0 {
		return errors.New("you must specify the paper wallet mnemonic")
	}
	// Accept the mnemonic either quoted or as separate arguments
	mnemonic := strings.Join(paperWalletFlags.flagset.Args(), " ")
	c.logger.Debug(
		"decoding paper wallet mnemonic",
		"words", len(strings.Fields(mnemonic)),
	)
	walletMnemonic, err := paperwallet.DecodeMnemonicWithPassword(
		mnemonic,
		paperWalletFlags.password,
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, walletMnemonic)
	return nil
}

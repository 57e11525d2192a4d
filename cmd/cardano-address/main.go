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
	"io"
	"log/slog"
	"math"
	"os"

	cardanocrypto "github.com/zoeldevapps/cardano-crypto.js"
)

type globalFlags struct {
	flagset      *flag.FlagSet
	network      string
	networkMagic int
	debug        bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet("cardano-address", flag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		"mainnet",
		"specifies network the addresses belong to",
	)
	f.flagset.IntVar(
		&f.networkMagic,
		"network-magic",
		0,
		"specifies network magic value. this overrides the -network option",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

// resolveNetwork returns the network selected by the -network and
// -network-magic options
func (f *globalFlags) resolveNetwork() (cardanocrypto.Network, error) {
	if f.networkMagic == 0 {
		network := cardanocrypto.NetworkByName(f.network)
		if network == cardanocrypto.NetworkInvalid {
			return network, fmt.Errorf("invalid network specified: %s", f.network)
		}
		return network, nil
	}
	if f.networkMagic < 0 || int64(f.networkMagic) > math.MaxUint32 {
		return cardanocrypto.NetworkInvalid, fmt.Errorf("invalid network magic: %d", f.networkMagic)
	}
	network := cardanocrypto.NetworkByNetworkMagic(uint32(f.networkMagic))
	if network == cardanocrypto.NetworkInvalid {
		// Custom networks are test networks
		network = cardanocrypto.Network{
			Id:           cardanocrypto.NetworkTestnet.Id,
			Name:         "custom",
			NetworkMagic: uint32(f.networkMagic),
		}
	}
	return network, nil
}

type command struct {
	global  *globalFlags
	network cardanocrypto.Network
	logger  *slog.Logger
	stdout  io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	f := newGlobalFlags()
	f.flagset.SetOutput(stderr)
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse command args: %w", err)
	}
	network, err := f.resolveNetwork()
	if err != nil {
		return err
	}
	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	cmd := &command{
		global:  f,
		network: network,
		logger: slog.New(
			slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}),
		),
		stdout: stdout,
	}
	cmd.logger.Debug(
		"using network",
		"network", network.Name,
		"network_id", network.Id,
		"network_magic", network.NetworkMagic,
	)
	if len(f.flagset.Args()) == 0 {
		return errors.New(
			"you must specify a subcommand (inspect, pack-base, pack-pointer, pack-enterprise, pack-reward, pack-bootstrap or paper-wallet)",
		)
	}
	subArgs := f.flagset.Args()[1:]
	switch f.flagset.Arg(0) {
	case "inspect":
		return cmd.inspect(subArgs)
	case "pack-base":
		return cmd.packBase(subArgs)
	case "pack-pointer":
		return cmd.packPointer(subArgs)
	case "pack-enterprise":
		return cmd.packEnterprise(subArgs)
	case "pack-reward":
		return cmd.packReward(subArgs)
	case "pack-bootstrap":
		return cmd.packBootstrap(subArgs)
	case "paper-wallet":
		return cmd.paperWallet(subArgs)
	default:
		return fmt.Errorf("unknown subcommand: %s", f.flagset.Arg(0))
	}
}

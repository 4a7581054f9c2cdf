// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package cmd

import (
	"context"
	"fmt"

	"github.com/kaleido-io/sovtoken-core/pkg/address"
	"github.com/kaleido-io/sovtoken-core/pkg/wallet"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Qualify, unqualify, and inspect sovtoken payment addresses",
}

var addressQualifyCmd = &cobra.Command{
	Use:   "qualify [verkey-base58]",
	Short: "Qualify a base58 Ed25519 verkey into a pay:sov: address",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		qualified, err := address.Qualify(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(qualified)
		return nil
	},
}

var addressUnqualifyCmd = &cobra.Command{
	Use:   "unqualify [qualified-address]",
	Short: "Strip the pay:sov: qualifier from an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		fmt.Println(address.Unqualify(args[0]))
		return nil
	},
}

var addressVerkeyCmd = &cobra.Command{
	Use:   "verkey [qualified-address]",
	Short: "Recover the base58 verkey from a qualified address",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		verkey, err := address.VerkeyOf(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(verkey)
		return nil
	},
}

var addressCreateSeed string

var addressCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a fresh address, optionally from a seed, using a throwaway in-memory wallet",
	RunE: func(_ *cobra.Command, _ []string) error {
		w := wallet.NewInMemory()
		cfg := "{}"
		if addressCreateSeed != "" {
			cfg = fmt.Sprintf(`{"seed":%q}`, addressCreateSeed)
		}
		qualified, err := address.CreateAddress(context.Background(), w, cfg)
		if err != nil {
			return err
		}
		fmt.Println(qualified)
		return nil
	},
}

func init() {
	addressCreateCmd.Flags().StringVar(&addressCreateSeed, "seed", "", "seed material (mnemonic, hex, base64, or raw utf8)")
	addressCmd.AddCommand(addressQualifyCmd, addressUnqualifyCmd, addressVerkeyCmd, addressCreateCmd)
	rootCmd.AddCommand(addressCmd)
}

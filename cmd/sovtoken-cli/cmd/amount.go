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

	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/spf13/cobra"
)

var amountCmd = &cobra.Command{
	Use:   "amount",
	Short: "Validate a token amount string",
}

var amountParseCmd = &cobra.Command{
	Use:   "parse [decimal-amount]",
	Short: "Parse a decimal string as a u64 token amount, rejecting negatives and overflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := sovtypes.ParseTokenAmount(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(amount)
		return nil
	},
}

func init() {
	amountCmd.AddCommand(amountParseCmd)
	rootCmd.AddCommand(amountCmd)
}

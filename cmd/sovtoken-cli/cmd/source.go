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
	"strconv"

	"github.com/kaleido-io/sovtoken-core/pkg/source"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
	"github.com/spf13/cobra"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Encode and decode txo:sov: UTXO source strings",
}

var sourceEncodeCmd = &cobra.Command{
	Use:   "encode [unqualified-address] [seqNo]",
	Short: "Encode an (address, seqNo) pair into a txo:sov: source string",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		seqNo, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return err
		}
		encoded, err := source.Encode(args[0], sovtypes.SeqNo(seqNo))
		if err != nil {
			return err
		}
		fmt.Println(encoded)
		return nil
	},
}

var sourceDecodeCmd = &cobra.Command{
	Use:   "decode [source-string]",
	Short: "Decode a txo:sov: source string back into (address, seqNo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		addr, seqNo, err := source.Decode(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s %d\n", addr, seqNo)
		return nil
	},
}

func init() {
	sourceCmd.AddCommand(sourceEncodeCmd, sourceDecodeCmd)
	rootCmd.AddCommand(sourceCmd)
}

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

	"github.com/kaleido-io/sovtoken-core/pkg/canonical"
	"github.com/spf13/cobra"
)

var canonCmd = &cobra.Command{
	Use:   "canon",
	Short: "Inspect the canonical serializer's output",
}

var canonSerializeCmd = &cobra.Command{
	Use:   "serialize [json]",
	Short: "Print the canonical signing pre-image for a JSON object",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		v, err := canonical.ParseJSON([]byte(args[0]))
		if err != nil {
			return err
		}
		if err := canonical.ValidateHashableFields(context.Background(), v); err != nil {
			return err
		}
		fmt.Println(canonical.Serialize(v))
		return nil
	},
}

func init() {
	canonCmd.AddCommand(canonSerializeCmd)
	rootCmd.AddCommand(canonCmd)
}

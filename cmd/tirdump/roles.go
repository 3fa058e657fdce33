// Copyright 2025 Google LLC
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
	"strconv"

	"github.com/gx-org/tir/ir"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var allRoles = []ir.IterVarType{
	ir.DataPar,
	ir.ThreadIndex,
	ir.CommReduce,
	ir.Ordered,
	ir.Opaque,
	ir.Unrolled,
	ir.Vectorized,
	ir.Parallelized,
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Print the roles of iteration variables and the manipulations they disallow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(false)
			table.SetHeader([]string{"CODE", "ROLE", "DISALLOWED", "SCHEDULE MARKER"})
			for _, role := range allRoles {
				table.Append([]string{
					strconv.Itoa(int(role)),
					role.String(),
					role.Disallowed().String(),
					strconv.FormatBool(role.IsScheduleMarker()),
				})
			}
			table.Render()
			return nil
		},
	}
}

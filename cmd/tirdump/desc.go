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
	"fmt"
	"strconv"

	"github.com/gx-org/tir/abi"
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func parseDesc(args []string) (abi.TypeDesc, error) {
	var vals [3]uint64
	sizes := [3]int{8, 8, 16}
	names := [3]string{"code", "bits", "lanes"}
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, sizes[i])
		if err != nil {
			return abi.TypeDesc{}, errors.Wrapf(err, "cannot parse %s", names[i])
		}
		vals[i] = v
	}
	return abi.TypeDesc{
		Code:  abi.TypeCode(vals[0]),
		Bits:  uint8(vals[1]),
		Lanes: uint16(vals[2]),
	}, nil
}

func newDescCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "desc CODE BITS LANES",
		Short: "Decode a runtime type descriptor into an IR type",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := parseDesc(args)
			if err != nil {
				return err
			}
			logrus.Debugf("decoding descriptor %s", desc)
			typ, err := ir.TypeFromDesc(desc)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "type: %s\n", typ)
			if typ.IsScalar() {
				fmt.Fprintf(w, "dtype: %v\n", typ.DType())
			}
			back := ir.TypeToDesc(typ)
			if back != desc {
				logrus.Warnf("descriptor %s does not round trip: got %s", desc, back)
			}
			return nil
		},
	}
}

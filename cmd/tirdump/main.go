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

// Command tirdump prints information about the tensor IR data model.
//
// Usage:
//
//	tirdump roles
//	tirdump desc CODE BITS LANES
//	tirdump reduce --op=sum --begin=0 --end=10
package main

import (
	"os"

	"github.com/gx-org/tir/fmterr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "tirdump",
		Short:         "Print information about the tensor IR data model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debugging information")
	root.AddCommand(
		newRolesCmd(),
		newDescCmd(),
		newReduceCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("%+v", fmterr.ToStackTraceError(err))
		os.Exit(1)
	}
}

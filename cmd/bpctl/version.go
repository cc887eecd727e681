// File: version.go
// Role: The "version" subcommand.

package main

import (
	"fmt"

	"github.com/katalvlaran/butlerportugal/ffi"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), ffi.Version)
		return nil
	},
}

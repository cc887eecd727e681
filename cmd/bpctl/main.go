// File: main.go
// Role: Root cobra command and process entry point (spec §6 ambient
//       CLI front-end), grounded on Consensys-go-corset's cmd/testgen
//       root-command layout.

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bpctl",
	Short: "Butler-Portugal tensor canonicalizer command-line tool.",
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(canonicalizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("bpctl failed")
		os.Exit(1)
	}
}

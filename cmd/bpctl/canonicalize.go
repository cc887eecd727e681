// File: canonicalize.go
// Role: The "canonicalize" subcommand.

package main

import (
	"fmt"

	"github.com/katalvlaran/butlerportugal/canon"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize",
	Short: "Load a tensor/symmetry description and print its canonical form.",
	RunE:  runCanonicalize,
}

func init() {
	canonicalizeCmd.Flags().String("config", "", "path to a tensor/symmetry YAML description")
	_ = canonicalizeCmd.MarkFlagRequired("config")
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	log.WithField("config", path).Info("loading tensor description")
	cfg, err := loadTensorConfig(path)
	if err != nil {
		return fmt.Errorf("bpctl: loading %s: %w", path, err)
	}

	t, err := cfg.buildTensor()
	if err != nil {
		return fmt.Errorf("bpctl: building tensor: %w", err)
	}

	log.WithFields(log.Fields{"name": t.Name(), "rank": t.Rank()}).Info("canonicalizing")
	out, err := canon.Canonicalize(t)
	if err != nil {
		return fmt.Errorf("bpctl: canonicalize: %w", err)
	}

	render(cmd.OutOrStdout(), t, out)
	return nil
}

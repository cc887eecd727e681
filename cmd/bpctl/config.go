// File: config.go
// Role: YAML tensor/symmetry description, and its translation into
//       tensor.Tensor / symmetry.Symmetry values.

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
	"gopkg.in/yaml.v3"
)

// indexConfig describes one index slot. Variance defaults to covariant
// when omitted; Position is always the index's position in the YAML
// list, matching spec §9's resolution that slot identity is list order.
type indexConfig struct {
	Name     string `yaml:"name"`
	Variance string `yaml:"variance,omitempty"`
}

// symmetryConfig describes one attached generator. Slots is used for
// "symmetric", "antisymmetric", and "cyclic"; Pairs is used for
// "symmetric_pairs".
type symmetryConfig struct {
	Kind  string   `yaml:"kind"`
	Slots []int    `yaml:"slots,omitempty"`
	Pairs [][2]int `yaml:"pairs,omitempty"`
}

// tensorConfig is the top-level shape of a --config YAML document.
type tensorConfig struct {
	Name        string           `yaml:"name"`
	Coefficient *int32           `yaml:"coefficient,omitempty"`
	Indices     []indexConfig    `yaml:"indices"`
	Symmetries  []symmetryConfig `yaml:"symmetries,omitempty"`
}

// loadTensorConfig reads and parses path as a tensorConfig.
func loadTensorConfig(path string) (tensorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tensorConfig{}, err
	}
	var cfg tensorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return tensorConfig{}, fmt.Errorf("bpctl: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// buildTensor translates cfg into a *tensor.Tensor with its symmetries
// attached in declaration order.
func (cfg tensorConfig) buildTensor() (*tensor.Tensor, error) {
	if len(cfg.Indices) == 0 {
		return nil, ErrMissingIndices
	}

	indices := make([]tensor.Index, len(cfg.Indices))
	for i, ic := range cfg.Indices {
		if ic.Variance == "contravariant" {
			indices[i] = tensor.NewContravariantIndex(ic.Name, i)
		} else {
			indices[i] = tensor.NewIndex(ic.Name, i)
		}
	}

	coefficient := int32(1)
	if cfg.Coefficient != nil {
		coefficient = *cfg.Coefficient
	}

	t, err := tensor.WithCoefficient(cfg.Name, indices, coefficient)
	if err != nil {
		return nil, err
	}
	for _, sc := range cfg.Symmetries {
		sym, err := sc.buildSymmetry()
		if err != nil {
			return nil, err
		}
		if err := t.AddSymmetry(sym); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// buildSymmetry translates sc into a symmetry.Symmetry.
func (sc symmetryConfig) buildSymmetry() (symmetry.Symmetry, error) {
	switch sc.Kind {
	case "symmetric":
		return symmetry.NewSymmetric(sc.Slots), nil
	case "antisymmetric":
		return symmetry.NewAntisymmetric(sc.Slots), nil
	case "symmetric_pairs":
		return symmetry.NewSymmetricPairs(sc.Pairs), nil
	case "cyclic":
		return symmetry.NewCyclic(sc.Slots), nil
	default:
		return symmetry.Symmetry{}, fmt.Errorf("%w: %q", ErrUnknownSymmetryKind, sc.Kind)
	}
}

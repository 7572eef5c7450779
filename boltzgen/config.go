// Package boltzgen builds BoltzGen design configurations for cyclic
// peptide binder generation against a pocket of a target structure.
package boltzgen

import (
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a BoltzGen YAML configuration document. It declares two
// entities (the cyclic peptide being designed and the target structure
// file restricted to one chain) and marks the binding hotspot residues
// on the target chain.
type Config struct {
	Entities        []Entity      `yaml:"entities"`
	BindingTypes    []BindingType `yaml:"binding_types"`
	StructureGroups string        `yaml:"structure_groups"`
}

// Entity is either a designed protein or a structure file reference.
// Exactly one of the two fields is set.
type Entity struct {
	Protein *Protein `yaml:"protein,omitempty"`
	File    *FileRef `yaml:"file,omitempty"`
}

// Protein describes the designed cyclic peptide entity.
type Protein struct {
	ID       string `yaml:"id"`
	Sequence string `yaml:"sequence"`
	Cyclic   bool   `yaml:"cyclic"`
}

// FileRef points at the target structure file and the chains to keep.
type FileRef struct {
	Path    string    `yaml:"path"`
	Include []Include `yaml:"include"`
}

type Include struct {
	Chain ChainRef `yaml:"chain"`
}

type ChainRef struct {
	ID string `yaml:"id"`
}

// BindingType marks the binding residues of one target chain.
type BindingType struct {
	Chain BindingChain `yaml:"chain"`
}

type BindingChain struct {
	ID string `yaml:"id"`

	// Binding is a comma joined list of residue sequence numbers.
	Binding string `yaml:"binding"`
}

// New builds a configuration for designing a cyclic peptide (entity B,
// with the given sequence length range, e.g. "14..20") against the
// named chain of structureFile, binding at pocketResidues. Only the base
// name of structureFile is recorded; BoltzGen resolves it relative to
// the configuration.
func New(structureFile, sequence, chainID string, pocketResidues []int) (*Config, error) {
	if len(pocketResidues) == 0 {
		return nil, fmt.Errorf("no pocket residues to bind against")
	}

	nums := make([]string, len(pocketResidues))
	for i, res := range pocketResidues {
		nums[i] = strconv.Itoa(res)
	}

	return &Config{
		Entities: []Entity{
			{Protein: &Protein{
				ID:       "B",
				Sequence: sequence,
				Cyclic:   true,
			}},
			{File: &FileRef{
				Path:    path.Base(structureFile),
				Include: []Include{{Chain: ChainRef{ID: chainID}}},
			}},
		},
		BindingTypes: []BindingType{
			{Chain: BindingChain{
				ID:      chainID,
				Binding: strings.Join(nums, ","),
			}},
		},
		StructureGroups: "all",
	}, nil
}

// Write emits the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

package cif

import (
	"fmt"
)

// BackboneAtoms is the default geometric fingerprint of a residue: the
// four backbone atoms, in the fixed order they appear in every
// coordinate set produced by Backbone.
var BackboneAtoms = []string{"N", "CA", "C", "O"}

// Backbone extracts the backbone coordinates of every amino acid residue
// in the entry, in file order, using the default backbone atom set. The
// result always has length 4 * (number of residues), with index
// correspondence preserved across structures of equal residue count.
func (e *Entry) Backbone() ([]Coords, error) {
	return e.BackboneWith(BackboneAtoms)
}

// BackboneWith is Backbone with a caller-chosen backbone atom set. Atoms
// are emitted per residue in the order given by atomNames, regardless of
// their order in the file.
//
// A residue that carries some but not all of the named atoms makes the
// whole entry unusable: a partial residue would silently shift every
// later index and break atom-for-atom correspondence between structures.
// HETATM rows (waters, ligands) never contribute; residues with none of
// the named atoms are skipped.
func (e *Entry) BackboneWith(atomNames []string) ([]Coords, error) {
	if len(atomNames) == 0 {
		return nil, fmt.Errorf("%s: empty backbone atom set", e.Path)
	}
	wanted := make(map[string]bool, len(atomNames))
	for _, name := range atomNames {
		wanted[name] = true
	}

	coords := make([]Coords, 0, len(e.Atoms))
	found := make(map[string]Coords, len(atomNames))
	var curChain, curRes string
	var curNum int

	flush := func() error {
		if len(found) == 0 {
			return nil
		}
		if len(found) != len(atomNames) {
			for _, name := range atomNames {
				if _, ok := found[name]; !ok {
					return fmt.Errorf(
						"%s: residue %s %s%d is missing backbone atom '%s'",
						e.Path, curRes, curChain, curNum, name)
				}
			}
		}
		for _, name := range atomNames {
			coords = append(coords, found[name])
		}
		found = make(map[string]Coords, len(atomNames))
		return nil
	}

	started := false
	for _, atom := range e.Atoms {
		if atom.Hetero {
			continue
		}
		// Residue boundaries hinge on the sequence number; without one,
		// two adjacent same-named residues would merge undetected.
		if !atom.HasNum {
			return nil, fmt.Errorf(
				"%s: atom '%s' in residue %s (chain %s) has no residue "+
					"sequence number", e.Path, atom.Name, atom.Residue, atom.Chain)
		}
		if !started ||
			atom.Chain != curChain ||
			atom.ResidueNum != curNum ||
			atom.Residue != curRes {
			if err := flush(); err != nil {
				return nil, err
			}
			curChain, curNum, curRes = atom.Chain, atom.ResidueNum, atom.Residue
			started = true
		}
		if wanted[atom.Name] {
			found[atom.Name] = atom.Coords
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(coords) == 0 {
		return nil, fmt.Errorf("%s: no backbone atoms found", e.Path)
	}
	return coords, nil
}

package cluster

import (
	"github.com/peptidelab/cycgo/cif"
)

// ByLength partitions coordinate sets into disjoint groups keyed by
// residue count, where each coordinate set holds atomsPerResidue points
// per residue. Only equal-length sets can be superposed, so clustering
// always runs within a single group. Lengths with no structures simply
// have no entry.
func ByLength(coords map[string][]cif.Coords,
	atomsPerResidue int) map[int]map[string][]cif.Coords {

	groups := make(map[int]map[string][]cif.Coords, 10)
	for name, cs := range coords {
		residues := len(cs) / atomsPerResidue
		group, ok := groups[residues]
		if !ok {
			group = make(map[string][]cif.Coords, 10)
			groups[residues] = group
		}
		group[name] = cs
	}
	return groups
}

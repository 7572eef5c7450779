// Package cluster groups backbone coordinate sets into clusters of
// near-identical geometry.
//
// Clustering is greedy and score ranked: the best scoring unclustered
// structure seeds a cluster and absorbs every other unclustered
// structure whose superposition RMSD against the seed falls under the
// cutoff. Membership is decided against the seed only, so clusters have
// a bounded radius around their representative but no guarantee on the
// pairwise diameter of the remaining members.
package cluster

import (
	"fmt"
	"sort"

	"github.com/peptidelab/cycgo/cif"
	"github.com/peptidelab/cycgo/rmsd"
)

// DefaultCutoff is the RMSD cutoff, in ångströms, under which two
// backbones are considered the same conformation.
const DefaultCutoff = 1.5

// Cluster is one group of structures sharing a conformation. Members
// always contains the representative, first.
type Cluster struct {
	// Representative is the lowest scoring member, the structure every
	// other member was measured against.
	Representative string

	Members []string

	// Residues is the residue count shared by every member.
	Residues int

	// Score is the representative's score.
	Score float64
}

// Collection is the finished output of a clustering run over all length
// groups, keyed by representative. No two clusters share a member.
type Collection map[string]Cluster

// Group clusters one length group of residues-sized backbones. Every
// coordinate set in coords must have the same length, every name must
// have an entry in scores, and scores must already be keyed by structure
// name (not by score-table base name).
//
// Structures are processed in ascending score order; equal scores are
// broken lexicographically by name, so the result is deterministic for
// a fixed input. A structure joins a cluster when its RMSD from the
// seed is strictly below cutoff.
func Group(coords map[string][]cif.Coords, scores map[string]float64,
	residues int, cutoff float64) ([]Cluster, error) {

	ordered := make([]string, 0, len(coords))
	for name := range coords {
		if _, ok := scores[name]; !ok {
			return nil, fmt.Errorf(
				"structure '%s' has no score entry and cannot be ranked", name)
		}
		ordered = append(ordered, name)
	}
	sort.Slice(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i]], scores[ordered[j]]
		if si != sj {
			return si < sj
		}
		return ordered[i] < ordered[j]
	})

	claimed := make([]bool, len(ordered))
	clusters := make([]Cluster, 0, 10)
	for i, seed := range ordered {
		if claimed[i] {
			continue
		}
		claimed[i] = true
		seedCoords := coords[seed]
		members := []string{seed}

		// Only names after the seed can still be unclustered.
		for j := i + 1; j < len(ordered); j++ {
			if claimed[j] {
				continue
			}
			if rmsd.RMSD(coords[ordered[j]], seedCoords) < cutoff {
				members = append(members, ordered[j])
				claimed[j] = true
			}
		}

		clusters = append(clusters, Cluster{
			Representative: seed,
			Members:        members,
			Residues:       residues,
			Score:          scores[seed],
		})
	}
	return clusters, nil
}

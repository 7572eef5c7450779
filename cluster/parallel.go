package cluster

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/peptidelab/cycgo/cif"
)

// All clusters every length group and merges the results into a single
// Collection. Groups are independent of one another (read-only shared
// scores, disjoint outputs), so they are clustered concurrently, one
// task per length group, bounded by GOMAXPROCS. Within a group the
// greedy loop is inherently sequential and is never split up.
//
// The result is identical to clustering the groups one at a time.
func All(groups map[int]map[string][]cif.Coords,
	scores map[string]float64, cutoff float64) (Collection, error) {

	lengths := make([]int, 0, len(groups))
	for residues := range groups {
		lengths = append(lengths, residues)
	}
	sort.Ints(lengths)

	results := make([][]Cluster, len(lengths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, residues := range lengths {
		i, residues := i, residues
		g.Go(func() error {
			clusters, err := Group(groups[residues], scores, residues, cutoff)
			if err != nil {
				return err
			}
			results[i] = clusters
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	collection := make(Collection, len(lengths)*4)
	for _, clusters := range results {
		for _, c := range clusters {
			collection[c.Representative] = c
		}
	}
	return collection, nil
}

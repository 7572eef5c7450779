package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peptidelab/cycgo/cif"
)

func TestByLength(t *testing.T) {
	coords := map[string][]cif.Coords{
		"a": make([]cif.Coords, 4*7),
		"b": make([]cif.Coords, 4*7),
		"c": make([]cif.Coords, 4*9),
	}

	groups := ByLength(coords, 4)
	require.Len(t, groups, 2)
	require.Len(t, groups[7], 2)
	require.Len(t, groups[9], 1)
	require.Contains(t, groups[7], "a")
	require.Contains(t, groups[7], "b")
	require.Contains(t, groups[9], "c")

	// No empty group entries, ever.
	_, ok := groups[8]
	require.False(t, ok)
}

func TestByLengthEmpty(t *testing.T) {
	require.Empty(t, ByLength(nil, 4))
}

// TestAllMatchesSequential clusters length groups concurrently through
// All and checks the merged result against per-group sequential runs.
func TestAllMatchesSequential(t *testing.T) {
	coordsA, scoresA := randomGroup(30, 11)
	coordsB, scoresB := randomGroup(20, 12)

	// Rekey group B into 6-residue backbones with distinct names.
	coords := make(map[string][]cif.Coords, 50)
	scores := make(map[string]float64, 50)
	for name, cs := range coordsA {
		coords[name] = cs
		scores[name] = scoresA[name]
	}
	for name, cs := range coordsB {
		long := make([]cif.Coords, 0, len(cs)*2)
		long = append(long, cs...)
		long = append(long, cs...)
		coords["x"+name] = long
		scores["x"+name] = scoresB[name]
	}

	groups := ByLength(coords, 4)
	require.Len(t, groups, 2)

	collection, err := All(groups, scores, DefaultCutoff)
	require.NoError(t, err)

	want := make(Collection, len(collection))
	for residues, group := range groups {
		clusters, err := Group(group, scores, residues, DefaultCutoff)
		require.NoError(t, err)
		for _, c := range clusters {
			want[c.Representative] = c
		}
	}
	require.Equal(t, want, collection)
	require.Equal(t, len(coords), collection.Size())
}

func TestAllMissingScore(t *testing.T) {
	coords := map[string][]cif.Coords{"a": square}
	groups := ByLength(coords, 4)

	_, err := All(groups, map[string]float64{}, DefaultCutoff)
	require.Error(t, err)
}

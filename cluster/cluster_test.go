package cluster

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peptidelab/cycgo/cif"
	"github.com/peptidelab/cycgo/rmsd"
)

// square, line and wiggle are three one-residue (four point) backbones:
// square and wiggle are nearly the same shape, line is not remotely
// either. The geometric preconditions each scenario relies on are
// asserted explicitly, so a test never hinges on an eyeballed RMSD.
var (
	square = []cif.Coords{
		{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0},
	}
	wiggle = []cif.Coords{
		{0, 0, 0.1}, {2, 0, -0.1}, {2, 2, 0.1}, {0, 2, -0.1},
	}
	line = []cif.Coords{
		{0, 0, 0}, {4, 0, 0}, {8, 0, 0}, {12, 0, 0},
	}
)

// TestGreedyScenario covers the core seed-then-absorb behavior: the
// best scoring structure seeds the first cluster even though two worse
// scoring structures are mutually closer.
func TestGreedyScenario(t *testing.T) {
	require.Less(t, rmsd.RMSD(wiggle, square), DefaultCutoff)
	require.GreaterOrEqual(t, rmsd.RMSD(line, square), DefaultCutoff)
	require.GreaterOrEqual(t, rmsd.RMSD(wiggle, line), DefaultCutoff)

	coords := map[string][]cif.Coords{
		"A": square, "B": wiggle, "C": line,
	}
	scores := map[string]float64{"A": 1.0, "B": 2.0, "C": 0.5}

	clusters, err := Group(coords, scores, 1, DefaultCutoff)
	require.NoError(t, err)
	require.Len(t, clusters, 2)

	// C has the best score, so it seeds first and absorbs nothing.
	require.Equal(t, "C", clusters[0].Representative)
	require.Equal(t, []string{"C"}, clusters[0].Members)

	// A seeds next and absorbs B.
	require.Equal(t, "A", clusters[1].Representative)
	require.Equal(t, []string{"A", "B"}, clusters[1].Members)

	for _, c := range clusters {
		require.Equal(t, 1, c.Residues)
	}
	require.Equal(t, 0.5, clusters[0].Score)
	require.Equal(t, 1.0, clusters[1].Score)
}

func TestMissingScoreIsError(t *testing.T) {
	coords := map[string][]cif.Coords{"A": square, "B": wiggle}
	scores := map[string]float64{"A": 1.0}

	_, err := Group(coords, scores, 1, DefaultCutoff)
	require.Error(t, err)
	require.Contains(t, err.Error(), "B")
}

func TestScoreTieBreaksByName(t *testing.T) {
	coords := map[string][]cif.Coords{
		"zeta": square, "alpha": square,
	}
	scores := map[string]float64{"zeta": 1.0, "alpha": 1.0}

	clusters, err := Group(coords, scores, 1, DefaultCutoff)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	require.Equal(t, "alpha", clusters[0].Representative)
	require.Equal(t, []string{"alpha", "zeta"}, clusters[0].Members)
}

// TestPartition checks that clustering is always an exact partition: no
// structure is lost, duplicated or left out, and every representative
// leads its own member list.
func TestPartition(t *testing.T) {
	coords, scores := randomGroup(60, 17)

	clusters, err := Group(coords, scores, 3, DefaultCutoff)
	require.NoError(t, err)

	seen := make(map[string]int, len(coords))
	for _, c := range clusters {
		require.NotEmpty(t, c.Members)
		require.Equal(t, c.Representative, c.Members[0])
		for _, m := range c.Members {
			seen[m]++
		}
	}
	require.Len(t, seen, len(coords))
	for name, count := range seen {
		require.Equal(t, 1, count, "structure %s", name)
	}
}

func TestDeterminism(t *testing.T) {
	coords, scores := randomGroup(40, 99)

	first, err := Group(coords, scores, 3, DefaultCutoff)
	require.NoError(t, err)
	second, err := Group(coords, scores, 3, DefaultCutoff)
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(first, second))
}

// TestThresholdMonotonicity shrinks the cutoff and checks both halves
// of the monotonicity property: the total number of clusters never
// decreases, and the first cluster (same seed throughout, since the
// best scoring structure always seeds first) never gains a member.
func TestThresholdMonotonicity(t *testing.T) {
	coords, scores := randomGroup(50, 3)

	prevClusters := -1
	prevSeedSize := len(coords) + 1
	for _, cutoff := range []float64{8.0, 4.0, 2.0, 1.0, 0.5, 0.1} {
		clusters, err := Group(coords, scores, 3, cutoff)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(clusters), prevClusters,
			"cutoff %f produced fewer clusters", cutoff)
		require.LessOrEqual(t, len(clusters[0].Members), prevSeedSize,
			"cutoff %f grew the seed cluster", cutoff)
		prevClusters = len(clusters)
		prevSeedSize = len(clusters[0].Members)
	}
}

func TestEmptyGroup(t *testing.T) {
	clusters, err := Group(nil, nil, 5, DefaultCutoff)
	require.NoError(t, err)
	require.Empty(t, clusters)
}

// randomGroup builds n same-length coordinate sets in a handful of
// loose geometric families so that clusters of more than one member
// actually form, plus distinct scores for determinism.
func randomGroup(n int, seed int64) (map[string][]cif.Coords, map[string]float64) {
	rng := rand.New(rand.NewSource(seed))

	bases := make([][]cif.Coords, 5)
	for b := range bases {
		base := make([]cif.Coords, 12)
		for i := range base {
			base[i] = cif.Coords{
				rng.Float64() * 20, rng.Float64() * 20, rng.Float64() * 20,
			}
		}
		bases[b] = base
	}

	coords := make(map[string][]cif.Coords, n)
	scores := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		base := bases[rng.Intn(len(bases))]
		set := make([]cif.Coords, len(base))
		for j, c := range base {
			set[j] = cif.Coords{
				c[0] + rng.Float64()*0.2,
				c[1] + rng.Float64()*0.2,
				c[2] + rng.Float64()*0.2,
			}
		}
		name := string(rune('a'+i/26)) + string(rune('a'+i%26))
		coords[name] = set
		scores[name] = rng.Float64() * 10
	}
	return coords, scores
}

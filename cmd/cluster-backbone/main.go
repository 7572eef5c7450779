// cluster-backbone groups candidate cyclic peptide structures into
// clusters of near-identical backbone geometry.
//
// It reads a ranked score table and a directory of mmCIF structure
// files, extracts the backbone coordinates of every scored structure,
// stratifies the structures by residue count and greedily clusters each
// length group by superposition RMSD, best score first. Results are
// written to clusters.json and cluster_representatives.txt in the
// output directory.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/peptidelab/cycgo/cif"
	"github.com/peptidelab/cycgo/cluster"
	"github.com/peptidelab/cycgo/cmd/util"
	"github.com/peptidelab/cycgo/score"
)

func init() {
	util.FlagUse("cpu", "verbose", "cutoff", "pattern", "backbone")
	util.FlagParse("score-file cif-dir out-dir",
		"Cluster the structures in cif-dir by backbone RMSD, using the\n"+
			"scores in score-file to rank them.")
	util.AssertNArg(3)
}

func main() {
	scoreFile, cifDir, outDir := util.Arg(0), util.Arg(1), util.Arg(2)
	util.AssertIsDir(cifDir)
	util.AssertIsDir(outDir)

	scores, err := score.Open(scoreFile)
	util.Assert(err, "Could not read score table '%s'", scoreFile)
	if len(scores) == 0 {
		util.Warnf("Score table '%s' has no entries; no structures can "+
			"be ranked.", scoreFile)
	}
	util.Verbosef("Loaded %d scores from '%s'.", len(scores), scoreFile)

	files, err := filepath.Glob(filepath.Join(cifDir, util.FlagPattern))
	util.Assert(err, "Could not scan '%s'", cifDir)
	util.Verbosef("Found %d structure files in '%s'.", len(files), cifDir)

	// Structures whose derived name has no score entry cannot be ranked
	// and are set aside before any parsing happens.
	scored := make([]string, 0, len(files))
	unscored := 0
	for _, file := range files {
		if _, ok := scores[score.BaseName(filepath.Base(file))]; ok {
			scored = append(scored, file)
		} else {
			unscored++
		}
	}

	coords := make(map[string][]cif.Coords, len(scored))
	resolved := make(map[string]float64, len(scored))
	progress := util.NewProgress(len(scored))
	for _, file := range scored {
		name := filepath.Base(file)
		entry, err := cif.Open(file)
		if err != nil {
			progress.JobDone(err)
			continue
		}
		backbone, err := entry.BackboneWith(util.FlagBackbone)
		if err != nil {
			progress.JobDone(err)
			continue
		}
		coords[name] = backbone
		resolved[name] = scores[score.BaseName(name)]
		progress.JobDone(nil)
	}
	processed, malformed := progress.Close()

	groups := cluster.ByLength(coords, len(util.FlagBackbone))
	collection, err := cluster.All(groups, resolved, util.FlagCutoff)
	util.Assert(err)

	jsonOut := filepath.Join(outDir, "clusters.json")
	jsonFile := util.CreateFile(jsonOut)
	util.Assert(collection.WriteJSON(jsonFile),
		"Could not write '%s'", jsonOut)
	util.Assert(jsonFile.Close(), "Could not write '%s'", jsonOut)

	tableOut := filepath.Join(outDir, "cluster_representatives.txt")
	tableFile := util.CreateFile(tableOut)
	util.Assert(collection.WriteTable(tableFile),
		"Could not write '%s'", tableOut)
	util.Assert(tableFile.Close(), "Could not write '%s'", tableOut)

	fmt.Printf("%d structures in %d clusters "+
		"(%d without scores, %d malformed, %d processed)\n",
		collection.Size(), len(collection), unscored, malformed, processed)
	for _, s := range collection.Summary() {
		fmt.Printf("  %d residues: %d structures -> %d clusters\n",
			s.Residues, s.Structures, s.Clusters)
	}
}

package cluster

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// jsonCluster is the on-disk shape of one cluster in clusters.json.
type jsonCluster struct {
	Members  []string `json:"members"`
	Residues int      `json:"n_residues"`
	NMembers int      `json:"n_members"`
	Score    float64  `json:"representative_score"`
}

// WriteJSON writes the whole collection as a JSON document mapping each
// representative to its cluster details.
func (c Collection) WriteJSON(w io.Writer) error {
	out := make(map[string]jsonCluster, len(c))
	for rep, cl := range c {
		out[rep] = jsonCluster{
			Members:  cl.Members,
			Residues: cl.Residues,
			NMembers: len(cl.Members),
			Score:    cl.Score,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Representatives returns every cluster representative, sorted by
// ascending representative score with ties broken by name.
func (c Collection) Representatives() []string {
	reps := make([]string, 0, len(c))
	for rep := range c {
		reps = append(reps, rep)
	}
	sort.Slice(reps, func(i, j int) bool {
		si, sj := c[reps[i]].Score, c[reps[j]].Score
		if si != sj {
			return si < sj
		}
		return reps[i] < reps[j]
	})
	return reps
}

// WriteTable writes a ranked, tab separated summary of the cluster
// representatives: name, residue count, member count and score, best
// score first.
func (c Collection) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Cluster representatives (sorted by score)\n"+
		"# Representative\tN_residues\tN_members\tScore\n"); err != nil {
		return err
	}
	for _, rep := range c.Representatives() {
		cl := c[rep]
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\n",
			rep, cl.Residues, len(cl.Members), cl.Score)
		if err != nil {
			return err
		}
	}
	return nil
}

// LengthSummary counts structures and clusters for one residue count.
type LengthSummary struct {
	Residues   int
	Structures int
	Clusters   int
}

// Summary tallies the collection by residue count, in ascending order.
func (c Collection) Summary() []LengthSummary {
	byLength := make(map[int]*LengthSummary, 10)
	for _, cl := range c {
		s, ok := byLength[cl.Residues]
		if !ok {
			s = &LengthSummary{Residues: cl.Residues}
			byLength[cl.Residues] = s
		}
		s.Clusters++
		s.Structures += len(cl.Members)
	}

	summaries := make([]LengthSummary, 0, len(byLength))
	for _, s := range byLength {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Residues < summaries[j].Residues
	})
	return summaries
}

// Size returns the total number of structures across every cluster.
func (c Collection) Size() int {
	total := 0
	for _, cl := range c {
		total += len(cl.Members)
	}
	return total
}

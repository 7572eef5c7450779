// Package score reads ranked score tables and resolves structure file
// names against them.
//
// A score table is a whitespace delimited text file with one header line
// followed by one row per structure: rank, structure name, score. Lower
// scores are better. The canonical producer is the filtering stage of
// the design pipeline, which writes tables like
// combined_filtered_scores_sorted.sc.
package score

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table maps a structure name to its score. Lower is better.
type Table map[string]float64

// Open reads a score table from a file.
func Open(fileName string) (Table, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", fileName, err)
	}
	return table, nil
}

// Read parses a score table. The first line is a header and is skipped.
// Each remaining line needs at least three fields: the first (the rank)
// is ignored, the second is the structure name and the third is the
// score. Lines with fewer than three fields are skipped; a score that
// does not parse as a float is an error.
func Read(reader io.Reader) (Table, error) {
	table := make(Table, 100)
	scanner := bufio.NewScanner(reader)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf(
				"could not parse score '%s' for '%s': %s",
				fields[2], fields[1], err)
		}
		table[fields[1]] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// BaseName strips the generation prefix from a structure file name so it
// can be looked up in a score table. Generated structures carry two
// extra underscore separated fields in front of the scored name, e.g.
// "alpha_0.01_1a85_cyclic_044_chainA.cif" was scored as
// "1a85_cyclic_044_chainA.cif".
//
// A name with fewer than three fields yields the empty string, which
// matches no table key and therefore excludes the structure. This is the
// single place where name derivation happens; callers must not slice
// names themselves.
func BaseName(structureName string) string {
	parts := strings.SplitN(structureName, "_", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// Package cif reads atom coordinates from mmCIF structure files.
//
// Only the '_atom_site' loop is parsed; everything else in a CIF file is
// skipped. This is enough to extract backbone coordinate sets from
// predicted cyclic peptide structures and pocket residue numbers from
// fpocket output.
package cif

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Coords is a triple of x, y and z coordinates, in ångströms.
type Coords [3]float64

// Atom corresponds to a single row of an '_atom_site' loop.
type Atom struct {
	// Name is the atom identifier, e.g. "N", "CA", "C" or "O".
	Name string

	// Residue is the three letter residue name, e.g. "ALA".
	Residue string

	// ResidueNum is the author-assigned residue sequence number. It is
	// only meaningful when HasNum is true: mmCIF allows '?' or '.' for
	// an unknown number, most often on HETATM rows.
	ResidueNum int

	// HasNum says whether the row carried a parseable residue number.
	HasNum bool

	// Chain is the author-assigned chain identifier.
	Chain string

	// Hetero is true for HETATM rows (ligands, waters, pocket spheres).
	Hetero bool

	Coords Coords
}

// Entry represents the coordinate contents of a single mmCIF file: every
// ATOM and HETATM row of its '_atom_site' loop, in file order.
type Entry struct {
	Path  string
	Atoms []Atom
}

// Name returns the base name of the file this entry was read from.
func (e *Entry) Name() string {
	return path.Base(e.Path)
}

// Open reads an mmCIF file from disk. If the file name ends with ".gz",
// gzip decompression is used.
func Open(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		if reader, err = gzip.NewReader(f); err != nil {
			return nil, err
		}
	}
	return Read(reader, fileName)
}

// Read parses mmCIF data from an arbitrary reader. The fileName is only
// used to label the entry (and any errors).
func Read(reader io.Reader, fileName string) (*Entry, error) {
	entry := &Entry{
		Path:  fileName,
		Atoms: make([]Atom, 0, 100),
	}

	// Column indices of the '_atom_site' tags we care about, discovered
	// from the loop header. -1 means the tag was not declared.
	cols := map[string]int{
		"group_PDB":     -1,
		"label_atom_id": -1,
		"label_comp_id": -1,
		"auth_seq_id":   -1,
		"label_seq_id":  -1,
		"auth_asym_id":  -1,
		"label_asym_id": -1,
		"Cartn_x":       -1,
		"Cartn_y":       -1,
		"Cartn_z":       -1,
	}
	ncols, inHeader, inRows := 0, false, false

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "loop_":
			inHeader, inRows, ncols = true, false, 0
		case strings.HasPrefix(line, "_"):
			if inHeader && strings.HasPrefix(line, "_atom_site.") {
				tag := strings.TrimPrefix(line, "_atom_site.")
				if _, ok := cols[tag]; ok {
					cols[tag] = ncols
				}
			}
			if inHeader {
				ncols++
			} else {
				inRows = false
			}
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if inHeader {
				// First data row ends the header.
				inHeader, inRows = false, true
			}
			if !inRows {
				continue
			}
			atom, err := parseAtom(line, cols, ncols)
			if err != nil {
				return nil, fmt.Errorf("%s: %s", fileName, err)
			}
			entry.Atoms = append(entry.Atoms, atom)
		default:
			// A comment, a section terminator or data we don't parse.
			inHeader, inRows = false, false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entry, nil
}

// parseAtom builds an Atom from a single data row of an '_atom_site'
// loop, using the column indices gathered from the loop header.
func parseAtom(line string, cols map[string]int, ncols int) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < ncols {
		return Atom{}, fmt.Errorf(
			"atom row has %d fields, but the loop header declared %d",
			len(fields), ncols)
	}

	get := func(tag string) string {
		if i := cols[tag]; i >= 0 {
			return strings.Trim(fields[i], `"'`)
		}
		return ""
	}

	atom := Atom{
		Name:    get("label_atom_id"),
		Residue: get("label_comp_id"),
		Hetero:  get("group_PDB") == "HETATM",
	}

	// Prefer author-assigned numbering and chain identifiers; fpocket
	// and most prediction pipelines key their output on these.
	atom.Chain = get("auth_asym_id")
	if atom.Chain == "" {
		atom.Chain = get("label_asym_id")
	}
	snum := get("auth_seq_id")
	if snum == "" {
		snum = get("label_seq_id")
	}
	if num, err := strconv.Atoi(snum); err == nil {
		atom.ResidueNum = num
		atom.HasNum = true
	}

	for i, tag := range []string{"Cartn_x", "Cartn_y", "Cartn_z"} {
		ci := cols[tag]
		if ci < 0 {
			return Atom{}, fmt.Errorf("'_atom_site.%s' is not declared", tag)
		}
		val, err := strconv.ParseFloat(fields[ci], 64)
		if err != nil {
			return Atom{}, fmt.Errorf(
				"could not parse coordinate '%s': %s", fields[ci], err)
		}
		atom.Coords[i] = val
	}
	return atom, nil
}

// PocketResidues returns the sorted set of distinct residue sequence
// numbers over every ATOM and HETATM row. fpocket writes its pocket
// selections as HETATM-heavy CIF files, so hetero rows count here.
// Rows with an unknown residue number contribute nothing; a made-up
// number would end up in a binding residue list.
func (e *Entry) PocketResidues() []int {
	seen := make(map[int]bool, 50)
	for _, atom := range e.Atoms {
		if atom.HasNum {
			seen[atom.ResidueNum] = true
		}
	}
	residues := make([]int, 0, len(seen))
	for num := range seen {
		residues = append(residues, num)
	}
	sort.Ints(residues)
	return residues
}

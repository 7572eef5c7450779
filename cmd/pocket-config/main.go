// pocket-config turns an fpocket pocket selection into a BoltzGen
// configuration for designing a cyclic peptide binder against that
// pocket.
package main

import (
	"flag"
	"fmt"

	"github.com/peptidelab/cycgo/boltzgen"
	"github.com/peptidelab/cycgo/cif"
	"github.com/peptidelab/cycgo/cmd/util"
)

var (
	flagStructure = flag.String("structure", "",
		"The target structure file, e.g. 4QKZ.cif. (Required.)")
	flagPocket = flag.String("pocket", "",
		"The pocket CIF file written by fpocket, e.g. pocket1_atm.cif. "+
			"(Required.)")
	flagSeq = flag.String("seq", "",
		"The peptide sequence length range, e.g. '14..20'. (Required.)")
	flagChain = flag.String("chain", "A",
		"The chain identifier of the target protein.")
	flagOut = flag.String("o", "",
		"The output YAML file name. (Required.)")
)

func init() {
	util.FlagParse("",
		"Generate a BoltzGen YAML configuration from fpocket output.")
	if *flagStructure == "" || *flagPocket == "" ||
		*flagSeq == "" || *flagOut == "" {
		util.Usage()
	}
}

func main() {
	pocket, err := cif.Open(*flagPocket)
	util.Assert(err, "Could not read pocket file '%s'", *flagPocket)

	residues := pocket.PocketResidues()
	if len(residues) == 0 {
		util.Fatalf("No residues found in pocket file '%s'.", *flagPocket)
	}
	util.Warnf("Found %d unique residues in pocket (range %d-%d).",
		len(residues), residues[0], residues[len(residues)-1])

	config, err := boltzgen.New(*flagStructure, *flagSeq, *flagChain, residues)
	util.Assert(err, "Could not build configuration")

	out := util.CreateFile(*flagOut)
	util.Assert(config.Write(out), "Could not write '%s'", *flagOut)
	util.Assert(out.Close(), "Could not write '%s'", *flagOut)

	fmt.Printf("Wrote %s:\n", *flagOut)
	fmt.Printf("  structure: %s (chain %s)\n", *flagStructure, *flagChain)
	fmt.Printf("  peptide sequence: %s\n", *flagSeq)
	fmt.Printf("  binding residues: %d\n", len(residues))
}

package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/peptidelab/cycgo/cluster"
)

var (
	FlagCpu = runtime.NumCPU()

	FlagVerbose = false

	// FlagCutoff is the RMSD cutoff under which two backbones fall into
	// the same cluster.
	FlagCutoff = cluster.DefaultCutoff

	// FlagPattern is the glob matched against file names when scanning a
	// structure directory.
	FlagPattern = "*.cif"

	flagBackbone = "N,CA,C,O"
	FlagBackbone []string
)

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func() {
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress and summary output is shown.")
		},
	},
	"cutoff": {
		set: func() {
			flag.Float64Var(&FlagCutoff, "cutoff", FlagCutoff,
				"The RMSD cutoff (in angstroms) for cluster membership.")
		},
	},
	"pattern": {
		set: func() {
			flag.StringVar(&FlagPattern, "pattern", FlagPattern,
				"The file name glob used to find structure files.")
		},
	},
	"backbone": {
		set: func() {
			flag.StringVar(&flagBackbone, "backbone", flagBackbone,
				"The comma separated backbone atom names extracted\n"+
					"from each residue.")
		},
		init: func() {
			FlagBackbone = strings.Split(flagBackbone, ",")
			for i := range FlagBackbone {
				FlagBackbone[i] = strings.TrimSpace(FlagBackbone[i])
			}
		},
	},
}

// FlagUse declares which of the common flags a command accepts. It must
// be called before FlagParse.
func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// FlagParse registers the declared common flags, sets a usage message
// listing the positional arguments and parses the command line.
func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}

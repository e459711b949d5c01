// Command quantgov computes per-document text metrics over a corpus.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jnelson16/quantgov/internal/metric"

	// Import all metric packages so their init() functions register
	// the builtin metrics.
	_ "github.com/jnelson16/quantgov/internal/metrics/conditionals"
	_ "github.com/jnelson16/quantgov/internal/metrics/entropy"
	_ "github.com/jnelson16/quantgov/internal/metrics/occurrence"
	_ "github.com/jnelson16/quantgov/internal/metrics/sentencelength"
	_ "github.com/jnelson16/quantgov/internal/metrics/sentiment"
	_ "github.com/jnelson16/quantgov/internal/metrics/wordcount"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: quantgov <command> [flags] [root]

Commands:
  run <metric>  Compute a metric over a corpus, one row per document
  custom        Compute a metric loaded from a driver plugin
  metrics       List available metrics and their options
  sanity        Run the corpus metadata sanity check
  init          Generate a default .quantgov.yml config file
  version       Print version and exit

Global flags:
  -h, --help      Show this help

Run 'quantgov run <metric> --help' for a metric's options.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]
	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "run":
		return runRun(os.Args[2:])
	case "custom":
		return runCustom(os.Args[2:])
	case "metrics":
		return runMetrics()
	case "sanity":
		return runSanity(os.Args[2:])
	case "init":
		return runInit()
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "quantgov: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func runMetrics() int {
	for _, d := range metric.All() {
		fmt.Printf("%s\n    %s\n", d.Name(), d.Help())
		for _, opt := range d.Options() {
			required := ""
			if opt.Required {
				required = " (required)"
			}
			fmt.Printf("    --%s%s: %s\n", opt.Name, required, opt.Help)
		}
	}
	return 0
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("quantgov %s\n", version)
}

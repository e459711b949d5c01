package main

import (
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jnelson16/quantgov/internal/log"
	"github.com/jnelson16/quantgov/internal/sanity"
)

// runSanity implements `quantgov sanity`: a one-shot report over the
// corpus metadata file. Exit code 1 when the warning threshold trips,
// so scripted pipelines can gate on it.
func runSanity(args []string) int {
	fs := flag.NewFlagSet("sanity", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to .quantgov.yml (default: discover upward)")
	metadata := fs.String("metadata", "", "metadata CSV file")
	cutoff := fs.Float64("cutoff", 0, "fraction of minimum-word documents that raises a warning")
	verbose := fs.BoolP("verbose", "v", false, "verbose output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quantgov sanity [flags]\n\nFlags:\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 2
		}
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: *verbose, Prefix: "sanity", W: os.Stderr}

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	if !fs.Changed("metadata") {
		*metadata = cfg.Metadata
	}
	if !fs.Changed("cutoff") {
		*cutoff = cfg.Cutoff
	}

	table, err := sanity.LoadMetadata(*metadata)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	logger.Printf("rows: %d", len(table.Words))

	report, err := sanity.Check(table, *cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	fmt.Printf("%s\n", encoded)

	if report.Warning {
		fmt.Fprintf(os.Stderr,
			"quantgov: warning: %d of %d documents are at the minimum word count (%d words)\n",
			report.Extremes.MinCount, report.Stats.Documents, report.Extremes.MinWords,
		)
		return 1
	}
	return 0
}

// runInit writes a default .quantgov.yml in the working directory.
func runInit() int {
	const name = ".quantgov.yml"
	if _, err := os.Stat(name); err == nil {
		fmt.Fprintf(os.Stderr, "quantgov: %s already exists\n", name)
		return 1
	}

	content := `# quantgov project configuration
corpus:
  root: .
  include:
    - "**/*.txt"
  exclude: []
  markdown: false
metadata: data/metadata.csv
cutoff: 0.01
output: ""
`
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: writing %s: %v\n", name, err)
		return 1
	}
	fmt.Printf("wrote %s\n", name)
	return 0
}

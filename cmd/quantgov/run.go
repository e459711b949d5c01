package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jnelson16/quantgov/internal/config"
	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/driver"
	"github.com/jnelson16/quantgov/internal/log"
	"github.com/jnelson16/quantgov/internal/metric"
)

// runRun dispatches `quantgov run <metric> [flags] [root]`.
func runRun(args []string) int {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		fmt.Fprint(os.Stderr, "Usage: quantgov run <metric> [flags] [root]\n\nRun 'quantgov metrics' to list metrics.\n")
		return 2
	}

	d, err := metric.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 2
	}
	return runMetricCommand(d, args[1:])
}

// runCustom loads a driver plugin and runs it like a builtin metric.
func runCustom(args []string) int {
	driverPath := ""
	for i, arg := range args {
		if arg == "--driver" && i+1 < len(args) {
			driverPath = args[i+1]
		}
	}
	if driverPath == "" {
		fmt.Fprint(os.Stderr, "Usage: quantgov custom --driver <path> [flags] [root]\n")
		return 2
	}

	d, err := driver.Load(driverPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	return runMetricCommand(d, args)
}

// runMetricCommand builds the metric's flag set from its declared
// options plus the shared corpus/output flags, streams the corpus, and
// writes one CSV row per document.
func runMetricCommand(d metric.Descriptor, args []string) int {
	fs := flag.NewFlagSet(d.Name(), flag.ContinueOnError)
	metric.BindFlags(fs, d.Options())

	configPath := fs.String("config", "", "path to .quantgov.yml (default: discover upward)")
	out := fs.String("out", "", "results file (default: stdout or config output)")
	include := fs.StringSlice("include", nil, "corpus include patterns")
	exclude := fs.StringSlice("exclude", nil, "corpus exclude patterns")
	filename := fs.String("filename", "", "base name glob documents must match")
	markdown := fs.Bool("markdown", false, "extract plain text from Markdown documents")
	index := fs.String("index", "", "CSV corpus index file (overrides directory walking)")
	indexHeader := fs.Bool("index-header", false, "treat the index file's first row as a header")
	verbose := fs.BoolP("verbose", "v", false, "verbose output")
	// Registered so a scanned --driver flag parses cleanly for custom runs.
	_ = fs.String("driver", "", "driver plugin location (custom metric only)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quantgov run %s [flags] [root]\n\n%s\n\nFlags:\n%s",
			d.Name(), d.Help(), fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 2
		}
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: *verbose, Prefix: d.Name(), W: os.Stderr}

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}

	vals, err := metric.FromFlags(fs, d.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 2
	}

	streamer := buildStreamer(cfg, fs, fs.Args(), *include, *exclude, *filename, *markdown, *index, *indexHeader)

	result, err := metric.Run(d, vals, streamer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	logger.Printf("documents: %d", len(result.Rows))

	outPath := *out
	if outPath == "" && !fs.Changed("out") {
		outPath = cfg.Output
	}
	if outPath == "" {
		err = corpus.WriteCSV(os.Stdout, result.Header, result.Rows)
	} else {
		logger.Printf("output: %s", outPath)
		err = corpus.WriteCSVFile(outPath, result.Header, result.Rows)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "quantgov: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves the effective config: an explicit path, a
// discovered .quantgov.yml, or the defaults.
func loadConfig(path string, logger *log.Logger) (*config.Config, error) {
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path == "" {
		return config.Default(), nil
	}

	logger.Printf("config: %s", path)
	return config.Load(path)
}

// buildStreamer assembles the corpus streamer from config with flag
// overrides. A positional argument overrides the configured root.
func buildStreamer(
	cfg *config.Config,
	fs *flag.FlagSet,
	positional []string,
	include, exclude []string,
	filename string,
	markdown bool,
	index string,
	indexHeader bool,
) corpus.Streamer {
	cc := cfg.Corpus
	if len(positional) > 0 {
		cc.Root = positional[0]
	}
	if fs.Changed("include") {
		cc.Include = include
	}
	if fs.Changed("exclude") {
		cc.Exclude = exclude
	}
	if fs.Changed("filename") {
		cc.Name = filename
	}
	if fs.Changed("markdown") {
		cc.Markdown = markdown
	}
	if fs.Changed("index") {
		cc.Index = index
	}
	if fs.Changed("index-header") {
		cc.IndexHeader = indexHeader
	}

	if cc.Index != "" {
		return &corpus.IndexStreamer{
			IndexPath: cc.Index,
			Header:    cc.IndexHeader,
			Markdown:  cc.Markdown,
		}
	}
	return &corpus.DirStreamer{
		Root:     cc.Root,
		Include:  cc.Include,
		Exclude:  cc.Exclude,
		Name:     cc.Name,
		Markdown: cc.Markdown,
	}
}

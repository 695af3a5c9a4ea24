package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nicolagi/seqdiff/internal/config"
	log "github.com/sirupsen/logrus"
)

var (
	// To set this at build time, use go build -ldflags '-X main.version=something'.
	version = "unknown"

	// Flag sets are associated with the fields of a corresponding context struct. The global context is for flags
	// that are part of all flag sets, that is, all sub-commands.
	globalContext struct {
		base     string
		logLevel string
	}

	diffContext struct {
		context int
		output  string
	}
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&globalContext.base, "base", config.DefaultBaseDirectoryPath, "`directory` holding the configuration")
	var levels []string
	for _, l := range log.AllLevels {
		levels = append(levels, l.String())
	}
	fs.StringVar(&globalContext.logLevel, "verbosity", "", "sets the log `level`, among "+strings.Join(levels, ", ")+" (default from config)")
	return fs
}

func exitUsage(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	_, _ = fmt.Fprintf(os.Stderr, `Usage: %s COMMAND [ARGS]

Commands:

	diff: compare two sequences of lines, OLD and NEW

		Both arguments are locations: a local path or s3://bucket/key. The output has one line per line of
		input: "+line" if only in NEW, "-line" if only in OLD, and "line" verbatim if in both. The comparison is
		a greedy scan, not a minimal diff, and reordered lines show up as deletions and additions.

	init: initializes configuration given the base directory
	version: show version information
`, os.Args[0])
	os.Exit(2)
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) (set bool) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}

func setLogLevel(level string) {
	ll, err := log.ParseLevel(level)
	if err != nil {
		log.Fatalf("Could not parse log level %q: %v", level, err)
	}
	log.SetLevel(ll)
}

func main() {
	diffFlags := newFlagSet("diff")
	diffFlags.IntVar(&diffContext.context, "U", -1, "number of unchanged `lines` around each change, -1 for all (default from config)")
	diffFlags.StringVar(&diffContext.output, "o", "", "append output to `location` (a path or s3://bucket/key) rather than standard output")

	// For all commands that don't take flags.
	emptyFlags := newFlagSet("empty")

	if len(os.Args) < 2 {
		exitUsage("Command name required")
	}

	switch cmd := os.Args[1]; cmd {
	case "diff":
		// Ignoring error - here and below - because we configure flag sets to exit on error.
		_ = diffFlags.Parse(os.Args[2:])
		if narg := diffFlags.NArg(); narg != 2 {
			exitUsage(fmt.Sprintf("diff: 2 args expected, got %d", narg))
		}
	case "init", "version":
		_ = emptyFlags.Parse(os.Args[2:])
		if narg := emptyFlags.NArg(); narg != 0 {
			exitUsage(fmt.Sprintf("%s: no args expected, got %d", cmd, narg))
		}
	default:
		exitUsage(fmt.Sprintf("%q: command not recognized", cmd))
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.JSONFormatter{})
	if globalContext.logLevel != "" {
		setLogLevel(globalContext.logLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	switch os.Args[1] {
	case "version":
		fmt.Println(version)
		return
	case "init":
		if err := config.Initialize(globalContext.base); err != nil {
			log.Fatalf("Could not initialize config in %q: %v", globalContext.base, err)
		}
		return
	}

	cfg, err := config.Load(globalContext.base)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("base", globalContext.base).Info("No configuration found, using defaults")
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("Could not load config from %q: %v", globalContext.base, err)
	}
	if globalContext.logLevel == "" {
		setLogLevel(cfg.LogLevel)
	}
	if !isSet(diffFlags, "U") {
		diffContext.context = cfg.ContextLines
	}

	cmdlog := log.WithFields(log.Fields{
		"op":   "diff",
		"base": cfg.Base(),
		"old":  diffFlags.Arg(0),
		"new":  diffFlags.Arg(1),
	})
	var sources []source
	for _, arg := range diffFlags.Args() {
		src, err := openSource(cfg, arg)
		if err != nil {
			cmdlog.WithField("cause", err).Fatal("Could not open input")
		}
		sources = append(sources, src)
	}
	nodes, err := loadAll(sources...)
	if err != nil {
		cmdlog.WithField("cause", err).Fatal("Could not load inputs")
	}
	cmdlog.WithField("context", diffContext.context).Debug("Comparing")
	if err := writeDiff(cfg, nodes[0], nodes[1], diffContext.output, os.Stdout, diffContext.context); err != nil {
		cmdlog.WithField("cause", err).Fatal("Could not diff")
	}
}

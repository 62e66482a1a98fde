package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"netmodel/internal/adapter"
	"netmodel/internal/codec"
	"netmodel/internal/conformance"
	"netmodel/internal/config"
	"netmodel/internal/domain"
	"netmodel/internal/loader"
	"netmodel/internal/rdf"
	"netmodel/internal/repository/sqlite"
	"netmodel/internal/sample"
	"netmodel/internal/service"
	"netmodel/internal/watcher"
)

const usage = `Usage: netmodel <command> [flags]

Commands:
  generate   Emit a topology document as a triple graph
  validate   Check a serialized graph against the shape constraints
  discover   Sweep the network and emit what it finds
  runs       Show stored emission runs

Run 'netmodel <command> -h' for command flags.
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, cfgPath, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Printf("Config loaded from %s", cfgPath)
	}

	var cmdErr error
	switch os.Args[1] {
	case "generate":
		cmdErr = runGenerate(cfg, os.Args[2:])
	case "validate":
		cmdErr = runValidate(cfg, os.Args[2:])
	case "discover":
		cmdErr = runDiscover(cfg, os.Args[2:])
	case "runs":
		cmdErr = runRuns(cfg, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		// A conformance failure already printed its report.
		var failure *conformance.ConformanceFailure
		if errors.As(cmdErr, &failure) {
			os.Exit(1)
		}
		log.Fatalf("%v", cmdErr)
	}
}

// ============================================================================
// generate
// ============================================================================

func runGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("input", "", "Topology YAML file (default: built-in sample network)")
	format := fs.String("format", cfg.Output.Format, "Output format: turtle, ntriples, or json")
	output := fs.String("output", cfg.Output.Path, "Output path (- for stdout)")
	dbPath := fs.String("db", "", "Record the run in this SQLite database")
	validate := fs.Bool("validate", false, "Check the graph against the shape constraints")
	watch := fs.Bool("watch", false, "Re-emit whenever the input file changes")
	fs.Parse(args)

	if *watch && *input == "" {
		return fmt.Errorf("watch mode needs an -input file")
	}
	outFormat := resolveFormat(fs, *format, *output)

	var repo *sqlite.Repository
	if *dbPath != "" {
		var err error
		repo, err = sqlite.New(*dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer repo.Close()
	}

	emitOnce := func(ctx context.Context) error {
		source, entities, vocabOverride, err := loadEntities(*input)
		if err != nil {
			return err
		}
		vocab := cfg.Vocabulary()
		if vocabOverride != nil {
			vocab = *vocabOverride
		}

		p := service.New(vocab)
		if *validate {
			checker, err := buildChecker(vocab, cfg.Shapes.Path)
			if err != nil {
				return err
			}
			p = p.WithChecker(checker)
		}
		if repo != nil {
			p = p.WithRepository(repo)
		}
		return runPipeline(ctx, p, source, entities, outFormat, *output)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !*watch {
		return emitOnce(ctx)
	}

	// Watch mode keeps going after a bad emit; the next save may fix it.
	logEmitErr(emitOnce(ctx))
	w := watcher.New(*input, func() {
		logEmitErr(emitOnce(ctx))
	})
	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadEntities resolves the generate input: the named topology document,
// or the built-in sample network when no file is given.
func loadEntities(input string) (string, []domain.Entity, *rdf.Vocabulary, error) {
	if input == "" {
		return "sample", sample.Network(), nil, nil
	}
	topo, err := loader.LoadYAML(input)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to load %s: %w", input, err)
	}
	return input, topo.Entities, topo.Vocabulary, nil
}

func logEmitErr(err error) {
	if err == nil {
		return
	}
	var failure *conformance.ConformanceFailure
	if errors.As(err, &failure) {
		log.Printf("Graph does not conform to schema")
		return
	}
	log.Printf("Emit failed: %v", err)
}

// ============================================================================
// validate
// ============================================================================

func runValidate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	format := fs.String("format", "", "Input format: ntriples or json (default: by file extension)")
	shapesPath := fs.String("shapes", cfg.Shapes.Path, "Shape constraints YAML (default: built-in)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: netmodel validate [flags] <graph-file>")
	}
	path := fs.Arg(0)
	vocab := cfg.Vocabulary()

	inFormat := *format
	if inFormat == "" {
		if byExt := formatForPath(path); byExt != "" {
			inFormat = byExt
		} else {
			inFormat = "ntriples"
		}
	}
	importer, err := codec.ImporterFor(inFormat, vocab)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	graph, err := importer.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	checker, err := buildChecker(vocab, *shapesPath)
	if err != nil {
		return err
	}
	result := checker.Check(graph)
	fmt.Print(result.Report())
	return result.Err()
}

// ============================================================================
// discover
// ============================================================================

func runDiscover(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	targetsFlag := fs.String("targets", "", "Comma-separated CIDRs, addresses, or hostnames (default: config scan targets)")
	ports := fs.String("ports", cfg.Scan.Ports, "Ports to sweep")
	timeout := fs.Duration("timeout", cfg.Scan.Timeout, "Sweep timeout per target")
	sshUser := fs.String("ssh-user", cfg.Scan.SSH.User, "SSH user for the hostname probe")
	sshKey := fs.String("ssh-key", cfg.Scan.SSH.KeyPath, "SSH private key for the hostname probe")
	format := fs.String("format", cfg.Output.Format, "Output format: turtle, ntriples, or json")
	output := fs.String("output", cfg.Output.Path, "Output path (- for stdout)")
	dbPath := fs.String("db", "", "Record the run in this SQLite database")
	validate := fs.Bool("validate", false, "Check the graph against the shape constraints")
	fs.Parse(args)

	targets := cfg.Scan.Targets
	if *targetsFlag != "" {
		targets = strings.Split(*targetsFlag, ",")
	}
	if len(targets) == 0 {
		detected, err := adapter.LocalTargets()
		if err != nil {
			return fmt.Errorf("no scan targets: pass -targets or set scan.targets in the config (%v)", err)
		}
		log.Printf("No targets configured, sweeping local subnets: %s", strings.Join(detected, ", "))
		targets = detected
	}

	opts := []adapter.Option{
		adapter.WithPorts(*ports),
		adapter.WithTimeout(*timeout),
	}
	if *sshUser != "" && *sshKey != "" {
		opts = append(opts, adapter.WithProber(adapter.NewSSHProbe(*sshUser, *sshKey, cfg.Scan.SSH.Timeout)))
	}
	scanner, err := adapter.NewScanner(targets, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entities, err := scanner.Discover(ctx)
	if err != nil {
		return err
	}
	log.Printf("Discovered %d entities", len(entities))

	vocab := cfg.Vocabulary()
	p := service.New(vocab)
	if *validate {
		checker, err := buildChecker(vocab, cfg.Shapes.Path)
		if err != nil {
			return err
		}
		p = p.WithChecker(checker)
	}
	if *dbPath != "" {
		repo, err := sqlite.New(*dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer repo.Close()
		p = p.WithRepository(repo)
	}

	source := "discover:" + strings.Join(targets, ",")
	return runPipeline(ctx, p, source, entities, resolveFormat(fs, *format, *output), *output)
}

// ============================================================================
// runs
// ============================================================================

func runRuns(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", cfg.Database.Path, "SQLite database path")
	limit := fs.Int("limit", 20, "Show at most this many runs (0 shows all)")
	show := fs.String("show", "", "Print the stored triples of one run as N-Triples")
	deleteID := fs.String("delete", "", "Delete one run and its triples")
	fs.Parse(args)

	repo, err := sqlite.New(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()

	if *deleteID != "" {
		if err := repo.DeleteRun(ctx, *deleteID); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", *deleteID)
		return nil
	}

	if *show != "" {
		run, err := repo.GetRun(ctx, *show)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("run %s not found", *show)
		}
		triples, err := repo.GetTriples(ctx, *show)
		if err != nil {
			return err
		}
		graph := rdf.NewGraph(cfg.Vocabulary())
		for _, t := range triples {
			graph.Add(t)
		}
		return codec.NewNTriplesCodec(cfg.Vocabulary()).Export(graph, os.Stdout)
	}

	runs, err := repo.ListRuns(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %8s  %7s  %8s  %-9s  %s\n",
		"ID", "STARTED", "ENTITIES", "TRIPLES", "FAILURES", "CONFORMS", "SOURCE")
	for _, run := range runs {
		fmt.Printf("%-36s  %-19s  %8d  %7d  %8d  %-9s  %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.EntityCount, run.TripleCount, run.FailureCount,
			run.ConformanceLabel(), run.Source)
	}
	return nil
}

// ============================================================================
// shared helpers
// ============================================================================

// runPipeline emits, reports per-entity failures, exports, and surfaces
// a non-conformance verdict as the command error.
func runPipeline(ctx context.Context, p *service.Pipeline, source string, entities []domain.Entity, format, output string) error {
	result, err := p.Run(ctx, source, entities)
	if err != nil {
		return err
	}

	for _, failure := range result.Report.Failures {
		fmt.Fprintf(os.Stderr, "Error processing entity %s: %v\n", failure.EntityID, failure.Err)
	}

	if err := p.ExportTo(result.Graph, format, output); err != nil {
		return err
	}
	log.Printf("Emitted %d triples from %d entities (run %s)",
		result.Graph.Len(), result.Report.Emitted, result.Run.ID)

	if result.Conformance != nil {
		if !result.Conformance.Conforms {
			fmt.Fprint(os.Stderr, result.Conformance.Report())
			return result.Conformance.Err()
		}
		log.Printf("Graph conforms to schema")
	}
	return nil
}

func buildChecker(vocab rdf.Vocabulary, shapesPath string) (*conformance.Checker, error) {
	if shapesPath == "" {
		return conformance.NewChecker(vocab), nil
	}
	shapes, err := conformance.LoadShapes(shapesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load shapes: %w", err)
	}
	return conformance.NewCheckerWithShapes(vocab, shapes), nil
}

// resolveFormat applies the format flag when given, otherwise infers the
// format from the output file extension.
func resolveFormat(fs *flag.FlagSet, format, output string) string {
	formatSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			formatSet = true
		}
	})
	if formatSet {
		return format
	}
	if byExt := formatForPath(output); byExt != "" {
		return byExt
	}
	return format
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".turtle":
		return "turtle"
	case ".nt", ".ntriples":
		return "ntriples"
	case ".json":
		return "json"
	default:
		return ""
	}
}

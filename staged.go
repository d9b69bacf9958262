package staged

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/staged/internal/config"
	"github.com/aretw0/staged/internal/metrics"
	"github.com/aretw0/staged/internal/output"
	"github.com/aretw0/staged/internal/render"
	"github.com/aretw0/staged/internal/validator"
	"github.com/aretw0/staged/pkg/combine"
	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/emit"
	"github.com/aretw0/staged/pkg/graph"
)

// Version of the generator, stamped into tooling output.
const Version = "0.3.0"

// Generator is the high-level entry point of the library.
// It wires loading, validation, planning, rendering and writing.
type Generator struct {
	fs      afero.Fs
	outDir  string
	logger  *slog.Logger
	metrics *metrics.Collector
	// concurrency bounds GenerateFiles; zero means unbounded.
	concurrency int
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithFs sets the filesystem definitions are read from and generated files are written to
// (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithOutputDir sets the root directory of generated files (default: ".").
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outDir = dir
	}
}

// WithMetrics records run activity on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(g *Generator) {
		g.metrics = c
	}
}

// WithConcurrency bounds the number of definitions processed at once.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = n
	}
}

// New initializes a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{outDir: "."}
	for _, opt := range opts {
		opt(g)
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Result describes one completed run.
type Result struct {
	RunID    string
	Plan     *emit.Plan
	Files    []string
	Warnings []validator.Warning
}

// Load reads, resolves and validates a definition file from the generator's filesystem.
func (g *Generator) Load(path string) (*domain.Definition, []validator.Warning, error) {
	f, err := config.LoadFile(g.fs, path)
	if err != nil {
		return nil, nil, err
	}
	def, err := config.Resolve(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	warnings, err := validator.Validate(def)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, warnings, nil
}

// Plan validates and expands def with a combination cache private to this call.
func (g *Generator) Plan(ctx context.Context, def *domain.Definition) (*emit.Plan, error) {
	return g.plan(ctx, def, g.logger)
}

func (g *Generator) plan(ctx context.Context, def *domain.Definition, logger *slog.Logger) (*emit.Plan, error) {
	graphOpts := []graph.Option{graph.WithLogger(logger)}
	combineOpts := []combine.Option{combine.WithLogger(logger)}
	if g.metrics != nil {
		graphOpts = append(graphOpts, graph.WithRecorder(g.metrics))
		combineOpts = append(combineOpts, combine.WithRecorder(g.metrics))
	}
	planner := emit.NewPlanner(
		emit.WithLogger(logger),
		emit.WithGraphBuilder(graph.NewBuilder(graphOpts...)),
		emit.WithCombiner(combine.New(combine.NewCache(), combineOpts...)),
	)
	return planner.Plan(ctx, def)
}

// Generate validates and plans def, renders every interface and writes them as a unit.
// Nothing is written unless def is valid and every interface rendered.
func (g *Generator) Generate(ctx context.Context, def *domain.Definition) (res *Result, err error) {
	runID := uuid.NewString()
	logger := g.logger.With("run_id", runID, "dsl", def.Name)
	if g.metrics != nil {
		defer func() { g.metrics.RunFinished(err) }()
	}

	plan, err := g.plan(ctx, def, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", def.Name, err)
	}
	files, err := render.RenderAll(plan.All())
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", def.Name, err)
	}

	res = &Result{RunID: runID, Plan: plan}
	w := output.NewWriter(g.fs, g.outDir, logger)
	w.OnWrite = func(path string) {
		res.Files = append(res.Files, path)
		if g.metrics != nil {
			g.metrics.FileWritten()
		}
	}
	if err := w.WriteAll(files); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", def.Name, err)
	}
	logger.Info("generated", "files", len(res.Files), "interfaces", len(plan.All()))
	return res, nil
}

// GenerateFiles loads and generates several definitions concurrently.
// Each definition is an independent run with its own combination cache.
// Loading and validation of every file succeed before anything is written. A definition
// that fails later leaves none of its own files behind; files of definitions that already
// completed are kept.
func (g *Generator) GenerateFiles(ctx context.Context, paths ...string) ([]*Result, error) {
	defs := make([]*domain.Definition, len(paths))
	warnings := make([][]validator.Warning, len(paths))
	for i, p := range paths {
		def, w, err := g.Load(p)
		if err != nil {
			return nil, err
		}
		defs[i], warnings[i] = def, w
	}

	results := make([]*Result, len(paths))
	eg, egctx := errgroup.WithContext(ctx)
	if g.concurrency > 0 {
		eg.SetLimit(g.concurrency)
	}
	for i, def := range defs {
		eg.Go(func() error {
			res, err := g.Generate(egctx, def)
			if err != nil {
				return err
			}
			res.Warnings = warnings[i]
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

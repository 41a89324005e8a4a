package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"ccheck/internal/config"
	"ccheck/internal/diag"
	"ccheck/internal/guards"
	"ccheck/internal/legal"
	"ccheck/internal/sections"
	"ccheck/internal/source"
	"ccheck/internal/trace"
)

// FileResult is the outcome of all checks on one file.
type FileResult struct {
	Target
	FileID source.FileID
	// Changed is true when the file needed a rewrite; with Fix it was
	// rewritten (see Written).
	Changed  bool
	Written  bool
	Cached   bool
	Sections sections.Result
	Bag      *diag.Bag
	Err      error
}

// Failed reports whether the file makes the run fail.
func (r *FileResult) Failed() bool {
	return r.Changed || r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// Report is the outcome of a run.
type Report struct {
	FileSet    *source.FileSet
	Files      []FileResult
	Collisions []guards.Collision
	// Bag holds every diagnostic of the run, deduplicated and sorted.
	Bag *diag.Bag
}

// Failed reports whether any file failed or any guard collided.
func (r *Report) Failed() bool {
	if len(r.Collisions) > 0 {
		return true
	}
	for i := range r.Files {
		if r.Files[i].Failed() {
			return true
		}
	}
	return false
}

// Summary counts files by outcome.
type Summary struct {
	Files, Changed, Written, Cached, Failed int
}

func (r *Report) Summary() Summary {
	s := Summary{Files: len(r.Files)}
	for i := range r.Files {
		f := &r.Files[i]
		if f.Changed {
			s.Changed++
		}
		if f.Written {
			s.Written++
		}
		if f.Cached {
			s.Cached++
		}
		if f.Failed() {
			s.Failed++
		}
	}
	return s
}

// Run discovers the files under paths and runs the selected checks on each
// of them in parallel. Per-file problems (unreadable files, failed writes)
// are reported in the result, never returned; the error is reserved for
// discovery failures, invalid settings and cancellation.
func Run(ctx context.Context, cfg *config.Config, paths []string, opts Options) (*Report, error) {
	phase := beginPhase(opts.Timer, "discover")
	_, discoverSpan := trace.Start(ctx, trace.ScopeDriver, "discover")
	targets, err := Discover(ctx, cfg, paths)
	discoverSpan.End(fmt.Sprintf("%d files", len(targets)))
	endPhase(opts.Timer, phase, fmt.Sprintf("%d files", len(targets)))
	if err != nil {
		return nil, err
	}
	return RunTargets(ctx, cfg, targets, opts)
}

// RunTargets is Run for targets the caller already discovered.
func RunTargets(ctx context.Context, cfg *config.Config, targets []Target, opts Options) (*Report, error) {
	if opts.Checks == 0 {
		opts.Checks = DefaultChecks(cfg)
	}
	normalizer, err := sections.New(cfg.Sections)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrNoFiles
	}
	if opts.Checks.Has(CheckLegal) {
		if err := cfg.Legal.Validate(); err != nil {
			return nil, err
		}
		if opts.History == nil {
			h, err := legal.OpenGitHistory(cfg.Root)
			if err != nil {
				return nil, err
			}
			opts.History = h
		}
	}

	ctx, runSpan := trace.Start(ctx, trace.ScopeDriver, "run")
	runSpan.WithExtra("checks", opts.Checks.String()).WithExtra("fix", strconv.FormatBool(opts.Fix))
	defer runSpan.End("")

	// Files are loaded serially; afterwards the FileSet is only read.
	phase := beginPhase(opts.Timer, "load")
	fileSet := source.NewFileSetWithBase(cfg.Root)
	ids := make([]source.FileID, len(targets))
	loadErrs := make([]error, len(targets))
	for i, t := range targets {
		emit(opts.Progress, Event{File: t.Rel, Stage: StageLoad, Status: StatusQueued})
		if !t.Classified {
			// naming only needs the path
			ids[i] = fileSet.Add(t.Path, nil, source.FileVirtual)
			continue
		}
		id, err := fileSet.Load(t.Path)
		if err != nil {
			loadErrs[i] = fmt.Errorf("%s: %w", t.Path, err)
			ids[i] = fileSet.Add(t.Path, nil, source.FileVirtual)
			continue
		}
		ids[i] = id
	}
	endPhase(opts.Timer, phase, "")

	proc := &processor{
		opts:        opts,
		cfg:         cfg,
		fileSet:     fileSet,
		normalizer:  normalizer,
		fingerprint: cfg.Sections.Fingerprint(),
	}
	if opts.Checks.Has(CheckGuards) {
		proc.collisions = guards.NewCollisions()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	phase = beginPhase(opts.Timer, opts.Checks.String())
	checkCtx, checkSpan := trace.Start(ctx, trace.ScopeCheck, opts.Checks.String())
	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(targets))
	g, gctx := errgroup.WithContext(checkCtx)
	g.SetLimit(min(jobs, len(targets)))
	for i := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = proc.file(gctx, targets[i], ids[i], loadErrs[i])
			return nil
		})
	}
	err = g.Wait()
	checkSpan.End("")
	endPhase(opts.Timer, phase, fmt.Sprintf("jobs=%d", jobs))
	if err != nil {
		return nil, err
	}

	report := &Report{
		FileSet: fileSet,
		Files:   results,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	for i := range results {
		report.Bag.Merge(results[i].Bag)
	}
	if proc.collisions != nil {
		phase = beginPhase(opts.Timer, "collisions")
		_, span := trace.Start(ctx, trace.ScopeDriver, "collisions")
		report.Collisions = proc.collisions.Report()
		report.Bag.Merge(collisionDiagnostics(report.Collisions, fileSet))
		span.End(fmt.Sprintf("%d collisions", len(report.Collisions)))
		endPhase(opts.Timer, phase, "")
	}
	report.Bag.Dedup()
	report.Bag.Sort()

	s := report.Summary()
	runSpan.WithExtra("files", strconv.Itoa(s.Files)).WithExtra("failed", strconv.Itoa(s.Failed))
	return report, nil
}

// collisionDiagnostics reports each collision on its first path with the
// other claimants as notes.
func collisionDiagnostics(collisions []guards.Collision, fileSet *source.FileSet) *diag.Bag {
	bag := diag.NewBag(len(collisions))
	rep := diag.BagReporter{Bag: bag}
	for _, c := range collisions {
		ids := make([]source.FileID, 0, len(c.Paths))
		for _, p := range c.Paths {
			if id, ok := fileSet.GetLatest(p); ok {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		b := diag.ReportError(rep, diag.GrdCollision, source.FileSpan(ids[0]),
			fmt.Sprintf("multiple files could use %s as a header guard", c.Guard))
		for _, id := range ids[1:] {
			b.WithNote(source.FileSpan(id), "also maps to "+c.Guard)
		}
		b.Emit()
	}
	return bag
}

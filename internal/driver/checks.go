package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ccheck/internal/config"
	"ccheck/internal/diag"
	"ccheck/internal/externc"
	"ccheck/internal/guards"
	"ccheck/internal/naming"
	"ccheck/internal/sections"
	"ccheck/internal/source"
	"ccheck/internal/trace"
)

// processor holds what every file of a run shares. All fields are read-only
// during the parallel phase except collisions and the cache, which lock.
type processor struct {
	opts        Options
	cfg         *config.Config
	fileSet     *source.FileSet
	normalizer  *sections.Normalizer
	fingerprint [32]byte
	collisions  *guards.Collisions
}

func (p *processor) severity() diag.Severity {
	if p.opts.Fix {
		return diag.SevInfo
	}
	return diag.SevError
}

func (p *processor) file(ctx context.Context, t Target, id source.FileID, loadErr error) (res FileResult) {
	res = FileResult{Target: t, FileID: id, Bag: diag.NewBag(p.opts.MaxDiagnostics)}
	rep := diag.BagReporter{Bag: res.Bag}
	start := time.Now()

	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+t.Rel)
	defer func() {
		span.WithExtra("changed", strconv.FormatBool(res.Changed)).
			WithExtra("cached", strconv.FormatBool(res.Cached)).
			End("")
	}()

	if loadErr != nil {
		res.Err = loadErr
		diag.ReportError(rep, diag.IOLoadFileError, source.FileSpan(id), "failed to load file: "+loadErr.Error()).Emit()
		trace.Error(trace.FromContext(ctx), trace.ScopeFile, "load", loadErr, span.ID())
		emit(p.opts.Progress, Event{File: t.Rel, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(start)})
		return res
	}
	emit(p.opts.Progress, Event{File: t.Rel, Stage: StageCheck, Status: StatusWorking})

	if p.opts.Checks.Has(CheckNaming) {
		p.checkNaming(rep, t, id)
	}

	if t.Classified {
		file := p.fileSet.Get(id)
		doc := string(file.Content)
		out := doc
		if p.opts.Checks.Has(CheckSections) {
			out = p.checkSections(ctx, rep, &res, file, out)
		}
		if t.Kind == sections.KindHeader {
			if p.opts.Checks.Has(CheckExternC) {
				out = p.checkExternC(rep, id, out)
			}
			if p.opts.Checks.Has(CheckGuards) {
				p.checkGuards(rep, t, id, doc)
			}
		}
		if p.opts.Checks.Has(CheckLegal) {
			out = p.checkLegal(rep, t, id, out)
		}

		res.Changed = out != doc
		if res.Changed && p.opts.Fix {
			emit(p.opts.Progress, Event{File: t.Rel, Stage: StageWrite, Status: StatusWorking})
			if err := file.WriteBack([]byte(out)); err != nil {
				res.Err = fmt.Errorf("%s: %w", t.Path, err)
				diag.ReportError(rep, diag.IOWriteFileError, source.FileSpan(id), "failed to write file: "+err.Error()).Emit()
				trace.Error(trace.FromContext(ctx), trace.ScopeFile, "write", res.Err, span.ID())
			} else {
				res.Written = true
			}
		}
	}

	status := StatusDone
	switch {
	case res.Err != nil || (res.Bag.HasErrors() && !res.Changed):
		status = StatusError
	case res.Failed():
		status = StatusChanged
	}
	emit(p.opts.Progress, Event{File: t.Rel, Stage: StageCheck, Status: status, Err: res.Err, Elapsed: time.Since(start)})
	return res
}

func (p *processor) checkSections(ctx context.Context, rep diag.Reporter, res *FileResult, file *source.File, doc string) string {
	t := trace.FromContext(ctx)
	parent := trace.ParentID(ctx)
	kind := res.Kind

	key := sectionsKey(p.fingerprint, kind, file.Hash)
	var payload CachePayload
	if ok, err := p.opts.Cache.Get(key, &payload); err != nil {
		trace.Error(t, trace.ScopeStep, "cache-get", err, parent)
	} else if ok && payload.Canonical {
		res.Cached = true
		trace.Point(t, trace.ScopeStep, "cache-hit", "", parent)
		return doc
	}

	result := p.normalizer.Normalize(doc, kind)
	res.Sections = result
	trace.Point(t, trace.ScopeStep, "normalize",
		fmt.Sprintf("renamed=%d inserted=%d duplicates=%d", result.Renamed, len(result.Inserted), result.Duplicates), parent)

	if !result.Changed {
		if err := p.opts.Cache.Put(key, &CachePayload{Canonical: true}); err != nil {
			trace.Error(t, trace.ScopeStep, "cache-put", err, parent)
		}
		return doc
	}

	sev := p.severity()
	settings := p.normalizer.Settings()
	for _, rule := range settings.Renames(kind) {
		for _, b := range sections.Find(doc, rule.From) {
			msg := fmt.Sprintf("section banner %q should be %q", rule.From, rule.To)
			if p.opts.Fix {
				msg = fmt.Sprintf("renamed section banner %q to %q", rule.From, rule.To)
			}
			diag.NewReportBuilder(rep, sev, diag.SecLegacyTitle, source.SpanOf(file.ID, b.Start, b.End), msg).Emit()
		}
	}
	if len(result.Inserted) > 0 {
		at := sections.ResolveBoundary(doc, kind)
		for _, title := range result.Inserted {
			msg := fmt.Sprintf("missing section banner %q", title)
			if p.opts.Fix {
				msg = fmt.Sprintf("inserted section banner %q", title)
			}
			diag.NewReportBuilder(rep, sev, diag.SecMissing, source.SpanOf(file.ID, at, at), msg).Emit()
		}
	}
	if result.Duplicates > 0 {
		msg := fmt.Sprintf("%d duplicate section banner(s)", result.Duplicates)
		if p.opts.Fix {
			msg = fmt.Sprintf("removed %d duplicate section banner(s)", result.Duplicates)
		}
		diag.NewReportBuilder(rep, sev, diag.SecDuplicate, source.FileSpan(file.ID), msg).Emit()
	}
	return result.Text
}

func (p *processor) checkExternC(rep diag.Reporter, id source.FileID, doc string) string {
	if externc.Has(doc) {
		return doc
	}
	out, _ := externc.Insert(doc)
	msg := `no extern "C" linkage-specification`
	if p.opts.Fix {
		msg = `inserted extern "C" linkage-specification`
	}
	diag.NewReportBuilder(rep, p.severity(), diag.ExtMissing, source.FileSpan(id), msg).Emit()
	return out
}

func (p *processor) checkLegal(rep diag.Reporter, t Target, id source.FileID, doc string) string {
	contribs, err := p.opts.History.Contributions(t.Path)
	if err != nil {
		diag.ReportError(rep, diag.LegHistory, source.FileSpan(id), "failed to read file history: "+err.Error()).Emit()
		return doc
	}
	settings := &p.cfg.Legal
	notice := settings.Notice(contribs)
	if settings.Has(doc, notice) {
		return doc
	}

	code, what := diag.LegMissing, "missing"
	if settings.HasOutdated(doc) {
		code, what = diag.LegOutdated, "outdated"
	}
	out, changed := settings.Apply(doc, notice)
	if !changed || !settings.Has(out, notice) {
		diag.ReportError(rep, code, source.FileSpan(id),
			what+" copyright/license notice; the rendered notice does not match the copyright pattern").Emit()
		return doc
	}
	msg := what + " copyright/license notice"
	if p.opts.Fix {
		msg = "updated copyright/license notice"
		if code == diag.LegMissing {
			msg = "added copyright/license notice"
		}
	}
	diag.NewReportBuilder(rep, p.severity(), code, source.FileSpan(id), msg).Emit()
	return out
}

var guardCodes = map[guards.Problem]diag.Code{
	guards.MultiplePragma: diag.GrdMultiplePragma,
	guards.MultipleIfndef: diag.GrdMultipleIfndef,
	guards.MultipleDefine: diag.GrdMultipleDefine,
	guards.MultipleEndif:  diag.GrdMultipleEndif,
	guards.PragmaAndGuard: diag.GrdPragmaAndGuard,
	guards.Partial:        diag.GrdPartial,
	guards.Missing:        diag.GrdMissing,
}

func (p *processor) checkGuards(rep diag.Reporter, t Target, id source.FileID, doc string) {
	guard := guards.GuardName(p.cfg.ProjectName(), strings.Split(t.Rel, "/"))
	p.collisions.Observe(guard, t.Path)

	f := guards.Check(doc, guard)
	if f.OK() {
		return
	}
	msg := fmt.Sprintf("contains %s", f.Problem)
	if f.Problem == guards.Missing || f.Problem == guards.Partial {
		msg = fmt.Sprintf("contains %s; expected %q", f.Problem, guard)
	}
	diag.ReportError(rep, guardCodes[f.Problem], source.SpanOf(id, f.Offset, f.Offset), msg).Emit()
}

func (p *processor) checkNaming(rep diag.Reporter, t Target, id source.FileID) {
	for _, f := range naming.Check(t.Rel) {
		code := diag.NamBadFile
		if f.Kind == naming.BadFolder {
			code = diag.NamBadFolder
		}
		diag.ReportError(rep, code, source.FileSpan(id),
			fmt.Sprintf("illegal %s name %q; consider %q", f.Kind, f.Name, f.Suggestion)).Emit()
	}
}

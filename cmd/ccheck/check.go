package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ccheck/internal/config"
	"ccheck/internal/driver"
	"ccheck/internal/observ"
)

const cacheApp = "ccheck"

var (
	sectionsCmd = newCheckCmd("sections", "Enforce section banners in C sources and headers", driver.CheckSections, true)
	guardsCmd   = newCheckCmd("guards", "Check include guards and report guard collisions", driver.CheckGuards, false)
	externcCmd  = newCheckCmd("externc", `Enforce the extern "C" block in headers`, driver.CheckExternC, true)
	namingCmd   = newCheckCmd("naming", "Check file and folder naming", driver.CheckNaming, false)
	legalCmd    = newCheckCmd("legal", "Enforce the copyright and license notice", driver.CheckLegal, true)
	allCmd      = newCheckCmd("all", "Run every check ([legal] in ccheck.toml opts into legal)", driver.CheckAll, true)
)

// newCheckCmd builds one check subcommand. fixable commands get --fix.
func newCheckCmd(name, short string, checks driver.Check, fixable bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] [path...]",
		Short: short,
		Long: short + `.

Paths may be files or directories; directories are walked recursively.
Without paths the project root is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, checks)
		},
	}
	if fixable {
		cmd.Flags().Bool("fix", false, "rewrite files in place")
	}
	cmd.Flags().String("format", "text", "output format (text|json|short)")
	cmd.Flags().String("ui", "auto", "show progress UI (auto|on|off)")
	cmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	if checks.Has(driver.CheckSections) {
		cmd.Flags().Bool("no-cache", false, "do not consult or update the canonical-content cache")
		cmd.Flags().Bool("clear-cache", false, "empty the canonical-content cache before running")
	}
	if checks == driver.CheckLegal {
		addLegalFlags(cmd)
	}
	return cmd
}

// checkFlags are the resolved flags of a check subcommand.
type checkFlags struct {
	fix            bool
	format         string
	ui             uiMode
	withNotes      bool
	fullPath       bool
	noCache        bool
	clearCache     bool
	quiet          bool
	timings        bool
	jobs           int
	maxDiagnostics int
	configPath     string
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var f checkFlags
	var err error
	if cmd.Flags().Lookup("fix") != nil {
		if f.fix, err = cmd.Flags().GetBool("fix"); err != nil {
			return f, fmt.Errorf("failed to get fix flag: %w", err)
		}
	}
	if cmd.Flags().Lookup("no-cache") != nil {
		if f.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
			return f, fmt.Errorf("failed to get no-cache flag: %w", err)
		}
		if f.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
			return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
		}
	}
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "text", "json", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	if f.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	root := cmd.Root().PersistentFlags()
	if f.quiet, err = root.GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.jobs, err = root.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if f.configPath, err = root.GetString("config"); err != nil {
		return f, fmt.Errorf("failed to get config flag: %w", err)
	}
	return f, nil
}

// loadConfig reads --config when given, otherwise discovers ccheck.toml from
// the working directory upwards.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func runCheck(cmd *cobra.Command, args []string, checks driver.Check) error {
	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if checks == driver.CheckAll {
		checks = driver.DefaultChecks(&cfg)
	}
	if cmd.Flags().Lookup("license") != nil {
		if err := applyLegalFlags(cmd, &cfg.Legal); err != nil {
			return err
		}
	}
	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.Root}
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	opts := driver.Options{
		Checks:         checks,
		Fix:            flags.fix,
		Jobs:           flags.jobs,
		MaxDiagnostics: flags.maxDiagnostics,
	}
	if flags.timings {
		opts.Timer = observ.NewTimer()
	}
	if checks.Has(driver.CheckSections) && !flags.noCache {
		opts.Cache = openCache(cmd, flags)
	}

	ctx := cmd.Context()
	phase := -1
	if opts.Timer != nil {
		phase = opts.Timer.Begin("discover")
	}
	targets, err := driver.Discover(ctx, &cfg, paths)
	if opts.Timer != nil {
		opts.Timer.End(phase, fmt.Sprintf("%d files", len(targets)))
	}
	if err != nil {
		return err
	}

	var report *driver.Report
	if shouldUseTUI(flags.ui, len(targets), flags.format) {
		files := make([]string, len(targets))
		for i, t := range targets {
			files[i] = t.Rel
		}
		report, err = runWithUI(ctx, cmd.Name(), files, &cfg, targets, opts)
	} else {
		report, err = driver.RunTargets(ctx, &cfg, targets, opts)
	}
	if errors.Is(err, driver.ErrNoFiles) {
		if !flags.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "ccheck: no files to check")
		}
		return nil
	}
	if err != nil {
		return err
	}

	if err := renderReport(cmd.OutOrStdout(), report, flags); err != nil {
		return err
	}
	if !flags.quiet && flags.format == "text" {
		printSummary(cmd.ErrOrStderr(), report.Summary(), flags.fix)
	}
	if flags.timings {
		if err := printTimings(cmd.ErrOrStderr(), opts.Timer, flags.format == "json"); err != nil {
			return err
		}
	}
	if report.Failed() {
		return errChecksFailed
	}
	return nil
}

// openCache returns nil when the cache directory is unusable; the run then
// proceeds without it.
func openCache(cmd *cobra.Command, flags checkFlags) *driver.Cache {
	cache, err := driver.OpenCache(cacheApp)
	if err != nil {
		if !flags.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "ccheck: cache disabled: %v\n", err)
		}
		return nil
	}
	if flags.clearCache {
		if err := cache.DropAll(); err != nil && !flags.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "ccheck: clear cache %s: %v\n", cache.Dir(), err)
		}
	}
	return cache
}

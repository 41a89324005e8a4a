// Package config loads ccheck.toml and turns it into the settings every
// check runs with. A run reads the file once; the result is never mutated
// afterwards.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"ccheck/internal/legal"
	"ccheck/internal/project"
	"ccheck/internal/sections"
)

// Config is the resolved configuration of one project.
type Config struct {
	// Path of the loaded ccheck.toml; empty when running on defaults.
	Path string
	// Root is the project root all relative paths are computed from.
	Root string

	Sections sections.Settings

	HeaderExts  []string
	SourceExts  []string
	ExcludeDirs []string
	Exclude     []string

	// Project overrides the guard prefix; defaults to Root's base name.
	Project string

	// Legal is the license notice; HasLegal reports whether ccheck.toml
	// has a [legal] table, which opts "all" into the notice check.
	Legal    legal.Settings
	HasLegal bool
}

type fileConfig struct {
	Sections sectionsConfig `toml:"sections"`
	Files    filesConfig    `toml:"files"`
	Guards   guardsConfig   `toml:"guards"`
	Legal    legalConfig    `toml:"legal"`
}

type sectionsConfig struct {
	Deduplicate bool           `toml:"deduplicate"`
	Header      []string       `toml:"header"`
	Source      []string       `toml:"source"`
	Rename      []renameConfig `toml:"rename"`
}

type renameConfig struct {
	Kind string `toml:"kind"`
	From string `toml:"from"`
	To   string `toml:"to"`
}

type filesConfig struct {
	Header      []string `toml:"header"`
	Source      []string `toml:"source"`
	ExcludeDirs []string `toml:"exclude_dirs"`
	Exclude     []string `toml:"exclude"`
}

type guardsConfig struct {
	Project string `toml:"project"`
}

type legalConfig struct {
	License      string            `toml:"license"`
	Template     string            `toml:"template"`
	Project      string            `toml:"project"`
	Preamble     string            `toml:"preamble"`
	Postamble    string            `toml:"postamble"`
	Copyright    string            `toml:"copyright"`
	Aliases      map[string]string `toml:"aliases"`
	CommentStart string            `toml:"comment_start"`
	CommentEnd   string            `toml:"comment_end"`
	LineStart    string            `toml:"line_start"`
}

// Default returns the built-in configuration rooted at root.
func Default(root string) Config {
	return Config{
		Root:       root,
		Sections:   sections.DefaultSettings(),
		HeaderExts: []string{".h"},
		SourceExts: []string{".c"},
		Legal:      defaultLegal(root),
	}
}

func defaultLegal(root string) legal.Settings {
	s := legal.DefaultSettings()
	s.Project = filepath.Base(root)
	return s
}

// Discover looks for ccheck.toml from startDir upwards and loads it. Without
// one it returns Default rooted at the enclosing git work tree, or at
// startDir itself.
func Discover(startDir string) (Config, error) {
	path, ok, err := project.FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if ok {
		return Load(path)
	}
	root, ok, err := project.FindProjectRoot(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		if root, err = filepath.Abs(startDir); err != nil {
			return Config{}, err
		}
	}
	return Default(root), nil
}

// Load reads path. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, err
	}
	var fc fileConfig
	meta, err := toml.DecodeFile(abs, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", abs, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", abs, undecoded[0].String())
	}

	cfg := Default(filepath.Dir(abs))
	cfg.Path = abs

	if meta.IsDefined("sections", "deduplicate") {
		cfg.Sections.Deduplicate = fc.Sections.Deduplicate
	}
	if meta.IsDefined("sections", "header") {
		cfg.Sections.Header = fc.Sections.Header
	}
	if meta.IsDefined("sections", "source") {
		cfg.Sections.Source = fc.Sections.Source
	}
	if meta.IsDefined("sections", "rename") {
		cfg.Sections.HeaderRenames = nil
		cfg.Sections.SourceRenames = nil
		for i, r := range fc.Sections.Rename {
			rule := sections.RenameRule{From: r.From, To: r.To}
			kind, err := sections.ParseKind(r.Kind)
			if err != nil {
				return Config{}, fmt.Errorf("%s: [[sections.rename]] #%d: %w", abs, i+1, err)
			}
			if kind == sections.KindHeader {
				cfg.Sections.HeaderRenames = append(cfg.Sections.HeaderRenames, rule)
			} else {
				cfg.Sections.SourceRenames = append(cfg.Sections.SourceRenames, rule)
			}
		}
	}
	if meta.IsDefined("files", "header") {
		cfg.HeaderExts = fc.Files.Header
	}
	if meta.IsDefined("files", "source") {
		cfg.SourceExts = fc.Files.Source
	}
	cfg.ExcludeDirs = fc.Files.ExcludeDirs
	cfg.Exclude = fc.Files.Exclude
	cfg.Project = strings.TrimSpace(fc.Guards.Project)
	cfg.Legal.Project = cfg.ProjectName()
	if meta.IsDefined("legal") {
		cfg.HasLegal = true
		cfg.Legal = loadLegal(meta, fc.Legal, cfg.ProjectName())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", abs, err)
	}
	return cfg, nil
}

func loadLegal(meta toml.MetaData, lc legalConfig, project string) legal.Settings {
	s := legal.DefaultSettings()
	s.Project = project
	set := func(dst *string, key, value string) {
		if meta.IsDefined("legal", key) {
			*dst = value
		}
	}
	set(&s.License, "license", lc.License)
	set(&s.Template, "template", lc.Template)
	set(&s.Project, "project", lc.Project)
	set(&s.Preamble, "preamble", lc.Preamble)
	set(&s.Postamble, "postamble", lc.Postamble)
	set(&s.Copyright, "copyright", lc.Copyright)
	set(&s.CommentStart, "comment_start", lc.CommentStart)
	set(&s.CommentEnd, "comment_end", lc.CommentEnd)
	set(&s.LineStart, "line_start", lc.LineStart)
	s.Aliases = lc.Aliases
	return s
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Sections.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.HasLegal {
		if err := c.Legal.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("[legal]: %w", err))
		}
	}
	for _, ext := range append(slices.Clone(c.HeaderExts), c.SourceExts...) {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with '.'", ext))
		}
	}
	for _, ext := range c.HeaderExts {
		if slices.Contains(c.SourceExts, ext) {
			errs = append(errs, fmt.Errorf("extension %q is both header and source", ext))
		}
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid exclude pattern %q", pattern))
		}
	}
	return errors.Join(errs...)
}

// Classify maps path to a document kind by extension. ok is false for files
// ccheck does not check.
func (c *Config) Classify(path string) (kind sections.Kind, ok bool) {
	ext := filepath.Ext(path)
	switch {
	case slices.Contains(c.HeaderExts, ext):
		return sections.KindHeader, true
	case slices.Contains(c.SourceExts, ext):
		return sections.KindSource, true
	}
	return sections.KindSource, false
}

// SkipDir reports whether discovery should not descend into the directory
// named name at rel (slash separated, relative to Root).
func (c *Config) SkipDir(name, rel string) bool {
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	return slices.Contains(c.ExcludeDirs, name) || c.excluded(rel)
}

// SkipFile reports whether the file at rel matches an exclude pattern.
func (c *Config) SkipFile(rel string) bool {
	return c.excluded(rel)
}

func (c *Config) excluded(rel string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ProjectName is the guard prefix of the project.
func (c *Config) ProjectName() string {
	if c.Project != "" {
		return c.Project
	}
	return filepath.Base(c.Root)
}

// Rel returns path relative to Root with forward slashes.
func (c *Config) Rel(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(c.Root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

package legal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func custom(template string) Settings {
	s := DefaultSettings()
	s.License = LicenseCustom
	s.Template = template
	return s
}

func TestAuthorLines(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		contribs []Contribution
		want     string
	}{
		{
			name:     "years per author",
			settings: DefaultSettings(),
			contribs: []Contribution{{"John", 2023}, {"John", 2021}, {"John", 2023}, {"Ann", 2022}},
			want:     "Copyright 2021, 2023 John\nCopyright 2022 Ann",
		},
		{
			name: "aliases merge authors",
			settings: func() Settings {
				s := DefaultSettings()
				s.Aliases = map[string]string{"jdoe": "John Doe", "John": "John Doe"}
				return s
			}(),
			contribs: []Contribution{{"jdoe", 2020}, {"John", 2024}, {"Jane", 2024}},
			want:     "Copyright 2020, 2024 John Doe\nCopyright 2024 Jane",
		},
		{
			name: "copyright string prefixes lines",
			settings: func() Settings {
				s := DefaultSettings()
				s.Copyright = "Copyright (C)"
				return s
			}(),
			contribs: []Contribution{{"John", 2021}},
			want:     "Copyright (C) 2021 John",
		},
	}
	for _, tt := range tests {
		if got := tt.settings.AuthorLines(tt.contribs); got != tt.want {
			t.Errorf("%s: AuthorLines() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNoticeTemplates(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantFirst []string
		wantLast  string
	}{
		{
			name:      "gpl3+",
			settings:  DefaultSettings(),
			wantFirst: []string{"/*", " * This file is part of Foobar.", " *", " * Foobar is free software: you can redistribute it and/or modify"},
			wantLast:  " * along with Foobar.  If not, see <https://www.gnu.org/licenses/>.",
		},
		{
			name: "unlicense",
			settings: func() Settings {
				s := DefaultSettings()
				s.License = LicenseUnlicense
				s.Project = "libx"
				return s
			}(),
			wantFirst: []string{"/*", " * This file is part of libx.", " *", " * This is free and unencumbered software released into the public domain."},
			wantLast:  " * For more information, please refer to <http://unlicense.org/>",
		},
		{
			name:      "custom",
			settings:  custom("Some\nmultiline\nlicense"),
			wantFirst: []string{"/*", " *Some", " *multiline", " *license"},
			wantLast:  " *license",
		},
	}
	for _, tt := range tests {
		lines := strings.Split(tt.settings.Notice([]Contribution{{"John", 2021}}), "\n")
		if diff := cmp.Diff(tt.wantFirst, lines[:len(tt.wantFirst)]); diff != "" {
			t.Errorf("%s: leading lines (-want +got):\n%s", tt.name, diff)
		}
		if got := lines[len(lines)-2]; got != tt.wantLast {
			t.Errorf("%s: last body line = %q, want %q", tt.name, got, tt.wantLast)
		}
		if got := lines[len(lines)-1]; got != " */" {
			t.Errorf("%s: closing line = %q", tt.name, got)
		}
	}
}

func TestNoticePlaceholders(t *testing.T) {
	s := custom("{project_name} is under {license_notice}")
	s.Project = "libx"
	s.Preamble = "{authors}"
	s.Postamble = "SPDX: &lt;none&gt;"
	s.Aliases = map[string]string{"jd": "John"}

	got := s.Notice([]Contribution{{"jd", 2021}, {"Jane", 2022}})
	want := "/*\n" +
		" *Copyright 2021 John\n" +
		" *Copyright 2022 Jane\n" +
		" *libx is under custom\n" +
		" *SPDX: <none>\n" +
		" */"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Notice() mismatch (-want +got):\n%s", diff)
	}
}

func TestHas(t *testing.T) {
	def := DefaultSettings()
	notice := def.Notice(nil)
	withPattern := DefaultSettings()
	withPattern.Copyright = `copyright \d{4}`

	tests := []struct {
		name     string
		settings Settings
		doc      string
		want     bool
	}{
		{"literal notice", def, notice + "\n\nint a;\n", true},
		{"notice differs in case", def, strings.ToUpper(notice) + "\n", true},
		{"no notice", def, "int a;\n", false},
		{"one character differs", def, strings.Replace(notice, "(at", "(xt", 1), false},
		{"copyright pattern", withPattern, "/* Copyright 2020 John */\nint a;\n", true},
		{"copyright pattern absent", withPattern, notice + "\n", false},
	}
	for _, tt := range tests {
		if got := tt.settings.Has(tt.doc, notice); got != tt.want {
			t.Errorf("%s: Has() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	s := custom("Some\nmultiline\nlicense")
	s.Preamble = "{authors}"
	old := s.Notice([]Contribution{{"John", 2021}})
	notice := s.Notice([]Contribution{{"John", 2021}, {"John", 2024}})

	tests := []struct {
		name        string
		doc         string
		want        string
		wantChanged bool
	}{
		{
			name:        "prepend",
			doc:         "#include <stdio.h>\n",
			want:        notice + "\n\n#include <stdio.h>\n",
			wantChanged: true,
		},
		{
			name:        "update in place",
			doc:         "// header\n" + old + "\n\nint a;\n",
			want:        "// header\n" + notice + "\n\nint a;\n",
			wantChanged: true,
		},
		{
			name:        "unrelated comment is kept",
			doc:         "/* notes */\n" + old + "\nint a;\n",
			want:        "/* notes */\n" + notice + "\nint a;\n",
			wantChanged: true,
		},
		{
			name:        "current notice",
			doc:         notice + "\n\nint a;\n",
			want:        notice + "\n\nint a;\n",
			wantChanged: false,
		},
	}
	for _, tt := range tests {
		got, changed := s.Apply(tt.doc, notice)
		if changed != tt.wantChanged {
			t.Errorf("%s: changed = %v, want %v", tt.name, changed, tt.wantChanged)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: Apply() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"custom without template", func(s *Settings) { s.License = LicenseCustom }, "needs a template"},
		{"unknown license", func(s *Settings) { s.License = "mit" }, `unknown license "mit"`},
		{"bad copyright pattern", func(s *Settings) { s.Copyright = "(" }, "copyright pattern"},
		{"empty alias", func(s *Settings) { s.Aliases = map[string]string{"John": ""} }, "both names are required"},
		{"empty comment end", func(s *Settings) { s.CommentEnd = "" }, "must not be empty"},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		tt.edit(&s)
		err := s.Validate()
		switch {
		case tt.wantErr == "" && err != nil:
			t.Errorf("%s: unexpected error %v", tt.name, err)
		case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
			t.Errorf("%s: error = %v, want it to contain %q", tt.name, err, tt.wantErr)
		}
	}
}

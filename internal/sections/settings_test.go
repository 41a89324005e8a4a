package sections

import (
	"strings"
	"testing"
)

func TestDefaultSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestSettingsValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"duplicate title", func(s *Settings) { s.Header = append(s.Header, "includes") }, "duplicate title"},
		{"blank title", func(s *Settings) { s.Source = append(s.Source, "  ") }, "empty title"},
		{"multi-line title", func(s *Settings) { s.Source = append(s.Source, "a\nb") }, "spans several lines"},
		{"self rename", func(s *Settings) {
			s.HeaderRenames = []RenameRule{{From: "includes", To: "includes"}}
		}, "renames to itself"},
		{"rename from schema title", func(s *Settings) {
			s.Source = []string{"includes", "old"}
			s.SourceRenames = []RenameRule{{From: "old", To: "new"}}
		}, "is a schema title"},
		{"chained renames", func(s *Settings) {
			s.SourceRenames = []RenameRule{{From: "a", To: "b"}, {From: "b", To: "c"}}
		}, "feeds another rename"},
		{"blank rename target", func(s *Settings) {
			s.SourceRenames = []RenameRule{{From: "old", To: ""}}
		}, "empty title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
			if _, err := New(s); err == nil {
				t.Fatal("New accepted invalid settings")
			}
		})
	}
}

func TestFingerprintTracksSettings(t *testing.T) {
	a := DefaultSettings()
	b := DefaultSettings()
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("equal settings must share a fingerprint")
	}
	b.Deduplicate = false
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatal("dedupe flag not part of the fingerprint")
	}
	c := DefaultSettings()
	c.Header = Schema{"includes", "type declarations"}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("schema not part of the fingerprint")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindHeader, KindSource} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("asm"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

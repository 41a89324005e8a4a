package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"ccheck/internal/legal"
)

func TestApplyLegalFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*legal.Settings)
		wantErr string
	}{
		{
			name: "no flags keep the configuration",
			want: func(*legal.Settings) {},
		},
		{
			name: "custom template with copyright string",
			args: []string{"-l", "custom", "--template", "Some\nlicense", "-c", "license"},
			want: func(s *legal.Settings) {
				s.License = legal.LicenseCustom
				s.Template = "Some\nlicense"
				s.Copyright = "license"
			},
		},
		{
			name: "aliases merge with configured ones",
			args: []string{"--alias", "John:Doe", "--alias", "Jane:Smith"},
			want: func(s *legal.Settings) {
				s.Aliases = map[string]string{"jd": "John Doe", "John": "Doe", "Jane": "Smith"}
			},
		},
		{name: "custom without template", args: []string{"--license", "custom"}, wantErr: "needs a template"},
		{name: "malformed alias", args: []string{"--alias", "John"}, wantErr: "invalid alias"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "legal"}
			addLegalFlags(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			got := legal.DefaultSettings()
			got.Aliases = map[string]string{"jd": "John Doe"}
			err := applyLegalFlags(cmd, &got)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("applyLegalFlags() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyLegalFlags() error: %v", err)
			}
			want := legal.DefaultSettings()
			want.Aliases = map[string]string{"jd": "John Doe"}
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("settings (-want +got):\n%s", diff)
			}
		})
	}
}

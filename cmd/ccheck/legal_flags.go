package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ccheck/internal/legal"
)

func addLegalFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("license", "l", "", "license notice (gpl3+|unlicense|custom); overrides [legal] license")
	cmd.Flags().String("template", "", "notice template of a custom license")
	cmd.Flags().StringP("copyright-string", "c", "", "case-insensitive pattern a file must match to count as licensed")
	cmd.Flags().StringArray("alias", nil, "author alias as name:printed-name (repeatable)")
}

// applyLegalFlags layers the legal subcommand flags over the configured
// notice settings.
func applyLegalFlags(cmd *cobra.Command, s *legal.Settings) error {
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"license", &s.License},
		{"template", &s.Template},
		{"copyright-string", &s.Copyright},
	} {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	aliases, err := cmd.Flags().GetStringArray("alias")
	if err != nil {
		return fmt.Errorf("failed to get alias flag: %w", err)
	}
	if len(aliases) > 0 {
		merged := make(map[string]string, len(s.Aliases)+len(aliases))
		for from, to := range s.Aliases {
			merged[from] = to
		}
		for _, a := range aliases {
			from, to, ok := strings.Cut(a, ":")
			if !ok {
				return fmt.Errorf("invalid alias %q: want name:printed-name", a)
			}
			merged[from] = to
		}
		s.Aliases = merged
	}
	return s.Validate()
}

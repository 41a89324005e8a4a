package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"ccheck/internal/config"
	"ccheck/internal/driver"
)

func TestResolveColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	tests := []struct {
		value   string
		tty     bool
		want    bool
		wantErr bool
	}{
		{"on", false, true, false},
		{"off", true, false, false},
		{"auto", true, true, false},
		{"auto", false, false, false},
		{"", true, true, false},
		{"sometimes", true, false, true},
	}
	for _, tt := range tests {
		got, err := resolveColor(tt.value, tt.tty)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("resolveColor(%q, %v) = %v, %v", tt.value, tt.tty, got, err)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, " ON ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("readUIMode(maybe) should fail")
	}
	if !shouldUseTUI(uiModeOn, 1, "json") || shouldUseTUI(uiModeOff, 10, "text") {
		t.Error("explicit ui modes must win")
	}
	if shouldUseTUI(uiModeAuto, 1, "text") {
		t.Error("auto mode must stay off for a single file")
	}
}

func checkReport(t *testing.T) *driver.Report {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.c"), []byte("int main(void) { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default(root)
	report, err := driver.Run(context.Background(), &cfg, []string{root}, driver.Options{Checks: driver.CheckSections})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return report
}

func TestRenderReportFormats(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	report := checkReport(t)
	if !report.Failed() {
		t.Fatal("a file without banners must fail the check")
	}

	for format, want := range map[string]string{
		"short": "error SEC1001 ",
		"text":  "ERROR SEC1001",
		"json":  `"code": "SEC1001"`,
	} {
		var out bytes.Buffer
		if err := renderReport(&out, report, checkFlags{format: format, maxDiagnostics: 100}); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(out.String(), want) {
			t.Errorf("%s output lacks %q:\n%s", format, want, out.String())
		}
	}
	if err := renderReport(&bytes.Buffer{}, report, checkFlags{format: "xml"}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestPrintSummary(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	printSummary(&out, driver.Summary{Files: 3, Changed: 2, Written: 2, Cached: 1, Failed: 2}, true)
	if got, want := out.String(), "3 files checked, 2 fixed, 2 failed (1 from cache)\n"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestVersionJSON(t *testing.T) {
	var out bytes.Buffer
	info := versionInfo{Version: "1.0.0"}
	if err := renderVersionJSON(&out, info, versionOptions{format: "json", showHash: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"git_commit": "unknown"`) {
		t.Errorf("json = %s", out.String())
	}
}

package diag

import (
	"testing"

	"ccheck/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/proj")
	b := fs.AddVirtual("/proj/src/b.h", []byte("one\ntwo\nthree\n"))
	a := fs.AddVirtual("/proj/src/a.c", []byte("x\n"))

	diags := []Diagnostic{
		New(SevWarning, SecMissing, source.SpanOf(b, 8, 8), "missing \"includes\"\nbanner"),
		NewError(GrdCollision, source.FileSpan(a), "guard SRC_A_H_ reused").
			WithNote(source.SpanOf(b, 4, 4), "also defined here"),
	}

	got := FormatShortDiagnostics(diags, fs, true)
	want := "error GRD2008 src/a.c:1 guard SRC_A_H_ reused\n" +
		"note GRD2008 src/b.h:2 also defined here\n" +
		"warning SEC1001 src/b.h:3 missing \"includes\" banner"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	if FormatShortDiagnostics(nil, fs, false) != "" {
		t.Fatal("expected empty output for no diagnostics")
	}
}

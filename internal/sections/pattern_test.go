package sections

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const rule = "--------------------------------------------------------------------------"

func TestRenderLayout(t *testing.T) {
	want := "/* " + rule + "\n * includes\n * " + rule + " */"
	if got := Render("includes"); got != want {
		t.Fatalf("Render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		name  string
		title string
		doc   string
		want  bool
	}{
		{"rendered", "includes", Render("includes"), true},
		{"inside document", "includes", "int a;\n" + Render("includes") + "\nint b;\n", true},
		{"crlf inside banner", "includes", "/* ----\r\n * includes\r\n * ---- */\n", true},
		{"short rule", "macros/defines", "/* -\n * macros/defines\n * - */", true},
		{"other title", "includes", Render("type declarations"), false},
		{"title is suffix of another", "function declarations", Render("local function declarations"), false},
		{"title is prefix of another", "function declarations", Render("function declarations extra"), false},
		{"not at line start", "includes", "x " + Render("includes"), false},
		{"trailing text after suffix", "includes", Render("includes") + " x", false},
		{"regexp metacharacters are literal", "a.b", Render("axb"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matcher(tt.title).MatchString(tt.doc); got != tt.want {
				t.Fatalf("Matcher(%q).MatchString(%q) = %v, want %v", tt.title, tt.doc, got, tt.want)
			}
		})
	}
}

func TestFindReportsDocumentOrder(t *testing.T) {
	doc := Render("includes") + "\nint a;\n" + Render("includes") + "\n"
	found := Find(doc, "includes")
	if len(found) != 2 {
		t.Fatalf("expected 2 banners, got %d", len(found))
	}
	if found[0].Start != 0 || found[0].End != len(Render("includes")) {
		t.Fatalf("unexpected first banner span %+v", found[0])
	}
	if found[1].Start <= found[0].End {
		t.Fatalf("banners out of order: %+v", found)
	}
	if got := doc[found[1].Start:found[1].End]; got != Render("includes") {
		t.Fatalf("second span does not cover the banner: %q", got)
	}
	if Find("int a;\n", "includes") != nil {
		t.Fatal("expected no banners in plain code")
	}
}

func TestApplyRenamesKeepsCarriageReturn(t *testing.T) {
	dashes := strings.Repeat("-", 10)
	doc := "/* " + dashes + "\r\n * function declarations\r\n * " + dashes + " */\r\nint x;\n"
	got, changed := ApplyRenames(doc, []RenameRule{{From: "function declarations", To: "local function declarations"}})
	if !changed {
		t.Fatal("rename did not apply")
	}
	want := Render("local function declarations") + "\r\nint x;\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ApplyRenames mismatch (-want +got):\n%s", diff)
	}
}

func TestAnchors(t *testing.T) {
	doc := "#ifndef FOO_BAR_H_\n#define FOO_BAR_H_\n\nint a;\n\n#endif  // FOO_BAR_H_\n"
	end, ok := OpeningGuardEnd(doc)
	if !ok {
		t.Fatal("opening guard not found")
	}
	if !strings.HasPrefix(doc[end:], "int a;") {
		t.Fatalf("opening guard ends at wrong offset: %q", doc[end:])
	}
	tight := "#ifndef FOO_H_\n#define FOO_H_\nint a;\n"
	if end, ok := OpeningGuardEnd(tight); !ok || tight[end:] != "int a;\n" {
		t.Fatalf("opening guard without blank line ends at %d (%v)", end, ok)
	}
	start, ok := ClosingGuardStart(doc)
	if !ok {
		t.Fatal("closing guard not found")
	}
	if !strings.HasPrefix(doc[start:], "#endif") {
		t.Fatalf("closing guard starts at wrong offset: %q", doc[start:])
	}
}

func TestAnchorsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"ifndef without define", "#ifndef FOO_H_\nint a;\n#endif\n"},
		{"define without ifndef", "#define FOO_H_\nint a;\n"},
		{"lowercase guard", "#ifndef foo_h_\n#define foo_h_\n#endif // foo_h_\n"},
		{"endif without comment", "#ifndef FOO_H_\nint a;\n#endif\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := OpeningGuardEnd(tt.doc); ok {
				t.Fatalf("unexpected opening guard in %q", tt.doc)
			}
			if _, ok := ClosingGuardStart(tt.doc); ok {
				t.Fatalf("unexpected closing guard in %q", tt.doc)
			}
		})
	}
}

func TestResolveBoundary(t *testing.T) {
	header := "#ifndef X_H_\n#define X_H_\n\n#endif // X_H_\n"
	if got, want := ResolveBoundary(header, KindHeader), strings.Index(header, "#endif"); got != want {
		t.Fatalf("header boundary = %d, want %d", got, want)
	}
	if got := ResolveBoundary(header, KindSource); got != len(header) {
		t.Fatalf("source kind must ignore anchors, got %d", got)
	}
	noGuard := "int a;\n"
	if got := ResolveBoundary(noGuard, KindHeader); got != len(noGuard) {
		t.Fatalf("header without guard boundary = %d, want %d", got, len(noGuard))
	}
}

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.c", []byte("int a;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("main.c", []byte("int b;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("main.c")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if got := string(fs.Get(id1).Content); got != "int a;" {
		t.Errorf("Expected first file content to be 'int a;', got %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "int b;" {
		t.Errorf("Expected second file content to be 'int b;', got %q", got)
	}
	if fs.Get(FileID(7)) != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.h", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.c", []byte("ab\ncd\n\nα\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 4, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestLoadNormalizesAndWriteBackRestores(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.h")
	original := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a;\r\nint b;\r\n")...)
	if err := os.WriteFile(path, original, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "int a;\nint b;\n" {
		t.Fatalf("content not normalized: %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags not recorded: %b", file.Flags)
	}

	if err := file.WriteBack([]byte("int a;\nint c;\n")); err != nil {
		t.Fatalf("WriteBack: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a;\r\nint c;\r\n")...)
	if string(got) != string(want) {
		t.Fatalf("WriteBack wrote %q, want %q", got, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode changed to %v", info.Mode().Perm())
	}
}

func TestWriteBackRejectsVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.c", []byte("x"))
	if err := fs.Get(id).WriteBack([]byte("y")); err == nil {
		t.Fatal("expected error for virtual file")
	}
}

func TestNormalizeCRLFLeavesLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\rb\nc" {
		t.Fatalf("got %q", out)
	}
	if _, changed := normalizeCRLF([]byte("plain\n")); changed {
		t.Fatal("LF-only content must not be reported as changed")
	}
	mixed := "a\r\nb\nc\r\n"
	if out, changed := normalizeCRLF([]byte(mixed)); changed || string(out) != mixed {
		t.Fatalf("mixed endings must stay as they are, got %q (%v)", out, changed)
	}
}

func TestSpanOf(t *testing.T) {
	sp := SpanOf(3, 4, 9)
	if sp.File != 3 || sp.Start != 4 || sp.End != 9 || sp.Len() != 5 || sp.Empty() {
		t.Fatalf("unexpected span %+v", sp)
	}
	if !FileSpan(1).Empty() {
		t.Fatal("FileSpan must be empty")
	}
}

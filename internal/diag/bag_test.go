package diag

import (
	"testing"

	"ccheck/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := range 3 {
		kept := bag.Add(NewError(SecMissing, source.SpanOf(0, i, i), "missing"))
		if want := i < 2; kept != want {
			t.Fatalf("Add #%d kept=%v, want %v", i, kept, want)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagUnlimitedWhenNonPositive(t *testing.T) {
	bag := NewBag(0)
	if bag.Cap() != ^uint16(0) {
		t.Fatalf("Cap = %d, want max uint16", bag.Cap())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, SecDuplicate, source.SpanOf(1, 5, 6), "dup"))
	bag.Add(New(SevError, SecMissing, source.SpanOf(0, 9, 9), "missing"))
	bag.Add(New(SevError, GrdMissing, source.SpanOf(0, 0, 0), "guard"))
	bag.Add(New(SevInfo, SecInfo, source.SpanOf(0, 0, 0), "info"))
	bag.Add(New(SevError, GrdMissing, source.SpanOf(0, 0, 0), "guard"))

	bag.Dedup()
	if bag.Len() != 4 {
		t.Fatalf("Dedup left %d items, want 4", bag.Len())
	}
	bag.Sort()
	got := make([]Code, 0, bag.Len())
	for _, d := range bag.Items() {
		got = append(got, d.Code)
	}
	want := []Code{GrdMissing, SecInfo, SecMissing, SecDuplicate}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(NamBadFile, source.FileSpan(0), "a"))
	b := NewBag(2)
	b.Add(NewError(NamBadFolder, source.FileSpan(1), "b"))
	b.Add(NewError(NamBadFolder, source.FileSpan(2), "c"))
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
	if !a.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestHasWarnings(t *testing.T) {
	bag := NewBag(4)
	bag.Add(New(SevInfo, SecInfo, source.FileSpan(0), "fixed"))
	if bag.HasWarnings() {
		t.Fatal("info must not count as warning")
	}
	bag.Add(New(SevWarning, SecLegacyTitle, source.FileSpan(0), "legacy"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("expected warnings and no errors")
	}
}

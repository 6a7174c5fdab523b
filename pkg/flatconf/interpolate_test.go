package flatconf

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) *Set {
	t.Helper()
	set, err := Parse([]byte(src), "test.ini")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return set
}

func TestInterpolateChain(t *testing.T) {
	// PathMaps references PathRoot before it is declared; Ldd chains
	// through both from another section.
	set := mustParse(t, `
[TOPOP]
Ldd = $(FILE_PATHS:PathMaps)/routing/ldd.map

[FILE_PATHS]
PathMaps = $(PathRoot)/cwatm_input
PathRoot = DataDrive/CWatM
`)
	resolved, err := set.Interpolate()
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}

	if v, _ := resolved.Get("FILE_PATHS", "PathMaps"); v != "DataDrive/CWatM/cwatm_input" {
		t.Errorf("Expected chained local resolution, got %q", v)
	}
	if v, _ := resolved.Get("TOPOP", "Ldd"); v != "DataDrive/CWatM/cwatm_input/routing/ldd.map" {
		t.Errorf("Expected cross-section resolution, got %q", v)
	}

	// The input set is never mutated.
	if v, _ := set.Get("FILE_PATHS", "PathMaps"); v != "$(PathRoot)/cwatm_input" {
		t.Errorf("Input set was mutated: %q", v)
	}
}

func TestInterpolateMultiplePlaceholdersPerValue(t *testing.T) {
	set := mustParse(t, `
[S]
a = x
b = y
both = $(a)-$(b)/$(a)
`)
	resolved, err := set.Interpolate()
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if v, _ := resolved.Get("S", "both"); v != "x-y/x" {
		t.Errorf("Expected 'x-y/x', got %q", v)
	}
}

func TestInterpolateIdempotent(t *testing.T) {
	set := mustParse(t, `
[A]
x = $(B:y)/suffix
[B]
y = base
`)
	once, err := set.Interpolate()
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	twice, err := once.Interpolate()
	if err != nil {
		t.Fatalf("Second Interpolate failed: %v", err)
	}
	if !once.Equal(twice) {
		t.Error("Interpolation is not idempotent")
	}
}

func TestInterpolateCycle(t *testing.T) {
	set := mustParse(t, `
[A]
x = $(B:y)
[B]
y = $(A:x)
`)
	_, err := set.Interpolate()
	if err == nil {
		t.Fatal("Expected cycle error")
	}
	var cerr *CyclicReferenceError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected CyclicReferenceError, got %T: %v", err, err)
	}
	if len(cerr.Chain) != 3 {
		t.Fatalf("Expected chain of 3 nodes, got %v", cerr.Chain)
	}
	if cerr.Chain[0] != cerr.Chain[len(cerr.Chain)-1] {
		t.Errorf("Chain should close on the re-entered node: %v", cerr.Chain)
	}
	seen := map[Ref]bool{}
	for _, ref := range cerr.Chain {
		seen[ref] = true
	}
	if !seen[(Ref{Section: "A", Key: "x"})] || !seen[(Ref{Section: "B", Key: "y"})] {
		t.Errorf("Chain should name both nodes: %v", cerr.Chain)
	}
}

func TestInterpolateSelfCycle(t *testing.T) {
	set := mustParse(t, "[A]\nx = $(x)\n")
	_, err := set.Interpolate()
	var cerr *CyclicReferenceError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected CyclicReferenceError, got %v", err)
	}
}

func TestInterpolateMissingReference(t *testing.T) {
	set := mustParse(t, "[A]\nx = $(Z:q)\n")
	_, err := set.Interpolate()
	if err == nil {
		t.Fatal("Expected missing-reference error")
	}
	var uerr *UnresolvedReferenceError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UnresolvedReferenceError, got %T: %v", err, err)
	}
	if uerr.From != (Ref{Section: "A", Key: "x"}) {
		t.Errorf("Unexpected referencing node: %v", uerr.From)
	}
	if uerr.Target != (Ref{Section: "Z", Key: "q"}) {
		t.Errorf("Unexpected target: %v", uerr.Target)
	}
}

func TestInterpolateMissingKeyInExistingSection(t *testing.T) {
	set := mustParse(t, "[A]\nx = $(missing)\n")
	_, err := set.Interpolate()
	var uerr *UnresolvedReferenceError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UnresolvedReferenceError, got %v", err)
	}
	if uerr.Target != (Ref{Section: "A", Key: "missing"}) {
		t.Errorf("Unexpected target: %v", uerr.Target)
	}
}

// core/partition/partition_test.go
package partition

import (
	"math"
	"reflect"
	"testing"

	"dompart-core/evidence"
	"dompart-core/interval"
	"dompart-core/reference"
)

func mustSet(t *testing.T, s string) interval.Set {
	t.Helper()
	set, err := interval.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func domainHit(t *testing.T, id, query string, evalue, conf float64, order int) evidence.Hit {
	t.Helper()
	q := mustSet(t, query)
	return evidence.Hit{
		Source:       evidence.DomainLevel,
		TargetID:     id,
		Family:       "fam." + id,
		Query:        q,
		EValue:       evalue,
		Confidence:   conf,
		CoverageSize: q.Length(),
		Order:        order,
	}
}

// Empty evidence is a valid terminal state: no domains, zero coverage, one
// unassigned range spanning the whole chain.
func TestPartitionEmptyEvidence(t *testing.T) {
	out := Partition(evidence.Sequence{ID: "p1", Length: 100}, nil, nil, DefaultConfig())

	if len(out.Domains) != 0 {
		t.Errorf("domains = %v, want none", out.Domains)
	}
	if out.Coverage != 0 {
		t.Errorf("coverage = %v, want 0", out.Coverage)
	}
	if out.Unassigned.String() != "1-100" {
		t.Errorf("unassigned = %s, want 1-100", out.Unassigned)
	}
}

// Whole-chain decomposition with the quality gate: the well-covered piece is
// accepted, the fragmentary one is rejected for curation.
func TestPartitionDecomposesChainHit(t *testing.T) {
	// Chain hit spans query 2-220 aligned to reference 1-219.
	q := mustSet(t, "2-220")
	hit := evidence.Hit{
		Source:       evidence.ChainLevel,
		TargetID:     "1ref_A",
		Family:       "whole chain",
		Query:        q,
		Target:       mustSet(t, "1-219"),
		EValue:       1e-25,
		Confidence:   0.63,
		CoverageSize: q.Length(),
	}
	lookup := reference.MapLookup{
		"1ref_A": {
			// 155/165 aligned -> 0.939 reference coverage
			{ID: "e1refA1", Family: "a.4", Boundary: interval.Interval{Start: 1, End: 155}, Length: 165},
			// 64/179 aligned -> 0.358 reference coverage
			{ID: "e1refA2", Family: "b.1", Boundary: interval.Interval{Start: 156, End: 219}, Length: 179},
		},
	}

	out := Partition(evidence.Sequence{ID: "1abc_A", Length: 284}, []evidence.Hit{hit}, lookup, DefaultConfig())

	if len(out.Domains) != 1 {
		t.Fatalf("got %d domains, want 1: %+v", len(out.Domains), out.Domains)
	}
	d := out.Domains[0]
	if !d.Decomposed || d.ReferenceID != "e1refA1" {
		t.Errorf("accepted domain = %+v, want decomposed e1refA1", d)
	}
	if d.Range.String() != "2-156" {
		t.Errorf("range = %s, want 2-156", d.Range)
	}
	if math.Abs(d.RefCoverage-0.939) > 0.001 {
		t.Errorf("RefCoverage = %v, want ~0.939", d.RefCoverage)
	}

	if len(out.Rejections) != 1 {
		t.Fatalf("got %d rejections, want 1: %+v", len(out.Rejections), out.Rejections)
	}
	r := out.Rejections[0]
	if r.Reason != ReasonQuality || r.TargetID != "e1refA2" {
		t.Errorf("rejection = %+v, want quality_rejected e1refA2", r)
	}
	if math.Abs(r.RefCoverage-0.358) > 0.001 {
		t.Errorf("rejected RefCoverage = %v, want ~0.358", r.RefCoverage)
	}
}

// Coverage-first ordering: the larger hit wins the shared region, the smaller
// one keeps only its novel remainder.
func TestPartitionCoverageFirstClaims(t *testing.T) {
	hit1 := domainHit(t, "hit1", "1-100", 1e-10, 0.81, 0)
	hit2 := domainHit(t, "hit2", "3-150", 1e-7, 0.63, 1)

	out := Partition(evidence.Sequence{ID: "p", Length: 200}, []evidence.Hit{hit1, hit2}, nil, DefaultConfig())

	if len(out.Domains) != 2 {
		t.Fatalf("got %d domains, want 2: %+v", len(out.Domains), out.Domains)
	}
	if out.Domains[0].ReferenceID != "hit2" || out.Domains[0].Range.String() != "3-150" {
		t.Errorf("first domain = %+v, want hit2 over 3-150", out.Domains[0])
	}
	if out.Domains[1].ReferenceID != "hit1" || out.Domains[1].Range.String() != "1-2" {
		t.Errorf("second domain = %+v, want hit1 over 1-2", out.Domains[1])
	}
	if out.Unassigned.String() != "151-200" {
		t.Errorf("unassigned = %s, want 151-200", out.Unassigned)
	}
}

// A hit fully inside claimed territory is redundant, not an error.
func TestPartitionRejectsRedundant(t *testing.T) {
	big := domainHit(t, "big", "1-100", 1e-10, 0.9, 0)
	dup := domainHit(t, "dup", "20-80", 1e-12, 0.95, 1)

	out := Partition(evidence.Sequence{ID: "p", Length: 100}, []evidence.Hit{big, dup}, nil, DefaultConfig())

	if len(out.Domains) != 1 {
		t.Fatalf("got %d domains, want 1", len(out.Domains))
	}
	if len(out.Rejections) != 1 || out.Rejections[0].Reason != ReasonRedundant {
		t.Fatalf("rejections = %+v, want one redundant_candidate", out.Rejections)
	}
}

// Accepted domains never overlap: each one is built from novel positions only.
func TestPartitionDomainsDisjoint(t *testing.T) {
	hits := []evidence.Hit{
		domainHit(t, "a", "1-120", 1e-5, 0.7, 0),
		domainHit(t, "b", "100-200", 1e-8, 0.8, 1),
		domainHit(t, "c", "50-160", 1e-3, 0.6, 2),
	}
	out := Partition(evidence.Sequence{ID: "p", Length: 250}, hits, nil, DefaultConfig())

	seen := make(map[int]string)
	for _, d := range out.Domains {
		for _, p := range d.Range.Positions() {
			if prev, dup := seen[p]; dup {
				t.Fatalf("position %d claimed by both %s and %s", p, prev, d.ID)
			}
			seen[p] = d.ID
		}
	}
	if out.Coverage < 0 || out.Coverage > 1 {
		t.Errorf("coverage %v outside [0,1]", out.Coverage)
	}
}

// Identical input, identical output, every time.
func TestPartitionDeterministic(t *testing.T) {
	hits := []evidence.Hit{
		domainHit(t, "a", "1-80", 1e-3, 0.5, 0),
		domainHit(t, "b", "81-160", 1e-3, 0.5, 1),
		domainHit(t, "c", "40-120", 1e-3, 0.5, 2),
	}
	seq := evidence.Sequence{ID: "p", Length: 200}

	first := Partition(seq, hits, nil, DefaultConfig())
	for i := 0; i < 5; i++ {
		again := Partition(seq, hits, nil, DefaultConfig())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed:\n%+v\nvs\n%+v", i, first, again)
		}
	}
}

// Adding evidence over previously-unassigned positions can only help.
func TestPartitionCoverageMonotonic(t *testing.T) {
	base := []evidence.Hit{domainHit(t, "a", "1-100", 1e-5, 0.7, 0)}
	seq := evidence.Sequence{ID: "p", Length: 300}

	before := Partition(seq, base, nil, DefaultConfig())

	extended := append(append([]evidence.Hit(nil), base...),
		domainHit(t, "b", "150-250", 1e-4, 0.6, 1))
	after := Partition(seq, extended, nil, DefaultConfig())

	if after.Coverage < before.Coverage {
		t.Errorf("coverage decreased: %v -> %v", before.Coverage, after.Coverage)
	}
}

// The gate is asymmetric by default but its reach is configurable.
func TestPartitionGateWholeHits(t *testing.T) {
	weak := domainHit(t, "weak", "1-100", 5.0, 0.2, 0)
	seq := evidence.Sequence{ID: "p", Length: 100}

	out := Partition(seq, []evidence.Hit{weak}, nil, DefaultConfig())
	if len(out.Domains) != 1 {
		t.Fatalf("ungated whole hit should be accepted, got %+v", out)
	}

	cfg := DefaultConfig()
	cfg.GateWholeHits = true
	out = Partition(seq, []evidence.Hit{weak}, nil, cfg)
	if len(out.Domains) != 0 {
		t.Fatalf("gated whole hit should be rejected, got %+v", out.Domains)
	}
	if len(out.Rejections) != 1 || out.Rejections[0].Reason != ReasonQuality {
		t.Errorf("rejections = %+v", out.Rejections)
	}
}

// Every accepted decomposed domain satisfies both halves of the gate.
func TestPartitionGateInvariant(t *testing.T) {
	q := mustSet(t, "1-200")
	hit := evidence.Hit{
		Source: evidence.ChainLevel, TargetID: "ref", Query: q, Target: mustSet(t, "1-200"),
		EValue: 1e-4, Confidence: 0.45, CoverageSize: q.Length(),
	}
	lookup := reference.MapLookup{
		"ref": {
			{ID: "s1", Boundary: interval.Interval{Start: 1, End: 100}, Length: 100},
			{ID: "s2", Boundary: interval.Interval{Start: 101, End: 200}, Length: 100},
		},
	}

	// Confidence 0.45 < 0.5: both pieces fail the gate despite full coverage.
	out := Partition(evidence.Sequence{ID: "p", Length: 200}, []evidence.Hit{hit}, lookup, DefaultConfig())
	for _, d := range out.Domains {
		if d.Decomposed && (d.RefCoverage < 0.5 || d.Confidence < 0.5) {
			t.Errorf("gated domain leaked through: %+v", d)
		}
	}
	if len(out.Domains) != 0 {
		t.Errorf("got %d domains, want 0", len(out.Domains))
	}
	if len(out.Rejections) != 2 {
		t.Errorf("got %d rejections, want 2", len(out.Rejections))
	}
}

// A chain-level hit without a boundary map stays monolithic and is recorded
// as a skipped decomposition, not an error.
func TestPartitionDecompositionSkipped(t *testing.T) {
	q := mustSet(t, "1-150")
	hit := evidence.Hit{
		Source: evidence.ChainLevel, TargetID: "unmapped", Query: q, Target: mustSet(t, "1-150"),
		EValue: 1e-9, Confidence: 0.8, CoverageSize: q.Length(),
	}
	out := Partition(evidence.Sequence{ID: "p", Length: 150}, []evidence.Hit{hit}, reference.MapLookup{}, DefaultConfig())

	if len(out.Domains) != 1 || out.Domains[0].Decomposed {
		t.Fatalf("want one monolithic domain, got %+v", out.Domains)
	}
	if len(out.SkippedDecompositions) != 1 || out.SkippedDecompositions[0] != "unmapped" {
		t.Errorf("SkippedDecompositions = %v", out.SkippedDecompositions)
	}
}

func TestPartitionZeroLengthSequence(t *testing.T) {
	out := Partition(evidence.Sequence{ID: "p", Length: 0}, nil, nil, DefaultConfig())
	if len(out.Domains) != 0 || out.Coverage != 0 || len(out.Unassigned) != 0 {
		t.Errorf("degenerate sequence outcome = %+v", out)
	}
}

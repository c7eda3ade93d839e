// core/partition/candidate.go
package partition

import (
	"dompart-core/evidence"
	"dompart-core/interval"
)

// Candidate is one pool entry: either a whole validated hit or a decomposed
// piece of a chain-level hit. It lives only for the duration of one call.
type Candidate struct {
	Source      evidence.SourceKind
	TargetID    string
	Family      string
	Query       interval.Set
	Size        int
	EValue      float64
	Confidence  float64
	Decomposed  bool
	RefCoverage float64 // aligned fraction of the reference sub-domain; 0 unless Decomposed

	order int // input order of the originating hit
}

func fromHit(h evidence.Hit) Candidate {
	return Candidate{
		Source:     h.Source,
		TargetID:   h.TargetID,
		Family:     h.Family,
		Query:      h.Query,
		Size:       h.CoverageSize,
		EValue:     h.EValue,
		Confidence: h.Confidence,
		order:      h.Order,
	}
}

// sortSize is the primary priority key. Decomposed candidates are scaled by
// how much of their reference sub-domain the alignment actually covers, so a
// sliver of a large sub-domain cannot outrank a solid whole hit.
func (c Candidate) sortSize() float64 {
	if c.Decomposed {
		return c.RefCoverage * float64(c.Size)
	}
	return float64(c.Size)
}

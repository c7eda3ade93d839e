// core/partition/decompose.go
package partition

import (
	"dompart-core/evidence"
	"dompart-core/interval"
	"dompart-core/reference"
)

// decomposable reports whether h can be split against a boundary map: only
// chain-level hits with alignment coordinates and a layout of more than one
// sub-domain qualify. Everything else passes through as a single candidate.
func decomposable(h evidence.Hit, subs []reference.SubDomain) bool {
	return h.Source == evidence.ChainLevel && len(subs) > 1 && len(h.Target) > 0
}

// expand splits a chain-level hit into one candidate per reference sub-domain
// overlapped by the alignment. Aligned target and query positions correspond
// by rank, which realizes the linear coordinate mapping between the two
// aligned ranges (segment gaps on either side are preserved).
//
// Pieces whose overlap is below minSegment residues are decomposition noise
// and never enter the pool.
func expand(h evidence.Hit, subs []reference.SubDomain, minSegment int) []Candidate {
	qp := h.Query.Positions()
	tp := h.Target.Positions()
	n := len(qp)
	if len(tp) < n {
		n = len(tp)
	}
	if n == 0 {
		return nil
	}
	if minSegment < 1 {
		minSegment = 1
	}

	var out []Candidate
	for _, sd := range subs {
		if sd.Length <= 0 {
			continue
		}
		var pos []int
		for i := 0; i < n; i++ {
			if sd.Boundary.Contains(tp[i]) {
				pos = append(pos, qp[i])
			}
		}
		if len(pos) < minSegment {
			continue
		}
		out = append(out, Candidate{
			Source:      h.Source,
			TargetID:    sd.ID,
			Family:      sd.Family,
			Query:       interval.FromPositions(pos),
			Size:        len(pos),
			EValue:      h.EValue,
			Confidence:  h.Confidence,
			Decomposed:  true,
			RefCoverage: float64(len(pos)) / float64(sd.Length),
			order:       h.Order,
		})
	}
	return out
}

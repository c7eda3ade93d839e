// core/partition/partition.go
package partition

import (
	"fmt"
	"sort"

	"dompart-core/evidence"
	"dompart-core/interval"
	"dompart-core/reference"
)

// Config holds the tunable thresholds of the greedy assignment.
type Config struct {
	// MinNovelFraction rejects a candidate as redundant when fewer than this
	// share of its positions are still unclaimed. The default keeps any
	// candidate that adds real residues, however few (a long hit's short
	// novel remainder is still worth assigning).
	MinNovelFraction float64
	// MinRefCoverage and MinConfidence form the quality gate applied to
	// decomposed candidates.
	MinRefCoverage float64
	MinConfidence  float64
	// MinSegment is the decomposition noise floor in residues.
	MinSegment int
	// GateWholeHits extends the confidence half of the gate to non-decomposed
	// candidates. Off by default: whole hits are accepted on coverage novelty
	// alone, mirroring the asymmetric reference behavior.
	GateWholeHits bool
}

// DefaultConfig returns production thresholds.
func DefaultConfig() Config {
	return Config{
		MinNovelFraction: 0.01,
		MinRefCoverage:   0.5,
		MinConfidence:    0.5,
		MinSegment:       3,
	}
}

// Partition assigns non-overlapping domains to seq from validated hits.
// It is pure and total: every well-formed sequence and (possibly empty)
// hit list produces an Outcome. lookup may be nil.
func Partition(seq evidence.Sequence, hits []evidence.Hit, lookup reference.Lookup, cfg Config) Outcome {
	out := Outcome{SequenceID: seq.ID, SequenceLength: seq.Length}
	if seq.Length < 1 {
		return out
	}

	pool := buildPool(hits, lookup, cfg, &out)
	sortPool(pool)
	assign(seq, pool, cfg, &out)

	covered := 0
	var positions []int
	for _, d := range out.Domains {
		positions = append(positions, d.Range.Positions()...)
		covered += d.Size
	}
	out.Coverage = float64(covered) / float64(seq.Length)
	out.Unassigned = interval.Complement(mergeSorted(positions), seq.Length)
	return out
}

// buildPool expands decomposable chain-level hits and passes everything else
// through unmodified.
func buildPool(hits []evidence.Hit, lookup reference.Lookup, cfg Config, out *Outcome) []Candidate {
	pool := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		var subs []reference.SubDomain
		if lookup != nil {
			subs = lookup.SubDomains(h.TargetID)
		}
		if !decomposable(h, subs) {
			if h.Source == evidence.ChainLevel {
				out.SkippedDecompositions = append(out.SkippedDecompositions, h.TargetID)
			}
			pool = append(pool, fromHit(h))
			continue
		}
		pieces := expand(h, subs, cfg.MinSegment)
		if len(pieces) == 0 {
			// The alignment grazed every sub-domain below the noise floor;
			// fall back to the monolithic hit.
			pool = append(pool, fromHit(h))
			continue
		}
		pool = append(pool, pieces...)
	}
	return pool
}

// assign runs the single greedy pass: claim positions in priority order,
// gate decomposed candidates, log everything skipped.
func assign(seq evidence.Sequence, pool []Candidate, cfg Config, out *Outcome) {
	occupied := make([]bool, seq.Length+1)

	for _, c := range pool {
		var novel []int
		for _, p := range c.Query.Positions() {
			if p <= seq.Length && !occupied[p] {
				novel = append(novel, p)
			}
		}
		if c.Size == 0 || float64(len(novel))/float64(c.Size) < cfg.MinNovelFraction || len(novel) == 0 {
			out.Rejections = append(out.Rejections, reject(c, ReasonRedundant))
			continue
		}

		if c.Decomposed && (c.RefCoverage < cfg.MinRefCoverage || c.Confidence < cfg.MinConfidence) {
			out.Rejections = append(out.Rejections, reject(c, ReasonQuality))
			continue
		}
		if cfg.GateWholeHits && !c.Decomposed && c.Confidence < cfg.MinConfidence {
			out.Rejections = append(out.Rejections, reject(c, ReasonQuality))
			continue
		}

		for _, p := range novel {
			occupied[p] = true
		}
		out.Domains = append(out.Domains, Domain{
			ID:          fmt.Sprintf("%s_d%d", seq.ID, len(out.Domains)+1),
			Range:       interval.FromPositions(novel),
			Size:        len(novel),
			Source:      c.Source,
			Decomposed:  c.Decomposed,
			ReferenceID: c.TargetID,
			Family:      c.Family,
			Confidence:  c.Confidence,
			RefCoverage: c.RefCoverage,
		})
	}
}

func reject(c Candidate, why RejectReason) Rejection {
	return Rejection{
		TargetID:    c.TargetID,
		Family:      c.Family,
		Range:       c.Query,
		Decomposed:  c.Decomposed,
		RefCoverage: c.RefCoverage,
		Confidence:  c.Confidence,
		Reason:      why,
	}
}

// mergeSorted sorts accepted positions (domains are created in claim order,
// not left-to-right) and groups them for the complement. Positions are unique
// by construction.
func mergeSorted(ps []int) interval.Set {
	if len(ps) == 0 {
		return nil
	}
	sort.Ints(ps)
	return interval.FromPositions(ps)
}

// core/evidence/normalize.go
package evidence

import (
	"fmt"

	"dompart-core/interval"
)

// Normalizer turns raw hit records into validated Hits.
type Normalizer struct {
	conf ConfidenceFunc
}

// NewNormalizer returns a Normalizer using conf for hits without an explicit
// confidence. A nil conf falls back to DefaultConfidence.
func NewNormalizer(conf ConfidenceFunc) *Normalizer {
	if conf == nil {
		conf = DefaultConfidence
	}
	return &Normalizer{conf: conf}
}

// Normalize validates every raw hit against seq. Malformed hits are skipped
// and reported; they never abort the rest of the list.
func (n *Normalizer) Normalize(seq Sequence, raws []Raw) ([]Hit, []ValidationError) {
	hits := make([]Hit, 0, len(raws))
	var errs []ValidationError

	for i, r := range raws {
		h, err := n.one(seq, r)
		if err != nil {
			errs = append(errs, ValidationError{Index: i, TargetID: r.TargetID, Reason: err.Error()})
			continue
		}
		h.Order = i
		hits = append(hits, h)
	}
	return hits, errs
}

func (n *Normalizer) one(seq Sequence, r Raw) (Hit, error) {
	kind := SourceKind(r.SourceKind)
	if !kind.Valid() {
		return Hit{}, fmt.Errorf("unknown source kind %q", r.SourceKind)
	}
	if r.TargetID == "" {
		return Hit{}, fmt.Errorf("missing target domain id")
	}

	query, err := interval.Parse(r.QueryRange)
	if err != nil {
		return Hit{}, fmt.Errorf("query range: %v", err)
	}
	if last := query.Max(); last > seq.Length {
		return Hit{}, fmt.Errorf("query range %s exceeds sequence length %d", query, seq.Length)
	}

	var target interval.Set
	if r.TargetRange != "" {
		target, err = interval.Parse(r.TargetRange)
		if err != nil {
			return Hit{}, fmt.Errorf("target range: %v", err)
		}
	}

	conf := 0.0
	if r.Confidence != nil {
		conf = *r.Confidence
		if conf < 0 || conf > 1 {
			return Hit{}, fmt.Errorf("confidence %v outside [0,1]", conf)
		}
	} else {
		conf = n.conf(r.EValue)
	}

	return Hit{
		Source:       kind,
		TargetID:     r.TargetID,
		Family:       r.Family,
		Query:        query,
		Target:       target,
		EValue:       r.EValue,
		Score:        r.Score,
		Identity:     r.Identity,
		Confidence:   conf,
		TargetLength: r.TargetLength,
		CoverageSize: query.Length(),
	}, nil
}

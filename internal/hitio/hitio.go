// internal/hitio/hitio.go

// Package hitio reads evidence documents: one protein plus its similarity
// hits, as emitted by the upstream search/summary stage. Parsing of raw
// search output (BLAST, HHR) happens upstream; this is only the exchange
// format at the pipeline boundary.
package hitio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"dompart-core/evidence"
)

// Document is one protein's evidence file.
type Document struct {
	Protein Protein `json:"protein"`
	Hits    []Hit   `json:"hits"`
}

// Protein identifies the query chain.
type Protein struct {
	ID       string `json:"id"`
	Length   int    `json:"length"`
	Sequence string `json:"sequence,omitempty"`
}

// Hit is one evidence record on the wire. Ranges use the ascending,
// non-overlapping "start-end[,start-end]" form, 1-indexed inclusive.
type Hit struct {
	SourceKind            string   `json:"source_kind"`
	TargetDomainID        string   `json:"target_domain_id"`
	TargetFamilyName      string   `json:"target_family_name"`
	QueryRange            string   `json:"query_range"`
	TargetRange           string   `json:"target_range,omitempty"`
	EValue                float64  `json:"e_value"`
	BitScoreOrProbability float64  `json:"bit_score_or_probability"`
	Identity              float64  `json:"identity,omitempty"`
	Confidence            *float64 `json:"confidence,omitempty"`
	TargetDomainLength    int      `json:"target_domain_length,omitempty"`
}

// Decode reads one document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode evidence document: %w", err)
	}
	if doc.Protein.ID == "" {
		return Document{}, fmt.Errorf("evidence document missing protein id")
	}
	if doc.Protein.Length < 1 {
		return Document{}, fmt.Errorf("protein %s: non-positive sequence length %d", doc.Protein.ID, doc.Protein.Length)
	}
	return doc, nil
}

// Load reads one document from path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ToCore converts the wire document into the core's sequence context and raw
// hit list. Validation of individual hits happens in the core normalizer.
func (d Document) ToCore() (evidence.Sequence, []evidence.Raw) {
	seq := evidence.Sequence{ID: d.Protein.ID, Length: d.Protein.Length, Residues: d.Protein.Sequence}
	raws := make([]evidence.Raw, 0, len(d.Hits))
	for _, h := range d.Hits {
		raws = append(raws, evidence.Raw{
			SourceKind:   h.SourceKind,
			TargetID:     h.TargetDomainID,
			Family:       h.TargetFamilyName,
			QueryRange:   h.QueryRange,
			TargetRange:  h.TargetRange,
			EValue:       h.EValue,
			Score:        h.BitScoreOrProbability,
			Identity:     h.Identity,
			Confidence:   h.Confidence,
			TargetLength: h.TargetDomainLength,
		})
	}
	return seq, raws
}

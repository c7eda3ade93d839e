// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"dompart-core/partition"
	"dompart/pkg/api"
)

// ToAPI converts a core outcome to the stable wire schema (v1). quality is
// the operational label attached by the policy layer; empty means "omit".
func ToAPI(out partition.Outcome, quality string) api.PartitionV1 {
	v := api.PartitionV1{
		SequenceID:     out.SequenceID,
		SequenceLength: out.SequenceLength,
		Domains:        make([]api.DomainV1, 0, len(out.Domains)),
		DomainCount:    len(out.Domains),
		Coverage:       out.Coverage,
		Quality:        quality,
	}
	for _, d := range out.Domains {
		v.Domains = append(v.Domains, api.DomainV1{
			ID:                d.ID,
			Range:             d.Range.String(),
			Size:              d.Size,
			SourceKind:        string(d.Source),
			IsDecomposed:      d.Decomposed,
			ReferenceDomainID: d.ReferenceID,
			FamilyName:        d.Family,
			Confidence:        d.Confidence,
			ReferenceCoverage: d.RefCoverage,
		})
	}
	v.UnassignedRanges = make([]string, 0, len(out.Unassigned))
	for _, iv := range out.Unassigned {
		v.UnassignedRanges = append(v.UnassignedRanges, iv.String())
	}
	for _, r := range out.Rejections {
		v.Rejections = append(v.Rejections, api.RejectionV1{
			ReferenceDomainID: r.TargetID,
			FamilyName:        r.Family,
			Range:             r.Range.String(),
			IsDecomposed:      r.Decomposed,
			ReferenceCoverage: r.RefCoverage,
			Confidence:        r.Confidence,
			Reason:            string(r.Reason),
		})
	}
	return v
}

// WriteJSON writes one v1 partition document (pretty-indented).
func WriteJSON(w io.Writer, v api.PartitionV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

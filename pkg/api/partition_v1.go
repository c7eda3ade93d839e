// pkg/api/partition_v1.go
package api

// DomainV1 is the stable JSON schema for one accepted domain.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DomainV1 struct {
	ID                string  `json:"id"`
	Range             string  `json:"range"`
	Size              int     `json:"size"`
	SourceKind        string  `json:"source_kind"` // "chain_level" | "domain_level" | "profile_level"
	IsDecomposed      bool    `json:"is_decomposed"`
	ReferenceDomainID string  `json:"reference_domain_id"`
	FamilyName        string  `json:"family_name"`
	Confidence        float64 `json:"confidence"`
	ReferenceCoverage float64 `json:"reference_coverage,omitempty"`
}

// RejectionV1 is the stable schema for a skipped candidate (curation feed).
type RejectionV1 struct {
	ReferenceDomainID string  `json:"reference_domain_id"`
	FamilyName        string  `json:"family_name,omitempty"`
	Range             string  `json:"range"`
	IsDecomposed      bool    `json:"is_decomposed"`
	ReferenceCoverage float64 `json:"reference_coverage,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
	Reason            string  `json:"reason"` // "redundant_candidate" | "quality_rejected"
}

// PartitionV1 is the stable schema for one partition outcome.
type PartitionV1 struct {
	SequenceID       string        `json:"sequence_id"`
	SequenceLength   int           `json:"sequence_length"`
	Domains          []DomainV1    `json:"domains"`
	DomainCount      int           `json:"domain_count"`
	Coverage         float64       `json:"coverage"`
	UnassignedRanges []string      `json:"unassigned_ranges"`
	Quality          string        `json:"quality,omitempty"` // operational label, not part of the core algorithm
	Rejections       []RejectionV1 `json:"rejections,omitempty"`
}

// core/partition/outcome.go
package partition

import (
	"dompart-core/evidence"
	"dompart-core/interval"
)

// Domain is one accepted, immutable assignment.
type Domain struct {
	ID          string
	Range       interval.Set
	Size        int
	Source      evidence.SourceKind
	Decomposed  bool
	ReferenceID string
	Family      string
	Confidence  float64
	RefCoverage float64 // carried for decomposed domains only
}

// RejectReason labels why a candidate was skipped during assignment.
type RejectReason string

const (
	// ReasonRedundant: the candidate contributed no meaningful novel coverage.
	ReasonRedundant RejectReason = "redundant_candidate"
	// ReasonQuality: a decomposed candidate fell below the reference-coverage
	// or confidence gate. Logged for manual curation.
	ReasonQuality RejectReason = "quality_rejected"
)

// Rejection records one skipped candidate.
type Rejection struct {
	TargetID    string
	Family      string
	Range       interval.Set
	Decomposed  bool
	RefCoverage float64
	Confidence  float64
	Reason      RejectReason
}

// Outcome is the sole result of one partition call. Zero accepted domains is
// a valid terminal state, not an error.
type Outcome struct {
	SequenceID     string
	SequenceLength int
	Domains        []Domain
	Coverage       float64
	Unassigned     interval.Set

	// Rejections and SkippedDecompositions are diagnostic: candidates that
	// were considered and dropped, and chain-level hits that had no usable
	// boundary map and were kept monolithic.
	Rejections            []Rejection
	SkippedDecompositions []string
}

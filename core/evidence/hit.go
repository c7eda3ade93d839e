// core/evidence/hit.go
package evidence

import (
	"fmt"

	"dompart-core/interval"
)

// SourceKind identifies which search produced a hit.
type SourceKind string

const (
	ChainLevel   SourceKind = "chain_level"
	DomainLevel  SourceKind = "domain_level"
	ProfileLevel SourceKind = "profile_level"
)

// Valid reports whether k is one of the three known kinds.
func (k SourceKind) Valid() bool {
	switch k {
	case ChainLevel, DomainLevel, ProfileLevel:
		return true
	}
	return false
}

// Sequence is the per-invocation context: one protein chain.
type Sequence struct {
	ID       string
	Length   int
	Residues string // optional amino-acid string
}

// Raw is one hit record as it arrives on the wire, before validation.
// Ranges are the comma-separated "start-end" text form.
type Raw struct {
	SourceKind   string
	TargetID     string
	Family       string
	QueryRange   string
	TargetRange  string // optional, reference coordinates
	EValue       float64
	Score        float64 // bit score (sequence search) or probability (profile search)
	Identity     float64 // optional, fraction
	Confidence   *float64
	TargetLength int // optional, reference domain length
}

// Hit is a validated, homogeneous candidate for partitioning.
type Hit struct {
	Source       SourceKind
	TargetID     string
	Family       string
	Query        interval.Set
	Target       interval.Set // empty when the record carried no target range
	EValue       float64
	Score        float64
	Identity     float64
	Confidence   float64
	TargetLength int
	CoverageSize int // total residues covered by Query
	Order        int // position in the input list; stable tiebreak downstream
}

// ValidationError records one rejected raw hit. Rejection is per hit:
// the rest of the evidence list is unaffected.
type ValidationError struct {
	Index    int // position in the input list
	TargetID string
	Reason   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("hit %d (%s): %s", e.Index, e.TargetID, e.Reason)
}

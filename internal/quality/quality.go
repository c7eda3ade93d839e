// internal/quality/quality.go

// Package quality maps a partition outcome to an operational routing label.
// This is production policy layered on top of the core algorithm; the core
// itself only reports domains and coverage.
package quality

// Label buckets a partition for downstream routing.
type Label string

const (
	Good        Label = "good"         // production-ready
	LowCoverage Label = "low_coverage" // may need manual review
	Fragmentary Label = "fragmentary"  // likely incomplete
	NoDomains   Label = "no_domains"
)

// Thresholds are the coverage cutoffs between labels. Tunable per deployment.
type Thresholds struct {
	Good float64 // coverage at or above this is Good
	Low  float64 // coverage at or above this (but below Good) is LowCoverage
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds { return Thresholds{Good: 0.80, Low: 0.50} }

// Assess buckets (domainCount, coverage).
func Assess(domainCount int, coverage float64, t Thresholds) Label {
	switch {
	case domainCount == 0:
		return NoDomains
	case coverage >= t.Good:
		return Good
	case coverage >= t.Low:
		return LowCoverage
	default:
		return Fragmentary
	}
}

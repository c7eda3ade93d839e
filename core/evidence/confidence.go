// core/evidence/confidence.go
package evidence

// ConfidenceFunc derives a confidence in [0,1] from an e-value. It is only
// consulted for hits that carry no explicit confidence. The mapping is a
// calibration concern, so callers may swap it without touching the
// partitioning algorithm.
type ConfidenceFunc func(evalue float64) float64

// DefaultConfidence is a step table over e-value magnitude.
func DefaultConfidence(evalue float64) float64 {
	switch {
	case evalue <= 1e-10:
		return 0.95
	case evalue <= 1e-5:
		return 0.80
	case evalue <= 1e-2:
		return 0.60
	case evalue <= 1.0:
		return 0.40
	default:
		return 0.20
	}
}

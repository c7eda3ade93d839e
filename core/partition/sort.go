// core/partition/sort.go
package partition

import "sort"

// sortPool orders the candidate pool for the greedy pass: largest covering
// candidate first, then best e-value, then highest confidence. The sort is
// stable and candidates carry their input order, so identical input yields a
// bit-for-bit identical partition.
//
// Coverage comes before e-value on purpose: a short, statistically excellent
// hit processed first would permanently claim positions inside a region that
// a longer hit covers more completely.
func sortPool(pool []Candidate) {
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if as, bs := a.sortSize(), b.sortSize(); as != bs {
			return as > bs
		}
		if a.EValue != b.EValue {
			return a.EValue < b.EValue
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.order < b.order
	})
}

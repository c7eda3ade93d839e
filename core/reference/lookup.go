// core/reference/lookup.go
package reference

import "dompart-core/interval"

// SubDomain is one classified structural unit inside a reference chain.
// Boundary is expressed in reference chain coordinates.
type SubDomain struct {
	ID       string
	Family   string
	Boundary interval.Interval
	Length   int // residue count of the reference sub-domain
}

// Lookup resolves a reference domain id to its ordered sub-domain layout.
// Implementations are read-only for the duration of one partition call.
// A nil or empty result means no boundary map is known for the id.
type Lookup interface {
	SubDomains(domainID string) []SubDomain
}

// MapLookup is the in-memory Lookup used by loaders and tests.
type MapLookup map[string][]SubDomain

func (m MapLookup) SubDomains(domainID string) []SubDomain {
	if m == nil {
		return nil
	}
	return m[domainID]
}

// internal/refdata/refdata.go

// Package refdata loads reference classification data from TSV snapshots:
// the per-chain sub-domain boundary map used for decomposition, and the
// domain-id to family-name lookup.
package refdata

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dompart-core/interval"
	"dompart-core/reference"
)

// LoadBoundaries reads a boundary-map TSV into a core lookup.
//
// Columns (tab-separated, '#' and header lines skipped):
//
//	chain_id  sub_domain_id  family_name  boundary(start-end)  length
//
// Sub-domains are kept in file order per chain, which is expected to be
// ascending along the reference chain.
func LoadBoundaries(path string) (reference.MapLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lookup := reference.MapLookup{}
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "chain_id") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 5 {
			return nil, fmt.Errorf("%s:%d: want 5 columns, got %d", path, lineNo, len(parts))
		}
		bounds, err := interval.Parse(parts[3])
		if err != nil || len(bounds) != 1 {
			return nil, fmt.Errorf("%s:%d: bad boundary %q", path, lineNo, parts[3])
		}
		length, err := strconv.Atoi(parts[4])
		if err != nil || length < 1 {
			return nil, fmt.Errorf("%s:%d: bad length %q", path, lineNo, parts[4])
		}
		chain := parts[0]
		lookup[chain] = append(lookup[chain], reference.SubDomain{
			ID:       parts[1],
			Family:   parts[2],
			Boundary: bounds[0],
			Length:   length,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lookup, nil
}

// LoadFamilies reads a two-column domain-id to family-name TSV.
// Used to fill hits whose records arrived without a family annotation.
func LoadFamilies(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := map[string]string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "ecod_domain_id") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

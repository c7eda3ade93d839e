// Package partition assigns non-overlapping domain regions to a protein
// sequence from heterogeneous similarity evidence. It never imports cli,
// output, or batch; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// in the root module for stable wire types.
package partition

// Package output turns core partition outcomes into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV layout, JSON shape).
//   - The core stays domain-only; JSON goes through pkg/api (v1) for a
//     stable wire format.
package output

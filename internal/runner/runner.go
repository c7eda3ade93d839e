// internal/runner/runner.go

// Package runner wires one evidence document through the core:
// normalize, partition, attach the policy label, convert to the wire schema.
package runner

import (
	"dompart-core/evidence"
	"dompart-core/partition"
	"dompart-core/reference"
	"dompart/internal/hitio"
	"dompart/internal/output"
	"dompart/internal/quality"
	"dompart/pkg/api"
)

// Options is everything one invocation needs besides the document itself.
type Options struct {
	Lookup     reference.Lookup
	Core       partition.Config
	Quality    quality.Thresholds
	Families   map[string]string       // optional id -> family fill-in
	Confidence evidence.ConfidenceFunc // nil = default e-value mapping
}

// Result carries the wire document plus the per-hit diagnostics the core
// reported along the way.
type Result struct {
	Doc                   api.PartitionV1
	ValidationErrors      []evidence.ValidationError
	SkippedDecompositions []string
}

// PartitionDocument runs the full per-protein flow. It never fails: malformed
// hits are skipped and reported, and an empty evidence list is a valid input.
func PartitionDocument(doc hitio.Document, opts Options) Result {
	seq, raws := doc.ToCore()
	for i := range raws {
		if raws[i].Family == "" && opts.Families != nil {
			raws[i].Family = opts.Families[raws[i].TargetID]
		}
	}

	hits, verrs := evidence.NewNormalizer(opts.Confidence).Normalize(seq, raws)
	out := partition.Partition(seq, hits, opts.Lookup, opts.Core)
	label := quality.Assess(len(out.Domains), out.Coverage, opts.Quality)

	return Result{
		Doc:                   output.ToAPI(out, string(label)),
		ValidationErrors:      verrs,
		SkippedDecompositions: out.SkippedDecompositions,
	}
}

// PartitionFile loads path and runs PartitionDocument.
func PartitionFile(path string, opts Options) (Result, error) {
	doc, err := hitio.Load(path)
	if err != nil {
		return Result{}, err
	}
	return PartitionDocument(doc, opts), nil
}

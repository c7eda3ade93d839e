// internal/batch/batch.go

// Package batch fans many per-protein partition calls out over a worker
// pool. Each invocation is independent and stateless, so the pool needs no
// synchronization beyond the job and result channels.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"dompart/internal/output"
	"dompart/internal/quality"
	"dompart/internal/runner"
	"dompart/internal/store"
	"dompart/pkg/api"
)

// Options controls one batch run.
type Options struct {
	Patterns []string // evidence-document globs ("**" supported)
	Workers  int      // 0 = all CPUs
	Runner   runner.Options

	OutDir string       // per-protein JSON written here when set
	Store  *store.Store // optional outcome store
	Resume bool         // skip proteins already in the store

	Progress func(done, total int)         // optional
	Warn     func(format string, a ...any) // optional, per-file diagnostics
}

// Summary aggregates one batch run.
type Summary struct {
	Total     int
	Processed int
	Skipped   int
	Failed    int
	Labels    map[quality.Label]int
	Outcomes  []api.PartitionV1 // in input-file order
}

type fileResult struct {
	index   int
	path    string
	skipped bool
	doc     api.PartitionV1
	err     error
}

// Run expands the patterns and partitions every matched file. Per-file
// failures are counted and reported via Warn; only setup problems (no
// matches, bad pattern, unwritable output) fail the whole run.
func Run(ctx context.Context, opts Options) (Summary, error) {
	sum := Summary{Labels: map[quality.Label]int{}}

	files, err := expand(opts.Patterns)
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		return sum, fmt.Errorf("no evidence documents matched %v", opts.Patterns)
	}
	sum.Total = len(files)

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return sum, fmt.Errorf("create output dir: %w", err)
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int, workers*2)
	results := make(chan fileResult, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					res := one(files[i], opts)
					res.index = i
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector keeps outcomes in input order for a deterministic summary.
	ordered := make([]fileResult, len(files))
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		done := 0
		for res := range results {
			ordered[res.index] = res
			done++
			if opts.Progress != nil {
				opts.Progress(done, len(files))
			}
		}
	}()

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	for _, res := range ordered {
		switch {
		case res.err != nil:
			sum.Failed++
			if opts.Warn != nil {
				opts.Warn("%s: %v", res.path, res.err)
			}
		case res.skipped:
			sum.Skipped++
		default:
			sum.Processed++
			sum.Labels[quality.Label(res.doc.Quality)]++
			sum.Outcomes = append(sum.Outcomes, res.doc)
		}
	}
	return sum, nil
}

// one partitions a single file, honoring resume and persisting results.
//
// The resume check runs before the file is even opened: evidence documents
// are named <sequence_id>.json, so the store can be consulted from the path
// alone. A file whose name does not match its internal id is simply
// recomputed and re-stored, never wrongly skipped.
func one(path string, opts Options) fileResult {
	res := fileResult{path: path}

	if opts.Resume && opts.Store != nil {
		has, err := opts.Store.Has(sequenceIDFromPath(path))
		if err != nil {
			res.err = err
			return res
		}
		if has {
			res.skipped = true
			return res
		}
	}

	r, err := runner.PartitionFile(path, opts.Runner)
	if err != nil {
		res.err = err
		return res
	}

	if opts.Warn != nil {
		for _, ve := range r.ValidationErrors {
			opts.Warn("%s: %v", path, ve)
		}
	}

	if opts.Store != nil {
		if err := opts.Store.Put(r.Doc); err != nil {
			res.err = err
			return res
		}
	}
	if opts.OutDir != "" {
		if err := writeOutcome(opts.OutDir, r.Doc); err != nil {
			res.err = err
			return res
		}
	}
	res.doc = r.Doc
	return res
}

// sequenceIDFromPath returns the id encoded in an evidence file name
// ("1abc_A.json" -> "1abc_A").
func sequenceIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeOutcome(dir string, v api.PartitionV1) error {
	f, err := os.Create(filepath.Join(dir, v.SequenceID+".partition.json"))
	if err != nil {
		return err
	}
	if err := output.WriteJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// expand resolves the patterns to a sorted, deduplicated file list so runs
// are reproducible regardless of filesystem ordering.
func expand(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

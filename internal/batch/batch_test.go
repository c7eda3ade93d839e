// internal/batch/batch_test.go
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dompart-core/partition"
	"dompart/internal/quality"
	"dompart/internal/runner"
	"dompart/internal/store"
)

func writeDoc(t *testing.T, dir, id string, length int, rangeStr string) string {
	t.Helper()
	doc := fmt.Sprintf(`{
  "protein": {"id": %q, "length": %d},
  "hits": [{
    "source_kind": "domain_level",
    "target_domain_id": "ref1",
    "target_family_name": "fam",
    "query_range": %q,
    "e_value": 1e-12,
    "bit_score_or_probability": 200
  }]
}`, id, length, rangeStr)
	path := filepath.Join(dir, id+".json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func baseOptions(dir string) Options {
	return Options{
		Patterns: []string{filepath.Join(dir, "*.json")},
		Workers:  2,
		Runner: runner.Options{
			Core:    partition.DefaultConfig(),
			Quality: quality.DefaultThresholds(),
		},
	}
}

func TestRunPartitionsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "prot1", 100, "1-90")
	writeDoc(t, dir, "prot2", 200, "1-80")
	writeDoc(t, dir, "prot3", 150, "1-140")

	var ticks int
	opts := baseOptions(dir)
	opts.Progress = func(done, total int) {
		ticks++
		assert.Equal(t, 3, total)
	}

	sum, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 3, sum.Processed)
	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, 3, ticks)
	// Outcomes come back in sorted input-file order regardless of workers.
	require.Len(t, sum.Outcomes, 3)
	assert.Equal(t, "prot1", sum.Outcomes[0].SequenceID)
	assert.Equal(t, "prot3", sum.Outcomes[2].SequenceID)
	assert.Equal(t, 2, sum.Labels[quality.Good])        // 0.9, 0.93
	assert.Equal(t, 1, sum.Labels[quality.Fragmentary]) // 0.4
}

func TestRunWritesOutcomes(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "prot1", 100, "1-90")

	opts := baseOptions(dir)
	opts.OutDir = filepath.Join(dir, "out")

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(opts.OutDir, "prot1.partition.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sequence_id": "prot1"`)
}

func TestRunCountsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "prot1", 100, "1-90")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("not json"), 0o644))

	var warned []string
	opts := baseOptions(dir)
	opts.Warn = func(format string, a ...any) { warned = append(warned, fmt.Sprintf(format, a...)) }

	sum, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 1, sum.Failed)
	assert.NotEmpty(t, warned)
}

func TestRunResumeSkipsStored(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "prot1", 100, "1-90")
	writeDoc(t, dir, "prot2", 100, "1-50")

	st, err := store.Open(filepath.Join(dir, "outcomes.db"))
	require.NoError(t, err)
	defer st.Close()

	opts := baseOptions(dir)
	opts.Store = st
	opts.Resume = true

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)

	// A stored protein must not be re-read at all: clobber its evidence
	// file and the resumed run still skips it without failing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prot1.json"), []byte("not json"), 0o644))

	second, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, 2, second.Skipped)
}

func TestRunNoMatches(t *testing.T) {
	_, err := Run(context.Background(), baseOptions(t.TempDir()))
	assert.Error(t, err)
}

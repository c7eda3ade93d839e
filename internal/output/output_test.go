// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dompart-core/evidence"
	"dompart-core/interval"
	"dompart-core/partition"
	"dompart/pkg/api"
)

func sampleOutcome(t *testing.T) partition.Outcome {
	t.Helper()
	rng, err := interval.Parse("3-150")
	require.NoError(t, err)
	rej, err := interval.Parse("160-170")
	require.NoError(t, err)
	return partition.Outcome{
		SequenceID:     "1abc_A",
		SequenceLength: 200,
		Domains: []partition.Domain{{
			ID:          "1abc_A_d1",
			Range:       rng,
			Size:        148,
			Source:      evidence.DomainLevel,
			ReferenceID: "e2xyzB1",
			Family:      "GFP-like",
			Confidence:  0.63,
		}},
		Coverage:   0.74,
		Unassigned: interval.Set{{Start: 1, End: 2}, {Start: 151, End: 200}},
		Rejections: []partition.Rejection{{
			TargetID:    "e2xyzB2",
			Range:       rej,
			Decomposed:  true,
			RefCoverage: 0.358,
			Confidence:  0.60,
			Reason:      partition.ReasonQuality,
		}},
	}
}

func TestToAPI(t *testing.T) {
	v := ToAPI(sampleOutcome(t), "low_coverage")

	assert.Equal(t, "1abc_A", v.SequenceID)
	assert.Equal(t, 1, v.DomainCount)
	require.Len(t, v.Domains, 1)
	assert.Equal(t, "3-150", v.Domains[0].Range)
	assert.Equal(t, "domain_level", v.Domains[0].SourceKind)
	assert.Equal(t, []string{"1-2", "151-200"}, v.UnassignedRanges)
	assert.Equal(t, "low_coverage", v.Quality)
	require.Len(t, v.Rejections, 1)
	assert.Equal(t, "quality_rejected", v.Rejections[0].Reason)
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, ToAPI(sampleOutcome(t), "good")))

	var got api.PartitionV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1abc_A", got.SequenceID)
	assert.Equal(t, 0.74, got.Coverage)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, ToAPI(sampleOutcome(t), "good"), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "sequence_id\t"))
	assert.Contains(t, lines[1], "1abc_A_d1\t3-150\t148")
	assert.True(t, strings.HasPrefix(lines[2], "# coverage=0.740"))
	assert.Contains(t, lines[2], "unassigned=1-2,151-200")
}

func TestFormatSummaryRow(t *testing.T) {
	row := FormatSummaryRow(ToAPI(sampleOutcome(t), "low_coverage"))
	assert.Equal(t, "1abc_A\t200\t1\t0.740\tlow_coverage", row)
}

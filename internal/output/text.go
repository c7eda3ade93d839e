// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"dompart/pkg/api"
)

const domainHeader = "sequence_id\tdomain_id\trange\tsize\tsource\tdecomposed\treference_id\tfamily\tconfidence"

// WriteText prints one TSV line per domain, then a summary comment line with
// coverage and the unassigned remainder for curation.
func WriteText(w io.Writer, v api.PartitionV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, domainHeader); err != nil {
			return err
		}
	}
	for _, d := range v.Domains {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%t\t%s\t%s\t%.2f\n",
			v.SequenceID, d.ID, d.Range, d.Size,
			d.SourceKind, d.IsDecomposed, d.ReferenceDomainID, d.FamilyName, d.Confidence,
		)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# coverage=%.3f domains=%d quality=%s unassigned=%s\n",
		v.Coverage, v.DomainCount, v.Quality, strings.Join(v.UnassignedRanges, ","))
	return err
}

// SummaryHeader is the column line for batch summary TSVs.
const SummaryHeader = "sequence_id\tlength\tdomains\tcoverage\tquality"

// FormatSummaryRow returns the per-protein batch summary columns
// (no trailing newline).
func FormatSummaryRow(v api.PartitionV1) string {
	return fmt.Sprintf("%s\t%d\t%d\t%.3f\t%s",
		v.SequenceID, v.SequenceLength, v.DomainCount, v.Coverage, v.Quality)
}

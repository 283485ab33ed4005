// Package render formats evaluation results for the terminal and writes
// returned visualization images to disk. It never recomputes a metric; the
// backend's numbers are displayed as-is.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/util"
)

// WriteLoanResult prints a loan evaluation result. Results with an error
// status take the needs-review branch instead.
func WriteLoanResult(w io.Writer, res *api.LoanResult, verbose bool) {
	if res.Status != api.StatusSuccess {
		WriteErrorPanel(w, res.Message, res.Traceback, verbose)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Loan Fairness Evaluation\n")
	fmt.Fprintf(w, "  ========================\n")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Overall\n")
	fmt.Fprintf(w, "  -------\n")
	fmt.Fprintf(w, "  Total records:     %d\n", res.Metrics.Overall.TotalRecords)
	fmt.Fprintf(w, "  Approval rate:     %s\n", util.FormatPercent(res.Metrics.Overall.ApprovalRate))
	fmt.Fprintf(w, "  Accuracy:          %s\n", util.FormatMetric(res.Metrics.Overall.Accuracy))
	fmt.Fprintln(w)

	if len(res.Metrics.FairnessMetrics) > 0 {
		fmt.Fprintf(w, "  Fairness Metrics\n")
		fmt.Fprintf(w, "  ----------------\n")
		for _, name := range sortedKeys(res.Metrics.FairnessMetrics) {
			fmt.Fprintf(w, "  %-34s %s\n", name, util.FormatMetric(res.Metrics.FairnessMetrics[name]))
		}
		fmt.Fprintln(w)
	}

	if len(res.Metrics.ByGroup) > 0 {
		fmt.Fprintf(w, "  By Group\n")
		fmt.Fprintf(w, "  --------\n")
		groups := make([]string, 0, len(res.Metrics.ByGroup))
		for g := range res.Metrics.ByGroup {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			metrics := res.Metrics.ByGroup[g]
			if rate, ok := metrics["approval_rate"]; ok {
				fmt.Fprintf(w, "  %-18s approval %s\n", g, util.FormatPercent(rate))
			} else {
				fmt.Fprintf(w, "  %s\n", g)
			}
		}
		fmt.Fprintln(w)
	}

	writeFlags(w, res.Metrics.Flags)
	writeRecommendations(w, res.Recommendations)
}

// WriteErrorPanel prints the needs-review panel for a server-reported
// evaluation failure. This is distinct from transport errors, which never
// reach rendering.
func WriteErrorPanel(w io.Writer, message, traceback string, verbose bool) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Evaluation Needs Review\n")
	fmt.Fprintf(w, "  =======================\n")
	fmt.Fprintln(w)
	if message == "" {
		message = "the backend reported an evaluation failure"
	}
	fmt.Fprintf(w, "  %s\n", message)
	if verbose && traceback != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Server traceback:\n%s\n", traceback)
	}
	fmt.Fprintln(w)
}

func writeFlags(w io.Writer, flags []string) {
	if len(flags) == 0 {
		return
	}
	fmt.Fprintf(w, "  Flags\n")
	fmt.Fprintf(w, "  -----\n")
	for _, f := range flags {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	fmt.Fprintln(w)
}

func writeRecommendations(w io.Writer, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(w, "  Recommendations\n")
	fmt.Fprintf(w, "  ---------------\n")
	for _, r := range recs {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	fmt.Fprintln(w)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/util"
)

// NoBiasCaption is shown when the backend reports a zero bias score.
const NoBiasCaption = "No bias detected"

// WriteFaceResult prints a facial-recognition evaluation result.
func WriteFaceResult(w io.Writer, res *api.FaceResult, verbose bool) {
	if res.Status != api.StatusSuccess {
		WriteErrorPanel(w, res.Message, res.Traceback, verbose)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Face Recognition Bias Evaluation\n")
	fmt.Fprintf(w, "  ================================\n")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Accuracy:          %s\n", util.FormatMetric(res.Metrics.Accuracy))
	if res.Metrics.Bias == 0 {
		fmt.Fprintf(w, "  Bias:              %s\n", NoBiasCaption)
	} else {
		fmt.Fprintf(w, "  Bias:              %s\n", util.FormatMetric(res.Metrics.Bias))
	}
	if res.ModelUsed != "" {
		fmt.Fprintf(w, "  Model used:        %s\n", res.ModelUsed)
	}
	if len(res.UsedAugmentations) > 0 {
		fmt.Fprintf(w, "  Augmentations:     %s\n", strings.Join(res.UsedAugmentations, ", "))
	}
	fmt.Fprintln(w)

	overall := res.Metrics.DetailedMetrics.Overall
	fmt.Fprintf(w, "  Overall\n")
	fmt.Fprintf(w, "  -------\n")
	writeRates(w, "all pairs", overall)
	fmt.Fprintln(w)

	writeRatesTable(w, "By Group", res.Metrics.DetailedMetrics.ByGroup)
	writeRatesTable(w, "By Augmentation", res.Metrics.DetailedMetrics.ByAugmentation)

	writeRecommendations(w, res.Recommendations)
}

func writeRatesTable(w io.Writer, title string, rates map[string]api.FaceRates) {
	if len(rates) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", len(title)))
	names := make([]string, 0, len(rates))
	for n := range rates {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		writeRates(w, n, rates[n])
	}
	fmt.Fprintln(w)
}

func writeRates(w io.Writer, label string, r api.FaceRates) {
	fmt.Fprintf(w, "  %-18s FMR=%s  FNMR=%s  accuracy=%s\n",
		label, util.FormatMetric(r.FMR), util.FormatMetric(r.FNMR), util.FormatMetric(r.Accuracy))
}

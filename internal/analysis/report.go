package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"namesake/domain/core"
	"namesake/internal/errors"
)

// Report bundles every analysis artifact for one run
type Report struct {
	RunID       core.RunID        `json:"run_id"`
	GeneratedAt core.Timestamp    `json:"generated_at"`
	OutcomeKey  string            `json:"outcome_key"`
	SampleSize  int               `json:"sample_size"`
	Screens     []ScreenResult    `json:"screens"`
	Findings    []ScreenResult    `json:"findings"`
	ANOVA       []ANOVAResult     `json:"anova,omitempty"`
	Regression  *RegressionResult `json:"regression,omitempty"`
	Clusters    *ClusterResult    `json:"clusters,omitempty"`
	Alpha       float64           `json:"alpha"`
}

// NewReport creates a report shell for the current run
func NewReport(outcomeKey string, sampleSize int, alpha float64) *Report {
	return &Report{
		RunID:       core.RunID(core.NewID()),
		GeneratedAt: core.Now(),
		OutcomeKey:  outcomeKey,
		SampleSize:  sampleSize,
		Alpha:       alpha,
	}
}

// WriteJSON writes the report as indented JSON to dir/name.json
func (r *Report) WriteJSON(dir, name string) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal report")
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write JSON report")
	}
	return path, nil
}

// WriteMarkdown writes the report as Markdown to dir/name.md and a rendered
// HTML copy to dir/name.html
func (r *Report) WriteMarkdown(dir, name string) (string, error) {
	md := r.renderMarkdown()
	mdPath := filepath.Join(dir, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write Markdown report")
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	rendered := markdown.ToHTML([]byte(md), p, renderer)
	htmlPath := filepath.Join(dir, name+".html")
	if err := os.WriteFile(htmlPath, rendered, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write HTML report")
	}
	return mdPath, nil
}

// renderMarkdown produces the human-readable report body
func (r *Report) renderMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Nominative Analysis Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Time().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- Outcome: `%s`\n", r.OutcomeKey)
	fmt.Fprintf(&b, "- Sample size: %d\n", r.SampleSize)
	fmt.Fprintf(&b, "- FDR alpha: %.2f\n\n", r.Alpha)

	fmt.Fprintf(&b, "## Findings (q < %.2f)\n\n", r.Alpha)
	if len(r.Findings) == 0 {
		b.WriteString("No features survived FDR correction.\n\n")
	} else {
		b.WriteString("| Feature | Method | Effect | p | q | Signal |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "| %s | %s | %.3f | %.4f | %.4f | %s |\n",
				f.FeatureKey, f.Method, f.EffectSize, f.PValue, f.QValue, f.Signal)
		}
		b.WriteString("\n")
	}

	if len(r.ANOVA) > 0 {
		b.WriteString("## Group Differences (one-way ANOVA)\n\n")
		b.WriteString("| Feature | F | p | eta^2 | Groups | N |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, a := range r.ANOVA {
			fmt.Fprintf(&b, "| %s | %.3f | %.4f | %.3f | %d | %d |\n",
				a.FeatureKey, a.FStatistic, a.PValue, a.EtaSquared, a.Groups, a.SampleSize)
		}
		b.WriteString("\n")
	}

	if r.Regression != nil {
		fmt.Fprintf(&b, "## Regression Screen (R² = %.3f, N = %d)\n\n", r.Regression.RSquared, r.Regression.SampleSize)
		b.WriteString("| Feature | Coefficient |\n|---|---|\n")
		fmt.Fprintf(&b, "| (intercept) | %.4f |\n", r.Regression.Intercept)
		for _, key := range r.Regression.FeatureKeys {
			fmt.Fprintf(&b, "| %s | %.4f |\n", key, r.Regression.Coefficients[key])
		}
		b.WriteString("\n")
	}

	if r.Clusters != nil {
		fmt.Fprintf(&b, "## Clusters (k = %d, inertia = %.2f)\n\n", r.Clusters.K, r.Clusters.Inertia)
		for c, size := range r.Clusters.Sizes {
			fmt.Fprintf(&b, "- Cluster %d: %d members\n", c, size)
		}
		b.WriteString("\n")
	}

	return b.String()
}

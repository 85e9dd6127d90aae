// Package report renders a pipeline report as a human-readable
// Markdown brief, with an HTML variant for embedding.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"civitrack/app"
)

// componentOrder keeps the brief's component table stable.
var componentOrder = []string{
	"promise_keeping",
	"transparency",
	"constituent_alignment",
	"attendance",
	"donor_independence",
}

// Markdown renders the analyst brief for one report.
func Markdown(r app.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accountability Report: %s\n\n", r.OfficialID)
	fmt.Fprintf(&b, "**Overall score:** %.1f (grade %s), trend %s\n\n",
		r.Scorecard.OverallScore, r.Scorecard.Grade, r.Scorecard.Trend)

	b.WriteString("## Components\n\n")
	b.WriteString("| Component | Score | Weight | Contribution |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, name := range orderedComponents(r) {
		c := r.Scorecard.Components[name]
		fmt.Fprintf(&b, "| %s | %.1f | %d%% | %.1f |\n",
			strings.ReplaceAll(name, "_", " "), c.Score, c.Weight, c.WeightedContribution)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Red flags (%d)\n\n", r.RedFlags.TotalRedFlags)
	if r.RedFlags.TotalRedFlags == 0 {
		b.WriteString("None detected.\n\n")
	}
	for _, f := range r.RedFlags.Flags {
		fmt.Fprintf(&b, "- **[%s]** %s: %s\n", f.Severity, f.Title, f.Description)
	}
	if r.RedFlags.TotalRedFlags > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Donor influence (score %.1f)\n\n", r.Influence.InfluenceScore)
	for _, ind := range r.Influence.TopIndustries {
		fmt.Fprintf(&b, "- %s: $%.0f donated, %.1f%% vote alignment over %d related votes\n",
			ind.Industry, ind.TotalDonations, ind.VotingAlignment, ind.RelatedVotesCount)
	}
	b.WriteString("\n")

	s := r.Promises.Summary
	fmt.Fprintf(&b, "## Promises (%d tracked, keeping score %.1f)\n\n", s.TotalPromises, s.PromiseKeepingScore)
	fmt.Fprintf(&b, "kept %d / broken %d / in progress %d / not addressed %d\n",
		s.Kept, s.Broken, s.InProgress, s.NotAddressed)

	return b.String()
}

// HTML renders the brief to HTML.
func HTML(r app.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(Markdown(r)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.Render(doc, renderer)
}

// orderedComponents returns the known components in fixed order plus
// any extras sorted by name.
func orderedComponents(r app.Report) []string {
	seen := map[string]bool{}
	var names []string
	for _, name := range componentOrder {
		if _, ok := r.Scorecard.Components[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range r.Scorecard.Components {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

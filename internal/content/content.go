// Package content holds the compiled-in demo material and assembles it into a
// view tree.
package content

import (
	"fmt"

	"github.com/leapstack-labs/analystdemo/pkg/core"
	"github.com/leapstack-labs/analystdemo/pkg/view"
)

// Title is the page title.
const Title = "Tasty Bytes Cortex Analyst Demo"

// Section names in display order.
const (
	SectionDemoVideo     = "🎥 Demo Video"
	SectionExamples      = "💡 Example Queries"
	SectionSampleResults = "📊 Sample Results"
	SectionArchitecture  = "🏗️ Architecture"
	SectionSetupGuide    = "🚀 Setup Guide"
	SectionAbout         = "ℹ️ About"
)

// SectionCount is the number of top-level sections BuildView produces.
const SectionCount = 6

// BuildView assembles the demo page. It depends only on compiled-in literals,
// so every call returns a structurally identical tree.
func BuildView() *core.ViewTree {
	return view.New(Title).
		Header(page("header.md")).
		Section(SectionDemoVideo, func(s *view.SectionBuilder) {
			s.Markdown(page("demo_video.md"))
			s.Notice(page("video_placeholder.md"))
		}).
		Section(SectionExamples, func(s *view.SectionBuilder) {
			s.Markdown(page("examples_intro.md"))
			for i, q := range exampleQueries {
				addExample(s, i+1, q)
			}
			s.Markdown(page("examples_more.md"))
		}).
		Section(SectionSampleResults, func(s *view.SectionBuilder) {
			s.Markdown(page("results_intro.md"))
			s.Markdown("### Query: 'Which countries have the highest number of customers?'")
			s.Table(SampleCustomerCounts, SampleCustomerCounts.Name())
			s.Divider()
			s.Markdown("### Query: 'Show me the top 3 customers by total sales'")
			s.Table(SampleTopCustomers, SampleTopCustomers.Name())
			s.Divider()
			s.Notice(page("results_tip.md"))
		}).
		Section(SectionArchitecture, func(s *view.SectionBuilder) {
			s.Markdown(page("architecture_intro.md"))
			s.Code(page("architecture_diagram.txt"), "")
			s.Markdown(page("architecture_components.md"))
		}).
		Section(SectionSetupGuide, func(s *view.SectionBuilder) {
			s.Markdown(page("setup_guide.md"))
		}).
		Section(SectionAbout, func(s *view.SectionBuilder) {
			s.Markdown(page("about.md"))
		}).
		MustBuild()
}

// ExampleTitle is the accordion title for the i-th (1-based) example.
func ExampleTitle(i int, q core.ExampleQuery) string {
	return fmt.Sprintf("Example %d: %s", i, q.Question)
}

// addExample appends one accordion. Only the first example starts expanded.
func addExample(s *view.SectionBuilder, i int, q core.ExampleQuery) {
	s.Accordion(ExampleTitle(i, q), i == 1, func(a *view.SectionBuilder) {
		a.Markdown("**Natural Language Query:**")
		a.Code(q.Question, "")
		a.Markdown("**Generated SQL:**")
		a.Code(q.SQL, "sql")
		a.Markdown("**Result:**")
		a.Markdown("`" + q.Result + "`")
	})
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page renders the full comparison page.
func Page(p ComparePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>UFC Fighter Comparison</title>`)
		h.raw(`<link rel="stylesheet" href="/static/style.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		h.raw(`</head><body><div class="layout">`)
		if h.err != nil {
			return h.err
		}
		if err := Sidebar(p.Fighters).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`<main><h1>🥊 UFC Fighter Comparison</h1>`)
		h.raw(`<p class="lead">Select two fighters and a statistic to see how they stack up against each other.</p>`)
		if h.err != nil {
			return h.err
		}
		if err := CompareContent(p).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></div></body></html>`)
		return h.err
	})
}

// Sidebar renders the about and how-to panel.
func Sidebar(fighters int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		h.raw(`<aside class="sidebar">`)
		h.raw(`<h2>ℹ️ About</h2><p class="info">This app allows you to compare the statistics of two UFC fighters head-to-head across a variety of metrics.</p>`)
		h.raw(`<h3>How to Use</h3><ol>`)
		h.raw(`<li>Select <strong>Fighter 1</strong> from the first dropdown.</li>`)
		h.raw(`<li>Select <strong>Fighter 2</strong> from the second dropdown.</li>`)
		h.raw(`<li>Choose a <strong>Feature to Compare</strong>.</li>`)
		h.raw(`<li>View the results and detailed stats below.</li></ol>`)
		h.raw(`<h3>Data Source</h3><p>The data is from a public Kaggle dataset: `)
		h.raw(`<a href="https://www.kaggle.com/datasets/rajeevw/ufcdata">UFC Fighters Statistics</a>.</p>`)
		h.rawf(`<p class="muted">%d fighters loaded.</p>`, fighters)
		h.raw(`</aside>`)
		return h.err
	})
}

// CompareContent is the swappable part of the page: selectors and results.
// htmx requests receive only this fragment.
func CompareContent(p ComparePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		h.raw(`<div id="compare">`)
		h.raw(`<form class="selectors" method="get" action="/" hx-get="/" hx-target="#compare" hx-swap="outerHTML" hx-trigger="change" hx-push-url="true">`)
		selectBox(h, "fighter1", "Select Fighter 1", p.Selection.Fighter1, p.Selection.Fighter1Options)
		selectBox(h, "fighter2", "Select Fighter 2", p.Selection.Fighter2, p.Selection.Fighter2Options)
		featureSelect(h, p.Selection.Feature, p.Selection.Features)
		h.raw(`<noscript><button type="submit">Compare</button></noscript>`)
		h.raw(`</form><hr>`)
		if h.err != nil {
			return h.err
		}
		if err := HeadToHead(p.Comparison).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`<hr>`)
		if h.err != nil {
			return h.err
		}
		if err := DetailsTable(p.Details).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`<p class="links">`)
		h.attrLink("Share this comparison", buildCompareURL(p.Selection))
		h.raw(` · `)
		h.attrLink("Download details (CSV)", buildDetailsExportURL("csv", p.Selection))
		h.raw(`</p></div>`)
		return h.err
	})
}

// HeadToHead renders the two metric cards.
func HeadToHead(c ComparisonView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		h.raw(`<section class="head-to-head"><h2>📊 Head-to-Head: `)
		h.text(c.Label)
		h.raw(`</h2><div class="metrics">`)
		metricCard(h, c.Label, c.A)
		metricCard(h, c.Label, c.B)
		h.raw(`</div></section>`)
		return h.err
	})
}

// DetailsTable renders the fighter details table.
func DetailsTable(d DetailsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		h.raw(`<section class="details"><h3>Fighter Details</h3>`)
		if len(d.Rows) == 0 {
			h.raw(`<p class="muted">No details available.</p></section>`)
			return h.err
		}
		h.raw(`<table><thead><tr><th>name</th>`)
		for _, c := range d.Columns {
			h.raw(`<th>`)
			h.text(c)
			h.raw(`</th>`)
		}
		h.raw(`</tr></thead><tbody>`)
		for _, row := range d.Rows {
			h.raw(`<tr><th scope="row">`)
			h.text(row.Name)
			h.raw(`</th>`)
			for _, cell := range row.Cells {
				h.raw(`<td>`)
				h.text(cell)
				h.raw(`</td>`)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table></section>`)
		return h.err
	})
}

func metricCard(h *writer, label string, m MetricView) {
	h.raw(`<div class="metric"`)
	h.attr("data-outcome", m.Outcome)
	h.raw(`><h3>`)
	h.text(m.Fighter)
	h.raw(`</h3><div class="metric-label">`)
	h.text(label)
	h.raw(`</div><div class="metric-value">`)
	h.text(m.Value)
	h.raw(`</div>`)
	if m.Delta != "" {
		h.raw(`<div`)
		h.attr("class", deltaClass(m.Outcome))
		h.raw(`>`)
		h.text(deltaArrow(m.Delta) + " " + m.Delta)
		h.raw(`</div>`)
	}
	h.raw(`</div>`)
}

func selectBox(h *writer, name, label, selected string, options []string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(`<select`)
	h.attr("name", name)
	h.raw(`>`)
	for _, o := range options {
		option(h, o, o, o == selected)
	}
	h.raw(`</select></label>`)
}

func featureSelect(h *writer, selected string, features []FeatureOption) {
	h.raw(`<label>Select Feature to Compare<select name="feature">`)
	for _, f := range features {
		option(h, f.Name, f.Label, f.Name == selected)
	}
	h.raw(`</select></label>`)
}

func option(h *writer, value, label string, selected bool) {
	h.raw(`<option`)
	h.attr("value", value)
	if selected {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</option>`)
}

func (h *writer) attrLink(label string, href templ.SafeURL) {
	h.raw(`<a`)
	h.attr("href", string(href))
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

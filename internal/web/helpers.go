package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/web/templates"
)

// selectionFromQuery reads fighter1, fighter2 and feature from the URL.
func selectionFromQuery(r *http.Request) domain.Selection {
	q := r.URL.Query()
	return domain.Selection{
		Fighter1: q.Get("fighter1"),
		Fighter2: q.Get("fighter2"),
		Feature:  q.Get("feature"),
	}
}

// buildComparisonView maps a comparison result onto the metric cards.
func buildComparisonView(res domain.ComparisonResult) templates.ComparisonView {
	return templates.ComparisonView{
		Feature: res.Feature,
		Label:   domain.FeatureLabel(res.Feature),
		Numeric: res.Numeric,
		A:       buildMetricView(res, true),
		B:       buildMetricView(res, false),
	}
}

func buildMetricView(res domain.ComparisonResult, a bool) templates.MetricView {
	side := res.B
	if a {
		side = res.A
	}
	return templates.MetricView{
		Fighter: side.Fighter,
		Found:   side.Found,
		Value:   res.DisplayValue(a),
		Delta:   res.DisplayDelta(a),
		Outcome: res.Outcome(a).String(),
	}
}

func buildDetailsView(table domain.DetailsTable) templates.DetailsView {
	view := templates.DetailsView{Columns: table.Columns}
	for _, row := range table.Rows {
		view.Rows = append(view.Rows, templates.DetailsRowView{Name: row.Name, Cells: row.Cells})
	}
	return view
}

func buildFeatureOptions(features []string) []templates.FeatureOption {
	opts := make([]templates.FeatureOption, 0, len(features))
	for _, f := range features {
		opts = append(opts, templates.FeatureOption{Name: f, Label: domain.FeatureLabel(f)})
	}
	return opts
}

func missedCount(res domain.ComparisonResult) int {
	n := 0
	if !res.A.Found {
		n++
	}
	if !res.B.Found {
		n++
	}
	return n
}

// writeJSON encodes v before writing so an encode failure still yields a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error("failed to encode json response", "error", err)
		w.Header().Del("Content-Disposition")
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

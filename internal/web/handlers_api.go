package web

import (
	"errors"
	"net/http"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

type apiFeature struct {
	Name          string `json:"name"`
	Label         string `json:"label"`
	LowerIsBetter bool   `json:"lower_is_better"`
}

type apiSide struct {
	Name    string   `json:"name"`
	Found   bool     `json:"found"`
	Value   any      `json:"value"`
	Display string   `json:"display"`
	Delta   *float64 `json:"delta,omitempty"`
	Outcome string   `json:"outcome"`
}

type apiComparison struct {
	Feature       string  `json:"feature"`
	Label         string  `json:"label"`
	Numeric       bool    `json:"numeric"`
	LowerIsBetter bool    `json:"lower_is_better"`
	Fighter1      apiSide `json:"fighter1"`
	Fighter2      apiSide `json:"fighter2"`
}

type apiDetails struct {
	Columns []string        `json:"columns"`
	Rows    []apiDetailsRow `json:"rows"`
}

type apiDetailsRow struct {
	Name  string   `json:"name"`
	Cells []string `json:"cells"`
}

func (s *Server) handleAPIFighters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"fighters": s.engine.FighterNames(),
	})
}

func (s *Server) handleAPIFeatures(w http.ResponseWriter, r *http.Request) {
	features := s.engine.Features()
	out := make([]apiFeature, 0, len(features))
	for _, f := range features {
		out = append(out, apiFeature{Name: f, Label: domain.FeatureLabel(f), LowerIsBetter: domain.LowerIsBetter(f)})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"features": out,
		"default":  domain.DefaultFeature(features),
	})
}

func (s *Server) handleAPICompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := selectionFromQuery(r)
	if sel.Feature == "" {
		sel.Feature = domain.DefaultFeature(s.engine.Features())
	}

	res, err := s.engine.CompareByName(sel.Fighter1, sel.Fighter2, sel.Feature)
	if errors.Is(err, domain.ErrUnknownFeature) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.RecordComparison(ctx, ports.ComparisonEvent{
		Feature:        res.Feature,
		Numeric:        res.Numeric,
		FightersMissed: missedCount(res),
		Source:         "api",
	})
	s.writeJSON(w, http.StatusOK, buildAPIComparison(res))
}

func (s *Server) handleAPIDetails(w http.ResponseWriter, r *http.Request) {
	table := s.engine.Details(r.URL.Query()["fighter"]...)
	s.writeJSON(w, http.StatusOK, buildAPIDetails(table))
}

func buildAPIComparison(res domain.ComparisonResult) apiComparison {
	return apiComparison{
		Feature:       res.Feature,
		Label:         domain.FeatureLabel(res.Feature),
		Numeric:       res.Numeric,
		LowerIsBetter: res.LowerIsBetter,
		Fighter1:      buildAPISide(res, true),
		Fighter2:      buildAPISide(res, false),
	}
}

func buildAPISide(res domain.ComparisonResult, a bool) apiSide {
	side, delta := res.B, res.RoundedDeltaB()
	if a {
		side, delta = res.A, res.RoundedDeltaA()
	}
	out := apiSide{
		Name:    side.Fighter,
		Found:   side.Found,
		Value:   jsonValue(side.Value),
		Display: res.DisplayValue(a),
		Outcome: res.Outcome(a).String(),
	}
	if res.Numeric {
		out.Delta = &delta
	}
	return out
}

// jsonValue renders absent cells as null, numbers as numbers, text as strings.
func jsonValue(v domain.Value) any {
	if v.IsAbsent() {
		return nil
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return v.String()
}

func buildAPIDetails(table domain.DetailsTable) apiDetails {
	out := apiDetails{Columns: table.Columns, Rows: make([]apiDetailsRow, 0, len(table.Rows))}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for _, row := range table.Rows {
		out.Rows = append(out.Rows, apiDetailsRow{Name: row.Name, Cells: row.Cells})
	}
	return out
}

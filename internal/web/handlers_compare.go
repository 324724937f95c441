package web

import (
	"context"
	"net/http"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
	"github.com/emiliopalmerini/ufcompare/internal/shared/middleware"
	"github.com/emiliopalmerini/ufcompare/internal/web/templates"
)

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requested := selectionFromQuery(r)
	sel := s.engine.Normalize(requested)
	if requested.Feature != "" && requested.Feature != sel.Feature {
		s.logger.Warn("unknown feature, using default", "feature", requested.Feature, "default", sel.Feature)
	}

	page := s.buildComparePage(ctx, sel, "web")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if middleware.IsHTMX(r) {
		_ = templates.CompareContent(page).Render(ctx, w)
		return
	}
	_ = templates.Page(page).Render(ctx, w)
}

func (s *Server) buildComparePage(ctx context.Context, sel domain.Selection, source string) templates.ComparePage {
	opts := s.engine.Options(sel)
	page := templates.ComparePage{
		Fighters: len(opts.Fighter1),
		Selection: templates.SelectionView{
			Fighter1:        sel.Fighter1,
			Fighter2:        sel.Fighter2,
			Feature:         sel.Feature,
			Fighter1Options: opts.Fighter1,
			Fighter2Options: opts.Fighter2,
			Features:        buildFeatureOptions(opts.Features),
		},
	}

	if sel.Feature != "" {
		res, err := s.engine.CompareByName(sel.Fighter1, sel.Fighter2, sel.Feature)
		if err == nil {
			page.Comparison = buildComparisonView(res)
			s.metrics.RecordComparison(ctx, ports.ComparisonEvent{
				Feature:        res.Feature,
				Numeric:        res.Numeric,
				FightersMissed: missedCount(res),
				Source:         source,
			})
		}
	}
	page.Details = buildDetailsView(s.engine.Details(sel.Fighter1, sel.Fighter2))
	return page
}

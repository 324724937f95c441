package web

import (
	"net/http"
	"strings"
	"testing"
)

func TestHandleCompare_Defaults(t *testing.T) {
	rec := get(t, testServer(t), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<option value="Jon Jones" selected>Jon Jones</option>`,
		`<option value="Anderson Silva" selected>Anderson Silva</option>`,
		`<option value="losses" selected>Losses</option>`,
		"Head-to-Head: Losses",
		"1.00",
		"5.00",
		"↓ -4.00",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestHandleCompare_HigherIsBetter(t *testing.T) {
	rec := get(t, testServer(t), "/?fighter1=Israel+Adesanya&fighter2=Jon+Jones&feature=significant_strikes_landed_per_minute")

	body := rec.Body.String()
	if !strings.Contains(body, "-0.36") {
		t.Error("expected delta -0.36 for Adesanya")
	}
	if !strings.Contains(body, `<option value="Israel Adesanya" selected>`) {
		t.Error("expected fighter 1 kept")
	}
	idx := strings.Index(body, `data-outcome="worse"`)
	if idx < 0 || idx > strings.Index(body, `data-outcome="better"`) {
		t.Error("expected Adesanya framed worse before Jones framed better")
	}
}

func TestHandleCompare_HTMXFragment(t *testing.T) {
	rec := get(t, testServer(t), "/?feature=stance", "HX-Request", "true")

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("expected fragment for htmx request")
	}
	if !strings.HasPrefix(body, `<div id="compare">`) {
		t.Errorf("expected compare fragment, got %q", body)
	}
	if !strings.Contains(body, "Orthodox") || !strings.Contains(body, "Southpaw") {
		t.Error("expected raw stance values")
	}
}

func TestHandleCompare_UnknownFeatureFallsBack(t *testing.T) {
	rec := get(t, testServer(t), "/?feature=elbows")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Head-to-Head: Losses") {
		t.Error("expected default feature")
	}
}

func TestHandleCompare_MissingCellIsNotNumeric(t *testing.T) {
	rec := get(t, testServer(t), "/?fighter1=Jon+Jones&fighter2=Anderson+Silva&feature=reach_in_cm")

	body := rec.Body.String()
	if !strings.Contains(body, "215.9") || !strings.Contains(body, "N/A") {
		t.Error("expected raw value and N/A")
	}
	if strings.Contains(body, `class="delta`) {
		t.Error("expected no delta for missing cell")
	}
}

func TestBuildComparePage_Details(t *testing.T) {
	s := testServer(t)
	sel := s.engine.DefaultSelection()

	page := s.buildComparePage(t.Context(), sel, "web")

	if len(page.Details.Rows) != 2 {
		t.Fatalf("expected 2 detail rows, got %d", len(page.Details.Rows))
	}
	if page.Details.Rows[0].Name != "Jon Jones" {
		t.Errorf("expected dataset order, got %s first", page.Details.Rows[0].Name)
	}
	for _, opt := range page.Selection.Fighter2Options {
		if opt == sel.Fighter1 {
			t.Error("expected fighter 2 options to exclude fighter 1")
		}
	}
}

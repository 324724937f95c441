package domain

import (
	"reflect"
	"testing"
)

func TestAvailableFeatures_PresentOnlyInCandidateOrder(t *testing.T) {
	ds := testDataset(t)

	got := AvailableFeatures(ds, CandidateFeatures)
	want := []string{"reach_in_cm", "stance", "significant_strikes_absorbed_per_minute", "wins", "losses"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailableFeatures_DropsDuplicates(t *testing.T) {
	ds := testDataset(t)

	got := AvailableFeatures(ds, []string{"wins", "losses", "wins", "nope", "losses"})
	want := []string{"wins", "losses"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailableFeatures_Idempotent(t *testing.T) {
	ds := testDataset(t)

	first := AvailableFeatures(ds, CandidateFeatures)
	second := AvailableFeatures(ds, CandidateFeatures)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected same output, got %v and %v", first, second)
	}
}

func TestDefaultFeature(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     string
	}{
		{"full list", CandidateFeatures, "significant_strikes_landed_per_minute"},
		{"exactly five", []string{"a", "b", "c", "d", "e"}, "a"},
		{"six", []string{"a", "b", "c", "d", "e", "f"}, "f"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultFeature(tt.features); got != tt.want {
				t.Errorf("DefaultFeature() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLowerIsBetter(t *testing.T) {
	for _, f := range CandidateFeatures {
		want := f == "significant_strikes_absorbed_per_minute" || f == "losses"
		if got := LowerIsBetter(f); got != want {
			t.Errorf("LowerIsBetter(%q) = %v, want %v", f, got, want)
		}
	}
	if LowerIsBetter("Losses") {
		t.Error("expected case-sensitive match")
	}
	if !LowerIsBetter("total_losses_by_ko") {
		t.Error("expected substring match")
	}
}

func TestFeatureLabel(t *testing.T) {
	tests := map[string]string{
		"height_cm": "Height Cm",
		"significant_strikes_landed_per_minute":   "Significant Strikes Landed Per Minute",
		"average_takedowns_landed_per_15_minutes": "Average Takedowns Landed Per 15 Minutes",
		"wins": "Wins",
	}
	for in, want := range tests {
		if got := FeatureLabel(in); got != want {
			t.Errorf("FeatureLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

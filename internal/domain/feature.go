package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CandidateFeatures is the curated list of comparable statistics, in display order.
var CandidateFeatures = []string{
	"age",
	"height_cm",
	"weight_in_kg",
	"reach_in_cm",
	"stance",
	"significant_strikes_landed_per_minute",
	"significant_striking_accuracy",
	"significant_strikes_absorbed_per_minute",
	"significant_strike_defence",
	"average_takedowns_landed_per_15_minutes",
	"takedown_accuracy",
	"takedown_defense",
	"average_submissions_attempted_per_15_minutes",
	"wins",
	"losses",
	"draws",
}

// defaultFeatureIndex picks significant_strikes_landed_per_minute on the full list.
const defaultFeatureIndex = 5

var lowerIsBetterMarkers = []string{"absorbed", "losses"}

// AvailableFeatures keeps the candidates that are dataset columns, in candidate order.
func AvailableFeatures(ds *Dataset, candidates []string) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		if !ds.HasColumn(c) {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// DefaultFeature returns the feature preselected on the page.
func DefaultFeature(features []string) string {
	switch {
	case len(features) > defaultFeatureIndex:
		return features[defaultFeatureIndex]
	case len(features) > 0:
		return features[0]
	default:
		return ""
	}
}

// LowerIsBetter reports whether a smaller value is the favorable outcome.
func LowerIsBetter(feature string) bool {
	for _, m := range lowerIsBetterMarkers {
		if strings.Contains(feature, m) {
			return true
		}
	}
	return false
}

// FeatureLabel turns a column name into a title, e.g. height_cm -> Height Cm.
func FeatureLabel(feature string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(feature, "_", " "))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package domain

import "fmt"

// Engine answers comparison queries against one loaded dataset.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	ds       *Dataset
	names    []string
	features []string
}

// NewEngine precomputes the fighter and feature lists for ds.
func NewEngine(ds *Dataset) *Engine {
	return &Engine{
		ds:       ds,
		names:    ds.FighterNames(),
		features: AvailableFeatures(ds, CandidateFeatures),
	}
}

// FighterNames returns the sorted distinct fighter names.
func (e *Engine) FighterNames() []string { return append([]string(nil), e.names...) }

// Features returns the comparable features present in the dataset.
func (e *Engine) Features() []string { return append([]string(nil), e.features...) }

// HasFeature reports whether feature is one of Features.
func (e *Engine) HasFeature(feature string) bool { return containsString(e.features, feature) }

// FindByName looks a fighter up by exact name.
func (e *Engine) FindByName(name string) (*FighterRecord, bool) { return e.ds.FindByName(name) }

// CompareByName looks both fighters up and compares them. Unknown fighters
// are not an error; only an unavailable feature is.
func (e *Engine) CompareByName(fighter1, fighter2, feature string) (ComparisonResult, error) {
	if !e.HasFeature(feature) {
		return ComparisonResult{}, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
	a, _ := e.ds.FindByName(fighter1)
	b, _ := e.ds.FindByName(fighter2)
	res := Compare(a, b, feature)
	// Keep the requested names on sides that were not found.
	if a == nil {
		res.A.Fighter = fighter1
	}
	if b == nil {
		res.B.Fighter = fighter2
	}
	return res, nil
}

// Details builds the details table for the given fighters.
func (e *Engine) Details(names ...string) DetailsTable { return Details(e.ds, names...) }

// DefaultSelection returns the initial page selection.
func (e *Engine) DefaultSelection() Selection { return DefaultSelection(e.names, e.features) }

// Normalize applies defaults to a user selection.
func (e *Engine) Normalize(sel Selection) Selection { return Normalize(sel, e.names, e.features) }

// Options returns the selector contents for sel.
func (e *Engine) Options(sel Selection) SelectionOptions { return Options(sel, e.names, e.features) }

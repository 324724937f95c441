package domain

import (
	"fmt"
	"math"
)

// Outcome frames one side of a numeric comparison.
type Outcome int

const (
	Even Outcome = iota
	Better
	Worse
)

func (o Outcome) String() string {
	switch o {
	case Better:
		return "better"
	case Worse:
		return "worse"
	default:
		return "even"
	}
}

// Side is one fighter's half of a comparison.
type Side struct {
	Fighter string
	Found   bool
	Value   Value
}

// ComparisonResult is computed per request and never stored.
type ComparisonResult struct {
	Feature       string
	A             Side
	B             Side
	Numeric       bool
	DeltaA        float64 // A - B, full precision
	DeltaB        float64 // B - A, full precision
	LowerIsBetter bool
}

// Compare compares feature between two records. A nil record is a fighter
// that was not found; its side renders as N/A.
func Compare(a, b *FighterRecord, feature string) ComparisonResult {
	res := ComparisonResult{
		Feature:       feature,
		A:             side(a, feature),
		B:             side(b, feature),
		LowerIsBetter: LowerIsBetter(feature),
	}

	va, okA := res.A.Value.Float()
	vb, okB := res.B.Value.Float()
	if okA && okB {
		res.Numeric = true
		res.DeltaA = va - vb
		res.DeltaB = vb - va
	}
	return res
}

func side(r *FighterRecord, feature string) Side {
	return Side{
		Fighter: r.Name(),
		Found:   r != nil,
		Value:   r.Get(feature),
	}
}

// RoundedDeltaA is DeltaA rounded to 2 decimals.
func (r ComparisonResult) RoundedDeltaA() float64 { return round2(r.DeltaA) }

// RoundedDeltaB is DeltaB rounded to 2 decimals.
func (r ComparisonResult) RoundedDeltaB() float64 { return round2(r.DeltaB) }

// Outcome frames side A (a == true) or side B for display.
func (r ComparisonResult) Outcome(a bool) Outcome {
	if !r.Numeric {
		return Even
	}
	delta := r.DeltaB
	if a {
		delta = r.DeltaA
	}
	if r.LowerIsBetter {
		delta = -delta
	}
	switch {
	case delta > 0:
		return Better
	case delta < 0:
		return Worse
	default:
		return Even
	}
}

// DisplayValue renders a side's value: two decimals when numeric, verbatim otherwise.
func (r ComparisonResult) DisplayValue(a bool) string {
	s := r.B
	if a {
		s = r.A
	}
	if r.Numeric {
		f, _ := s.Value.Float()
		return fmt.Sprintf("%.2f", f)
	}
	return s.Value.String()
}

// DisplayDelta renders a side's delta with two decimals, or "" when non-numeric.
func (r ComparisonResult) DisplayDelta(a bool) string {
	if !r.Numeric {
		return ""
	}
	if a {
		return fmt.Sprintf("%.2f", r.RoundedDeltaA())
	}
	return fmt.Sprintf("%.2f", r.RoundedDeltaB())
}

func round2(f float64) float64 {
	r := math.Round(f*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

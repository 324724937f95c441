package domain

import (
	"math"
	"testing"
)

func TestCompare_LossesScenario(t *testing.T) {
	jones := NewFighterRecord("Jon Jones", map[string]Value{"losses": Number(1)})
	silva := NewFighterRecord("Anderson Silva", map[string]Value{"losses": Number(5)})

	res := Compare(jones, silva, "losses")

	if !res.Numeric {
		t.Fatal("expected numeric comparison")
	}
	if res.RoundedDeltaA() != -4 {
		t.Errorf("expected delta -4, got %v", res.RoundedDeltaA())
	}
	if res.RoundedDeltaB() != 4 {
		t.Errorf("expected delta 4, got %v", res.RoundedDeltaB())
	}
	if !res.LowerIsBetter {
		t.Error("expected losses to be lower-is-better")
	}
	if res.Outcome(true) != Better {
		t.Errorf("expected Jones framed better, got %v", res.Outcome(true))
	}
	if res.Outcome(false) != Worse {
		t.Errorf("expected Silva framed worse, got %v", res.Outcome(false))
	}
	if got := res.DisplayDelta(true); got != "-4.00" {
		t.Errorf("expected -4.00, got %s", got)
	}
	if got := res.DisplayValue(true); got != "1.00" {
		t.Errorf("expected 1.00, got %s", got)
	}
}

func TestCompare_StanceIsVerbatim(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"stance": Text("Orthodox")})
	b := NewFighterRecord("B", map[string]Value{"stance": Text("Southpaw")})

	res := Compare(a, b, "stance")

	if res.Numeric {
		t.Fatal("expected non-numeric comparison")
	}
	if res.DeltaA != 0 || res.DeltaB != 0 {
		t.Errorf("expected no delta, got %v / %v", res.DeltaA, res.DeltaB)
	}
	if res.DisplayValue(true) != "Orthodox" || res.DisplayValue(false) != "Southpaw" {
		t.Errorf("expected raw strings, got %q / %q", res.DisplayValue(true), res.DisplayValue(false))
	}
	if res.DisplayDelta(true) != "" {
		t.Errorf("expected empty delta, got %q", res.DisplayDelta(true))
	}
	if res.Outcome(true) != Even {
		t.Errorf("expected even framing, got %v", res.Outcome(true))
	}
}

func TestCompare_MissingFighter(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"wins": Number(10)})

	res := Compare(a, nil, "wins")

	if res.Numeric {
		t.Fatal("expected non-numeric when a fighter is missing")
	}
	if res.B.Found {
		t.Error("expected side B not found")
	}
	if res.DisplayValue(false) != NotAvailable {
		t.Errorf("expected N/A, got %q", res.DisplayValue(false))
	}
	if res.DisplayValue(true) != "10" {
		t.Errorf("expected raw value 10, got %q", res.DisplayValue(true))
	}

	both := Compare(nil, nil, "wins")
	if both.DisplayValue(true) != NotAvailable || both.DisplayValue(false) != NotAvailable {
		t.Error("expected N/A on both sides")
	}
}

func TestCompare_MissingNumericCell(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"reach_in_cm": Number(190)})
	b := NewFighterRecord("B", map[string]Value{"reach_in_cm": Absent(KindNumber)})

	res := Compare(a, b, "reach_in_cm")

	if res.Numeric {
		t.Fatal("expected non-numeric mode for a missing cell")
	}
	if res.DeltaA != 0 {
		t.Errorf("expected no partial delta, got %v", res.DeltaA)
	}
	if res.DisplayValue(false) != NotAvailable {
		t.Errorf("expected N/A, got %q", res.DisplayValue(false))
	}
}

func TestCompare_TextInNumericPositionIsNotNumeric(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"age": Number(30)})
	b := NewFighterRecord("B", map[string]Value{"age": Text("30")})

	if Compare(a, b, "age").Numeric {
		t.Error("expected text value to disable numeric mode")
	}
}

func TestCompare_SignSymmetryAndRounding(t *testing.T) {
	pairs := [][2]float64{
		{2.456, 1.111},
		{0.1, 0.2},
		{100, 100},
		{-3.333, 7.777},
		{4.005, 4},
		{1e-9, 0},
	}
	for _, p := range pairs {
		a := NewFighterRecord("A", map[string]Value{"x": Number(p[0])})
		b := NewFighterRecord("B", map[string]Value{"x": Number(p[1])})
		res := Compare(a, b, "x")

		if res.DeltaA != -res.DeltaB {
			t.Errorf("%v: expected DeltaA == -DeltaB, got %v and %v", p, res.DeltaA, res.DeltaB)
		}
		if res.RoundedDeltaA() != -res.RoundedDeltaB() {
			t.Errorf("%v: expected rounded deltas to mirror, got %v and %v", p, res.RoundedDeltaA(), res.RoundedDeltaB())
		}
		want := math.Round((p[0]-p[1])*100) / 100
		if res.RoundedDeltaA() != want {
			t.Errorf("%v: expected rounded delta %v, got %v", p, want, res.RoundedDeltaA())
		}
		if res.DeltaA != p[0]-p[1] {
			t.Errorf("%v: expected full precision delta %v, got %v", p, p[0]-p[1], res.DeltaA)
		}
	}
}

func TestCompare_NoNegativeZero(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"x": Number(1)})
	b := NewFighterRecord("B", map[string]Value{"x": Number(1.001)})

	res := Compare(a, b, "x")
	if got := res.DisplayDelta(true); got != "0.00" {
		t.Errorf("expected 0.00, got %s", got)
	}
}

func TestCompare_Idempotent(t *testing.T) {
	ds := testDataset(t)
	a, _ := ds.FindByName("Jon Jones")
	b, _ := ds.FindByName("Anderson Silva")

	first := Compare(a, b, "significant_strikes_absorbed_per_minute")
	for i := 0; i < 5; i++ {
		if got := Compare(a, b, "significant_strikes_absorbed_per_minute"); got != first {
			t.Fatalf("expected identical results, got %+v and %+v", first, got)
		}
	}
}

func TestComparisonResult_OutcomeHigherIsBetter(t *testing.T) {
	a := NewFighterRecord("A", map[string]Value{"wins": Number(20)})
	b := NewFighterRecord("B", map[string]Value{"wins": Number(10)})

	res := Compare(a, b, "wins")
	if res.LowerIsBetter {
		t.Fatal("expected wins to be higher-is-better")
	}
	if res.Outcome(true) != Better || res.Outcome(false) != Worse {
		t.Errorf("expected A better and B worse, got %v / %v", res.Outcome(true), res.Outcome(false))
	}

	tie := Compare(a, a, "wins")
	if tie.Outcome(true) != Even {
		t.Errorf("expected even on a tie, got %v", tie.Outcome(true))
	}
}

package domain

import "testing"

func testDataset(t *testing.T) *Dataset {
	t.Helper()

	columns := []Column{
		{Name: "name", Kind: KindText},
		{Name: "wins", Kind: KindNumber},
		{Name: "losses", Kind: KindNumber},
		{Name: "stance", Kind: KindText},
		{Name: "significant_strikes_absorbed_per_minute", Kind: KindNumber},
		{Name: "reach_in_cm", Kind: KindNumber},
	}
	records := []*FighterRecord{
		NewFighterRecord("Jon Jones", map[string]Value{
			"name":   Text("Jon Jones"),
			"wins":   Number(27),
			"losses": Number(1),
			"stance": Text("Orthodox"),
			"significant_strikes_absorbed_per_minute": Number(2.22),
			"reach_in_cm": Number(215.9),
		}),
		NewFighterRecord("Anderson Silva", map[string]Value{
			"name":   Text("Anderson Silva"),
			"wins":   Number(34),
			"losses": Number(11),
			"stance": Text("Southpaw"),
			"significant_strikes_absorbed_per_minute": Number(2.72),
			"reach_in_cm": Absent(KindNumber),
		}),
		NewFighterRecord("Jon Jones", map[string]Value{
			"name": Text("Jon Jones"),
			"wins": Number(99),
		}),
		NewFighterRecord("", map[string]Value{
			"wins": Number(3),
		}),
	}

	ds, err := NewDataset(columns, records)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

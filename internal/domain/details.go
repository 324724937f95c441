package domain

// DetailColumns are shown in the fighter details table, when present.
var DetailColumns = []string{"wins", "losses", "draws", "age", "stance", "height_cm", "weight_in_kg"}

// DetailsRow is one fighter row of the details table.
type DetailsRow struct {
	Name  string
	Cells []string
}

// DetailsTable is a display-only view: absent numeric cells read 0.
type DetailsTable struct {
	Columns []string
	Rows    []DetailsRow
}

// Details builds the table for every record named in names, in dataset order.
func Details(ds *Dataset, names ...string) DetailsTable {
	cols := AvailableFeatures(ds, DetailColumns)
	table := DetailsTable{Columns: cols}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	for _, rec := range ds.records {
		if _, ok := wanted[rec.name]; !ok || rec.name == "" {
			continue
		}
		row := DetailsRow{Name: rec.name, Cells: make([]string, len(cols))}
		for i, c := range cols {
			row.Cells[i] = rec.Get(c).OrZero()
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

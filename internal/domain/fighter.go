package domain

import (
	"fmt"
	"sort"
)

// NameColumn is the column identifying a fighter.
const NameColumn = "name"

// Column describes one dataset column.
type Column struct {
	Name string
	Kind Kind
}

// FighterRecord is one row of the dataset. It is never mutated after load.
type FighterRecord struct {
	name   string
	values map[string]Value
}

// NewFighterRecord builds a record from its cells. The map is copied.
func NewFighterRecord(name string, values map[string]Value) *FighterRecord {
	cells := make(map[string]Value, len(values))
	for k, v := range values {
		cells[k] = v
	}
	return &FighterRecord{name: name, values: cells}
}

// Name returns the fighter's name.
func (r *FighterRecord) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Get returns the value of a column. Missing columns and nil records read as absent text.
func (r *FighterRecord) Get(column string) Value {
	if r == nil {
		return Absent(KindText)
	}
	v, ok := r.values[column]
	if !ok {
		return Absent(KindText)
	}
	return v
}

// Dataset is the loaded, read-only fighter table.
type Dataset struct {
	columns []Column
	kinds   map[string]Kind
	records []*FighterRecord
	byName  map[string]*FighterRecord
}

// NewDataset assembles a dataset. The schema must contain the name column.
// Records missing a column get an absent value of that column's kind.
func NewDataset(columns []Column, records []*FighterRecord) (*Dataset, error) {
	kinds := make(map[string]Kind, len(columns))
	for _, c := range columns {
		kinds[c.Name] = c.Kind
	}
	if _, ok := kinds[NameColumn]; !ok {
		return nil, fmt.Errorf("%w: missing %q column", ErrInvalidDataset, NameColumn)
	}

	ds := &Dataset{
		columns: append([]Column(nil), columns...),
		kinds:   kinds,
		records: make([]*FighterRecord, 0, len(records)),
		byName:  make(map[string]*FighterRecord, len(records)),
	}
	for _, r := range records {
		rec := &FighterRecord{name: r.name, values: make(map[string]Value, len(columns))}
		for _, c := range columns {
			v, ok := r.values[c.Name]
			if !ok {
				v = Absent(c.Kind)
			}
			rec.values[c.Name] = v
		}
		ds.records = append(ds.records, rec)
		if rec.name == "" {
			continue
		}
		// First occurrence wins.
		if _, seen := ds.byName[rec.name]; !seen {
			ds.byName[rec.name] = rec
		}
	}
	return ds, nil
}

// Columns returns the schema in file order.
func (d *Dataset) Columns() []Column {
	return append([]Column(nil), d.columns...)
}

// HasColumn reports whether the dataset has the column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.kinds[name]
	return ok
}

// ColumnKind returns the declared kind of a column.
func (d *Dataset) ColumnKind(name string) (Kind, bool) {
	k, ok := d.kinds[name]
	return k, ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the rows in dataset order.
func (d *Dataset) Records() []*FighterRecord {
	return append([]*FighterRecord(nil), d.records...)
}

// FindByName returns the first record whose name matches exactly.
func (d *Dataset) FindByName(name string) (*FighterRecord, bool) {
	rec, ok := d.byName[name]
	return rec, ok
}

// Lookup is FindByName reporting a miss as ErrFighterNotFound.
func (d *Dataset) Lookup(name string) (*FighterRecord, error) {
	rec, ok := d.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFighterNotFound, name)
	}
	return rec, nil
}

// FighterNames returns the distinct non-empty names, sorted.
func (d *Dataset) FighterNames() []string {
	names := make([]string, 0, len(d.byName))
	for name := range d.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package csvfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cast"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
)

// missingMarkers are read as absent cells.
var missingMarkers = []string{"", "NA", "NaN", "nan", "N/A", "null"}

// Loader reads a fighter CSV once and caches the result for its lifetime.
type Loader struct {
	path string

	once sync.Once
	ds   *domain.Dataset
	err  error
}

// NewLoader creates a loader for the CSV at path. Nothing is read until Load.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the file on the first call and returns the cached dataset (or
// error) on every call. Concurrent first calls wait for the same parse.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.once.Do(func() {
		l.ds, l.err = l.load()
	})
	return l.ds, l.err
}

func (l *Loader) load() (*domain.Dataset, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, &domain.DataNotFoundError{Path: l.path, Err: err}
	}
	if info.IsDir() {
		return nil, &domain.DataNotFoundError{Path: l.path, Err: fmt.Errorf("%s is a directory", l.path)}
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, &domain.DataNotFoundError{Path: l.path, Err: err}
	}
	defer func() { _ = f.Close() }()

	ds, err := ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	return ds, nil
}

// ParseDataset reads a CSV with a header row into a Dataset. Integer and
// float columns become numeric columns; everything else is text.
func ParseDataset(r io.Reader) (*domain.Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingMarkers),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, df.Err)
	}

	names := df.Names()
	columns := make([]domain.Column, len(names))
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = df.Col(name)
		columns[i] = domain.Column{Name: name, Kind: columnKind(cols[i].Type())}
	}

	nameIdx := -1
	for i, c := range columns {
		if c.Name == domain.NameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: missing %q column", domain.ErrInvalidDataset, domain.NameColumn)
	}

	records := make([]*domain.FighterRecord, 0, df.Nrow())
	for row := 0; row < df.Nrow(); row++ {
		values := make(map[string]domain.Value, len(columns))
		for i, c := range columns {
			values[c.Name] = cellValue(cols[i].Elem(row), c.Kind)
		}
		name := ""
		if v := values[domain.NameColumn]; !v.IsAbsent() {
			name = v.String()
		}
		records = append(records, domain.NewFighterRecord(name, values))
	}

	return domain.NewDataset(columns, records)
}

func columnKind(t series.Type) domain.Kind {
	switch t {
	case series.Int, series.Float:
		return domain.KindNumber
	default:
		return domain.KindText
	}
}

func cellValue(e series.Element, kind domain.Kind) domain.Value {
	if e.IsNA() {
		return domain.Absent(kind)
	}
	if kind == domain.KindNumber {
		f, err := cast.ToFloat64E(e.Val())
		if err != nil {
			return domain.Absent(kind)
		}
		return domain.Number(f)
	}
	s, err := cast.ToStringE(e.Val())
	if err != nil || s == "" {
		return domain.Absent(kind)
	}
	return domain.Text(s)
}

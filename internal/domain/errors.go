package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataNotFound is returned when the dataset file cannot be opened.
	ErrDataNotFound = errors.New("data file not found")
	// ErrInvalidDataset is returned when the file is readable but is not a usable table.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrFighterNotFound is returned by Lookup when no record has the given name.
	ErrFighterNotFound = errors.New("fighter not found")
	// ErrUnknownFeature is returned when a feature is not one of the available features.
	ErrUnknownFeature = errors.New("unknown feature")
)

// DataNotFoundError carries the path that could not be read.
type DataNotFoundError struct {
	Path string
	Err  error
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("the data file %q was not found; make sure the CSV file is next to the binary or set UFC_DATA_PATH", e.Path)
}

func (e *DataNotFoundError) Is(target error) bool {
	return target == ErrDataNotFound
}

func (e *DataNotFoundError) Unwrap() error {
	return e.Err
}

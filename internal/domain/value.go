package domain

import (
	"strconv"
)

// Kind is the declared type of a dataset column.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// NotAvailable is how absent values are displayed.
const NotAvailable = "N/A"

// Value is a single cell of the dataset. A Value is either a number, a text,
// or absent. Absent values keep the kind of their column.
type Value struct {
	kind  Kind
	num   float64
	text  string
	valid bool
}

// Number returns a present numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, valid: true}
}

// Text returns a present text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s, valid: true}
}

// Absent returns a missing value belonging to a column of the given kind.
func Absent(kind Kind) Value {
	return Value{kind: kind}
}

// Kind reports the kind of the column the value belongs to.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the cell is missing.
func (v Value) IsAbsent() bool { return !v.valid }

// IsNumber reports whether the value is a present number.
func (v Value) IsNumber() bool { return v.valid && v.kind == KindNumber }

// Float returns the numeric value and whether it is a present number.
func (v Value) Float() (float64, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	return v.num, true
}

// String renders the raw value verbatim, or N/A when absent.
func (v Value) String() string {
	if !v.valid {
		return NotAvailable
	}
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

// OrZero renders absent numeric cells as 0 and everything else as String.
// Used for default-filled display views only.
func (v Value) OrZero() string {
	if !v.valid && v.kind == KindNumber {
		return "0"
	}
	return v.String()
}

// Package models holds the records that flow from the spreadsheet to the JSON document.
package models

// CellKind tells how a spreadsheet cell was populated.
type CellKind int

const (
	// CellAbsent marks a cell with no value at all.
	CellAbsent CellKind = iota
	// CellText marks a string cell, possibly empty.
	CellText
	// CellOther marks numbers, booleans, dates and error cells.
	CellOther
)

// String returns the kind name used in diagnostics.
func (k CellKind) String() string {
	switch k {
	case CellAbsent:
		return "absent"
	case CellText:
		return "text"
	case CellOther:
		return "non-text"
	default:
		return "unknown"
	}
}

// Cell is a single raw spreadsheet value. The zero value is an absent cell.
type Cell struct {
	Value string
	Kind  CellKind
}

// Text builds a present text cell.
func Text(value string) Cell {
	return Cell{Value: value, Kind: CellText}
}

// Absent builds a missing cell.
func Absent() Cell {
	return Cell{}
}

// NonText builds a cell holding a value that is not a string, keeping its rendering.
func NonText(raw string) Cell {
	return Cell{Value: raw, Kind: CellOther}
}

// IsAbsent reports whether the cell has no value.
func (c Cell) IsAbsent() bool {
	return c.Kind == CellAbsent
}

// IsText reports whether the cell holds a string.
func (c Cell) IsText() bool {
	return c.Kind == CellText
}

// RawRow is one data row of the input sheet, read once and discarded after transform.
type RawRow struct {
	Name    Cell
	Program Cell
	Origin  Cell
	Row     int // 1-based row number in the sheet
}

// Student is one exported record. Key names are the ones consumed downstream.
type Student struct {
	Name    string `json:"nom"`
	Program string `json:"carrera"`
	Origin  string `json:"origen"`
}

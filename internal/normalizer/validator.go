package normalizer

import (
	"errors"
	"fmt"

	"dadeserasmus/internal/models"
)

// Validation errors.
var (
	ErrNonTextName    = errors.New("name cell is not text")
	ErrNonTextProgram = errors.New("program cell is not text")
	ErrNonTextOrigin  = errors.New("origin cell is not text")
)

// Validator checks that the cells of a kept row can be read as text.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate rejects rows holding numbers, dates, booleans or error values.
// Absent cells are valid; they are defaulted later.
func (v *Validator) Validate(row models.RawRow) error {
	checks := []struct {
		cell models.Cell
		err  error
	}{
		{row.Name, ErrNonTextName},
		{row.Program, ErrNonTextProgram},
		{row.Origin, ErrNonTextOrigin},
	}

	for _, c := range checks {
		if c.cell.Kind == models.CellOther {
			return fmt.Errorf("%w at row %d: %q", c.err, row.Row, c.cell.Value)
		}
	}

	return nil
}

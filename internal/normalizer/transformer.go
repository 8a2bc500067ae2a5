package normalizer

import (
	"strings"

	"dadeserasmus/internal/models"
)

// Transformer turns raw sheet rows into student records.
type Transformer struct {
	normalizer *Normalizer
	validator  *Validator
}

// NewTransformer creates a transformer that corrects values through n.
func NewTransformer(n *Normalizer) *Transformer {
	return &Transformer{
		normalizer: n,
		validator:  NewValidator(),
	}
}

// Skips reports whether row is dropped without producing a record.
// A row without a name, or with a name that is only whitespace, is treated as blank.
func (t *Transformer) Skips(row models.RawRow) bool {
	if row.Name.IsAbsent() {
		return true
	}

	return row.Name.IsText() && strings.TrimSpace(row.Name.Value) == ""
}

// Transform converts one row. skipped is true when the row produced no record.
// Non-text cells in a kept row are returned as validation errors.
func (t *Transformer) Transform(row models.RawRow) (student models.Student, skipped bool, err error) {
	if row.Name.IsAbsent() {
		return models.Student{}, true, nil
	}

	if err := t.validator.Validate(row); err != nil {
		return models.Student{}, false, err
	}

	if t.Skips(row) {
		return models.Student{}, true, nil
	}

	student = models.Student{
		Name:    strings.TrimSpace(row.Name.Value),
		Program: strings.TrimSpace(t.normalizer.NormalizeProgram(textOrEmpty(row.Program))),
		Origin:  textOrEmpty(t.normalizer.NormalizeOrigin(row.Origin)),
	}

	return student, false, nil
}

// textOrEmpty trims a present cell and defaults an absent one to "".
func textOrEmpty(c models.Cell) string {
	if c.IsAbsent() {
		return ""
	}

	return strings.TrimSpace(c.Value)
}

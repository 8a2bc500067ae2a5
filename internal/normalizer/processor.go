// Package normalizer turns raw spreadsheet rows into normalized student records.
package normalizer

import (
	"fmt"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/models"
)

// Report summarizes one processing pass.
type Report struct {
	Rows              int
	Exported          int
	Skipped           int
	OriginsCorrected  int
	ProgramsCorrected int
}

// Processor handles data processing and transformation.
type Processor struct {
	normalizer  *Normalizer
	transformer *Transformer
	log         *logger.Logger
}

// NewProcessor creates a new processor instance. A nil log discards output.
func NewProcessor(n *Normalizer, log *logger.Logger) *Processor {
	if n == nil {
		n = NewNormalizer(Options{})
	}

	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		normalizer:  n,
		transformer: NewTransformer(n),
		log:         log,
	}
}

// Process transforms every row in order. The result is fully built before it is
// returned, so a failing row means no records at all.
func (p *Processor) Process(rows []models.RawRow) ([]models.Student, Report, error) {
	report := Report{Rows: len(rows)}
	students := make([]models.Student, 0, len(rows))

	for _, row := range rows {
		student, skipped, err := p.transformer.Transform(row)
		if err != nil {
			return nil, report, apperrors.Format(fmt.Sprintf("cannot convert sheet row %d", row.Row), err)
		}

		if skipped {
			report.Skipped++
			p.log.Debug("skipped row without name", "row", row.Row)

			continue
		}

		if origin := p.normalizer.NormalizeOrigin(row.Origin); origin != row.Origin {
			report.OriginsCorrected++
			p.log.Debug("corrected origin", "row", row.Row, "from", row.Origin.Value, "to", origin.Value)
		}

		if row.Program.IsText() && p.normalizer.NormalizeProgram(row.Program.Value) != row.Program.Value {
			report.ProgramsCorrected++
			p.log.Debug("corrected program", "row", row.Row, "from", row.Program.Value, "to", student.Program)
		}

		students = append(students, student)
	}

	report.Exported = len(students)

	return students, report, nil
}

// Package convert runs the spreadsheet to JSON pipeline: load, normalize, write.
package convert

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dadeserasmus/internal/config"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/normalizer"
	"dadeserasmus/internal/output"
	"dadeserasmus/internal/sheet"
)

// Result describes a completed conversion.
type Result struct {
	RunID   string
	Output  string
	Report  normalizer.Report
	Elapsed time.Duration
}

// Message is the confirmation printed after a successful run.
func (r Result) Message() string {
	return fmt.Sprintf("Exported %d students to %s", r.Report.Exported, r.Output)
}

// Converter wires the loader, the processor and the writer.
type Converter struct {
	reader    *sheet.Reader
	processor *normalizer.Processor
	log       *logger.Logger
}

// New creates a converter from the normalization settings in cfg.
func New(cfg *config.Config, log *logger.Logger) *Converter {
	if log == nil {
		log = logger.Discard()
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	builtins := normalizer.BuiltinOrigins()
	for alias, canonical := range cfg.Converter.Normalization.Origins {
		if builtin, ok := builtins[alias]; ok && builtin != canonical {
			log.Warn("configured origin alias ignored", "alias", alias, "configured", canonical, "builtin", builtin)
		}
	}

	n := normalizer.NewNormalizer(normalizer.Options{
		OriginAliases:     cfg.Converter.Normalization.Origins,
		NormalizePrograms: cfg.Converter.Normalization.Programs,
	})

	log.Debug("built origin table", "entries", n.Len(), "programs", cfg.Converter.Normalization.Programs)

	return &Converter{
		reader:    sheet.NewReader(log.With("component", "sheet")),
		processor: normalizer.NewProcessor(n, log.With("component", "normalizer")),
		log:       log,
	}
}

// Run converts the workbook at input into the JSON document at output.
// Every record is built before the output is touched, so a failed run leaves
// any previous document in place.
func (c *Converter) Run(input, outputPath string) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := c.log.With("run_id", runID)

	log.Info("loading workbook", "input", input)

	rows, err := c.reader.Load(input)
	if err != nil {
		return Result{}, err
	}

	students, report, err := c.processor.Process(rows)
	if err != nil {
		return Result{Report: report}, err
	}

	log.Info("normalized rows",
		"rows", report.Rows,
		"exported", report.Exported,
		"skipped", report.Skipped,
		"origins_corrected", report.OriginsCorrected,
		"programs_corrected", report.ProgramsCorrected,
	)

	if err := output.WriteJSON(outputPath, students); err != nil {
		return Result{Report: report}, err
	}

	result := Result{
		RunID:   runID,
		Output:  outputPath,
		Report:  report,
		Elapsed: time.Since(start),
	}

	log.Info("wrote document", "output", outputPath, "elapsed", result.Elapsed)

	return result, nil
}

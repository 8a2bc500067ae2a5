// Package main provides the workbook command, which writes the JSON document
// back into a spreadsheet with the same three columns the converter reads.
package main

import (
	"flag"
	"fmt"
	"os"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/config"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/output"
	"dadeserasmus/internal/sheet"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	inputPath := flag.String("input", "", "Path to the JSON document (default: converter output)")
	outputPath := flag.String("output", "", "Path to the workbook to write (default: workbook.output)")
	sheetName := flag.String("sheet", "", "Sheet name (default: workbook.sheet_name)")
	flag.Parse()

	log := logger.NewLogger(config.DefaultLogLevel)

	cfg, _, err := config.ResolveWithEnv(*configPath, config.DefaultEnvFile)
	if err != nil {
		fail(log, apperrors.New(apperrors.KindConfig, "cannot load configuration", err))
	}
	log.SetLevel(cfg.Converter.Logging.Level)

	input := pick(*inputPath, cfg.Converter.Output)
	dest := pick(*outputPath, cfg.Workbook.Output)
	name := pick(*sheetName, cfg.Workbook.SheetName)

	if dest == input {
		fail(log, apperrors.New(apperrors.KindConfig, "workbook output would overwrite "+input, config.ErrSameInputOutput))
	}

	students, err := output.ReadJSON(input)
	if err != nil {
		fail(log, err)
	}

	if err := sheet.WriteWorkbook(dest, name, students); err != nil {
		fail(log, err)
	}

	log.Info("wrote workbook", "output", dest, "sheet", name)
	fmt.Printf("Wrote %d students to %s\n", len(students), dest)
}

func pick(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}

func fail(log *logger.Logger, err error) {
	ge := apperrors.AsGoError(err)
	log.Error("workbook export failed", "category", ge.Category, "text_code", ge.TextCode, "error", err)
	os.Exit(apperrors.ExitCode(err))
}

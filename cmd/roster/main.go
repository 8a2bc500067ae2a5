// Package main provides the roster command, which prints the converted
// document as an aligned table for a quick review before publishing.
package main

import (
	"flag"
	"fmt"
	"os"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/config"
	"dadeserasmus/internal/formatter"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/output"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	inputPath := flag.String("input", "", "Path to the JSON document (default: converter output)")
	city := flag.String("city", "", "Only list students whose origin contains this text")
	career := flag.String("career", "", "Only list students whose program contains this text")
	asHTML := flag.Bool("html", false, "Print an HTML table instead of markdown")
	maxWidth := flag.Int("max-width", 0, "Truncate cells wider than this many columns (default: roster.max_width)")
	flag.Parse()

	log := logger.NewLogger(config.DefaultLogLevel)

	cfg, _, err := config.ResolveWithEnv(*configPath, config.DefaultEnvFile)
	if err != nil {
		fail(log, apperrors.New(apperrors.KindConfig, "cannot load configuration", err))
	}
	log.SetLevel(cfg.Converter.Logging.Level)

	input := cfg.Converter.Output
	if *inputPath != "" {
		input = *inputPath
	}

	width := cfg.Roster.MaxWidth
	if *maxWidth > 0 {
		width = *maxWidth
	}

	students, err := output.ReadJSON(input)
	if err != nil {
		fail(log, err)
	}

	log.Debug("read document", "input", input, "students", len(students))

	if *city != "" || *career != "" {
		students = formatter.FilterRoster(students, *city, *career)
		log.Debug("filtered roster", "city", *city, "career", *career, "students", len(students))
	}

	if *asHTML {
		if _, err := os.Stdout.Write(formatter.RosterHTML(students, width)); err != nil {
			fail(log, apperrors.OutputWrite("cannot write roster", err))
		}
		return
	}

	fmt.Print(formatter.FormatRoster(students, width))
	fmt.Println(formatter.ComputeStats(students).Summary())
}

func fail(log *logger.Logger, err error) {
	ge := apperrors.AsGoError(err)
	log.Error("roster failed", "category", ge.Category, "text_code", ge.TextCode, "error", err)
	os.Exit(apperrors.ExitCode(err))
}

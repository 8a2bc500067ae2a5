// Package main provides the convert command: it turns the student exchange
// workbook into the normalized JSON document used by the website.
package main

import (
	"flag"
	"fmt"
	"os"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/config"
	"dadeserasmus/internal/convert"
	"dadeserasmus/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (default: "+config.DefaultPath+" when present)")
	inputPath := flag.String("input", "", "Path to the input workbook (default: "+config.DefaultInput+")")
	outputPath := flag.String("output", "", "Path to the output JSON file (default: "+config.DefaultOutput+")")
	flag.Parse()

	log := logger.NewLogger(config.DefaultLogLevel)

	cfg, path, err := config.ResolveWithEnv(*configPath, config.DefaultEnvFile)
	if err != nil {
		fail(log, apperrors.New(apperrors.KindConfig, "cannot load configuration "+path, err))
	}

	cfg.ApplyOverrides(*inputPath, *outputPath)
	if err := cfg.Validate(); err != nil {
		fail(log, apperrors.New(apperrors.KindConfig, "invalid paths", err))
	}

	log.SetLevel(cfg.Converter.Logging.Level)
	if path != "" {
		log.Debug("loaded configuration", "path", path)
	}

	result, err := convert.New(cfg, log).Run(cfg.Converter.Input, cfg.Converter.Output)
	if err != nil {
		fail(log, err)
	}

	fmt.Println(result.Message())
}

func fail(log *logger.Logger, err error) {
	ge := apperrors.AsGoError(err)
	log.Error("conversion failed",
		"category", ge.Category,
		"text_code", ge.TextCode,
		"error", err,
	)
	os.Exit(apperrors.ExitCode(err))
}

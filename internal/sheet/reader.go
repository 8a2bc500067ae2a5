// Package sheet reads and writes the student workbook.
package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/models"
)

// Columns is the number of columns a student sheet must have: name, program, origin.
const Columns = 3

// Layout errors.
var (
	ErrNoActiveSheet = errors.New("workbook has no active sheet")
	ErrColumnCount   = errors.New("unexpected column count")
)

// Reader loads data rows from the active sheet of a workbook.
type Reader struct {
	log *logger.Logger
}

// NewReader creates a reader. A nil log discards output.
func NewReader(log *logger.Logger) *Reader {
	if log == nil {
		log = logger.Discard()
	}

	return &Reader{log: log}
}

// Load opens the workbook at path and returns its data rows in sheet order.
// Row 1 is the header and is never returned. The workbook is closed before Load returns.
func (r *Reader) Load(path string) ([]models.RawRow, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.InputNotFound(fmt.Sprintf("input file %s not found", path), err)
		}
		return nil, apperrors.InputNotFound(fmt.Sprintf("cannot access input file %s", path), err)
	}

	if info.IsDir() {
		return nil, apperrors.InputNotFound(fmt.Sprintf("input path %s is a directory", path), nil)
	}

	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, apperrors.InputNotFound(fmt.Sprintf("cannot read input file %s", path), err)
		}
		return nil, apperrors.Format(fmt.Sprintf("%s is not a valid spreadsheet", path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			r.log.Warn("failed to close workbook", "path", path, "error", closeErr)
		}
	}()

	r.log.Debug("opened workbook", "path", path, "elapsed", time.Since(start))

	rows, err := r.readActiveSheet(f)
	if err != nil {
		return nil, err
	}

	r.log.Info("loaded sheet rows", "path", path, "rows", len(rows), "elapsed", time.Since(start))

	return rows, nil
}

func (r *Reader) readActiveSheet(f *excelize.File) ([]models.RawRow, error) {
	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		return nil, apperrors.Format("cannot select sheet", ErrNoActiveSheet)
	}

	values, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.Format(fmt.Sprintf("cannot read sheet %q", sheetName), err)
	}

	// a sheet without data rows converts to nothing, whatever its header looks like
	if len(values) <= 1 {
		return []models.RawRow{}, nil
	}

	if width := sheetWidth(values); width != Columns {
		return nil, apperrors.Format(
			fmt.Sprintf("sheet %q has %d columns, expected %d (name, program, origin)", sheetName, width, Columns),
			ErrColumnCount,
		)
	}

	rows := make([]models.RawRow, 0, len(values)-1)

	for i := 1; i < len(values); i++ {
		rowNum := i + 1

		var cells [Columns]models.Cell
		for col := range Columns {
			value := ""
			if col < len(values[i]) {
				value = values[i][col]
			}

			cell, cellErr := readCell(f, sheetName, col+1, rowNum, value)
			if cellErr != nil {
				return nil, apperrors.Format(fmt.Sprintf("cannot read row %d of sheet %q", rowNum, sheetName), cellErr)
			}

			cells[col] = cell
		}

		rows = append(rows, models.RawRow{
			Name:    cells[0],
			Program: cells[1],
			Origin:  cells[2],
			Row:     rowNum,
		})
	}

	return rows, nil
}

// readCell classifies a cell by its stored type so that a missing cell, an empty
// string and a number stay distinguishable.
func readCell(f *excelize.File, sheetName string, col, row int, value string) (models.Cell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}

	cellType, err := f.GetCellType(sheetName, ref)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.Text(value), nil
	case excelize.CellTypeFormula:
		return readFormulaCell(f, sheetName, ref, value)
	case excelize.CellTypeUnset:
		// numbers are usually stored without an explicit type
		if value == "" {
			return models.Absent(), nil
		}
		return models.NonText(value), nil
	default:
		return models.NonText(value), nil
	}
}

// readFormulaCell classifies a formula cell by its result. A workbook that was
// never recalculated has no cached value, so the formula is evaluated.
func readFormulaCell(f *excelize.File, sheetName, ref, value string) (models.Cell, error) {
	if value == "" {
		calculated, err := f.CalcCellValue(sheetName, ref, excelize.Options{RawCellValue: true})
		if err != nil {
			return models.Cell{}, fmt.Errorf("cannot evaluate formula in %s: %w", ref, err)
		}
		value = calculated
	}

	if isNumber(value) {
		return models.NonText(value), nil
	}

	return models.Text(value), nil
}

func isNumber(value string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)

	return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n)
}

func sheetWidth(values [][]string) int {
	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}

	return width
}

package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/models"
	"dadeserasmus/internal/output"
)

// DefaultSheetName is the sheet the web front end exports to.
const DefaultSheetName = "Dades"

// HeaderRow returns the first row of an exported workbook.
func HeaderRow() []string {
	return []string{"Nom", "Carrera", "Origen"}
}

// Build creates a single-sheet workbook with one row per student below the header.
// The caller owns the returned file and must close it.
func Build(sheetName string, students []models.Student) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()

	if defaultSheet := f.GetSheetName(0); defaultSheet != sheetName {
		f.SetSheetName(defaultSheet, sheetName)
	}

	header := HeaderRow()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, s := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		row := []string{s.Name, s.Program, s.Origin}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook writes students to an xlsx file at path, replacing any existing file.
func WriteWorkbook(path, sheetName string, students []models.Student) error {
	f, err := Build(sheetName, students)
	if err != nil {
		return apperrors.New(apperrors.KindInternal, "failed to build workbook", err)
	}
	defer func() {
		_ = f.Close()
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return apperrors.New(apperrors.KindInternal, "failed to serialize workbook", err)
	}

	if err := output.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.OutputWrite(fmt.Sprintf("cannot write %s", path), err)
	}

	return nil
}

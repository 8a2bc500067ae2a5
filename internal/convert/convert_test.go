package convert

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/config"
	"dadeserasmus/internal/logger"
	"dadeserasmus/internal/output"
)

func saveWorkbook(t *testing.T, dir string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheetName := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}

			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}

			if err := f.SetCellValue(sheetName, ref, value); err != nil {
				t.Fatalf("set %s: %v", ref, err)
			}
		}
	}

	path := filepath.Join(dir, "dadeserasmus.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	return path
}

func TestConverter_Run_Scenario(t *testing.T) {
	dir := t.TempDir()
	input := saveWorkbook(t, dir, [][]any{
		{"Nom", "Carrera", "Origen"},
		{"Ana Pérez", "Biology", "Bilbo"},
		{"  Luis  ", "", "Grana"},
		{nil, "X", "Madrid"},
		{"Eva", "Law", "Oviedo"},
	})
	out := filepath.Join(dir, "data.json")

	result, err := New(nil, nil).Run(input, out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Report.Exported != 3 || result.Report.Skipped != 1 {
		t.Errorf("report = %+v", result.Report)
	}

	if _, err := uuid.Parse(result.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", result.RunID, err)
	}

	if msg := result.Message(); msg != "Exported 3 students to "+out {
		t.Errorf("Message() = %q", msg)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	expected := `[
  {
    "nom": "Ana Pérez",
    "carrera": "Biology",
    "origen": "Bilbao"
  },
  {
    "nom": "Luis",
    "carrera": "",
    "origen": "Granada"
  },
  {
    "nom": "Eva",
    "carrera": "Law",
    "origen": "Oviedo"
  }
]`

	if string(data) != expected {
		t.Errorf("output =\n%s\nwant\n%s", data, expected)
	}
}

func TestResult_Message_DefaultOutput(t *testing.T) {
	r := Result{Output: config.DefaultOutput}
	r.Report.Exported = 12

	if got := r.Message(); got != "Exported 12 students to data.json" {
		t.Errorf("Message() = %q", got)
	}
}

func TestConverter_Run_ConfiguredNormalization(t *testing.T) {
	dir := t.TempDir()
	input := saveWorkbook(t, dir, [][]any{
		{"Nom", "Carrera", "Origen"},
		{"Ane", "Enginyeria Informàtica", "Donosti"},
	})
	out := filepath.Join(dir, "data.json")

	cfg := config.DefaultConfig()
	cfg.Converter.Normalization.Origins = map[string]string{"Donosti": "San Sebastián"}
	cfg.Converter.Normalization.Programs = true

	if _, err := New(cfg, nil).Run(input, out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	students, err := output.ReadJSON(out)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if len(students) != 1 || students[0].Origin != "San Sebastián" || students[0].Program != "Ingeniería Informàtica" {
		t.Errorf("students = %+v", students)
	}
}

func TestConverter_Run_MissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "data.json")

	_, err := New(nil, nil).Run(filepath.Join(dir, "dadeserasmus.xlsx"), out)
	if !apperrors.Is(err, apperrors.KindInputNotFound) {
		t.Fatalf("error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindInputNotFound)
	}

	if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("output must not be created on failure, stat err = %v", statErr)
	}
}

func TestConverter_Run_FormatErrorKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	input := saveWorkbook(t, dir, [][]any{
		{"Nom", "Carrera", "Origen"},
		{"Ana", "Law", "Vic"},
		{"Pol", 2024, "Reus"},
	})
	out := filepath.Join(dir, "data.json")

	previous := []byte(`[{"nom":"Old","carrera":"","origen":""}]`)
	if err := os.WriteFile(out, previous, 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	_, err := New(nil, nil).Run(input, out)
	if !apperrors.Is(err, apperrors.KindFormat) {
		t.Fatalf("error kind = %q, want %q (err: %v)", apperrors.KindOf(err), apperrors.KindFormat, err)
	}

	data, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("read output: %v", readErr)
	}

	if !bytes.Equal(data, previous) {
		t.Errorf("previous output was modified: %s", data)
	}
}

func TestConverter_Run_LogsToLogger(t *testing.T) {
	dir := t.TempDir()
	input := saveWorkbook(t, dir, [][]any{
		{"Nom", "Carrera", "Origen"},
		{"Ana", "Law", "Bilbo"},
	})

	var buf bytes.Buffer
	if _, err := New(nil, logger.New(&buf, "debug")).Run(input, filepath.Join(dir, "data.json")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	logs := buf.String()
	for _, want := range []string{"loading workbook", "corrected origin", "wrote document", "component=normalizer", "run_id="} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}

func TestNew_LogsOriginTable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Converter.Normalization.Origins = map[string]string{
		"Donosti": "San Sebastián",
		"Bilbo":   "Bilbo City",
		"Grana":   "Granada",
	}

	var buf bytes.Buffer
	New(cfg, logger.New(&buf, "debug"))

	logs := buf.String()
	for _, want := range []string{"configured origin alias ignored", "alias=Bilbo", "entries=4"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}

	if strings.Contains(logs, "alias=Grana") {
		t.Errorf("alias matching the built-in must not warn:\n%s", logs)
	}
}

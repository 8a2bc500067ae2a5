package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/models"
)

func TestBuild_Layout(t *testing.T) {
	students := []models.Student{
		{Name: "Ana Pérez", Program: "Biology", Origin: "Bilbao"},
		{Name: "Luis", Program: "", Origin: "Granada"},
	}

	f, err := Build("", students)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if name := f.GetSheetName(0); name != DefaultSheetName {
		t.Errorf("sheet name = %q, want %q", name, DefaultSheetName)
	}

	rows, err := f.GetRows(DefaultSheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := HeaderRow()
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	if rows[1][0] != "Ana Pérez" || rows[1][2] != "Bilbao" {
		t.Errorf("first data row = %v", rows[1])
	}
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadeserasmus.xlsx")

	students := []models.Student{
		{Name: "Ana Pérez", Program: "Biology", Origin: "Bilbao"},
		{Name: "Luis", Program: "", Origin: "Granada"},
		{Name: "Eva", Program: "Law", Origin: "San Sebastián"},
	}

	if err := WriteWorkbook(path, "", students); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	rows, err := NewReader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(rows) != len(students) {
		t.Fatalf("loaded %d rows, want %d", len(rows), len(students))
	}

	for i, s := range students {
		if rows[i].Name.Value != s.Name || rows[i].Program.Value != s.Program || rows[i].Origin.Value != s.Origin {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], s)
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != DefaultSheetName {
		t.Errorf("active sheet = %q, want %q", name, DefaultSheetName)
	}
}

func TestWriteWorkbook_UnwritableDestination(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	err := WriteWorkbook(filepath.Join(blocker, "out.xlsx"), "Dades", nil)
	if !apperrors.Is(err, apperrors.KindOutputWrite) {
		t.Errorf("error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindOutputWrite)
	}
}

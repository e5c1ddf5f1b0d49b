package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"simvar/app"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.xlsx")

	err := WriteWorkbook(path, []Sheet{
		{Name: "stream-0", U: []float64{0.25, 0.5}, X: []float64{2.75, 3.5}},
		{Name: "stream-1", X: []float64{1.0, 2.0, 3.0}},
	})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("stream-0")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("stream-0: got %d rows", len(rows))
	}
	if rows[0][0] != "u" || rows[0][1] != "x" {
		t.Errorf("stream-0 header: %v", rows[0])
	}

	rows, err = f.GetRows("stream-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("stream-1: got %d rows", len(rows))
	}
	if rows[0][0] != "x" {
		t.Errorf("stream-1 header: %v", rows[0])
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteWorkbook(path, nil); err == nil {
		t.Error("empty sheet list must fail")
	}
}

func TestFromSweep(t *testing.T) {
	res := &app.SweepResult{
		RunID: "test",
		Samples: []app.StreamSample{
			{Stream: 4, U: []float64{0.5}, X: []float64{1.5}},
		},
	}
	sheets := FromSweep(res)
	if len(sheets) != 1 {
		t.Fatalf("got %d sheets", len(sheets))
	}
	if sheets[0].Name != "stream-4" {
		t.Errorf("sheet name: %s", sheets[0].Name)
	}
}

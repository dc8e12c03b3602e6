package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExportJSON(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, result := runSpread(t)
	runID, err := store.Save("spread", cfg, 0, result)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result.Field, result.Times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}

	if data.ID != runID || data.N != 11 {
		t.Errorf("unexpected export header: %+v", data)
	}
	if len(data.Field) != 50 || len(data.Field[0]) != 11 {
		t.Errorf("unexpected field shape: %dx%d", len(data.Field), len(data.Field[0]))
	}
	if len(data.Times) != 50 {
		t.Errorf("expected 50 times, got %d", len(data.Times))
	}
}

func TestExportCSV(t *testing.T) {
	_, result := runSpread(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, result.Field, result.Times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 51 {
		t.Fatalf("expected header plus 50 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,p0,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if got := strings.Count(lines[1], ","); got != 11 {
		t.Errorf("expected 12 fields per row, got %d commas", got)
	}
}

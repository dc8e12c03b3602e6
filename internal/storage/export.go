package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/boxdiff/internal/lattice"
)

type ExportData struct {
	ID       string             `json:"id"`
	Scenario string             `json:"scenario"`
	N        int                `json:"n"`
	K        float64            `json:"k"`
	Dt       float64            `json:"dt"`
	Steps    int                `json:"steps"`
	Times    []float64          `json:"times"`
	Field    [][]float64        `json:"field"`
	Metrics  map[string]float64 `json:"metrics"`
	Warnings []string           `json:"warnings,omitempty"`
}

func buildExport(meta *RunMetadata, field *lattice.Field, times []float64) ExportData {
	data := ExportData{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		N:        meta.N,
		K:        meta.K,
		Dt:       meta.Dt,
		Steps:    meta.Steps,
		Times:    times,
		Field:    make([][]float64, field.Steps()),
		Metrics:  meta.Metrics,
		Warnings: meta.Warnings,
	}
	for t := range data.Field {
		data.Field[t] = field.Column(t)
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, field *lattice.Field, times []float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, field, times))
}

func ExportJSONStdout(meta *RunMetadata, field *lattice.Field, times []float64) error {
	return ExportJSON(os.Stdout, meta, field, times)
}

func ExportCSV(w io.Writer, field *lattice.Field, times []float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time"}
	for i := 0; i < field.N(); i++ {
		header = append(header, "p"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for t := 0; t < field.Steps(); t++ {
		row := []string{strconv.FormatFloat(times[t], 'f', 6, 64)}
		for _, val := range field.Column(t) {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

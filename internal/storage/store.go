// Package storage persists completed runs as flat files: one directory per
// run holding metadata.json and field.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/boxdiff/internal/lattice"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	N         int                `json:"n"`
	K         float64            `json:"k"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Gap       int                `json:"gap,omitempty"`
	Stable    bool               `json:"stable"`
	Metrics   map[string]float64 `json:"metrics"`
	Warnings  []string           `json:"warnings,omitempty"`
}

func (s *Store) Save(scenario string, cfg lattice.Config, gap int, result *lattice.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		N:         cfg.N,
		K:         cfg.K,
		Dt:        cfg.Dt,
		Steps:     cfg.Steps,
		Gap:       gap,
		Stable:    cfg.Stable(),
		Metrics:   result.Metrics,
		Warnings:  result.Warnings,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	field := result.Field
	header := []string{"time"}
	for i := 0; i < field.N(); i++ {
		header = append(header, fmt.Sprintf("p%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for t := 0; t < field.Steps(); t++ {
		row := []string{strconv.FormatFloat(result.Times[t], 'f', 6, 64)}
		for _, val := range field.Column(t) {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads a stored run back into a Field plus its time axis.
func (s *Store) LoadField(runID string) (*lattice.Field, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("run %s: field.csv holds no columns", runID)
	}

	n := len(records[0]) - 1
	steps := len(records) - 1
	field := lattice.NewField(n, steps)
	times := make([]float64, steps)
	col := make(lattice.Dist, n)

	for t := 0; t < steps; t++ {
		record := records[t+1]
		if len(record) != n+1 {
			return nil, nil, fmt.Errorf("run %s: row %d has %d fields, want %d", runID, t+1, len(record), n+1)
		}

		tm, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("run %s: bad time at row %d: %w", runID, t+1, err)
		}
		times[t] = tm

		for i := 0; i < n; i++ {
			val, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("run %s: bad value at row %d col %d: %w", runID, t+1, i, err)
			}
			col[i] = val
		}
		field.Fill(t, col)
	}

	return field, times, nil
}

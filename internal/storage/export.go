package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID       string             `json:"id"`
	Preset   string             `json:"preset"`
	Seed     int64              `json:"seed"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Columns  []string           `json:"columns"`
	Times    []float64          `json:"times"`
	Rows     [][]float64        `json:"rows"`
	Metrics  map[string]float64 `json:"metrics"`
	Hits     map[string]int     `json:"hits"`
	Kicks    map[string]int     `json:"kicks"`
	EndHits  [2]int             `json:"end_hits"`
}

func newExportData(meta *RunMetadata, table *Table) ExportData {
	return ExportData{
		ID:       meta.ID,
		Preset:   meta.Preset,
		Seed:     meta.Seed,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Steps:    meta.Steps,
		Columns:  table.Columns,
		Times:    table.Times,
		Rows:     table.Rows,
		Metrics:  meta.Metrics,
		Hits:     meta.Hits,
		Kicks:    meta.Kicks,
		EndHits:  meta.EndHits,
	}
}

func WriteJSON(w io.Writer, meta *RunMetadata, table *Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(meta, table))
}

func ExportJSON(path string, meta *RunMetadata, table *Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, table)
}

func ExportJSONStdout(meta *RunMetadata, table *Table) error {
	return WriteJSON(os.Stdout, meta, table)
}

package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	// SaveRun writes a JSON report for the batch under dir and returns
	// the report path.
	SaveRun(dir m.Path, results []m.FileResult) (m.Path, error)

	// LoadRun reads a previously saved report.
	LoadRun(path m.Path) (m.RunReport, error)
}

type reportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{now: time.Now}
}

func (rs *reportStore) SaveRun(dir m.Path, results []m.FileResult) (m.Path, error) {
	report := buildRunReport(rs.now(), results)

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	name := fmt.Sprintf("run-%s.json", report.GeneratedAt.Format("20060102-150405"))
	path := filepath.Join(string(dir), name)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

func (rs *reportStore) LoadRun(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}

func buildRunReport(at time.Time, results []m.FileResult) m.RunReport {
	report := m.RunReport{GeneratedAt: at.UTC(), Files: make([]m.FileReport, 0, len(results))}

	for _, res := range results {
		file := m.FileReport{
			Path:     string(res.Source.Origin),
			Hash:     res.Source.Hash,
			Inserted: res.Inserted(),
			Skipped:  res.Skipped(),
			Kept:     res.Kept(),
		}

		for _, d := range res.Decisions {
			fr := m.FunctionReport{
				Name:     d.Function.Name,
				Decision: d.Kind.String(),
				Reason:   d.Reason,
			}
			if d.Kind == m.DecisionInsert {
				fr.Type = d.Type.Render()
			}

			file.Functions = append(file.Functions, fr)
		}

		for _, p := range res.Problems {
			file.Problems = append(file.Problems, fmt.Sprintf("%s at offset %d: %s", p.Kind, p.Offset, p.Detail))
		}

		report.Files = append(report.Files, file)
	}

	return report
}

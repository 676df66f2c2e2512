// Package report renders summary history and usage data into downloadable
// artifacts (CSV and PDF).
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"smart-summarizer/internal/repository"
)

// usageHeader is the column layout of the usage CSV export.
var usageHeader = []string{
	"day", "summaries", "input_words", "summary_words", "avg_actual_percentage",
}

// UsageCSV renders per-day usage statistics as CSV.
func UsageCSV(stats []repository.UsageStat) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(usageHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, stat := range stats {
		record := []string{
			stat.Day.Format("2006-01-02"),
			strconv.FormatInt(stat.SummaryCount, 10),
			strconv.FormatInt(stat.InputWords, 10),
			strconv.FormatInt(stat.SummaryWords, 10),
			strconv.FormatFloat(stat.AvgActualPercent, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

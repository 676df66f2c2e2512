package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/repository"
)

// SummaryPDF renders one stored summary as a simple A4 PDF: title, the
// summary body, and a statistics footer.
func SummaryPDF(s *entity.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	title := s.Title
	if strings.TrimSpace(title) == "" {
		title = "Summary"
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, paragraph := range strings.Split(s.SummaryText, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, paragraph, "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	footer := fmt.Sprintf("%s summary, %s length - %d of %d words (%.1f%%), compression %.1f%%",
		s.SummaryType, s.SummaryLength,
		s.SummaryWordCount, s.InputWordCount,
		s.ActualPercentage, s.CompressionRatio)
	pdf.MultiCell(0, 5, footer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// UsagePDF renders per-day usage statistics as a tabular PDF report.
func UsagePDF(stats []repository.UsageStat) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Summarization usage report", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{30, 25, 35, 35, 40}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range usageHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, stat := range stats {
		cells := []string{
			stat.Day.Format("2006-01-02"),
			fmt.Sprintf("%d", stat.SummaryCount),
			fmt.Sprintf("%d", stat.InputWords),
			fmt.Sprintf("%d", stat.SummaryWords),
			fmt.Sprintf("%.1f", stat.AvgActualPercent),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render usage pdf: %w", err)
	}
	return buf.Bytes(), nil
}

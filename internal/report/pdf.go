package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"togari/internal/assessment"
	"togari/internal/utils"
)

const fontFamily = "cjk"

// Exporter renders a session snapshot into the downloadable PDF report.
// It is safe to reuse across exports; each call builds a fresh page.
type Exporter struct {
	outputDir string
	fontPath  string
	logger    *utils.Logger
}

// NewExporter creates an exporter writing into outputDir. fontPath may
// be empty, in which case well-known system font locations are probed
// at export time.
func NewExporter(outputDir, fontPath string) *Exporter {
	if strings.HasPrefix(outputDir, "~/") {
		home, _ := os.UserHomeDir()
		outputDir = filepath.Join(home, outputDir[2:])
	}
	_ = os.MkdirAll(outputDir, 0755) // Ignore error - directory may already exist
	return &Exporter{
		outputDir: outputDir,
		fontPath:  fontPath,
		logger:    utils.NewComponentLogger("ReportExporter"),
	}
}

// Export renders the snapshot and writes the report file, returning its
// path. The document is rendered to memory first and written in one
// step, so a failed export never leaves a partial file behind.
func (e *Exporter) Export(snapshot assessment.Snapshot) (string, error) {
	doc := buildDocument(snapshot, time.Now())

	font, err := resolveFont(e.fontPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := renderPDF(doc, font, &buf); err != nil {
		return "", err
	}

	path := filepath.Join(e.outputDir, fileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	e.logger.Info("Exported assessment report to %s (%d bytes)", path, buf.Len())
	return path, nil
}

func renderPDF(doc document, fontPath string, out *bytes.Buffer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(fontFamily, "", fontPath)
	if pdf.Err() {
		return fmt.Errorf("failed to load font %s: %w", fontPath, pdf.Error())
	}
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	y := 20.0

	// Title
	pdf.SetFont(fontFamily, "", 24)
	pdf.SetTextColor(204, 168, 6)
	pdf.SetXY(0, y)
	pdf.CellFormat(pageW, 10, doc.Title, "", 1, "C", false, 0, "")
	y += 20

	// Score box: tier, score, message inside a gold rule
	pdf.SetDrawColor(204, 168, 6)
	pdf.SetLineWidth(0.5)
	pdf.Rect(20, y, pageW-40, 50, "D")

	r, g, b := hexToRGB(doc.Result.Color)
	pdf.SetFont(fontFamily, "", 28)
	pdf.SetTextColor(r, g, b)
	pdf.SetXY(20, y+6)
	pdf.CellFormat(pageW-40, 14, string(doc.Result.Level), "", 0, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 14)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(20, y+24)
	score := fmt.Sprintf("スコア: %d / %d", doc.Result.Score, assessment.QuestionCount())
	pdf.CellFormat(pageW-40, 8, score, "", 0, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 11)
	pdf.SetTextColor(50, 50, 50)
	pdf.SetXY(30, y+34)
	pdf.MultiCell(pageW-60, 5, doc.Result.Message, "", "C", false)
	y += 60

	// Worksheet sections
	for _, s := range doc.Sections {
		pdf.SetFont(fontFamily, "", 14)
		pdf.SetTextColor(30, 30, 30)
		pdf.SetXY(20, y)
		pdf.CellFormat(pageW-40, 7, s.Heading, "", 1, "L", false, 0, "")
		y += 8

		pdf.SetFont(fontFamily, "", 11)
		pdf.SetTextColor(60, 60, 60)
		pdf.SetXY(20, y)
		pdf.MultiCell(pageW-40, 6, s.Body, "", "L", false)
		y = pdf.GetY() + 10
	}

	// Answer breakdown
	pdf.SetFont(fontFamily, "", 14)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(20, y)
	pdf.CellFormat(pageW-40, 7, "回答の内訳", "", 1, "L", false, 0, "")
	y += 10

	for _, row := range doc.Breakdown {
		pdf.SetFont(fontFamily, "", 11)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(20, y)
		pdf.CellFormat(60, 6, row.Label+":", "", 0, "L", false, 0, "")

		switch {
		case row.Yes:
			pdf.SetTextColor(248, 113, 113)
		case row.Answer == placeholderUnanswered:
			pdf.SetTextColor(150, 150, 150)
		default:
			pdf.SetTextColor(74, 222, 128)
		}
		pdf.SetXY(pageW-60, y)
		pdf.CellFormat(40, 6, row.Answer, "", 0, "R", false, 0, "")
		y += 8
	}
	y += 10

	// Footer
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetXY(20, y)
	pdf.CellFormat(80, 6, "診断日: "+doc.Date, "", 0, "L", false, 0, "")
	pdf.SetXY(pageW-100, y)
	pdf.CellFormat(80, 6, doc.Brand, "", 0, "R", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("pdf rendering failed: %w", pdf.Error())
	}
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("pdf rendering failed: %w", err)
	}
	return nil
}

// hexToRGB parses a #rrggbb display token. Malformed tokens come out
// black, which is still readable.
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

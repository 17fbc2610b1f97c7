package printer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/xelth-com/eckshop/internal/services/hardware"
	"github.com/xelth-com/eckshop/internal/utils"
)

// ErrNoEntries is returned when a sheet would be empty
var ErrNoEntries = errors.New("no entries to print")

// SheetConfig holds the grid layout of a scan sheet on A4
type SheetConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// WithDefaults fills unset grid dimensions
func (c SheetConfig) WithDefaults() SheetConfig {
	if c.Cols <= 0 {
		c.Cols = 3
	}
	if c.Rows <= 0 {
		c.Rows = 7
	}
	return c
}

// SheetEntry is one cell of a scan sheet
type SheetEntry struct {
	Code    string `json:"code"`
	Caption string `json:"caption"`
}

// EntriesFromGroups builds one sheet cell per hardware group.
// The code is "H" followed by the group's borrowed record ID.
func EntriesFromGroups(groups []hardware.Group) []SheetEntry {
	entries := make([]SheetEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, SheetEntry{
			Code:    fmt.Sprintf("H%d", g.ID),
			Caption: fmt.Sprintf("%s x%d", g.Name, g.Quantity),
		})
	}
	return entries
}

// GenerateScanSheetPDF creates a PDF with one QR code per entry
func GenerateScanSheetPDF(cfg SheetConfig, entries []SheetEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	cfg = cfg.WithDefaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	// A4 dimensions
	pageWidth, pageHeight := 210.0, 297.0

	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY

	// Symmetric margins
	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)

	cellW := (availW - totalGapX) / float64(cfg.Cols)
	cellH := (availH - totalGapY) / float64(cfg.Rows)
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("sheet layout leaves no room for cells (%.1fx%.1fmm)", cellW, cellH)
	}

	perPage := cfg.Cols * cfg.Rows

	for i, entry := range entries {
		if i%perPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % perPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		// Top-left of the cell
		x := cfg.MarginLeft + float64(col)*(cellW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(cellH+cfg.GapY)

		qrPng, err := qrcode.Encode(entry.Code, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("qr for %q: %w", entry.Code, err)
		}

		imgName := fmt.Sprintf("qr_%d", i)
		imgOptions := gofpdf.ImageOptions{
			ImageType: "PNG",
			ReadDpi:   true,
		}
		pdf.RegisterImageOptionsReader(imgName, imgOptions, bytes.NewReader(qrPng))

		// QR takes 60% of the cell height, leaving two text lines below
		qrSize := cellH * 0.6
		if qrSize > cellW {
			qrSize = cellW * 0.9
		}
		qrX := x + (cellW-qrSize)/2
		qrY := y + 1

		pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		pdf.SetXY(x, qrY+qrSize+1)
		pdf.SetFontSize(8)
		pdf.CellFormat(cellW, 4, utils.WrapCode39(entry.Code), "", 2, "C", false, 0, "")
		pdf.SetFontSize(7)
		pdf.CellFormat(cellW, 4, pdf.UnicodeTranslatorFromDescriptor("")(entry.Caption), "", 0, "C", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

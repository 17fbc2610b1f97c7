package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelth-com/eckshop/internal/services/hardware"
)

func TestEntriesFromGroups(t *testing.T) {
	groups := hardware.GroupRecords([]hardware.Record{
		{ID: 4, Name: "Hinge", Quantity: 1, Status: hardware.StatusPending},
		{ID: 5, Name: "Hinge", Quantity: 1, Status: hardware.StatusPending},
		{ID: 9, Name: "Cam lock", Quantity: 16, Status: hardware.StatusPending},
	})

	entries := EntriesFromGroups(groups)
	assert.Equal(t, []SheetEntry{
		{Code: "H9", Caption: "Cam lock x16"},
		{Code: "H4", Caption: "Hinge x2"},
	}, entries)
}

func TestGenerateScanSheetPDF(t *testing.T) {
	entries := make([]SheetEntry, 25)
	for i := range entries {
		entries[i] = SheetEntry{Code: "H1", Caption: "Screw x4"}
	}

	pdf, err := GenerateScanSheetPDF(SheetConfig{MarginTop: 10, MarginLeft: 8, GapX: 2, GapY: 2}, entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerateScanSheetPDFErrors(t *testing.T) {
	_, err := GenerateScanSheetPDF(SheetConfig{}, nil)
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = GenerateScanSheetPDF(SheetConfig{MarginLeft: 120}, []SheetEntry{{Code: "H1"}})
	assert.Error(t, err)
}

func TestSheetConfigDefaults(t *testing.T) {
	cfg := SheetConfig{}.WithDefaults()
	assert.Equal(t, 3, cfg.Cols)
	assert.Equal(t, 7, cfg.Rows)
}

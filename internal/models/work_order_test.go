package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelth-com/eckshop/internal/services/hardware"
)

func TestWorkOrderBeforeCreate(t *testing.T) {
	w := &WorkOrder{Customer: "Kitchen 12"}
	require.NoError(t, w.BeforeCreate(nil))
	assert.Len(t, w.ID, 36)
	assert.Regexp(t, regexp.MustCompile(`^WO\d{8}-[0-9A-F]{4}$`), w.Number)

	kept := &WorkOrder{ID: "fixed", Number: "WO-1"}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, "fixed", kept.ID)
	assert.Equal(t, "WO-1", kept.Number)
}

func TestGenerateWorkOrderNumber(t *testing.T) {
	n := generateWorkOrderNumber(time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, n, "WO20260118-")
}

func TestConversions(t *testing.T) {
	p := Part{ID: 42, Name: "Door", Status: PartStatusDone}
	assert.Equal(t, "42", p.ToClassifier().ID)
	assert.True(t, p.IsDone())

	h := HardwareItem{ID: 3, WorkOrderID: "wo", Name: "Hinge", Quantity: 2, Status: hardware.StatusShipped}
	assert.Equal(t, hardware.Record{ID: 3, Name: "Hinge", Quantity: 2, Status: hardware.StatusShipped, WorkOrderID: "wo"}, h.ToRecord())

	assert.Equal(t, 12, Rack{Columns: 3, Rows: 4}.Capacity())
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/services/hardware"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	log = zap.NewNop()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunClassify(t *testing.T) {
	cmd, out := newTestCommand()
	rulesFile = ""

	require.NoError(t, runClassify(cmd, []string{"Side Panel", "Door Panel", "Hinge"}))

	lines := out.String()
	assert.Contains(t, lines, "NAME")
	assert.Regexp(t, `Side Panel[\s|]+carcass[\s|]+standard[\s|]+false`, lines)
	assert.Regexp(t, `Door Panel[\s|]+doors_drawer_fronts[\s|]+doors_drawer_fronts[\s|]+true`, lines)
	assert.Regexp(t, `Hinge[\s|]+hardware_misc[\s|]+hardware[\s|]+false`, lines)
}

func TestRunClassifyWithRulesFile(t *testing.T) {
	cmd, out := newTestCommand()
	rulesFile = filepath.Join(t.TempDir(), "rules.yaml")
	defer func() { rulesFile = "" }()

	require.NoError(t, os.WriteFile(rulesFile, []byte("categories:\n  hardware_misc: [caster]\n"), 0o644))
	require.NoError(t, runClassify(cmd, []string{"Caster", "Hinge"}))

	assert.Regexp(t, `Caster[\s|]+hardware_misc`, out.String())
	assert.Regexp(t, `Hinge[\s|]+carcass`, out.String())
}

func TestRunLabelsSplit(t *testing.T) {
	cmd, out := newTestCommand()
	dir := t.TempDir()
	src := filepath.Join(dir, "sheet.html")
	outDir = filepath.Join(dir, "out")
	pageBreak, codeClass = "", ""

	doc := `<div style="top: 12pt">*ABC123*</div>` +
		`<div style="page-break-after: always;"></div>` +
		`<div style="top: 40pt">*XYZ999*</div>` +
		`<div style="page-break-after: always;"></div>` +
		`<div>*ABC123* again</div>`
	require.NoError(t, os.WriteFile(src, []byte(doc), 0o644))

	require.NoError(t, runLabelsSplit(cmd, []string{src}))
	assert.Contains(t, out.String(), "2 labels written")

	abc, err := os.ReadFile(filepath.Join(outDir, "ABC123.html"))
	require.NoError(t, err)
	assert.Contains(t, string(abc), "top: 0pt")
	assert.NotContains(t, string(abc), "again")

	_, err = os.Stat(filepath.Join(outDir, "XYZ999.html"))
	assert.NoError(t, err)
}

func TestWriteHardwareReport(t *testing.T) {
	var out bytes.Buffer
	records := []hardware.Record{
		{ID: 1, Name: "Hinge", Quantity: 1, Status: hardware.StatusShipped},
		{ID: 2, Name: "Hinge", Quantity: 1, Status: hardware.StatusShipped},
		{ID: 3, Name: "Screw", Quantity: 40, Status: hardware.StatusPending},
	}

	require.NoError(t, writeHardwareReport(&out, records))
	assert.Regexp(t, `Hinge[\s|]+2[\s|]+2[\s|]+shipped`, out.String())
	assert.Regexp(t, `Screw[\s|]+40[\s|]+1[\s|]+pending`, out.String())
	assert.Contains(t, out.String(), "2 names, 3 records")
	assert.Contains(t, out.String(), "duplicated_entity: 1")
	assert.Contains(t, out.String(), "single_entity: 1")
}

func TestTableRender(t *testing.T) {
	var out bytes.Buffer
	tbl := newTable("NAME", "QTY")
	tbl.addRow("Hinge", "2")
	tbl.addRow("Shelf support", "4")

	require.NoError(t, tbl.render(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " NAME          | QTY ", lines[0])
	assert.Equal(t, strings.Repeat("-", 21), lines[1])
	assert.Equal(t, " Hinge         | 2   ", lines[2])
	assert.Equal(t, " Shelf support | 4   ", lines[3])
}

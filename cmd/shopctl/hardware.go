package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xelth-com/eckshop/internal/services/hardware"
)

var hardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Inspect hardware line items",
}

// hardwareReportCmd consolidates a JSON dump of hardware records
var hardwareReportCmd = &cobra.Command{
	Use:   "report FILE.json",
	Short: "Consolidate hardware records and report entry conventions",
	Long: `Reads a JSON array of hardware records ({id, name, quantity, status}),
prints one line per consolidated name and the data-entry pattern summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runHardwareReport,
}

func runHardwareReport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var records []hardware.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	return writeHardwareReport(cmd.OutOrStdout(), records)
}

func writeHardwareReport(w io.Writer, records []hardware.Record) error {
	groups := hardware.GroupRecords(records)
	report := hardware.AnalyzePatterns(records)

	tbl := newTable("NAME", "QTY", "RECORDS", "STATUS")
	for _, g := range groups {
		tbl.addRow(g.Name, strconv.Itoa(g.Quantity), strconv.Itoa(len(g.Records)), string(g.Status))
	}
	if err := tbl.render(w); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d names, %d records\n", report.DistinctNames, report.TotalRecords)
	fmt.Fprintf(w, "  %s: %d\n", hardware.PatternDuplicatedEntity, len(report.DuplicatedEntity))
	fmt.Fprintf(w, "  %s: %d\n", hardware.PatternSingleEntity, len(report.SingleEntity))
	fmt.Fprintf(w, "  %s: %d\n", hardware.PatternMixed, len(report.Mixed))
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/services/labels"
	"github.com/xelth-com/eckshop/internal/utils"
)

var (
	outDir    string
	pageBreak string
	codeClass string
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Work with exported label sheets",
}

// labelsSplitCmd writes one standalone page per label
var labelsSplitCmd = &cobra.Command{
	Use:   "split FILE",
	Short: "Split a label sheet into one file per scan code",
	Long: `Reads an exported label sheet, splits it on the page-break marker and writes
<CODE>.html for every label into the output directory. Labels without a code or
with a repeated code are skipped and logged.`,
	Args: cobra.ExactArgs(1),
	RunE: runLabelsSplit,
}

func runLabelsSplit(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ex := labels.NewExtractor(labels.Options{PageBreak: pageBreak, CodeClass: codeClass})
	pages, anomalies := ex.Render(string(data))

	for _, a := range anomalies {
		log.Warn("label skipped",
			zap.String("kind", string(a.Kind)),
			zap.Int("fragment", a.Fragment),
			zap.String("code", a.Code),
			zap.String("detail", a.Detail),
		)
	}

	codes := make([]string, 0, len(pages))
	for code := range pages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	written := 0
	for _, code := range codes {
		// Codes become file names; anything outside [A-Z0-9] is not a printable scan token
		if !utils.IsScanToken(code) {
			log.Warn("label code is not a scan token, skipping", zap.String("code", code))
			continue
		}
		path := filepath.Join(outDir, code+".html")
		if err := os.WriteFile(path, []byte(pages[code]), 0o644); err != nil {
			return err
		}
		written++
	}

	log.Info("labels split",
		zap.String("source", args[0]),
		zap.Int("written", written),
		zap.Int("skipped", len(anomalies)+len(codes)-written),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%d labels written to %s\n", written, outDir)
	return nil
}

// Command shopctl runs the shop-floor pipeline offline: classify part names,
// split exported label sheets and report hardware entry conventions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/logger"
)

var (
	// Global flags
	verbose   bool
	logFormat string

	log *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Offline tools for the eckshop part pipeline",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		var err error
		log, err = logger.New(level, logFormat, "shopctl")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")

	classifyCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML keyword rules file (default: built-in rules)")

	labelsSplitCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for the split label files")
	labelsSplitCmd.Flags().StringVar(&pageBreak, "page-break", "", "Page-break marker (default: built-in)")
	labelsSplitCmd.Flags().StringVar(&codeClass, "code-class", "", "Class of the element holding the code (default: barcode)")
	labelsCmd.AddCommand(labelsSplitCmd)

	hardwareCmd.AddCommand(hardwareReportCmd)

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(hardwareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

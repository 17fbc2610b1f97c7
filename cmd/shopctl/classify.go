package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/config"
	"github.com/xelth-com/eckshop/internal/services/classifier"
)

var rulesFile string

// classifyCmd prints the routing decision for each part name
var classifyCmd = &cobra.Command{
	Use:   "classify NAME...",
	Short: "Classify part names into routing categories",
	Long: `Prints category, preferred rack type and routing flag for every part name.

Example:
  shopctl classify "Side Panel" "Door Panel 600" "Adj Shelf"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	rules, err := loadRuleSet(rulesFile)
	if err != nil {
		return err
	}
	c := classifier.New(rules)

	tbl := newTable("NAME", "CATEGORY", "RACK", "ROUTED")
	for i, name := range args {
		d := c.Decide(classifier.Part{ID: fmt.Sprint(i + 1), Name: name})
		tbl.addRow(name, string(d.Category), string(d.RackType), strconv.FormatBool(d.Routed))
	}
	return tbl.render(cmd.OutOrStdout())
}

// loadRuleSet returns the built-in rules, or the rules of path when set
func loadRuleSet(path string) (*classifier.KeywordRuleSet, error) {
	if path == "" {
		return classifier.DefaultRules(), nil
	}
	file, err := config.LoadKeywordRules(path)
	if err != nil {
		return nil, err
	}
	rules, err := classifier.RulesFromMap(file.Categories)
	if err != nil {
		return nil, err
	}
	log.Debug("keyword rules loaded", zap.String("path", path))
	return rules, nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordRulesFile is the on-disk format of classifier keyword rules:
//
//	categories:
//	  doors_drawer_fronts: [door, drawer front, panel]
//	  hardware_misc: [hinge, handle]
type KeywordRulesFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadKeywordRules loads keyword rules from a YAML file
func LoadKeywordRules(path string) (*KeywordRulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules KeywordRulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rules.Categories) == 0 {
		return nil, fmt.Errorf("%s: no categories defined", path)
	}

	return &rules, nil
}

package classifier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category outside the closed set is used
var ErrUnknownCategory = errors.New("unknown category")

// ErrEmptyKeyword is returned when a blank keyword is submitted
var ErrEmptyKeyword = errors.New("keyword is empty")

// KeywordRuleSet maps each category to an ordered list of lowercase keywords.
// It does no locking: callers that classify and mutate concurrently must
// serialize access themselves.
type KeywordRuleSet struct {
	keywords map[Category][]string
}

// NewKeywordRuleSet creates an empty rule set
func NewKeywordRuleSet() *KeywordRuleSet {
	return &KeywordRuleSet{keywords: make(map[Category][]string)}
}

// DefaultRules returns the built-in keyword rules
func DefaultRules() *KeywordRuleSet {
	rs := NewKeywordRuleSet()
	for _, kw := range []string{"door", "drawer front", "panel"} {
		rs.Add(CategoryDoorsDrawerFronts, kw)
	}
	for _, kw := range []string{"adjustable shelf", "adj shelf", "adj. shelf", "shelf"} {
		rs.Add(CategoryAdjustableShelves, kw)
	}
	for _, kw := range []string{"hinge", "handle", "knob", "screw", "bracket", "drawer slide", "cam lock", "dowel", "leveler"} {
		rs.Add(CategoryHardwareMisc, kw)
	}
	return rs
}

// Add inserts a keyword for the category. Keywords are lower-cased and trimmed.
// Returns false if the keyword was already present or blank.
func (rs *KeywordRuleSet) Add(category Category, keyword string) bool {
	kw := normalizeKeyword(keyword)
	if kw == "" {
		return false
	}
	for _, existing := range rs.keywords[category] {
		if existing == kw {
			return false
		}
	}
	rs.keywords[category] = append(rs.keywords[category], kw)
	return true
}

// Remove deletes a keyword from the category. Returns false if it was absent.
func (rs *KeywordRuleSet) Remove(category Category, keyword string) bool {
	kw := normalizeKeyword(keyword)
	list := rs.keywords[category]
	for i, existing := range list {
		if existing == kw {
			rs.keywords[category] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Keywords returns a copy of the keywords configured for the category
func (rs *KeywordRuleSet) Keywords(category Category) []string {
	list := rs.keywords[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// All returns a copy of every rule keyed by category
func (rs *KeywordRuleSet) All() map[Category][]string {
	out := make(map[Category][]string, len(rs.keywords))
	for cat := range rs.keywords {
		out[cat] = rs.Keywords(cat)
	}
	return out
}

// Clone returns an independent copy of the rule set
func (rs *KeywordRuleSet) Clone() *KeywordRuleSet {
	return &KeywordRuleSet{keywords: rs.All()}
}

// matchAny reports the first configured keyword of the category found in name
func (rs *KeywordRuleSet) matchAny(category Category, name string) (string, bool) {
	for _, kw := range rs.keywords[category] {
		if strings.Contains(name, kw) {
			return kw, true
		}
	}
	return "", false
}

func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// RulesFromMap builds a rule set from category names to keyword lists,
// as read from a rules file or the database
func RulesFromMap(m map[string][]string) (*KeywordRuleSet, error) {
	rs := NewKeywordRuleSet()
	for name, keywords := range m {
		cat, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		for _, kw := range keywords {
			rs.Add(cat, kw)
		}
	}
	return rs, nil
}

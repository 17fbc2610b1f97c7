// Package classifier routes manufactured parts to processing categories and
// storage rack types based on keyword rules applied to the part name.
package classifier

import "strings"

// Category is the routing category of a part
type Category string

const (
	CategoryCarcass           Category = "carcass"
	CategoryDoorsDrawerFronts Category = "doors_drawer_fronts"
	CategoryAdjustableShelves Category = "adjustable_shelves"
	CategoryHardwareMisc      Category = "hardware_misc"
)

// Categories lists the closed set of categories
var Categories = []Category{
	CategoryCarcass,
	CategoryDoorsDrawerFronts,
	CategoryAdjustableShelves,
	CategoryHardwareMisc,
}

// ParseCategory validates a category name
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// RackType is the destination storage rack of a part
type RackType string

const (
	RackStandard          RackType = "standard"
	RackDoorsDrawerFronts RackType = "doors_drawer_fronts"
	RackAdjustableShelves RackType = "adjustable_shelves"
	RackHardware          RackType = "hardware"
	RackCart              RackType = "cart"
)

var preferredRacks = map[Category]RackType{
	CategoryCarcass:           RackStandard,
	CategoryDoorsDrawerFronts: RackDoorsDrawerFronts,
	CategoryAdjustableShelves: RackAdjustableShelves,
	CategoryHardwareMisc:      RackHardware,
}

// Special-case keywords layered on top of the rule set
const (
	panelKeyword      = "panel"
	adjustableKeyword = "adjustable"
	adjKeyword        = "adj"
	shelfKeyword      = "shelf"
)

// Part is the minimal view of a part needed for classification
type Part struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Decision bundles everything downstream rack assignment needs for one part
type Decision struct {
	Part     Part     `json:"part"`
	Category Category `json:"category"`
	RackType RackType `json:"rack_type"`
	Routed   bool     `json:"routed"`
}

// Classifier applies a keyword rule set to part names
type Classifier struct {
	rules *KeywordRuleSet
}

// New creates a classifier. A nil rule set means DefaultRules().
// Several classifiers may share one rule set by passing the same pointer.
func New(rules *KeywordRuleSet) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Rules returns the rule set owned by the classifier
func (c *Classifier) Rules() *KeywordRuleSet {
	return c.rules
}

// AddKeyword adds a keyword to a category
func (c *Classifier) AddKeyword(category Category, keyword string) bool {
	return c.rules.Add(category, keyword)
}

// RemoveKeyword removes a keyword from a category
func (c *Classifier) RemoveKeyword(category Category, keyword string) bool {
	return c.rules.Remove(category, keyword)
}

// Classify maps a part to exactly one category. First matching branch wins.
func (c *Classifier) Classify(part Part) Category {
	name := strings.ToLower(part.Name)

	if c.isDoorOrFront(name) {
		return CategoryDoorsDrawerFronts
	}
	if c.isAdjustableShelf(name) {
		return CategoryAdjustableShelves
	}
	if _, ok := c.rules.matchAny(CategoryHardwareMisc, name); ok {
		return CategoryHardwareMisc
	}
	return CategoryCarcass
}

// isDoorOrFront checks the doors/fronts keywords. A bare "panel" only counts
// when the name also mentions a door or a front.
func (c *Classifier) isDoorOrFront(name string) bool {
	for _, kw := range c.rules.keywords[CategoryDoorsDrawerFronts] {
		if !strings.Contains(name, kw) {
			continue
		}
		if kw == panelKeyword {
			if strings.Contains(name, "door") || strings.Contains(name, "front") {
				return true
			}
			continue
		}
		return true
	}
	return false
}

// isAdjustableShelf requires a shelf keyword plus "adjustable", or "shelf" together with "adj".
func (c *Classifier) isAdjustableShelf(name string) bool {
	if _, ok := c.rules.matchAny(CategoryAdjustableShelves, name); !ok {
		return false
	}
	if strings.Contains(name, adjustableKeyword) {
		return true
	}
	return strings.Contains(name, shelfKeyword) && strings.Contains(name, adjKeyword)
}

// ShouldRoute reports whether the part leaves standard carcass processing
func (c *Classifier) ShouldRoute(part Part) bool {
	return IsRouted(c.Classify(part))
}

// IsRouted reports whether a category is handled on specialized equipment
func IsRouted(category Category) bool {
	return category == CategoryDoorsDrawerFronts || category == CategoryAdjustableShelves
}

// PreferredRackType returns the storage rack for a category.
// Values outside the closed category set fall back to the standard rack.
func PreferredRackType(category Category) RackType {
	if rt, ok := preferredRacks[category]; ok {
		return rt
	}
	return RackStandard
}

// Decide classifies a part and resolves its rack type
func (c *Classifier) Decide(part Part) Decision {
	cat := c.Classify(part)
	return Decision{
		Part:     part,
		Category: cat,
		RackType: PreferredRackType(cat),
		Routed:   IsRouted(cat),
	}
}

// Partition splits parts into carcass-only and routed lists, preserving order
func (c *Classifier) Partition(parts []Part) (carcass, routed []Part) {
	carcass = []Part{}
	routed = []Part{}
	for _, p := range parts {
		if c.ShouldRoute(p) {
			routed = append(routed, p)
		} else {
			carcass = append(carcass, p)
		}
	}
	return carcass, routed
}

// Readiness summarizes carcass assembly progress
type Readiness struct {
	CarcassTotal int  `json:"carcass_total"`
	CarcassDone  int  `json:"carcass_done"`
	RoutedTotal  int  `json:"routed_total"`
	Ready        bool `json:"ready"`
}

// AssemblyReadiness counts only carcass parts toward completion.
// Routed parts are tracked on separate equipment and never block assembly.
// A nil done reports no part as finished.
func (c *Classifier) AssemblyReadiness(parts []Part, done func(Part) bool) Readiness {
	carcass, routed := c.Partition(parts)
	r := Readiness{CarcassTotal: len(carcass), RoutedTotal: len(routed)}
	for _, p := range carcass {
		if done != nil && done(p) {
			r.CarcassDone++
		}
	}
	r.Ready = r.CarcassDone == r.CarcassTotal
	return r
}

package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name string
		want Category
	}{
		{"Upper Door Left", CategoryDoorsDrawerFronts},
		{"DRAWER FRONT 300", CategoryDoorsDrawerFronts},
		{"door panel", CategoryDoorsDrawerFronts},
		{"Front Panel", CategoryDoorsDrawerFronts},
		{"Back Panel", CategoryCarcass},
		{"side panel", CategoryCarcass},
		{"Adjustable Shelf 560", CategoryAdjustableShelves},
		{"adj shelf", CategoryAdjustableShelves},
		{"Adj. Shelf", CategoryAdjustableShelves},
		{"Shelf", CategoryCarcass},
		{"Fixed Shelf", CategoryCarcass},
		{"Hinge 110deg", CategoryHardwareMisc},
		{"Bar handle 128mm", CategoryHardwareMisc},
		{"screw 4x16", CategoryHardwareMisc},
		{"Gable Left", CategoryCarcass},
		{"", CategoryCarcass},
		{"door hinge", CategoryDoorsDrawerFronts},
		{"shelf bracket", CategoryHardwareMisc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(Part{ID: "p", Name: tt.name}))
		})
	}
}

func TestPanelNeedsDoorOrFrontContext(t *testing.T) {
	c := New(nil)
	for _, name := range []string{"panel", "Panel A", "toe kick panel", "PANEL 18mm"} {
		assert.Equal(t, CategoryCarcass, c.Classify(Part{Name: name}), name)
	}
}

func TestShelfWithoutQualifierIsCarcass(t *testing.T) {
	c := New(nil)
	for _, name := range []string{"shelf", "Top Shelf", "fixed shelf 18mm", "SHELF-2"} {
		assert.Equal(t, CategoryCarcass, c.Classify(Part{Name: name}), name)
	}
}

func TestShouldRouteMatchesCategory(t *testing.T) {
	c := New(nil)
	names := []string{"door", "panel", "front panel", "adjustable shelf", "shelf", "hinge", "gable", ""}
	for _, name := range names {
		p := Part{Name: name}
		cat := c.Classify(p)
		want := cat == CategoryDoorsDrawerFronts || cat == CategoryAdjustableShelves
		assert.Equal(t, want, c.ShouldRoute(p), name)
	}
}

func TestPreferredRackType(t *testing.T) {
	assert.Equal(t, RackStandard, PreferredRackType(CategoryCarcass))
	assert.Equal(t, RackDoorsDrawerFronts, PreferredRackType(CategoryDoorsDrawerFronts))
	assert.Equal(t, RackAdjustableShelves, PreferredRackType(CategoryAdjustableShelves))
	assert.Equal(t, RackHardware, PreferredRackType(CategoryHardwareMisc))
	assert.Equal(t, RackStandard, PreferredRackType(Category("bogus")))
}

func TestPartition(t *testing.T) {
	c := New(nil)
	parts := []Part{
		{ID: "1", Name: "Gable"},
		{ID: "2", Name: "Door"},
		{ID: "3", Name: "Adjustable shelf"},
		{ID: "4", Name: "Bottom"},
		{ID: "5", Name: "Hinge"},
	}

	carcass, routed := c.Partition(parts)
	assert.Equal(t, []Part{parts[0], parts[3], parts[4]}, carcass)
	assert.Equal(t, []Part{parts[1], parts[2]}, routed)

	carcass, routed = c.Partition(nil)
	assert.Empty(t, carcass)
	assert.Empty(t, routed)
}

func TestAssemblyReadinessIgnoresRoutedParts(t *testing.T) {
	c := New(nil)
	parts := []Part{
		{ID: "1", Name: "Gable"},
		{ID: "2", Name: "Door"},
		{ID: "3", Name: "Bottom"},
	}
	done := map[string]bool{"1": true, "3": true}

	r := c.AssemblyReadiness(parts, func(p Part) bool { return done[p.ID] })
	assert.Equal(t, Readiness{CarcassTotal: 2, CarcassDone: 2, RoutedTotal: 1, Ready: true}, r)

	done["3"] = false
	r = c.AssemblyReadiness(parts, func(p Part) bool { return done[p.ID] })
	assert.False(t, r.Ready)
}

func TestAssemblyReadinessNilDone(t *testing.T) {
	c := New(nil)
	parts := []Part{{ID: "1", Name: "Gable"}, {ID: "2", Name: "Door"}}

	var r Readiness
	require.NotPanics(t, func() { r = c.AssemblyReadiness(parts, nil) })
	assert.Equal(t, Readiness{CarcassTotal: 1, CarcassDone: 0, RoutedTotal: 1, Ready: false}, r)

	// Only routed parts: nothing blocks assembly
	r = c.AssemblyReadiness([]Part{{ID: "2", Name: "Door"}}, nil)
	assert.True(t, r.Ready)
}

func TestDecide(t *testing.T) {
	c := New(nil)
	d := c.Decide(Part{ID: "7", Name: "Drawer Front"})
	assert.Equal(t, CategoryDoorsDrawerFronts, d.Category)
	assert.Equal(t, RackDoorsDrawerFronts, d.RackType)
	assert.True(t, d.Routed)
}

func TestKeywordMutation(t *testing.T) {
	c := New(nil)
	p := Part{Name: "Glass Insert"}
	require.Equal(t, CategoryCarcass, c.Classify(p))

	assert.True(t, c.AddKeyword(CategoryDoorsDrawerFronts, "  GLASS  "))
	assert.False(t, c.AddKeyword(CategoryDoorsDrawerFronts, "glass"), "duplicate insert is a no-op")
	assert.Equal(t, CategoryDoorsDrawerFronts, c.Classify(p))
	assert.Contains(t, c.Rules().Keywords(CategoryDoorsDrawerFronts), "glass")

	assert.True(t, c.RemoveKeyword(CategoryDoorsDrawerFronts, "Glass"))
	assert.False(t, c.RemoveKeyword(CategoryDoorsDrawerFronts, "glass"))
	assert.Equal(t, CategoryCarcass, c.Classify(p))

	assert.False(t, c.AddKeyword(CategoryHardwareMisc, "   "))
}

func TestSharedRuleSet(t *testing.T) {
	rules := DefaultRules()
	a, b := New(rules), New(rules)

	a.AddKeyword(CategoryHardwareMisc, "caster")
	assert.Equal(t, CategoryHardwareMisc, b.Classify(Part{Name: "Caster wheel"}))

	clone := rules.Clone()
	clone.Remove(CategoryHardwareMisc, "caster")
	assert.Equal(t, CategoryHardwareMisc, a.Classify(Part{Name: "Caster wheel"}))
}

func TestRulesFromMap(t *testing.T) {
	rs, err := RulesFromMap(map[string][]string{
		"doors_drawer_fronts": {"Door", "door"},
		"hardware_misc":       {"hinge"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"door"}, rs.Keywords(CategoryDoorsDrawerFronts))
	assert.Equal(t, []string{"hinge"}, rs.Keywords(CategoryHardwareMisc))

	_, err = RulesFromMap(map[string][]string{"cabinets": {"x"}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

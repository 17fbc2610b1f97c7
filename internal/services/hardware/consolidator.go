// Package hardware consolidates raw hardware line items into quantity-aggregated
// groups and reports which data-entry convention produced them.
//
// Two conventions exist for "N units of hardware X": N records of quantity 1
// sharing one name, or a single record of quantity N. Both consolidate to the
// same total.
package hardware

import "sort"

// Status is the shipping status of a hardware record or group
type Status string

const (
	StatusPending Status = "pending"
	StatusShipped Status = "shipped"
)

// Record is one raw hardware line item
type Record struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Status      Status `json:"status"`
	WorkOrderID string `json:"work_order_id"`
}

// Group is the consolidated view of all records sharing one name.
// ID and WorkOrderID are borrowed from the first record encountered;
// callers must not rely on which one.
type Group struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Status      Status   `json:"status"`
	Records     []Record `json:"records"`
	WorkOrderID string   `json:"work_order_id"`
}

// GroupRecords groups records by exact, case-sensitive name.
// Output is sorted by name. An empty name is a valid key.
func GroupRecords(records []Record) []Group {
	byName := make(map[string]*Group)
	var names []string

	for _, rec := range records {
		g, ok := byName[rec.Name]
		if !ok {
			g = &Group{
				ID:          rec.ID,
				Name:        rec.Name,
				Status:      StatusShipped,
				WorkOrderID: rec.WorkOrderID,
			}
			byName[rec.Name] = g
			names = append(names, rec.Name)
		}
		g.Quantity += rec.Quantity
		g.Records = append(g.Records, rec)
		if rec.Status != StatusShipped {
			g.Status = StatusPending
		}
	}

	sort.Strings(names)
	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, *byName[name])
	}
	return groups
}

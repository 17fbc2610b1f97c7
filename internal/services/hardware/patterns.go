package hardware

import "sort"

// Pattern is the data-entry convention observed for one hardware name
type Pattern string

const (
	// PatternDuplicatedEntity: several records of quantity 1
	PatternDuplicatedEntity Pattern = "duplicated_entity"
	// PatternSingleEntity: one record carrying the whole quantity
	PatternSingleEntity Pattern = "single_entity"
	// PatternMixed covers everything else, including a lone record of quantity 1
	PatternMixed Pattern = "mixed"
)

// PatternEntry describes one hardware name within a pattern bucket
type PatternEntry struct {
	Name          string `json:"name"`
	RecordCount   int    `json:"record_count"`
	TotalQuantity int    `json:"total_quantity"`
}

// PatternReport is a read-only diagnostic over a set of hardware records
type PatternReport struct {
	DuplicatedEntity []PatternEntry `json:"duplicated_entity"`
	SingleEntity     []PatternEntry `json:"single_entity"`
	Mixed            []PatternEntry `json:"mixed"`
	DistinctNames    int            `json:"distinct_names"`
	TotalRecords     int            `json:"total_records"`
}

// PatternOf classifies the records of a single hardware name
func PatternOf(records []Record) Pattern {
	switch {
	case len(records) > 1 && allQuantityOne(records):
		return PatternDuplicatedEntity
	case len(records) == 1 && records[0].Quantity > 1:
		return PatternSingleEntity
	default:
		return PatternMixed
	}
}

func allQuantityOne(records []Record) bool {
	for _, r := range records {
		if r.Quantity != 1 {
			return false
		}
	}
	return true
}

// AnalyzePatterns buckets every distinct name by the convention its records follow.
// It is independent of GroupRecords and never mutates the input.
func AnalyzePatterns(records []Record) PatternReport {
	byName := make(map[string][]Record)
	for _, rec := range records {
		byName[rec.Name] = append(byName[rec.Name], rec)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	report := PatternReport{
		DuplicatedEntity: []PatternEntry{},
		SingleEntity:     []PatternEntry{},
		Mixed:            []PatternEntry{},
		DistinctNames:    len(names),
		TotalRecords:     len(records),
	}

	for _, name := range names {
		recs := byName[name]
		entry := PatternEntry{Name: name, RecordCount: len(recs)}
		for _, r := range recs {
			entry.TotalQuantity += r.Quantity
		}

		switch PatternOf(recs) {
		case PatternDuplicatedEntity:
			report.DuplicatedEntity = append(report.DuplicatedEntity, entry)
		case PatternSingleEntity:
			report.SingleEntity = append(report.SingleEntity, entry)
		default:
			report.Mixed = append(report.Mixed, entry)
		}
	}

	return report
}

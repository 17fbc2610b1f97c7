package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
)

// ErrWorkOrderNotFound is returned when a work order does not exist
var ErrWorkOrderNotFound = errors.New("work order not found")

// RuleStore persists classifier keyword rules
type RuleStore struct {
	db *gorm.DB
}

// NewRuleStore creates a rule store
func NewRuleStore(db *DB) *RuleStore {
	return &RuleStore{db: db.DB}
}

// LoadRules builds a rule set from the stored keywords.
// The boolean is false when the rules have never been seeded.
func (s *RuleStore) LoadRules(ctx context.Context) (*classifier.KeywordRuleSet, bool, error) {
	var rows []models.KeywordRule
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("failed to load keyword rules: %w", err)
	}

	var marker models.Setting
	err := s.db.WithContext(ctx).Where("key = ?", models.SettingKeywordRulesSeeded).First(&marker).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to load rule seed marker: %w", err)
	}

	return rulesFromRows(rows, err == nil)
}

// rulesFromRows assembles stored keywords. Rows without a marker come from
// databases seeded before the marker existed and still count as seeded.
func rulesFromRows(rows []models.KeywordRule, seeded bool) (*classifier.KeywordRuleSet, bool, error) {
	if len(rows) == 0 && !seeded {
		return nil, false, nil
	}

	m := make(map[string][]string)
	for _, r := range rows {
		m[r.Category] = append(m[r.Category], r.Keyword)
	}
	rs, err := classifier.RulesFromMap(m)
	if err != nil {
		return nil, false, err
	}
	return rs, true, nil
}

// SeedRules stores every keyword of the rule set, skipping existing ones,
// and marks the rules as seeded
func (s *RuleStore) SeedRules(ctx context.Context, rs *classifier.KeywordRuleSet) error {
	rows := ruleRows(rs)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
				return err
			}
		}
		marker := models.Setting{Key: models.SettingKeywordRulesSeeded, Value: "true"}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&marker).Error
	})
}

func ruleRows(rs *classifier.KeywordRuleSet) []models.KeywordRule {
	var rows []models.KeywordRule
	for _, cat := range classifier.Categories {
		for _, kw := range rs.Keywords(cat) {
			rows = append(rows, models.KeywordRule{Category: string(cat), Keyword: kw})
		}
	}
	return rows
}

// SaveRule stores a single keyword
func (s *RuleStore) SaveRule(ctx context.Context, category classifier.Category, keyword string) error {
	rule := models.KeywordRule{Category: string(category), Keyword: keyword}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rule).Error
}

// DeleteRule removes a single keyword
func (s *RuleStore) DeleteRule(ctx context.Context, category classifier.Category, keyword string) error {
	return s.db.WithContext(ctx).
		Where("category = ? AND keyword = ?", string(category), keyword).
		Delete(&models.KeywordRule{}).Error
}

// WorkOrderStore reads work order contents
type WorkOrderStore struct {
	db *gorm.DB
}

// NewWorkOrderStore creates a work order store
func NewWorkOrderStore(db *DB) *WorkOrderStore {
	return &WorkOrderStore{db: db.DB}
}

// Parts returns the parts of a work order
func (s *WorkOrderStore) Parts(ctx context.Context, workOrderID string) ([]models.Part, error) {
	if err := s.exists(ctx, workOrderID); err != nil {
		return nil, err
	}
	var parts []models.Part
	if err := s.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Order("id").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to load parts: %w", err)
	}
	return parts, nil
}

// Hardware returns the raw hardware items of a work order
func (s *WorkOrderStore) Hardware(ctx context.Context, workOrderID string) ([]models.HardwareItem, error) {
	if err := s.exists(ctx, workOrderID); err != nil {
		return nil, err
	}
	var items []models.HardwareItem
	if err := s.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load hardware: %w", err)
	}
	return items, nil
}

// Racks returns all racks of the given type ordered for assignment
func (s *WorkOrderStore) Racks(ctx context.Context, rackType classifier.RackType) ([]models.Rack, error) {
	var racks []models.Rack
	if err := s.db.WithContext(ctx).Where("type = ?", string(rackType)).Order("sort_order, id").Find(&racks).Error; err != nil {
		return nil, fmt.Errorf("failed to load racks: %w", err)
	}
	return racks, nil
}

func (s *WorkOrderStore) exists(ctx context.Context, workOrderID string) error {
	var wo models.WorkOrder
	err := s.db.WithContext(ctx).Select("id").Where("id = ?", workOrderID).First(&wo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWorkOrderNotFound
	}
	return err
}

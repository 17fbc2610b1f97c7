package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"github.com/xelth-com/eckshop/internal/config"
	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
)

func TestDSNExternal(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		Username: "shop",
		Password: "secret",
		Database: "eckshop",
	}
	assert.Equal(t, "host=db.internal port=5432 user=shop password=secret dbname=eckshop sslmode=disable", dsn(cfg))
}

func TestDSNEmbedded(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:         "db.internal",
		Port:         "5432",
		Username:     "postgres",
		Password:     "ignored",
		Database:     "eckshop",
		Embedded:     true,
		EmbeddedPath: t.TempDir(),
		EmbeddedPort: 6543,
	}
	assert.Equal(t, "host=localhost port=6543 user=postgres password=postgres dbname=eckshop sslmode=disable", dsn(cfg))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Warn, gormLogLevel(config.DatabaseConfig{}))
	assert.Equal(t, logger.Silent, gormLogLevel(config.DatabaseConfig{Alter: true}))
}

func TestRulesFromRows(t *testing.T) {
	rs, found, err := rulesFromRows(nil, false)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, rs)

	// Every keyword deleted after seeding: stays empty
	rs, found, err = rulesFromRows(nil, true)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, rs.Keywords(classifier.CategoryDoorsDrawerFronts))
	assert.Empty(t, rs.Keywords(classifier.CategoryHardwareMisc))

	rows := []models.KeywordRule{
		{Category: "doors_drawer_fronts", Keyword: "door"},
		{Category: "hardware_misc", Keyword: "hinge"},
	}
	rs, found, err = rulesFromRows(rows, false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"door"}, rs.Keywords(classifier.CategoryDoorsDrawerFronts))

	_, _, err = rulesFromRows([]models.KeywordRule{{Category: "bogus", Keyword: "x"}}, true)
	assert.Error(t, err)
}

func TestRuleRows(t *testing.T) {
	rs := classifier.NewKeywordRuleSet()
	rs.Add(classifier.CategoryAdjustableShelves, "adj shelf")
	assert.Equal(t, []models.KeywordRule{{Category: "adjustable_shelves", Keyword: "adj shelf"}}, ruleRows(rs))
	assert.Empty(t, ruleRows(classifier.NewKeywordRuleSet()))
}

type fakeRuleStore struct {
	stored  *classifier.KeywordRuleSet
	seeded  bool
	loadErr error
	seeds   int
}

func (f *fakeRuleStore) LoadRules(ctx context.Context) (*classifier.KeywordRuleSet, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	if !f.seeded {
		return nil, false, nil
	}
	return f.stored.Clone(), true, nil
}

func (f *fakeRuleStore) SeedRules(ctx context.Context, rs *classifier.KeywordRuleSet) error {
	f.stored = rs.Clone()
	f.seeded = true
	f.seeds++
	return nil
}

func TestInitRulesSeedsOnce(t *testing.T) {
	store := &fakeRuleStore{}
	fallbacks := 0
	fallback := func() (*classifier.KeywordRuleSet, error) {
		fallbacks++
		return classifier.DefaultRules(), nil
	}

	rules, err := InitRules(context.Background(), store, fallback, zap.NewNop())
	require.NoError(t, err)
	assert.NotEmpty(t, rules.Keywords(classifier.CategoryDoorsDrawerFronts))
	assert.Equal(t, 1, store.seeds)

	// Operators remove every keyword; the next start keeps the empty set
	store.stored = classifier.NewKeywordRuleSet()
	rules, err = InitRules(context.Background(), store, fallback, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, rules.Keywords(classifier.CategoryDoorsDrawerFronts))
	assert.Equal(t, 1, store.seeds)
	assert.Equal(t, 1, fallbacks)
}

func TestInitRulesErrors(t *testing.T) {
	boom := errors.New("boom")

	defaults := func() (*classifier.KeywordRuleSet, error) { return classifier.DefaultRules(), nil }
	_, err := InitRules(context.Background(), &fakeRuleStore{loadErr: boom}, defaults, zap.NewNop())
	assert.ErrorIs(t, err, boom)

	store := &fakeRuleStore{}
	_, err = InitRules(context.Background(), store, func() (*classifier.KeywordRuleSet, error) { return nil, boom }, zap.NewNop())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.seeds)
}

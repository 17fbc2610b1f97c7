package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestClearDemoTablesReportsFailure(t *testing.T) {
	// Nothing listens on port 1, so the first statement fails
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=seed dbname=seed sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	err = clearDemoTables(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncate hardware_items")
}

func TestDemoTablesClearChildrenFirst(t *testing.T) {
	assert.Equal(t, []string{"hardware_items", "parts", "work_orders", "racks"}, demoTables)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "ENVIRONMENT", "AWS_REGION",
		"INVENTORY_TABLE_NAME", "TABLE_NAME", "INDEX_NAME", "EVENT_BUS_NAME",
		"LOG_LEVEL", "ENABLE_METRICS", "ENABLE_EVENTS", "ENABLE_CORS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.Equal(t, "inventory", cfg.InventoryTable)
	assert.Equal(t, "nameAndCreatedAt", cfg.IndexName)
	assert.Equal(t, "inventory-events", cfg.EventBusName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableEvents)
	assert.True(t, cfg.EnableCORS)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("INVENTORY_TABLE_NAME", "inventory-prod")
	t.Setenv("INDEX_NAME", "byName")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_METRICS", "true")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "inventory-prod", cfg.InventoryTable)
	assert.Equal(t, "byName", cfg.IndexName)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableCORS)
}

func TestLoadConfig_LegacyTableNameFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABLE_NAME", "inventory-legacy")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "inventory-legacy", cfg.InventoryTable)
}

func TestValidate_RequiresTableName(t *testing.T) {
	cfg := &Config{Environment: "development"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVENTORY_TABLE_NAME")
}

func TestValidate_ProductionEventsNeedBusName(t *testing.T) {
	cfg := &Config{
		Environment:    "production",
		InventoryTable: "inventory",
		EnableEvents:   true,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENT_BUS_NAME")
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := &Config{Environment: "development"}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{Environment: "production"}
	assert.False(t, prod.IsDevelopment())
	assert.True(t, prod.IsProduction())
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "db:5432/forst")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"WEST", "SOUTH", "NORTH", "EAST"}, cfg.Forst.ZoneOrder)
	assert.Len(t, cfg.Forst.ProductTypes, 10)
	assert.Equal(t, []string{"CANCELLED", "LOST"}, cfg.Forst.ExcludedStatuses)
	assert.Equal(t, int64(100000), cfg.Forst.LakhDivisor)
	assert.False(t, cfg.ForstSnapshot.Enabled)
	assert.Equal(t, "postgres://postgres:root@db:5432/forst", cfg.Database.DSN)
}

func TestNewConfig_OverridesTaxonomyFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("FORST_ZONE_ORDER", "NORTH,EAST")
	t.Setenv("FORST_PRODUCT_TYPES", "SPP,CONTRACT")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"NORTH", "EAST"}, cfg.Forst.ZoneOrder)
	assert.Equal(t, []string{"SPP", "CONTRACT"}, cfg.Forst.ProductTypes)
}

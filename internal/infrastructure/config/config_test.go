package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"GENSET_APP_NAME":                 os.Getenv("GENSET_APP_NAME"),
		"GENSET_APP_ENV":                  os.Getenv("GENSET_APP_ENV"),
		"GENSET_APP_PORT":                 os.Getenv("GENSET_APP_PORT"),
		"GENSET_DATABASE_HOST":            os.Getenv("GENSET_DATABASE_HOST"),
		"GENSET_DATABASE_PORT":            os.Getenv("GENSET_DATABASE_PORT"),
		"GENSET_DATABASE_USER":            os.Getenv("GENSET_DATABASE_USER"),
		"GENSET_DATABASE_PASSWORD":        os.Getenv("GENSET_DATABASE_PASSWORD"),
		"GENSET_DATABASE_DBNAME":          os.Getenv("GENSET_DATABASE_DBNAME"),
		"GENSET_DATABASE_SSLMODE":         os.Getenv("GENSET_DATABASE_SSLMODE"),
		"GENSET_BILLING_DEFAULT_TEMPLATE": os.Getenv("GENSET_BILLING_DEFAULT_TEMPLATE"),
		"GENSET_BILLING_WATERMARK_PAID":   os.Getenv("GENSET_BILLING_WATERMARK_PAID"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "gensetworks-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gensetworks", cfg.Database.DBName)
		assert.Equal(t, "modern", cfg.Billing.DefaultTemplate)
		assert.True(t, cfg.Billing.WatermarkPaid)
		assert.True(t, cfg.Billing.IncludeLogo)
	})

	t.Run("loads values from environment variables with GENSET prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("GENSET_APP_NAME", "test-app")
		os.Setenv("GENSET_APP_PORT", "9000")
		os.Setenv("GENSET_DATABASE_HOST", "testdb.local")
		os.Setenv("GENSET_DATABASE_PORT", "5433")
		os.Setenv("GENSET_BILLING_DEFAULT_TEMPLATE", "luxury")
		os.Setenv("GENSET_BILLING_WATERMARK_PAID", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "luxury", cfg.Billing.DefaultTemplate)
		assert.False(t, cfg.Billing.WatermarkPaid)
	})

	t.Run("rejects unknown default template", func(t *testing.T) {
		clearEnv()
		os.Setenv("GENSET_BILLING_DEFAULT_TEMPLATE", "sparkly")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("GENSET_APP_ENV", "production")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "genset",
		Password: "p@ss/word",
		DBName:   "billing",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word")
}

// Package testdb opens migrated in-memory sqlite stores for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-orders/config"
)

// Open returns a fresh database private to t, closed when t ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	cfg := &config.Config{
		Driver:   config.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
		LogLevel: "silent",
	}

	db, err := config.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.Close(db) })

	require.NoError(t, config.Migrate(db))
	return db
}

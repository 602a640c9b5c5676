package database

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"shop/internal/config"
	"shop/internal/metrics"
	"shop/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func TestOpenSQLite_MigratesEveryModel(t *testing.T) {
	db, err := OpenSQLite(memoryDSN())
	require.NoError(t, err)

	for _, m := range models.All() {
		table := m.(models.Entity).TableName()
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "category_id"))
	assert.True(t, db.Migrator().HasColumn(&models.PageContent{}, "sort_order"))
}

func TestOpen_RejectsMemoryDriver(t *testing.T) {
	_, err := Open(config.Config{DBDriver: config.DriverMemory})
	assert.Error(t, err)
}

func TestOpen_SQLiteRecordsQueryMetrics(t *testing.T) {
	db, err := Open(config.Config{
		DBDriver:     config.DriverSQLite,
		DatabaseDSN:  memoryDSN(),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)

	before := testutil.CollectAndCount(metrics.DbQueryDuration)
	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DbQueryDuration), before)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DbQueryDuration), 1)
}

func TestMigrations_AreEmbeddedInPairs(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups, downs := 0, 0
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups++
		case strings.HasSuffix(f, ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)

	up, err := migrationsFS.ReadFile("migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	for _, m := range models.All() {
		table := m.(models.Entity).TableName()
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

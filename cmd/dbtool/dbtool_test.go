package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blood-donation-service/internal/adapters/repositories"
	"blood-donation-service/internal/config"
	"blood-donation-service/internal/platform/db"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		seedFile = ""
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func sqliteEnv(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tool.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("REDIS_URL", "")
	return dbPath
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func openStore(t *testing.T, dbPath string) *repositories.Store {
	t.Helper()
	sqlDB, err := db.OpenSqlite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := repositories.NewStore(config.DriverSqlite, sqlDB)
	require.NoError(t, err)
	return store
}

func TestMigrateCreatesSchema(t *testing.T) {
	dbPath := sqliteEnv(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema ready.")

	items, err := openStore(t, dbPath).Inventory.ListInventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeedLoadsFile(t *testing.T) {
	dbPath := sqliteEnv(t)
	seed := writeSeed(t, `[{"bloodType":"O-","units":12},{"bloodType":"AB+","units":3}]`)

	out, err := execute(t, "seed", "--file", seed)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 2 inventory rows")

	got, err := openStore(t, dbPath).Inventory.GetInventory(context.Background(), "O-")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Units)
}

func TestSeedUsesSeedPathByDefault(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("SEED_PATH", writeSeed(t, `[{"bloodType":"B-","units":1}]`))

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 1 inventory rows")
}

func TestSeedInvalidFile(t *testing.T) {
	sqliteEnv(t)
	seed := writeSeed(t, `[{"bloodType":"O-","units":-4}]`)

	_, err := execute(t, "seed", "--file", seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding failed")
}

func TestSeedInvalidatesCache(t *testing.T) {
	sqliteEnv(t)
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	require.NoError(t, mr.Set("blood-donation:inventory:all", `[]`))

	seed := writeSeed(t, `[{"bloodType":"A-","units":7}]`)
	_, err := execute(t, "seed", "--file", seed)
	require.NoError(t, err)

	assert.False(t, mr.Exists("blood-donation:inventory:all"))
}

func TestUnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := execute(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

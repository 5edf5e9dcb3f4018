package db

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"gym-membership-go/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_seed.sql":  {Data: []byte("SELECT 2;")},
		"0001_init.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("notes")},
		"archive/x.sql":  {Data: []byte("SELECT 0;")},
		"0010_later.sql": {Data: []byte("SELECT 10;")},
	}

	files, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_seed.sql", "0010_later.sql"}, files)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	files, err := migrationFiles(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "0001_init.sql", files[0])
}

func TestMigrationSourcePrefersDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_local.sql"), []byte("SELECT 1;"), 0o600))

	files, err := migrationFiles(MigrationSource(dir, migrations.FS))
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_local.sql"}, files)

	files, err = migrationFiles(MigrationSource("", migrations.FS))
	require.NoError(t, err)
	assert.Equal(t, "0001_init.sql", files[0])
}

//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"ariga.io/atlas/sql/migrate"
	"github.com/stretchr/testify/require"
)

// atlas refuses to apply a directory whose atlas.sum is out of date.
func TestMigrationsChecksum(t *testing.T) {
	const migrationsDir = "../../migrations"
	dir, err := migrate.NewLocalDir(migrationsDir)
	require.NoError(t, err)

	require.NoError(t, migrate.Validate(dir))

	sum, err := dir.Checksum()
	require.NoError(t, err)
	want, err := sum.MarshalText()
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(migrationsDir, migrate.HashFileName))
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}

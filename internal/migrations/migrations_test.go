package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := map[string]struct {
		version int
		ok      bool
	}{
		"V1__club_portal.sql": {1, true},
		"V12__add_index.sql":  {12, true},
		"V0__nothing.sql":     {0, false},
		"Vx__bad.sql":         {0, false},
		"V3_missing.sql":      {0, false},
		"init.sql":            {0, false},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			version, ok := parseVersion(name)
			assert.Equal(t, want.ok, ok)
			assert.Equal(t, want.version, version)
		})
	}
}

func TestListMigrationsOrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"V10__later.sql", "V2__second.sql", "V1__first.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "V5__dir.sql"), 0o755))

	migs, err := listMigrations(dir)
	require.NoError(t, err)
	names := []string{}
	for _, m := range migs {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"V1__first.sql", "V2__second.sql", "V10__later.sql"}, names)
}

func TestListMigrationsRejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V1__a.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "V01__b.sql"), nil, 0o644))

	_, err := listMigrations(dir)
	assert.ErrorContains(t, err, "share version 1")
}

func TestListMigrationsRejectsUnversionedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.sql"), nil, 0o644))

	_, err := listMigrations(dir)
	assert.ErrorContains(t, err, "seed.sql")
}

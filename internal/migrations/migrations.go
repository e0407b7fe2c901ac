// Package migrations applies the versioned SQL files under migrations/.
// Files are named V<n>__<description>.sql and run once each, in version order.
package migrations

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type migration struct {
	Version int
	Name    string
	Path    string
}

func Apply(ctx context.Context, db *sqlx.DB, dir string) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}
	migs, err := listMigrations(dir)
	if err != nil {
		return err
	}
	applied := []int{}
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return errors.Wrap(err, "read schema_migrations")
	}
	done := map[int]bool{}
	for _, v := range applied {
		done[v] = true
	}
	for _, mig := range migs {
		if done[mig.Version] {
			continue
		}
		if err := applyMigration(ctx, db, mig); err != nil {
			return err
		}
	}
	return nil
}

func listMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read migrations dir")
	}
	migs := make([]migration, 0, len(entries))
	seen := map[int]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		version, ok := parseVersion(name)
		if !ok {
			return nil, errors.Errorf("migration %s: name must start with V<n>__", name)
		}
		if prev, dup := seen[version]; dup {
			return nil, errors.Errorf("migrations %s and %s share version %d", prev, name, version)
		}
		seen[version] = name
		migs = append(migs, migration{Version: version, Name: name, Path: filepath.Join(dir, name)})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	return migs, nil
}

// applyMigration runs the file and records it in one transaction.
func applyMigration(ctx context.Context, db *sqlx.DB, mig migration) error {
	content, err := os.ReadFile(mig.Path)
	if err != nil {
		return errors.Wrapf(err, "read %s", mig.Name)
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin migration")
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return errors.Wrapf(err, "apply %s", mig.Name)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, mig.Version, mig.Name); err != nil {
		return errors.Wrapf(err, "record %s", mig.Name)
	}
	return errors.Wrapf(tx.Commit(), "commit %s", mig.Name)
}

func parseVersion(name string) (int, bool) {
	if !strings.HasPrefix(name, "V") {
		return 0, false
	}
	raw, _, found := strings.Cut(name[1:], "__")
	if !found {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

package db

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"gym-membership-go/pkg/logger"

	"gorm.io/gorm"
)

// Migrate applies every *.sql file in fsys that is not yet recorded in
// schema_migrations, in filename order. Each file runs in its own transaction
// together with its ledger row.
func Migrate(db *gorm.DB, fsys fs.FS, log logger.Logger) error {
	if err := ensureSchemaMigrations(db); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		return err
	}

	applied := 0
	for _, name := range files {
		done, err := isMigrationApplied(db, name)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}

		sql := strings.TrimSpace(string(contents))
		if sql == "" {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(sql).Error; err != nil {
				return err
			}
			return recordMigration(tx, name)
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		log.Info("db: migration applied", "file", name)
		applied++
	}

	log.Info("db: migrations up to date", "applied", applied, "total", len(files))
	return nil
}

// MigrationSource returns the directory dir when it is set and embedded
// otherwise.
func MigrationSource(dir string, embedded fs.FS) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name := entry.Name(); strings.HasSuffix(name, ".sql") {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

func ensureSchemaMigrations(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`).Error
}

func isMigrationApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Raw("SELECT COUNT(1) FROM schema_migrations WHERE filename = ?", name).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func recordMigration(db *gorm.DB, name string) error {
	return db.Exec("INSERT INTO schema_migrations (filename, applied_at) VALUES (?, ?)", name, time.Now().UTC()).Error
}

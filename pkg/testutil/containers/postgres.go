//go:build integration

package containers

import (
	"context"
	"testing"

	"gym-membership-go/internal/config"
	"gym-membership-go/internal/db"
	"gym-membership-go/migrations"
	"gym-membership-go/pkg/logger"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// PostgresContainer is a migrated Postgres instance for one test package.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *gorm.DB
}

func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("gym_membership"),
		tcpostgres.WithUsername("gym"),
		tcpostgres.WithPassword("gym"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	log := logger.Discard()
	gormDB, err := db.NewPostgres(config.DBConfig{DSN: dsn, MaxOpenConns: 20, MaxIdleConns: 10}, log)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.Migrate(gormDB, migrations.FS, log); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: gormDB}
}

// Reset removes members and everything that references them. Seeded plans
// are kept.
func (p *PostgresContainer) Reset(t *testing.T) {
	t.Helper()
	if err := p.DB.Exec("TRUNCATE check_ins, memberships, members").Error; err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}

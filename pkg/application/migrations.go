package application

import (
	"context"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// MigrationManager collects embedded goose SQL schemas from modules and
// applies them in registration order. Each module tracks its own version
// table so module version numbers never collide.
type MigrationManager interface {
	RegisterSchema(module string, fsys fs.FS)
	Run(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type moduleSchema struct {
	module string
	fsys   fs.FS
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []moduleSchema
}

func (m *migrationManager) RegisterSchema(module string, fsys fs.FS) {
	m.schemas = append(m.schemas, moduleSchema{module: module, fsys: fsys})
}

func (m *migrationManager) Run(ctx context.Context) error {
	if len(m.schemas) == 0 {
		return nil
	}
	db := stdlib.OpenDBFromPool(m.pool)
	defer func() { _ = db.Close() }()

	for _, schema := range m.schemas {
		store, err := database.NewStore(database.DialectPostgres, "goose_version_"+schema.module)
		if err != nil {
			return err
		}
		provider, err := goose.NewProvider("", db, schema.fsys, goose.WithStore(store))
		if err != nil {
			return err
		}
		if _, err := provider.Up(ctx); err != nil {
			return err
		}
	}
	return nil
}

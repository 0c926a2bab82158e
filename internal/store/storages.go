package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
)

const memoryDSN = "memory"

// Storages groups the stores used by the service layer together with the
// underlying connection, if any.
type Storages struct {
	UserStore  UserStore
	CheckStore CheckStore

	db *DB
}

// NewStorages selects a backend from cfg.DB.DSN:
//   - empty or "memory" → in-process maps, nothing survives a restart;
//   - "sqlite://path" or "file:path" → SQLite;
//   - anything else → PostgreSQL.
//
// SQL backends are migrated before the stores are returned.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	dsn := cfg.DB.DSN
	if dsn == "" || dsn == memoryDSN {
		logger.Info().Msg("using in-memory storages")
		return NewMemoryStorages(), nil
	}

	var (
		db  *DB
		err error
	)
	if IsSQLiteDSN(dsn) {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	} else {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserStore:  NewUserRepository(db, logger),
		CheckStore: NewCheckRepository(db, logger),
		db:         db,
	}, nil
}

// NewMemoryStorages returns empty in-memory stores.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserStore:  NewMemoryUserStore(),
		CheckStore: NewMemoryCheckStore(),
	}
}

// Close releases the database connection, if there is one.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

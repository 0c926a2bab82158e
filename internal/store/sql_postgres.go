package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
)

const (
	uniqueViolationCode = pgerrcode.UniqueViolation

	maxPingRetries = 5
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient failures
	err = pingWithBackoff(ctx, conn, classifier, log)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

// pingWithBackoff pings the database with exponential backoff. Errors the
// classifier marks as non-retryable stop the loop at once; a driver error
// without a PostgreSQL code (refused connection, DNS) is retried.
func pingWithBackoff(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxPingRetries),
		ctx,
	)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}

		if postgresError(err) != "" && classifier.Classify(err) == NonRetryable {
			return backoff.Permanent(err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed, retrying")
		return err
	}, policy)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

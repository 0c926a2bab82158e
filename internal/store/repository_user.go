package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// userRepository is the SQL implementation of [UserStore]. It handles
// account creation, lookup and quota accounting against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserStore] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserStore {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		if isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		if isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, err
	}

	return created, nil
}

// FindUserByLogin retrieves the user with the given login.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder(), sq.Eq{"login": login})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.FindUserByLogin", query, args)
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder(), sq.Eq{"user_id": userID})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.GetUser", query, args)
}

// DecrementQuota consumes one check in a single conditional UPDATE, so two
// concurrent admissions can never both see the same remaining count.
// When no row is updated the user either does not exist or has no checks
// left; a follow-up read tells the two apart.
func (r *userRepository) DecrementQuota(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildDecrementQuotaQuery(r.db.builder(), userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, "*userRepository.DecrementQuota", query, args)
	if errors.Is(err, ErrUserNotFound) {
		if _, getErr := r.GetUser(ctx, userID); getErr != nil {
			return models.User{}, getErr
		}
		return models.User{}, ErrQuotaExhausted
	}

	return user, err
}

func (r *userRepository) RestoreQuota(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRestoreQuotaQuery(r.db.builder(), userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.RestoreQuota").Int64("user_id", userID).Msg("failed to restore quota")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) SetPlan(ctx context.Context, userID int64, tier models.Tier, checksRemaining int) (models.User, error) {
	query, args, err := buildSetPlanQuery(r.db.builder(), userID, tier, checksRemaining)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.SetPlan", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user models.User
		tier string
	)

	err := row.Scan(
		&user.UserID,
		&user.Login,
		&user.PasswordHash,
		&tier,
		&user.ChecksRemaining,
		&user.CreatedAt,
	)
	user.Tier = models.Tier(tier)

	return user, err
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// checkRepository is the SQL implementation of [CheckStore] on the "checks"
// table. Status changes are conditional UPDATEs, so the database enforces
// the forward-only order and the single terminal write.
type checkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCheckRepository constructs a [CheckStore] backed by db.
func NewCheckRepository(db *DB, logger *logger.Logger) CheckStore {
	logger.Debug().Msg("creating check repository")
	return &checkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *checkRepository) Create(ctx context.Context, check models.CheckRecord) (models.CheckRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCheckQuery(r.db.builder(), check)
	if err != nil {
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*checkRepository.Create").
			Str("check_id", check.ID).
			Msg("failed to insert check")

		if isUniqueViolation(err) {
			return models.CheckRecord{}, ErrCheckAlreadyExists
		}
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return check, nil
}

func (r *checkRepository) Get(ctx context.Context, id string, userID int64) (models.CheckRecord, error) {
	query, args, err := buildSelectCheckQuery(r.db.builder(), id, userID)
	if err != nil {
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	check, err := r.queryCheck(ctx, "*checkRepository.Get", query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CheckRecord{}, ErrCheckNotFound
	}
	return check, err
}

func (r *checkRepository) List(ctx context.Context, userID int64) ([]models.CheckRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChecksByUserQuery(r.db.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*checkRepository.List").
			Int64("user_id", userID).
			Msg("failed to execute query for listing checks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	checks := make([]models.CheckRecord, 0)
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			log.Err(err).
				Str("func", "*checkRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan check row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		checks = append(checks, check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return checks, nil
}

func (r *checkRepository) FindByWorkflow(ctx context.Context, workflowID string) (models.CheckRecord, error) {
	query, args, err := buildSelectCheckByWorkflowQuery(r.db.builder(), workflowID)
	if err != nil {
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	check, err := r.queryCheck(ctx, "*checkRepository.FindByWorkflow", query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CheckRecord{}, ErrWorkflowNotFound
	}
	return check, err
}

func (r *checkRepository) AttachWorkflow(ctx context.Context, handle models.WorkflowHandle) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAttachWorkflowQuery(r.db.builder(), handle)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*checkRepository.AttachWorkflow").
			Str("check_id", handle.CheckID).
			Str("workflow_id", handle.WorkflowID).
			Msg("failed to attach workflow")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCheckNotFound
	}

	return nil
}

func (r *checkRepository) Advance(ctx context.Context, id string, status models.CheckStatus) error {
	log := logger.FromContext(ctx)

	if _, ok := status.PreviousStage(); !ok {
		return ErrInvalidTransition
	}

	query, args, err := buildAdvanceCheckQuery(r.db.builder(), id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*checkRepository.Advance").
			Str("check_id", id).
			Str("status", string(status)).
			Msg("failed to advance check")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n > 0 {
		return nil
	}

	current, err := r.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if current.IsTerminal() {
		return ErrAlreadyFinalized
	}
	return ErrInvalidTransition
}

func (r *checkRepository) Finalize(ctx context.Context, id string, patch models.CheckPatch) (models.CheckRecord, error) {
	if !patch.Status.IsTerminal() {
		return models.CheckRecord{}, ErrInvalidTransition
	}

	var results []byte
	if patch.Results != nil {
		encoded, err := json.Marshal(patch.Results)
		if err != nil {
			return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrEncodingResults, err)
		}
		results = encoded
	}

	query, args, err := buildFinalizeCheckQuery(r.db.builder(), id, patch, results)
	if err != nil {
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	check, err := r.queryCheck(ctx, "*checkRepository.Finalize", query, args)
	if errors.Is(err, sql.ErrNoRows) {
		if _, statusErr := r.currentStatus(ctx, id); statusErr != nil {
			return models.CheckRecord{}, statusErr
		}
		return models.CheckRecord{}, ErrAlreadyFinalized
	}

	return check, err
}

func (r *checkRepository) currentStatus(ctx context.Context, id string) (models.CheckStatus, error) {
	query, args, err := buildSelectCheckStatusQuery(r.db.builder(), id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var status string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCheckNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.CheckStatus(status), nil
}

// queryCheck runs a single-row query and scans it. sql.ErrNoRows is passed
// through unwrapped so callers can map it to their own not-found error.
func (r *checkRepository) queryCheck(ctx context.Context, funcName, query string, args []any) (models.CheckRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.CheckRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	check, err := scanCheck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CheckRecord{}, sql.ErrNoRows
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return check, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheck(row rowScanner) (models.CheckRecord, error) {
	var (
		check          models.CheckRecord
		level, status  string
		completedAt    sql.NullTime
		processingTime sql.NullFloat64
		results        []byte
		workflowID     sql.NullString
		dispatchedAt   sql.NullTime
		lastStatus     sql.NullString
	)

	err := row.Scan(
		&check.ID,
		&check.UserID,
		&check.ApplicantName,
		&check.Email,
		&check.Phone,
		&check.PropertyAddress,
		&check.DateOfBirth,
		&check.MaskedSensitiveID,
		&level,
		&status,
		&check.CreatedAt,
		&check.EstimatedCompletion,
		&completedAt,
		&processingTime,
		&results,
		&check.Fallback,
		&check.Error,
		&workflowID,
		&dispatchedAt,
		&lastStatus,
	)
	if err != nil {
		return models.CheckRecord{}, err
	}

	check.CheckLevel = models.CheckLevel(level)
	check.Status = models.CheckStatus(status)

	if completedAt.Valid {
		t := completedAt.Time
		check.CompletedAt = &t
	}
	if processingTime.Valid {
		p := processingTime.Float64
		check.ProcessingTimeSeconds = &p
	}
	if len(results) > 0 {
		var res models.Results
		if err := json.Unmarshal(results, &res); err != nil {
			return models.CheckRecord{}, fmt.Errorf("%w: %w", ErrEncodingResults, err)
		}
		check.Results = &res
	}
	if workflowID.Valid && workflowID.String != "" {
		check.Workflow = &models.WorkflowHandle{
			WorkflowID:   workflowID.String,
			CheckID:      check.ID,
			DispatchedAt: dispatchedAt.Time,
			LastStatus:   lastStatus.String,
		}
	}

	return check, nil
}

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tenant-vet/models"
)

const (
	usersTable  = "users"
	checksTable = "checks"
)

var userColumns = []string{
	"user_id",
	"login",
	"password_hash",
	"tier",
	"checks_remaining",
	"created_at",
}

var checkColumns = []string{
	"id",
	"user_id",
	"applicant_name",
	"email",
	"phone",
	"property_address",
	"date_of_birth",
	"masked_sensitive_id",
	"check_level",
	"status",
	"created_at",
	"estimated_completion",
	"completed_at",
	"processing_time_seconds",
	"results",
	"fallback",
	"error",
	"workflow_id",
	"workflow_dispatched_at",
	"workflow_last_status",
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password_hash", "tier", "checks_remaining", "created_at").
		Values(user.Login, user.PasswordHash, string(user.Tier), user.ChecksRemaining, user.CreatedAt).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildDecrementQuotaQuery consumes one check in a single statement. The
// WHERE clause admits unlimited users and finite users with checks left;
// nothing else is updated, so no row comes back for an exhausted quota.
func buildDecrementQuotaQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Update(usersTable).
		Set("checks_remaining", sq.Expr("CASE WHEN checks_remaining = ? THEN checks_remaining ELSE checks_remaining - 1 END", models.UnlimitedChecks)).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.Eq{"checks_remaining": models.UnlimitedChecks},
			sq.Gt{"checks_remaining": 0},
		}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
}

func buildRestoreQuotaQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Update(usersTable).
		Set("checks_remaining", sq.Expr("checks_remaining + 1")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"checks_remaining": models.UnlimitedChecks}).
		ToSql()
}

func buildSetPlanQuery(b sq.StatementBuilderType, userID int64, tier models.Tier, checksRemaining int) (string, []any, error) {
	return b.Update(usersTable).
		Set("tier", string(tier)).
		Set("checks_remaining", checksRemaining).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
}

// ── checks ───────────────────────────────────────────────────────────────────

func buildInsertCheckQuery(b sq.StatementBuilderType, check models.CheckRecord) (string, []any, error) {
	return b.Insert(checksTable).
		Columns(
			"id",
			"user_id",
			"applicant_name",
			"email",
			"phone",
			"property_address",
			"date_of_birth",
			"masked_sensitive_id",
			"check_level",
			"status",
			"created_at",
			"estimated_completion",
			"fallback",
			"error",
		).
		Values(
			check.ID,
			check.UserID,
			check.ApplicantName,
			check.Email,
			check.Phone,
			check.PropertyAddress,
			check.DateOfBirth,
			check.MaskedSensitiveID,
			string(check.CheckLevel),
			string(check.Status),
			check.CreatedAt,
			check.EstimatedCompletion,
			check.Fallback,
			check.Error,
		).
		ToSql()
}

func buildSelectCheckQuery(b sq.StatementBuilderType, id string, userID int64) (string, []any, error) {
	return b.Select(checkColumns...).
		From(checksTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildSelectChecksByUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(checkColumns...).
		From(checksTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildSelectCheckByWorkflowQuery(b sq.StatementBuilderType, workflowID string) (string, []any, error) {
	return b.Select(checkColumns...).
		From(checksTable).
		Where(sq.Eq{"workflow_id": workflowID}).
		ToSql()
}

func buildSelectCheckStatusQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("status").
		From(checksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildAttachWorkflowQuery(b sq.StatementBuilderType, handle models.WorkflowHandle) (string, []any, error) {
	return b.Update(checksTable).
		Set("workflow_id", handle.WorkflowID).
		Set("workflow_dispatched_at", handle.DispatchedAt).
		Set("workflow_last_status", handle.LastStatus).
		Where(sq.Eq{"id": handle.CheckID}).
		ToSql()
}

// buildAdvanceCheckQuery moves a check forward only from the stage directly
// before status, which keeps the transition a compare-and-set.
func buildAdvanceCheckQuery(b sq.StatementBuilderType, id string, status models.CheckStatus) (string, []any, error) {
	previous, ok := status.PreviousStage()
	if !ok {
		return "", nil, ErrInvalidTransition
	}

	return b.Update(checksTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": id, "status": string(previous)}).
		ToSql()
}

// buildFinalizeCheckQuery applies a terminal patch only while the check is
// still non-terminal. Of two concurrent finalizations exactly one matches.
func buildFinalizeCheckQuery(b sq.StatementBuilderType, id string, patch models.CheckPatch, results []byte) (string, []any, error) {
	var resultsArg any
	if results != nil {
		resultsArg = string(results)
	}

	return b.Update(checksTable).
		Set("status", string(patch.Status)).
		Set("results", resultsArg).
		Set("fallback", patch.Fallback).
		Set("error", patch.Error).
		Set("completed_at", patch.CompletedAt).
		Set("processing_time_seconds", patch.ProcessingTimeSeconds).
		Where(sq.Eq{"id": id, "status": statusNames(models.NonTerminalStatuses())}).
		Suffix("RETURNING " + joinColumns(checkColumns)).
		ToSql()
}

func statusNames(statuses []models.CheckStatus) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/models"
)

func newTestCheckRepo(t *testing.T) (*checkRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &checkRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func checkRow(id string, status models.CheckStatus, results any, workflowID any) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(checkColumns).AddRow(
		id, int64(1), "Jane Doe", "jane@example.com", "", "", "1990-01-01", "***-**-6789",
		"standard", string(status), now, now.Add(15*time.Minute),
		nil, nil, results, false, "", workflowID, nil, nil,
	)
}

func TestCheckRepository_Create(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()

	check := newTestCheck("c-1", 1, time.Now().UTC())

	mock.ExpectExec("INSERT INTO checks").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), check)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "c-1" {
		t.Errorf("expected c-1, got %s", created.ID)
	}

	mock.ExpectExec("INSERT INTO checks").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	if _, err := repo.Create(context.Background(), check); !errors.Is(err, ErrCheckAlreadyExists) {
		t.Fatalf("expected ErrCheckAlreadyExists, got %v", err)
	}
}

func TestCheckRepository_Get(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("c-1", int64(1)).
		WillReturnRows(checkRow("c-1", models.StatusCompleted, []byte(`{"overallScore":720,"riskLevel":"low","recommendations":["ok"]}`), "wf-1"))

	check, err := repo.Get(context.Background(), "c-1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.Results == nil || check.Results.OverallScore != 720 {
		t.Fatalf("expected decoded results, got %+v", check.Results)
	}
	if check.Workflow == nil || check.Workflow.WorkflowID != "wf-1" {
		t.Errorf("expected workflow handle, got %+v", check.Workflow)
	}
	if check.CompletedAt != nil || check.ProcessingTimeSeconds != nil {
		t.Errorf("expected NULL columns to stay nil")
	}

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("c-1", int64(2)).
		WillReturnRows(sqlmock.NewRows(checkColumns))

	if _, err := repo.Get(context.Background(), "c-1", 2); !errors.Is(err, ErrCheckNotFound) {
		t.Fatalf("expected ErrCheckNotFound, got %v", err)
	}
}

func TestCheckRepository_List(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM checks WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(int64(1)).
		WillReturnRows(checkRow("c-1", models.StatusProcessing, nil, nil))

	checks, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 1 || checks[0].Results != nil || checks[0].Workflow != nil {
		t.Fatalf("unexpected checks: %+v", checks)
	}

	mock.ExpectQuery("SELECT .+ FROM checks").
		WillReturnError(errors.New("boom"))

	if _, err := repo.List(context.Background(), 1); !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCheckRepository_Advance(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectExec("UPDATE checks SET status").
		WithArgs("identity_verification", "c-1", "processing").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Advance(ctx, "c-1", models.StatusIdentityVerification); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE checks SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM checks").
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))

	if err := repo.Advance(ctx, "c-1", models.StatusReportGeneration); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}

	mock.ExpectExec("UPDATE checks SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM checks").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("report_generation"))

	if err := repo.Advance(ctx, "c-1", models.StatusIdentityVerification); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if err := repo.Advance(ctx, "c-1", models.StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for terminal target, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCheckRepository_Finalize(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery("UPDATE checks SET status").
		WillReturnRows(checkRow("c-1", models.StatusCompleted, []byte(`{"overallScore":780}`), nil))

	check, err := repo.Finalize(ctx, "c-1", completedPatch(780))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %s", check.Status)
	}

	mock.ExpectQuery("UPDATE checks SET status").
		WillReturnRows(sqlmock.NewRows(checkColumns))
	mock.ExpectQuery("SELECT status FROM checks").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("error"))

	if _, err := repo.Finalize(ctx, "c-1", completedPatch(700)); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}

	mock.ExpectQuery("UPDATE checks SET status").
		WillReturnRows(sqlmock.NewRows(checkColumns))
	mock.ExpectQuery("SELECT status FROM checks").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	if _, err := repo.Finalize(ctx, "missing", completedPatch(700)); !errors.Is(err, ErrCheckNotFound) {
		t.Fatalf("expected ErrCheckNotFound, got %v", err)
	}

	if _, err := repo.Finalize(ctx, "c-1", models.CheckPatch{Status: models.StatusProcessing}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCheckRepository_FindByWorkflow(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM checks WHERE workflow_id = \\$1").
		WithArgs("wf-404").
		WillReturnRows(sqlmock.NewRows(checkColumns))

	if _, err := repo.FindByWorkflow(context.Background(), "wf-404"); !errors.Is(err, ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}
}

func TestCheckRepository_AttachWorkflow(t *testing.T) {
	repo, mock, db := newTestCheckRepo(t)
	defer db.Close()

	handle := models.WorkflowHandle{WorkflowID: "wf-1", CheckID: "c-1", DispatchedAt: time.Now().UTC(), LastStatus: "started"}

	mock.ExpectExec("UPDATE checks SET workflow_id").
		WithArgs("wf-1", handle.DispatchedAt, "started", "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AttachWorkflow(context.Background(), handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE checks SET workflow_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AttachWorkflow(context.Background(), handle); !errors.Is(err, ErrCheckNotFound) {
		t.Fatalf("expected ErrCheckNotFound, got %v", err)
	}
}

package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/receivables-recon-api/infrastructure/database/postgres"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
)

const reconciliationRunsTable = "reconciliation_runs"

//go:generate mockgen -source=run_history.go -destination=mocks/mock_run_history.go -package=mocks

// ReconciliationRunRepository persiste o histórico de execuções de
// reconciliação para auditoria.
type ReconciliationRunRepository interface {
	Save(run *domain.ReconciliationRun) error
	GetLatest() (*domain.ReconciliationRun, error)
	ListRecent(limit int) ([]*domain.ReconciliationRun, error)
}

type reconciliationRunRepository struct {
	conn *postgres.Connection
}

func NewReconciliationRunRepository(conn *postgres.Connection) ReconciliationRunRepository {
	return &reconciliationRunRepository{
		conn: conn,
	}
}

func (r *reconciliationRunRepository) Save(run *domain.ReconciliationRun) error {
	runSQL, runArgs, err := squirrel.
		Insert(reconciliationRunsTable).
		Columns(
			"id",
			"reference_date",
			"current_file",
			"previous_file",
			"current_rows",
			"previous_rows",
			"status",
			"failure_reason",
			"created_at",
		).
		Values(
			run.ID,
			run.ReferenceDate,
			run.CurrentFile,
			run.PreviousFile,
			run.CurrentRows,
			run.PreviousRows,
			run.Status,
			run.FailureReason,
			run.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(runSQL, runArgs...)

	return err
}

func (r *reconciliationRunRepository) GetLatest() (*domain.ReconciliationRun, error) {
	runSQL, runArgs, err := r.selectBuilder().
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(runSQL, runArgs...)

	run, err := r.deserializeRun(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return run, nil
}

func (r *reconciliationRunRepository) ListRecent(limit int) ([]*domain.ReconciliationRun, error) {
	if limit <= 0 {
		limit = 10
	}

	runsSQL, runsArgs, err := r.selectBuilder().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(runsSQL, runsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.ReconciliationRun, 0)

	for rows.Next() {
		run, err := r.deserializeRun(rows.Scan)
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (r *reconciliationRunRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id",
			"reference_date",
			"current_file",
			"previous_file",
			"current_rows",
			"previous_rows",
			"status",
			"failure_reason",
			"created_at",
		).
		From(reconciliationRunsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *reconciliationRunRepository) deserializeRun(scan func(...interface{}) error) (*domain.ReconciliationRun, error) {
	run := &domain.ReconciliationRun{}
	previousFile := sql.NullString{}
	failureReason := sql.NullString{}

	if err := scan(
		&run.ID,
		&run.ReferenceDate,
		&run.CurrentFile,
		&previousFile,
		&run.CurrentRows,
		&run.PreviousRows,
		&run.Status,
		&failureReason,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}

	run.PreviousFile = previousFile.String
	run.FailureReason = failureReason.String

	return run, nil
}

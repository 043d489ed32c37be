package repository

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

const (
	reportSnapshotsTable = "forst_report_snapshots rs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReportSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.ReportSnapshot) error
	ListByYear(ctx context.Context, year int) ([]*domain.ReportSnapshot, error)
	GetLatest(ctx context.Context, year int) (*domain.ReportSnapshot, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) Save(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	payload, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("forst_report_snapshots").
		Columns("id", "year", "payload", "generated_at").
		Values(snapshot.ID, snapshot.Year, payload, snapshot.GeneratedAt).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&snapshot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListByYear returns snapshot metadata only; the payload is left out.
func (r *reportSnapshotRepository) ListByYear(ctx context.Context, year int) ([]*domain.ReportSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("rs.id", "rs.year", "rs.generated_at", "rs.created_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.year": year}).
		OrderBy("rs.generated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ReportSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.ReportSnapshot{}
		if err := rows.Scan(&snapshot.ID, &snapshot.Year, &snapshot.GeneratedAt, &snapshot.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// GetLatest returns nil, nil when the year has no snapshot.
func (r *reportSnapshotRepository) GetLatest(ctx context.Context, year int) (*domain.ReportSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("rs.id", "rs.year", "rs.payload", "rs.generated_at", "rs.created_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.year": year}).
		OrderBy("rs.generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.ReportSnapshot{}
	var payload []byte

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&snapshot.ID,
		&snapshot.Year,
		&payload,
		&snapshot.GeneratedAt,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if payload != nil {
		report := &domain.CompleteReport{}
		if err := json.Unmarshal(payload, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}

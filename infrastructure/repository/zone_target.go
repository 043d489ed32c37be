package repository

//go:generate mockgen -source=zone_target.go -destination=mocks/zone_target.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/internal/domain"
)

const (
	zoneTargetsTable = "zone_targets zt"
)

type ZoneTargetRepository interface {
	ListByPeriodType(ctx context.Context, year int, periodType domain.TargetPeriodType, zoneID *int) ([]domain.ZoneTarget, error)
}

type zoneTargetRepository struct {
	conn *postgres.Connection
}

func NewZoneTargetRepository(conn *postgres.Connection) ZoneTargetRepository {
	return &zoneTargetRepository{
		conn: conn,
	}
}

// ListByPeriodType busca as metas anuais ("YYYY") ou mensais ("YYYY-MM") de um ano
func (r *zoneTargetRepository) ListByPeriodType(
	ctx context.Context,
	year int,
	periodType domain.TargetPeriodType,
	zoneID *int,
) ([]domain.ZoneTarget, error) {
	query := squirrel.
		Select("zt.id", "zt.service_zone_id", "zt.period_type", "zt.target_period", "zt.target_value").
		From(zoneTargetsTable).
		Where(squirrel.Eq{"zt.period_type": string(periodType)}).
		OrderBy("zt.service_zone_id ASC", "zt.target_period ASC").
		PlaceholderFormat(squirrel.Dollar)

	if periodType == domain.TargetPeriodYearly {
		query = query.Where(squirrel.Eq{"zt.target_period": fmt.Sprintf("%04d", year)})
	} else {
		query = query.Where(squirrel.Like{"zt.target_period": yearPrefix(year)})
	}

	if zoneID != nil {
		query = query.Where(squirrel.Eq{"zt.service_zone_id": *zoneID})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]domain.ZoneTarget, 0)
	for rows.Next() {
		var (
			target     domain.ZoneTarget
			periodType string
		)
		if err := rows.Scan(&target.ID, &target.ZoneID, &periodType, &target.TargetPeriod, &target.TargetValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		target.PeriodType = domain.TargetPeriodType(periodType)
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

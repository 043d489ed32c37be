package repository

//go:generate mockgen -source=service_zone.go -destination=mocks/service_zone.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/internal/domain"
)

const (
	serviceZonesTable = "service_zones sz"
)

type ServiceZoneRepository interface {
	List(ctx context.Context) ([]domain.ServiceZone, error)
}

type serviceZoneRepository struct {
	conn *postgres.Connection
}

func NewServiceZoneRepository(conn *postgres.Connection) ServiceZoneRepository {
	return &serviceZoneRepository{
		conn: conn,
	}
}

func (r *serviceZoneRepository) List(ctx context.Context) ([]domain.ServiceZone, error) {
	sqlQuery, args, err := squirrel.
		Select("sz.id", "sz.name", "COALESCE(sz.short_form, '')").
		From(serviceZonesTable).
		OrderBy("sz.id ASC").
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

	zones := make([]domain.ServiceZone, 0)
	for rows.Next() {
		var zone domain.ServiceZone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.ShortForm); err != nil {
			return nil, fmt.Errorf("erro ao escanear zona: %w", err)
		}
		zones = append(zones, zone)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return zones, nil
}

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=offer.go -destination=mocks/offer.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/fieldops/forst-api/pkg/utils"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

const (
	offersTable = "offers o"
)

var offerColumns = []string{
	"o.id",
	"o.offer_reference_number",
	"o.zone_id",
	"o.product_type",
	"o.offer_value",
	"o.po_value",
	"o.status",
	"o.stage",
	"o.expected_month",
	"o.offer_month",
	"o.po_received_month",
	"o.po_date",
	"o.assigned_to_id",
	"o.created_by_id",
	"o.created_at",
}

type OfferRepository interface {
	ListOffersForYear(ctx context.Context, filters domain.OfferFilters) ([]domain.Offer, error)
	ListOrdersForYear(ctx context.Context, filters domain.OfferFilters) ([]domain.Offer, error)
}

type offerRepository struct {
	conn *postgres.Connection
}

func NewOfferRepository(conn *postgres.Connection) OfferRepository {
	return &offerRepository{
		conn: conn,
	}
}

// ListOffersForYear returns the offers whose expected, offer or PO-received month falls
// in the year, without the excluded statuses.
func (r *offerRepository) ListOffersForYear(ctx context.Context, filters domain.OfferFilters) ([]domain.Offer, error) {
	prefix := yearPrefix(filters.Year)

	query := squirrel.
		Select(offerColumns...).
		From(offersTable).
		Where(squirrel.Or{
			squirrel.Like{"o.expected_month": prefix},
			squirrel.Like{"o.offer_month": prefix},
			squirrel.Like{"o.po_received_month": prefix},
		}).
		OrderBy("o.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.ExcludedStatuses) > 0 {
		statuses := lo.Map(filters.ExcludedStatuses, func(s domain.OfferStatus, _ int) string { return string(s) })
		query = query.Where("NOT (o.status::text = ANY(?))", pq.Array(statuses))
	}

	query = applyScope(query, filters)

	return r.list(ctx, query)
}

// ListOrdersForYear returns the offers in an order stage received during the year. The
// PO-received month is authoritative; the PO date is only used when that month is empty.
func (r *offerRepository) ListOrdersForYear(ctx context.Context, filters domain.OfferFilters) ([]domain.Offer, error) {
	start, end := utils.YearBounds(filters.Year)

	query := squirrel.
		Select(offerColumns...).
		From(offersTable).
		Where(squirrel.Or{
			squirrel.Like{"o.po_received_month": yearPrefix(filters.Year)},
			squirrel.And{
				squirrel.Expr("COALESCE(o.po_received_month, '') = ''"),
				squirrel.GtOrEq{"o.po_date": start},
				squirrel.Lt{"o.po_date": end},
			},
		}).
		OrderBy("o.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.OrderStages) > 0 {
		stages := lo.Map(filters.OrderStages, func(s domain.OfferStage, _ int) string { return string(s) })
		query = query.Where("o.stage::text = ANY(?)", pq.Array(stages))
	}

	query = applyScope(query, filters)

	return r.list(ctx, query)
}

func (r *offerRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Offer, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oferta: %w", err)
		}
		offers = append(offers, *offer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offers, nil
}

func applyScope(query squirrel.SelectBuilder, filters domain.OfferFilters) squirrel.SelectBuilder {
	if filters.ZoneID != nil {
		query = query.Where(squirrel.Eq{"o.zone_id": *filters.ZoneID})
	}

	if filters.UserID != nil {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"o.assigned_to_id": *filters.UserID},
			squirrel.And{
				squirrel.Eq{"o.assigned_to_id": nil},
				squirrel.Eq{"o.created_by_id": *filters.UserID},
			},
		})
	}

	return query
}

func scanOffer(rows *sql.Rows) (*domain.Offer, error) {
	offer := &domain.Offer{}
	var status, stage string

	err := rows.Scan(
		&offer.ID,
		&offer.OfferReferenceNumber,
		&offer.ZoneID,
		&offer.ProductType,
		&offer.OfferValue,
		&offer.POValue,
		&status,
		&stage,
		&offer.ExpectedMonth,
		&offer.OfferMonth,
		&offer.POReceivedMonth,
		&offer.PODate,
		&offer.AssignedToID,
		&offer.CreatedByID,
		&offer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	offer.Status = domain.OfferStatus(status)
	offer.Stage = domain.OfferStage(stage)

	return offer, nil
}

func yearPrefix(year int) string {
	return fmt.Sprintf("%04d-%%", year)
}

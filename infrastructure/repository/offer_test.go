package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.Wrap(db), mock
}

func offerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "offer_reference_number", "zone_id", "product_type", "offer_value", "po_value",
		"status", "stage", "expected_month", "offer_month", "po_received_month", "po_date",
		"assigned_to_id", "created_by_id", "created_at",
	})
}

func TestOfferRepository_ListOffersForYear(t *testing.T) {
	createdAt := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	zoneID := 3
	userID := 7

	tests := []struct {
		name     string
		filters  domain.OfferFilters
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, offers []domain.Offer, err error)
	}{
		{
			name: "Filtra pelo ano e exclui status",
			filters: domain.OfferFilters{
				Year:             2024,
				ExcludedStatuses: []domain.OfferStatus{domain.OfferStatusCancelled, domain.OfferStatusLost},
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM offers o WHERE \(o.expected_month LIKE \$1 OR o.offer_month LIKE \$2 OR o.po_received_month LIKE \$3\) AND NOT \(o.status::text = ANY\(\$4\)\) ORDER BY o.id ASC`).
					WithArgs("2024-%", "2024-%", "2024-%", sqlmock.AnyArg()).
					WillReturnRows(offerRows().
						AddRow(1, "OFF-1", 1, "SPP", 500000.0, nil, "OPEN", "PROPOSAL_SENT", "2024-03", nil, nil, nil, nil, 4, createdAt).
						AddRow(2, "OFF-2", 2, nil, nil, 100.0, "WON", "WON", nil, "2024-05", "2024-06", nil, 9, 4, createdAt))
			},
			validate: func(t *testing.T, offers []domain.Offer, err error) {
				require.NoError(t, err)
				require.Len(t, offers, 2)

				assert.Equal(t, 1, offers[0].ID)
				assert.Equal(t, "SPP", *offers[0].ProductType)
				assert.Equal(t, 500000.0, offers[0].Value())
				assert.Equal(t, domain.OfferStatusOpen, offers[0].Status)
				assert.Equal(t, "2024-03", *offers[0].ExpectedMonth)
				assert.Nil(t, offers[0].AssignedToID)
				assert.Equal(t, 4, offers[0].PersonID())

				assert.Nil(t, offers[1].ProductType)
				assert.Equal(t, 0.0, offers[1].Value())
				assert.Equal(t, 100.0, offers[1].OrderValue())
				assert.Equal(t, domain.OfferStageWon, offers[1].Stage)
				assert.Equal(t, 9, offers[1].PersonID())
			},
		},
		{
			name: "Restringe por zona e pessoa",
			filters: domain.OfferFilters{
				Year:   2023,
				ZoneID: &zoneID,
				UserID: &userID,
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM offers o WHERE (.+) AND o.zone_id = \$4 AND \(o.assigned_to_id = \$5 OR \(o.assigned_to_id IS NULL AND o.created_by_id = \$6\)\)`).
					WithArgs("2023-%", "2023-%", "2023-%", zoneID, userID, userID).
					WillReturnRows(offerRows())
			},
			validate: func(t *testing.T, offers []domain.Offer, err error) {
				require.NoError(t, err)
				assert.Empty(t, offers)
				assert.NotNil(t, offers)
			},
		},
		{
			name:    "Erro do banco é propagado",
			filters: domain.OfferFilters{Year: 2024},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM offers o`).
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, offers []domain.Offer, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao executar a query")
				assert.Nil(t, offers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewOfferRepository(conn)
			offers, err := repo.ListOffersForYear(context.Background(), tt.filters)

			tt.validate(t, offers, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfferRepository_ListOrdersForYear(t *testing.T) {
	conn, mock := newMockConnection(t)
	poDate := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM offers o WHERE \(o.po_received_month LIKE \$1 OR \(COALESCE\(o.po_received_month, ''\) = '' AND o.po_date >= \$2 AND o.po_date < \$3\)\) AND o.stage::text = ANY\(\$4\)`).
		WithArgs("2024-%", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(offerRows().
			AddRow(5, "OFF-5", 1, "CONTRACT", 900.0, 1200.0, "WON", "PO_RECEIVED", nil, nil, nil, poDate, nil, 2, poDate))

	repo := NewOfferRepository(conn)
	orders, err := repo.ListOrdersForYear(context.Background(), domain.OfferFilters{
		Year:        2024,
		OrderStages: []domain.OfferStage{domain.OfferStagePOReceived, domain.OfferStageOrderBooked, domain.OfferStageWon},
	})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 1200.0, orders[0].OrderValue())
	assert.Nil(t, orders[0].POReceivedMonth)
	require.NotNil(t, orders[0].PODate)
	assert.True(t, poDate.Equal(*orders[0].PODate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

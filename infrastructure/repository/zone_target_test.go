package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneTargetRepository_ListByPeriodType(t *testing.T) {
	zoneID := 2

	tests := []struct {
		name       string
		periodType domain.TargetPeriodType
		zoneID     *int
		setup      func(mock sqlmock.Sqlmock)
		validate   func(t *testing.T, targets []domain.ZoneTarget)
	}{
		{
			name:       "Metas anuais usam o período YYYY",
			periodType: domain.TargetPeriodYearly,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM zone_targets zt WHERE zt.period_type = \$1 AND zt.target_period = \$2`).
					WithArgs("YEARLY", "2024").
					WillReturnRows(sqlmock.NewRows([]string{"id", "service_zone_id", "period_type", "target_period", "target_value"}).
						AddRow(1, 1, "YEARLY", "2024", 1200000.0))
			},
			validate: func(t *testing.T, targets []domain.ZoneTarget) {
				require.Len(t, targets, 1)
				assert.Equal(t, domain.TargetPeriodYearly, targets[0].PeriodType)
				assert.Equal(t, 1200000.0, targets[0].TargetValue)
			},
		},
		{
			name:       "Metas mensais usam o prefixo do ano e a zona",
			periodType: domain.TargetPeriodMonthly,
			zoneID:     &zoneID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM zone_targets zt WHERE zt.period_type = \$1 AND zt.target_period LIKE \$2 AND zt.service_zone_id = \$3`).
					WithArgs("MONTHLY", "2024-%", zoneID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "service_zone_id", "period_type", "target_period", "target_value"}).
						AddRow(3, 2, "MONTHLY", "2024-01", 10.0).
						AddRow(4, 2, "MONTHLY", "2024-02", 20.0))
			},
			validate: func(t *testing.T, targets []domain.ZoneTarget) {
				require.Len(t, targets, 2)
				assert.Equal(t, "2024-02", targets[1].TargetPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			targets, err := NewZoneTargetRepository(conn).ListByPeriodType(context.Background(), 2024, tt.periodType, tt.zoneID)

			require.NoError(t, err)
			tt.validate(t, targets)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

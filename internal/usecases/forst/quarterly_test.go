package forst

import (
	"fmt"
	"testing"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuarterly(t *testing.T) {
	report := BuildQuarterly(fixtureDataset(), testTaxonomy())

	require.Len(t, report.Zones, 4)
	west := report.Zones[0]
	assert.Equal(t, "WEST", west.ZoneName)
	require.Len(t, west.Months, 12)
	assert.Equal(t, 500000.0, west.Months[2])
	assert.Equal(t, 200000.0, west.Months[3])

	require.Len(t, west.Quarters, 4)
	for i, q := range west.Quarters {
		assert.Equal(t, fmt.Sprintf("Q%d", i+1), q.Quarter)
		assert.Equal(t, 300000.0, q.Target)
	}
	assert.Equal(t, 500000.0, west.Quarters[0].Forecast)
	assert.InDelta(t, 66.6667, west.Quarters[0].DevPercent, 1e-4)
	assert.Equal(t, -200000.0, west.Quarters[0].Balance)
	assert.Equal(t, 200000.0, west.Quarters[1].Forecast)
	assert.Equal(t, 100000.0, west.Quarters[1].Balance)
	assert.Equal(t, 1200000.0, west.YearlyTarget)
	assert.Equal(t, 700000.0, west.TotalForecast)

	south := report.Zones[1]
	assert.Equal(t, 0.0, south.Quarters[0].Target)
	assert.Equal(t, 0.0, south.Quarters[0].DevPercent)

	assert.Equal(t, "Total", report.Total.ZoneName)
	assert.Equal(t, 2000000.0, report.Total.YearlyTarget)
	assert.Equal(t, 500000.0, report.Total.Quarters[0].Target)
	assert.Equal(t, 1260000.0, report.Total.TotalForecast)
	assert.Equal(t, 320000.0, report.Total.Months[11])
}

func TestBuildQuarterly_TargetFromMonthlyRows(t *testing.T) {
	ds := Dataset{
		Year:  2024,
		Zones: []domain.ServiceZone{{ID: westID, Name: "WEST"}},
	}
	for m := 1; m <= 12; m++ {
		ds.MonthlyTargets = append(ds.MonthlyTargets, monthlyTarget(westID, fmt.Sprintf("2024-%02d", m), 100000))
	}

	report := BuildQuarterly(ds, testTaxonomy())

	west := report.Zones[0]
	assert.Equal(t, 1200000.0, west.YearlyTarget)
	for _, q := range west.Quarters {
		assert.Equal(t, 300000.0, q.Target)
		assert.Equal(t, -100.0, q.DevPercent)
	}
}

func TestBuildQuarterly_YearlyRowsWinOverMonthly(t *testing.T) {
	ds := Dataset{
		Year:           2024,
		Zones:          []domain.ServiceZone{{ID: westID, Name: "WEST"}},
		YearlyTargets:  []domain.ZoneTarget{yearlyTarget(westID, 400000)},
		MonthlyTargets: []domain.ZoneTarget{monthlyTarget(westID, "2024-01", 999999)},
	}

	report := BuildQuarterly(ds, testTaxonomy())

	assert.Equal(t, 100000.0, report.Zones[0].Quarters[0].Target)
}

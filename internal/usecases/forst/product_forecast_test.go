package forst

import (
	"testing"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductForecast(t *testing.T) {
	report := BuildProductForecast(fixtureDataset(), testTaxonomy())

	require.Len(t, report.ProductTypes, 11)
	require.Len(t, report.MonthTotals, 12)
	assert.Equal(t, 1260000.0, report.GrandTotal)
	assert.Equal(t, 500000.0, report.MonthTotals[2])
	assert.Equal(t, 320000.0, report.MonthTotals[11])

	require.Len(t, report.Zones, 4)
	west := report.Zones[0]
	assert.Equal(t, "WEST", west.ZoneName)
	require.Len(t, west.Rows, 11)
	assert.Equal(t, "SPP", west.Rows[2].ProductType)
	assert.Equal(t, 500000.0, west.Rows[2].Months[2])
	assert.Equal(t, 500000.0, west.Rows[2].Total)
	assert.Equal(t, 200000.0, west.MonthTotals[3])
	assert.Equal(t, 700000.0, west.Total)

	east := report.Zones[3]
	unknown := east.Rows[10]
	assert.Equal(t, domain.UnknownProductType, unknown.ProductType)
	assert.Equal(t, 90000.0, unknown.Months[6])

	var sum float64
	for _, z := range report.Zones {
		for _, v := range z.MonthTotals {
			sum += v
		}
	}
	assert.Equal(t, report.GrandTotal, sum)
}

func TestBuildCompleteReport(t *testing.T) {
	generatedAt := fixtureDate(2024, 5)

	report := BuildCompleteReport(fixtureDataset(), testTaxonomy(), generatedAt)

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, generatedAt, report.GeneratedAt)
	require.NotNil(t, report.Highlights)
	require.NotNil(t, report.ZoneMonthly)
	require.NotNil(t, report.Quarterly)
	require.NotNil(t, report.ProductTypeSummary)
	require.NotNil(t, report.PersonPerformance)
	require.NotNil(t, report.ProductForecast)

	assert.Equal(t, report.Highlights.Total.OffersValue, report.ProductForecast.GrandTotal)
	assert.Equal(t, report.Quarterly.Total.TotalForecast, report.ProductTypeSummary.GrandTotal)
}

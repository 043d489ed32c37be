package forst

import (
	"testing"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPersonPerformance(t *testing.T) {
	report := BuildPersonPerformance(fixtureDataset(), testTaxonomy())

	require.Len(t, report.ProductTypes, 11)
	require.Len(t, report.Persons, 3)

	names := lo.Map(report.Persons, func(p domain.PersonPerformance, _ int) string { return p.Name })
	assert.Equal(t, []string{"Asha", "Ravi", "Meera"}, names)

	asha := report.Persons[0]
	assert.Equal(t, 10, asha.UserID)
	assert.Equal(t, 820000.0, asha.Total)
	require.Len(t, asha.Months, 12)
	assert.Equal(t, 3, asha.Months[2].Month)
	assert.Equal(t, 500000.0, asha.Months[2].Values["SPP"])
	assert.Equal(t, 500000.0, asha.Months[2].Total)
	assert.Equal(t, 320000.0, asha.Months[11].Values["TRAINING"])
	assert.Equal(t, 320000.0, asha.ProductTotals["TRAINING"])
	assert.Len(t, asha.Months[0].Values, 11)
	assert.Contains(t, asha.Months[0].Values, "RETROFIT_KIT")

	ravi := report.Persons[1]
	assert.Equal(t, 90000.0, ravi.ProductTotals[domain.UnknownProductType])
	assert.Equal(t, 290000.0, ravi.Total)

	assert.Equal(t, 1260000.0, report.GrandTotal)
}

func TestBuildPersonPerformance_SkipsOffersOutsideYear(t *testing.T) {
	ds := fixtureDataset()
	ds.Offers = []domain.Offer{
		offer(1, westID, 100, "2024-02", "SPP", 10),
		offer(2, westID, 999, "2025-01", "SPP", 11),
	}

	report := BuildPersonPerformance(ds, testTaxonomy())

	require.Len(t, report.Persons, 1)
	assert.Equal(t, "Asha", report.Persons[0].Name)
	assert.Equal(t, 100.0, report.GrandTotal)
	assert.Len(t, report.ProductTypes, 10)
}

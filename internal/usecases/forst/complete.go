package forst

import (
	"time"

	"github.com/fieldops/forst-api/internal/domain"
)

// BuildCompleteReport compõe os seis relatórios a partir do mesmo dataset
func BuildCompleteReport(ds Dataset, tax Taxonomy, generatedAt time.Time) *domain.CompleteReport {
	return &domain.CompleteReport{
		Year:               ds.Year,
		GeneratedAt:        generatedAt,
		Highlights:         BuildHighlights(ds, tax),
		ZoneMonthly:        BuildZoneMonthly(ds, tax),
		Quarterly:          BuildQuarterly(ds, tax),
		ProductTypeSummary: BuildProductTypeSummary(ds, tax),
		PersonPerformance:  BuildPersonPerformance(ds, tax),
		ProductForecast:    BuildProductForecast(ds, tax),
	}
}

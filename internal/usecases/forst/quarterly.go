package forst

import (
	"fmt"

	"github.com/fieldops/forst-api/internal/domain"
)

// BuildQuarterly consolida a previsão mensal de cada zona em trimestres contra yearly BU / 4
func BuildQuarterly(ds Dataset, tax Taxonomy) *domain.QuarterlyReport {
	forecast := GroupAndSum(ds.Offers,
		func(o domain.Offer) (zoneMonth, bool) {
			m, ok := monthOf(OfferMonth(o), ds.Year)
			return zoneMonth{ZoneID: o.ZoneID, Month: m}, ok
		},
		domain.Offer.Value,
	)
	bu := ds.yearlyBU()

	report := &domain.QuarterlyReport{
		Year:  ds.Year,
		Zones: make([]domain.QuarterlyZone, 0, len(ds.Zones)),
	}

	totalMonths := make([]float64, 12)
	var totalTarget float64

	for _, zone := range tax.OrderZones(ds.Zones) {
		months := make([]float64, 12)
		for m := 1; m <= 12; m++ {
			months[m-1] = forecast[zoneMonth{ZoneID: zone.ID, Month: m}].Sum
			totalMonths[m-1] += months[m-1]
		}

		z := quarterlyZone(months, bu[zone.ID])
		z.ZoneID = zone.ID
		z.ZoneName = zone.Name

		report.Zones = append(report.Zones, z)
		totalTarget += bu[zone.ID]
	}

	report.Total = quarterlyZone(totalMonths, totalTarget)
	report.Total.ZoneName = "Total"

	return report
}

func quarterlyZone(months []float64, yearlyTarget float64) domain.QuarterlyZone {
	z := domain.QuarterlyZone{
		Months:       months,
		Quarters:     make([]domain.QuarterValue, 4),
		YearlyTarget: yearlyTarget,
	}

	target := yearlyTarget / 4
	for q := 0; q < 4; q++ {
		forecast := months[q*3] + months[q*3+1] + months[q*3+2]
		z.Quarters[q] = domain.QuarterValue{
			Quarter:    fmt.Sprintf("Q%d", q+1),
			Forecast:   forecast,
			Target:     target,
			DevPercent: DevPercent(forecast, target),
			Balance:    target - forecast,
		}
		z.TotalForecast += forecast
	}

	return z
}

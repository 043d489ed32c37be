package forst

import (
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
)

type zoneProductMonth struct {
	ZoneID      int
	ProductType string
	Month       int
}

// BuildProductForecast monta o cubo zona × produto × mês com totais por mês e geral
func BuildProductForecast(ds Dataset, tax Taxonomy) *domain.ProductForecastReport {
	inYear := lo.Filter(ds.Offers, func(o domain.Offer, _ int) bool {
		_, ok := offerMonthIn(ds.Year)(o)
		return ok
	})

	productTypes := tax.productTypesFor(inYear)
	cells := GroupAndSum(inYear,
		func(o domain.Offer) (zoneProductMonth, bool) {
			m, ok := offerMonthIn(ds.Year)(o)
			return zoneProductMonth{ZoneID: o.ZoneID, ProductType: tax.ProductTypeOf(o), Month: m}, ok
		},
		domain.Offer.Value,
	)

	report := &domain.ProductForecastReport{
		Year:         ds.Year,
		ProductTypes: productTypes,
		Zones:        make([]domain.ProductForecastZone, 0, len(ds.Zones)),
		MonthTotals:  make([]float64, 12),
	}

	for _, zone := range tax.OrderZones(ds.Zones) {
		z := domain.ProductForecastZone{
			ZoneID:      zone.ID,
			ZoneName:    zone.Name,
			Rows:        make([]domain.ProductForecastRow, 0, len(productTypes)),
			MonthTotals: make([]float64, 12),
		}

		for _, code := range productTypes {
			row := domain.ProductForecastRow{
				ProductType: code,
				Months:      make([]float64, 12),
			}

			for m := 1; m <= 12; m++ {
				v := cells[zoneProductMonth{ZoneID: zone.ID, ProductType: code, Month: m}].Sum
				row.Months[m-1] = v
				row.Total += v
				z.MonthTotals[m-1] += v
				report.MonthTotals[m-1] += v
			}

			z.Rows = append(z.Rows, row)
			z.Total += row.Total
		}

		report.Zones = append(report.Zones, z)
		report.GrandTotal += z.Total
	}

	return report
}

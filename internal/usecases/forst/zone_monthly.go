package forst

import (
	"github.com/fieldops/forst-api/internal/domain"
)

// BuildZoneMonthly abre o resumo de cada zona nos 12 meses do ano
func BuildZoneMonthly(ds Dataset, tax Taxonomy) *domain.ZoneMonthlyReport {
	offers := GroupAndSum(ds.Offers,
		func(o domain.Offer) (zoneMonth, bool) {
			m, ok := monthOf(OfferMonth(o), ds.Year)
			return zoneMonth{ZoneID: o.ZoneID, Month: m}, ok
		},
		domain.Offer.Value,
	)
	orders := GroupAndSum(ds.Orders,
		func(o domain.Offer) (zoneMonth, bool) {
			m, ok := monthOf(OrderMonth(o), ds.Year)
			return zoneMonth{ZoneID: o.ZoneID, Month: m}, ok
		},
		domain.Offer.OrderValue,
	)
	monthlyBU := ds.monthlyBU(ds.yearlyBU())

	report := &domain.ZoneMonthlyReport{
		Year:  ds.Year,
		Zones: make([]domain.ZoneMonthlyZone, 0, len(ds.Zones)),
	}

	for _, zone := range tax.OrderZones(ds.Zones) {
		z := domain.ZoneMonthlyZone{
			ZoneID:    zone.ID,
			ZoneName:  zone.Name,
			ShortForm: zone.ShortForm,
			Months:    make([]domain.ZoneMonthlyRow, 12),
		}

		var offersTotal, ordersTotal Total
		var buTotal float64

		for m := 1; m <= 12; m++ {
			key := zoneMonth{ZoneID: zone.ID, Month: m}
			row := zoneMonthlyRow(offers[key], orders[key], monthlyBU(zone.ID, m))
			row.Month = m
			row.MonthLabel = monthLabels[m-1]

			if m > 1 {
				prev := z.Months[m-2]
				row.OffersMoMPercent = DevPercent(row.OffersValue, prev.OffersValue)
				row.OrdersMoMPercent = DevPercent(row.OrdersReceived, prev.OrdersReceived)
			}

			z.Months[m-1] = row

			offersTotal.Sum += row.OffersValue
			offersTotal.Count += row.NumOffers
			ordersTotal.Sum += row.OrdersReceived
			ordersTotal.Count += row.NumOrders
			buTotal += row.BUMonthly
		}

		z.Total = zoneMonthlyRow(offersTotal, ordersTotal, buTotal)
		z.Total.MonthLabel = "Total"

		report.Zones = append(report.Zones, z)
	}

	return report
}

func zoneMonthlyRow(offers, orders Total, bu float64) domain.ZoneMonthlyRow {
	return domain.ZoneMonthlyRow{
		NumOffers:      offers.Count,
		OffersValue:    offers.Sum,
		NumOrders:      orders.Count,
		OrdersReceived: orders.Sum,
		OpenFunnel:     OpenFunnel(offers.Sum, orders.Sum),
		BUMonthly:      bu,
		DevPercent:     DevPercent(orders.Sum, bu),
		BalanceBU:      bu - orders.Sum,
	}
}

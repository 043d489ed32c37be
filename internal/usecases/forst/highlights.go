package forst

import (
	"github.com/fieldops/forst-api/internal/domain"
)

func byZone(o domain.Offer) (int, bool) { return o.ZoneID, true }

// BuildHighlights monta o resumo anual por zona: ofertas, pedidos, funil, BU e hit rate
func BuildHighlights(ds Dataset, tax Taxonomy) *domain.HighlightsReport {
	offers := GroupAndSum(ds.Offers, byZone, domain.Offer.Value)
	orders := GroupAndSum(ds.Orders, byZone, domain.Offer.OrderValue)
	bu := ds.yearlyBU()

	report := &domain.HighlightsReport{
		Year:  ds.Year,
		Zones: make([]domain.HighlightsRow, 0, len(ds.Zones)),
	}

	var offersTotal, ordersTotal Total
	var buTotal float64

	for _, zone := range tax.OrderZones(ds.Zones) {
		row := highlightsRow(offers[zone.ID], orders[zone.ID], bu[zone.ID])
		row.ZoneID = zone.ID
		row.ZoneName = zone.Name
		row.ShortForm = zone.ShortForm

		report.Zones = append(report.Zones, row)

		offersTotal.Sum += row.OffersValue
		offersTotal.Count += row.NumOffers
		ordersTotal.Sum += row.OrdersReceived
		ordersTotal.Count += row.NumOrders
		buTotal += row.BUYearly
	}

	report.Total = highlightsRow(offersTotal, ordersTotal, buTotal)
	report.Total.ZoneName = "Total"
	report.HitRate = report.Total.HitRate

	return report
}

func highlightsRow(offers, orders Total, bu float64) domain.HighlightsRow {
	funnel := OpenFunnel(offers.Sum, orders.Sum)

	return domain.HighlightsRow{
		NumOffers:      offers.Count,
		OffersValue:    offers.Sum,
		NumOrders:      orders.Count,
		OrdersReceived: orders.Sum,
		OpenFunnel:     funnel,
		OrderBooking:   orders.Sum + funnel,
		BUYearly:       bu,
		DevPercent:     DevPercent(orders.Sum, bu),
		BalanceBU:      bu - orders.Sum,
		HitRate:        HitRate(orders.Count, offers.Count),
	}
}

package forst

import (
	"github.com/fieldops/forst-api/internal/domain"
)

type productPerson struct {
	ZoneID      int
	ProductType string
	PersonID    int
}

// BuildProductTypeSummary monta a matriz zona × produto × pessoa com os valores das ofertas
func BuildProductTypeSummary(ds Dataset, tax Taxonomy) *domain.ProductTypeSummaryReport {
	productTypes := tax.productTypesFor(ds.Offers)
	cells := GroupAndSum(ds.Offers,
		func(o domain.Offer) (productPerson, bool) {
			return productPerson{ZoneID: o.ZoneID, ProductType: tax.ProductTypeOf(o), PersonID: o.PersonID()}, true
		},
		domain.Offer.Value,
	)

	report := &domain.ProductTypeSummaryReport{
		Year:         ds.Year,
		ProductTypes: productTypes,
		Zones:        make([]domain.ProductTypeSummaryZone, 0, len(ds.Zones)),
	}

	for _, zone := range tax.OrderZones(ds.Zones) {
		persons := ds.persons(offersInZone(ds.Offers, zone.ID))

		z := domain.ProductTypeSummaryZone{
			ZoneID:       zone.ID,
			ZoneName:     zone.Name,
			Persons:      persons,
			Rows:         make([]domain.ProductTypeSummaryRow, 0, len(productTypes)),
			PersonTotals: make([]float64, len(persons)),
		}

		for _, code := range productTypes {
			row := domain.ProductTypeSummaryRow{
				ProductType: code,
				Values:      make([]float64, len(persons)),
			}

			for i, p := range persons {
				v := cells[productPerson{ZoneID: zone.ID, ProductType: code, PersonID: p.UserID}].Sum
				row.Values[i] = v
				row.Total += v
				z.PersonTotals[i] += v
			}

			z.Rows = append(z.Rows, row)
			z.Total += row.Total
		}

		report.Zones = append(report.Zones, z)
		report.GrandTotal += z.Total
	}

	return report
}

package forst

import (
	"sort"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
)

type personMonthProduct struct {
	PersonID    int
	Month       int
	ProductType string
}

// BuildPersonPerformance monta o cubo pessoa × mês × produto, ordenado pelo total de cada pessoa
func BuildPersonPerformance(ds Dataset, tax Taxonomy) *domain.PersonPerformanceReport {
	inYear := lo.Filter(ds.Offers, func(o domain.Offer, _ int) bool {
		_, ok := offerMonthIn(ds.Year)(o)
		return ok
	})

	productTypes := tax.productTypesFor(inYear)
	cells := GroupAndSum(inYear,
		func(o domain.Offer) (personMonthProduct, bool) {
			m, ok := offerMonthIn(ds.Year)(o)
			return personMonthProduct{PersonID: o.PersonID(), Month: m, ProductType: tax.ProductTypeOf(o)}, ok
		},
		domain.Offer.Value,
	)

	report := &domain.PersonPerformanceReport{
		Year:         ds.Year,
		ProductTypes: productTypes,
	}

	persons := ds.persons(inYear)
	report.Persons = make([]domain.PersonPerformance, 0, len(persons))

	for _, p := range persons {
		perf := domain.PersonPerformance{
			UserID:        p.UserID,
			Name:          p.Name,
			Months:        make([]domain.PersonPerformanceMonth, 12),
			ProductTotals: zeroByCode(productTypes),
		}

		for m := 1; m <= 12; m++ {
			month := domain.PersonPerformanceMonth{
				Month:  m,
				Values: zeroByCode(productTypes),
			}

			for _, code := range productTypes {
				v := cells[personMonthProduct{PersonID: p.UserID, Month: m, ProductType: code}].Sum
				month.Values[code] = v
				month.Total += v
				perf.ProductTotals[code] += v
			}

			perf.Months[m-1] = month
			perf.Total += month.Total
		}

		report.Persons = append(report.Persons, perf)
		report.GrandTotal += perf.Total
	}

	sort.SliceStable(report.Persons, func(i, j int) bool {
		return report.Persons[i].Total > report.Persons[j].Total
	})

	return report
}

func zeroByCode(codes []string) map[string]float64 {
	return lo.SliceToMap(codes, func(code string) (string, float64) { return code, 0 })
}

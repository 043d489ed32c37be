package forst

import (
	"fmt"
	"sort"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
)

// Dataset reúne as linhas lidas do banco para montar os relatórios de um ano
type Dataset struct {
	Year           int
	Zones          []domain.ServiceZone
	Users          []domain.User
	Offers         []domain.Offer
	Orders         []domain.Offer
	YearlyTargets  []domain.ZoneTarget
	MonthlyTargets []domain.ZoneTarget
}

type zoneMonth struct {
	ZoneID int
	Month  int
}

// yearlyBU soma as metas anuais por zona. Só quando não há nenhuma meta anual
// as metas mensais do ano são somadas no lugar.
func (d Dataset) yearlyBU() map[int]float64 {
	targets := d.YearlyTargets
	if len(targets) == 0 {
		targets = lo.Filter(d.MonthlyTargets, func(t domain.ZoneTarget, _ int) bool {
			_, ok := monthOf(t.TargetPeriod, d.Year)
			return ok
		})
	}

	totals := GroupAndSum(targets,
		func(t domain.ZoneTarget) (int, bool) { return t.ZoneID, true },
		func(t domain.ZoneTarget) float64 { return t.TargetValue },
	)

	return lo.MapValues(totals, func(t Total, _ int) float64 { return t.Sum })
}

// monthlyBU devolve a meta mensal de cada zona; meses sem meta própria recebem yearly / 12
func (d Dataset) monthlyBU(yearly map[int]float64) func(zoneID, month int) float64 {
	monthly := GroupAndSum(d.MonthlyTargets,
		func(t domain.ZoneTarget) (zoneMonth, bool) {
			m, ok := monthOf(t.TargetPeriod, d.Year)
			return zoneMonth{ZoneID: t.ZoneID, Month: m}, ok
		},
		func(t domain.ZoneTarget) float64 { return t.TargetValue },
	)

	return func(zoneID, month int) float64 {
		if t, ok := monthly[zoneMonth{ZoneID: zoneID, Month: month}]; ok {
			return t.Sum
		}
		return yearly[zoneID] / 12
	}
}

// persons devolve as pessoas creditadas nas ofertas, ordenadas por nome
func (d Dataset) persons(offers []domain.Offer) []domain.PersonRef {
	names := lo.SliceToMap(d.Users, func(u domain.User) (int, string) { return u.ID, u.Name })

	persons := lo.Map(PersonIDs(offers), func(id int, _ int) domain.PersonRef {
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("User %d", id)
		}
		return domain.PersonRef{UserID: id, Name: name}
	})

	sort.SliceStable(persons, func(i, j int) bool {
		if persons[i].Name != persons[j].Name {
			return persons[i].Name < persons[j].Name
		}
		return persons[i].UserID < persons[j].UserID
	})

	return persons
}

// PersonIDs lista os ids de usuário referenciados pelas ofertas
func PersonIDs(offers []domain.Offer) []int {
	ids := lo.Uniq(lo.Map(offers, func(o domain.Offer, _ int) int { return o.PersonID() }))
	sort.Ints(ids)
	return ids
}

func offersInZone(offers []domain.Offer, zoneID int) []domain.Offer {
	return lo.Filter(offers, func(o domain.Offer, _ int) bool { return o.ZoneID == zoneID })
}

// withoutStatuses descarta as ofertas com status excluído
func withoutStatuses(offers []domain.Offer, statuses []domain.OfferStatus) []domain.Offer {
	if len(statuses) == 0 {
		return offers
	}
	return lo.Reject(offers, func(o domain.Offer, _ int) bool { return lo.Contains(statuses, o.Status) })
}

package forst

import (
	"sort"
	"strings"

	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
)

// Taxonomy carrega a ordem de exibição das zonas e os códigos de produto conhecidos
type Taxonomy struct {
	ZoneOrder    []string
	ProductTypes []string
}

func NewTaxonomy(cfg config.Forst) Taxonomy {
	return Taxonomy{
		ZoneOrder:    normalizeCodes(cfg.ZoneOrder),
		ProductTypes: normalizeCodes(cfg.ProductTypes),
	}
}

// OrderZones ordena as zonas conforme ZoneOrder; as demais vão para o fim, em ordem alfabética
func (t Taxonomy) OrderZones(zones []domain.ServiceZone) []domain.ServiceZone {
	rank := make(map[string]int, len(t.ZoneOrder))
	for i, name := range t.ZoneOrder {
		rank[name] = i
	}

	ordered := append([]domain.ServiceZone(nil), zones...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, iKnown := rank[normalizeCode(ordered[i].Name)]
		rj, jKnown := rank[normalizeCode(ordered[j].Name)]

		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return ordered[i].Name < ordered[j].Name
		}
	})

	return ordered
}

// ProductTypeOf devolve o código de produto da oferta ou UNKNOWN
func (t Taxonomy) ProductTypeOf(o domain.Offer) string {
	code := normalizeCode(nonEmpty(o.ProductType))
	if code != "" && lo.Contains(t.ProductTypes, code) {
		return code
	}
	return domain.UnknownProductType
}

// productTypesFor lista os códigos configurados, acrescentando UNKNOWN só quando há valor nele
func (t Taxonomy) productTypesFor(offers []domain.Offer) []string {
	unknown := lo.SumBy(offers, func(o domain.Offer) float64 {
		if t.ProductTypeOf(o) == domain.UnknownProductType {
			return o.Value()
		}
		return 0
	})

	codes := append([]string(nil), t.ProductTypes...)
	if unknown != 0 {
		codes = append(codes, domain.UnknownProductType)
	}

	return codes
}

func normalizeCodes(codes []string) []string {
	normalized := lo.FilterMap(codes, func(c string, _ int) (string, bool) {
		n := normalizeCode(c)
		return n, n != ""
	})
	return lo.Uniq(normalized)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

package forst

import (
	"testing"

	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestNewTaxonomy(t *testing.T) {
	tax := NewTaxonomy(config.Forst{
		ZoneOrder:    []string{" west", "SOUTH", "", "south"},
		ProductTypes: []string{"spp", "CONTRACT"},
	})

	assert.Equal(t, []string{"WEST", "SOUTH"}, tax.ZoneOrder)
	assert.Equal(t, []string{"SPP", "CONTRACT"}, tax.ProductTypes)
}

func TestTaxonomy_OrderZones(t *testing.T) {
	zones := []domain.ServiceZone{
		{ID: 1, Name: "EAST"},
		{ID: 2, Name: "Central"},
		{ID: 3, Name: "north"},
		{ID: 4, Name: "Alpha"},
		{ID: 5, Name: "WEST"},
		{ID: 6, Name: "SOUTH"},
	}

	ordered := testTaxonomy().OrderZones(zones)

	names := lo.Map(ordered, func(z domain.ServiceZone, _ int) string { return z.Name })
	assert.Equal(t, []string{"WEST", "SOUTH", "north", "EAST", "Alpha", "Central"}, names)
	assert.Equal(t, "EAST", zones[0].Name, "a entrada não deve ser alterada")
}

func TestTaxonomy_ProductTypeOf(t *testing.T) {
	tax := testTaxonomy()

	assert.Equal(t, "SPP", tax.ProductTypeOf(domain.Offer{ProductType: stringPtr(" spp ")}))
	assert.Equal(t, domain.UnknownProductType, tax.ProductTypeOf(domain.Offer{ProductType: stringPtr("FOO")}))
	assert.Equal(t, domain.UnknownProductType, tax.ProductTypeOf(domain.Offer{}))
}

func TestTaxonomy_ProductTypesFor(t *testing.T) {
	tax := testTaxonomy()

	known := []domain.Offer{offer(1, westID, 10, "2024-01", "SPP", 1)}
	assert.NotContains(t, tax.productTypesFor(known), domain.UnknownProductType)

	zeroUnknown := append(known, offer(2, westID, 0, "2024-01", "FOO", 1))
	assert.NotContains(t, tax.productTypesFor(zeroUnknown), domain.UnknownProductType)

	withUnknown := append(known, offer(3, westID, 5, "2024-01", "FOO", 1))
	codes := tax.productTypesFor(withUnknown)
	assert.Len(t, codes, 11)
	assert.Equal(t, domain.UnknownProductType, codes[10])
}

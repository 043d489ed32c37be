package forst

import (
	"time"

	"github.com/fieldops/forst-api/internal/domain"
)

const (
	westID  = 1
	southID = 2
	northID = 3
	eastID  = 4
)

func stringPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func testTaxonomy() Taxonomy {
	return Taxonomy{
		ZoneOrder:    []string{"WEST", "SOUTH", "NORTH", "EAST"},
		ProductTypes: []string{"RELOCATION", "CONTRACT", "SPP", "UPGRADE_KIT", "SOFTWARE", "BD_CHARGES", "BD_SPARE", "MIDLIFE_UPGRADE", "RETROFIT_KIT", "TRAINING"},
	}
}

func testZones() []domain.ServiceZone {
	return []domain.ServiceZone{
		{ID: eastID, Name: "EAST", ShortForm: "E"},
		{ID: northID, Name: "NORTH", ShortForm: "N"},
		{ID: southID, Name: "SOUTH", ShortForm: "S"},
		{ID: westID, Name: "WEST", ShortForm: "W"},
	}
}

// offer cria uma oferta aberta com expected month preenchido
func offer(id, zoneID int, value float64, month, product string, person int) domain.Offer {
	o := domain.Offer{
		ID:            id,
		ZoneID:        zoneID,
		OfferValue:    floatPtr(value),
		Status:        domain.OfferStatusOpen,
		Stage:         domain.OfferStageProposalSent,
		ExpectedMonth: stringPtr(month),
		CreatedByID:   person,
		CreatedAt:     time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	if product != "" {
		o.ProductType = stringPtr(product)
	}
	return o
}

// order cria um pedido recebido no mês informado
func order(id, zoneID int, poValue float64, month string) domain.Offer {
	return domain.Offer{
		ID:              id,
		ZoneID:          zoneID,
		POValue:         floatPtr(poValue),
		Status:          domain.OfferStatusWon,
		Stage:           domain.OfferStagePOReceived,
		POReceivedMonth: stringPtr(month),
		CreatedByID:     1,
	}
}

func yearlyTarget(zoneID int, value float64) domain.ZoneTarget {
	return domain.ZoneTarget{ZoneID: zoneID, PeriodType: domain.TargetPeriodYearly, TargetPeriod: "2024", TargetValue: value}
}

func monthlyTarget(zoneID int, period string, value float64) domain.ZoneTarget {
	return domain.ZoneTarget{ZoneID: zoneID, PeriodType: domain.TargetPeriodMonthly, TargetPeriod: period, TargetValue: value}
}

func fixtureDataset() Dataset {
	return Dataset{
		Year:  2024,
		Zones: testZones(),
		Users: []domain.User{{ID: 10, Name: "Asha"}, {ID: 11, Name: "Ravi"}, {ID: 12, Name: "Meera"}},
		Offers: []domain.Offer{
			offer(1, westID, 500000, "2024-03", "SPP", 10),
			offer(2, westID, 200000, "2024-04", "CONTRACT", 11),
			offer(3, southID, 150000, "2024-01", "", 12),
			offer(4, northID, 320000, "2024-12", "TRAINING", 10),
			offer(5, eastID, 90000, "2024-07", "NOT_A_CODE", 11),
		},
		Orders: []domain.Offer{
			order(20, westID, 600000, "2024-03"),
			order(21, southID, 50000, "2024-02"),
		},
		YearlyTargets: []domain.ZoneTarget{
			yearlyTarget(westID, 1200000),
			yearlyTarget(southID, 0),
			yearlyTarget(northID, 800000),
		},
		MonthlyTargets: []domain.ZoneTarget{
			monthlyTarget(westID, "2024-03", 150000),
		},
	}
}

func fixtureDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)
}

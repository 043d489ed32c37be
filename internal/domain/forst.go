package domain

import "time"

// UnknownProductType agrupa ofertas cujo código não está na taxonomia
const UnknownProductType = "UNKNOWN"

type HighlightsReport struct {
	Year    int             `json:"year"`
	Zones   []HighlightsRow `json:"zones"`
	Total   HighlightsRow   `json:"total"`
	HitRate int             `json:"hitRate"`
}

type HighlightsRow struct {
	ZoneID         int     `json:"zoneId"`
	ZoneName       string  `json:"zoneName"`
	ShortForm      string  `json:"shortForm"`
	NumOffers      int     `json:"numOffers"`
	OffersValue    float64 `json:"offersValue"`
	NumOrders      int     `json:"numOrders"`
	OrdersReceived float64 `json:"ordersReceived"`
	OpenFunnel     float64 `json:"openFunnel"`
	OrderBooking   float64 `json:"orderBooking"`
	BUYearly       float64 `json:"buYearly"`
	DevPercent     float64 `json:"devPercent"`
	BalanceBU      float64 `json:"balanceBu"`
	HitRate        int     `json:"hitRate"`
}

type ZoneMonthlyReport struct {
	Year  int               `json:"year"`
	Zones []ZoneMonthlyZone `json:"zones"`
}

type ZoneMonthlyZone struct {
	ZoneID    int              `json:"zoneId"`
	ZoneName  string           `json:"zoneName"`
	ShortForm string           `json:"shortForm"`
	Months    []ZoneMonthlyRow `json:"months"`
	Total     ZoneMonthlyRow   `json:"total"`
}

type ZoneMonthlyRow struct {
	Month            int     `json:"month"`
	MonthLabel       string  `json:"monthLabel"`
	NumOffers        int     `json:"numOffers"`
	OffersValue      float64 `json:"offersValue"`
	NumOrders        int     `json:"numOrders"`
	OrdersReceived   float64 `json:"ordersReceived"`
	OpenFunnel       float64 `json:"openFunnel"`
	BUMonthly        float64 `json:"buMonthly"`
	DevPercent       float64 `json:"devPercent"`
	BalanceBU        float64 `json:"balanceBu"`
	OffersMoMPercent float64 `json:"offersMomPercent"`
	OrdersMoMPercent float64 `json:"ordersMomPercent"`
}

type QuarterlyReport struct {
	Year  int             `json:"year"`
	Zones []QuarterlyZone `json:"zones"`
	Total QuarterlyZone   `json:"total"`
}

type QuarterlyZone struct {
	ZoneID        int            `json:"zoneId"`
	ZoneName      string         `json:"zoneName"`
	Months        []float64      `json:"months"`
	Quarters      []QuarterValue `json:"quarters"`
	YearlyTarget  float64        `json:"yearlyTarget"`
	TotalForecast float64        `json:"totalForecast"`
}

type QuarterValue struct {
	Quarter    string  `json:"quarter"`
	Forecast   float64 `json:"forecast"`
	Target     float64 `json:"target"`
	DevPercent float64 `json:"devPercent"`
	Balance    float64 `json:"balance"`
}

type PersonRef struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
}

type ProductTypeSummaryReport struct {
	Year         int                      `json:"year"`
	ProductTypes []string                 `json:"productTypes"`
	Zones        []ProductTypeSummaryZone `json:"zones"`
	GrandTotal   float64                  `json:"grandTotal"`
}

type ProductTypeSummaryZone struct {
	ZoneID       int                     `json:"zoneId"`
	ZoneName     string                  `json:"zoneName"`
	Persons      []PersonRef             `json:"persons"`
	Rows         []ProductTypeSummaryRow `json:"rows"`
	PersonTotals []float64               `json:"personTotals"`
	Total        float64                 `json:"total"`
}

// ProductTypeSummaryRow.Values é alinhado com ProductTypeSummaryZone.Persons
type ProductTypeSummaryRow struct {
	ProductType string    `json:"productType"`
	Values      []float64 `json:"values"`
	Total       float64   `json:"total"`
}

type PersonPerformanceReport struct {
	Year         int                 `json:"year"`
	ProductTypes []string            `json:"productTypes"`
	Persons      []PersonPerformance `json:"persons"`
	GrandTotal   float64             `json:"grandTotal"`
}

type PersonPerformance struct {
	UserID        int                      `json:"userId"`
	Name          string                   `json:"name"`
	Months        []PersonPerformanceMonth `json:"months"`
	ProductTotals map[string]float64       `json:"productTotals"`
	Total         float64                  `json:"total"`
}

type PersonPerformanceMonth struct {
	Month  int                `json:"month"`
	Values map[string]float64 `json:"values"`
	Total  float64            `json:"total"`
}

type ProductForecastReport struct {
	Year         int                   `json:"year"`
	ProductTypes []string              `json:"productTypes"`
	Zones        []ProductForecastZone `json:"zones"`
	MonthTotals  []float64             `json:"monthTotals"`
	GrandTotal   float64               `json:"grandTotal"`
}

type ProductForecastZone struct {
	ZoneID      int                  `json:"zoneId"`
	ZoneName    string               `json:"zoneName"`
	Rows        []ProductForecastRow `json:"rows"`
	MonthTotals []float64            `json:"monthTotals"`
	Total       float64              `json:"total"`
}

type ProductForecastRow struct {
	ProductType string    `json:"productType"`
	Months      []float64 `json:"months"`
	Total       float64   `json:"total"`
}

// CompleteReport reúne os seis relatórios FORST de um ano
type CompleteReport struct {
	Year               int                       `json:"year"`
	GeneratedAt        time.Time                 `json:"generatedAt"`
	Highlights         *HighlightsReport         `json:"highlights"`
	ZoneMonthly        *ZoneMonthlyReport        `json:"zoneMonthly"`
	Quarterly          *QuarterlyReport          `json:"quarterly"`
	ProductTypeSummary *ProductTypeSummaryReport `json:"productTypeSummary"`
	PersonPerformance  *PersonPerformanceReport  `json:"personPerformance"`
	ProductForecast    *ProductForecastReport    `json:"productForecast"`
}

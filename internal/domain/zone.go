package domain

type ServiceZone struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortForm string `json:"shortForm"`
}

type TargetPeriodType string

const (
	TargetPeriodMonthly TargetPeriodType = "MONTHLY"
	TargetPeriodYearly  TargetPeriodType = "YEARLY"
)

// ZoneTarget é o valor de BU de uma zona para um período ("YYYY" ou "YYYY-MM")
type ZoneTarget struct {
	ID           int              `json:"id"`
	ZoneID       int              `json:"zoneId"`
	PeriodType   TargetPeriodType `json:"periodType"`
	TargetPeriod string           `json:"targetPeriod"`
	TargetValue  float64          `json:"targetValue"`
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

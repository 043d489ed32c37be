package domain

import "time"

// ReportSnapshot guarda um relatório completo pré-calculado pelo agendador
type ReportSnapshot struct {
	ID          string          `json:"id"`
	Year        int             `json:"year"`
	Report      *CompleteReport `json:"report,omitempty"`
	GeneratedAt time.Time       `json:"generatedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

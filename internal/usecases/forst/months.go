package forst

import (
	"strconv"
	"strings"

	"github.com/fieldops/forst-api/internal/domain"
)

const monthLayout = "2006-01"

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// OfferMonth resolve o mês de uma oferta: expected month, depois offer month,
// depois a data de criação.
func OfferMonth(o domain.Offer) string {
	if m := nonEmpty(o.ExpectedMonth); m != "" {
		return m
	}
	if m := nonEmpty(o.OfferMonth); m != "" {
		return m
	}
	return o.CreatedAt.Format(monthLayout)
}

// OrderMonth resolve o mês de um pedido: PO-received month, depois a data do PO.
// Retorna vazio quando nenhum dos dois está preenchido.
func OrderMonth(o domain.Offer) string {
	if m := nonEmpty(o.POReceivedMonth); m != "" {
		return m
	}
	if o.PODate != nil && !o.PODate.IsZero() {
		return o.PODate.Format(monthLayout)
	}
	return ""
}

// monthOf extrai o número do mês (1..12) de um período "YYYY-MM" do ano informado
func monthOf(period string, year int) (int, bool) {
	y, m, ok := strings.Cut(period, "-")
	if !ok {
		return 0, false
	}

	py, err := strconv.Atoi(y)
	if err != nil || py != year {
		return 0, false
	}

	pm, err := strconv.Atoi(m)
	if err != nil || pm < 1 || pm > 12 {
		return 0, false
	}

	return pm, true
}

func offerMonthIn(year int) func(domain.Offer) (int, bool) {
	return func(o domain.Offer) (int, bool) {
		return monthOf(OfferMonth(o), year)
	}
}

func nonEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

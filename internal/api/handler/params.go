package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fieldops/forst-api/internal/usecases/forst"
)

const (
	paramYear   = "year"
	paramZoneID = "zoneId"
	paramUserID = "userId"
)

// invalidID não corresponde a nenhuma zona ou usuário, então um filtro malformado
// produz um relatório vazio em vez de um 400
const invalidID = -1

var now = time.Now

// parseParams lê year e os filtros aceitos pela rota. Ano ausente usa o ano corrente;
// ano malformado vira 0 e não casa com nenhuma linha.
func parseParams(r *http.Request, filters ...string) forst.Params {
	query := r.URL.Query()

	params := forst.Params{Year: now().Year()}
	if raw := query.Get(paramYear); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			year = 0
		}
		params.Year = year
	}

	for _, filter := range filters {
		raw := query.Get(filter)
		if raw == "" {
			continue
		}

		id, err := strconv.Atoi(raw)
		if err != nil {
			id = invalidID
		}

		switch filter {
		case paramZoneID:
			params.ZoneID = &id
		case paramUserID:
			params.UserID = &id
		}
	}

	return params
}

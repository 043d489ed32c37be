package handler

import (
	"net/http"

	"github.com/fieldops/forst-api/internal/usecases/forst"
	"github.com/fieldops/forst-api/pkg/apiErrors"
	"github.com/fieldops/forst-api/pkg/log"
)

// ListSnapshots lista os snapshots gravados para o ano, sem o conteúdo do relatório
func ListSnapshots(service forst.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := parseParams(r)

		snapshots, err := service.ListSnapshots(r.Context(), params.Year)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("year", params.Year).Error("snapshots: erro ao listar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao listar snapshots")
			return
		}

		writeData(w, r, snapshots)
	})
}

func GetLatestSnapshot(service forst.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := parseParams(r)

		snapshot, err := service.LatestSnapshot(r.Context(), params.Year)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("year", params.Year).Error("snapshots: erro ao buscar o mais recente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao buscar snapshot")
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot encontrado")
			return
		}

		writeData(w, r, snapshot)
	})
}

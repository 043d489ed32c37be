package handler

import (
	"net/http"

	"github.com/fieldops/forst-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// writeData responde 200 com o envelope {"success": true, "data": ...}
func writeData(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(successResponse{Success: true, Data: data}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

package handler

import (
	"net/http"
	"time"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, r, map[string]string{
			"status": "ok",
			"time":   now().Format(time.RFC3339),
		})
	})
}

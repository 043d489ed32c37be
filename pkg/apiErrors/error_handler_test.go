package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		wantStatus int
	}{
		{"Erro de banco vira 500", ErrDatabaseOperation, "Falha ao gerar relatório", http.StatusInternalServerError},
		{"Requisição inválida vira 400", ErrInvalidRequest, "Tipo inválido", http.StatusBadRequest},
		{"Código desconhecido vira 500", "XYZ", "ops", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, tt.message)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

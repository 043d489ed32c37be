package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fieldops/forst-api/internal/usecases/forst"
	"github.com/fieldops/forst-api/pkg/apiErrors"
	"github.com/fieldops/forst-api/pkg/log"
)

// reportHandler serve um relatório JSON. O erro do serviço vai apenas para o log; o
// cliente recebe a mensagem fixa do relatório.
func reportHandler[T any](
	report string,
	failure string,
	fetch func(ctx context.Context, params forst.Params) (T, error),
	filters ...string,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := parseParams(r, filters...)

		logger.WithFields(log.Fields{
			"report": report,
			"year":   params.Year,
		}).Info("forst: gerando relatório")

		data, err := fetch(r.Context(), params)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"report": report,
				"year":   params.Year,
			}).Error("forst: erro ao gerar relatório")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, failure)
			return
		}

		writeData(w, r, data)
	})
}

func GetHighlights(service forst.Reporter) http.Handler {
	return reportHandler("highlights", "Falha ao gerar o relatório de destaques", service.Highlights)
}

func GetZoneMonthly(service forst.Reporter) http.Handler {
	return reportHandler("zone-monthly", "Falha ao gerar o relatório mensal por zona", service.ZoneMonthly, paramZoneID)
}

func GetQuarterly(service forst.Reporter) http.Handler {
	return reportHandler("quarterly", "Falha ao gerar o relatório trimestral", service.Quarterly)
}

func GetProductTypeSummary(service forst.Reporter) http.Handler {
	return reportHandler("product-type-summary", "Falha ao gerar o resumo por tipo de produto", service.ProductTypeSummary, paramZoneID)
}

func GetPersonPerformance(service forst.Reporter) http.Handler {
	return reportHandler("person-performance", "Falha ao gerar o desempenho por pessoa", service.PersonPerformance, paramZoneID, paramUserID)
}

func GetProductForecast(service forst.Reporter) http.Handler {
	return reportHandler("product-forecast", "Falha ao gerar a previsão por produto", service.ProductForecast)
}

func GetCompleteReport(service forst.Reporter) http.Handler {
	return reportHandler("complete-report", "Falha ao gerar o relatório completo", service.CompleteReport)
}

// ExportReport devolve a planilha FORST do ano como anexo
func ExportReport(service forst.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := parseParams(r)

		content, err := service.Export(r.Context(), params)
		if err != nil {
			logger.WithError(err).WithField("year", params.Year).Error("forst: erro ao exportar planilha")
			apiErrors.WriteError(w, apiErrors.ErrSpreadsheet, "Falha ao exportar o relatório FORST")
			return
		}

		w.Header().Set("Content-Type", forst.WorkbookContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+forst.WorkbookFilename(params.Year))
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(content); err != nil {
			logger.WithError(err).Warn("forst: erro ao enviar planilha")
		}
	})
}

package forst

import (
	"fmt"
	"time"

	"github.com/fieldops/forst-api/internal/domain"
	"github.com/fieldops/forst-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	// WorkbookContentType é o MIME type da planilha exportada
	WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SectionHighlights         = "Highlights"
	SectionZoneMonthly        = "Zone Monthly"
	SectionQuarterly          = "Quarterly"
	SectionProductTypeSummary = "Product Type Summary"
	SectionPersonPerformance  = "Person Performance"
	SectionProductForecast    = "Product Forecast"
)

// WorkbookFilename é o nome do arquivo baixado pelo endpoint de exportação
func WorkbookFilename(year int) string {
	return fmt.Sprintf("FORST_Report_%d.xlsx", year)
}

// SheetName é o nome da única aba da planilha
func SheetName(year int) string {
	return fmt.Sprintf("FORST %d", year)
}

type workbookStyles struct {
	title     int
	section   int
	header    int
	text      int
	textBold  int
	count     int
	money     int
	moneyBold int
	positive  int
	negative  int
}

// sheetWriter escreve linha a linha e guarda o primeiro erro do excelize
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	row     int
	divisor int64
	styles  workbookStyles
	err     error
}

// RenderWorkbook escreve o relatório completo em uma única aba, na mesma ordem do JSON.
// Valores monetários são exibidos em lakhs.
func RenderWorkbook(report *domain.CompleteReport, lakhDivisor int64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(report.Year)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("erro ao renomear aba: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilos: %w", err)
	}

	w := &sheetWriter{f: f, sheet: sheet, row: 1, divisor: lakhDivisor, styles: styles}

	w.title(fmt.Sprintf("FORST Report %d (values in lakhs)", report.Year))
	w.skip()

	w.highlights(report.Highlights)
	w.zoneMonthly(report.ZoneMonthly)
	w.quarterly(report.Quarterly)
	w.productTypeSummary(report.ProductTypeSummary)
	w.personPerformance(report.PersonPerformance)
	w.productForecast(report.ProductForecast)
	w.footer(report)

	if w.err != nil {
		return nil, fmt.Errorf("erro ao escrever planilha: %w", w.err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("erro ao ajustar colunas: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "AH", 14); err != nil {
		return nil, fmt.Errorf("erro ao ajustar colunas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar planilha: %w", err)
	}

	return buf.Bytes(), nil
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "#BFBFBF", Style: 1},
		{Type: "top", Color: "#BFBFBF", Style: 1},
		{Type: "right", Color: "#BFBFBF", Style: 1},
		{Type: "bottom", Color: "#BFBFBF", Style: 1},
	}
	moneyFmt := "#,##0.00"
	percentFmt := "0.0"

	type styleDef struct {
		target *int
		style  *excelize.Style
	}

	var s workbookStyles
	var defs []styleDef
	add := func(target *int, style *excelize.Style) {
		defs = append(defs, styleDef{target: target, style: style})
	}

	add(&s.title, &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F4E78"}, Pattern: 1},
	})
	add(&s.section, &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13, Color: "#1F4E78"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	add(&s.header, &excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F75B5"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	add(&s.text, &excelize.Style{Border: border})
	add(&s.textBold, &excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
		Border: border,
	})
	add(&s.count, &excelize.Style{Border: border, NumFmt: 1})
	add(&s.money, &excelize.Style{Border: border, CustomNumFmt: &moneyFmt})
	add(&s.moneyBold, &excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
		Border:       border,
		CustomNumFmt: &moneyFmt,
	})
	add(&s.positive, &excelize.Style{
		Font:         &excelize.Font{Color: "#00B050"},
		Border:       border,
		CustomNumFmt: &percentFmt,
	})
	add(&s.negative, &excelize.Style{
		Font:         &excelize.Font{Color: "#FF0000"},
		Border:       border,
		CustomNumFmt: &percentFmt,
	})

	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return workbookStyles{}, err
		}
		*def.target = id
	}

	return s, nil
}

func (w *sheetWriter) cell(col int, value any, style int) {
	if w.err != nil {
		return
	}

	name, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}

	if err := w.f.SetCellValue(w.sheet, name, value); err != nil {
		w.err = err
		return
	}

	w.err = w.f.SetCellStyle(w.sheet, name, name, style)
}

func (w *sheetWriter) money(col int, value float64, bold bool) {
	style := w.styles.money
	if bold {
		style = w.styles.moneyBold
	}
	w.cell(col, utils.ToLakhs(value, w.divisor), style)
}

func (w *sheetWriter) percent(col int, value float64) {
	style := w.styles.positive
	if value < 0 {
		style = w.styles.negative
	}
	w.cell(col, utils.RoundWithOneDecimalPlace(value), style)
}

func (w *sheetWriter) label(col int, value string, bold bool) {
	style := w.styles.text
	if bold {
		style = w.styles.textBold
	}
	w.cell(col, value, style)
}

func (w *sheetWriter) headers(values ...string) {
	for i, v := range values {
		w.cell(i+1, v, w.styles.header)
	}
	w.next()
}

func (w *sheetWriter) title(text string) {
	w.cell(1, text, w.styles.title)
	if w.err == nil {
		w.err = w.f.MergeCell(w.sheet, fmt.Sprintf("A%d", w.row), fmt.Sprintf("L%d", w.row))
	}
	w.next()
}

func (w *sheetWriter) section(text string) {
	w.cell(1, text, w.styles.section)
	w.next()
}

func (w *sheetWriter) next() { w.row++ }

func (w *sheetWriter) skip() { w.row += 2 }

func monthHeaders() []string {
	return monthLabels[:]
}

func (w *sheetWriter) highlights(r *domain.HighlightsReport) {
	if r == nil {
		return
	}

	w.section(SectionHighlights)
	w.headers("Zone", "No. of Offers", "Offers Value", "No. of Orders", "Orders Received",
		"Open Funnel", "Order Booking", "BU Yearly", "Dev %", "Balance BU", "Hit Rate %")

	rows := append(append([]domain.HighlightsRow(nil), r.Zones...), r.Total)
	for i, row := range rows {
		bold := i == len(rows)-1
		w.label(1, row.ZoneName, bold)
		w.cell(2, row.NumOffers, w.styles.count)
		w.money(3, row.OffersValue, bold)
		w.cell(4, row.NumOrders, w.styles.count)
		w.money(5, row.OrdersReceived, bold)
		w.money(6, row.OpenFunnel, bold)
		w.money(7, row.OrderBooking, bold)
		w.money(8, row.BUYearly, bold)
		w.percent(9, row.DevPercent)
		w.money(10, row.BalanceBU, bold)
		w.cell(11, row.HitRate, w.styles.count)
		w.next()
	}

	w.skip()
}

func (w *sheetWriter) zoneMonthly(r *domain.ZoneMonthlyReport) {
	if r == nil {
		return
	}

	w.section(SectionZoneMonthly)

	for _, zone := range r.Zones {
		w.label(1, zone.ZoneName, true)
		w.next()
		w.headers("Month", "No. of Offers", "Offers Value", "No. of Orders", "Orders Received",
			"Open Funnel", "BU Monthly", "Dev %", "Balance BU", "Offers MoM %", "Orders MoM %")

		rows := append(append([]domain.ZoneMonthlyRow(nil), zone.Months...), zone.Total)
		for i, row := range rows {
			bold := i == len(rows)-1
			w.label(1, row.MonthLabel, bold)
			w.cell(2, row.NumOffers, w.styles.count)
			w.money(3, row.OffersValue, bold)
			w.cell(4, row.NumOrders, w.styles.count)
			w.money(5, row.OrdersReceived, bold)
			w.money(6, row.OpenFunnel, bold)
			w.money(7, row.BUMonthly, bold)
			w.percent(8, row.DevPercent)
			w.money(9, row.BalanceBU, bold)
			w.percent(10, row.OffersMoMPercent)
			w.percent(11, row.OrdersMoMPercent)
			w.next()
		}

		w.next()
	}

	w.next()
}

func (w *sheetWriter) quarterly(r *domain.QuarterlyReport) {
	if r == nil {
		return
	}

	w.section(SectionQuarterly)

	headers := append([]string{"Zone"}, monthHeaders()...)
	for q := 1; q <= 4; q++ {
		headers = append(headers,
			fmt.Sprintf("Q%d Forecast", q), fmt.Sprintf("Q%d Target", q),
			fmt.Sprintf("Q%d Dev %%", q), fmt.Sprintf("Q%d Balance", q))
	}
	headers = append(headers, "Yearly Target", "Total Forecast")
	w.headers(headers...)

	rows := append(append([]domain.QuarterlyZone(nil), r.Zones...), r.Total)
	for i, z := range rows {
		bold := i == len(rows)-1
		w.label(1, z.ZoneName, bold)

		col := 2
		for _, v := range z.Months {
			w.money(col, v, bold)
			col++
		}
		for _, q := range z.Quarters {
			w.money(col, q.Forecast, bold)
			w.money(col+1, q.Target, bold)
			w.percent(col+2, q.DevPercent)
			w.money(col+3, q.Balance, bold)
			col += 4
		}
		w.money(col, z.YearlyTarget, bold)
		w.money(col+1, z.TotalForecast, bold)
		w.next()
	}

	w.skip()
}

func (w *sheetWriter) productTypeSummary(r *domain.ProductTypeSummaryReport) {
	if r == nil {
		return
	}

	w.section(SectionProductTypeSummary)

	for _, zone := range r.Zones {
		w.label(1, zone.ZoneName, true)
		w.next()

		headers := []string{"Product Type"}
		for _, p := range zone.Persons {
			headers = append(headers, p.Name)
		}
		w.headers(append(headers, "Total")...)

		for _, row := range zone.Rows {
			w.label(1, row.ProductType, false)
			for i, v := range row.Values {
				w.money(i+2, v, false)
			}
			w.money(len(row.Values)+2, row.Total, true)
			w.next()
		}

		w.label(1, "Total", true)
		for i, v := range zone.PersonTotals {
			w.money(i+2, v, true)
		}
		w.money(len(zone.PersonTotals)+2, zone.Total, true)
		w.next()
		w.next()
	}

	w.label(1, "Grand Total", true)
	w.money(2, r.GrandTotal, true)
	w.skip()
}

func (w *sheetWriter) personPerformance(r *domain.PersonPerformanceReport) {
	if r == nil {
		return
	}

	w.section(SectionPersonPerformance)

	headers := append([]string{"Person"}, monthHeaders()...)
	headers = append(headers, r.ProductTypes...)
	w.headers(append(headers, "Total")...)

	for _, p := range r.Persons {
		w.label(1, p.Name, false)

		col := 2
		for _, m := range p.Months {
			w.money(col, m.Total, false)
			col++
		}
		for _, code := range r.ProductTypes {
			w.money(col, p.ProductTotals[code], false)
			col++
		}
		w.money(col, p.Total, true)
		w.next()
	}

	w.label(1, "Grand Total", true)
	w.money(len(headers)+1, r.GrandTotal, true)
	w.skip()
}

func (w *sheetWriter) productForecast(r *domain.ProductForecastReport) {
	if r == nil {
		return
	}

	w.section(SectionProductForecast)

	headers := append([]string{"Product Type"}, monthHeaders()...)
	headers = append(headers, "Total")

	for _, zone := range r.Zones {
		w.label(1, zone.ZoneName, true)
		w.next()
		w.headers(headers...)

		for _, row := range zone.Rows {
			w.label(1, row.ProductType, false)
			for i, v := range row.Months {
				w.money(i+2, v, false)
			}
			w.money(14, row.Total, true)
			w.next()
		}

		w.label(1, "Total", true)
		for i, v := range zone.MonthTotals {
			w.money(i+2, v, true)
		}
		w.money(14, zone.Total, true)
		w.next()
		w.next()
	}

	w.label(1, "Grand Total", true)
	for i, v := range r.MonthTotals {
		w.money(i+2, v, true)
	}
	w.money(14, r.GrandTotal, true)
	w.skip()
}

func (w *sheetWriter) footer(report *domain.CompleteReport) {
	w.headers("Summary", "Offers Value", "Orders Received", "Forecast", "Generated At")

	w.label(1, "Grand Total", true)
	if report.Highlights != nil {
		w.money(2, report.Highlights.Total.OffersValue, true)
		w.money(3, report.Highlights.Total.OrdersReceived, true)
	}
	if report.ProductForecast != nil {
		w.money(4, report.ProductForecast.GrandTotal, true)
	}
	w.label(5, report.GeneratedAt.Format(time.RFC3339), false)
	w.next()
}
